package service

import (
	"context"
	"time"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
	"github.com/prakarsateknik/opsdesk/internal/ops/store"
	"github.com/prakarsateknik/opsdesk/pkg/idx"
)

// PurchaseOrderService owns the purchase order collection. Creation stamps
// the acting user onto the record so the PO list can show who entered it.
type PurchaseOrderService struct {
	Store    store.Store
	Notifier *Notifier
}

func (s *PurchaseOrderService) ListPurchaseOrders(ctx context.Context, f domain.PurchaseOrderFilter) ([]domain.PurchaseOrder, error) {
	return s.Store.PurchaseOrders().ListPurchaseOrders(ctx, f)
}

func (s *PurchaseOrderService) GetPurchaseOrderByID(ctx context.Context, id string) (domain.PurchaseOrder, error) {
	return s.Store.PurchaseOrders().GetPurchaseOrderByID(ctx, id)
}

func (s *PurchaseOrderService) CreatePurchaseOrder(ctx context.Context, actor Actor, po domain.PurchaseOrder) (domain.PurchaseOrder, error) {
	now := time.Now()
	po.ID = idx.New().String()
	po.CreatedByUserID = actor.ID
	po.CreatedByUserDisplayName = actor.name()
	po.CreatedAt = now
	po.UpdatedAt = now

	if err := s.Store.PurchaseOrders().CreatePurchaseOrder(ctx, po); err != nil {
		return domain.PurchaseOrder{}, err
	}

	s.Notifier.NotifyActivity(ctx, actor, domain.ActivityPOCreated, po.NoPO)
	return po, nil
}

func (s *PurchaseOrderService) UpdatePurchaseOrder(ctx context.Context, actor Actor, po domain.PurchaseOrder) (domain.PurchaseOrder, error) {
	if err := s.Store.PurchaseOrders().UpdatePurchaseOrder(ctx, po); err != nil {
		return domain.PurchaseOrder{}, err
	}

	updated, err := s.Store.PurchaseOrders().GetPurchaseOrderByID(ctx, po.ID)
	if err != nil {
		return domain.PurchaseOrder{}, err
	}

	s.Notifier.NotifyActivity(ctx, actor, domain.ActivityPOUpdated, updated.NoPO)
	return updated, nil
}

func (s *PurchaseOrderService) DeletePurchaseOrder(ctx context.Context, actor Actor, id string) error {
	po, err := s.Store.PurchaseOrders().GetPurchaseOrderByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.Store.PurchaseOrders().DeletePurchaseOrder(ctx, id); err != nil {
		return err
	}

	s.Notifier.NotifyActivity(ctx, actor, domain.ActivityPODeleted, po.NoPO)
	return nil
}
