package service

import (
	"context"
	"time"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
	"github.com/prakarsateknik/opsdesk/internal/ops/store"
	"github.com/prakarsateknik/opsdesk/pkg/idx"
)

// ProductionService owns the production log.
type ProductionService struct {
	Store    store.Store
	Notifier *Notifier
}

func (s *ProductionService) ListProduction(ctx context.Context, f domain.ProductionFilter) ([]domain.ProductionRecord, error) {
	return s.Store.Production().ListProduction(ctx, f)
}

func (s *ProductionService) GetProductionByID(ctx context.Context, id string) (domain.ProductionRecord, error) {
	return s.Store.Production().GetProductionByID(ctx, id)
}

func (s *ProductionService) CreateProduction(ctx context.Context, actor Actor, rec domain.ProductionRecord) (domain.ProductionRecord, error) {
	now := time.Now()
	rec.ID = idx.New().String()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	if err := s.Store.Production().CreateProduction(ctx, rec); err != nil {
		return domain.ProductionRecord{}, err
	}

	s.Notifier.NotifyActivity(ctx, actor, domain.ActivityProductionCreated, rec.PartAssy)
	return rec, nil
}

func (s *ProductionService) UpdateProduction(ctx context.Context, actor Actor, rec domain.ProductionRecord) (domain.ProductionRecord, error) {
	if err := s.Store.Production().UpdateProduction(ctx, rec); err != nil {
		return domain.ProductionRecord{}, err
	}

	updated, err := s.Store.Production().GetProductionByID(ctx, rec.ID)
	if err != nil {
		return domain.ProductionRecord{}, err
	}

	s.Notifier.NotifyActivity(ctx, actor, domain.ActivityProductionUpdated, updated.PartAssy)
	return updated, nil
}

func (s *ProductionService) DeleteProduction(ctx context.Context, actor Actor, id string) error {
	rec, err := s.Store.Production().GetProductionByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.Store.Production().DeleteProduction(ctx, id); err != nil {
		return err
	}

	s.Notifier.NotifyActivity(ctx, actor, domain.ActivityProductionDeleted, rec.PartAssy)
	return nil
}
