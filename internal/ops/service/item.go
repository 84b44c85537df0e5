package service

import (
	"context"
	"time"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
	"github.com/prakarsateknik/opsdesk/internal/ops/store"
	"github.com/prakarsateknik/opsdesk/pkg/idx"
)

// ItemService owns the item (barang) collection.
type ItemService struct {
	Store    store.Store
	Notifier *Notifier
}

func (s *ItemService) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.Store.Items().ListItems(ctx)
}

func (s *ItemService) GetItemByID(ctx context.Context, id string) (domain.Item, error) {
	return s.Store.Items().GetItemByID(ctx, id)
}

// FindItemByName resolves an item by partial, case-insensitive part assy name.
func (s *ItemService) FindItemByName(ctx context.Context, name string) (domain.Item, error) {
	return s.Store.Items().FindItemByName(ctx, name)
}

// GetItemByPartAssyName resolves an item by its exact part assy name. The
// production entry form uses this to auto-fill part name and process.
func (s *ItemService) GetItemByPartAssyName(ctx context.Context, partAssyName string) (domain.Item, error) {
	return s.Store.Items().GetItemByPartAssyName(ctx, partAssyName)
}

func (s *ItemService) CreateItem(ctx context.Context, actor Actor, i domain.Item) (domain.Item, error) {
	now := time.Now()
	i.ID = idx.New().String()
	i.CreatedAt = now
	i.UpdatedAt = now

	if err := s.Store.Items().CreateItem(ctx, i); err != nil {
		return domain.Item{}, err
	}

	s.Notifier.NotifyActivity(ctx, actor, domain.ActivityItemCreated, i.PartAssyName)
	return i, nil
}

func (s *ItemService) UpdateItem(ctx context.Context, actor Actor, i domain.Item) (domain.Item, error) {
	if err := s.Store.Items().UpdateItem(ctx, i); err != nil {
		return domain.Item{}, err
	}

	updated, err := s.Store.Items().GetItemByID(ctx, i.ID)
	if err != nil {
		return domain.Item{}, err
	}

	s.Notifier.NotifyActivity(ctx, actor, domain.ActivityItemUpdated, updated.PartAssyName)
	return updated, nil
}

func (s *ItemService) DeleteItem(ctx context.Context, actor Actor, id string) error {
	i, err := s.Store.Items().GetItemByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.Store.Items().DeleteItem(ctx, id); err != nil {
		return err
	}

	s.Notifier.NotifyActivity(ctx, actor, domain.ActivityItemDeleted, i.PartAssyName)
	return nil
}
