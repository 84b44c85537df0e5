package service

import (
	"context"
	"time"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
	"github.com/prakarsateknik/opsdesk/internal/ops/store"
	"github.com/prakarsateknik/opsdesk/pkg/idx"
)

// CustomerService owns the customer collection. Every successful mutation
// raises the matching activity notification to the directors.
type CustomerService struct {
	Store    store.Store
	Notifier *Notifier
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.Store.Customers().ListCustomers(ctx)
}

func (s *CustomerService) GetCustomerByID(ctx context.Context, id string) (domain.Customer, error) {
	return s.Store.Customers().GetCustomerByID(ctx, id)
}

// FindCustomerByName resolves a customer by partial, case-insensitive name.
func (s *CustomerService) FindCustomerByName(ctx context.Context, name string) (domain.Customer, error) {
	return s.Store.Customers().FindCustomerByName(ctx, name)
}

func (s *CustomerService) CreateCustomer(ctx context.Context, actor Actor, c domain.Customer) (domain.Customer, error) {
	now := time.Now()
	c.ID = idx.New().String()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.Store.Customers().CreateCustomer(ctx, c); err != nil {
		return domain.Customer{}, err
	}

	s.Notifier.NotifyActivity(ctx, actor, domain.ActivityCustomerCreated, c.CustomerName)
	return c, nil
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, actor Actor, c domain.Customer) (domain.Customer, error) {
	if err := s.Store.Customers().UpdateCustomer(ctx, c); err != nil {
		return domain.Customer{}, err
	}

	updated, err := s.Store.Customers().GetCustomerByID(ctx, c.ID)
	if err != nil {
		return domain.Customer{}, err
	}

	s.Notifier.NotifyActivity(ctx, actor, domain.ActivityCustomerUpdated, updated.CustomerName)
	return updated, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, actor Actor, id string) error {
	// Fetch first so the notification can name what was deleted.
	c, err := s.Store.Customers().GetCustomerByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.Store.Customers().DeleteCustomer(ctx, id); err != nil {
		return err
	}

	s.Notifier.NotifyActivity(ctx, actor, domain.ActivityCustomerDeleted, c.CustomerName)
	return nil
}
