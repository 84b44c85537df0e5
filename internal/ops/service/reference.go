package service

import (
	"context"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
	"github.com/prakarsateknik/opsdesk/internal/ops/store"
)

// ReferenceService serves the dropdown data of the production entry form:
// machine and operator lists plus the distinct historical values mined from
// the production log.
type ReferenceService struct {
	Store store.Store
}

func (s *ReferenceService) ListMachines(ctx context.Context) ([]domain.Machine, error) {
	return s.Store.Machines().ListMachines(ctx)
}

func (s *ReferenceService) ListOperators(ctx context.Context) ([]domain.Operator, error) {
	return s.Store.Operators().ListOperators(ctx)
}

func (s *ReferenceService) DistinctOperators(ctx context.Context) ([]string, error) {
	return s.Store.Operators().DistinctOperatorNames(ctx)
}

func (s *ReferenceService) DistinctMachines(ctx context.Context) ([]string, error) {
	return s.Store.Machines().DistinctMachineNames(ctx)
}

func (s *ReferenceService) DistinctQCLines(ctx context.Context) ([]string, error) {
	return s.Store.Production().DistinctQCLines(ctx)
}

func (s *ReferenceService) DistinctPartAssy(ctx context.Context) ([]string, error) {
	return s.Store.Production().DistinctPartAssy(ctx)
}

func (s *ReferenceService) DistinctPartNames(ctx context.Context) ([]string, error) {
	return s.Store.Production().DistinctPartNames(ctx)
}

func (s *ReferenceService) DistinctProcesses(ctx context.Context) ([]string, error) {
	return s.Store.Production().DistinctProcesses(ctx)
}

// GetPartDetailsByPartAssy resolves part name and process for a part assy,
// preferring the item master and falling back to the latest production
// record carrying that assy.
func (s *ReferenceService) GetPartDetailsByPartAssy(ctx context.Context, partAssy string) (domain.PartDetails, error) {
	item, err := s.Store.Items().GetItemByPartAssyName(ctx, partAssy)
	if err == nil {
		return domain.PartDetails{PartName: item.PartName, Process: item.Process}, nil
	}
	return s.Store.Production().GetPartDetailsByPartAssy(ctx, partAssy)
}
