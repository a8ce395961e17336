package repositories

import (
	"context"

	"github.com/SscSPs/pvs_ledger/internal/core/domain"
)

// PeriodRepositoryFacade covers CRUD on accounting periods.
type PeriodRepositoryFacade interface {
	FindPeriodByID(ctx context.Context, id int64) (domain.Period, bool, error)
	FindPeriodByName(ctx context.Context, name string) (domain.Period, bool, error)
	ListPeriods(ctx context.Context) ([]domain.Period, error)
	CreatePeriod(ctx context.Context, name string) (int64, error)
	RenamePeriod(ctx context.Context, oldName, newName string) (bool, error)
	DeletePeriod(ctx context.Context, id int64) (bool, error)
}
