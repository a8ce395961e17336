package services

import (
	"context"

	"github.com/SscSPs/pvs_ledger/internal/core/domain"
)

// PeriodSvcFacade manages accounting periods.
type PeriodSvcFacade interface {
	CreatePeriod(ctx context.Context, name string) (domain.Period, error)
	GetPeriodByID(ctx context.Context, id int64) (domain.Period, error)
	GetPeriodByName(ctx context.Context, name string) (domain.Period, error)
	ListPeriods(ctx context.Context) ([]domain.Period, error)
	RenamePeriod(ctx context.Context, oldName, newName string) (bool, error)
	DeletePeriod(ctx context.Context, id int64) (bool, error)
}
