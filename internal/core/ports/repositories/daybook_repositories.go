package repositories

import (
	"context"

	"github.com/SscSPs/pvs_ledger/internal/core/domain"
)

// DayBookRepositoryFacade covers CRUD on day books.
type DayBookRepositoryFacade interface {
	FindDayBookByID(ctx context.Context, id int64) (domain.DayBook, bool, error)
	FindDayBookByName(ctx context.Context, name string) (domain.DayBook, bool, error)
	ListDayBooks(ctx context.Context) ([]domain.DayBook, error)
	// CreateDayBook fails with a constraint error when periodID does not exist.
	CreateDayBook(ctx context.Context, name string, periodID int64) (int64, error)
	RenameDayBook(ctx context.Context, oldName, newName string) (bool, error)
	DeleteDayBook(ctx context.Context, id int64) (bool, error)
}

// SystemConfigRepository stores the single default-configuration row.
type SystemConfigRepository interface {
	// GetCurrentDayBookID returns the configured day book id, if one is set.
	GetCurrentDayBookID(ctx context.Context) (int64, bool, error)

	// SetCurrentDayBookID replaces the configuration row.
	SetCurrentDayBookID(ctx context.Context, dayBookID int64) error
}
