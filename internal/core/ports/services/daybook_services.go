package services

import (
	"context"

	"github.com/SscSPs/pvs_ledger/internal/core/domain"
)

// DayBookSvcFacade manages day books and which one is current.
type DayBookSvcFacade interface {
	// CreateDayBook creates a day book in an existing period.
	CreateDayBook(ctx context.Context, name string, periodID int64) (domain.DayBook, error)
	GetDayBookByID(ctx context.Context, id int64) (domain.DayBook, error)
	GetDayBookByName(ctx context.Context, name string) (domain.DayBook, error)
	ListDayBooks(ctx context.Context) ([]domain.DayBook, error)
	RenameDayBook(ctx context.Context, oldName, newName string) (bool, error)
	DeleteDayBook(ctx context.Context, id int64) (bool, error)

	// GetCurrentDayBook returns the configured default day book, failing
	// with apperrors.ErrNotFound when none is set or it no longer exists.
	GetCurrentDayBook(ctx context.Context) (domain.DayBook, error)
	SetCurrentDayBook(ctx context.Context, dayBookID int64) error
}
