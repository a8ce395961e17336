package services

import (
	"context"

	"github.com/SscSPs/pvs_ledger/internal/core/domain"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves an account, failing with apperrors.ErrNotFound when absent.
	GetAccountByID(ctx context.Context, id int64) (domain.Account, error)

	// GetAccountByName retrieves an account by its unique name.
	GetAccountByName(ctx context.Context, name string) (domain.Account, error)

	// ListAccounts retrieves every account ordered by id.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account and returns it.
	CreateAccount(ctx context.Context, name string, accountType domain.AccountType) (domain.Account, error)

	CreateAssetAccount(ctx context.Context, name string) (domain.Account, error)
	CreateLiabilityAccount(ctx context.Context, name string) (domain.Account, error)
	CreateIncomeAccount(ctx context.Context, name string) (domain.Account, error)
	CreateExpenseAccount(ctx context.Context, name string) (domain.Account, error)

	// RenameAccount changes an account's name and reports whether anything changed.
	RenameAccount(ctx context.Context, oldName, newName string) (bool, error)

	// DeleteAccount removes an account no ledger entry refers to.
	DeleteAccount(ctx context.Context, id int64) (bool, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
