package repositories

import (
	"context"

	"github.com/SscSPs/pvs_ledger/internal/core/domain"
)

// AccountReader defines read operations for account data.
// Lookups report absence through the boolean rather than an error.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, id int64) (domain.Account, bool, error)

	// FindAccountByName retrieves an account by its unique name.
	FindAccountByName(ctx context.Context, name string) (domain.Account, bool, error)

	// ListAccounts retrieves every account ordered by id.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// CreateAccount persists a new account and returns its id.
	CreateAccount(ctx context.Context, name string, accountType domain.AccountType) (int64, error)

	// RenameAccount changes the name of the account called oldName.
	// It reports whether a row was changed.
	RenameAccount(ctx context.Context, oldName, newName string) (bool, error)

	// DeleteAccount removes an account that no ledger line references.
	DeleteAccount(ctx context.Context, id int64) (bool, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
