package sqlstore

import (
	"context"
	"fmt"

	"github.com/SscSPs/pvs_ledger/internal/apperrors"
	"github.com/SscSPs/pvs_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pvs_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pvs_ledger/internal/models"
	"github.com/SscSPs/pvs_ledger/internal/utils/mapping"
)

const selectAccount = `SELECT id, name, type FROM account`

type SQLAccountRepository struct {
	BaseRepository
}

// newSQLAccountRepository creates a new repository for account data.
func newSQLAccountRepository(store *Store) *SQLAccountRepository {
	return &SQLAccountRepository{BaseRepository{store: store}}
}

var _ portsrepo.AccountRepositoryFacade = (*SQLAccountRepository)(nil)

func decodeAccount(row Row) (models.Account, error) {
	var (
		m   models.Account
		err error
	)
	if m.ID, err = row.Int64("id"); err != nil {
		return m, err
	}
	if m.Name, err = row.String("name"); err != nil {
		return m, err
	}
	if m.Type, err = row.Int64("type"); err != nil {
		return m, err
	}
	return m, nil
}

func (r *SQLAccountRepository) FindAccountByID(ctx context.Context, id int64) (domain.Account, bool, error) {
	return findOne(ctx, &r.BaseRepository, decodeAccount, mapping.ToDomainAccount, selectAccount+` WHERE id = $1`, id)
}

func (r *SQLAccountRepository) FindAccountByName(ctx context.Context, name string) (domain.Account, bool, error) {
	return findOne(ctx, &r.BaseRepository, decodeAccount, mapping.ToDomainAccount, selectAccount+` WHERE name = $1`, name)
}

func (r *SQLAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return findAll(ctx, &r.BaseRepository, decodeAccount, mapping.ToDomainAccounts, selectAccount+` ORDER BY id`)
}

// CreateAccount inserts a new account. A taken name fails with apperrors.ErrDuplicate,
// an unknown account type with apperrors.ErrValidation before anything is written.
func (r *SQLAccountRepository) CreateAccount(ctx context.Context, name string, accountType domain.AccountType) (int64, error) {
	if !accountType.Valid() {
		return 0, fmt.Errorf("%w: unknown account type code %d for account %q", apperrors.ErrValidation, int64(accountType), name)
	}
	id, err := r.insertID(ctx, `INSERT INTO account (name, type) VALUES ($1, $2) RETURNING id`, name, int64(accountType))
	if err != nil {
		return 0, fmt.Errorf("failed to create account %q: %w", name, err)
	}
	return id, nil
}

func (r *SQLAccountRepository) RenameAccount(ctx context.Context, oldName, newName string) (bool, error) {
	changed, err := r.execChanged(ctx, `UPDATE account SET name = $1 WHERE name = $2`, newName, oldName)
	if err != nil {
		return false, fmt.Errorf("failed to rename account %q: %w", oldName, err)
	}
	return changed, nil
}

// DeleteAccount removes an account. One still referenced by a ledger line
// fails with apperrors.ErrConstraint.
func (r *SQLAccountRepository) DeleteAccount(ctx context.Context, id int64) (bool, error) {
	changed, err := r.execChanged(ctx, `DELETE FROM account WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete account %d: %w", id, err)
	}
	return changed, nil
}
