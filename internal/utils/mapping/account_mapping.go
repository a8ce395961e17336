package mapping

import (
	"fmt"
	"strings"

	"github.com/SscSPs/pvs_ledger/internal/apperrors"
	"github.com/SscSPs/pvs_ledger/internal/core/domain"
	"github.com/SscSPs/pvs_ledger/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		ID:   d.ID,
		Name: d.Name,
		Type: int64(d.Type),
	}
}

// ToDomainAccount converts a model Account to a domain Account.
// A row without an id or name, or with an unknown type code, is rejected.
func ToDomainAccount(m models.Account) (domain.Account, error) {
	if m.ID <= 0 {
		return domain.Account{}, fmt.Errorf("%w: account row has no id", apperrors.ErrDecode)
	}
	if strings.TrimSpace(m.Name) == "" {
		return domain.Account{}, fmt.Errorf("%w: account %d has no name", apperrors.ErrDecode, m.ID)
	}
	accountType, err := domain.AccountTypeFromCode(m.Type)
	if err != nil {
		return domain.Account{}, fmt.Errorf("%w: account %d: %v", apperrors.ErrDecode, m.ID, err)
	}
	return domain.Account{
		ID:   m.ID,
		Name: m.Name,
		Type: accountType,
	}, nil
}

// ToDomainAccounts converts a slice of model Accounts, stopping at the first bad row.
func ToDomainAccounts(ms []models.Account) ([]domain.Account, error) {
	out := make([]domain.Account, 0, len(ms))
	for _, m := range ms {
		d, err := ToDomainAccount(m)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
