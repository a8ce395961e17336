package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/pvs_ledger/internal/apperrors"
)

// AccountType defines the fundamental accounting type of an account.
// It is persisted as its integer code.
type AccountType int64

const (
	Asset AccountType = iota + 1
	Liability
	Income
	Expense
	RetainedEarnings
)

var accountTypeNames = map[AccountType]string{
	Asset:            "ASSET",
	Liability:        "LIABILITY",
	Income:           "INCOME",
	Expense:          "EXPENSE",
	RetainedEarnings: "RETAINED_EARNINGS",
}

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	_, ok := accountTypeNames[t]
	return ok
}

func (t AccountType) String() string {
	if name, ok := accountTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("AccountType(%d)", int64(t))
}

// ParseAccountType accepts the upper-case name of an account type, case-insensitively.
func ParseAccountType(s string) (AccountType, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for t, name := range accountTypeNames {
		if name == want {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, s)
}

// AccountTypeFromCode maps a persisted integer code back to an AccountType.
func AccountTypeFromCode(code int64) (AccountType, error) {
	t := AccountType(code)
	if !t.Valid() {
		return 0, fmt.Errorf("unknown account type code %d", code)
	}
	return t, nil
}

func (t AccountType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: unknown account type %d", apperrors.ErrValidation, int64(t))
	}
	return []byte(t.String()), nil
}

func (t *AccountType) UnmarshalText(text []byte) error {
	parsed, err := ParseAccountType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Account represents a ledger account within the core domain.
type Account struct {
	ID   int64       `json:"id"`
	Name string      `json:"name"`
	Type AccountType `json:"type"`
}
