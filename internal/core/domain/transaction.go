package domain

import (
	"fmt"

	"github.com/SscSPs/pvs_ledger/internal/apperrors"
)

// LedgerEntry is one signed posting of a journal against an account.
// A negative amount is money leaving the account.
type LedgerEntry struct {
	JournalID int64 `json:"journalID"`
	AccountID int64 `json:"accountID"`
	Amount    Money `json:"amount"`
}

// TransactionFilter narrows a transaction listing. Zero fields match everything.
type TransactionFilter struct {
	DayBookID int64
	AccountID int64
}

// Transaction is a journal together with its ledger entries, in insertion order.
type Transaction struct {
	Journal
	LedgerEntries []LedgerEntry `json:"ledgerEntries"`
}

// CheckInvariant verifies a transaction read back from the store: at least
// two entries that sum to zero. Anything else means the persisted data is corrupt.
func (t Transaction) CheckInvariant() error {
	if len(t.LedgerEntries) < 2 {
		return fmt.Errorf("%w: journal %d (%s) has %d ledger entries", apperrors.ErrInvariantViolation, t.ID, t.Reference, len(t.LedgerEntries))
	}
	amounts := make([]Money, len(t.LedgerEntries))
	for i, e := range t.LedgerEntries {
		amounts[i] = e.Amount
	}
	if sum := SumMoney(amounts...); !sum.IsZero() {
		return fmt.Errorf("%w: journal %d (%s) sums to %s", apperrors.ErrInvariantViolation, t.ID, t.Reference, sum.String())
	}
	return nil
}

// Touches reports whether any entry posts to accountID.
func (t Transaction) Touches(accountID int64) bool {
	for _, e := range t.LedgerEntries {
		if e.AccountID == accountID {
			return true
		}
	}
	return false
}
