package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/pvs_ledger/internal/apperrors"
)

var (
	ErrJournalUnbalanced  = fmt.Errorf("%w: journal entries do not balance to zero", apperrors.ErrValidation)
	ErrJournalMinEntries  = fmt.Errorf("%w: journal must have at least two ledger entries", apperrors.ErrValidation)
	ErrJournalMinAccounts = fmt.Errorf("%w: journal must affect at least two different accounts", apperrors.ErrValidation)
)

// Journal is the header of one posted transaction.
type Journal struct {
	ID        int64     `json:"id"`
	Date      time.Time `json:"date"`
	Reference string    `json:"reference"`
	Narrative string    `json:"narrative"`
	DayBookID int64     `json:"dayBookID"`
}

// PostingLine is one (account, signed amount) pair of a journal about to be posted.
type PostingLine struct {
	AccountID int64 `json:"accountID"`
	Amount    Money `json:"amount"`
}

// NewTransfer builds the two lines of a simple transfer: amount leaves from
// and arrives in to. The lines always sum to zero.
func NewTransfer(amount Money, from, to int64) []PostingLine {
	return []PostingLine{
		{AccountID: from, Amount: amount.Negate()},
		{AccountID: to, Amount: amount},
	}
}

// ValidatePostingLines checks the double-entry rules on lines before they are written.
func ValidatePostingLines(lines []PostingLine) error {
	if len(lines) < 2 {
		return ErrJournalMinEntries
	}
	accounts := make(map[int64]struct{}, len(lines))
	amounts := make([]Money, 0, len(lines))
	for i, line := range lines {
		if line.AccountID <= 0 {
			return fmt.Errorf("%w: line %d has no account", apperrors.ErrValidation, i)
		}
		accounts[line.AccountID] = struct{}{}
		amounts = append(amounts, line.Amount)
	}
	if len(accounts) < 2 {
		return ErrJournalMinAccounts
	}
	if sum := SumMoney(amounts...); !sum.IsZero() {
		return fmt.Errorf("%w (sum %s)", ErrJournalUnbalanced, sum.String())
	}
	return nil
}
