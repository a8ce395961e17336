package mapping

import (
	"fmt"
	"time"

	"github.com/SscSPs/pvs_ledger/internal/apperrors"
	"github.com/SscSPs/pvs_ledger/internal/core/domain"
	"github.com/SscSPs/pvs_ledger/internal/models"
)

// JournalDateLayout is the text layout of journal.date.
const JournalDateLayout = time.RFC3339Nano

// ToModelJournal converts a domain Journal to a model Journal
func ToModelJournal(d domain.Journal) models.Journal {
	return models.Journal{
		ID:        d.ID,
		Date:      d.Date.Format(JournalDateLayout),
		Ref:       d.Reference,
		Narrative: d.Narrative,
		DayBookID: d.DayBookID,
	}
}

// ToDomainJournal converts a model Journal to a domain Journal
func ToDomainJournal(m models.Journal) (domain.Journal, error) {
	if m.ID <= 0 {
		return domain.Journal{}, fmt.Errorf("%w: journal row has no id", apperrors.ErrDecode)
	}
	date, err := time.Parse(JournalDateLayout, m.Date)
	if err != nil {
		return domain.Journal{}, fmt.Errorf("%w: journal %d has unreadable date %q", apperrors.ErrDecode, m.ID, m.Date)
	}
	return domain.Journal{
		ID:        m.ID,
		Date:      date,
		Reference: m.Ref,
		Narrative: m.Narrative,
		DayBookID: m.DayBookID,
	}, nil
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry,
// reading the stored integer at the given scale.
func ToDomainLedgerEntry(m models.LedgerEntry, scale int32) (domain.LedgerEntry, error) {
	amount, err := domain.NewMoney(m.Amount, scale)
	if err != nil {
		return domain.LedgerEntry{}, fmt.Errorf("%w: ledger row %d: %v", apperrors.ErrDecode, m.ID, err)
	}
	return domain.LedgerEntry{
		JournalID: m.JournalID,
		AccountID: m.AccountID,
		Amount:    amount,
	}, nil
}

// ToDomainTransaction assembles a journal and its ledger rows and checks the
// double-entry invariant on the result.
func ToDomainTransaction(j models.Journal, entries []models.LedgerEntry, scale int32) (domain.Transaction, error) {
	journal, err := ToDomainJournal(j)
	if err != nil {
		return domain.Transaction{}, err
	}
	txn := domain.Transaction{
		Journal:       journal,
		LedgerEntries: make([]domain.LedgerEntry, 0, len(entries)),
	}
	for _, e := range entries {
		if e.JournalID != j.ID {
			return domain.Transaction{}, fmt.Errorf("%w: ledger row %d belongs to journal %d, not %d", apperrors.ErrDecode, e.ID, e.JournalID, j.ID)
		}
		entry, err := ToDomainLedgerEntry(e, scale)
		if err != nil {
			return domain.Transaction{}, err
		}
		txn.LedgerEntries = append(txn.LedgerEntries, entry)
	}
	if err := txn.CheckInvariant(); err != nil {
		return domain.Transaction{}, err
	}
	return txn, nil
}
