package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SscSPs/pvs_ledger/internal/apperrors"
	"github.com/SscSPs/pvs_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pvs_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pvs_ledger/internal/middleware"
	"github.com/SscSPs/pvs_ledger/internal/models"
	"github.com/SscSPs/pvs_ledger/internal/utils/mapping"
	"github.com/SscSPs/pvs_ledger/internal/utils/pagination"
)

const (
	insertJournal = `INSERT INTO journal (date, ref, narrative, daybook_id) VALUES ($1, $2, $3, $4) RETURNING id`
	insertLedger  = `INSERT INTO ledger (journal_id, account_id, amount) VALUES ($1, $2, $3)`

	selectJournal       = `SELECT id, date, ref, narrative, daybook_id FROM journal`
	selectLedgerEntries = `SELECT id, journal_id, account_id, amount FROM ledger WHERE journal_id = $1 ORDER BY id`
)

// SQLJournalRepository is the posting engine: it writes a journal and its
// ledger lines as one unit of work and reads them back with the double-entry
// invariant checked.
type SQLJournalRepository struct {
	BaseRepository
}

func newSQLJournalRepository(store *Store) *SQLJournalRepository {
	return &SQLJournalRepository{BaseRepository{store: store}}
}

var _ portsrepo.JournalRepositoryFacade = (*SQLJournalRepository)(nil)

func decodeJournal(row Row) (models.Journal, error) {
	var (
		m   models.Journal
		err error
	)
	if m.ID, err = row.Int64("id"); err != nil {
		return m, err
	}
	if m.Date, err = row.String("date"); err != nil {
		return m, err
	}
	if m.Ref, err = row.String("ref"); err != nil {
		return m, err
	}
	if m.Narrative, err = row.String("narrative"); err != nil {
		return m, err
	}
	m.DayBookID, err = row.Int64("daybook_id")
	return m, err
}

func decodeLedgerEntry(row Row) (models.LedgerEntry, error) {
	var (
		m   models.LedgerEntry
		err error
	)
	if m.ID, err = row.Int64("id"); err != nil {
		return m, err
	}
	if m.JournalID, err = row.Int64("journal_id"); err != nil {
		return m, err
	}
	if m.AccountID, err = row.Int64("account_id"); err != nil {
		return m, err
	}
	m.Amount, err = row.Int64("amount")
	return m, err
}

// PostTransaction records a transfer of amount from one account to another:
// a journal row, a ledger line of -amount against from and one of +amount
// against to. See PostJournal for the result contract.
func (r *SQLJournalRepository) PostTransaction(ctx context.Context, timestamp time.Time, narrative string, amount domain.Money,
	from, to domain.Account, reference string, dayBookID int64,
) (bool, error) {
	journal := domain.Journal{
		Date:      timestamp,
		Reference: reference,
		Narrative: narrative,
		DayBookID: dayBookID,
	}
	return r.PostJournal(ctx, journal, domain.NewTransfer(amount, from.ID, to.ID))
}

// PostJournal writes journal and lines atomically.
//
//   - A failed insert rolls everything back and returns false with the
//     classified error (ErrDuplicate, ErrConstraint or ErrStoreAccess).
//   - A journal insert that yields no id rolls back and returns ErrInvariantViolation.
//   - If fewer writes succeeded than were planned, or the commit fails, the
//     unit is rolled back and the result is false with a nil error.
//
// The write runs to completion even if ctx is cancelled part way.
func (r *SQLJournalRepository) PostJournal(ctx context.Context, journal domain.Journal, lines []domain.PostingLine) (bool, error) {
	if err := domain.ValidatePostingLines(lines); err != nil {
		return false, err
	}
	scale := r.store.MoneyScale()
	amounts := make([]int64, len(lines))
	for i, line := range lines {
		m, err := line.Amount.Rescale(scale)
		if err != nil {
			return false, fmt.Errorf("ledger line %d: %w", i, err)
		}
		amounts[i] = m.ScaledInteger()
	}

	ctx = context.WithoutCancel(ctx)
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("reference", journal.Reference))

	uow, err := r.store.BeginUnitOfWork(ctx)
	if err != nil {
		return false, err
	}
	defer uow.Release(ctx)

	m := mapping.ToModelJournal(journal)
	journalID, err := InsertReturningID(ctx, uow.Executor(), insertJournal, m.Date, m.Ref, m.Narrative, m.DayBookID)
	if err != nil {
		uow.Rollback(ctx)
		return false, fmt.Errorf("failed to insert journal %q: %w", journal.Reference, err)
	}
	if journalID == 0 {
		uow.Rollback(ctx)
		logger.Error("Journal insert returned no id")
		return false, fmt.Errorf("%w: journal %q was written without an id", apperrors.ErrInvariantViolation, journal.Reference)
	}
	uow.RecordChange()

	for i, line := range lines {
		n, err := Exec(ctx, uow.Executor(), insertLedger, journalID, line.AccountID, amounts[i])
		if err != nil {
			uow.Rollback(ctx)
			return false, fmt.Errorf("failed to insert ledger line for account %d: %w", line.AccountID, err)
		}
		if n == 1 {
			uow.RecordChange()
		}
	}

	committed := uow.End(ctx, 1+len(lines))
	if committed {
		logger.Info("Journal posted", slog.Int64("journal_id", journalID), slog.Int("lines", len(lines)))
	}
	return committed, nil
}

// GetTransactions returns every journal with its ledger entries, in id order.
func (r *SQLJournalRepository) GetTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return r.findTransactions(ctx, selectJournal+` ORDER BY id`)
}

func (r *SQLJournalRepository) GetTransactionsForDayBook(ctx context.Context, dayBookID int64) ([]domain.Transaction, error) {
	return r.findTransactions(ctx, selectJournal+` WHERE daybook_id = $1 ORDER BY id`, dayBookID)
}

// GetTransactionsForAccountInDayBook returns the journals of a day book that
// post at least one line to accountID. Each carries all of its entries.
func (r *SQLJournalRepository) GetTransactionsForAccountInDayBook(ctx context.Context, accountID, dayBookID int64) ([]domain.Transaction, error) {
	return r.findTransactions(ctx,
		selectJournal+` WHERE daybook_id = $1 AND id IN (SELECT journal_id FROM ledger WHERE account_id = $2) ORDER BY id`,
		dayBookID, accountID)
}

func (r *SQLJournalRepository) FindTransactionByReference(ctx context.Context, reference string) (domain.Transaction, bool, error) {
	txns, err := r.findTransactions(ctx, selectJournal+` WHERE ref = $1`, reference)
	if err != nil || len(txns) == 0 {
		return domain.Transaction{}, false, err
	}
	return txns[0], true, nil
}

// ListTransactions pages through journals with a keyset cursor: the filter,
// cursor and limit all go into the query, and only one row beyond the page is
// read to decide whether another page follows.
func (r *SQLJournalRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int,
	nextToken *string,
) ([]domain.Transaction, *string, error) {
	limit = pagination.PageSize(limit)
	var after int64
	if nextToken != nil {
		var err error
		if after, err = pagination.DecodeToken(*nextToken); err != nil {
			return nil, nil, err
		}
	}

	args := []any{after}
	query := selectJournal + ` WHERE id > $1`
	if filter.DayBookID > 0 {
		args = append(args, filter.DayBookID)
		query += ` AND daybook_id = $` + strconv.Itoa(len(args))
	}
	if filter.AccountID > 0 {
		args = append(args, filter.AccountID)
		query += ` AND id IN (SELECT journal_id FROM ledger WHERE account_id = $` + strconv.Itoa(len(args)) + `)`
	}
	args = append(args, limit+1)
	query += ` ORDER BY id LIMIT $` + strconv.Itoa(len(args))

	txns, more, err := r.findTransactionsPage(ctx, limit, query, args...)
	if err != nil {
		return nil, nil, err
	}
	if !more {
		return txns, nil, nil
	}
	token := pagination.EncodeToken(txns[len(txns)-1].ID)
	return txns, &token, nil
}

func (r *SQLJournalRepository) findTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	txns, _, err := r.findTransactionsPage(ctx, 0, query, args...)
	return txns, err
}

// findTransactionsPage reads journals first and then each kept journal's
// entries, all on one connection. With keep > 0 at most keep journals are
// kept and more reports whether the query returned others. Any kept journal
// failing the invariant check aborts the read.
func (r *SQLJournalRepository) findTransactionsPage(ctx context.Context, keep int, query string, args ...any) (txns []domain.Transaction, more bool, err error) {
	err = r.withConn(ctx, func(conn *sql.Conn) error {
		journals, err := Collect(Query(ctx, conn, decodeJournal, query, args...))
		if err != nil {
			return fmt.Errorf("failed to read journals: %w", err)
		}
		if keep > 0 && len(journals) > keep {
			journals, more = journals[:keep], true
		}
		txns = make([]domain.Transaction, 0, len(journals))
		for _, j := range journals {
			entries, err := Collect(Query(ctx, conn, decodeLedgerEntry, selectLedgerEntries, j.ID))
			if err != nil {
				return fmt.Errorf("failed to read ledger entries of journal %d: %w", j.ID, err)
			}
			txn, err := mapping.ToDomainTransaction(j, entries, r.store.MoneyScale())
			if err != nil {
				if errors.Is(err, apperrors.ErrInvariantViolation) {
					middleware.GetLoggerFromCtx(ctx).Error("Corrupt journal in store",
						slog.Int64("journal_id", j.ID), slog.String("error", err.Error()))
				}
				return err
			}
			txns = append(txns, txn)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return txns, more, nil
}
