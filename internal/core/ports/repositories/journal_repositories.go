package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/pvs_ledger/internal/core/domain"
)

// JournalWriter posts journals atomically. Both methods return false with a
// nil error when the unit of work was rolled back because the number of
// successful writes did not match the number planned, or the commit failed.
type JournalWriter interface {
	// PostTransaction records amount leaving from and arriving in to.
	PostTransaction(ctx context.Context, timestamp time.Time, narrative string, amount domain.Money,
		from, to domain.Account, reference string, dayBookID int64) (bool, error)

	// PostJournal records a journal with any number of balanced lines.
	PostJournal(ctx context.Context, journal domain.Journal, lines []domain.PostingLine) (bool, error)
}

// JournalReader reads journals back with their ledger entries. Every
// transaction returned has passed the double-entry invariant check.
type JournalReader interface {
	GetTransactions(ctx context.Context) ([]domain.Transaction, error)
	GetTransactionsForDayBook(ctx context.Context, dayBookID int64) ([]domain.Transaction, error)
	GetTransactionsForAccountInDayBook(ctx context.Context, accountID, dayBookID int64) ([]domain.Transaction, error)
	FindTransactionByReference(ctx context.Context, reference string) (domain.Transaction, bool, error)

	// ListTransactions returns up to limit transactions matching filter with a
	// journal id after the cursor in nextToken, ordered by id, and the token for
	// the following page (nil when there is none).
	ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalWriter
	JournalReader
}
