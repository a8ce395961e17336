package services

import (
	"context"
	"time"

	"github.com/SscSPs/pvs_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalWriterSvc posts transactions. A false result with a nil error means
// the store rolled the posting back; nothing was recorded.
type JournalWriterSvc interface {
	// PostTransaction moves amount from one account to another.
	PostTransaction(ctx context.Context, timestamp time.Time, narrative string, amount domain.Money,
		from, to domain.Account, reference string, dayBookID int64) (bool, error)

	// PostJournal records a journal with any number of balanced lines.
	PostJournal(ctx context.Context, journal domain.Journal, lines []domain.PostingLine) (bool, error)
}

// JournalReaderSvc reads posted transactions back.
type JournalReaderSvc interface {
	GetTransactions(ctx context.Context) ([]domain.Transaction, error)
	GetTransactionsForDayBook(ctx context.Context, dayBook domain.DayBook) ([]domain.Transaction, error)
	GetTransactionsForAccountInDayBook(ctx context.Context, account domain.Account, dayBook domain.DayBook) ([]domain.Transaction, error)
	GetTransactionByReference(ctx context.Context, reference string) (domain.Transaction, error)

	// ListTransactions returns one page of matching transactions and the token
	// for the next page, nil on the last one.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// JournalCalculatorSvc defines calculation operations related to journals
type JournalCalculatorSvc interface {
	// CalculateAccountBalance sums the account's ledger entries within a day book.
	CalculateAccountBalance(ctx context.Context, account domain.Account, dayBook domain.DayBook) (decimal.Decimal, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalWriterSvc
	JournalReaderSvc
	JournalCalculatorSvc
}
