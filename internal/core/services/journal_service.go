package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/pvs_ledger/internal/apperrors"
	"github.com/SscSPs/pvs_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pvs_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pvs_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// journalService posts and reads back double-entry transactions.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountSvc  portssvc.AccountReaderSvc
	dayBookSvc  portssvc.DayBookSvcFacade
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountSvc portssvc.AccountReaderSvc, dayBookSvc portssvc.DayBookSvcFacade) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
		dayBookSvc:  dayBookSvc,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func validateJournalHeader(reference, narrative string) error {
	if strings.TrimSpace(reference) == "" {
		return fmt.Errorf("%w: reference is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(narrative) == "" {
		return fmt.Errorf("%w: narrative is required", apperrors.ErrValidation)
	}
	return nil
}

func (s *journalService) PostTransaction(ctx context.Context, timestamp time.Time, narrative string, amount domain.Money,
	from, to domain.Account, reference string, dayBookID int64) (bool, error) {
	if err := validateJournalHeader(reference, narrative); err != nil {
		return false, err
	}
	if amount.IsZero() {
		return false, fmt.Errorf("%w: transfer amount must be non-zero", apperrors.ErrInvalidAmount)
	}
	if from.ID == to.ID {
		return false, fmt.Errorf("%w: cannot transfer from account %d to itself", domain.ErrJournalMinAccounts, from.ID)
	}

	journal := domain.Journal{Date: timestamp, Reference: reference, Narrative: narrative, DayBookID: dayBookID}
	lines := domain.NewTransfer(amount, from.ID, to.ID)
	if err := s.checkReferences(ctx, journal, lines); err != nil {
		return false, err
	}

	posted, err := s.journalRepo.PostTransaction(ctx, timestamp, narrative, amount, from, to, reference, dayBookID)
	return s.logPosting(ctx, reference, posted, err)
}

func (s *journalService) PostJournal(ctx context.Context, journal domain.Journal, lines []domain.PostingLine) (bool, error) {
	if err := validateJournalHeader(journal.Reference, journal.Narrative); err != nil {
		return false, err
	}
	if err := domain.ValidatePostingLines(lines); err != nil {
		return false, err
	}
	if err := s.checkReferences(ctx, journal, lines); err != nil {
		return false, err
	}

	posted, err := s.journalRepo.PostJournal(ctx, journal, lines)
	return s.logPosting(ctx, journal.Reference, posted, err)
}

// checkReferences resolves the day book and every distinct account so that
// unknown ids fail before the store opens a unit of work.
func (s *journalService) checkReferences(ctx context.Context, journal domain.Journal, lines []domain.PostingLine) error {
	if _, err := s.dayBookSvc.GetDayBookByID(ctx, journal.DayBookID); err != nil {
		return err
	}
	seen := make(map[int64]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.AccountID]; ok {
			continue
		}
		seen[line.AccountID] = struct{}{}
		if _, err := s.accountSvc.GetAccountByID(ctx, line.AccountID); err != nil {
			return err
		}
	}
	return nil
}

func (s *journalService) logPosting(ctx context.Context, reference string, posted bool, err error) (bool, error) {
	logger := s.GetLogger(ctx)
	switch {
	case err != nil:
		s.LogError(ctx, err, "Failed to post journal", slog.String("reference", reference))
		return false, err
	case !posted:
		logger.Warn("Journal posting rolled back", slog.String("reference", reference))
	default:
		logger.Info("Journal posted", slog.String("reference", reference))
	}
	return posted, nil
}

func (s *journalService) GetTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.journalRepo.GetTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return nonNil(txns), nil
}

func (s *journalService) GetTransactionsForDayBook(ctx context.Context, dayBook domain.DayBook) ([]domain.Transaction, error) {
	txns, err := s.journalRepo.GetTransactionsForDayBook(ctx, dayBook.ID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.Int64("daybook_id", dayBook.ID))
		return nil, fmt.Errorf("failed to list transactions for day book %q: %w", dayBook.Name, err)
	}
	return nonNil(txns), nil
}

func (s *journalService) GetTransactionsForAccountInDayBook(ctx context.Context, account domain.Account, dayBook domain.DayBook) ([]domain.Transaction, error) {
	txns, err := s.journalRepo.GetTransactionsForAccountInDayBook(ctx, account.ID, dayBook.ID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions",
			slog.Int64("account_id", account.ID), slog.Int64("daybook_id", dayBook.ID))
		return nil, fmt.Errorf("failed to list transactions for account %q: %w", account.Name, err)
	}
	return nonNil(txns), nil
}

// ListTransactions returns one page of transactions matching filter.
func (s *journalService) ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int,
	nextToken *string,
) ([]domain.Transaction, *string, error) {
	txns, next, err := s.journalRepo.ListTransactions(ctx, filter, limit, nextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list transactions",
				slog.Int64("account_id", filter.AccountID), slog.Int64("daybook_id", filter.DayBookID))
		}
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return nonNil(txns), next, nil
}

func (s *journalService) GetTransactionByReference(ctx context.Context, reference string) (domain.Transaction, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return domain.Transaction{}, fmt.Errorf("%w: reference is required", apperrors.ErrValidation)
	}
	txn, found, err := s.journalRepo.FindTransactionByReference(ctx, reference)
	if err != nil {
		s.LogError(ctx, err, "Failed to find transaction", slog.String("reference", reference))
		return domain.Transaction{}, err
	}
	if !found {
		return domain.Transaction{}, notFound("transaction", reference)
	}
	return txn, nil
}

func (s *journalService) CalculateAccountBalance(ctx context.Context, account domain.Account, dayBook domain.DayBook) (decimal.Decimal, error) {
	txns, err := s.GetTransactionsForAccountInDayBook(ctx, account, dayBook)
	if err != nil {
		return decimal.Zero, err
	}
	var amounts []domain.Money
	for _, txn := range txns {
		for _, entry := range txn.LedgerEntries {
			if entry.AccountID == account.ID {
				amounts = append(amounts, entry.Amount)
			}
		}
	}
	return domain.SumMoney(amounts...), nil
}

func nonNil(txns []domain.Transaction) []domain.Transaction {
	if txns == nil {
		return []domain.Transaction{}
	}
	return txns
}
