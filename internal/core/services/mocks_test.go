package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/pvs_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pvs_ledger/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, id int64) (domain.Account, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Account), args.Bool(1), args.Error(2)
}

func (m *MockAccountRepository) FindAccountByName(ctx context.Context, name string) (domain.Account, bool, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Account), args.Bool(1), args.Error(2)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) CreateAccount(ctx context.Context, name string, accountType domain.AccountType) (int64, error) {
	args := m.Called(ctx, name, accountType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) RenameAccount(ctx context.Context, oldName, newName string) (bool, error) {
	args := m.Called(ctx, oldName, newName)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- Mock PeriodRepository ---
type MockPeriodRepository struct {
	mock.Mock
}

var _ portsrepo.PeriodRepositoryFacade = (*MockPeriodRepository)(nil)

func (m *MockPeriodRepository) FindPeriodByID(ctx context.Context, id int64) (domain.Period, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Period), args.Bool(1), args.Error(2)
}

func (m *MockPeriodRepository) FindPeriodByName(ctx context.Context, name string) (domain.Period, bool, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Period), args.Bool(1), args.Error(2)
}

func (m *MockPeriodRepository) ListPeriods(ctx context.Context) ([]domain.Period, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Period), args.Error(1)
}

func (m *MockPeriodRepository) CreatePeriod(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPeriodRepository) RenamePeriod(ctx context.Context, oldName, newName string) (bool, error) {
	args := m.Called(ctx, oldName, newName)
	return args.Bool(0), args.Error(1)
}

func (m *MockPeriodRepository) DeletePeriod(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- Mock DayBookRepository ---
type MockDayBookRepository struct {
	mock.Mock
}

var _ portsrepo.DayBookRepositoryFacade = (*MockDayBookRepository)(nil)

func (m *MockDayBookRepository) FindDayBookByID(ctx context.Context, id int64) (domain.DayBook, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.DayBook), args.Bool(1), args.Error(2)
}

func (m *MockDayBookRepository) FindDayBookByName(ctx context.Context, name string) (domain.DayBook, bool, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.DayBook), args.Bool(1), args.Error(2)
}

func (m *MockDayBookRepository) ListDayBooks(ctx context.Context) ([]domain.DayBook, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DayBook), args.Error(1)
}

func (m *MockDayBookRepository) CreateDayBook(ctx context.Context, name string, periodID int64) (int64, error) {
	args := m.Called(ctx, name, periodID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDayBookRepository) RenameDayBook(ctx context.Context, oldName, newName string) (bool, error) {
	args := m.Called(ctx, oldName, newName)
	return args.Bool(0), args.Error(1)
}

func (m *MockDayBookRepository) DeleteDayBook(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- Mock SystemConfigRepository ---
type MockConfigRepository struct {
	mock.Mock
}

var _ portsrepo.SystemConfigRepository = (*MockConfigRepository)(nil)

func (m *MockConfigRepository) GetCurrentDayBookID(ctx context.Context) (int64, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *MockConfigRepository) SetCurrentDayBookID(ctx context.Context, dayBookID int64) error {
	args := m.Called(ctx, dayBookID)
	return args.Error(0)
}

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) PostTransaction(ctx context.Context, timestamp time.Time, narrative string, amount domain.Money,
	from, to domain.Account, reference string, dayBookID int64) (bool, error) {
	args := m.Called(ctx, timestamp, narrative, amount, from, to, reference, dayBookID)
	return args.Bool(0), args.Error(1)
}

func (m *MockJournalRepository) PostJournal(ctx context.Context, journal domain.Journal, lines []domain.PostingLine) (bool, error) {
	args := m.Called(ctx, journal, lines)
	return args.Bool(0), args.Error(1)
}

func (m *MockJournalRepository) GetTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockJournalRepository) GetTransactionsForDayBook(ctx context.Context, dayBookID int64) ([]domain.Transaction, error) {
	args := m.Called(ctx, dayBookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockJournalRepository) GetTransactionsForAccountInDayBook(ctx context.Context, accountID, dayBookID int64) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID, dayBookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockJournalRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), next, args.Error(2)
}

func (m *MockJournalRepository) FindTransactionByReference(ctx context.Context, reference string) (domain.Transaction, bool, error) {
	args := m.Called(ctx, reference)
	return args.Get(0).(domain.Transaction), args.Bool(1), args.Error(2)
}
