package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/pvs_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pvs_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) GetAccountByID(ctx context.Context, id int64) (domain.Account, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountByName(ctx context.Context, name string) (domain.Account, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) CreateAccount(ctx context.Context, name string, accountType domain.AccountType) (domain.Account, error) {
	args := m.Called(ctx, name, accountType)
	return args.Get(0).(domain.Account), args.Error(1)
}
func (m *MockAccountService) CreateAssetAccount(ctx context.Context, name string) (domain.Account, error) {
	return m.CreateAccount(ctx, name, domain.Asset)
}
func (m *MockAccountService) CreateLiabilityAccount(ctx context.Context, name string) (domain.Account, error) {
	return m.CreateAccount(ctx, name, domain.Liability)
}
func (m *MockAccountService) CreateIncomeAccount(ctx context.Context, name string) (domain.Account, error) {
	return m.CreateAccount(ctx, name, domain.Income)
}
func (m *MockAccountService) CreateExpenseAccount(ctx context.Context, name string) (domain.Account, error) {
	return m.CreateAccount(ctx, name, domain.Expense)
}
func (m *MockAccountService) RenameAccount(ctx context.Context, oldName, newName string) (bool, error) {
	args := m.Called(ctx, oldName, newName)
	return args.Bool(0), args.Error(1)
}
func (m *MockAccountService) DeleteAccount(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- Mock PeriodService ---
type MockPeriodService struct {
	mock.Mock
}

var _ portssvc.PeriodSvcFacade = (*MockPeriodService)(nil)

func (m *MockPeriodService) CreatePeriod(ctx context.Context, name string) (domain.Period, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Period), args.Error(1)
}
func (m *MockPeriodService) GetPeriodByID(ctx context.Context, id int64) (domain.Period, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Period), args.Error(1)
}
func (m *MockPeriodService) GetPeriodByName(ctx context.Context, name string) (domain.Period, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Period), args.Error(1)
}
func (m *MockPeriodService) ListPeriods(ctx context.Context) ([]domain.Period, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Period), args.Error(1)
}
func (m *MockPeriodService) RenamePeriod(ctx context.Context, oldName, newName string) (bool, error) {
	args := m.Called(ctx, oldName, newName)
	return args.Bool(0), args.Error(1)
}
func (m *MockPeriodService) DeletePeriod(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- Mock DayBookService ---
type MockDayBookService struct {
	mock.Mock
}

var _ portssvc.DayBookSvcFacade = (*MockDayBookService)(nil)

func (m *MockDayBookService) CreateDayBook(ctx context.Context, name string, periodID int64) (domain.DayBook, error) {
	args := m.Called(ctx, name, periodID)
	return args.Get(0).(domain.DayBook), args.Error(1)
}
func (m *MockDayBookService) GetDayBookByID(ctx context.Context, id int64) (domain.DayBook, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.DayBook), args.Error(1)
}
func (m *MockDayBookService) GetDayBookByName(ctx context.Context, name string) (domain.DayBook, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.DayBook), args.Error(1)
}
func (m *MockDayBookService) ListDayBooks(ctx context.Context) ([]domain.DayBook, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DayBook), args.Error(1)
}
func (m *MockDayBookService) RenameDayBook(ctx context.Context, oldName, newName string) (bool, error) {
	args := m.Called(ctx, oldName, newName)
	return args.Bool(0), args.Error(1)
}
func (m *MockDayBookService) DeleteDayBook(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockDayBookService) GetCurrentDayBook(ctx context.Context) (domain.DayBook, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.DayBook), args.Error(1)
}
func (m *MockDayBookService) SetCurrentDayBook(ctx context.Context, dayBookID int64) error {
	args := m.Called(ctx, dayBookID)
	return args.Error(0)
}

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

func (m *MockJournalService) PostTransaction(ctx context.Context, timestamp time.Time, narrative string, amount domain.Money,
	from, to domain.Account, reference string, dayBookID int64) (bool, error) {
	args := m.Called(ctx, timestamp, narrative, amount, from, to, reference, dayBookID)
	return args.Bool(0), args.Error(1)
}
func (m *MockJournalService) PostJournal(ctx context.Context, journal domain.Journal, lines []domain.PostingLine) (bool, error) {
	args := m.Called(ctx, journal, lines)
	return args.Bool(0), args.Error(1)
}
func (m *MockJournalService) GetTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockJournalService) GetTransactionsForDayBook(ctx context.Context, dayBook domain.DayBook) ([]domain.Transaction, error) {
	args := m.Called(ctx, dayBook)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockJournalService) GetTransactionsForAccountInDayBook(ctx context.Context, account domain.Account, dayBook domain.DayBook) ([]domain.Transaction, error) {
	args := m.Called(ctx, account, dayBook)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockJournalService) ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
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
func (m *MockJournalService) GetTransactionByReference(ctx context.Context, reference string) (domain.Transaction, error) {
	args := m.Called(ctx, reference)
	return args.Get(0).(domain.Transaction), args.Error(1)
}
func (m *MockJournalService) CalculateAccountBalance(ctx context.Context, account domain.Account, dayBook domain.DayBook) (decimal.Decimal, error) {
	args := m.Called(ctx, account, dayBook)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
