package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/pvs_ledger/internal/apperrors"
	"github.com/SscSPs/pvs_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pvs_ledger/internal/core/ports/services"
	"github.com/SscSPs/pvs_ledger/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
	ctx      context.Context
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockAccountRepository)
	s.service = services.NewAccountService(s.mockRepo)
	s.ctx = context.Background()
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) TestCreateAccount_Success() {
	s.mockRepo.On("CreateAccount", s.ctx, "Cash", domain.Asset).Return(int64(1), nil).Once()

	acc, err := s.service.CreateAssetAccount(s.ctx, "  Cash ")

	s.Require().NoError(err)
	s.Equal(domain.Account{ID: 1, Name: "Cash", Type: domain.Asset}, acc)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestCreateAccount_TypedHelpers() {
	s.mockRepo.On("CreateAccount", s.ctx, "Loan", domain.Liability).Return(int64(2), nil).Once()
	s.mockRepo.On("CreateAccount", s.ctx, "Salary", domain.Income).Return(int64(3), nil).Once()
	s.mockRepo.On("CreateAccount", s.ctx, "Fuel", domain.Expense).Return(int64(4), nil).Once()

	loan, err := s.service.CreateLiabilityAccount(s.ctx, "Loan")
	s.Require().NoError(err)
	salary, err := s.service.CreateIncomeAccount(s.ctx, "Salary")
	s.Require().NoError(err)
	fuel, err := s.service.CreateExpenseAccount(s.ctx, "Fuel")
	s.Require().NoError(err)

	s.Equal(domain.Liability, loan.Type)
	s.Equal(domain.Income, salary.Type)
	s.Equal(domain.Expense, fuel.Type)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestCreateAccount_Validation() {
	_, err := s.service.CreateAccount(s.ctx, "   ", domain.Asset)
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.service.CreateAccount(s.ctx, "Cash", domain.AccountType(9))
	s.ErrorIs(err, apperrors.ErrValidation)

	s.mockRepo.AssertNotCalled(s.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestCreateAccount_Duplicate() {
	dupErr := errors.Join(apperrors.ErrDuplicate, errors.New("UNIQUE constraint failed: account.name"))
	s.mockRepo.On("CreateAccount", s.ctx, "Cash", domain.Asset).Return(int64(0), dupErr).Once()

	_, err := s.service.CreateAccount(s.ctx, "Cash", domain.Asset)

	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AccountServiceTestSuite) TestGetAccountByID() {
	cash := domain.Account{ID: 1, Name: "Cash", Type: domain.Asset}
	s.mockRepo.On("FindAccountByID", s.ctx, int64(1)).Return(cash, true, nil).Once()
	s.mockRepo.On("FindAccountByID", s.ctx, int64(2)).Return(domain.Account{}, false, nil).Once()

	got, err := s.service.GetAccountByID(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(cash, got)

	_, err = s.service.GetAccountByID(s.ctx, 2)
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, err = s.service.GetAccountByID(s.ctx, 0)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AccountServiceTestSuite) TestGetAccountByName_StoreFailure() {
	s.mockRepo.On("FindAccountByName", s.ctx, "Cash").Return(domain.Account{}, false, apperrors.ErrStoreAccess).Once()

	_, err := s.service.GetAccountByName(s.ctx, "Cash")
	s.ErrorIs(err, apperrors.ErrStoreAccess)
}

func (s *AccountServiceTestSuite) TestListAccounts_Empty() {
	s.mockRepo.On("ListAccounts", s.ctx).Return(nil, nil).Once()

	accounts, err := s.service.ListAccounts(s.ctx)

	s.Require().NoError(err)
	s.NotNil(accounts)
	s.Empty(accounts)
}

func (s *AccountServiceTestSuite) TestRenameAndDelete() {
	s.mockRepo.On("RenameAccount", s.ctx, "Cash", "Petty Cash").Return(true, nil).Once()
	s.mockRepo.On("DeleteAccount", s.ctx, int64(1)).Return(false, apperrors.ErrConstraint).Once()

	changed, err := s.service.RenameAccount(s.ctx, "Cash", "Petty Cash")
	s.Require().NoError(err)
	s.True(changed)

	deleted, err := s.service.DeleteAccount(s.ctx, 1)
	s.False(deleted)
	s.ErrorIs(err, apperrors.ErrConstraint)

	_, err = s.service.RenameAccount(s.ctx, "Cash", "")
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
	s.mockRepo.AssertExpectations(s.T())
}
