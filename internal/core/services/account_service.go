package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/pvs_ledger/internal/apperrors"
	"github.com/SscSPs/pvs_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pvs_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pvs_ledger/internal/core/ports/services"
)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

func (s *accountService) CreateAccount(ctx context.Context, name string, accountType domain.AccountType) (domain.Account, error) {
	name, err := requireName("account", name)
	if err != nil {
		return domain.Account{}, err
	}
	if !accountType.Valid() {
		return domain.Account{}, fmt.Errorf("%w: unknown account type %d", apperrors.ErrValidation, int64(accountType))
	}

	id, err := s.accountRepo.CreateAccount(ctx, name, accountType)
	if err != nil {
		s.LogError(ctx, err, "Failed to create account", slog.String("account_name", name))
		return domain.Account{}, err
	}

	s.GetLogger(ctx).Info("Account created", slog.Int64("account_id", id), slog.String("account_type", accountType.String()))
	return domain.Account{ID: id, Name: name, Type: accountType}, nil
}

func (s *accountService) CreateAssetAccount(ctx context.Context, name string) (domain.Account, error) {
	return s.CreateAccount(ctx, name, domain.Asset)
}

func (s *accountService) CreateLiabilityAccount(ctx context.Context, name string) (domain.Account, error) {
	return s.CreateAccount(ctx, name, domain.Liability)
}

func (s *accountService) CreateIncomeAccount(ctx context.Context, name string) (domain.Account, error) {
	return s.CreateAccount(ctx, name, domain.Income)
}

func (s *accountService) CreateExpenseAccount(ctx context.Context, name string) (domain.Account, error) {
	return s.CreateAccount(ctx, name, domain.Expense)
}

func (s *accountService) GetAccountByID(ctx context.Context, id int64) (domain.Account, error) {
	if err := requireID("account", id); err != nil {
		return domain.Account{}, err
	}
	account, found, err := s.accountRepo.FindAccountByID(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to find account", slog.Int64("account_id", id))
		return domain.Account{}, err
	}
	if !found {
		return domain.Account{}, notFound("account", id)
	}
	return account, nil
}

func (s *accountService) GetAccountByName(ctx context.Context, name string) (domain.Account, error) {
	name, err := requireName("account", name)
	if err != nil {
		return domain.Account{}, err
	}
	account, found, err := s.accountRepo.FindAccountByName(ctx, name)
	if err != nil {
		s.LogError(ctx, err, "Failed to find account", slog.String("account_name", name))
		return domain.Account{}, err
	}
	if !found {
		return domain.Account{}, notFound("account", name)
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *accountService) RenameAccount(ctx context.Context, oldName, newName string) (bool, error) {
	oldName, err := requireName("account", oldName)
	if err != nil {
		return false, err
	}
	newName, err = requireName("account", newName)
	if err != nil {
		return false, err
	}
	changed, err := s.accountRepo.RenameAccount(ctx, oldName, newName)
	if err != nil {
		s.LogError(ctx, err, "Failed to rename account", slog.String("account_name", oldName))
		return false, err
	}
	return changed, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, id int64) (bool, error) {
	if err := requireID("account", id); err != nil {
		return false, err
	}
	deleted, err := s.accountRepo.DeleteAccount(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.Int64("account_id", id))
		return false, err
	}
	if deleted {
		s.GetLogger(ctx).Info("Account deleted", slog.Int64("account_id", id))
	}
	return deleted, nil
}
