package sqlstore_test

import (
	"context"
	"testing"

	"github.com/SscSPs/pvs_ledger/internal/apperrors"
	"github.com/SscSPs/pvs_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	_, repos := newTestStore(t)
	accounts := repos.AccountRepo

	list, err := accounts.ListAccounts(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	cashID, err := accounts.CreateAccount(ctx, "Cash", domain.Asset)
	require.NoError(t, err)
	assert.Positive(t, cashID)

	fuelID, err := accounts.CreateAccount(ctx, "Fuel", domain.Expense)
	require.NoError(t, err)
	assert.Greater(t, fuelID, cashID)

	got, found, err := accounts.FindAccountByID(ctx, cashID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, domain.Account{ID: cashID, Name: "Cash", Type: domain.Asset}, got)

	got, found, err = accounts.FindAccountByName(ctx, "Fuel")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, domain.Expense, got.Type)

	_, found, err = accounts.FindAccountByID(ctx, 999)
	require.NoError(t, err)
	assert.False(t, found)

	list, err = accounts.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Cash", list[0].Name)
	assert.Equal(t, "Fuel", list[1].Name)

	changed, err := accounts.RenameAccount(ctx, "Fuel", "Fuel & Oil")
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = accounts.RenameAccount(ctx, "Nope", "Still nope")
	require.NoError(t, err)
	assert.False(t, changed)

	deleted, err := accounts.DeleteAccount(ctx, fuelID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = accounts.DeleteAccount(ctx, fuelID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestAccountRepository_DuplicateName(t *testing.T) {
	ctx := context.Background()
	store, repos := newTestStore(t)

	id, err := repos.AccountRepo.CreateAccount(ctx, "Cash", domain.Asset)
	require.NoError(t, err)

	_, err = repos.AccountRepo.CreateAccount(ctx, "Cash", domain.Liability)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	got, found, err := repos.AccountRepo.FindAccountByID(ctx, id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, domain.Asset, got.Type)
	assert.Equal(t, 1, countRows(t, store, "account"))

	_, err = repos.AccountRepo.CreateAccount(ctx, "Bank", domain.Asset)
	require.NoError(t, err)
	_, err = repos.AccountRepo.RenameAccount(ctx, "Bank", "Cash")
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestAccountRepository_RejectsUnknownType(t *testing.T) {
	ctx := context.Background()
	store, repos := newTestStore(t)

	_, err := repos.AccountRepo.CreateAccount(ctx, "Shares", domain.AccountType(99))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Zero(t, countRows(t, store, "account"))

	_, err = repos.AccountRepo.CreateAccount(ctx, "Cash", domain.Asset)
	require.NoError(t, err)
	accounts, err := repos.AccountRepo.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestPeriodAndDayBookRepositories(t *testing.T) {
	ctx := context.Background()
	_, repos := newTestStore(t)

	periodID, err := repos.PeriodRepo.CreatePeriod(ctx, "YEAR")
	require.NoError(t, err)

	period, found, err := repos.PeriodRepo.FindPeriodByName(ctx, "YEAR")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, periodID, period.ID)

	_, err = repos.PeriodRepo.CreatePeriod(ctx, "YEAR")
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	dayBookID, err := repos.DayBookRepo.CreateDayBook(ctx, "January", periodID)
	require.NoError(t, err)

	dayBook, found, err := repos.DayBookRepo.FindDayBookByID(ctx, dayBookID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, domain.DayBook{ID: dayBookID, Name: "January", PeriodID: periodID}, dayBook)

	_, err = repos.DayBookRepo.CreateDayBook(ctx, "Orphan", 999)
	assert.ErrorIs(t, err, apperrors.ErrConstraint)

	// A period with day books cannot be removed.
	_, err = repos.PeriodRepo.DeletePeriod(ctx, periodID)
	assert.ErrorIs(t, err, apperrors.ErrConstraint)

	changed, err := repos.DayBookRepo.RenameDayBook(ctx, "January", "Jan")
	require.NoError(t, err)
	assert.True(t, changed)

	dayBooks, err := repos.DayBookRepo.ListDayBooks(ctx)
	require.NoError(t, err)
	require.Len(t, dayBooks, 1)
	assert.Equal(t, "Jan", dayBooks[0].Name)

	deleted, err := repos.DayBookRepo.DeleteDayBook(ctx, dayBookID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repos.PeriodRepo.DeletePeriod(ctx, periodID)
	require.NoError(t, err)
	assert.True(t, deleted)

	periods, err := repos.PeriodRepo.ListPeriods(ctx)
	require.NoError(t, err)
	assert.Empty(t, periods)
}

func TestConfigRepository_CurrentDayBook(t *testing.T) {
	ctx := context.Background()
	store, repos := newTestStore(t)

	_, found, err := repos.ConfigRepo.GetCurrentDayBookID(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repos.ConfigRepo.SetCurrentDayBookID(ctx, 3))
	require.NoError(t, repos.ConfigRepo.SetCurrentDayBookID(ctx, 4))

	id, found, err := repos.ConfigRepo.GetCurrentDayBookID(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(4), id)
	assert.Equal(t, 1, countRows(t, store, "config"))

	_, err = store.DB().Exec(`UPDATE config SET current_daybook_id = 'january'`)
	require.NoError(t, err)
	_, _, err = repos.ConfigRepo.GetCurrentDayBookID(ctx)
	assert.ErrorIs(t, err, apperrors.ErrDecode)
}
