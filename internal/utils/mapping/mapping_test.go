package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/pvs_ledger/internal/apperrors"
	"github.com/SscSPs/pvs_ledger/internal/core/domain"
	"github.com/SscSPs/pvs_ledger/internal/models"
	"github.com/SscSPs/pvs_ledger/internal/utils/mapping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainAccount(t *testing.T) {
	acc, err := mapping.ToDomainAccount(models.Account{ID: 1, Name: "Cash", Type: 1})
	require.NoError(t, err)
	assert.Equal(t, domain.Account{ID: 1, Name: "Cash", Type: domain.Asset}, acc)
	assert.Equal(t, models.Account{ID: 1, Name: "Cash", Type: 1}, mapping.ToModelAccount(acc))

	bad := []models.Account{
		{ID: 0, Name: "Cash", Type: 1},
		{ID: 1, Name: " ", Type: 1},
		{ID: 1, Name: "Cash", Type: 99},
	}
	for _, m := range bad {
		_, err := mapping.ToDomainAccount(m)
		assert.ErrorIs(t, err, apperrors.ErrDecode)
	}
}

func TestToDomainDayBook(t *testing.T) {
	db, err := mapping.ToDomainDayBook(models.DayBook{ID: 2, Name: "January", PeriodID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), db.PeriodID)

	_, err = mapping.ToDomainDayBook(models.DayBook{ID: 2, Name: "January"})
	assert.ErrorIs(t, err, apperrors.ErrDecode)

	periods, err := mapping.ToDomainPeriods([]models.Period{{ID: 1, Name: "YEAR"}})
	require.NoError(t, err)
	assert.Equal(t, []domain.Period{{ID: 1, Name: "YEAR"}}, periods)
}

func TestJournalDateRoundTrip(t *testing.T) {
	ts := time.Date(2019, 3, 31, 10, 15, 0, 0, time.FixedZone("IST", 5*3600+1800))
	m := mapping.ToModelJournal(domain.Journal{ID: 7, Date: ts, Reference: "PV20190331001", Narrative: "Fuel", DayBookID: 1})

	j, err := mapping.ToDomainJournal(m)
	require.NoError(t, err)
	assert.True(t, j.Date.Equal(ts))
	assert.Equal(t, "PV20190331001", j.Reference)

	m.Date = "31/03/2019"
	_, err = mapping.ToDomainJournal(m)
	assert.ErrorIs(t, err, apperrors.ErrDecode)
}

func TestToDomainTransaction(t *testing.T) {
	journal := models.Journal{ID: 7, Date: "2019-03-31T00:00:00Z", Ref: "PV20190331001", Narrative: "Fuel", DayBookID: 1}
	entries := []models.LedgerEntry{
		{ID: 1, JournalID: 7, AccountID: 1, Amount: -1000000},
		{ID: 2, JournalID: 7, AccountID: 2, Amount: 1000000},
	}

	txn, err := mapping.ToDomainTransaction(journal, entries, 2)
	require.NoError(t, err)
	require.Len(t, txn.LedgerEntries, 2)
	assert.Equal(t, "-10000.00", txn.LedgerEntries[0].Amount.String())
	assert.Equal(t, "10000.00", txn.LedgerEntries[1].Amount.String())

	_, err = mapping.ToDomainTransaction(journal, entries[:1], 2)
	assert.ErrorIs(t, err, apperrors.ErrInvariantViolation)

	foreign := []models.LedgerEntry{entries[0], {ID: 3, JournalID: 8, AccountID: 2, Amount: 1000000}}
	_, err = mapping.ToDomainTransaction(journal, foreign, 2)
	assert.ErrorIs(t, err, apperrors.ErrDecode)
}
