package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/pvs_ledger/internal/apperrors"
	"github.com/SscSPs/pvs_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccountType(t *testing.T) {
	got, err := domain.ParseAccountType("expense")
	require.NoError(t, err)
	assert.Equal(t, domain.Expense, got)

	got, err = domain.ParseAccountType("RETAINED_EARNINGS")
	require.NoError(t, err)
	assert.Equal(t, domain.RetainedEarnings, got)

	_, err = domain.ParseAccountType("EQUITY")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAccountTypeFromCode(t *testing.T) {
	got, err := domain.AccountTypeFromCode(1)
	require.NoError(t, err)
	assert.Equal(t, domain.Asset, got)

	_, err = domain.AccountTypeFromCode(42)
	assert.Error(t, err)
}

func TestAccount_JSON(t *testing.T) {
	acc := domain.Account{ID: 3, Name: "Cash", Type: domain.Asset}
	b, err := json.Marshal(acc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"name":"Cash","type":"ASSET"}`, string(b))

	var back domain.Account
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, acc, back)

	assert.Error(t, json.Unmarshal([]byte(`{"type":"SHARES"}`), &back))
}
