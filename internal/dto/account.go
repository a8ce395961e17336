package dto

import (
	"github.com/SscSPs/pvs_ledger/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name        string `json:"name" binding:"required"`
	AccountType string `json:"accountType" binding:"required,accounttype"`
}

// RenameRequest carries the new name for an account, period or day book.
type RenameRequest struct {
	Name string `json:"name" binding:"required"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID   int64  `json:"accountID"`
	Name        string `json:"name"`
	AccountType string `json:"accountType"`
}

type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// AccountBalanceResponse is the net of an account's ledger entries in one day book.
// NormalBalance is the same figure signed the way the account type is usually read.
type AccountBalanceResponse struct {
	AccountID     int64  `json:"accountID"`
	DayBookID     int64  `json:"dayBookID"`
	Balance       string `json:"balance" example:"-10000.00"`
	NormalBalance string `json:"normalBalance" example:"10000.00"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   acc.ID,
		Name:        acc.Name,
		AccountType: acc.Type.String(),
	}
}

func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	resp := ListAccountsResponse{Accounts: make([]AccountResponse, len(accounts))}
	for i, acc := range accounts {
		resp.Accounts[i] = ToAccountResponse(acc)
	}
	return resp
}
