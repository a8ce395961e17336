package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/pvs_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostTransactionRequest moves Amount from one account to another.
// DayBookID may be omitted to post into the current day book.
type PostTransactionRequest struct {
	Date          *time.Time      `json:"date"`
	Reference     string          `json:"reference" binding:"required"`
	Narrative     string          `json:"narrative" binding:"required"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"10000.00"`
	FromAccountID int64           `json:"fromAccountID" binding:"required,gt=0"`
	ToAccountID   int64           `json:"toAccountID" binding:"required,gt=0,nefield=FromAccountID"`
	DayBookID     int64           `json:"dayBookID" binding:"gte=0"`
}

// PostingLineRequest is one signed line of a multi-line journal.
type PostingLineRequest struct {
	AccountID int64           `json:"accountID" binding:"required,gt=0"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"-10000.00"`
}

// PostJournalRequest records a journal with any number of lines summing to zero.
type PostJournalRequest struct {
	Date      *time.Time           `json:"date"`
	Reference string               `json:"reference" binding:"required"`
	Narrative string               `json:"narrative" binding:"required"`
	DayBookID int64                `json:"dayBookID" binding:"gte=0"`
	Lines     []PostingLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// ListTransactionsParams filters and pages the transaction listing.
type ListTransactionsParams struct {
	DayBookID int64  `form:"dayBookID" binding:"gte=0"`
	AccountID int64  `form:"accountID" binding:"gte=0"`
	Limit     int    `form:"limit" binding:"gte=0,lte=500"`
	NextToken string `form:"nextToken"`
}

type PostingResponse struct {
	Reference string `json:"reference"`
	Posted    bool   `json:"posted"`
}

type LedgerEntryResponse struct {
	AccountID int64        `json:"accountID"`
	Amount    domain.Money `json:"amount" swaggertype:"string"`
}

// TransactionResponse is a journal header with its ledger entries.
type TransactionResponse struct {
	JournalID int64                 `json:"journalID"`
	Date      time.Time             `json:"date"`
	Reference string                `json:"reference"`
	Narrative string                `json:"narrative"`
	DayBookID int64                 `json:"dayBookID"`
	Entries   []LedgerEntryResponse `json:"entries"`
}

type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToPostingLines converts the request lines to Money at the given scale.
func (r PostJournalRequest) ToPostingLines(scale int32) ([]domain.PostingLine, error) {
	lines := make([]domain.PostingLine, len(r.Lines))
	for i, l := range r.Lines {
		amount, err := domain.MoneyFromDecimal(l.Amount, scale)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		lines[i] = domain.PostingLine{AccountID: l.AccountID, Amount: amount}
	}
	return lines, nil
}

// JournalDate returns the requested date, or now when none was sent.
func JournalDate(d *time.Time) time.Time {
	if d == nil || d.IsZero() {
		return time.Now().UTC()
	}
	return *d
}

func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		JournalID: txn.ID,
		Date:      txn.Date,
		Reference: txn.Reference,
		Narrative: txn.Narrative,
		DayBookID: txn.DayBookID,
		Entries:   make([]LedgerEntryResponse, len(txn.LedgerEntries)),
	}
	for i, e := range txn.LedgerEntries {
		resp.Entries[i] = LedgerEntryResponse{AccountID: e.AccountID, Amount: e.Amount}
	}
	return resp
}

func ToListTransactionsResponse(txns []domain.Transaction, nextToken *string) ListTransactionsResponse {
	resp := ListTransactionsResponse{Transactions: make([]TransactionResponse, len(txns)), NextToken: nextToken}
	for i, txn := range txns {
		resp.Transactions[i] = ToTransactionResponse(txn)
	}
	return resp
}
