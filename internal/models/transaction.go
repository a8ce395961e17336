package models

// LedgerEntry is the persisted row of the ledger table. Amount is the scaled
// integer form of the money value; the scale is a store-wide setting.
type LedgerEntry struct {
	ID        int64 `db:"id"`
	JournalID int64 `db:"journal_id"`
	AccountID int64 `db:"account_id"`
	Amount    int64 `db:"amount"`
}
