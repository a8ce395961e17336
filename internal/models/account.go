package models

// Account is the persisted row of the account table.
// Type holds the integer code of domain.AccountType.
type Account struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	Type int64  `db:"type"`
}
