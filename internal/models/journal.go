package models

// Journal is the persisted row of the journal table.
// Date is stored as RFC 3339 text so both SQLite and Postgres keep the offset.
type Journal struct {
	ID        int64  `db:"id"`
	Date      string `db:"date"`
	Ref       string `db:"ref"`
	Narrative string `db:"narrative"`
	DayBookID int64  `db:"daybook_id"`
}

// SystemConfig is the single row of the config table.
type SystemConfig struct {
	CurrentDayBookID string `db:"current_daybook_id"`
}
