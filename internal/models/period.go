package models

// Period is the persisted row of the period table.
type Period struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// DayBook is the persisted row of the daybook table.
type DayBook struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	PeriodID int64  `db:"period_id"`
}
