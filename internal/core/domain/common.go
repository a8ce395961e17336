package domain

// Period is an accounting period (e.g. a financial year) that day books belong to.
type Period struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DayBook groups journals posted within a period.
type DayBook struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	PeriodID int64  `json:"periodID"`
}
