package dto

import "github.com/SscSPs/pvs_ledger/internal/core/domain"

type CreatePeriodRequest struct {
	Name string `json:"name" binding:"required"`
}

type PeriodResponse struct {
	PeriodID int64  `json:"periodID"`
	Name     string `json:"name"`
}

type ListPeriodsResponse struct {
	Periods []PeriodResponse `json:"periods"`
}

// CreateDayBookRequest defines the data needed to open a day book within a period.
type CreateDayBookRequest struct {
	Name     string `json:"name" binding:"required"`
	PeriodID int64  `json:"periodID" binding:"required,gt=0"`
}

// SetCurrentDayBookRequest selects the day book used when a posting names none.
type SetCurrentDayBookRequest struct {
	DayBookID int64 `json:"dayBookID" binding:"required,gt=0"`
}

type DayBookResponse struct {
	DayBookID int64  `json:"dayBookID"`
	Name      string `json:"name"`
	PeriodID  int64  `json:"periodID"`
}

type ListDayBooksResponse struct {
	DayBooks []DayBookResponse `json:"dayBooks"`
}

func ToPeriodResponse(p domain.Period) PeriodResponse {
	return PeriodResponse{PeriodID: p.ID, Name: p.Name}
}

func ToListPeriodsResponse(periods []domain.Period) ListPeriodsResponse {
	resp := ListPeriodsResponse{Periods: make([]PeriodResponse, len(periods))}
	for i, p := range periods {
		resp.Periods[i] = ToPeriodResponse(p)
	}
	return resp
}

func ToDayBookResponse(db domain.DayBook) DayBookResponse {
	return DayBookResponse{DayBookID: db.ID, Name: db.Name, PeriodID: db.PeriodID}
}

func ToListDayBooksResponse(dayBooks []domain.DayBook) ListDayBooksResponse {
	resp := ListDayBooksResponse{DayBooks: make([]DayBookResponse, len(dayBooks))}
	for i, db := range dayBooks {
		resp.DayBooks[i] = ToDayBookResponse(db)
	}
	return resp
}
