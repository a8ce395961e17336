package mapping

import (
	"fmt"
	"strings"

	"github.com/SscSPs/pvs_ledger/internal/apperrors"
	"github.com/SscSPs/pvs_ledger/internal/core/domain"
	"github.com/SscSPs/pvs_ledger/internal/models"
)

// ToDomainPeriod converts a model Period to a domain Period
func ToDomainPeriod(m models.Period) (domain.Period, error) {
	if m.ID <= 0 || strings.TrimSpace(m.Name) == "" {
		return domain.Period{}, fmt.Errorf("%w: period row %d is missing id or name", apperrors.ErrDecode, m.ID)
	}
	return domain.Period{ID: m.ID, Name: m.Name}, nil
}

func ToDomainPeriods(ms []models.Period) ([]domain.Period, error) {
	out := make([]domain.Period, 0, len(ms))
	for _, m := range ms {
		d, err := ToDomainPeriod(m)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// ToDomainDayBook converts a model DayBook to a domain DayBook
func ToDomainDayBook(m models.DayBook) (domain.DayBook, error) {
	if m.ID <= 0 || strings.TrimSpace(m.Name) == "" {
		return domain.DayBook{}, fmt.Errorf("%w: daybook row %d is missing id or name", apperrors.ErrDecode, m.ID)
	}
	if m.PeriodID <= 0 {
		return domain.DayBook{}, fmt.Errorf("%w: daybook %d has no period", apperrors.ErrDecode, m.ID)
	}
	return domain.DayBook{ID: m.ID, Name: m.Name, PeriodID: m.PeriodID}, nil
}

func ToDomainDayBooks(ms []models.DayBook) ([]domain.DayBook, error) {
	out := make([]domain.DayBook, 0, len(ms))
	for _, m := range ms {
		d, err := ToDomainDayBook(m)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
