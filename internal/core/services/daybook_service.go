package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/pvs_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pvs_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pvs_ledger/internal/core/ports/services"
)

type dayBookService struct {
	BaseService
	dayBookRepo portsrepo.DayBookRepositoryFacade
	periodRepo  portsrepo.PeriodRepositoryFacade
	configRepo  portsrepo.SystemConfigRepository
}

func NewDayBookService(
	dayBookRepo portsrepo.DayBookRepositoryFacade,
	periodRepo portsrepo.PeriodRepositoryFacade,
	configRepo portsrepo.SystemConfigRepository,
) portssvc.DayBookSvcFacade {
	return &dayBookService{
		dayBookRepo: dayBookRepo,
		periodRepo:  periodRepo,
		configRepo:  configRepo,
	}
}

func (s *dayBookService) CreateDayBook(ctx context.Context, name string, periodID int64) (domain.DayBook, error) {
	name, err := requireName("day book", name)
	if err != nil {
		return domain.DayBook{}, err
	}
	if err := requireID("period", periodID); err != nil {
		return domain.DayBook{}, err
	}

	_, found, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return domain.DayBook{}, err
	}
	if !found {
		return domain.DayBook{}, notFound("period", periodID)
	}

	id, err := s.dayBookRepo.CreateDayBook(ctx, name, periodID)
	if err != nil {
		s.LogError(ctx, err, "Failed to create day book", slog.String("daybook_name", name), slog.Int64("period_id", periodID))
		return domain.DayBook{}, err
	}
	s.GetLogger(ctx).Info("Day book created", slog.Int64("daybook_id", id), slog.Int64("period_id", periodID))
	return domain.DayBook{ID: id, Name: name, PeriodID: periodID}, nil
}

func (s *dayBookService) GetDayBookByID(ctx context.Context, id int64) (domain.DayBook, error) {
	if err := requireID("day book", id); err != nil {
		return domain.DayBook{}, err
	}
	dayBook, found, err := s.dayBookRepo.FindDayBookByID(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to find day book", slog.Int64("daybook_id", id))
		return domain.DayBook{}, err
	}
	if !found {
		return domain.DayBook{}, notFound("day book", id)
	}
	return dayBook, nil
}

func (s *dayBookService) GetDayBookByName(ctx context.Context, name string) (domain.DayBook, error) {
	name, err := requireName("day book", name)
	if err != nil {
		return domain.DayBook{}, err
	}
	dayBook, found, err := s.dayBookRepo.FindDayBookByName(ctx, name)
	if err != nil {
		return domain.DayBook{}, err
	}
	if !found {
		return domain.DayBook{}, notFound("day book", name)
	}
	return dayBook, nil
}

func (s *dayBookService) ListDayBooks(ctx context.Context) ([]domain.DayBook, error) {
	dayBooks, err := s.dayBookRepo.ListDayBooks(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list day books")
		return nil, fmt.Errorf("failed to list day books: %w", err)
	}
	if dayBooks == nil {
		return []domain.DayBook{}, nil
	}
	return dayBooks, nil
}

func (s *dayBookService) RenameDayBook(ctx context.Context, oldName, newName string) (bool, error) {
	oldName, err := requireName("day book", oldName)
	if err != nil {
		return false, err
	}
	if newName, err = requireName("day book", newName); err != nil {
		return false, err
	}
	return s.dayBookRepo.RenameDayBook(ctx, oldName, newName)
}

func (s *dayBookService) DeleteDayBook(ctx context.Context, id int64) (bool, error) {
	if err := requireID("day book", id); err != nil {
		return false, err
	}
	deleted, err := s.dayBookRepo.DeleteDayBook(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete day book", slog.Int64("daybook_id", id))
		return false, err
	}
	return deleted, nil
}

func (s *dayBookService) GetCurrentDayBook(ctx context.Context) (domain.DayBook, error) {
	id, found, err := s.configRepo.GetCurrentDayBookID(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to read current day book")
		return domain.DayBook{}, err
	}
	if !found {
		return domain.DayBook{}, notFound("current day book", "setting")
	}
	return s.GetDayBookByID(ctx, id)
}

func (s *dayBookService) SetCurrentDayBook(ctx context.Context, dayBookID int64) error {
	if _, err := s.GetDayBookByID(ctx, dayBookID); err != nil {
		return err
	}
	if err := s.configRepo.SetCurrentDayBookID(ctx, dayBookID); err != nil {
		s.LogError(ctx, err, "Failed to set current day book", slog.Int64("daybook_id", dayBookID))
		return err
	}
	s.GetLogger(ctx).Info("Current day book changed", slog.Int64("daybook_id", dayBookID))
	return nil
}
