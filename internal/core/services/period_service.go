package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/pvs_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pvs_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pvs_ledger/internal/core/ports/services"
)

type periodService struct {
	BaseService
	periodRepo portsrepo.PeriodRepositoryFacade
}

func NewPeriodService(repo portsrepo.PeriodRepositoryFacade) portssvc.PeriodSvcFacade {
	return &periodService{periodRepo: repo}
}

func (s *periodService) CreatePeriod(ctx context.Context, name string) (domain.Period, error) {
	name, err := requireName("period", name)
	if err != nil {
		return domain.Period{}, err
	}
	id, err := s.periodRepo.CreatePeriod(ctx, name)
	if err != nil {
		s.LogError(ctx, err, "Failed to create period", slog.String("period_name", name))
		return domain.Period{}, err
	}
	s.GetLogger(ctx).Info("Period created", slog.Int64("period_id", id))
	return domain.Period{ID: id, Name: name}, nil
}

func (s *periodService) GetPeriodByID(ctx context.Context, id int64) (domain.Period, error) {
	if err := requireID("period", id); err != nil {
		return domain.Period{}, err
	}
	period, found, err := s.periodRepo.FindPeriodByID(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to find period", slog.Int64("period_id", id))
		return domain.Period{}, err
	}
	if !found {
		return domain.Period{}, notFound("period", id)
	}
	return period, nil
}

func (s *periodService) GetPeriodByName(ctx context.Context, name string) (domain.Period, error) {
	name, err := requireName("period", name)
	if err != nil {
		return domain.Period{}, err
	}
	period, found, err := s.periodRepo.FindPeriodByName(ctx, name)
	if err != nil {
		s.LogError(ctx, err, "Failed to find period", slog.String("period_name", name))
		return domain.Period{}, err
	}
	if !found {
		return domain.Period{}, notFound("period", name)
	}
	return period, nil
}

func (s *periodService) ListPeriods(ctx context.Context) ([]domain.Period, error) {
	periods, err := s.periodRepo.ListPeriods(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list periods")
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	if periods == nil {
		return []domain.Period{}, nil
	}
	return periods, nil
}

func (s *periodService) RenamePeriod(ctx context.Context, oldName, newName string) (bool, error) {
	oldName, err := requireName("period", oldName)
	if err != nil {
		return false, err
	}
	if newName, err = requireName("period", newName); err != nil {
		return false, err
	}
	return s.periodRepo.RenamePeriod(ctx, oldName, newName)
}

func (s *periodService) DeletePeriod(ctx context.Context, id int64) (bool, error) {
	if err := requireID("period", id); err != nil {
		return false, err
	}
	deleted, err := s.periodRepo.DeletePeriod(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete period", slog.Int64("period_id", id))
		return false, err
	}
	return deleted, nil
}
