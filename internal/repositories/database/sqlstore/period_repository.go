package sqlstore

import (
	"context"
	"fmt"

	"github.com/SscSPs/pvs_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pvs_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pvs_ledger/internal/models"
	"github.com/SscSPs/pvs_ledger/internal/utils/mapping"
)

const selectPeriod = `SELECT id, name FROM period`

type SQLPeriodRepository struct {
	BaseRepository
}

func newSQLPeriodRepository(store *Store) *SQLPeriodRepository {
	return &SQLPeriodRepository{BaseRepository{store: store}}
}

var _ portsrepo.PeriodRepositoryFacade = (*SQLPeriodRepository)(nil)

func decodePeriod(row Row) (models.Period, error) {
	var (
		m   models.Period
		err error
	)
	if m.ID, err = row.Int64("id"); err != nil {
		return m, err
	}
	m.Name, err = row.String("name")
	return m, err
}

func (r *SQLPeriodRepository) FindPeriodByID(ctx context.Context, id int64) (domain.Period, bool, error) {
	return findOne(ctx, &r.BaseRepository, decodePeriod, mapping.ToDomainPeriod, selectPeriod+` WHERE id = $1`, id)
}

func (r *SQLPeriodRepository) FindPeriodByName(ctx context.Context, name string) (domain.Period, bool, error) {
	return findOne(ctx, &r.BaseRepository, decodePeriod, mapping.ToDomainPeriod, selectPeriod+` WHERE name = $1`, name)
}

func (r *SQLPeriodRepository) ListPeriods(ctx context.Context) ([]domain.Period, error) {
	return findAll(ctx, &r.BaseRepository, decodePeriod, mapping.ToDomainPeriods, selectPeriod+` ORDER BY id`)
}

func (r *SQLPeriodRepository) CreatePeriod(ctx context.Context, name string) (int64, error) {
	id, err := r.insertID(ctx, `INSERT INTO period (name) VALUES ($1) RETURNING id`, name)
	if err != nil {
		return 0, fmt.Errorf("failed to create period %q: %w", name, err)
	}
	return id, nil
}

func (r *SQLPeriodRepository) RenamePeriod(ctx context.Context, oldName, newName string) (bool, error) {
	changed, err := r.execChanged(ctx, `UPDATE period SET name = $1 WHERE name = $2`, newName, oldName)
	if err != nil {
		return false, fmt.Errorf("failed to rename period %q: %w", oldName, err)
	}
	return changed, nil
}

func (r *SQLPeriodRepository) DeletePeriod(ctx context.Context, id int64) (bool, error) {
	changed, err := r.execChanged(ctx, `DELETE FROM period WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete period %d: %w", id, err)
	}
	return changed, nil
}
