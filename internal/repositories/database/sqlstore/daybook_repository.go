package sqlstore

import (
	"context"
	"fmt"

	"github.com/SscSPs/pvs_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pvs_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pvs_ledger/internal/models"
	"github.com/SscSPs/pvs_ledger/internal/utils/mapping"
)

const selectDayBook = `SELECT id, name, period_id FROM daybook`

type SQLDayBookRepository struct {
	BaseRepository
}

func newSQLDayBookRepository(store *Store) *SQLDayBookRepository {
	return &SQLDayBookRepository{BaseRepository{store: store}}
}

var _ portsrepo.DayBookRepositoryFacade = (*SQLDayBookRepository)(nil)

func decodeDayBook(row Row) (models.DayBook, error) {
	var (
		m   models.DayBook
		err error
	)
	if m.ID, err = row.Int64("id"); err != nil {
		return m, err
	}
	if m.Name, err = row.String("name"); err != nil {
		return m, err
	}
	m.PeriodID, err = row.Int64("period_id")
	return m, err
}

func (r *SQLDayBookRepository) FindDayBookByID(ctx context.Context, id int64) (domain.DayBook, bool, error) {
	return findOne(ctx, &r.BaseRepository, decodeDayBook, mapping.ToDomainDayBook, selectDayBook+` WHERE id = $1`, id)
}

func (r *SQLDayBookRepository) FindDayBookByName(ctx context.Context, name string) (domain.DayBook, bool, error) {
	return findOne(ctx, &r.BaseRepository, decodeDayBook, mapping.ToDomainDayBook, selectDayBook+` WHERE name = $1`, name)
}

func (r *SQLDayBookRepository) ListDayBooks(ctx context.Context) ([]domain.DayBook, error) {
	return findAll(ctx, &r.BaseRepository, decodeDayBook, mapping.ToDomainDayBooks, selectDayBook+` ORDER BY id`)
}

func (r *SQLDayBookRepository) CreateDayBook(ctx context.Context, name string, periodID int64) (int64, error) {
	id, err := r.insertID(ctx, `INSERT INTO daybook (name, period_id) VALUES ($1, $2) RETURNING id`, name, periodID)
	if err != nil {
		return 0, fmt.Errorf("failed to create daybook %q: %w", name, err)
	}
	return id, nil
}

func (r *SQLDayBookRepository) RenameDayBook(ctx context.Context, oldName, newName string) (bool, error) {
	changed, err := r.execChanged(ctx, `UPDATE daybook SET name = $1 WHERE name = $2`, newName, oldName)
	if err != nil {
		return false, fmt.Errorf("failed to rename daybook %q: %w", oldName, err)
	}
	return changed, nil
}

func (r *SQLDayBookRepository) DeleteDayBook(ctx context.Context, id int64) (bool, error) {
	changed, err := r.execChanged(ctx, `DELETE FROM daybook WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete daybook %d: %w", id, err)
	}
	return changed, nil
}
