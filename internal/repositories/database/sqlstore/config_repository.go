package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/SscSPs/pvs_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/pvs_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pvs_ledger/internal/models"
)

type SQLConfigRepository struct {
	BaseRepository
}

func newSQLConfigRepository(store *Store) *SQLConfigRepository {
	return &SQLConfigRepository{BaseRepository{store: store}}
}

var _ portsrepo.SystemConfigRepository = (*SQLConfigRepository)(nil)

func decodeConfig(row Row) (models.SystemConfig, error) {
	id, err := row.String("current_daybook_id")
	return models.SystemConfig{CurrentDayBookID: id}, err
}

func (r *SQLConfigRepository) GetCurrentDayBookID(ctx context.Context) (int64, bool, error) {
	var (
		cfg   models.SystemConfig
		found bool
	)
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		var err error
		cfg, found, err = QueryOne(ctx, conn, decodeConfig, `SELECT current_daybook_id FROM config LIMIT 1`)
		return err
	})
	if err != nil || !found {
		return 0, false, err
	}
	id, err := strconv.ParseInt(cfg.CurrentDayBookID, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: config holds day book id %q", apperrors.ErrDecode, cfg.CurrentDayBookID)
	}
	return id, true, nil
}

// SetCurrentDayBookID replaces the configuration row in one unit of work so
// readers never see the table empty.
func (r *SQLConfigRepository) SetCurrentDayBookID(ctx context.Context, dayBookID int64) error {
	ctx = context.WithoutCancel(ctx)
	uow, err := r.store.BeginUnitOfWork(ctx)
	if err != nil {
		return err
	}
	defer uow.Release(ctx)

	if _, err := Exec(ctx, uow.Executor(), `DELETE FROM config`); err != nil {
		uow.Rollback(ctx)
		return fmt.Errorf("failed to clear config: %w", err)
	}
	n, err := Exec(ctx, uow.Executor(), `INSERT INTO config (current_daybook_id) VALUES ($1)`, strconv.FormatInt(dayBookID, 10))
	if err != nil {
		uow.Rollback(ctx)
		return fmt.Errorf("failed to write config: %w", err)
	}
	if n == 1 {
		uow.RecordChange()
	}
	if !uow.End(ctx, 1) {
		return fmt.Errorf("%w: config update was not committed", apperrors.ErrStoreAccess)
	}
	return nil
}
