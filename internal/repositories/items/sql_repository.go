package items

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/drawerfinder/internal/common"
	"github.com/dmitrijs2005/drawerfinder/internal/dbx"
	"github.com/dmitrijs2005/drawerfinder/internal/models"
)

// SQLRepository stores items as rows; list order is the order of the
// auto-increment id. Positions are resolved to ids inside the delete
// transaction.
type SQLRepository struct {
	db      *sql.DB
	dialect dbx.Dialect
	now     Clock
}

func NewSQLRepository(db *sql.DB, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect, now: time.Now}
}

// WithClock replaces the time source used by Append.
func (r *SQLRepository) WithClock(now Clock) *SQLRepository {
	r.now = now
	return r
}

func (r *SQLRepository) q(query string) string {
	return dbx.Rebind(r.dialect, query)
}

func (r *SQLRepository) Load(ctx context.Context) ([]models.Item, error) {
	query := `SELECT item, drawer, notes, added_by, created_at FROM items ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	defer rows.Close()

	result := []models.Item{}
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.Name, &item.Drawer, &item.Notes, &item.AddedBy, &item.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate item rows: %w", err)
	}
	return result, nil
}

func (r *SQLRepository) Append(ctx context.Context, item models.Item) (models.Item, error) {
	item = stamp(item, r.now)

	query := `INSERT INTO items (item, drawer, notes, added_by, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, r.q(query), item.Name, item.Drawer, item.Notes, item.AddedBy, item.Timestamp)
	if err != nil {
		return models.Item{}, fmt.Errorf("failed to insert item: %w", err)
	}
	return item, nil
}

func (r *SQLRepository) DeleteAt(ctx context.Context, index int) (models.Item, error) {
	if index < 0 {
		return models.Item{}, common.ErrIndexOutOfRange
	}

	var removed models.Item

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var id int64
		query := `SELECT id, item, drawer, notes, added_by, created_at FROM items ORDER BY id LIMIT 1 OFFSET ?`
		err := tx.QueryRowContext(ctx, r.q(query), index).
			Scan(&id, &removed.Name, &removed.Drawer, &removed.Notes, &removed.AddedBy, &removed.Timestamp)
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrIndexOutOfRange
		}
		if err != nil {
			return fmt.Errorf("failed to select item at %d: %w", index, err)
		}

		if _, err := tx.ExecContext(ctx, r.q(`DELETE FROM items WHERE id = ?`), id); err != nil {
			return fmt.Errorf("failed to delete item: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Item{}, err
	}
	return removed, nil
}
