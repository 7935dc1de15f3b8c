package users

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/drawerfinder/internal/common"
	"github.com/dmitrijs2005/drawerfinder/internal/dbx"
	"github.com/dmitrijs2005/drawerfinder/internal/models"
)

// SQLRepository stores accounts in the users table of a SQLite or
// PostgreSQL database. Each operation runs in its own transaction.
type SQLRepository struct {
	db      *sql.DB
	dialect dbx.Dialect
	seed    models.User
}

func NewSQLRepository(db *sql.DB, dialect dbx.Dialect, seed models.User) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect, seed: seed}
}

func (r *SQLRepository) q(query string) string {
	return dbx.Rebind(r.dialect, query)
}

func (r *SQLRepository) Load(ctx context.Context) (map[string]models.User, error) {
	var users map[string]models.User

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := r.ensureSeeded(ctx, tx); err != nil {
			return err
		}

		var err error
		users, err = r.selectAll(ctx, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *SQLRepository) Create(ctx context.Context, user models.User) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := r.ensureSeeded(ctx, tx); err != nil {
			return err
		}

		var n int
		err := tx.QueryRowContext(ctx, r.q(`SELECT COUNT(*) FROM users WHERE username = ?`), user.UserName).Scan(&n)
		if err != nil {
			return fmt.Errorf("failed to check user: %w", err)
		}
		if n > 0 {
			return common.ErrDuplicateUser
		}
		return r.insert(ctx, tx, user)
	})
}

// ensureSeeded inserts the seed administrator into an empty table, matching
// the JSON store where the first access creates the file.
func (r *SQLRepository) ensureSeeded(ctx context.Context, tx dbx.DBTX) error {
	var n int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if n > 0 {
		return nil
	}
	if err := r.insert(ctx, tx, r.seed); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	return nil
}

func (r *SQLRepository) insert(ctx context.Context, tx dbx.DBTX, u models.User) error {
	query := `INSERT INTO users (username, name, password, role) VALUES (?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, r.q(query), u.UserName, u.DisplayName, u.PasswordHash, string(u.Role)); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *SQLRepository) selectAll(ctx context.Context, tx dbx.DBTX) (map[string]models.User, error) {
	rows, err := tx.QueryContext(ctx, `SELECT username, name, password, role FROM users`)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	users := make(map[string]models.User)
	for rows.Next() {
		var (
			u    models.User
			role string
		)
		if err := rows.Scan(&u.UserName, &u.DisplayName, &u.PasswordHash, &role); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		u.Role = models.Role(role)
		users[u.UserName] = u
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}
	return users, nil
}
