// Package storage picks the credential and inventory backends named in the
// configuration.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/drawerfinder/internal/common"
	"github.com/dmitrijs2005/drawerfinder/internal/config"
	"github.com/dmitrijs2005/drawerfinder/internal/db"
	"github.com/dmitrijs2005/drawerfinder/internal/dbx"
	"github.com/dmitrijs2005/drawerfinder/internal/models"
	"github.com/dmitrijs2005/drawerfinder/internal/repositories/items"
	"github.com/dmitrijs2005/drawerfinder/internal/repositories/users"
)

// Repositories bundles the two stores. Close releases the database
// connection, if any.
type Repositories struct {
	Users users.Repository
	Items items.Repository
	db    *sql.DB
}

func (r *Repositories) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Open builds the repositories for cfg.Storage. seed is the administrator
// written into an empty credential store.
func Open(ctx context.Context, cfg *config.Config, seed models.User) (*Repositories, error) {
	switch cfg.Storage {
	case config.StorageJSON:
		return &Repositories{
			Users: users.NewJSONRepository(cfg.UsersFile, seed),
			Items: items.NewJSONRepository(cfg.ItemsFile),
		}, nil

	case config.StorageSQLite, config.StoragePostgres:
		dialect := dbx.Dialect(cfg.Storage)
		conn, err := db.Open(ctx, dialect, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		return &Repositories{
			Users: users.NewSQLRepository(conn, dialect, seed),
			Items: items.NewSQLRepository(conn, dialect),
			db:    conn,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownStorage, cfg.Storage)
	}
}
