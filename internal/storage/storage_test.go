package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/drawerfinder/internal/common"
	"github.com/dmitrijs2005/drawerfinder/internal/config"
	"github.com/dmitrijs2005/drawerfinder/internal/models"
	"github.com/dmitrijs2005/drawerfinder/internal/repositories/items"
	"github.com/dmitrijs2005/drawerfinder/internal/repositories/users"
)

var admin = models.User{UserName: "admin", DisplayName: "sysAdmin", PasswordHash: "h", Role: models.RoleAdmin}

func TestOpen_JSON(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Storage:   config.StorageJSON,
		UsersFile: filepath.Join(dir, "users.json"),
		ItemsFile: filepath.Join(dir, "drawer_data.json"),
	}

	repos, err := Open(context.Background(), cfg, admin)
	require.NoError(t, err)
	defer repos.Close()

	assert.IsType(t, &users.JSONRepository{}, repos.Users)
	assert.IsType(t, &items.JSONRepository{}, repos.Items)

	all, err := repos.Users.Load(context.Background())
	require.NoError(t, err)
	assert.Contains(t, all, "admin")
}

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.Config{
		Storage:     config.StorageSQLite,
		DatabaseDSN: filepath.Join(t.TempDir(), "drawers.db"),
	}

	repos, err := Open(context.Background(), cfg, admin)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, repos.Close()) })

	assert.IsType(t, &users.SQLRepository{}, repos.Users)
	assert.IsType(t, &items.SQLRepository{}, repos.Items)

	_, err = repos.Items.Append(context.Background(), models.Item{Name: "Tape", Drawer: 4})
	require.NoError(t, err)

	list, err := repos.Items.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestOpen_Unknown(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{Storage: "mongo"}, admin)
	require.ErrorIs(t, err, common.ErrUnknownStorage)
}
