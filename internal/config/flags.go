package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/dmitrijs2005/drawerfinder/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. os.Args is
// filtered with flagx.FilterArgs first so the -c/-config flag handled by
// parseJson does not trip this flag set. Unknown storage backends and
// parse errors panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-i", "-s", "-d", "-p", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.UsersFile, "u", cfg.UsersFile, "users JSON file")
	fs.StringVar(&cfg.ItemsFile, "i", cfg.ItemsFile, "inventory JSON file")
	fs.StringVar(&cfg.Storage, "s", cfg.Storage, "storage backend (json, sqlite, postgres)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.PasswordScheme, "p", cfg.PasswordScheme, "password scheme for new accounts (sha256, bcrypt)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	switch cfg.Storage {
	case StorageJSON, StorageSQLite, StoragePostgres:
	default:
		panic(fmt.Sprintf("unknown storage %q", cfg.Storage))
	}
}
