package config

// Storage backend names accepted by Config.Storage.
const (
	StorageJSON     = "json"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Config holds runtime settings for drawerfinder.
//
// Fields:
//   - UsersFile / ItemsFile: JSON documents used by the "json" storage.
//   - Storage: json, sqlite or postgres.
//   - DatabaseDSN: file path (sqlite) or connection URL (postgres).
//   - PasswordScheme: sha256 or bcrypt, used for newly created hashes.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	UsersFile      string
	ItemsFile      string
	Storage        string
	DatabaseDSN    string
	PasswordScheme string
	LogLevel       string
}

// LoadDefaults populates c with settings that read and write the JSON files
// in the working directory.
func (c *Config) LoadDefaults() {
	c.UsersFile = "users.json"
	c.ItemsFile = "drawer_data.json"
	c.Storage = StorageJSON
	c.DatabaseDSN = "drawerfinder.db"
	c.PasswordScheme = "sha256"
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
