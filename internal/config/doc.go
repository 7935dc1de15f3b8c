// Package config loads runtime configuration for drawerfinder.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string   users JSON file
//	-i string   inventory JSON file
//	-s string   storage backend: json | sqlite | postgres
//	-d string   database DSN for sqlite/postgres
//	-p string   password scheme for new accounts: sha256 | bcrypt
//	-l string   log level: debug | info | warn | error
//
// # JSON schema
//
// Keys that are absent keep their previous value:
//
//	{
//	  "users_file": "users.json",
//	  "items_file": "drawer_data.json",
//	  "storage": "json",
//	  "database_dsn": "drawerfinder.db",
//	  "password_scheme": "sha256",
//	  "log_level": "warn"
//	}
//
// Invalid flag values or an unreadable JSON file panic at startup.
package config
