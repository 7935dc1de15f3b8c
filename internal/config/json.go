package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/drawerfinder/internal/flagx"
)

// JsonConfig is a DTO used exclusively for config file unmarshalling. Pointer
// fields distinguish "absent" from "empty" so a partial file only overrides
// what it names.
type JsonConfig struct {
	UsersFile      *string `json:"users_file" yaml:"users_file"`
	ItemsFile      *string `json:"items_file" yaml:"items_file"`
	Storage        *string `json:"storage" yaml:"storage"`
	DatabaseDSN    *string `json:"database_dsn" yaml:"database_dsn"`
	PasswordScheme *string `json:"password_scheme" yaml:"password_scheme"`
	LogLevel       *string `json:"log_level" yaml:"log_level"`
}

// parseJson overlays cfg with values loaded from the file named by the
// -c / -config flag. Files ending in .yaml or .yml are decoded as YAML,
// anything else as JSON. Without the flag it does nothing. Read or decode
// errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := decodeConfig(jsonConfigFile, data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.UsersFile, jc.UsersFile)
	overlay(&cfg.ItemsFile, jc.ItemsFile)
	overlay(&cfg.Storage, jc.Storage)
	overlay(&cfg.DatabaseDSN, jc.DatabaseDSN)
	overlay(&cfg.PasswordScheme, jc.PasswordScheme)
	overlay(&cfg.LogLevel, jc.LogLevel)
}

func overlay(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func decodeConfig(path string, data []byte, jc *JsonConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, jc)
	default:
		return json.Unmarshal(data, jc)
	}
}
