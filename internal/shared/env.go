package shared

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override values from config.toml.
const (
	EnvAPIURL    = "LYRX_API_URL"
	EnvDBPath    = "LYRX_DB_PATH"
	EnvShareURL  = "LYRX_SHARE_URL"
	EnvExportDir = "LYRX_EXPORT_DIR"
	EnvPort      = "LYRX_PORT"
)

// LoadEnv loads variables from the given .env files into the process environment.
//
// Missing files are not an error; variables already set in the environment win.
func LoadEnv(files ...string) error {
	existing := []string{}
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// ApplyEnv overwrites config values with any LYRX_* variables present in the environment.
func ApplyEnv(c *Config) {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv(EnvShareURL); v != "" {
		c.Share.BaseURL = v
	}
	if v := os.Getenv(EnvExportDir); v != "" {
		c.Export.Dir = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
}
