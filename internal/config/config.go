package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	DB     DBConfig     `toml:"database"`
	Server ServerConfig `toml:"server"`
	App    AppConfig    `toml:"app"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
	AuthToken        string `toml:"auth_token"`        // Turso token, appended to remote URLs.
}

type ServerConfig struct {
	Addr           string   `toml:"addr"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

type AppConfig struct {
	Timezone string `toml:"timezone"`
}

// Returns the directory holding config, settings and the default database.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "regimen"), nil
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func defaults() (*Config, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	return &Config{
		DB:     DBConfig{ConnectionString: "file:" + filepath.Join(dir, "regimen.db")},
		Server: ServerConfig{Addr: ":8080", AllowedOrigins: []string{"http://localhost:3000"}},
		App:    AppConfig{Timezone: "Local"},
	}, nil
}

// Reads the configuration from the config file. A missing file leaves the
// defaults in place; .env and the environment override the database.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFrom(path)
}

func LoadConfigFrom(path string) (*Config, error) {
	cfg, err := defaults()
	if err != nil {
		return nil, err
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("Failed to read config %s: %w", path, err)
	}

	// A missing .env is fine; the variables may come from the shell.
	_ = godotenv.Load()

	if url := os.Getenv("TURSO_DATABASE_URL"); url != "" {
		cfg.DB.ConnectionString = url
	}
	if token := os.Getenv("TURSO_AUTH_TOKEN"); token != "" {
		cfg.DB.AuthToken = token
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = "file:./local.db?cache=shared&mode=rwc"
	}

	if addr := os.Getenv("REGIMEN_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}

	return cfg, nil
}

// DSN returns the connection string with the auth token attached for
// remote databases.
func (c DBConfig) DSN() string {
	if c.AuthToken == "" || !IsRemote(c.ConnectionString) {
		return c.ConnectionString
	}
	u, err := url.Parse(c.ConnectionString)
	if err != nil {
		return c.ConnectionString
	}
	q := u.Query()
	if q.Get("authToken") == "" {
		q.Set("authToken", c.AuthToken)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// IsRemote reports whether conn points at a libsql server rather than a file.
func IsRemote(conn string) bool {
	for _, prefix := range []string{"libsql://", "https://", "http://", "wss://", "ws://"} {
		if strings.HasPrefix(conn, prefix) {
			return true
		}
	}
	return false
}
