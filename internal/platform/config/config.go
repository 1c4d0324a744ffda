package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar permite apuntar a un YAML explícito.
const ConfigPathEnvVar = "CONFIG_PATH"

var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
}

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Logging  LoggingConfig  `koanf:"logging"`
	CORS     CORSConfig     `koanf:"cors"`
	Admin    AdminConfig    `koanf:"admin"`
	Swagger  SwaggerConfig  `koanf:"swagger"`
	Seed     SeedConfig     `koanf:"seed"`
}

type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

// Addr arma host:port para http.Server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	// DSN vacío => store in-memory (modo dev).
	DSN          string `koanf:"dsn"`
	AutoMigrate  bool   `koanf:"auto_migrate"`
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
}

type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	App    string `koanf:"app"`
}

type CORSConfig struct {
	Origins []string `koanf:"origins"`
}

type AdminConfig struct {
	Enabled bool   `koanf:"enabled"`
	Key     string `koanf:"key"`
	Title   string `koanf:"title"`
}

type SwaggerConfig struct {
	Enabled bool `koanf:"enabled"`
}

// SeedConfig lo usa cmd/seed para importar el catálogo desde una API tipo SWAPI.
type SeedConfig struct {
	BaseURL  string        `koanf:"base_url"`
	Timeout  time.Duration `koanf:"timeout"`
	MaxPages int           `koanf:"max_pages"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         3000,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:          "",
			AutoMigrate:  true,
			MaxOpenConns: 10,
			MaxIdleConns: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			App:    "starwars-blog-api",
		},
		CORS: CORSConfig{
			Origins: []string{"*"},
		},
		Admin: AdminConfig{
			Enabled: true,
			Key:     "",
			Title:   "Star Wars Admin",
		},
		Swagger: SwaggerConfig{
			Enabled: true,
		},
		Seed: SeedConfig{
			BaseURL:  "https://swapi.dev/api",
			Timeout:  10 * time.Second,
			MaxPages: 10,
		},
	}
}

// Load arma la config en capas: defaults -> YAML opcional -> env.
// Si existe un .env en el cwd se carga antes (no pisa variables ya seteadas).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	if err := splitCSV(k, "cors.origins"); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown logging.level %q", c.Logging.Level)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return errors.New("server timeouts must be positive")
	}
	return nil
}

func findConfigFile() string {
	if p := strings.TrimSpace(os.Getenv(ConfigPathEnvVar)); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

var envMappings = map[string]string{
	"server_host":          "server.host",
	"port":                 "server.port",
	"server_read_timeout":  "server.read_timeout",
	"server_write_timeout": "server.write_timeout",
	"database_url":         "database.dsn",
	"db_dsn":               "database.dsn",
	"db_auto_migrate":      "database.auto_migrate",
	"db_max_open_conns":    "database.max_open_conns",
	"db_max_idle_conns":    "database.max_idle_conns",
	"log_level":            "logging.level",
	"log_format":           "logging.format",
	"app_name":             "logging.app",
	"cors_origins":         "cors.origins",
	"admin_enabled":        "admin.enabled",
	"admin_key":            "admin.key",
	"admin_title":          "admin.title",
	"swagger_enabled":      "swagger.enabled",
	"swapi_url":            "seed.base_url",
	"seed_timeout":         "seed.timeout",
	"seed_max_pages":       "seed.max_pages",
}

// envTransform mapea solo las variables conocidas; el resto se descarta
// (devolver "" hace que koanf ignore la key).
func envTransform(key string) string {
	return envMappings[strings.ToLower(key)]
}

func splitCSV(k *koanf.Koanf, path string) error {
	raw, ok := k.Get(path).(string)
	if !ok {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if err := k.Set(path, out); err != nil {
		return fmt.Errorf("set %s: %w", path, err)
	}
	return nil
}
