package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/sonerk/kelimeweb/utils"
)

// Config carries everything the process reads from its environment.
type Config struct {
	Port        string `mapstructure:"port" validate:"required"`
	Env         string `mapstructure:"env" validate:"oneof=development production"`
	DBURL       string `mapstructure:"db_url"`
	SQLitePath  string `mapstructure:"sqlite_path" validate:"required"`
	JWTSecret   string `mapstructure:"jwt_secret_key" validate:"required,min=8"`
	AdminUser   string `mapstructure:"admin_user"`
	AdminPass   string `mapstructure:"admin_pass"`
	CORSOrigins string `mapstructure:"cors_origins"`
}

// Init reads configuration from the environment with local-dev defaults.
func Init() (*Config, error) {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("env", "development")
	v.SetDefault("sqlite_path", "data/kelimeweb.db")
	v.SetDefault("jwt_secret_key", "dev-secret-change-me")
	v.SetDefault("cors_origins", "http://localhost:3000")

	bindings := map[string]string{
		"port":           "PORT",
		"env":            "ENV",
		"db_url":         "DB_URL",
		"sqlite_path":    "SQLITE_PATH",
		"jwt_secret_key": "JWT_SECRET_KEY",
		"admin_user":     "ADMIN_USER",
		"admin_pass":     "ADMIN_PASS",
		"cors_origins":   "CORS_ORIGINS",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := utils.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Origins splits the comma-separated CORS origin list.
func (c *Config) Origins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

// IsDevelopment reports whether the process runs in local development.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
