package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Auth     AuthConfig
	Webhook  WebhookConfig
	Mail     MailConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MigrationsPath  string
}

type LogConfig struct {
	Level string
}

type AuthConfig struct {
	AdminSecret string
}

type WebhookConfig struct {
	Secret          string
	RateLimit       int
	RateLimitWindow time.Duration
}

type MailConfig struct {
	APIURL  string
	APIKey  string
	From    string
	Timeout time.Duration
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("SERVER_READ_TIMEOUT", "10s")
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "10s")
	viper.SetDefault("SERVER_IDLE_TIMEOUT", "30s")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "orderfellow")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "orderfellow")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("DB_MIGRATIONS_PATH", "migrations")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("ADMIN_SECRET", "")
	viper.SetDefault("WEBHOOK_SECRET", "")
	viper.SetDefault("WEBHOOK_RATE_LIMIT", 30)
	viper.SetDefault("WEBHOOK_RATE_LIMIT_WINDOW", "1m")
	viper.SetDefault("MAIL_API_URL", "")
	viper.SetDefault("MAIL_API_KEY", "")
	viper.SetDefault("MAIL_FROM", "no-reply@orderfellow.local")
	viper.SetDefault("MAIL_TIMEOUT", "5s")

	var parseErr error
	duration := func(key string) time.Duration {
		d, err := time.ParseDuration(viper.GetString(key))
		if err != nil && parseErr == nil {
			parseErr = fmt.Errorf("parsing %s: %w", key, err)
		}
		return d
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("SERVER_PORT"),
			ReadTimeout:  duration("SERVER_READ_TIMEOUT"),
			WriteTimeout: duration("SERVER_WRITE_TIMEOUT"),
			IdleTimeout:  duration("SERVER_IDLE_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: duration("DB_CONN_MAX_LIFETIME"),
			MigrationsPath:  viper.GetString("DB_MIGRATIONS_PATH"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Auth: AuthConfig{
			AdminSecret: viper.GetString("ADMIN_SECRET"),
		},
		Webhook: WebhookConfig{
			Secret:          viper.GetString("WEBHOOK_SECRET"),
			RateLimit:       viper.GetInt("WEBHOOK_RATE_LIMIT"),
			RateLimitWindow: duration("WEBHOOK_RATE_LIMIT_WINDOW"),
		},
		Mail: MailConfig{
			APIURL:  viper.GetString("MAIL_API_URL"),
			APIKey:  viper.GetString("MAIL_API_KEY"),
			From:    viper.GetString("MAIL_FROM"),
			Timeout: duration("MAIL_TIMEOUT"),
		},
	}

	if parseErr != nil {
		return nil, parseErr
	}

	return cfg, nil
}
