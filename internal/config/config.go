package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Content ContentConfig `yaml:"content"`
	DB      DBConfig      `yaml:"db"`
	Log     LogConfig     `yaml:"log"`
	Session SessionConfig `yaml:"session"`
	Admin   AdminConfig   `yaml:"admin"`
	SMTP    SMTPConfig    `yaml:"smtp"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// ContentConfig points at the profile, links and projects records. An
// empty Dir serves the records bundled with the binary. ImagesDir, when
// set, is served under /images for records that keep their pictures on disk.
type ContentConfig struct {
	Dir       string `yaml:"dir"`
	ImagesDir string `yaml:"images_dir"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type SessionConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

type AdminConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type SMTPConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
	To   string `yaml:"to"`
}

// Enabled reports whether contact messages can be relayed by mail.
func (c SMTPConfig) Enabled() bool {
	return c.User != "" && c.Pass != "" && c.To != ""
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		DB: DBConfig{
			Path: "portfolio.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Session: SessionConfig{
			TTL: 30 * time.Minute,
		},
		SMTP: SMTPConfig{
			Host: "smtp.gmail.com",
			Port: "587",
		},
	}

	if path := os.Getenv("PORTFOLIO_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("PORTFOLIO_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if dir := os.Getenv("PORTFOLIO_CONTENT_DIR"); dir != "" {
		cfg.Content.Dir = dir
	}
	setIfPresent(&cfg.Content.ImagesDir, "PORTFOLIO_IMAGES_DIR")
	if dbPath := os.Getenv("PORTFOLIO_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("PORTFOLIO_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if ttl := os.Getenv("PORTFOLIO_SESSION_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORTFOLIO_SESSION_TTL: %w", err)
		}
		cfg.Session.TTL = d
	}

	setIfPresent(&cfg.Admin.Username, "ADMIN_USERNAME")
	setIfPresent(&cfg.Admin.Password, "ADMIN_PASSWORD")
	setIfPresent(&cfg.SMTP.Host, "SMTP_HOST")
	setIfPresent(&cfg.SMTP.Port, "SMTP_PORT")
	setIfPresent(&cfg.SMTP.User, "SMTP_USER")
	setIfPresent(&cfg.SMTP.Pass, "SMTP_PASS")
	setIfPresent(&cfg.SMTP.To, "TO_EMAIL")

	if cfg.Session.TTL <= 0 {
		return Config{}, fmt.Errorf("session ttl must be positive, got %s", cfg.Session.TTL)
	}

	return cfg, nil
}

func setIfPresent(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
