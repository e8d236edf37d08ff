package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Address     string   `yaml:"address"`
		CORSOrigins []string `yaml:"cors_origins"`
		ConsoleURL  string   `yaml:"console_url"`
	} `yaml:"server"`
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Auth struct {
		SessionTTLHours int    `yaml:"session_ttl_hours"`
		CSRFKey         string `yaml:"csrf_key"`
		TicketKey       string `yaml:"ticket_key"`
		SecureCookies   bool   `yaml:"secure_cookies"`
	} `yaml:"auth"`
	Storage struct {
		Bucket    string `yaml:"bucket"`
		Region    string `yaml:"region"`
		Endpoint  string `yaml:"endpoint"`
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
	} `yaml:"storage"`
	Audit struct {
		RetentionDays int `yaml:"retention_days"`
	} `yaml:"audit"`
}

// LoadConfig reads the YAML config named by XETASUITE_CONFIG (default
// config/config.yaml) and applies secret overrides from the environment.
func LoadConfig() Config {
	path := os.Getenv("XETASUITE_CONFIG")
	if path == "" {
		path = "config/config.yaml"
	}

	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("Failed to unmarshal config data: %v", err)
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("CSRF_KEY"); v != "" {
		cfg.Auth.CSRFKey = v
	}
	if v := os.Getenv("TICKET_KEY"); v != "" {
		cfg.Auth.TicketKey = v
	}
	if v := os.Getenv("STORAGE_ACCESS_KEY"); v != "" {
		cfg.Storage.AccessKey = v
	}
	if v := os.Getenv("STORAGE_SECRET_KEY"); v != "" {
		cfg.Storage.SecretKey = v
	}

	if cfg.Auth.SessionTTLHours == 0 {
		cfg.Auth.SessionTTLHours = 24 * 7
	}
	if cfg.Audit.RetentionDays == 0 {
		cfg.Audit.RetentionDays = 180
	}
	return cfg
}
