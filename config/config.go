package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Web       WebConfig       `yaml:"web"`
	Dataset   DatasetConfig   `yaml:"dataset"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Messaging MessagingConfig `yaml:"messaging"`
	Auth      AuthConfig      `yaml:"auth"`
}

type WebConfig struct {
	Host          string `yaml:"host"`
	Port          int    `yaml:"port"`
	SessionSecret string `yaml:"session_secret"`
}

type DatasetConfig struct {
	// Path to the processed long-format indicators file produced by the
	// ETL pipeline (scripts/etl_worldbank.py). Parquet by default; a
	// .csv path is accepted for local development.
	Path        string   `yaml:"path"`
	PreviewRows int      `yaml:"preview_rows"`
	CacheTTL    Duration `yaml:"cache_ttl"`
}

type DatabaseConfig struct {
	Driver   string         `yaml:"driver"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	Postgres PostgresConfig `yaml:"postgres"`
}

type SQLiteConfig struct {
	Path string `yaml:"path"`
}

type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type RedisConfig struct {
	Address     string   `yaml:"address"`
	Password    string   `yaml:"password"`
	DB          int      `yaml:"db"`
	SnapshotTTL Duration `yaml:"snapshot_ttl"`
}

type MessagingConfig struct {
	// Backend selects the refresh-notification transport: "kafka",
	// "mqtt", or "" to disable.
	Backend      string   `yaml:"backend"`
	Brokers      []string `yaml:"brokers"`
	BrokerURL    string   `yaml:"broker_url"`
	ClientID     string   `yaml:"client_id"`
	GroupID      string   `yaml:"group_id"`
	RefreshTopic string   `yaml:"refresh_topic"`
}

type AuthConfig struct {
	AdminUser string `yaml:"admin_user"`
	// bcrypt hash of the admin password.
	AdminPasswordHash string `yaml:"admin_password_hash"`
}

// Duration wraps time.Duration so yaml values like "30s" or "15m" parse.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Value == "" || node.Value == "0" {
		*d = 0
		return nil
	}
	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", node.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

// Load reads the yaml config at path. A missing file yields the defaults,
// so the dashboard runs out of the box.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Web.Host == "" {
		c.Web.Host = "0.0.0.0"
	}
	if c.Web.Port == 0 {
		c.Web.Port = 8080
	}
	if c.Web.SessionSecret == "" {
		c.Web.SessionSecret = "econdash-dev-secret"
	}
	if c.Dataset.Path == "" {
		c.Dataset.Path = "data/processed/econ_option_a.parquet"
	}
	if c.Dataset.PreviewRows == 0 {
		c.Dataset.PreviewRows = 50
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.SQLite.Path == "" {
		c.Database.SQLite.Path = "econdash.db"
	}
	if c.Database.Postgres.Port == 0 {
		c.Database.Postgres.Port = 5432
	}
	if c.Database.Postgres.SSLMode == "" {
		c.Database.Postgres.SSLMode = "disable"
	}
	if c.Redis.SnapshotTTL == 0 {
		c.Redis.SnapshotTTL = Duration(5 * time.Minute)
	}
	if c.Messaging.ClientID == "" {
		c.Messaging.ClientID = "econdash"
	}
	if c.Messaging.GroupID == "" {
		c.Messaging.GroupID = "econdash"
	}
	if c.Messaging.RefreshTopic == "" {
		c.Messaging.RefreshTopic = "econdash.dataset.refresh"
	}
}
