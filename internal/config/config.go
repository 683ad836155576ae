package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// PolicyAlwaysAdd treats every sync request as a brand new article,
	// even when a prior sync with the same client article id exists.
	PolicyAlwaysAdd = "always-add"
	// PolicyUpdateExisting updates the previously synchronized article
	// when one is found.
	PolicyUpdateExisting = "update-existing"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	HTTP     HTTPConfig     `yaml:"http"`
	Tags     TagsConfig     `yaml:"tags"`
	Ingest   IngestConfig   `yaml:"ingest"`
	LogLevel string         `yaml:"log_level"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type TagsConfig struct {
	Reserved  []string `yaml:"reserved"`
	MaxCount  int      `yaml:"max_count"`
	MaxLength int      `yaml:"max_length"`
}

type IngestConfig struct {
	// Policy selects the add-vs-update behavior: "always-add" keeps
	// every sync as a fresh article, "update-existing" edits the prior
	// one in place.
	Policy string `yaml:"policy"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if cfg.Ingest.Policy != PolicyAlwaysAdd && cfg.Ingest.Policy != PolicyUpdateExisting {
		return nil, fmt.Errorf("unknown ingest policy %q", cfg.Ingest.Policy)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "community_sync"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "articles"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "synced_articles"
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":8080"
	}
	if c.HTTP.ReadTimeout == 0 {
		c.HTTP.ReadTimeout = 15 * time.Second
	}
	if c.HTTP.WriteTimeout == 0 {
		c.HTTP.WriteTimeout = 15 * time.Second
	}
	if c.HTTP.ShutdownTimeout == 0 {
		c.HTTP.ShutdownTimeout = 10 * time.Second
	}
	if c.Tags.MaxCount == 0 {
		c.Tags.MaxCount = 7
	}
	if c.Tags.MaxLength == 0 {
		c.Tags.MaxLength = 50
	}
	if c.Ingest.Policy == "" {
		c.Ingest.Policy = PolicyAlwaysAdd
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
