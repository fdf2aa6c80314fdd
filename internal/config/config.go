// Package config loads server and backup settings from the environment.
// An optional .env file in the working directory is read first; variables
// already set in the environment take precedence over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/julianstephens/thirtyday/internal/constants"
)

// Server configures the HTTP gateway.
type Server struct {
	Port           int           `envconfig:"BACKEND_PORT" default:"3001"`
	DatabaseURL    string        `envconfig:"DATABASE_URL"`
	DBPath         string        `envconfig:"THIRTYDAY_DB_PATH"`
	AllowedOrigins string        `envconfig:"ALLOWED_ORIGINS" default:"*"`
	PublicBaseURL  string        `envconfig:"PUBLIC_BASE_URL"`
	RedisAddr      string        `envconfig:"REDIS_ADDR"`
	RedisPassword  string        `envconfig:"REDIS_PASSWORD"`
	RedisDB        int           `envconfig:"REDIS_DB" default:"0"`
	LeaderboardTTL time.Duration `envconfig:"LEADERBOARD_TTL" default:"30s"`
}

// Backup configures offsite upload of backup files to an S3-compatible bucket.
type Backup struct {
	Bucket          string `envconfig:"BACKUP_S3_BUCKET"`
	Endpoint        string `envconfig:"BACKUP_S3_ENDPOINT"`
	Region          string `envconfig:"BACKUP_S3_REGION" default:"auto"`
	AccessKeyID     string `envconfig:"BACKUP_S3_ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"BACKUP_S3_SECRET_ACCESS_KEY"`
	Prefix          string `envconfig:"BACKUP_S3_PREFIX" default:"thirtyday/"`
}

func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read .env: %w", err)
	}
	return nil
}

// LoadServer reads the gateway configuration.
func LoadServer() (*Server, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	var cfg Server
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load server configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Server) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("BACKEND_PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.LeaderboardTTL < 0 {
		return fmt.Errorf("LEADERBOARD_TTL must not be negative")
	}
	if c.DatabaseURL != "" && c.DBPath != "" {
		return fmt.Errorf("set only one of DATABASE_URL and THIRTYDAY_DB_PATH")
	}
	return nil
}

// Origins returns the comma separated ALLOWED_ORIGINS value with spaces trimmed,
// in the form the CORS middleware expects.
func (c *Server) Origins() string {
	parts := strings.Split(c.AllowedOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return "*"
	}
	return strings.Join(out, ",")
}

// BaseURL is the public origin share links are built on.
func (c *Server) BaseURL() string {
	if c.PublicBaseURL != "" {
		return strings.TrimRight(c.PublicBaseURL, "/")
	}
	return fmt.Sprintf("http://localhost:%d", c.Port)
}

// Addr is the listen address.
func (c *Server) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// LoadBackup reads the offsite backup configuration. Upload is disabled
// when no bucket is set.
func LoadBackup() (*Backup, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	var cfg Backup
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load backup configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Backup) Enabled() bool {
	return c.Bucket != ""
}

// ObjectKey returns the bucket key for a backup file name.
func (c *Backup) ObjectKey(name string) string {
	prefix := c.Prefix
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix + name
}

// DefaultServer returns the configuration used when nothing is set.
func DefaultServer() *Server {
	return &Server{
		Port:           constants.DefaultServerPort,
		AllowedOrigins: "*",
		LeaderboardTTL: constants.DefaultLeaderboardTTL,
	}
}
