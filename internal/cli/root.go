package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/julianstephens/thirtyday/internal/apiclient"
	"github.com/julianstephens/thirtyday/internal/backup"
	"github.com/julianstephens/thirtyday/internal/calendar"
	"github.com/julianstephens/thirtyday/internal/i18n"
	"github.com/julianstephens/thirtyday/internal/keyring"
	"github.com/julianstephens/thirtyday/internal/kv"
	"github.com/julianstephens/thirtyday/internal/logger"
	"github.com/julianstephens/thirtyday/internal/models"
	"github.com/julianstephens/thirtyday/internal/service"
	"github.com/julianstephens/thirtyday/internal/storage"
	"github.com/julianstephens/thirtyday/internal/storage/postgres"
	"github.com/julianstephens/thirtyday/internal/storage/sqlite"
	"github.com/julianstephens/thirtyday/internal/tracker"
)

const (
	// ClientStateFile holds the client key-value state next to the database.
	ClientStateFile = "client.db"
	gatewayTimeout  = 10 * time.Second
)

type Context struct {
	Store storage.Provider
	KV    kv.Store
	// ServerURL routes gateway calls over HTTP instead of the local store.
	ServerURL string
	Preview   bool
	Out       io.Writer
	Now       func() time.Time

	loaded  bool
	gateway storage.Gateway
}

// IsPostgres reports whether config names a PostgreSQL database.
func IsPostgres(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// OpenStore picks the storage backend for config: a PostgreSQL DSN, the
// keyring placeholder, or a SQLite file path.
func OpenStore(config string) (storage.Provider, error) {
	if strings.EqualFold(strings.TrimSpace(config), keyring.ConfigValue) {
		dsn, err := keyring.Resolve(config)
		if err != nil {
			return nil, err
		}
		return postgres.New(dsn), nil
	}

	if IsPostgres(config) {
		if _, err := postgres.ValidateConnString(config); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("PostgreSQL connection strings with embedded credentials are not allowed; use the OS keyring (thirtyday keyring set), PGPASSWORD or .pgpass")
			}
			return nil, err
		}
		return postgres.New(config), nil
	}

	path, err := ExpandPath(config)
	if err != nil {
		return nil, err
	}
	return sqlite.NewStore(path), nil
}

// StateDir is where client state and logs live for config. PostgreSQL
// configurations fall back to the default config directory.
func StateDir(config, fallback string) (string, error) {
	if IsPostgres(config) || strings.EqualFold(strings.TrimSpace(config), keyring.ConfigValue) {
		config = fallback
	}
	path, err := ExpandPath(config)
	if err != nil {
		return "", err
	}
	return filepath.Dir(path), nil
}

// OpenKV opens the client state store in dir.
func OpenKV(dir string) (*kv.SQLiteStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	return kv.OpenSQLite(filepath.Join(dir, ClientStateFile))
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.out(), args...)
}

func (c *Context) Writer() io.Writer {
	return c.out()
}

func (c *Context) NowTime() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// RequestContext bounds a single gateway round trip.
func (c *Context) RequestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), gatewayTimeout)
}

// LoadStore loads the configured store once.
func (c *Context) LoadStore() error {
	if c.loaded {
		return nil
	}
	if err := c.Store.Load(); err != nil {
		return err
	}
	c.loaded = true
	return nil
}

// MarkLoaded records that the store was opened elsewhere, e.g. by Init.
func (c *Context) MarkLoaded() {
	c.loaded = true
}

// Gateway returns the HTTP client when a server URL is configured and the
// in-process service over the local store otherwise.
func (c *Context) Gateway() (storage.Gateway, error) {
	if c.gateway != nil {
		return c.gateway, nil
	}
	if c.ServerURL != "" {
		c.gateway = apiclient.New(c.ServerURL, nil)
		return c.gateway, nil
	}
	if err := c.LoadStore(); err != nil {
		return nil, err
	}
	c.gateway = service.New(c.Store)
	return c.gateway, nil
}

// SetGateway overrides the gateway the tracker talks to.
func (c *Context) SetGateway(gw storage.Gateway) {
	c.gateway = gw
}

func (c *Context) Preferences() (models.Preferences, error) {
	return tracker.LoadPreferences(c.KV)
}

func (c *Context) Translator() *i18n.Translator {
	prefs, err := c.Preferences()
	if err != nil {
		return i18n.New("")
	}
	return i18n.New(prefs.Language)
}

// Tracker builds the client tracker from stored preferences.
func (c *Context) Tracker() (*tracker.Tracker, models.Preferences, error) {
	prefs, err := c.Preferences()
	if err != nil {
		return nil, prefs, fmt.Errorf("failed to load preferences: %w", err)
	}
	window, err := calendar.FromPreferences(prefs)
	if err != nil {
		return nil, prefs, err
	}
	window.Preview = window.Preview || c.Preview

	gw, err := c.Gateway()
	if err != nil {
		return nil, prefs, err
	}
	return tracker.New(c.KV, gw, window,
		tracker.WithTranslator(i18n.New(prefs.Language)),
		tracker.WithClock(c.NowTime),
	), prefs, nil
}

// PerformAutomaticBackup backs up a local SQLite store and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*sqlite.Store); !ok || c.ServerURL != "" {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Close releases the store and the client state.
func (c *Context) Close() {
	if c.loaded {
		if err := c.Store.Close(); err != nil {
			logger.Warn("Failed to close store", "error", err)
		}
	}
	if c.KV != nil {
		if err := c.KV.Close(); err != nil {
			logger.Warn("Failed to close client state", "error", err)
		}
	}
}
