package frontpage

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/eringen/frontpage/curation"
)

// SiteConfig holds all configuration for a frontpage site.
type SiteConfig struct {
	Name        string `mapstructure:"name"`        // Site name (default "Frontpage")
	URL         string `mapstructure:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `mapstructure:"description"` // Site description for RSS and meta tags
	Author      string `mapstructure:"author"`      // Author name for JSON-LD

	Addr         string `mapstructure:"addr"`          // Listen address (default ":3000")
	DatabasePath string `mapstructure:"database_path"` // SQLite path (default "data/frontpage.db")
	StaticDir    string `mapstructure:"static_dir"`    // User static assets (default "public")

	AdminPassword string `mapstructure:"admin_password"` // Required: admin login password
	SessionSecret string `mapstructure:"session_secret"` // Required: session encryption secret
	CookieSecure  bool   `mapstructure:"cookie_secure"`  // Set true for HTTPS

	PostCacheTTL     time.Duration `mapstructure:"post_cache_ttl"`    // Post cache TTL (default 5min)
	CarouselLimit    int           `mapstructure:"carousel_limit"`    // Showcase slides (default 5)
	ColumnSize       int           `mapstructure:"column_size"`       // Posts per front-page column (default 5)
	LatestCount      int           `mapstructure:"latest_count"`      // Posts in the "Latest" grid (default 5)
	RotationInterval time.Duration `mapstructure:"rotation_interval"` // Showcase auto-advance (default 5s)
	LoginAttempts    int           `mapstructure:"login_attempts"`    // Login attempts per IP per minute (default 5)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Frontpage"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/frontpage.db"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.PostCacheTTL == 0 {
		c.PostCacheTTL = 5 * time.Minute
	}
	if c.CarouselLimit == 0 {
		c.CarouselLimit = curation.DefaultCarouselLimit
	}
	if c.ColumnSize == 0 {
		c.ColumnSize = curation.DefaultColumnSize
	}
	if c.LatestCount == 0 {
		c.LatestCount = 5
	}
	if c.RotationInterval == 0 {
		c.RotationInterval = curation.DefaultRotationInterval
	}
	if c.LoginAttempts == 0 {
		c.LoginAttempts = 5
	}
}

func (c SiteConfig) validate() error {
	var errs []error
	if c.AdminPassword == "" {
		errs = append(errs, errors.New("admin_password is required"))
	}
	if c.SessionSecret == "" {
		errs = append(errs, errors.New("session_secret is required"))
	}
	if c.CarouselLimit < 0 || c.ColumnSize < 0 || c.LatestCount < 0 || c.LoginAttempts < 0 {
		errs = append(errs, errors.New("carousel_limit, column_size, latest_count and login_attempts must not be negative"))
	}
	return errors.Join(errs...)
}

// LoadConfig reads an optional config file and FRONTPAGE_* environment
// variables. The file is FRONTPAGE_CONFIG when set, otherwise frontpage.toml
// (or .yaml) in the working directory. Env vars win over the file.
func LoadConfig() (SiteConfig, error) {
	v := viper.New()

	v.SetDefault("name", "Frontpage")
	v.SetDefault("url", "http://localhost:3000")
	v.SetDefault("addr", ":3000")
	v.SetDefault("database_path", "data/frontpage.db")
	v.SetDefault("static_dir", "public")
	v.SetDefault("post_cache_ttl", 5*time.Minute)
	v.SetDefault("carousel_limit", curation.DefaultCarouselLimit)
	v.SetDefault("column_size", curation.DefaultColumnSize)
	v.SetDefault("latest_count", 5)
	v.SetDefault("rotation_interval", curation.DefaultRotationInterval)
	v.SetDefault("login_attempts", 5)
	// Keys without a default must still be known to AutomaticEnv on Unmarshal.
	for _, k := range []string{"description", "author", "admin_password", "session_secret"} {
		v.SetDefault(k, "")
	}
	v.SetDefault("cookie_secure", false)

	if cfgPath := os.Getenv("FRONTPAGE_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("frontpage")
	}

	v.SetEnvPrefix("FRONTPAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return SiteConfig{}, fmt.Errorf("frontpage: read config: %w", err)
		}
	}

	var c SiteConfig
	if err := v.Unmarshal(&c); err != nil {
		return SiteConfig{}, fmt.Errorf("frontpage: unmarshal config: %w", err)
	}
	c.setDefaults()
	return c, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithLogger replaces the default no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.Logger = l
		}
	}
}

// WithStore injects an already opened store instead of opening
// SiteConfig.DatabasePath.
func WithStore(s *Store) Option {
	return func(a *App) {
		a.Store = s
	}
}
