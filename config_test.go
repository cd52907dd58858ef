package frontpage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("FRONTPAGE_CONFIG", "")
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "Frontpage", cfg.Name)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, 5, cfg.CarouselLimit)
	assert.Equal(t, 5, cfg.ColumnSize)
	assert.Equal(t, 5*time.Second, cfg.RotationInterval)
	assert.False(t, cfg.CookieSecure)
	assert.Error(t, cfg.validate())
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
name = "Daily Buzz"
url = "https://buzz.example"
admin_password = "from-file"
session_secret = "s3cret"
carousel_limit = 3
rotation_interval = "2s"
`), 0o644))
	t.Setenv("FRONTPAGE_CONFIG", path)
	t.Setenv("FRONTPAGE_ADMIN_PASSWORD", "from-env")
	t.Setenv("FRONTPAGE_COLUMN_SIZE", "7")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "Daily Buzz", cfg.Name)
	assert.Equal(t, "https://buzz.example", cfg.URL)
	assert.Equal(t, "from-env", cfg.AdminPassword)
	assert.Equal(t, 3, cfg.CarouselLimit)
	assert.Equal(t, 7, cfg.ColumnSize)
	assert.Equal(t, 2*time.Second, cfg.RotationInterval)
	assert.NoError(t, cfg.validate())
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	t.Setenv("FRONTPAGE_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))
	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidateRejectsNegativeLimits(t *testing.T) {
	base := SiteConfig{AdminPassword: "p", SessionSecret: "s"}
	base.setDefaults()
	require.NoError(t, base.validate())

	for name, mutate := range map[string]func(*SiteConfig){
		"carousel_limit": func(c *SiteConfig) { c.CarouselLimit = -1 },
		"column_size":    func(c *SiteConfig) { c.ColumnSize = -1 },
		"latest_count":   func(c *SiteConfig) { c.LatestCount = -1 },
		"login_attempts": func(c *SiteConfig) { c.LoginAttempts = -1 },
	} {
		cfg := base
		mutate(&cfg)
		assert.Error(t, cfg.validate(), name)
	}
}

func TestSetupRejectsDisabledLoginLimiter(t *testing.T) {
	cfg := SiteConfig{AdminPassword: "p", SessionSecret: "s", LoginAttempts: -1, DatabasePath: filepath.Join(t.TempDir(), "x.db")}
	err := New(cfg, ViewFuncs{}).Setup()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login_attempts")
}
