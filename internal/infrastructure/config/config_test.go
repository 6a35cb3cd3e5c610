package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "invoicer", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "USD", cfg.Invoice.DefaultCurrency)
	assert.Equal(t, "en-US", cfg.Invoice.DefaultLocale)
	assert.Equal(t, "modern-clean/classic-blue", cfg.Invoice.DefaultTemplate)
	assert.Equal(t, []string{"GET", "POST", "OPTIONS"}, cfg.HTTP.CORSAllowMethods)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("INVOICER_APP_PORT", "9000")
	t.Setenv("INVOICER_DATABASE_DRIVER", "SQLite")
	t.Setenv("INVOICER_DATABASE_PATH", ":memory:")
	t.Setenv("INVOICER_INVOICE_DEFAULT_CURRENCY", "eur")
	t.Setenv("INVOICER_INVOICE_DEFAULT_LOCALE", "de-DE")
	t.Setenv("INVOICER_HTTP_READ_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, "EUR", cfg.Invoice.DefaultCurrency)
	assert.Equal(t, "de-DE", cfg.Invoice.DefaultLocale)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ReadTimeout)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown driver", "INVOICER_DATABASE_DRIVER", "mysql"},
		{"idle above open", "INVOICER_DATABASE_MAX_IDLE_CONNS", "50"},
		{"bad currency", "INVOICER_INVOICE_DEFAULT_CURRENCY", "XX"},
		{"bad locale", "INVOICER_INVOICE_DEFAULT_LOCALE", "not a locale!"},
		{"unknown template", "INVOICER_INVOICE_DEFAULT_TEMPLATE", "scroll/ocean"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_ProductionRules(t *testing.T) {
	t.Setenv("INVOICER_APP_ENV", "production")
	t.Setenv("INVOICER_JWT_SECRET", "short")
	_, err := Load()
	assert.ErrorContains(t, err, "jwt.secret")

	t.Setenv("INVOICER_JWT_SECRET", "0123456789abcdef0123456789abcdef")
	_, err = Load()
	assert.ErrorContains(t, err, "sslmode")

	t.Setenv("INVOICER_DATABASE_SSLMODE", "require")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[app]
name = "billing"

[database]
driver = "sqlite"
path = "/tmp/invoices.db"

[invoice]
default_currency = "JPY"
default_template = "nordic-light/ocean"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "billing", cfg.App.Name)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "JPY", cfg.Invoice.DefaultCurrency)
	assert.Equal(t, "nordic-light/ocean", cfg.Invoice.DefaultTemplate)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{User: "app", Password: "p@ss word", Host: "db", Port: 5433, DBName: "inv", SSLMode: "require"}
	assert.Equal(t, "postgres://app:p%40ss%20word@db:5433/inv?sslmode=require", d.DSN())
}
