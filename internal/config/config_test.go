package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaximeC37/BikerBox-sub000/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, CatalogSourceConfig, cfg.Catalog.Source)
	assert.Equal(t, 3, cfg.Ledger.MaxRetries)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_Full(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
port = 5432
user = "bikerbox"
password = "secret"
dbname = "bikerbox"

[storage]
driver = "postgres"

[ledger]
max_retries = 5

[pricing.base_price_per_day]
SMALL = 7.5

[[catalog.lockers]]
id = "paris-nord"
name = "Gare du Nord"
location = "Paris 10e"
latitude = 48.8809
longitude = 2.3553
capacity = { SMALL = 4, MEDIUM = 2, LARGE = 1 }
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "host=db port=5432 user=bikerbox password=secret dbname=bikerbox sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, 5, cfg.Ledger.MaxRetries)
	assert.Equal(t, map[domain.LockerSize]float64{domain.SizeSmall: 7.5}, cfg.Pricing.BasePrices())

	require.Len(t, cfg.Catalog.Lockers, 1)
	locker := cfg.Catalog.Lockers[0].ToDomain()
	assert.Equal(t, "paris-nord", locker.ID)
	assert.Equal(t, 48.8809, locker.Coordinates.Latitude)
	assert.Equal(t, 4, locker.CapacityFor(domain.SizeSmall))
	assert.Equal(t, 1, locker.CapacityFor(domain.SizeLarge))
}

func TestLoad_ZeroRetriesKept(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[ledger]\nmax_retries = 0"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Ledger.MaxRetries)

	cfg, err = Load(writeConfig(t, "[ledger]"))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Ledger.MaxRetries)
}

func TestLoad_PostgresStorageWithExternalCatalog(t *testing.T) {
	tests := []struct {
		name    string
		content string
		source  string
	}{
		{"config catalog", "[storage]\ndriver = \"postgres\"\n[catalog]\nsource = \"config\"", CatalogSourceConfig},
		{"http catalog", "[storage]\ndriver = \"postgres\"\n[catalog]\nsource = \"http\"\nurl = \"http://catalog:8081\"", CatalogSourceHTTP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
			assert.Equal(t, tt.source, cfg.Catalog.Source)
		})
	}
}

func TestMigration_ReservationsDoNotReferenceLockers(t *testing.T) {
	schema, err := os.ReadFile(filepath.Join("..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)

	table := string(schema)
	start := strings.Index(table, "CREATE TABLE IF NOT EXISTS reservations")
	require.GreaterOrEqual(t, start, 0)
	end := strings.Index(table[start:], ");")
	require.Greater(t, end, 0)

	assert.NotContains(t, table[start:start+end], "REFERENCES lockers")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown driver", "[storage]\ndriver = \"redis\""},
		{"http catalog without url", "[catalog]\nsource = \"http\""},
		{"postgres catalog on memory storage", "[catalog]\nsource = \"postgres\""},
		{"negative retries", "[ledger]\nmax_retries = -1"},
		{"unknown pricing size", "[pricing.base_price_per_day]\nXL = 20.0"},
		{"negative capacity", "[[catalog.lockers]]\nid = \"a\"\ncapacity = { SMALL = -1 }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
