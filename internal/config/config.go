package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/MaximeC37/BikerBox-sub000/internal/domain"
)

// Драйверы хранилища бронирований
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Источники каталога ячеек
const (
	CatalogSourceConfig   = "config"
	CatalogSourcePostgres = "postgres"
	CatalogSourceHTTP     = "http"
)

const defaultMaxRetries = 3

var (
	// ErrInvalidConfig возвращается при недопустимых значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Storage  StorageConfig  `toml:"storage"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Ledger   LedgerConfig   `toml:"ledger"`
	Pricing  PricingConfig  `toml:"pricing"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig выбор хранилища бронирований
type StorageConfig struct {
	Driver string `toml:"driver"`
}

// CatalogConfig источник каталога ячеек
// Для source = "config" ячейки берутся из секций [[catalog.lockers]]
type CatalogConfig struct {
	Source  string         `toml:"source"`
	URL     string         `toml:"url"`
	Timeout int            `toml:"timeout"`
	Lockers []LockerConfig `toml:"lockers"`
}

// LockerConfig описание ячейки в конфигурации
type LockerConfig struct {
	ID        string         `toml:"id"`
	Name      string         `toml:"name"`
	Location  string         `toml:"location"`
	Latitude  float64        `toml:"latitude"`
	Longitude float64        `toml:"longitude"`
	Capacity  map[string]int `toml:"capacity"`
}

// ToDomain конвертирует описание ячейки в domain модель
func (l LockerConfig) ToDomain() *domain.Locker {
	capacity := make(map[domain.LockerSize]int, len(l.Capacity))
	for size, count := range l.Capacity {
		capacity[domain.LockerSize(size)] = count
	}
	return &domain.Locker{
		ID:       l.ID,
		Name:     l.Name,
		Location: l.Location,
		Coordinates: domain.Coordinates{
			Latitude:  l.Latitude,
			Longitude: l.Longitude,
		},
		Capacity: capacity,
	}
}

// LedgerConfig параметры журнала бронирований
type LedgerConfig struct {
	MaxRetries int `toml:"max_retries"`
}

// PricingConfig базовые цены за день по размерам (SMALL, MEDIUM, LARGE)
type PricingConfig struct {
	BasePricePerDay map[string]float64 `toml:"base_price_per_day"`
}

// BasePrices возвращает переопределенные базовые цены
func (p PricingConfig) BasePrices() map[domain.LockerSize]float64 {
	prices := make(map[domain.LockerSize]float64, len(p.BasePricePerDay))
	for size, price := range p.BasePricePerDay {
		prices[domain.LockerSize(size)] = price
	}
	return prices
}

// Load читает конфигурацию из TOML файла, заполняет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.setDefaults(meta)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults заполняет незаданные значения; для ключей, где ноль допустим,
// проверяется наличие ключа в файле
func (c *Config) setDefaults(meta toml.MetaData) {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "bikerbox"
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageMemory
	}
	if c.Catalog.Source == "" {
		c.Catalog.Source = CatalogSourceConfig
	}
	if c.Catalog.Timeout == 0 {
		c.Catalog.Timeout = 5
	}
	if !meta.IsDefined("ledger", "max_retries") {
		c.Ledger.MaxRetries = defaultMaxRetries
	}
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("%w: unknown storage driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	switch c.Catalog.Source {
	case CatalogSourceConfig:
	case CatalogSourcePostgres:
		if c.Storage.Driver != StoragePostgres {
			return fmt.Errorf("%w: postgres catalog requires postgres storage", ErrInvalidConfig)
		}
	case CatalogSourceHTTP:
		if c.Catalog.URL == "" {
			return fmt.Errorf("%w: catalog url is required for http source", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown catalog source %q", ErrInvalidConfig, c.Catalog.Source)
	}

	if c.Ledger.MaxRetries < 0 {
		return fmt.Errorf("%w: ledger max_retries must not be negative", ErrInvalidConfig)
	}

	for size, price := range c.Pricing.BasePricePerDay {
		if !domain.LockerSize(size).IsValid() {
			return fmt.Errorf("%w: unknown locker size %q in pricing", ErrInvalidConfig, size)
		}
		if price < 0 {
			return fmt.Errorf("%w: negative base price for %s", ErrInvalidConfig, size)
		}
	}

	for _, l := range c.Catalog.Lockers {
		if l.ID == "" {
			return fmt.Errorf("%w: locker without id", ErrInvalidConfig)
		}
		for size, count := range l.Capacity {
			if count < 0 {
				return fmt.Errorf("%w: negative capacity %s for locker %s", ErrInvalidConfig, size, l.ID)
			}
		}
	}

	return nil
}
