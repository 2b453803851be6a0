package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (timezone, schedule, etc.)
// - optional integrations (AMQP, game catalog, Redis) are disabled when their URL is empty
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	App         AppConfig
	Notifier    NotifierConfig
	AMQP        AMQPConfig
	GameCatalog GameCatalogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`

	// AutoMigrate applies the embedded goose migrations on startup.
	AutoMigrate bool `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"Europe/Madrid"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// AppConfig.TimeZone is the shops' wall-clock zone: event ids, day windows and
// notification texts are all computed in it.
type AppConfig struct {
	TimeZone string `envconfig:"APP_TIMEZONE" default:"Europe/Madrid"`
}

type NotifierConfig struct {
	Enabled    bool          `envconfig:"NOTIFIER_ENABLED" default:"true"`
	Interval   time.Duration `envconfig:"NOTIFIER_INTERVAL" default:"15m"`
	Lead       time.Duration `envconfig:"NOTIFIER_LEAD" default:"0s"`
	Window     time.Duration `envconfig:"NOTIFIER_WINDOW" default:"44m"`
	ActiveFrom int           `envconfig:"NOTIFIER_ACTIVE_FROM" default:"8"`
	ActiveTo   int           `envconfig:"NOTIFIER_ACTIVE_TO" default:"23"`
}

type AMQPConfig struct {
	URL      string `envconfig:"AMQP_URL"`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"notifications"`
}

type GameCatalogConfig struct {
	BaseURL       string        `envconfig:"GAME_CATALOG_URL"`
	Timeout       time.Duration `envconfig:"GAME_CATALOG_TIMEOUT" default:"5s"`
	RedisAddr     string        `envconfig:"REDIS_ADDR"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	CacheTTL      time.Duration `envconfig:"GAME_CATALOG_CACHE_TTL" default:"24h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s&pool_max_conns=%d",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone, c.MaxConns,
	)
}

func (c AppConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.TimeZone)
}

func (c NotifierConfig) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("NOTIFIER_INTERVAL must be positive, got %s", c.Interval)
	}
	// Consecutive scan windows must overlap, otherwise a reservation can fall between two runs.
	if c.Window <= c.Interval {
		return fmt.Errorf("NOTIFIER_WINDOW (%s) must be wider than NOTIFIER_INTERVAL (%s)", c.Window, c.Interval)
	}
	if c.Lead < 0 {
		return fmt.Errorf("NOTIFIER_LEAD must not be negative, got %s", c.Lead)
	}
	if c.ActiveFrom < 0 || c.ActiveTo > 24 || c.ActiveFrom >= c.ActiveTo {
		return fmt.Errorf("invalid notifier active hours [%d, %d)", c.ActiveFrom, c.ActiveTo)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if _, err := cfg.App.Location(); err != nil {
		return Config{}, fmt.Errorf("invalid APP_TIMEZONE %q: %w", cfg.App.TimeZone, err)
	}
	if err := cfg.Notifier.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "Europe/Madrid",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		App: AppConfig{
			TimeZone: "Europe/Madrid",
		},
		Notifier: NotifierConfig{
			Enabled:    false,
			Interval:   15 * time.Minute,
			Window:     44 * time.Minute,
			ActiveFrom: 0,
			ActiveTo:   24,
		},
		AMQP: AMQPConfig{
			Exchange: "notifications",
		},
		GameCatalog: GameCatalogConfig{
			Timeout:  time.Second,
			CacheTTL: time.Hour,
		},
	}
}
