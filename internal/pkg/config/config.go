package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	Redis      RedisConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Cookie     CookieConfig
	Restaurant RestaurantConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Bangkok"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	// Channel every reservation insert/update is announced on. Subscribers
	// treat messages as invalidation signals only, never as data.
	InvalidationChannel string `envconfig:"REDIS_INVALIDATION_CHANNEL" default:"tablebook:reservations"`
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
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Bangkok"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

type JWTConfig struct {
	Secret          string        `envconfig:"JWT_SECRET" required:"true"`
	AccessDuration  time.Duration `envconfig:"JWT_ACCESS_DURATION" default:"15m"`
	RefreshDuration time.Duration `envconfig:"JWT_REFRESH_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"lax"`
}

/// RestaurantConfig carries the booking policy knobs: the restaurant's civil
// timezone, per-channel service-window durations, the per-head minimum spend,
// and dates the restaurant does not take bookings for.
type RestaurantConfig struct {
	TimeZone        string        `envconfig:"RESTAURANT_TIMEZONE" default:"Asia/Bangkok"`
	DineInDuration  time.Duration `envconfig:"DINE_IN_DURATION" default:"2h"`
	PickupDuration  time.Duration `envconfig:"PICKUP_DURATION" default:"30m"`
	MinSpendCents   int64         `envconfig:"MIN_SPEND_CENTS" default:"0"`
	BlockedDates    []string      `envconfig:"BLOCKED_DATES" default:""`
	ProofMaxBytes   int64         `envconfig:"PROOF_MAX_BYTES" default:"5242880"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location resolves the restaurant timezone once; config errors surface at
// startup rather than per request.
func (c *RestaurantConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant timezone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c *RestaurantConfig) IsDateBlocked(dateISO string) bool {
	for _, d := range c.BlockedDates {
		if d == dateISO {
			return true
		}
	}
	return false
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
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
			TimeZone: "Asia/Bangkok",
		},
		Redis: RedisConfig{
			Addr:                "localhost:16379",
			InvalidationChannel: "tablebook:test:reservations",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Bangkok",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
		JWT: JWTConfig{
			Secret:          "test-secret",
			AccessDuration:  15 * time.Minute,
			RefreshDuration: 168 * time.Hour,
		},
		Restaurant: RestaurantConfig{
			TimeZone:       "Asia/Bangkok",
			DineInDuration: 2 * time.Hour,
			PickupDuration: 30 * time.Minute,
			ProofMaxBytes:  5 << 20,
		},
	}
}
