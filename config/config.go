package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server   Server   `envconfig:"SERVER"`
	App      App      `envconfig:"APP"`
	Booking  Booking  `envconfig:"BOOKING"`
	Cache    Cache    `envconfig:"CACHE"`
	JWT      JWT      `envconfig:"JWT"`
	DB       DB       `envconfig:"DB"`
	Kafka    Kafka    `envconfig:"KAFKA"`
	External External `envconfig:"EXTERNAL"`
}

type Server struct {
	Env      string `envconfig:"ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT" default:"8080"`
	Shutdown struct {
		GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS" default:"10"`
		CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"10"`
	} `envconfig:"SHUTDOWN"`
}

type App struct {
	Name        string      `envconfig:"APP_NAME" default:"salas"`
	Timezone    string      `envconfig:"TIMEZONE"`
	APIKey      string      `envconfig:"API_KEY"`
	CORS        CORS        `envconfig:"CORS"`
	RateLimiter RateLimiter `envconfig:"RATE_LIMITER"`
}

type CORS struct {
	Enable           bool     `envconfig:"ENABLE"`
	AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
	AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
	AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
	AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
	MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
}

// RateLimiter allows MaxRequests per client in every WindowSeconds window.
type RateLimiter struct {
	Enable        bool `envconfig:"ENABLE"`
	MaxRequests   int  `envconfig:"MAX_REQUESTS" default:"120"`
	WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
}

type Booking struct {
	// EnforceMaxActive turns on the max_active_reservations check on create.
	EnforceMaxActive bool `envconfig:"ENFORCE_MAX_ACTIVE"`
	PastHistoryLimit int  `envconfig:"PAST_HISTORY_LIMIT" default:"10"`
}

type Cache struct {
	Redis struct {
		Primary Redis `envconfig:"PRIMARY"`
	} `envconfig:"REDIS"`
	TTL     int `envconfig:"TTL" default:"300"`
	GridTTL int `envconfig:"GRID_TTL" default:"30"`
}

type Redis struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB"`
}

type JWT struct {
	AccessSecret    string `envconfig:"ACCESS_SECRET"`
	AccessExpireMin int    `envconfig:"ACCESS_EXPIRE_MIN" default:"60"`
}

type DB struct {
	Postgres Postgres `envconfig:"POSTGRES"`
}

// Postgres has one node for reads and one for writes; both may point at the same server.
type Postgres struct {
	MaxRetry       int    `envconfig:"MAX_RETRY" default:"3"`
	RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME" default:"2"`
	MigrationTable string `envconfig:"MIGRATION_TABLE"`
	AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
	Prefix         string `envconfig:"PREFIX"`
	Read           Node   `envconfig:"READ"`
	Write          Node   `envconfig:"WRITE"`
}

type Node struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT" default:"5432"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

// DatabaseName applies the configured prefix to the node's database name.
func (p Postgres) DatabaseName(node Node) string {
	return p.Prefix + node.Name
}

type Kafka struct {
	Enable  bool     `envconfig:"ENABLE"`
	Brokers []string `envconfig:"BROKERS"`
	Topic   struct {
		Reservation string `envconfig:"RESERVATION" default:"reservations"`
	} `envconfig:"TOPIC"`
	SASL struct {
		Username string `envconfig:"USERNAME"`
		Password string `envconfig:"PASSWORD"`
	} `envconfig:"SASL"`
}

type External struct {
	Otel struct {
		Endpoint string `envconfig:"ENDPOINT"`
	} `envconfig:"OTEL"`
}

var (
	conf Config
	once sync.Once
)

// Get loads .env (when present) and the environment on first use, and returns the shared config.
func Get() *Config {
	once.Do(load)

	return &conf
}

func load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Debug().Err(err).Msg("No .env file loaded, reading the environment only")
	}

	if err := envconfig.Process("", &conf); err != nil {
		log.Fatal().Err(err).Msg("Failed to process environment variables")
	}

	log.Info().Str("env", conf.Server.Env).Msg("Configuration loaded")
}
