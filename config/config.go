// Package config carrega a configuração do processo a partir de variáveis de
// ambiente (e de um .env opcional).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type Config struct {
	Server Server
	Store  Store
	Log    Log
	OTel   OTel
	CORS   CORS
	Rate   Rate
	Stats  RateStats
	Limits Limits
}

type Server struct {
	Host string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"SERVER_PORT" envDefault:"80"`
	// Workers limita requisições simultâneas (0 = sem limite).
	Workers int `env:"SERVER_WORKERS" envDefault:"0"`
	// Context é a URL externa usada nos links de paginação.
	Context         string        `env:"SERVER_CONTEXT" envDefault:"http://localhost"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type Store struct {
	Driver           string        `env:"STORE_DRIVER" envDefault:"mongo"`
	ConnectionString string        `env:"MONGODB_CONNECTION_STRING"`
	DatabaseName     string        `env:"MONGODB_DATABASE_NAME"`
	Collection       string        `env:"APPLICATIONS_COLLECTION"`
	PingTimeout      time.Duration `env:"MONGODB_PING_TIMEOUT" envDefault:"5s"`
	MemorySeedFile   string        `env:"MEMORY_SEED_FILE"`
}

type Limits struct {
	MaxFetchLimit int `env:"MAX_FETCH_LIMIT" envDefault:"100"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

type OTel struct {
	Enabled  bool   `env:"OTEL_ENABLED" envDefault:"true"`
	Endpoint string `env:"OTEL_ENDPOINT"`
}

type CORS struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

type Rate struct {
	Enabled            bool          `env:"RATE_ENABLED" envDefault:"false"`
	RPS                float64       `env:"RATE_RPS" envDefault:"10"`
	Burst              int           `env:"RATE_BURST" envDefault:"20"`
	KeyHeader          string        `env:"RATE_KEY_HEADER"`
	TrustXFF           bool          `env:"TRUST_XFF" envDefault:"false"`
	RetryAfter         time.Duration `env:"RETRY_AFTER" envDefault:"1s"`
	AddHeaders         bool          `env:"ADD_RATELIMIT_HEADERS" envDefault:"false"`
	ConcurrencyTimeout time.Duration `env:"CONCURRENCY_TIMEOUT" envDefault:"0s"`
}

type RateStats struct {
	Enabled       bool          `env:"RATE_STATS_ENABLED" envDefault:"false"`
	RedisAddr     string        `env:"RATE_STATS_REDIS_ADDR"`
	RedisPassword string        `env:"RATE_STATS_REDIS_PASSWORD"`
	RedisDB       int           `env:"RATE_STATS_REDIS_DB" envDefault:"0"`
	Prefix        string        `env:"RATE_STATS_PREFIX" envDefault:"catalog:ratelimit:stats"`
	TTL           time.Duration `env:"RATE_STATS_TTL" envDefault:"24h"`
	Bucket        string        `env:"RATE_STATS_BUCKET" envDefault:"minute"`
	TrackKeys     bool          `env:"RATE_STATS_TRACK_KEYS" envDefault:"false"`
}

// Load lê envFile (se existir) e depois o ambiente. Variáveis já definidas no
// ambiente têm precedência sobre o arquivo.
//
// envFile vazio usa ".env"; a ausência desse arquivo padrão não é erro.
func Load(envFile string) (Config, error) {
	explicit := envFile != ""
	if !explicit {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reúne todos os problemas encontrados num único erro.
func (c Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.Server.Workers < 0 {
		errs = append(errs, errors.New("SERVER_WORKERS must be >= 0"))
	}
	if u, err := url.Parse(c.Server.Context); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("SERVER_CONTEXT must be an absolute URL, got %q", c.Server.Context))
	}
	if c.Limits.MaxFetchLimit <= 0 {
		errs = append(errs, fmt.Errorf("MAX_FETCH_LIMIT must be > 0, got %d", c.Limits.MaxFetchLimit))
	}

	switch c.Store.Driver {
	case DriverMongo:
		if strings.TrimSpace(c.Store.ConnectionString) == "" {
			errs = append(errs, errors.New("MONGODB_CONNECTION_STRING has not been specified"))
		}
		if strings.TrimSpace(c.Store.DatabaseName) == "" {
			errs = append(errs, errors.New("MONGODB_DATABASE_NAME has not been specified"))
		}
		if strings.TrimSpace(c.Store.Collection) == "" {
			errs = append(errs, errors.New("APPLICATIONS_COLLECTION has not been specified"))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", DriverMongo, DriverMemory, c.Store.Driver))
	}

	if c.Rate.Enabled {
		if c.Rate.RPS <= 0 {
			errs = append(errs, errors.New("RATE_RPS must be > 0"))
		}
		if c.Rate.Burst <= 0 {
			errs = append(errs, errors.New("RATE_BURST must be > 0"))
		}
	}
	if c.Stats.Enabled && strings.TrimSpace(c.Stats.RedisAddr) == "" {
		errs = append(errs, errors.New("RATE_STATS_REDIS_ADDR is required when RATE_STATS_ENABLED=true"))
	}

	return errors.Join(errs...)
}

// Addr devolve host:port para o listener.
func (s Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
