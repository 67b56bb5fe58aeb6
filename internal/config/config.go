package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores dispatch service settings.
type Config struct {
	Port      int
	Franchise string
	JWTSecret string

	Orders    OrdersAPI
	Riders    RidersAPI
	DB        DB
	Kafka     Kafka
	Filters   Filters
	CORS      CORS
	RateLimit RateLimit
	Pprof     Pprof
}

// OrdersAPI stores remote order store client settings.
type OrdersAPI struct {
	BaseURL     string
	Token       string
	Timeout     time.Duration
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RidersAPI stores rider directory client settings.
type RidersAPI struct {
	BaseURL string
	Timeout time.Duration
}

// DB stores Postgres connection settings for the assignment audit trail.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN returns the Postgres connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		d.User, d.Pass, d.Host, d.Port, d.Name)
}

// Kafka stores order event consumer settings. Empty brokers disable the consumer.
type Kafka struct {
	Brokers []string
	Topic   string
	GroupID string
}

// Filters stores listing defaults.
type Filters struct {
	PageSize       int
	SearchDebounce time.Duration
}

// CORS stores allowed dashboard origins.
type CORS struct {
	AllowedOrigins []string
}

// RateLimit stores per-user request throttling settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64 // tokens per second
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Pprof stores pprof side server settings. Port 0 disables it.
type Pprof struct {
	Port int
	User string
	Pass string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      DefaultPort(),
		Franchise: os.Getenv("FRANCHISE_ID"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		Orders:    DefaultOrdersAPI(),
		Riders:    DefaultRidersAPI(),
		DB:        DefaultDB(),
		Kafka:     DefaultKafka(),
		Filters:   DefaultFilters(),
		CORS:      DefaultCORS(),
		RateLimit: DefaultRateLimit(),
	}

	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %q", v)
		}
		cfg.Port = p
	}

	readString(&cfg.Orders.BaseURL, "YDM_API_URL")
	readString(&cfg.Orders.Token, "YDM_API_TOKEN")
	readString(&cfg.Riders.BaseURL, "RIDERS_API_URL")

	readString(&cfg.DB.Host, "POSTGRES_HOST")
	readString(&cfg.DB.User, "POSTGRES_USER")
	readString(&cfg.DB.Pass, "POSTGRES_PASSWORD")
	readString(&cfg.DB.Name, "POSTGRES_DB")
	if v := os.Getenv("POSTGRES_PORT"); v != "" {
		if _, err := strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("invalid POSTGRES_PORT: %q", v)
		}
		cfg.DB.Port = v
	}

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitAndTrim(v)
	}
	readString(&cfg.Kafka.Topic, "KAFKA_ORDER_EVENTS_TOPIC")
	readString(&cfg.Kafka.GroupID, "KAFKA_GROUP_ID")

	if v := os.Getenv("SEARCH_DEBOUNCE"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SEARCH_DEBOUNCE: %q", v)
		}
		cfg.Filters.SearchDebounce = d
	}
	if v := os.Getenv("PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid PAGE_SIZE: %q", v)
		}
		cfg.Filters.PageSize = n
	}

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.CORS.AllowedOrigins = splitAndTrim(v)
	}

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_ENABLED: %q", v)
		}
		cfg.RateLimit.Enabled = b
	}
	if v := os.Getenv("RATE_LIMIT_RATE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return nil, fmt.Errorf("invalid RATE_LIMIT_RATE: %q", v)
		}
		cfg.RateLimit.Rate = f
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: %q", v)
		}
		cfg.RateLimit.Burst = n
	}

	if v := os.Getenv("PPROF_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PPROF_PORT: %q", v)
		}
		cfg.Pprof.Port = p
	}
	readString(&cfg.Pprof.User, "PPROF_USER")
	readString(&cfg.Pprof.Pass, "PPROF_PASS")

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.StringVar(&cfg.Franchise, "franchise", cfg.Franchise, "franchise identifier for order listings")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.Pprof.Port < 0 || c.Pprof.Port > 65535 {
		return fmt.Errorf("invalid pprof port: %d", c.Pprof.Port)
	}
	if c.Filters.SearchDebounce < 0 {
		return fmt.Errorf("invalid search debounce: %s", c.Filters.SearchDebounce)
	}
	return nil
}

func readString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
