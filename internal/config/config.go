package config

import (
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultOrderbookURL = "https://api.garden.finance/orders?verbose=true"
	DefaultStaleness    = 360 * time.Minute
)

type Postgres struct {
	URL        string
	Host       string
	Port       string
	DB         string
	User       string
	Password   string
	SSLMode    string
	MaxConns   int32
	TraceLevel string
	TagTimeout time.Duration
}

type Orderbook struct {
	URL     string
	Timeout time.Duration
}

type Cache struct {
	Staleness      time.Duration
	MakerIndexSize int
}

type Kafka struct {
	Brokers    []string
	Topic      string
	Partitions int
}

type Breaker struct {
	Threshold   uint32
	OpenTimeout time.Duration
	MaxHalfOpen uint32
}

type Retry struct {
	Attempts     int
	Base         time.Duration
	Max          time.Duration
	JitterFactor float64
}

type Config struct {
	Env            string
	HTTPAddr       string
	RequestTimeout time.Duration
	CORSOrigins    []string
	MarketLimit    int

	Pg        Postgres
	Orderbook Orderbook
	Cache     Cache
	Kafka     Kafka
	Breaker   Breaker
	Retry     Retry
}

// Load keeps main() simple: it fatals when the environment is unusable.
func Load() Config {
	cfg, err := load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	return cfg
}

func load() (Config, error) {
	_ = godotenv.Load("env/.env")

	cfg := Config{
		Env:            envDefault("APP_ENV", "production"),
		HTTPAddr:       envDefault("HTTP_ADDR", ":5000"),
		RequestTimeout: envDurationMS("REQUEST_TIMEOUT", 60*time.Second),
		CORSOrigins:    splitCSV(envDefault("CORS_ORIGINS", "*")),
		MarketLimit:    envInt("MARKET_LIMIT", 1000),

		Pg: Postgres{
			URL:        strings.TrimSpace(os.Getenv("POSTGRES_URL")),
			Host:       strings.TrimSpace(os.Getenv("PG_HOST")),
			Port:       envDefault("PG_PORT", "5432"),
			DB:         strings.TrimSpace(os.Getenv("PG_DB")),
			User:       strings.TrimSpace(os.Getenv("PG_USER")),
			Password:   strings.TrimSpace(os.Getenv("PG_PASSWORD")),
			SSLMode:    envDefault("PG_SSLMODE", "disable"),
			MaxConns:   int32(envInt("PG_MAX_CONNS", 5)),
			TraceLevel: envDefault("PG_TRACE_LEVEL", "none"),
			TagTimeout: envDurationMS("TAG_TIMEOUT", 5*time.Second),
		},

		Orderbook: Orderbook{
			URL:     envDefault("ORDERBOOK_URL", DefaultOrderbookURL),
			Timeout: envDurationMS("ORDERBOOK_TIMEOUT", 30*time.Second),
		},

		Cache: Cache{
			Staleness:      envDurationMS("CACHE_STALENESS", DefaultStaleness),
			MakerIndexSize: envInt("MAKER_INDEX_SIZE", 1024),
		},

		Kafka: Kafka{
			Brokers:    splitCSV(strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))),
			Topic:      envDefault("KAFKA_TOPIC", "user-tags"),
			Partitions: envInt("KAFKA_PARTITIONS", 1),
		},

		Breaker: Breaker{
			Threshold:   envUint32("BREAKER_THRESHOLD", 5),
			OpenTimeout: envDurationMS("BREAKER_OPENTIMEOUT", 10*time.Second),
			MaxHalfOpen: envUint32("BREAKER_MAXHALFOPEN", 3),
		},

		Retry: Retry{
			Attempts:     envInt("RETRY_ATTEMPTS", 5),
			Base:         envDurationMS("RETRY_BASE", 100*time.Millisecond),
			Max:          envDurationMS("RETRY_MAX", 5*time.Second),
			JitterFactor: envFloat64("RETRY_JITTERFACTOR", 0.3),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	cfg.normalize()
	return cfg, nil
}

func (c Config) validate() error {
	if c.Pg.URL != "" {
		return nil
	}
	var missing []string
	req := []struct{ key, val string }{
		{"PG_HOST", c.Pg.Host},
		{"PG_DB", c.Pg.DB},
		{"PG_USER", c.Pg.User},
	}
	for _, r := range req {
		if strings.TrimSpace(r.val) == "" {
			missing = append(missing, r.key)
		}
	}
	if len(missing) > 0 {
		return &missingEnvError{Keys: append([]string{"POSTGRES_URL or"}, missing...)}
	}
	return nil
}

func (c *Config) normalize() {
	if c.Pg.MaxConns <= 0 {
		log.Printf("PG_MAX_CONNS is %d, adjusting to 5", c.Pg.MaxConns)
		c.Pg.MaxConns = 5
	}
	if c.Cache.Staleness <= 0 {
		log.Printf("CACHE_STALENESS is %v, adjusting to %v", c.Cache.Staleness, DefaultStaleness)
		c.Cache.Staleness = DefaultStaleness
	}
	if c.Cache.MakerIndexSize <= 0 {
		log.Printf("MAKER_INDEX_SIZE is %d, adjusting to 1", c.Cache.MakerIndexSize)
		c.Cache.MakerIndexSize = 1
	}
	if c.MarketLimit <= 0 {
		log.Printf("MARKET_LIMIT is %d, adjusting to 1000", c.MarketLimit)
		c.MarketLimit = 1000
	}
	if c.Kafka.Partitions <= 0 {
		c.Kafka.Partitions = 1
	}
	if c.Retry.Attempts < 1 {
		log.Printf("RETRY_ATTEMPTS is %d, adjusting to 1", c.Retry.Attempts)
		c.Retry.Attempts = 1
	}
	if c.Retry.Base <= 0 {
		log.Printf("RETRY_BASE is %v, adjusting to 100ms", c.Retry.Base)
		c.Retry.Base = 100 * time.Millisecond
	}
	if c.Retry.Max < c.Retry.Base {
		log.Printf("RETRY_MAX (%v) < RETRY_BASE (%v), adjusting max to base", c.Retry.Max, c.Retry.Base)
		c.Retry.Max = c.Retry.Base
	}
}

// KafkaEnabled reports whether tag events should be published.
func (c Config) KafkaEnabled() bool { return len(c.Kafka.Brokers) > 0 }

// Development reports whether APP_ENV selects the development logger.
func (c Config) Development() bool {
	return strings.EqualFold(c.Env, "development") || strings.EqualFold(c.Env, "dev")
}

type missingEnvError struct{ Keys []string }

func (e *missingEnvError) Error() string {
	return "missing required envs: " + strings.Join(e.Keys, ", ")
}

// DSN returns POSTGRES_URL when set, otherwise builds a URL from the PG_* parts
// with user/pass and query escaped.
func (c Config) DSN() string {
	if c.Pg.URL != "" {
		return c.Pg.URL
	}
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.Pg.User, c.Pg.Password),
		Host:   net.JoinHostPort(c.Pg.Host, c.Pg.Port),
		Path:   "/" + c.Pg.DB,
	}
	q := url.Values{}
	if c.Pg.SSLMode != "" {
		q.Set("sslmode", c.Pg.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func envDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return n
}

func envUint32(k string, def uint32) uint32 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	u, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return uint32(u)
}

func envFloat64(k string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using default %.3f: %v", k, v, def, err)
		return def
	}
	return f
}

// envDurationMS accepts plain integer milliseconds ("1500") or Go duration
// strings ("1.5s", "250ms", "360m").
func envDurationMS(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	if strings.IndexFunc(v, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
			return def
		}
		return d
	}
	ms, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
