package config

import (
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Remote struct {
	BaseURL   string
	PartnerID string
	Timeout   time.Duration
}

type User struct {
	Username string
	Password string
}

type Reference struct {
	CacheTTL          time.Duration
	DefaultPageFormat string
}

type Kafka struct {
	Brokers []string
	Topic   string
}

type Stub struct {
	Addr    string
	Fixture string
}

type Config struct {
	LogLevel string

	Remote    Remote
	User      User
	Reference Reference
	Kafka     Kafka
	Stub      Stub
}

// Load reads the CLI configuration and fatals on error for simplicity in main().
func Load() Config {
	cfg, err := load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	if err := cfg.validate(); err != nil {
		log.Fatalf("config load error: %v", err)
	}
	return cfg
}

// LoadStub reads the configuration of the stub service, which needs no
// remote endpoint or user.
func LoadStub() Config {
	cfg, err := load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	return cfg
}

func load() (Config, error) {
	_ = godotenv.Load(".env")

	cfg := Config{
		LogLevel: strings.ToLower(envDefault("LOG_LEVEL", "info")),

		Remote: Remote{
			BaseURL:   strings.TrimRight(strings.TrimSpace(os.Getenv("ONECLICK_BASE_URL")), "/"),
			PartnerID: strings.TrimSpace(os.Getenv("ONECLICK_PARTNER_ID")),
			Timeout:   envDurationMS("ONECLICK_TIMEOUT", 15*time.Second),
		},

		User: User{
			Username: strings.TrimSpace(os.Getenv("ONECLICK_USERNAME")),
			Password: os.Getenv("ONECLICK_PASSWORD"),
		},

		Reference: Reference{
			CacheTTL:          envDurationMS("REFERENCE_CACHE_TTL", 24*time.Hour),
			DefaultPageFormat: envDefault("DEFAULT_PAGE_FORMAT", "DIN A4 Normalpapier"),
		},

		Kafka: Kafka{
			Brokers: splitCSV(strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))),
			Topic:   envDefault("KAFKA_TOPIC", "voucher-checkouts"),
		},

		Stub: Stub{
			Addr:    envDefault("STUB_ADDR", ":8090"),
			Fixture: strings.TrimSpace(os.Getenv("STUB_FIXTURE")),
		},
	}

	if cfg.Reference.CacheTTL <= 0 {
		log.Printf("REFERENCE_CACHE_TTL is %v, adjusting to 24h", cfg.Reference.CacheTTL)
		cfg.Reference.CacheTTL = 24 * time.Hour
	}
	if cfg.Remote.Timeout <= 0 {
		log.Printf("ONECLICK_TIMEOUT is %v, adjusting to 15s", cfg.Remote.Timeout)
		cfg.Remote.Timeout = 15 * time.Second
	}
	return cfg, nil
}

func (c Config) validate() error {
	var missing []string
	req := map[string]string{
		"ONECLICK_BASE_URL": c.Remote.BaseURL,
		"ONECLICK_USERNAME": c.User.Username,
		"ONECLICK_PASSWORD": c.User.Password,
	}
	for k, v := range req {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return &missingEnvError{Keys: missing}
	}

	if _, err := url.ParseRequestURI(c.Remote.BaseURL); err != nil {
		return err
	}
	return nil
}

type missingEnvError struct{ Keys []string }

func (e *missingEnvError) Error() string {
	return "missing required envs: " + strings.Join(e.Keys, ", ")
}

func envDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

// envDurationMS supports either plain integer milliseconds ("1500") or
// Go duration strings ("1.5s", "250ms", "24h").
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
