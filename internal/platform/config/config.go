package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates all runtime configuration. Everything is injected from
// here at construction time; there is no package-level mutable state for
// topic or queue names.
type Config struct {
	Server    Server
	Kafka     Kafka
	Redis     Redis
	Postgres  Postgres
	Providers Providers
	Publisher Publisher
	Pipeline  Pipeline
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr string
}

// Kafka names the brokers backing the broadcast channel.
type Kafka struct {
	Brokers []string
}

// Redis points at the instance backing the point-to-point work channels.
type Redis struct {
	URL string
}

// Postgres points at the case store. Empty URL selects the in-memory store.
type Postgres struct {
	URL string
}

// Providers bounds how long and how stubbornly the provider clients chase
// each external source.
type Providers struct {
	CivilURL      string
	EmploymentURL string
	TaxURL        string
	BankURL       string
	Timeout       time.Duration
	MaxAttempts   int
	BaseDelay     time.Duration
	Multiplier    float64
}

// Publisher names the outbound topics and queues.
type Publisher struct {
	DecidedTopic  string
	AlertTopic    string
	PaymentQueue  string
	DocumentQueue string
}

// Pipeline bounds one whole orchestration run.
type Pipeline struct {
	Timeout time.Duration
}

// FromEnv builds the full configuration from environment variables so main
// stays lean.
func FromEnv() Config {
	return Config{
		Server: Server{
			Addr: envStr("CASEFLOW_ADDR", ":8080"),
		},
		Kafka: Kafka{
			Brokers: strings.Split(envStr("CASEFLOW_KAFKA_BROKERS", "localhost:9092"), ","),
		},
		Redis: Redis{
			URL: envStr("CASEFLOW_REDIS_URL", "redis://localhost:6379"),
		},
		Postgres: Postgres{
			URL: os.Getenv("CASEFLOW_POSTGRES_URL"),
		},
		Providers: Providers{
			CivilURL:      envStr("CASEFLOW_CIVIL_REGISTRY_URL", "http://localhost:9001"),
			EmploymentURL: envStr("CASEFLOW_EMPLOYMENT_REGISTRY_URL", "http://localhost:9002"),
			TaxURL:        envStr("CASEFLOW_TAX_REGISTRY_URL", "http://localhost:9003"),
			BankURL:       envStr("CASEFLOW_BANK_VALIDATOR_URL", "http://localhost:9004"),
			Timeout:       envDur("CASEFLOW_PROVIDER_TIMEOUT", 2*time.Second),
			MaxAttempts:   envInt("CASEFLOW_PROVIDER_MAX_ATTEMPTS", 3),
			BaseDelay:     envDur("CASEFLOW_PROVIDER_BASE_DELAY", 50*time.Millisecond),
			Multiplier:    2,
		},
		Publisher: Publisher{
			DecidedTopic:  envStr("CASEFLOW_TOPIC_DECIDED", "caseflow.case.decided"),
			AlertTopic:    envStr("CASEFLOW_TOPIC_ALERTS", "caseflow.alerts"),
			PaymentQueue:  envStr("CASEFLOW_QUEUE_PAYMENT", "caseflow.work.payment"),
			DocumentQueue: envStr("CASEFLOW_QUEUE_DOCUMENT", "caseflow.work.document"),
		},
		Pipeline: Pipeline{
			Timeout: envDur("CASEFLOW_PIPELINE_TIMEOUT", 10*time.Second),
		},
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDur(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
