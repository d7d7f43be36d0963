package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServiceName    string
	ServiceVersion string
	Edition        string
	Port           int
	LogLevel       string

	KafkaBrokers     []string
	OrderEventsTopic string
	NotifierGroupID  string

	OTLPEndpoint string

	APIBaseURL          string
	NotifyWebhookURL    string
	NotifierMetricsPort int
}

// Load reads configuration from the environment, after merging a .env file
// from the working directory when one exists. Variables already set win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		ServiceName:    EnvDefault("SERVICE_NAME", "storefront-api"),
		ServiceVersion: EnvDefault("SERVICE_VERSION", "1.0.0"),
		Edition:        EnvDefault("EDITION", "Trial"),
		Port:           EnvIntDefault("PORT", 3000),
		LogLevel:       EnvDefault("LOG_LEVEL", "info"),

		KafkaBrokers:     CSV(os.Getenv("KAFKA_BROKERS")),
		OrderEventsTopic: EnvDefault("ORDER_EVENTS_TOPIC", "order.events"),
		NotifierGroupID:  EnvDefault("NOTIFIER_GROUP_ID", "order-notifier"),

		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),

		APIBaseURL:          EnvDefault("API_BASE_URL", "http://localhost:3000/api"),
		NotifyWebhookURL:    os.Getenv("NOTIFY_WEBHOOK_URL"),
		NotifierMetricsPort: EnvIntDefault("NOTIFIER_METRICS_PORT", 9464),
	}
}

func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
