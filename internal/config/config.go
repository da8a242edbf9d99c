package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Corpus generation.
	CorpusSize   int
	BatchSize    int
	Seed         int64
	WindowYears  int
	ClearBias    float64
	FestivalRate float64

	// Kafka sink configuration.
	KafkaBrokers     []string
	KafkaSinkTopic   string
	KafkaSinkEnabled bool
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	corpusSize, err := parseInt("CORPUS_SIZE", 20000)
	if err != nil {
		return nil, err
	}

	batchSize, err := parseInt("BATCH_SIZE", 500)
	if err != nil {
		return nil, err
	}

	seed, err := parseInt64("CORPUS_SEED", 0)
	if err != nil {
		return nil, err
	}

	windowYears, err := parseInt("WINDOW_YEARS", 2)
	if err != nil {
		return nil, err
	}

	clearBias, err := parseFloat("CLEAR_BIAS", 0.6)
	if err != nil {
		return nil, err
	}

	festivalRate, err := parseFloat("FESTIVAL_RATE", 0.02)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		CorpusSize:   corpusSize,
		BatchSize:    batchSize,
		Seed:         seed,
		WindowYears:  windowYears,
		ClearBias:    clearBias,
		FestivalRate: festivalRate,

		KafkaBrokers:     parseBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSinkTopic:   envOrDefault("KAFKA_SINK_TOPIC", "labeled-footfall-observations"),
		KafkaSinkEnabled: os.Getenv("KAFKA_SINK_ENABLED") == "true",
	}

	if cfg.CorpusSize <= 0 {
		return nil, errors.New("CORPUS_SIZE must be positive")
	}
	if cfg.BatchSize <= 0 {
		return nil, errors.New("BATCH_SIZE must be positive")
	}
	if cfg.WindowYears <= 0 {
		return nil, errors.New("WINDOW_YEARS must be positive")
	}
	if cfg.ClearBias <= 0 || cfg.ClearBias > 1 {
		return nil, errors.New("CLEAR_BIAS must be in (0, 1]")
	}
	if cfg.FestivalRate < 0 || cfg.FestivalRate > 1 {
		return nil, errors.New("FESTIVAL_RATE must be in [0, 1]")
	}
	if cfg.KafkaSinkEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_SINK_ENABLED is true but KAFKA_BROKERS is empty")
		}
		if cfg.KafkaSinkTopic == "" {
			return nil, errors.New("KAFKA_SINK_ENABLED is true but KAFKA_SINK_TOPIC is empty")
		}
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBrokers(s string) []string {
	var out []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

func parseInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func parseInt64(key string, fallback int64) (int64, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func parseFloat(key string, fallback float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return d, nil
}
