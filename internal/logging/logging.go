package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/sirupsen/logrus"

	"restaurant-finder-api/internal/config"
)

// Poster is the part of the Fluent client the hook needs
type Poster interface {
	Post(tag string, message interface{}) error
}

// FluentHook forwards logrus entries to a Fluent Bit / Fluentd collector.
// Entries are tagged with their level; the client adds the tag prefix.
type FluentHook struct {
	poster Poster
	levels []logrus.Level
}

// NewFluentHook creates a hook that forwards entries at minLevel or more severe
func NewFluentHook(poster Poster, minLevel logrus.Level) *FluentHook {
	levels := make([]logrus.Level, 0, len(logrus.AllLevels))
	for _, level := range logrus.AllLevels {
		if level <= minLevel {
			levels = append(levels, level)
		}
	}
	return &FluentHook{poster: poster, levels: levels}
}

// Levels implements logrus.Hook
func (h *FluentHook) Levels() []logrus.Level {
	return h.levels
}

// Fire implements logrus.Hook
func (h *FluentHook) Fire(entry *logrus.Entry) error {
	data := make(map[string]interface{}, len(entry.Data)+3)
	for key, value := range entry.Data {
		if err, ok := value.(error); ok {
			data[key] = err.Error()
			continue
		}
		data[key] = value
	}
	data["level"] = entry.Level.String()
	data["message"] = entry.Message
	data["timestamp"] = entry.Time.UTC().Format(time.RFC3339Nano)

	return h.poster.Post(entry.Level.String(), data)
}

// Configure applies level and format to logger and attaches the Fluent hook
// when enabled. The returned function flushes and closes the Fluent client.
func Configure(logger *logrus.Logger, cfg config.LoggingConfig) (func() error, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	logger.SetLevel(level)
	logger.SetOutput(os.Stdout)

	switch strings.ToLower(cfg.Format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.Format)
	}

	if !cfg.FluentEnabled {
		return func() error { return nil }, nil
	}

	client, err := fluent.New(fluent.Config{
		FluentHost: cfg.FluentHost,
		FluentPort: cfg.FluentPort,
		TagPrefix:  cfg.FluentTag,
		Async:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fluent client: %w", err)
	}

	logger.AddHook(NewFluentHook(client, level))
	logger.WithFields(logrus.Fields{
		"host": cfg.FluentHost,
		"port": cfg.FluentPort,
		"tag":  cfg.FluentTag,
	}).Info("Fluent log forwarding enabled")

	return client.Close, nil
}
