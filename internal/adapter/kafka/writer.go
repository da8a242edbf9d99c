// Package kafka publishes labeled observations to the sink topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/deccanpulse/footfall-density-service/internal/config"
	"github.com/deccanpulse/footfall-density-service/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer produces messages to a Kafka topic.
// It implements pipeline.BatchLoader.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// LoadBatch serializes and publishes multiple observations to the sink topic
// in a single WriteMessages call. Deterministic observation IDs keep replays
// idempotent downstream.
func (w *Writer) LoadBatch(ctx context.Context, observations []domain.Observation) error {
	if len(observations) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(observations))
	for i := range observations {
		msg, err := serializeToMessage(observations[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	return w.writer.WriteMessages(ctx, msgs...)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals an observation into a Kafka message.
func serializeToMessage(o domain.Observation) (kafkago.Message, error) {
	data, err := json.Marshal(o)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize observation: %w", err)
	}
	density := ""
	if o.Density != nil {
		density = o.Density.String()
	}
	return kafkago.Message{
		Key:   []byte(o.ID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "location", Value: []byte(o.Location)},
			{Key: "density", Value: []byte(density)},
			{Key: "observed_at", Value: []byte(o.Timestamp.Format(time.RFC3339))},
		},
	}, nil
}
