package service

import (
	"context"
	"encoding/json"
	"hackaplan/metrics"
	"log/slog"
	"strconv"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaScorePublisher appends score events to a topic keyed by hackathon, so all
// scores of one hackathon stay ordered within a partition.
type KafkaScorePublisher struct {
	writer messageWriter
}

// NewKafkaScorePublisher takes over the writer's Completion callback to report
// failed deliveries of an async writer.
func NewKafkaScorePublisher(writer *kafka.Writer) *KafkaScorePublisher {
	p := &KafkaScorePublisher{writer: writer}
	writer.Completion = p.onDelivery
	return p
}

func (p *KafkaScorePublisher) Name() string {
	return "kafka"
}

func (p *KafkaScorePublisher) PublishScore(ctx context.Context, event ScoreEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(event.HackathonID)),
		Value: value,
		Time:  event.AssignedAt,
	})
}

func (p *KafkaScorePublisher) onDelivery(messages []kafka.Message, err error) {
	if err == nil {
		return
	}
	metrics.ScoreEventsPublishedCounter.WithLabelValues(p.Name(), "delivery_failed").Add(float64(len(messages)))
	for _, message := range messages {
		slog.Error("failed to deliver score event",
			"hackathon_id", string(message.Key),
			"error", err,
		)
	}
}

// Close flushes queued events before closing the writer.
func (p *KafkaScorePublisher) Close() error {
	return p.writer.Close()
}
