package config

import (
	"errors"
	"fmt"
	"hackaplan/utils"
	"net"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

const scoreRetention = 30 * 24 * time.Hour

// EnsureTopic creates topic through the cluster controller. An existing topic is left untouched.
func EnsureTopic(broker string, topic string) error {
	conn, err := kafka.Dial("tcp", broker)
	if err != nil {
		return err
	}
	defer utils.Closer(conn)()

	controller, err := conn.Controller()
	if err != nil {
		return err
	}
	controllerConn, err := kafka.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return err
	}
	defer utils.Closer(controllerConn)()

	err = controllerConn.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     3,
		ReplicationFactor: 1,
		ConfigEntries: []kafka.ConfigEntry{
			{ConfigName: "retention.ms", ConfigValue: strconv.FormatInt(scoreRetention.Milliseconds(), 10)},
			{ConfigName: "cleanup.policy", ConfigValue: "delete"},
		},
	})
	if errors.Is(err, kafka.TopicAlreadyExists) {
		return nil
	}
	return err
}

// NewScoreWriter ensures the score topic exists and returns its writer.
func NewScoreWriter(cfg *Config) (*kafka.Writer, error) {
	if cfg.KafkaBroker == "" {
		return nil, fmt.Errorf("KAFKA_BROKER environment variable not set")
	}
	if err := EnsureTopic(cfg.KafkaBroker, cfg.KafkaScoreTopic); err != nil {
		return nil, fmt.Errorf("failed to create topic %s: %w", cfg.KafkaScoreTopic, err)
	}
	return newScoreWriter(cfg.KafkaBroker, cfg.KafkaScoreTopic), nil
}

// Events of one hackathon share a key, so the hash balancer keeps them on one
// partition and in order. Writes are async: WriteMessages only queues, and
// delivery failures surface through Writer.Completion.
func newScoreWriter(broker string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
		Async:        true,
	}
}
