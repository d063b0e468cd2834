// Package kafka publishes notification events for asynchronous delivery.
package kafka

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

// NotificationEvent is the payload published for every outbound notification
type NotificationEvent struct {
	Type      string    `json:"type"`
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}

// Producer wraps a Kafka producer with helper methods
type Producer struct {
	producer *kafka.Producer
	config   *Config
	logger   *slog.Logger
}

// NewProducer creates a new Kafka producer with idempotence enabled
func NewProducer(config *Config, logger *slog.Logger) (*Producer, error) {
	producerConfig := &kafka.ConfigMap{
		"bootstrap.servers":                     config.Brokers,
		"enable.idempotence":                    config.EnableIdempotence,
		"acks":                                  config.Acks,
		"max.in.flight.requests.per.connection": 5, // Required for idempotence
	}

	p, err := kafka.NewProducer(producerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	producer := &Producer{
		producer: p,
		config:   config,
		logger:   logger,
	}

	go producer.handleDeliveryReports()

	logger.Info("Kafka producer initialized",
		"brokers", config.Brokers,
		"topic", config.NotificationsTopic)

	return producer, nil
}

// PublishNotification publishes a notification event to the configured topic
func (p *Producer) PublishNotification(event NotificationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	topic := p.config.NotificationsTopic
	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Value:          data,
	}

	if err := p.producer.Produce(msg, nil); err != nil {
		return fmt.Errorf("failed to produce message: %w", err)
	}

	return nil
}

// handleDeliveryReports drains the producer event channel and logs failures
func (p *Producer) handleDeliveryReports() {
	for e := range p.producer.Events() {
		switch ev := e.(type) {
		case *kafka.Message:
			if ev.TopicPartition.Error != nil {
				p.logger.Error("Notification delivery failed",
					"topic", *ev.TopicPartition.Topic,
					"error", ev.TopicPartition.Error)
			}
		case kafka.Error:
			p.logger.Error("Kafka error", "code", ev.Code(), "error", ev.Error())
		}
	}
}

// Close flushes pending messages and shuts the producer down
func (p *Producer) Close() {
	p.producer.Flush(5000)
	p.producer.Close()
}
