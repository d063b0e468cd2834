package kafka

import (
	"fmt"
	"os"
)

// Config holds Kafka configuration
type Config struct {
	Brokers            string
	NotificationsTopic string
	EnableIdempotence  bool
	Acks               string
}

// LoadConfig loads Kafka configuration from environment variables
func LoadConfig() (*Config, error) {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		return nil, fmt.Errorf("KAFKA_BROKERS environment variable is required")
	}

	topic := os.Getenv("KAFKA_TOPIC_NOTIFICATIONS")
	if topic == "" {
		topic = "notification-events"
	}

	return &Config{
		Brokers:            brokers,
		NotificationsTopic: topic,
		EnableIdempotence:  true,
		Acks:               "all",
	}, nil
}
