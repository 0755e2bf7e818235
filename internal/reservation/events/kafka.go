package events

import (
	"context"
	"fmt"
	"railbook/pkg/kafka"
	kafka_config "railbook/pkg/kafka/config"
)

type kafkaPublisher struct {
	producer *kafka.Producer
	source   string
}

// NewKafkaPublisher wires a publisher onto the reservation event topic.
// Events are keyed by train ID, so all events for one train land on the same
// partition in order.
func NewKafkaPublisher(cfg *kafka_config.Config, topic, source string) (Publisher, error) {
	producer, err := kafka.NewProducer(cfg, topic)
	if err != nil {
		return nil, fmt.Errorf("failed to create event producer: %w", err)
	}

	return &kafkaPublisher{
		producer: producer,
		source:   source,
	}, nil
}

func (p *kafkaPublisher) PublishBookingCreated(ctx context.Context, event BookingCreated) error {
	msg := kafka.NewMessage().
		WithKey(event.TrainID).
		WithValue(event).
		WithEventType(TypeBookingCreated).
		WithSchemaVersion(SchemaVersion).
		WithSource(p.source).
		Build()

	return p.producer.Publish(ctx, msg)
}

func (p *kafkaPublisher) PublishBookingCancelled(ctx context.Context, event BookingCancelled) error {
	msg := kafka.NewMessage().
		WithKey(event.TrainID).
		WithValue(event).
		WithEventType(TypeBookingCancelled).
		WithSchemaVersion(SchemaVersion).
		WithSource(p.source).
		Build()

	return p.producer.Publish(ctx, msg)
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}
