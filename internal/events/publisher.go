package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

const eventSource = "classroom-service"

// EventPublisher defines the interface for publishing classroom events.
type EventPublisher interface {
	Publish(ctx context.Context, event *ClassroomEvent) error
	Close() error
}

// NewEvent builds the envelope for a payload.
func NewEvent(eventType EventType, data interface{}) *ClassroomEvent {
	return &ClassroomEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Source:    eventSource,
		Version:   "1.0",
		Data:      data,
	}
}

// WatermillPublisher publishes events through any watermill publisher
// (Kafka in production, GoChannel in-process).
type WatermillPublisher struct {
	publisher message.Publisher
	logger    *slog.Logger
	topicName string
}

// PublisherConfig holds configuration for the Kafka event publisher.
type PublisherConfig struct {
	KafkaBrokers []string
	TopicName    string
	Logger       *slog.Logger
}

// NewKafkaPublisher creates a Kafka-backed event publisher using watermill.
func NewKafkaPublisher(config PublisherConfig) (*WatermillPublisher, error) {
	logger := watermill.NewSlogLogger(config.Logger)

	publisher, err := kafka.NewPublisher(kafka.PublisherConfig{
		Brokers:   config.KafkaBrokers,
		Marshaler: kafka.DefaultMarshaler{},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka publisher: %w", err)
	}

	return &WatermillPublisher{
		publisher: publisher,
		logger:    config.Logger,
		topicName: config.TopicName,
	}, nil
}

// NewGoChannelPublisher creates an in-process publisher for single-node runs.
func NewGoChannelPublisher(topic string, logger *slog.Logger) *WatermillPublisher {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewSlogLogger(logger))
	return &WatermillPublisher{
		publisher: pubSub,
		logger:    logger,
		topicName: topic,
	}
}

func (p *WatermillPublisher) Publish(ctx context.Context, event *ClassroomEvent) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal classroom event: %w", err)
	}

	msg := message.NewMessage(event.ID, eventBytes)
	msg.Metadata.Set("event_type", string(event.Type))
	msg.Metadata.Set("source", event.Source)
	msg.Metadata.Set("version", event.Version)
	msg.Metadata.Set("timestamp", event.Timestamp.Format(time.RFC3339))

	if err := p.publisher.Publish(p.topicName, msg); err != nil {
		p.logger.Error("Failed to publish classroom event",
			"event_id", event.ID,
			"event_type", event.Type,
			"error", err)
		return fmt.Errorf("failed to publish classroom event: %w", err)
	}

	p.logger.Info("Published classroom event",
		"event_id", event.ID,
		"event_type", event.Type,
		"topic", p.topicName)

	return nil
}

func (p *WatermillPublisher) Close() error {
	return p.publisher.Close()
}

// MockEventPublisher stores events in memory for tests.
type MockEventPublisher struct {
	Events []ClassroomEvent
	Logger *slog.Logger
}

func NewMockEventPublisher(logger *slog.Logger) *MockEventPublisher {
	return &MockEventPublisher{
		Events: make([]ClassroomEvent, 0),
		Logger: logger,
	}
}

func (m *MockEventPublisher) Publish(ctx context.Context, event *ClassroomEvent) error {
	m.Events = append(m.Events, *event)
	m.Logger.Info("Mock: Published classroom event",
		"event_id", event.ID,
		"event_type", event.Type)
	return nil
}

func (m *MockEventPublisher) Close() error {
	return nil
}

// PublishedEvents returns all captured events.
func (m *MockEventPublisher) PublishedEvents() []ClassroomEvent {
	return m.Events
}

// ClearEvents resets the captured events.
func (m *MockEventPublisher) ClearEvents() {
	m.Events = make([]ClassroomEvent, 0)
}
