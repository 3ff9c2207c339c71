package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/agalyaece/e-commerce-website/internal/config"
	"github.com/agalyaece/e-commerce-website/internal/logging"
	"github.com/agalyaece/e-commerce-website/internal/models"
)

// EventType represents the type of order event.
type EventType string

const (
	EventTypeOrderCreated   EventType = "order.created"
	EventTypeCheckoutFailed EventType = "order.checkout_failed"
)

// OrderEvent is the envelope published to the orders topic.
type OrderEvent struct {
	ID         string          `json:"id"`
	Type       EventType       `json:"type"`
	Invoice    string          `json:"invoice"`
	CustomerID string          `json:"customer_id"`
	Data       json.RawMessage `json:"data"`
	Timestamp  time.Time       `json:"timestamp"`
}

// Publisher emits order lifecycle events.
type Publisher interface {
	PublishOrderCreated(ctx context.Context, order *models.OrderRecord) error
	PublishCheckoutFailed(ctx context.Context, customerID, reason string) error
	Close() error
}

// KafkaPublisher publishes order events to Kafka.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger *logging.Logger
}

// NewKafkaPublisher creates a Kafka-based event publisher.
func NewKafkaPublisher(cfg config.KafkaConfig) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.OrdersTopic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
	}

	return &KafkaPublisher{
		writer: writer,
		logger: logging.NewLogger("event-publisher"),
	}
}

// PublishOrderCreated publishes an order created event.
func (p *KafkaPublisher) PublishOrderCreated(ctx context.Context, order *models.OrderRecord) error {
	data, err := json.Marshal(order)
	if err != nil {
		return err
	}

	event := newOrderEvent(EventTypeOrderCreated, order.Invoice, order.CustomerID, data)
	return p.publish(ctx, event)
}

// PublishCheckoutFailed publishes a failed checkout event.
func (p *KafkaPublisher) PublishCheckoutFailed(ctx context.Context, customerID, reason string) error {
	data, err := json.Marshal(map[string]string{"reason": reason})
	if err != nil {
		return err
	}

	event := newOrderEvent(EventTypeCheckoutFailed, "", customerID, data)
	return p.publish(ctx, event)
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func (p *KafkaPublisher) publish(ctx context.Context, event *OrderEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.CustomerID),
		Value: value,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to publish event", logging.Fields{
			"event_id":   event.ID,
			"event_type": event.Type,
			"error":      err.Error(),
		})
		return err
	}

	p.logger.Debug("Event published", logging.Fields{
		"event_id":   event.ID,
		"event_type": event.Type,
		"invoice":    event.Invoice,
	})

	return nil
}

func newOrderEvent(eventType EventType, invoice, customerID string, data json.RawMessage) *OrderEvent {
	return &OrderEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		Invoice:    invoice,
		CustomerID: customerID,
		Data:       data,
		Timestamp:  time.Now().UTC(),
	}
}
