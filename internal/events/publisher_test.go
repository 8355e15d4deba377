package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/craftpine/storefront/internal/domain/model"
)

type writerStub struct {
	mu       sync.Mutex
	messages []kafka.Message
	closed   bool
}

func (w *writerStub) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *writerStub) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func testOrder() model.Order {
	return model.Order{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		ProductID: uuid.New(),
		AddressID: uuid.New(),
		Quantity:  2,
		Total:     decimal.RequireFromString("39.98"),
		Status:    model.OrderStatusPending,
	}
}

func TestNewOrderEnvelope(t *testing.T) {
	order := testOrder()
	envelope, err := NewOrderEnvelope(TypeOrderCreated, order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if envelope.EventID == "" || envelope.EventType != TypeOrderCreated {
		t.Fatalf("unexpected envelope %+v", envelope)
	}
	if envelope.Producer != producerName {
		t.Fatalf("unexpected producer %q", envelope.Producer)
	}

	var payload OrderPayload
	if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload.OrderID != order.ID.String() || payload.Total != "39.98" || payload.Status != "pending" {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestKafkaPublisherDeliversAndDrains(t *testing.T) {
	writer := &writerStub{}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	publisher := newKafkaPublisher(writer, 8, logger)

	publisher.Start(context.Background())
	publisher.PublishOrder(TypeOrderCreated, testOrder())
	publisher.PublishOrder(TypeOrderCancelled, testOrder())
	publisher.Stop()

	writer.mu.Lock()
	defer writer.mu.Unlock()
	if len(writer.messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(writer.messages))
	}
	if !writer.closed {
		t.Fatal("expected writer to be closed")
	}

	var envelope Envelope
	if err := json.Unmarshal(writer.messages[0].Value, &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if envelope.EventType != TypeOrderCreated {
		t.Fatalf("unexpected event type %q", envelope.EventType)
	}
}

func TestKafkaPublisherDropsWhenBufferFull(t *testing.T) {
	writer := &writerStub{}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	publisher := newKafkaPublisher(writer, 1, logger)

	// Not started: the single buffer slot fills and the next publish drops.
	publisher.PublishOrder(TypeOrderCreated, testOrder())
	publisher.PublishOrder(TypeOrderCreated, testOrder())

	publisher.Start(context.Background())
	publisher.Stop()

	writer.mu.Lock()
	defer writer.mu.Unlock()
	if len(writer.messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(writer.messages))
	}
}

func TestNopPublisher(t *testing.T) {
	NopPublisher{}.PublishOrder(TypeOrderDeleted, testOrder())
}
