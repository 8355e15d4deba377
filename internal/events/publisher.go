package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/segmentio/kafka-go"

	"github.com/craftpine/storefront/internal/domain/model"
)

// Publisher emits order lifecycle events. Publishing is fire-and-forget and
// never participates in the originating transaction.
type Publisher interface {
	PublishOrder(eventType string, order model.Order)
}

// NopPublisher drops every event, used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrder(string, model.Order) {}

// messageWriter is the subset of kafka.Writer the publisher relies on.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher buffers events and writes them to Kafka from a background
// goroutine, draining the buffer on shutdown.
type KafkaPublisher struct {
	writer messageWriter
	logger *slog.Logger

	inbox chan kafka.Message
	once  sync.Once
	done  chan struct{}
}

// NewKafkaPublisher constructs a publisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string, buffer int, logger *slog.Logger) *KafkaPublisher {
	if buffer <= 0 {
		buffer = 64
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}
	return newKafkaPublisher(writer, buffer, logger)
}

func newKafkaPublisher(writer messageWriter, buffer int, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: writer,
		logger: logger,
		inbox:  make(chan kafka.Message, buffer),
		done:   make(chan struct{}),
	}
}

// Start launches the background send loop.
func (p *KafkaPublisher) Start(ctx context.Context) {
	go func() {
		defer close(p.done)
		for {
			select {
			case <-ctx.Done():
				p.drain()
				return
			case msg, ok := <-p.inbox:
				if !ok {
					p.drainClosed()
					return
				}
				p.write(msg)
			}
		}
	}()
}

// Stop flushes buffered events and closes the writer.
func (p *KafkaPublisher) Stop() {
	p.once.Do(func() { close(p.inbox) })
	<-p.done
}

// PublishOrder enqueues an event, dropping it when the buffer is full so a
// slow broker never blocks a request.
func (p *KafkaPublisher) PublishOrder(eventType string, order model.Order) {
	envelope, err := NewOrderEnvelope(eventType, order)
	if err != nil {
		p.logger.Error("build order event", slog.String("error", err.Error()))
		return
	}
	value, err := json.Marshal(envelope)
	if err != nil {
		p.logger.Error("marshal order event", slog.String("error", err.Error()))
		return
	}

	msg := kafka.Message{
		Key:   []byte(order.ID.String()),
		Value: value,
		Time:  envelope.OccurredAt,
	}
	select {
	case p.inbox <- msg:
	default:
		p.logger.Warn("event buffer full, dropping event",
			slog.String("type", eventType),
			slog.String("order_id", order.ID.String()),
		)
	}
}

func (p *KafkaPublisher) write(msg kafka.Message) {
	if err := p.writer.WriteMessages(context.Background(), msg); err != nil {
		p.logger.Error("publish order event", slog.String("error", err.Error()))
	}
}

func (p *KafkaPublisher) drain() {
	p.once.Do(func() { close(p.inbox) })
	p.drainClosed()
}

func (p *KafkaPublisher) drainClosed() {
	for msg := range p.inbox {
		p.write(msg)
	}
	if err := p.writer.Close(); err != nil {
		p.logger.Error("close event writer", slog.String("error", err.Error()))
	}
}
