package test

import (
	"sync"

	"github.com/craftpine/storefront/internal/domain/model"
)

// PublishedEvent stores a single captured publication.
type PublishedEvent struct {
	Type  string
	Order model.Order
}

// PublisherRecorder captures order events emitted by the application facade.
type PublisherRecorder struct {
	mu     sync.Mutex
	Events []PublishedEvent
}

// PublishOrder records the event instead of sending it anywhere.
func (p *PublisherRecorder) PublishOrder(eventType string, order model.Order) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, PublishedEvent{Type: eventType, Order: order})
}

// Recorded returns a copy of captured events safe for inspection.
func (p *PublisherRecorder) Recorded() []PublishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]PublishedEvent(nil), p.Events...)
}
