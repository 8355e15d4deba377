package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/craftpine/storefront/internal/domain/model"
)

const (
	TypeOrderCreated   = "order.created"
	TypeOrderCompleted = "order.completed"
	TypeOrderCancelled = "order.cancelled"
	TypeOrderDeleted   = "order.deleted"
)

const producerName = "storefront-api"

// Envelope wraps every published event.
type Envelope struct {
	EventID    string          `json:"event_id"`
	EventType  string          `json:"event_type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Producer   string          `json:"producer"`
	Payload    json.RawMessage `json:"payload"`
}

// OrderPayload is the payload for all order lifecycle events.
type OrderPayload struct {
	OrderID   string `json:"order_id"`
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
	AddressID string `json:"address_id"`
	Quantity  int    `json:"quantity"`
	Total     string `json:"total"`
	Status    string `json:"status"`
}

// NewOrderEnvelope builds a ready-to-publish envelope for the order.
func NewOrderEnvelope(eventType string, order model.Order) (Envelope, error) {
	payload, err := json.Marshal(OrderPayload{
		OrderID:   order.ID.String(),
		UserID:    order.UserID.String(),
		ProductID: order.ProductID.String(),
		AddressID: order.AddressID.String(),
		Quantity:  order.Quantity,
		Total:     order.Total.StringFixed(2),
		Status:    string(order.Status),
	})
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		OccurredAt: time.Now().UTC(),
		Producer:   producerName,
		Payload:    payload,
	}, nil
}
