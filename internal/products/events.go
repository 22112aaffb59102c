package products

import (
	"encoding/json"
	"time"
)

const (
	EventProductCreated = "ProductCreated"
	EventProductUpdated = "ProductUpdated"
	EventProductDeleted = "ProductDeleted"
)

type Envelope struct {
	EventID       string          `json:"event_id"`      // uuid
	EventType     string          `json:"event_type"`    // one of the consts above
	EventVersion  int             `json:"event_version"` // 1
	OccurredAt    time.Time       `json:"occurred_at"`   // RFC3339
	Producer      string          `json:"producer"`      // e.g., "product-api"
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // product id
	Payload       json.RawMessage `json:"payload"`
}

type ProductCreatedPayload struct {
	ProductID int64   `json:"product_id"`
	Product   Product `json:"product"`
}

type ProductUpdatedPayload struct {
	ProductID int64   `json:"product_id"`
	Product   Product `json:"product"`
}

type ProductDeletedPayload struct {
	ProductID int64 `json:"product_id"`
}
