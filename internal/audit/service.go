// Package audit projects product change events into a Redis trail, so
// "who changed what" survives independently of the products table.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkax "github.com/ariefcatur/go-product-table.git/internal/kafka"
	"github.com/ariefcatur/go-product-table.git/internal/products"
	"github.com/ariefcatur/go-product-table.git/internal/redisx"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
)

type Service struct {
	Redis       *redis.Client
	ServiceName string
}

// Entry is one line of the trail.
type Entry struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	ProductID  string    `json:"product_id"`
	Name       string    `json:"name,omitempty"`
	Producer   string    `json:"producer"`
	OccurredAt time.Time `json:"occurred_at"`
}

// HandleProductChanged is installed as the consumer handler. Returning nil
// commits the offset.
func (s *Service) HandleProductChanged(ctx context.Context, m kafkago.Message) error {
	var env products.Envelope
	if err := kafkax.UnmarshalEnvelope(m.Value, &env); err != nil {
		return err
	}
	switch env.EventType {
	case products.EventProductCreated, products.EventProductUpdated, products.EventProductDeleted:
	default:
		return nil // ignore
	}

	// dedup by event_id; redelivery must not double-count
	dkey := fmt.Sprintf(redisx.KeyDedup, "audit", env.EventID)
	set, err := s.Redis.SetNX(ctx, dkey, "1", redisx.TTLDedup).Result()
	if err != nil {
		return err
	}
	if !set {
		return nil
	}

	entry := Entry{
		EventID:    env.EventID,
		EventType:  env.EventType,
		ProductID:  env.CorrelationID,
		Producer:   env.Producer,
		OccurredAt: env.OccurredAt,
	}
	switch env.EventType {
	case products.EventProductCreated:
		if p, err := kafkax.UnwrapPayload[products.ProductCreatedPayload](env.Payload); err == nil {
			entry.Name = p.Product.Name
		}
	case products.EventProductUpdated:
		if p, err := kafkax.UnwrapPayload[products.ProductUpdatedPayload](env.Payload); err == nil {
			entry.Name = p.Product.Name
		}
	}
	b, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	pipe := s.Redis.TxPipeline()
	pipe.LPush(ctx, redisx.KeyAuditTrail, b)
	pipe.LTrim(ctx, redisx.KeyAuditTrail, 0, redisx.AuditTrailMax-1)
	pipe.Incr(ctx, fmt.Sprintf(redisx.KeyAuditCount, env.EventType))
	_, err = pipe.Exec(ctx)
	return err
}

// Recent returns the newest n trail entries.
func (s *Service) Recent(ctx context.Context, n int64) ([]Entry, error) {
	raw, err := s.Redis.LRange(ctx, redisx.KeyAuditTrail, 0, n-1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(raw))
	for _, r := range raw {
		var e Entry
		if err := json.Unmarshal([]byte(r), &e); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
