package redisx

import "time"

const (
	// Cached GET /products body, invalidated on every mutation.
	KeyProductList = "products:list"

	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"

	// Audit trail of product changes, newest first.
	KeyAuditTrail = "audit:products"

	// Per-event-type counter: audit:products:count:{event_type}
	KeyAuditCount = "audit:products:count:%s"
)

var (
	TTLProductList = 5 * time.Minute
	TTLDedup       = 48 * time.Hour
)

// AuditTrailMax bounds the trail; older entries are trimmed away.
const AuditTrailMax = 1000
