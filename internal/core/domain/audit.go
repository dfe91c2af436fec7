package domain

import "time"

// AuditEvent records a single mutation applied through the API. Events are
// written asynchronously by the audit pipeline and never read back by the
// application itself.
type AuditEvent struct {
	ID       string    `bson:"_id"`
	Entity   string    `bson:"entity"`
	EntityID int64     `bson:"entity_id"`
	Action   string    `bson:"action"`
	Actor    string    `bson:"actor,omitempty"`
	At       time.Time `bson:"at"`
}
