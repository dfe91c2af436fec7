package ports

import (
	"context"
	"strconv"

	"github.com/coffeelounge/shiftboard/internal/core/domain"
)

// AuditEventInput is the DTO handed from the transport layer to the audit
// pipeline.
type AuditEventInput struct {
	Entity   string // "employee", "shift", "timeoff"
	EntityID int64
	Action   string // "created", "approved", "rejected"
	Actor    string // operator username when authenticated, else empty
}

// ShardKey routes the event to a worker; events for one record share a key
// and are therefore processed in order.
func (in AuditEventInput) ShardKey() string {
	return in.Entity + ":" + strconv.FormatInt(in.EntityID, 10)
}

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditService processes incoming audit events.
type AuditService interface {
	Record(ctx context.Context, input AuditEventInput) error
}
