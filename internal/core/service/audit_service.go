package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/coffeelounge/shiftboard/internal/core/domain"
	"github.com/coffeelounge/shiftboard/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists one document per
// recorded mutation.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Record(ctx context.Context, in ports.AuditEventInput) error {
	event := &domain.AuditEvent{
		ID:       uuid.NewString(),
		Entity:   in.Entity,
		EntityID: in.EntityID,
		Action:   in.Action,
		Actor:    in.Actor,
		At:       time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, event); err != nil {
		return fmt.Errorf("record audit event: %w", err)
	}

	s.log.Debug().
		Str("entity", in.Entity).
		Int64("entity_id", in.EntityID).
		Str("action", in.Action).
		Msg("audit event recorded")

	return nil
}
