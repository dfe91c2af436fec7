package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/coffeelounge/shiftboard/internal/core/ports"
)

type recordingAuditService struct {
	mu     sync.Mutex
	events []ports.AuditEventInput
	done   chan struct{}
	want   int
}

func (s *recordingAuditService) Record(_ context.Context, event ports.AuditEventInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) == s.want {
		close(s.done)
	}
	return nil
}

func TestDispatcher_DeliversEveryEvent(t *testing.T) {
	svc := &recordingAuditService{done: make(chan struct{}), want: 20}
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := int64(1); i <= 20; i++ {
		d.Enqueue(ports.AuditEventInput{Entity: "shift", EntityID: i, Action: "created"})
	}

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("only %d of 20 events delivered", len(svc.events))
	}
}

func TestDispatcher_PreservesPerRecordOrder(t *testing.T) {
	const perRecord = 5
	svc := &recordingAuditService{done: make(chan struct{}), want: 3 * perRecord}
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	actions := []string{"created", "approved", "rejected", "approved", "rejected"}
	for i := 0; i < perRecord; i++ {
		for id := int64(1); id <= 3; id++ {
			d.Enqueue(ports.AuditEventInput{Entity: "timeoff", EntityID: id, Action: actions[i]})
		}
	}

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for events")
	}

	perKey := map[string][]string{}
	svc.mu.Lock()
	for _, e := range svc.events {
		perKey[e.ShardKey()] = append(perKey[e.ShardKey()], e.Action)
	}
	svc.mu.Unlock()

	for key, got := range perKey {
		if len(got) != perRecord {
			t.Fatalf("%s: got %d events, want %d", key, len(got), perRecord)
		}
		for i, action := range actions {
			if got[i] != action {
				t.Fatalf("%s: event %d = %s, want %s", key, i, got[i], action)
			}
		}
	}
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(8, &recordingAuditService{done: make(chan struct{}), want: 1}, zerolog.Nop())

	key := ports.AuditEventInput{Entity: "employee", EntityID: 42}.ShardKey()
	first := d.shardIndex(key)
	for i := 0; i < 100; i++ {
		if got := d.shardIndex(key); got != first {
			t.Fatalf("shard index changed between calls: %d != %d", got, first)
		}
	}
}
