package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/skulk0156/EMS-backend/internal/model"
)

type fakeActivityStore struct {
	mu   sync.Mutex
	rows []model.Activity
	seen map[int64]bool
}

func newFakeActivityStore() *fakeActivityStore {
	return &fakeActivityStore{seen: map[int64]bool{}}
}

func (f *fakeActivityStore) Insert(_ context.Context, activity *model.Activity) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen[activity.MessageID] {
		return gorm.ErrDuplicatedKey
	}
	f.seen[activity.MessageID] = true
	f.rows = append(f.rows, *activity)
	return nil
}

func (f *fakeActivityStore) RecentByEmployee(_ context.Context, employeeID string, limit int) ([]model.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []model.Activity
	for i := len(f.rows) - 1; i >= 0 && len(out) < limit; i-- {
		if f.rows[i].EmployeeID == employeeID {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

func TestRecordActivity(t *testing.T) {
	store := newFakeActivityStore()
	svc := NewActivityService(store)

	event := model.ActivityEventMessage{
		MessageID:  1001,
		EmployeeID: "EMP001",
		Action:     "punch_in",
		Entity:     "attendance",
		EntityID:   7,
		Detail:     "punched in at 09:00:00",
		OccurredAt: "2026-03-02T09:00:00Z",
	}

	if err := svc.Record(context.Background(), event); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	if len(store.rows) != 1 {
		t.Fatalf("stored %d rows, want 1", len(store.rows))
	}
	row := store.rows[0]
	if !row.OccurredAt.Equal(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("occurredAt = %v", row.OccurredAt)
	}
}

func TestRecordDuplicateMessageIsIdempotent(t *testing.T) {
	store := newFakeActivityStore()
	svc := NewActivityService(store)
	ctx := context.Background()

	event := model.ActivityEventMessage{
		MessageID:  1001,
		EmployeeID: "EMP001",
		Action:     "punch_in",
		Entity:     "attendance",
		OccurredAt: "2026-03-02T09:00:00Z",
	}

	if err := svc.Record(ctx, event); err != nil {
		t.Fatalf("first Record failed: %v", err)
	}
	// 重复投递按成功处理
	if err := svc.Record(ctx, event); err != nil {
		t.Fatalf("duplicate Record must not error: %v", err)
	}
	if len(store.rows) != 1 {
		t.Errorf("stored %d rows, want 1", len(store.rows))
	}
}

func TestRecordFallsBackOnBadTimestamp(t *testing.T) {
	store := newFakeActivityStore()
	svc := NewActivityService(store)

	event := model.ActivityEventMessage{
		MessageID:  1002,
		EmployeeID: "EMP001",
		Action:     "punch_out",
		Entity:     "attendance",
		OccurredAt: "yesterday-ish",
	}

	before := time.Now().UTC()
	if err := svc.Record(context.Background(), event); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	after := time.Now().UTC()

	got := store.rows[0].OccurredAt
	if got.Before(before) || got.After(after) {
		t.Errorf("occurredAt = %v, want a current timestamp fallback", got)
	}
}
