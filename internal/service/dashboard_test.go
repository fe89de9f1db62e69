package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/skulk0156/EMS-backend/internal/model"
	bizerrors "github.com/skulk0156/EMS-backend/pkg/errors"
)

type fakeTaskCounter struct {
	total     int64
	completed int64
	calls     int
}

func (f *fakeTaskCounter) CountByAssignee(_ context.Context, _ int64) (int64, int64, error) {
	f.calls++
	return f.total, f.completed, nil
}

type fakeActivityReader struct {
	activities []model.Activity
}

func (f *fakeActivityReader) RecentByEmployee(_ context.Context, _ string, limit int) ([]model.Activity, error) {
	if len(f.activities) > limit {
		return f.activities[:limit], nil
	}
	return f.activities, nil
}

type memDashboardCache struct {
	entries map[string]*model.DashboardStats
	gets    int
	sets    int
}

func newMemDashboardCache() *memDashboardCache {
	return &memDashboardCache{entries: map[string]*model.DashboardStats{}}
}

func (c *memDashboardCache) Get(_ context.Context, employeeID string) (*model.DashboardStats, bool, error) {
	c.gets++
	if stats, ok := c.entries[employeeID]; ok {
		copied := *stats
		return &copied, true, nil
	}
	return nil, false, nil
}

func (c *memDashboardCache) Set(_ context.Context, employeeID string, stats *model.DashboardStats, _ time.Duration) error {
	c.sets++
	copied := *stats
	c.entries[employeeID] = &copied
	return nil
}

func newDashboardFixture(t *testing.T, tasks *fakeTaskCounter, dashCache DashboardCache) (*DashboardService, *fakeUserStore) {
	t.Helper()

	users := newFakeUserStore()
	userSvc := NewUserService(users)
	if _, err := userSvc.Register(context.Background(), registerReq("bob@example.com", "EMP010"), ""); err != nil {
		t.Fatalf("seed user failed: %v", err)
	}

	activities := &fakeActivityReader{activities: []model.Activity{
		{EmployeeID: "EMP010", Action: "punch_in", Entity: "attendance"},
	}}

	return NewDashboardService(tasks, users, activities, dashCache, time.Minute), users
}

func TestDashboardStatsComputation(t *testing.T) {
	tasks := &fakeTaskCounter{total: 8, completed: 6}
	svc, _ := newDashboardFixture(t, tasks, nil)

	stats, err := svc.Stats(context.Background(), "EMP010", model.RoleEmployee)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	if stats.TotalTasks != 8 || stats.CompletedTasks != 6 || stats.PendingTasks != 2 {
		t.Errorf("counts = %d/%d/%d, want 8/6/2", stats.TotalTasks, stats.CompletedTasks, stats.PendingTasks)
	}
	if stats.Performance != 75 {
		t.Errorf("performance = %v, want 75", stats.Performance)
	}
	if stats.TotalUsers != nil {
		t.Error("totalUsers must be hidden from non-admin requesters")
	}
	if len(stats.Recent) != 1 {
		t.Errorf("recent = %d entries, want 1", len(stats.Recent))
	}
}

func TestDashboardStatsZeroTasks(t *testing.T) {
	svc, _ := newDashboardFixture(t, &fakeTaskCounter{}, nil)

	stats, err := svc.Stats(context.Background(), "EMP010", model.RoleEmployee)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Performance != 0 {
		t.Errorf("performance = %v, want 0 when no tasks", stats.Performance)
	}
}

func TestDashboardStatsUnknownEmployee(t *testing.T) {
	svc, _ := newDashboardFixture(t, &fakeTaskCounter{}, nil)

	_, err := svc.Stats(context.Background(), "EMP999", model.RoleEmployee)
	if !errors.Is(err, bizerrors.UserNotFound) {
		t.Fatalf("error = %v, want UserNotFound", err)
	}
}

func TestDashboardStatsCacheHit(t *testing.T) {
	tasks := &fakeTaskCounter{total: 4, completed: 1}
	dashCache := newMemDashboardCache()
	svc, _ := newDashboardFixture(t, tasks, dashCache)
	ctx := context.Background()

	if _, err := svc.Stats(ctx, "EMP010", model.RoleEmployee); err != nil {
		t.Fatalf("first Stats failed: %v", err)
	}
	if dashCache.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", dashCache.sets)
	}

	stats, err := svc.Stats(ctx, "EMP010", model.RoleEmployee)
	if err != nil {
		t.Fatalf("second Stats failed: %v", err)
	}
	if tasks.calls != 1 {
		t.Errorf("task store queried %d times, second call must hit the cache", tasks.calls)
	}
	if stats.TotalTasks != 4 {
		t.Errorf("cached totalTasks = %d, want 4", stats.TotalTasks)
	}
}

func TestDashboardAdminSeesTotalUsers(t *testing.T) {
	dashCache := newMemDashboardCache()
	svc, users := newDashboardFixture(t, &fakeTaskCounter{}, dashCache)
	ctx := context.Background()

	stats, err := svc.Stats(ctx, "EMP010", model.RoleAdmin)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	count, _ := users.Count(ctx)
	if stats.TotalUsers == nil || *stats.TotalUsers != count {
		t.Errorf("totalUsers = %v, want %d", stats.TotalUsers, count)
	}

	// 管理员字段不能写进共享缓存
	cached := dashCache.entries["EMP010"]
	if cached == nil {
		t.Fatal("stats were not cached")
	}
	if cached.TotalUsers != nil {
		t.Error("cached entry must not carry the admin-only totalUsers field")
	}

	// 缓存命中后普通角色也不能看到
	stats, err = svc.Stats(ctx, "EMP010", model.RoleEmployee)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalUsers != nil {
		t.Error("non-admin requester got totalUsers from cache")
	}
}
