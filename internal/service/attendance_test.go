package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/skulk0156/EMS-backend/internal/model"
	bizerrors "github.com/skulk0156/EMS-backend/pkg/errors"
	"github.com/skulk0156/EMS-backend/pkg/logger"
)

func init() {
	logger.Logger = zap.NewNop()
}

// fakeAttendanceStore 用互斥锁 + 复合键 map 模拟数据库唯一索引
type fakeAttendanceStore struct {
	mu      sync.Mutex
	rows    map[string]*model.Attendance
	nextID  int64
	created []string // 插入顺序，模拟 created_at DESC 排序
}

func newFakeAttendanceStore() *fakeAttendanceStore {
	return &fakeAttendanceStore{rows: map[string]*model.Attendance{}}
}

func attKey(employeeID, date string) string {
	return employeeID + "|" + date
}

func (f *fakeAttendanceStore) Create(_ context.Context, att *model.Attendance) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := attKey(att.EmployeeID, att.Date)
	if _, exists := f.rows[key]; exists {
		return gorm.ErrDuplicatedKey
	}

	f.nextID++
	att.ID = f.nextID
	copied := *att
	f.rows[key] = &copied
	f.created = append(f.created, key)
	return nil
}

func (f *fakeAttendanceStore) GetByEmployeeAndDate(_ context.Context, employeeID, date string) (*model.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	att, ok := f.rows[attKey(employeeID, date)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *att
	return &copied, nil
}

func (f *fakeAttendanceStore) UpdatePunchOut(_ context.Context, employeeID, date, punchOut, workingHours string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	att, ok := f.rows[attKey(employeeID, date)]
	if !ok {
		return 0, nil
	}
	att.PunchOut = &punchOut
	att.WorkingHours = &workingHours
	return 1, nil
}

func (f *fakeAttendanceStore) List(_ context.Context, q model.ListAttendanceQuery) ([]model.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []model.Attendance
	for i := len(f.created) - 1; i >= 0; i-- {
		att := f.rows[f.created[i]]
		if q.EmployeeID != "" && att.EmployeeID != q.EmployeeID {
			continue
		}
		if q.StartDate != "" && att.Date < q.StartDate {
			continue
		}
		if q.EndDate != "" && att.Date > q.EndDate {
			continue
		}
		out = append(out, *att)
	}
	return out, nil
}

func (f *fakeAttendanceStore) CountByDateAndStatus(_ context.Context, date string, status model.AttendanceStatus) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var n int64
	for _, att := range f.rows {
		if att.Date == date && att.Status == status {
			n++
		}
	}
	return n, nil
}

func punchInReq(employeeID, date string) model.PunchInRequest {
	return model.PunchInRequest{
		EmployeeID: employeeID,
		Name:       "Alice Zhang",
		Date:       date,
		PunchIn:    "09:00:00 AM",
	}
}

func TestPunchInStoresClientFieldsVerbatim(t *testing.T) {
	store := newFakeAttendanceStore()
	svc := NewAttendanceService(store, nil)

	att, err := svc.PunchIn(context.Background(), model.PunchInRequest{
		EmployeeID: "E1",
		Name:       "Alice Zhang",
		Date:       "2024-01-10",
		PunchIn:    "09:00:00 AM",
	})
	if err != nil {
		t.Fatalf("PunchIn failed: %v", err)
	}

	// 日期与时刻都来自请求体，服务端不得用自己的时钟替换
	if att.Date != "2024-01-10" {
		t.Errorf("date = %q, want the client-supplied 2024-01-10", att.Date)
	}
	if att.PunchIn != "09:00:00 AM" {
		t.Errorf("punchIn = %q, want the client-supplied 09:00:00 AM", att.PunchIn)
	}
	if att.Status != model.AttendanceStatusPresent {
		t.Errorf("status = %q, want Present", att.Status)
	}
	if att.PunchOut != nil || att.WorkingHours != nil {
		t.Error("new record should have no punch-out or working hours")
	}
}

func TestPunchInTwiceSameKey(t *testing.T) {
	store := newFakeAttendanceStore()
	svc := NewAttendanceService(store, nil)
	ctx := context.Background()

	if _, err := svc.PunchIn(ctx, punchInReq("E1", "2024-01-10")); err != nil {
		t.Fatalf("first PunchIn failed: %v", err)
	}

	second := punchInReq("E1", "2024-01-10")
	second.PunchIn = "01:30:00 PM"
	_, err := svc.PunchIn(ctx, second)
	if !errors.Is(err, bizerrors.AttendanceAlreadyMarked) {
		t.Fatalf("second PunchIn error = %v, want AttendanceAlreadyMarked", err)
	}

	// 原记录不受影响
	att, err := store.GetByEmployeeAndDate(ctx, "E1", "2024-01-10")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if att.PunchIn != "09:00:00 AM" {
		t.Errorf("punchIn = %q, the first record must be preserved", att.PunchIn)
	}
}

func TestPunchInConcurrentSameKey(t *testing.T) {
	store := newFakeAttendanceStore()
	svc := NewAttendanceService(store, nil)

	const workers = 16
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.PunchIn(context.Background(), punchInReq("E1", "2024-01-10"))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, dup int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, bizerrors.AttendanceAlreadyMarked):
			dup++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	if ok != 1 {
		t.Errorf("successful punch-ins = %d, want exactly 1", ok)
	}
	if dup != workers-1 {
		t.Errorf("duplicate errors = %d, want %d", dup, workers-1)
	}
}

func TestPunchInKeyIndependence(t *testing.T) {
	store := newFakeAttendanceStore()
	svc := NewAttendanceService(store, nil)
	ctx := context.Background()

	if _, err := svc.PunchIn(ctx, punchInReq("E1", "2024-01-10")); err != nil {
		t.Fatalf("E1 / 2024-01-10: %v", err)
	}
	// 同一天另一员工不冲突
	if _, err := svc.PunchIn(ctx, punchInReq("E2", "2024-01-10")); err != nil {
		t.Fatalf("E2 same date: %v", err)
	}
	// 同一员工别的日期不冲突
	next := punchInReq("E1", "2024-01-11")
	next.PunchIn = "09:05:00 AM"
	if _, err := svc.PunchIn(ctx, next); err != nil {
		t.Fatalf("E1 / 2024-01-11: %v", err)
	}
}

func TestPunchOutWithoutPunchIn(t *testing.T) {
	store := newFakeAttendanceStore()
	svc := NewAttendanceService(store, nil)

	_, err := svc.PunchOut(context.Background(), model.PunchOutRequest{
		EmployeeID:   "E2",
		Date:         "2024-01-10",
		PunchOut:     "05:00:00 PM",
		WorkingHours: "8h",
	})
	if !errors.Is(err, bizerrors.AttendanceNotFound) {
		t.Fatalf("error = %v, want AttendanceNotFound", err)
	}

	// 下班打卡绝不创建记录
	if len(store.rows) != 0 {
		t.Errorf("store has %d rows, punch-out must never create records", len(store.rows))
	}
}

func TestPunchOutStoresClientFieldsVerbatim(t *testing.T) {
	store := newFakeAttendanceStore()
	svc := NewAttendanceService(store, nil)
	ctx := context.Background()

	if _, err := svc.PunchIn(ctx, punchInReq("E1", "2024-01-10")); err != nil {
		t.Fatalf("PunchIn failed: %v", err)
	}

	att, err := svc.PunchOut(ctx, model.PunchOutRequest{
		EmployeeID:   "E1",
		Date:         "2024-01-10",
		PunchOut:     "05:30:00 PM",
		WorkingHours: "8h 30m 0s",
	})
	if err != nil {
		t.Fatalf("PunchOut failed: %v", err)
	}

	if att.PunchOut == nil || *att.PunchOut != "05:30:00 PM" {
		t.Errorf("punchOut = %v, want the client-supplied 05:30:00 PM", att.PunchOut)
	}
	// workingHours 原样透传，不允许服务端重新计算
	if att.WorkingHours == nil || *att.WorkingHours != "8h 30m 0s" {
		t.Errorf("workingHours = %v, want the client-supplied 8h 30m 0s", att.WorkingHours)
	}
}

func TestPunchOutPreservesPunchInFields(t *testing.T) {
	store := newFakeAttendanceStore()
	svc := NewAttendanceService(store, nil)
	ctx := context.Background()

	if _, err := svc.PunchIn(ctx, punchInReq("E1", "2024-01-10")); err != nil {
		t.Fatalf("PunchIn failed: %v", err)
	}

	if _, err := svc.PunchOut(ctx, model.PunchOutRequest{
		EmployeeID:   "E1",
		Date:         "2024-01-10",
		PunchOut:     "05:30:00 PM",
		WorkingHours: "8h 30m 0s",
	}); err != nil {
		t.Fatalf("PunchOut failed: %v", err)
	}

	stored, err := store.GetByEmployeeAndDate(ctx, "E1", "2024-01-10")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if stored.EmployeeID != "E1" || stored.Name != "Alice Zhang" ||
		stored.Date != "2024-01-10" || stored.PunchIn != "09:00:00 AM" ||
		stored.Status != model.AttendanceStatusPresent {
		t.Errorf("punch-in fields changed: %+v", stored)
	}
}

func TestPunchOutOverwritesPrevious(t *testing.T) {
	store := newFakeAttendanceStore()
	svc := NewAttendanceService(store, nil)
	ctx := context.Background()

	if _, err := svc.PunchIn(ctx, punchInReq("E1", "2024-01-10")); err != nil {
		t.Fatalf("PunchIn failed: %v", err)
	}

	if _, err := svc.PunchOut(ctx, model.PunchOutRequest{
		EmployeeID:   "E1",
		Date:         "2024-01-10",
		PunchOut:     "12:00:00 PM",
		WorkingHours: "3h",
	}); err != nil {
		t.Fatalf("first PunchOut failed: %v", err)
	}

	att, err := svc.PunchOut(ctx, model.PunchOutRequest{
		EmployeeID:   "E1",
		Date:         "2024-01-10",
		PunchOut:     "06:00:00 PM",
		WorkingHours: "9h",
	})
	if err != nil {
		t.Fatalf("second PunchOut failed: %v", err)
	}

	if att.PunchOut == nil || *att.PunchOut != "06:00:00 PM" {
		t.Errorf("punchOut = %v, the later punch must win", att.PunchOut)
	}
	if att.WorkingHours == nil || *att.WorkingHours != "9h" {
		t.Errorf("workingHours = %v, want 9h", att.WorkingHours)
	}

	stored, _ := store.GetByEmployeeAndDate(ctx, "E1", "2024-01-10")
	if stored.PunchOut == nil || *stored.PunchOut != "06:00:00 PM" {
		t.Errorf("stored punchOut = %v, want 06:00:00 PM", stored.PunchOut)
	}
}

func TestPunchInSurvivesPublishFailure(t *testing.T) {
	store := newFakeAttendanceStore()
	svc := NewAttendanceService(store, func(string, model.ActivityEventMessage) error {
		return fmt.Errorf("broker unavailable")
	})

	if _, err := svc.PunchIn(context.Background(), punchInReq("E1", "2024-01-10")); err != nil {
		t.Fatalf("PunchIn must succeed even when event publish fails: %v", err)
	}
}

func TestListAllNewestFirst(t *testing.T) {
	store := newFakeAttendanceStore()
	svc := NewAttendanceService(store, nil)
	ctx := context.Background()

	if _, err := svc.PunchIn(ctx, punchInReq("E1", "2024-01-10")); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.PunchIn(ctx, punchInReq("E1", "2024-01-11")); err != nil {
		t.Fatal(err)
	}

	list, err := svc.ListAll(ctx, model.ListAttendanceQuery{EmployeeID: "E1"})
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d records, want 2", len(list))
	}
	if list[0].Date != "2024-01-11" || list[1].Date != "2024-01-10" {
		t.Errorf("order = [%s, %s], want newest first", list[0].Date, list[1].Date)
	}
}

func TestListAllDateRangeFilter(t *testing.T) {
	store := newFakeAttendanceStore()
	svc := NewAttendanceService(store, nil)
	ctx := context.Background()

	for _, date := range []string{"2024-01-09", "2024-01-10", "2024-01-11"} {
		if _, err := svc.PunchIn(ctx, punchInReq("E1", date)); err != nil {
			t.Fatal(err)
		}
	}

	list, err := svc.ListAll(ctx, model.ListAttendanceQuery{
		StartDate: "2024-01-10",
		EndDate:   "2024-01-10",
	})
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(list) != 1 || list[0].Date != "2024-01-10" {
		t.Errorf("filtered list = %+v, want only 2024-01-10", list)
	}
}

func TestPublishDailyDigest(t *testing.T) {
	store := newFakeAttendanceStore()

	var published []model.ActivityEventMessage
	var keys []string
	svc := NewAttendanceService(store, func(routingKey string, msg model.ActivityEventMessage) error {
		keys = append(keys, routingKey)
		published = append(published, msg)
		return nil
	})
	ctx := context.Background()

	if _, err := svc.PunchIn(ctx, punchInReq("E1", "2024-01-10")); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.PunchIn(ctx, punchInReq("E2", "2024-01-10")); err != nil {
		t.Fatal(err)
	}
	published = published[:0]
	keys = keys[:0]

	if err := svc.PublishDailyDigest(ctx, "2024-01-10"); err != nil {
		t.Fatalf("PublishDailyDigest failed: %v", err)
	}

	if len(published) != 1 {
		t.Fatalf("published %d events, want 1", len(published))
	}
	if keys[0] != "activity.digest" {
		t.Errorf("routing key = %q, want activity.digest", keys[0])
	}
	if published[0].Detail != "2 employees present on 2024-01-10" {
		t.Errorf("detail = %q", published[0].Detail)
	}
}
