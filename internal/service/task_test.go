package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"gorm.io/gorm"

	"github.com/skulk0156/EMS-backend/internal/model"
	bizerrors "github.com/skulk0156/EMS-backend/pkg/errors"
)

type fakeTaskStore struct {
	mu     sync.Mutex
	tasks  map[int64]*model.Task
	nextID int64
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: map[int64]*model.Task{}}
}

func (f *fakeTaskStore) Create(_ context.Context, task *model.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	task.ID = f.nextID
	copied := *task
	f.tasks[task.ID] = &copied
	return nil
}

func (f *fakeTaskStore) GetByID(_ context.Context, id int64) (*model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if t, ok := f.tasks[id]; ok {
		copied := *t
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTaskStore) List(_ context.Context, q model.ListTasksQuery) ([]model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []model.Task
	for _, t := range f.tasks {
		if q.Status != "" && string(t.Status) != q.Status {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTaskStore) Update(_ context.Context, id int64, updates map[string]interface{}) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	t, ok := f.tasks[id]
	if !ok {
		return 0, nil
	}
	if v, ok := updates["title"]; ok {
		t.Title = v.(string)
	}
	if v, ok := updates["status"]; ok {
		t.Status = model.TaskStatus(v.(string))
	}
	if v, ok := updates["priority"]; ok {
		t.Priority = v.(string)
	}
	return 1, nil
}

func (f *fakeTaskStore) Delete(_ context.Context, id int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.tasks[id]; !ok {
		return 0, nil
	}
	delete(f.tasks, id)
	return 1, nil
}

type capturedEvent struct {
	routingKey string
	msg        model.ActivityEventMessage
}

func newTaskFixture(t *testing.T) (*TaskService, *fakeTaskStore, *[]capturedEvent) {
	t.Helper()

	assignee := &model.User{EmployeeID: "EMP001", Role: model.RoleEmployee}
	assignee.ID = 42
	users := &fakeUserLookup{byID: map[int64]*model.User{42: assignee}}

	var events []capturedEvent
	publish := func(routingKey string, msg model.ActivityEventMessage) error {
		events = append(events, capturedEvent{routingKey, msg})
		return nil
	}

	store := newFakeTaskStore()
	return NewTaskService(store, users, publish), store, &events
}

func TestCreateTaskDefaultsAndEvent(t *testing.T) {
	svc, _, events := newTaskFixture(t)
	assigneeID := int64(42)

	task, err := svc.Create(context.Background(), model.CreateTaskRequest{
		Title:      "Write quarterly report",
		AssigneeID: &assigneeID,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if task.Status != model.TaskStatusTodo {
		t.Errorf("status = %q, want todo", task.Status)
	}
	if task.Priority != "medium" {
		t.Errorf("priority = %q, want medium", task.Priority)
	}

	if len(*events) != 1 {
		t.Fatalf("published %d events, want 1", len(*events))
	}
	ev := (*events)[0]
	if ev.routingKey != "activity.task" {
		t.Errorf("routing key = %q", ev.routingKey)
	}
	if ev.msg.Action != "task_created" || ev.msg.EmployeeID != "EMP001" {
		t.Errorf("event = %+v, want task_created attributed to EMP001", ev.msg)
	}
}

func TestCreateTaskUnassigned(t *testing.T) {
	svc, _, events := newTaskFixture(t)

	if _, err := svc.Create(context.Background(), model.CreateTaskRequest{Title: "Triage inbox"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if len(*events) != 1 || (*events)[0].msg.EmployeeID != "unassigned" {
		t.Errorf("events = %+v, want one event attributed to unassigned", *events)
	}
}

func TestUpdateTaskPublishesOnlyOnStatusChange(t *testing.T) {
	svc, _, events := newTaskFixture(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, model.CreateTaskRequest{Title: "Write quarterly report"})
	if err != nil {
		t.Fatal(err)
	}
	*events = (*events)[:0]

	// 只改标题不发事件
	if _, err := svc.Update(ctx, task.ID, model.UpdateTaskRequest{Title: "Write Q1 report"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(*events) != 0 {
		t.Fatalf("title-only update published %d events, want 0", len(*events))
	}

	updated, err := svc.Update(ctx, task.ID, model.UpdateTaskRequest{Status: "done"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Status != model.TaskStatusDone {
		t.Errorf("status = %q, want done", updated.Status)
	}
	if len(*events) != 1 || (*events)[0].msg.Action != "task_updated" {
		t.Errorf("events = %+v, want one task_updated event", *events)
	}
}

func TestUpdateUnknownTask(t *testing.T) {
	svc, _, _ := newTaskFixture(t)

	_, err := svc.Update(context.Background(), 99, model.UpdateTaskRequest{Status: "done"})
	if !errors.Is(err, bizerrors.TaskNotFound) {
		t.Fatalf("error = %v, want TaskNotFound", err)
	}
}

func TestDeleteUnknownTask(t *testing.T) {
	svc, _, _ := newTaskFixture(t)

	err := svc.Delete(context.Background(), 99)
	if !errors.Is(err, bizerrors.TaskNotFound) {
		t.Fatalf("error = %v, want TaskNotFound", err)
	}
}
