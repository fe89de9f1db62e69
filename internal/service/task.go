package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/skulk0156/EMS-backend/internal/model"
	"github.com/skulk0156/EMS-backend/internal/queue"
	"github.com/skulk0156/EMS-backend/internal/repository"
	bizerrors "github.com/skulk0156/EMS-backend/pkg/errors"
	"github.com/skulk0156/EMS-backend/pkg/logger"
	"github.com/skulk0156/EMS-backend/storage/database"
)

// TaskStore 任务存储接口
type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id int64) (*model.Task, error)
	List(ctx context.Context, q model.ListTasksQuery) ([]model.Task, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type TaskService struct {
	store   TaskStore
	users   AuthUserStore
	publish ActivityPublisher
}

var (
	taskService *TaskService
	taskOnce    sync.Once
)

func Task() *TaskService {
	taskOnce.Do(func() {
		db := database.DB()
		taskService = NewTaskService(
			repository.NewTaskRepo(db),
			repository.NewUserRepo(db),
			queue.PublishActivityEvent,
		)
	})

	return taskService
}

// NewTaskService 构造任务服务，users 用于把任务事件归属到员工编号，publish 可为 nil。
func NewTaskService(store TaskStore, users AuthUserStore, publish ActivityPublisher) *TaskService {
	return &TaskService{store: store, users: users, publish: publish}
}

func (s *TaskService) Create(ctx context.Context, req model.CreateTaskRequest) (*model.Task, error) {
	task := &model.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      model.TaskStatusTodo,
		Priority:    "medium",
		ProjectID:   req.ProjectID,
		AssigneeID:  req.AssigneeID,
	}

	if req.Priority != "" {
		task.Priority = req.Priority
	}
	if d := parseDatePtr(req.DueDate); d != nil {
		task.DueDate = d
	}

	if err := s.store.Create(ctx, task); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, task, "task_created", fmt.Sprintf("task %q created", task.Title))

	return task, nil
}

func (s *TaskService) Get(ctx context.Context, id int64) (*model.Task, error) {
	task, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bizerrors.TaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *TaskService) List(ctx context.Context, q model.ListTasksQuery) ([]model.Task, error) {
	if q.Limit <= 0 {
		q.Limit = 50
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	return s.store.List(ctx, q)
}

func (s *TaskService) Update(ctx context.Context, id int64, req model.UpdateTaskRequest) (*model.Task, error) {
	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.Priority != "" {
		updates["priority"] = req.Priority
	}
	if req.AssigneeID != nil {
		updates["assignee_id"] = req.AssigneeID
	}
	if d := parseDatePtr(req.DueDate); d != nil {
		updates["due_date"] = d
	}

	if len(updates) > 0 {
		rows, err := s.store.Update(ctx, id, updates)
		if err != nil {
			return nil, err
		}
		if rows == 0 {
			return nil, bizerrors.TaskNotFound
		}
	}

	task, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != "" {
		s.publishEvent(ctx, task, "task_updated", fmt.Sprintf("task %q moved to %s", task.Title, task.Status))
	}

	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	rows, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return bizerrors.TaskNotFound
	}
	return nil
}

// publishEvent 尽力而为地发布任务事件，归属到被指派员工的编号。
func (s *TaskService) publishEvent(ctx context.Context, task *model.Task, action, detail string) {
	if s.publish == nil {
		return
	}

	employeeID := "unassigned"
	if task.AssigneeID != nil && s.users != nil {
		if user, err := s.users.GetByID(ctx, *task.AssigneeID); err == nil {
			employeeID = user.EmployeeID
		}
	}

	err := s.publish(queue.RoutingKeyTask, model.ActivityEventMessage{
		EmployeeID: employeeID,
		Action:     action,
		Entity:     "task",
		EntityID:   task.ID,
		Detail:     detail,
	})
	if err != nil {
		logger.Logger.Warn("Failed to publish activity event",
			zap.String("action", action),
			zap.Int64("task_id", task.ID),
			zap.Error(err),
		)
	}
}
