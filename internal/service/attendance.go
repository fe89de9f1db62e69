package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/skulk0156/EMS-backend/internal/model"
	"github.com/skulk0156/EMS-backend/internal/queue"
	"github.com/skulk0156/EMS-backend/internal/repository"
	bizerrors "github.com/skulk0156/EMS-backend/pkg/errors"
	"github.com/skulk0156/EMS-backend/pkg/logger"
	"github.com/skulk0156/EMS-backend/storage/database"
)

// AttendanceStore 考勤存储接口，生产环境为 gorm 实现，测试用内存假实现
type AttendanceStore interface {
	Create(ctx context.Context, att *model.Attendance) error
	GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*model.Attendance, error)
	UpdatePunchOut(ctx context.Context, employeeID, date, punchOut, workingHours string) (int64, error)
	List(ctx context.Context, q model.ListAttendanceQuery) ([]model.Attendance, error)
	CountByDateAndStatus(ctx context.Context, date string, status model.AttendanceStatus) (int64, error)
}

// ActivityPublisher 活动事件发布函数，nil 时跳过发布
type ActivityPublisher func(routingKey string, msg model.ActivityEventMessage) error

type AttendanceService struct {
	store   AttendanceStore
	publish ActivityPublisher
}

var (
	attendanceService *AttendanceService
	attendanceOnce    sync.Once
)

func Attendance() *AttendanceService {
	attendanceOnce.Do(func() {
		attendanceService = NewAttendanceService(
			repository.NewAttendanceRepo(database.DB()),
			queue.PublishActivityEvent,
		)
	})

	return attendanceService
}

// NewAttendanceService 构造考勤服务，publish 可为 nil（不发布活动事件）。
func NewAttendanceService(store AttendanceStore, publish ActivityPublisher) *AttendanceService {
	return &AttendanceService{
		store:   store,
		publish: publish,
	}
}

// PunchIn 上班打卡：date 与 punch_in 原样取自请求，对 (employee_id, date)
// 做单条 INSERT，唯一索引冲突即该键已打卡，不做先查后写。
func (s *AttendanceService) PunchIn(ctx context.Context, req model.PunchInRequest) (*model.Attendance, error) {
	att := &model.Attendance{
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Date:       req.Date,
		PunchIn:    req.PunchIn,
		Status:     model.AttendanceStatusPresent,
	}

	if err := s.store.Create(ctx, att); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, bizerrors.AttendanceAlreadyMarked
		}
		return nil, err
	}

	s.publishEvent(queue.RoutingKeyAttendance, model.ActivityEventMessage{
		EmployeeID: att.EmployeeID,
		Action:     "punch_in",
		Entity:     "attendance",
		EntityID:   att.ID,
		Detail:     fmt.Sprintf("punched in at %s on %s", att.PunchIn, att.Date),
	})

	return att, nil
}

// PunchOut 下班打卡：仅更新 (employee_id, date) 上已存在的记录，
// punch_out 与 workingHours 原样写入，零行受影响即未打上班卡。
// 重复下班打卡按最后一次为准覆盖。
func (s *AttendanceService) PunchOut(ctx context.Context, req model.PunchOutRequest) (*model.Attendance, error) {
	att, err := s.store.GetByEmployeeAndDate(ctx, req.EmployeeID, req.Date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bizerrors.AttendanceNotFound
		}
		return nil, err
	}

	rows, err := s.store.UpdatePunchOut(ctx, req.EmployeeID, req.Date, req.PunchOut, req.WorkingHours)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// 查到后被并发删除，按不存在处理
		return nil, bizerrors.AttendanceNotFound
	}

	att.PunchOut = &req.PunchOut
	att.WorkingHours = &req.WorkingHours

	s.publishEvent(queue.RoutingKeyAttendance, model.ActivityEventMessage{
		EmployeeID: att.EmployeeID,
		Action:     "punch_out",
		Entity:     "attendance",
		EntityID:   att.ID,
		Detail:     fmt.Sprintf("punched out at %s, worked %s", req.PunchOut, req.WorkingHours),
	})

	return att, nil
}

// ListAll 按创建时间倒序返回考勤记录。
func (s *AttendanceService) ListAll(ctx context.Context, q model.ListAttendanceQuery) ([]model.Attendance, error) {
	return s.store.List(ctx, q)
}

// PublishDailyDigest 统计某天 Present 记录数并发布汇总事件，由调度器调用。
func (s *AttendanceService) PublishDailyDigest(ctx context.Context, date string) error {
	count, err := s.store.CountByDateAndStatus(ctx, date, model.AttendanceStatusPresent)
	if err != nil {
		return err
	}

	if s.publish == nil {
		return nil
	}

	return s.publish(queue.RoutingKeyDigest, model.ActivityEventMessage{
		EmployeeID: "system",
		Action:     "daily_digest",
		Entity:     "digest",
		Detail:     fmt.Sprintf("%d employees present on %s", count, date),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// publishEvent 尽力而为地发布活动事件，失败只记日志，不影响主流程。
func (s *AttendanceService) publishEvent(routingKey string, msg model.ActivityEventMessage) {
	if s.publish == nil {
		return
	}

	if err := s.publish(routingKey, msg); err != nil {
		logger.Logger.Warn("Failed to publish activity event",
			zap.String("action", msg.Action),
			zap.String("employee_id", msg.EmployeeID),
			zap.Error(err),
		)
	}
}
