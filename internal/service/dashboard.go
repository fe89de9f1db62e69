package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/skulk0156/EMS-backend/config"
	"github.com/skulk0156/EMS-backend/internal/cache"
	"github.com/skulk0156/EMS-backend/internal/model"
	"github.com/skulk0156/EMS-backend/internal/repository"
	bizerrors "github.com/skulk0156/EMS-backend/pkg/errors"
	"github.com/skulk0156/EMS-backend/pkg/logger"
	"github.com/skulk0156/EMS-backend/storage/database"
)

// DashboardTaskStore 看板所需的任务统计接口
type DashboardTaskStore interface {
	CountByAssignee(ctx context.Context, assigneeID int64) (total, completed int64, err error)
}

// DashboardUserStore 看板所需的用户查询接口
type DashboardUserStore interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (*model.User, error)
	Count(ctx context.Context) (int64, error)
}

// ActivityReader 看板读取活动流水的接口
type ActivityReader interface {
	RecentByEmployee(ctx context.Context, employeeID string, limit int) ([]model.Activity, error)
}

// DashboardCache 看板统计缓存接口，nil 实现表示不缓存
type DashboardCache interface {
	Get(ctx context.Context, employeeID string) (*model.DashboardStats, bool, error)
	Set(ctx context.Context, employeeID string, stats *model.DashboardStats, ttl time.Duration) error
}

type DashboardService struct {
	tasks      DashboardTaskStore
	users      DashboardUserStore
	activities ActivityReader
	cache      DashboardCache
	cacheTTL   time.Duration
}

var (
	dashboardService *DashboardService
	dashboardOnce    sync.Once
)

func Dashboard() *DashboardService {
	dashboardOnce.Do(func() {
		db := database.DB()
		dashboardService = NewDashboardService(
			repository.NewTaskRepo(db),
			repository.NewUserRepo(db),
			repository.NewActivityRepo(db),
			redisDashboardCache{},
			time.Duration(config.Cfg.DashboardCacheTTLSeconds)*time.Second,
		)
	})

	return dashboardService
}

func NewDashboardService(
	tasks DashboardTaskStore,
	users DashboardUserStore,
	activities ActivityReader,
	dashCache DashboardCache,
	cacheTTL time.Duration,
) *DashboardService {
	return &DashboardService{
		tasks:      tasks,
		users:      users,
		activities: activities,
		cache:      dashCache,
		cacheTTL:   cacheTTL,
	}
}

// Stats 汇总某员工的任务统计、完成率与最近活动。
// admin 请求者额外返回全员总数。结果缓存一段时间，缓存键与请求者角色无关时
// 不能携带管理员字段，因此 admin 视图单独补充 totalUsers，不走缓存写入。
func (s *DashboardService) Stats(ctx context.Context, employeeID string, requesterRole model.Role) (*model.DashboardStats, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, employeeID)
		if err != nil {
			logger.Logger.Warn("Dashboard cache read failed",
				zap.String("employee_id", employeeID),
				zap.Error(err),
			)
		} else if ok {
			return s.decorate(ctx, cached, requesterRole)
		}
	}

	user, err := s.users.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bizerrors.UserNotFound
		}
		return nil, err
	}

	total, completed, err := s.tasks.CountByAssignee(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	recent, err := s.activities.RecentByEmployee(ctx, employeeID, 10)
	if err != nil {
		return nil, err
	}

	stats := &model.DashboardStats{
		EmployeeID:     employeeID,
		TotalTasks:     total,
		CompletedTasks: completed,
		PendingTasks:   total - completed,
		Recent:         recent,
	}
	if total > 0 {
		stats.Performance = float64(completed) / float64(total) * 100
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, employeeID, stats, s.cacheTTL); err != nil {
			logger.Logger.Warn("Dashboard cache write failed",
				zap.String("employee_id", employeeID),
				zap.Error(err),
			)
		}
	}

	return s.decorate(ctx, stats, requesterRole)
}

// decorate 为管理员视图补充全员总数。
func (s *DashboardService) decorate(ctx context.Context, stats *model.DashboardStats, role model.Role) (*model.DashboardStats, error) {
	if role != model.RoleAdmin {
		stats.TotalUsers = nil
		return stats, nil
	}

	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalUsers = &totalUsers
	return stats, nil
}

// redisDashboardCache 把 internal/cache 的包级函数适配成接口
type redisDashboardCache struct{}

func (redisDashboardCache) Get(ctx context.Context, employeeID string) (*model.DashboardStats, bool, error) {
	return cache.GetDashboardStats(ctx, employeeID)
}

func (redisDashboardCache) Set(ctx context.Context, employeeID string, stats *model.DashboardStats, ttl time.Duration) error {
	return cache.SetDashboardStats(ctx, employeeID, stats, ttl)
}
