package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/skulk0156/EMS-backend/internal/model"
)

// AttendanceRepo 考勤记录的 gorm 实现
type AttendanceRepo struct {
	db *gorm.DB
}

func NewAttendanceRepo(db *gorm.DB) *AttendanceRepo {
	return &AttendanceRepo{db: db}
}

// Create 插入考勤记录。(employee_id, date) 唯一索引冲突时返回 gorm.ErrDuplicatedKey。
func (r *AttendanceRepo) Create(ctx context.Context, att *model.Attendance) error {
	return r.db.WithContext(ctx).Create(att).Error
}

// GetByEmployeeAndDate 查询某员工某天的考勤记录。
func (r *AttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*model.Attendance, error) {
	var att model.Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND date = ?", employeeID, date).
		First(&att).Error
	if err != nil {
		return nil, err
	}
	return &att, nil
}

// UpdatePunchOut 按 (employee_id, date) 更新下班打卡，返回受影响行数。
// 不存在记录时受影响行数为 0，由调用方决定语义，绝不创建新记录。
func (r *AttendanceRepo) UpdatePunchOut(ctx context.Context, employeeID, date, punchOut, workingHours string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Attendance{}).
		Where("employee_id = ? AND date = ?", employeeID, date).
		Updates(map[string]interface{}{
			"punch_out":     punchOut,
			"working_hours": workingHours,
		})
	return res.RowsAffected, res.Error
}

// List 按创建时间倒序返回考勤记录，支持员工、日期范围与分页过滤。
func (r *AttendanceRepo) List(ctx context.Context, q model.ListAttendanceQuery) ([]model.Attendance, error) {
	tx := r.db.WithContext(ctx).Model(&model.Attendance{})

	if q.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", q.EmployeeID)
	}
	if q.StartDate != "" {
		tx = tx.Where("date >= ?", q.StartDate)
	}
	if q.EndDate != "" {
		tx = tx.Where("date <= ?", q.EndDate)
	}

	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
		if q.Page > 1 {
			tx = tx.Offset((q.Page - 1) * q.Limit)
		}
	}

	var records []model.Attendance
	err := tx.Order("created_at DESC").Find(&records).Error
	return records, err
}

// CountByDateAndStatus 统计某天指定状态的记录数，供每日汇总使用。
func (r *AttendanceRepo) CountByDateAndStatus(ctx context.Context, date string, status model.AttendanceStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Attendance{}).
		Where("date = ? AND status = ?", date, status).
		Count(&count).Error
	return count, err
}
