package repositories

import (
	"context"
	"time"

	"faceattendance/constants"
	"faceattendance/models"

	"gorm.io/gorm"
)

// AttendanceRepository is the storage contract for attendance rows.
// FindByUserAndDate returns gorm.ErrRecordNotFound when there is no row.
type AttendanceRepository interface {
	WithTx(tx *gorm.DB) AttendanceRepository
	Create(ctx context.Context, a *models.Attendance) error
	Update(ctx context.Context, a *models.Attendance) error
	FindByUserAndDate(ctx context.Context, userID uint, date time.Time) (*models.Attendance, error)
	FindByUserBetween(ctx context.Context, userID uint, from, to *time.Time) ([]models.Attendance, error)
	FindOpenOn(ctx context.Context, date time.Time) ([]models.Attendance, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) WithTx(tx *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: tx}
}

func (r *attendanceRepository) Create(ctx context.Context, a *models.Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *attendanceRepository) Update(ctx context.Context, a *models.Attendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *attendanceRepository) FindByUserAndDate(ctx context.Context, userID uint, date time.Time) (*models.Attendance, error) {
	var a models.Attendance
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("date = ?", date.Format(constants.DateLayout)).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *attendanceRepository) FindByUserBetween(ctx context.Context, userID uint, from, to *time.Time) ([]models.Attendance, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if from != nil {
		q = q.Where("date >= ?", from.Format(constants.DateLayout))
	}
	if to != nil {
		q = q.Where("date <= ?", to.Format(constants.DateLayout))
	}
	var rows []models.Attendance
	err := q.Order("date ASC").Find(&rows).Error
	return rows, err
}

// FindOpenOn lists the rows of date that were checked in but never checked out.
func (r *attendanceRepository) FindOpenOn(ctx context.Context, date time.Time) ([]models.Attendance, error) {
	var rows []models.Attendance
	err := r.db.WithContext(ctx).
		Where("date = ?", date.Format(constants.DateLayout)).
		Where("check_in_time IS NOT NULL").
		Where("check_out_time IS NULL").
		Order("user_id ASC").
		Find(&rows).Error
	return rows, err
}
