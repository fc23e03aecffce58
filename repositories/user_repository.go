package repositories

import (
	"context"

	"faceattendance/constants"
	"faceattendance/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository is the storage contract for users. Lookups by id return
// gorm.ErrRecordNotFound when the row does not exist.
type UserRepository interface {
	WithTx(tx *gorm.DB) UserRepository
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	UpdateStatus(ctx context.Context, id uint, status constants.AttendanceStatus) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) WithTx(tx *gorm.DB) UserRepository {
	return &userRepository{db: tx}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// Update ghi đè các trường hồ sơ, không đụng tới current_status
func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).
		Model(user).
		Select("name", "email", "phone_number", "date_of_birth", "gender").
		Updates(user).Error
}

func (r *userRepository) UpdateStatus(ctx context.Context, id uint, status constants.AttendanceStatus) error {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("current_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIDForUpdate locks the user row until the surrounding transaction ends.
func (r *userRepository) FindByIDForUpdate(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error
	return users, err
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}
