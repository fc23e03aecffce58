package services

import (
	"context"

	"faceattendance/constants"
	"faceattendance/dto"
	"faceattendance/errors"
	"faceattendance/models"
	"faceattendance/repositories"
	"faceattendance/services/logger"
	"faceattendance/validator"

	"gorm.io/gorm"
)

type UserServiceInterface interface {
	Register(ctx context.Context, req dto.UserRequest) (dto.UserResponse, error)
	Update(ctx context.Context, id uint, req dto.UserRequest) (dto.UserResponse, error)
	GetByID(ctx context.Context, id uint) (dto.UserResponse, error)
	List(ctx context.Context) ([]dto.UserResponse, error)
}

// UserResolver is what the attendance flow needs from the user side. The tx
// variants run on the caller's transaction.
type UserResolver interface {
	GetByID(ctx context.Context, id uint) (dto.UserResponse, error)
	FindForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.User, error)
	PersistStatus(ctx context.Context, tx *gorm.DB, user *models.User, status constants.AttendanceStatus) error
	ForgetCached(ctx context.Context, id uint)
}

type UserService struct {
	repo   repositories.UserRepository
	cache  UserCache
	logger logger.Logger
	clock  *Clock
}

type UserServiceOptions struct {
	Repo   repositories.UserRepository
	Cache  UserCache
	Logger logger.Logger
	Clock  *Clock
}

func NewUserService(opts UserServiceOptions) *UserService {
	s := &UserService{
		repo:   opts.Repo,
		cache:  opts.Cache,
		logger: opts.Logger,
		clock:  opts.Clock,
	}
	if s.cache == nil {
		s.cache = NoopUserCache{}
	}
	if s.logger == nil {
		s.logger = logger.NewNopLogger()
	}
	if s.clock == nil {
		s.clock = NewClock(nil, nil)
	}
	return s
}

func (s *UserService) Register(ctx context.Context, req dto.UserRequest) (dto.UserResponse, error) {
	dob, err := validator.ValidateUserRequest(&req, s.clock.Today())
	if err != nil {
		return dto.UserResponse{}, err
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return dto.UserResponse{}, errors.DBError("failed to check email", err)
	}
	if exists {
		return dto.UserResponse{}, errors.ErrUserAlreadyExists
	}

	user := &models.User{
		Name:          req.Name,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		DateOfBirth:   dob,
		Gender:        req.Gender,
		CurrentStatus: constants.StatusAbsent,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if repositories.IsDuplicateKey(err) {
			return dto.UserResponse{}, errors.ErrUserAlreadyExists
		}
		return dto.UserResponse{}, errors.DBError("failed to create user", err)
	}

	s.cache.Invalidate(ctx)
	s.logger.Info("✅ Registered user %d <%s>", user.ID, user.Email)
	return ToUserResponse(*user), nil
}

// Update overwrites every profile field. The email check only runs when the
// email actually changes.
func (s *UserService) Update(ctx context.Context, id uint, req dto.UserRequest) (dto.UserResponse, error) {
	dob, err := validator.ValidateUserRequest(&req, s.clock.Today())
	if err != nil {
		return dto.UserResponse{}, err
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return dto.UserResponse{}, errors.ErrUserNotFound
		}
		return dto.UserResponse{}, errors.DBError("failed to load user", err)
	}

	if user.Email != req.Email {
		exists, err := s.repo.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return dto.UserResponse{}, errors.DBError("failed to check email", err)
		}
		if exists {
			return dto.UserResponse{}, errors.ErrEmailTaken
		}
	}

	user.Name = req.Name
	user.Email = req.Email
	user.PhoneNumber = req.PhoneNumber
	user.DateOfBirth = dob
	user.Gender = req.Gender

	if err := s.repo.Update(ctx, user); err != nil {
		if repositories.IsDuplicateKey(err) {
			return dto.UserResponse{}, errors.ErrEmailTaken
		}
		return dto.UserResponse{}, errors.DBError("failed to update user", err)
	}

	s.cache.Invalidate(ctx, id)
	s.logger.Info("✅ Updated user %d", id)
	return ToUserResponse(*user), nil
}

func (s *UserService) GetByID(ctx context.Context, id uint) (dto.UserResponse, error) {
	if cached, ok := s.cache.GetUser(ctx, id); ok {
		return cached, nil
	}

	// read before the store so a fill racing an invalidation is dropped
	gen := s.cache.UserGeneration(ctx, id)
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return dto.UserResponse{}, errors.ErrUserNotFound
		}
		return dto.UserResponse{}, errors.DBError("failed to load user", err)
	}

	resp := ToUserResponse(*user)
	s.cache.SetUser(ctx, resp, gen)
	return resp, nil
}

func (s *UserService) List(ctx context.Context) ([]dto.UserResponse, error) {
	if cached, ok := s.cache.GetUsers(ctx); ok {
		return cached, nil
	}

	gen := s.cache.ListGeneration(ctx)
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, errors.DBError("failed to list users", err)
	}

	res := make([]dto.UserResponse, len(users))
	for i, u := range users {
		res[i] = ToUserResponse(u)
	}
	s.cache.SetUsers(ctx, res, gen)
	return res, nil
}

// FindForUpdate loads the user and locks its row on tx.
func (s *UserService) FindForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.User, error) {
	user, err := s.repo.WithTx(tx).FindByIDForUpdate(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, errors.ErrUserNotFound
		}
		return nil, errors.DBError("failed to load user", err)
	}
	return user, nil
}

// PersistStatus writes only the denormalized status column.
func (s *UserService) PersistStatus(ctx context.Context, tx *gorm.DB, user *models.User, status constants.AttendanceStatus) error {
	if !status.Valid() {
		return errors.NewAppError(errors.ErrCodeInternal, "unknown status "+string(status), nil)
	}
	if err := s.repo.WithTx(tx).UpdateStatus(ctx, user.ID, status); err != nil {
		if repositories.IsNotFound(err) {
			return errors.ErrUserNotFound
		}
		return errors.DBError("failed to update user status", err)
	}
	user.CurrentStatus = status
	return nil
}

// ForgetCached must be called after the transaction that changed the user commits.
func (s *UserService) ForgetCached(ctx context.Context, id uint) {
	s.cache.Invalidate(ctx, id)
}
