package services

import (
	"context"
	"time"

	"faceattendance/constants"
	"faceattendance/dto"
	"faceattendance/errors"
	"faceattendance/models"
	"faceattendance/repositories"
	"faceattendance/services/logger"
	"faceattendance/services/notification"
	"faceattendance/validator"

	"gorm.io/gorm"
)

type AttendanceServiceInterface interface {
	MarkAttendance(ctx context.Context, userID uint) (dto.MarkAttendanceResponse, error)
	GetAttendance(ctx context.Context, userID uint, date string) (dto.AttendanceResponse, error)
	History(ctx context.Context, userID uint, q dto.HistoryQuery) ([]dto.AttendanceResponse, error)
}

type AttendanceService struct {
	db       *gorm.DB
	repo     repositories.AttendanceRepository
	users    UserResolver
	notifier notification.Service
	logger   logger.Logger
	clock    *Clock
}

type AttendanceServiceOptions struct {
	DB       *gorm.DB
	Repo     repositories.AttendanceRepository
	Users    UserResolver
	Notifier notification.Service
	Logger   logger.Logger
	Clock    *Clock
}

func NewAttendanceService(opts AttendanceServiceOptions) *AttendanceService {
	s := &AttendanceService{
		db:       opts.DB,
		repo:     opts.Repo,
		users:    opts.Users,
		notifier: opts.Notifier,
		logger:   opts.Logger,
		clock:    opts.Clock,
	}
	if s.notifier == nil {
		s.notifier = notification.NoopService{}
	}
	if s.logger == nil {
		s.logger = logger.NewNopLogger()
	}
	if s.clock == nil {
		s.clock = NewClock(nil, nil)
	}
	return s
}

// MarkAttendance checks the user in or out for today. The attendance write and
// the user status write share one transaction; the user row stays locked
// until it ends so concurrent calls for the same user run one after another.
func (s *AttendanceService) MarkAttendance(ctx context.Context, userID uint) (dto.MarkAttendanceResponse, error) {
	if err := validator.ValidateUserID(userID); err != nil {
		return dto.MarkAttendanceResponse{}, err
	}

	now := s.clock.Now()
	today := StartOfDay(now)

	var (
		user       *models.User
		state      models.AttendanceState
		transition models.Transition
		current    *models.Attendance
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		user, err = s.users.FindForUpdate(ctx, tx, userID)
		if err != nil {
			return err
		}

		repo := s.repo.WithTx(tx)
		current, err = repo.FindByUserAndDate(ctx, user.ID, today)
		if err != nil {
			if !repositories.IsNotFound(err) {
				return errors.DBError("failed to load today's attendance", err)
			}
			current = nil
		}

		state = models.StateOf(current)
		transition = state.Mark(user.ID, today, now)
		if !transition.Changed() {
			return nil
		}

		if transition.Action == constants.ActionCheckIn {
			err = repo.Create(ctx, transition.Record)
		} else {
			err = repo.Update(ctx, transition.Record)
		}
		if err != nil {
			if repositories.IsDuplicateKey(err) {
				return errors.ErrAttendanceConflict
			}
			return errors.DBError("failed to save attendance", err)
		}
		current = transition.Record

		return s.users.PersistStatus(ctx, tx, user, transition.UserStatus)
	})
	if err != nil {
		if !errors.IsAppError(err) {
			err = errors.DBError("attendance transaction failed", err)
		}
		s.logger.Error("❌ Mark attendance for user %d: %v", userID, err)
		return dto.MarkAttendanceResponse{}, err
	}

	s.logger.Info("✅ User %d: %s -> %s", userID, state.Name(), transition.Action)
	if transition.Changed() {
		s.afterTransition(ctx, user, transition, now)
	}

	resp := dto.MarkAttendanceResponse{
		Message: transition.Message,
		Action:  transition.Action,
	}
	if current != nil {
		a := ToAttendanceResponse(*current)
		resp.Attendance = &a
	}
	return resp, nil
}

// afterTransition runs after commit; its failures are only logged.
func (s *AttendanceService) afterTransition(ctx context.Context, user *models.User, t models.Transition, at time.Time) {
	s.users.ForgetCached(ctx, user.ID)

	msg, err := notification.NewMessageBuilder(t.Action, user.ID).
		WithUser(user.Name, string(user.CurrentStatus)).
		WithMessage(t.Message, at).
		Build()
	if err != nil {
		s.logger.Error("❌ Build attendance event: %v", err)
		return
	}
	if err := s.notifier.SendMessage(msg); err != nil {
		s.logger.Error("❌ Broadcast attendance event: %v", err)
	}
}

// ReportOpenCheckIns broadcasts one event per user who checked in yesterday
// and never checked out. It only reads; no status is written.
func (s *AttendanceService) ReportOpenCheckIns(ctx context.Context) (int, error) {
	now := s.clock.Now()
	yesterday := StartOfDay(now).AddDate(0, 0, -1)

	rows, err := s.repo.FindOpenOn(ctx, yesterday)
	if err != nil {
		return 0, errors.DBError("failed to load open check-ins", err)
	}

	for _, r := range rows {
		user, err := s.users.GetByID(ctx, r.UserID)
		if err != nil {
			s.logger.Error("❌ Load user %d for open check-in: %v", r.UserID, err)
			continue
		}
		msg, err := notification.NewMessageBuilder(constants.ActionOpenCheckIn, r.UserID).
			WithUser(user.Name, user.CurrentStatus).
			WithMessage(constants.MessageOpenCheckIn, now).
			Build()
		if err != nil {
			s.logger.Error("❌ Build open check-in event: %v", err)
			continue
		}
		if err := s.notifier.SendMessage(msg); err != nil {
			s.logger.Error("❌ Broadcast open check-in for user %d: %v", r.UserID, err)
		}
	}
	return len(rows), nil
}

// GetAttendance returns the user's record for date (YYYY-MM-DD, empty for today).
func (s *AttendanceService) GetAttendance(ctx context.Context, userID uint, date string) (dto.AttendanceResponse, error) {
	if err := validator.ValidateUserID(userID); err != nil {
		return dto.AttendanceResponse{}, err
	}

	day := s.clock.Today()
	if date != "" {
		var err error
		if day, err = validator.ParseDate(date, s.clock.Location()); err != nil {
			return dto.AttendanceResponse{}, err
		}
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return dto.AttendanceResponse{}, err
	}

	record, err := s.repo.FindByUserAndDate(ctx, userID, day)
	if err != nil {
		if repositories.IsNotFound(err) {
			return dto.AttendanceResponse{}, errors.ErrAttendanceNotFound
		}
		return dto.AttendanceResponse{}, errors.DBError("failed to load attendance", err)
	}
	return ToAttendanceResponse(*record), nil
}

// History lists the user's records between the inclusive bounds of q.
func (s *AttendanceService) History(ctx context.Context, userID uint, q dto.HistoryQuery) ([]dto.AttendanceResponse, error) {
	if err := validator.ValidateUserID(userID); err != nil {
		return nil, err
	}

	var from, to *time.Time
	if q.StartDate != "" {
		d, err := validator.ParseDate(q.StartDate, s.clock.Location())
		if err != nil {
			return nil, err
		}
		from = &d
	}
	if q.EndDate != "" {
		d, err := validator.ParseDate(q.EndDate, s.clock.Location())
		if err != nil {
			return nil, err
		}
		to = &d
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDate, "startDate must not be after endDate", nil)
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	rows, err := s.repo.FindByUserBetween(ctx, userID, from, to)
	if err != nil {
		return nil, errors.DBError("failed to load attendance history", err)
	}
	res := make([]dto.AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = ToAttendanceResponse(r)
	}
	return res, nil
}
