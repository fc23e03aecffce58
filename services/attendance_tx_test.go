package services

import (
	"context"
	"testing"

	"faceattendance/constants"
	"faceattendance/errors"
	"faceattendance/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

// newSQLAttendanceService wires the gorm repositories onto sqlmock so the
// statements of one mark can be checked in order.
func newSQLAttendanceService(t *testing.T) (*AttendanceService, sqlmock.Sqlmock, *fakeNotifier) {
	db, mock := newMockDB(t)
	clock, _ := fixedClock(testNow)
	notifier := &fakeNotifier{}

	users := NewUserService(UserServiceOptions{
		Repo:  repositories.NewUserRepository(db),
		Cache: newRecordingCache(),
		Clock: clock,
	})
	svc := NewAttendanceService(AttendanceServiceOptions{
		DB:       db,
		Repo:     repositories.NewAttendanceRepository(db),
		Users:    users,
		Notifier: notifier,
		Clock:    clock,
	})
	return svc, mock, notifier
}

func expectCheckInUpToStatus(mock sqlmock.Sqlmock) *sqlmock.ExpectedExec {
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"."id" = \$1 .*FOR UPDATE`).
		WithArgs(3, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "current_status"}).
			AddRow(3, "Alice", "a@x.com", "ABSENT"))
	mock.ExpectQuery(`SELECT \* FROM "attendance" WHERE user_id = \$1 AND date = \$2`).
		WithArgs(3, "2026-10-16", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "attendance"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	return mock.ExpectExec(`UPDATE "users" SET "current_status"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WithArgs("PRESENT", sqlmock.AnyArg(), 3)
}

func TestAttendanceService_MarkAttendance_SQL(t *testing.T) {
	t.Run("check-in commits both writes", func(t *testing.T) {
		svc, mock, notifier := newSQLAttendanceService(t)
		expectCheckInUpToStatus(mock).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		res, err := svc.MarkAttendance(context.Background(), 3)

		assert.NoError(t, err)
		assert.Equal(t, constants.ActionCheckIn, res.Action)
		assert.Equal(t, uint(11), res.Attendance.ID)
		assert.Equal(t, 1, notifier.sent())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed status write rolls back the inserted attendance", func(t *testing.T) {
		svc, mock, notifier := newSQLAttendanceService(t)
		expectCheckInUpToStatus(mock).WillReturnError(assert.AnError)
		mock.ExpectRollback()

		_, err := svc.MarkAttendance(context.Background(), 3)

		assert.Error(t, err)
		assert.Equal(t, errors.KindInternal, errors.KindOf(err))
		assert.Equal(t, 0, notifier.sent())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing status row rolls back", func(t *testing.T) {
		svc, mock, notifier := newSQLAttendanceService(t)
		expectCheckInUpToStatus(mock).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := svc.MarkAttendance(context.Background(), 3)

		assert.True(t, errors.IsNotFound(err))
		assert.Equal(t, 0, notifier.sent())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
