package services

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"faceattendance/constants"
	"faceattendance/dto"
	"faceattendance/models"
	"faceattendance/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return db, mock
}

// fixedClock returns a clock whose time is moved with the returned setter.
func fixedClock(start time.Time) (*Clock, func(time.Time)) {
	var mu sync.Mutex
	now := start
	c := NewClock(start.Location(), func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	})
	return c, func(t time.Time) {
		mu.Lock()
		now = t
		mu.Unlock()
	}
}

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[uint]*models.User
	nextID uint

	findErr         error
	updateStatusErr error
	statusWrites    int

	// afterFind runs once FindByID has read the row, outside the lock.
	afterFind func(id uint)
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}}
}

func (r *fakeUserRepo) WithTx(tx *gorm.DB) repositories.UserRepository { return r }

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[user.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for id, u := range r.users {
		if id != user.ID && u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	stored.Name = user.Name
	stored.Email = user.Email
	stored.PhoneNumber = user.PhoneNumber
	stored.DateOfBirth = user.DateOfBirth
	stored.Gender = user.Gender
	return nil
}

func (r *fakeUserRepo) UpdateStatus(ctx context.Context, id uint, status constants.AttendanceStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateStatusErr != nil {
		return r.updateStatusErr
	}
	stored, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.CurrentStatus = status
	r.statusWrites++
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := r.find(id)
	if err == nil && r.afterFind != nil {
		r.afterFind(id)
	}
	return user, err
}

func (r *fakeUserRepo) find(id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	stored, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *stored
	return &cp, nil
}

func (r *fakeUserRepo) FindByIDForUpdate(ctx context.Context, id uint) (*models.User, error) {
	return r.find(id)
}

func (r *fakeUserRepo) FindAll(ctx context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	res := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		res = append(res, *u)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) status(id uint) constants.AttendanceStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id].CurrentStatus
}

type fakeAttendanceRepo struct {
	mu     sync.Mutex
	rows   map[uint]*models.Attendance
	nextID uint

	createErr   error
	updateErr   error
	findOpenErr error
	creates     int
	updates     int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{rows: map[uint]*models.Attendance{}}
}

func (r *fakeAttendanceRepo) WithTx(tx *gorm.DB) repositories.AttendanceRepository { return r }

func sameDay(a, b time.Time) bool {
	return a.Format(constants.DateLayout) == b.Format(constants.DateLayout)
}

func (r *fakeAttendanceRepo) Create(ctx context.Context, a *models.Attendance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	for _, row := range r.rows {
		if row.UserID == a.UserID && sameDay(row.Date, a.Date) {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	a.ID = r.nextID
	cp := *a
	r.rows[a.ID] = &cp
	r.creates++
	return nil
}

func (r *fakeAttendanceRepo) Update(ctx context.Context, a *models.Attendance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.rows[a.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *a
	r.rows[a.ID] = &cp
	r.updates++
	return nil
}

func (r *fakeAttendanceRepo) FindByUserAndDate(ctx context.Context, userID uint, date time.Time) (*models.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.UserID == userID && sameDay(row.Date, date) {
			cp := *row
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAttendanceRepo) FindByUserBetween(ctx context.Context, userID uint, from, to *time.Time) ([]models.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var res []models.Attendance
	for _, row := range r.rows {
		d := row.Date.Format(constants.DateLayout)
		if row.UserID != userID {
			continue
		}
		if from != nil && d < from.Format(constants.DateLayout) {
			continue
		}
		if to != nil && d > to.Format(constants.DateLayout) {
			continue
		}
		res = append(res, *row)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Date.Before(res[j].Date) })
	return res, nil
}

func (r *fakeAttendanceRepo) FindOpenOn(ctx context.Context, date time.Time) ([]models.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findOpenErr != nil {
		return nil, r.findOpenErr
	}
	var res []models.Attendance
	for _, row := range r.rows {
		if sameDay(row.Date, date) && row.CheckInTime != nil && row.CheckOutTime == nil {
			res = append(res, *row)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].UserID < res[j].UserID })
	return res, nil
}

func (r *fakeAttendanceRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

type fakeNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *fakeNotifier) SendMessage(message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
	return nil
}

func (n *fakeNotifier) sent() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.messages)
}

// recordingCache keeps entries in memory and counts invalidations. Sets carry
// the generation read before the store and are dropped when it moved.
type recordingCache struct {
	mu            sync.Mutex
	users         map[uint]dto.UserResponse
	gens          map[uint]int64
	list          []dto.UserResponse
	hasList       bool
	listGen       int64
	invalidations [][]uint
	staleSets     int
}

func newRecordingCache() *recordingCache {
	return &recordingCache{users: map[uint]dto.UserResponse{}, gens: map[uint]int64{}}
}

func (c *recordingCache) GetUser(ctx context.Context, id uint) (dto.UserResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	u, ok := c.users[id]
	return u, ok
}

func (c *recordingCache) UserGeneration(ctx context.Context, id uint) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[id]
}

func (c *recordingCache) SetUser(ctx context.Context, user dto.UserResponse, gen int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[user.ID] != gen {
		c.staleSets++
		return
	}
	c.users[user.ID] = user
}

func (c *recordingCache) GetUsers(ctx context.Context) ([]dto.UserResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list, c.hasList
}

func (c *recordingCache) ListGeneration(ctx context.Context) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.listGen
}

func (c *recordingCache) SetUsers(ctx context.Context, users []dto.UserResponse, gen int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.listGen != gen {
		c.staleSets++
		return
	}
	c.list = users
	c.hasList = true
}

func (c *recordingCache) Invalidate(ctx context.Context, ids ...uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = nil
	c.hasList = false
	c.listGen++
	for _, id := range ids {
		delete(c.users, id)
		c.gens[id]++
	}
	c.invalidations = append(c.invalidations, ids)
}

func (c *recordingCache) stale() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.staleSets
}
