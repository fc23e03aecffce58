package controllers

import (
	"context"

	"faceattendance/dto"
)

type fakeUserService struct {
	registerFn func(ctx context.Context, req dto.UserRequest) (dto.UserResponse, error)
	updateFn   func(ctx context.Context, id uint, req dto.UserRequest) (dto.UserResponse, error)
	getByIDFn  func(ctx context.Context, id uint) (dto.UserResponse, error)
	listFn     func(ctx context.Context) ([]dto.UserResponse, error)
}

func (f *fakeUserService) Register(ctx context.Context, req dto.UserRequest) (dto.UserResponse, error) {
	return f.registerFn(ctx, req)
}
func (f *fakeUserService) Update(ctx context.Context, id uint, req dto.UserRequest) (dto.UserResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeUserService) GetByID(ctx context.Context, id uint) (dto.UserResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeUserService) List(ctx context.Context) ([]dto.UserResponse, error) {
	return f.listFn(ctx)
}

type fakeAttendanceService struct {
	markFn    func(ctx context.Context, userID uint) (dto.MarkAttendanceResponse, error)
	getFn     func(ctx context.Context, userID uint, date string) (dto.AttendanceResponse, error)
	historyFn func(ctx context.Context, userID uint, q dto.HistoryQuery) ([]dto.AttendanceResponse, error)
}

func (f *fakeAttendanceService) MarkAttendance(ctx context.Context, userID uint) (dto.MarkAttendanceResponse, error) {
	return f.markFn(ctx, userID)
}
func (f *fakeAttendanceService) GetAttendance(ctx context.Context, userID uint, date string) (dto.AttendanceResponse, error) {
	return f.getFn(ctx, userID, date)
}
func (f *fakeAttendanceService) History(ctx context.Context, userID uint, q dto.HistoryQuery) ([]dto.AttendanceResponse, error) {
	return f.historyFn(ctx, userID, q)
}
