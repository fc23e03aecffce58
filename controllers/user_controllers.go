package controllers

import (
	"faceattendance/dto"
	"faceattendance/response"
	"faceattendance/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	service services.UserServiceInterface
}

func NewUserController(service services.UserServiceInterface) UserController {
	return UserController{service: service}
}

// RegisterUser POST /api/v1/users/register
func (u UserController) RegisterUser(c *gin.Context) {
	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	user, err := u.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, user)
}

func (u UserController) GetUsers(c *gin.Context) {
	users, err := u.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, users)
}

func (u UserController) GetUserByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	user, err := u.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

// UpdateUser PUT /api/v1/users/:id, ghi đè toàn bộ hồ sơ
func (u UserController) UpdateUser(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	user, err := u.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}
