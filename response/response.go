package response

import (
	"net/http"

	"faceattendance/errors"

	"github.com/gin-gonic/gin"
)

const messageSuccess = "Success"

// Response định nghĩa cấu trúc response
type Response struct {
	Code int         `json:"code"`
	Mess string      `json:"mess"`
	Data interface{} `json:"data,omitempty"`
}

// ErrorBody carries the machine readable error code next to the message.
type ErrorBody struct {
	Error string `json:"error"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	SuccessWithMessage(c, messageSuccess, data)
}

func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: message,
		Data: data,
	})
}

// Created trả về 201 sau khi tạo mới
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "Created",
		Data: data,
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Internal server error",
	})
}

// Error writes err with the status of its kind. Internal errors never leak
// their cause to the client.
func Error(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		ServerError(c)
		return
	}

	var status int
	switch appErr.Kind() {
	case errors.KindInvalid:
		status = http.StatusBadRequest
	case errors.KindNotFound:
		status = http.StatusNotFound
	case errors.KindConflict:
		status = http.StatusConflict
	default:
		ServerError(c)
		return
	}

	c.JSON(status, Response{
		Code: 0,
		Mess: appErr.Message,
		Data: ErrorBody{Error: string(appErr.Code)},
	})
}
