package controllers

import (
	"strconv"

	"faceattendance/errors"

	"github.com/gin-gonic/gin"
)

// parseID đọc path param dạng số nguyên dương
func parseID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewAppError(errors.ErrCodeInvalidUserID, name+" must be a positive integer", err)
	}
	return uint(id), nil
}
