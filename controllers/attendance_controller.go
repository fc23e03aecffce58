package controllers

import (
	"faceattendance/dto"
	"faceattendance/response"
	"faceattendance/services"

	"github.com/gin-gonic/gin"
)

type AttendanceController struct {
	service services.AttendanceServiceInterface
}

func NewAttendanceController(service services.AttendanceServiceInterface) AttendanceController {
	return AttendanceController{service: service}
}

// MarkAttendance POST /api/v1/attendance/mark. The envelope message is the
// outcome message of the call.
func (a AttendanceController) MarkAttendance(c *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	res, err := a.service.MarkAttendance(c.Request.Context(), req.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, res.Message, res)
}

// GetAttendance GET /api/v1/attendance/user/:userId?date=YYYY-MM-DD
func (a AttendanceController) GetAttendance(c *gin.Context) {
	userID, err := parseID(c, "userId")
	if err != nil {
		response.Error(c, err)
		return
	}

	record, err := a.service.GetAttendance(c.Request.Context(), userID, c.Query("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, record)
}

func (a AttendanceController) GetHistory(c *gin.Context) {
	userID, err := parseID(c, "userId")
	if err != nil {
		response.Error(c, err)
		return
	}

	var q dto.HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query")
		return
	}

	records, err := a.service.History(c.Request.Context(), userID, q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, records)
}
