package routes

import (
	"net/http"

	"faceattendance/controllers"
	"faceattendance/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, users services.UserServiceInterface, attendance services.AttendanceServiceInterface) {
	userController := controllers.NewUserController(users)
	attendanceController := controllers.NewAttendanceController(attendance)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	v1 := router.Group("/api/v1")

	v1.POST("/users/register", userController.RegisterUser)
	v1.GET("/users", userController.GetUsers)
	v1.GET("/users/:id", userController.GetUserByID)
	v1.PUT("/users/:id", userController.UpdateUser)

	v1.POST("/attendance/mark", attendanceController.MarkAttendance)
	v1.GET("/attendance/user/:userId", attendanceController.GetAttendance)
	v1.GET("/attendance/user/:userId/history", attendanceController.GetHistory)
}
