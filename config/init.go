package config

import (
	"time"

	"faceattendance/middleware"
	"faceattendance/services/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// InitApp dựng router, websocket hub và cron scheduler. Cron chạy theo múi
// giờ loc để mốc 0h trùng với ngày điểm danh.
func InitApp(loc *time.Location, log logger.Logger) (*gin.Engine, *melody.Melody, *cron.Cron) {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log))

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders(middleware.RequestIDHeader)
	configCors.AddExposeHeaders(middleware.RequestIDHeader)
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	m := melody.New()
	c := cron.New(cron.WithLocation(loc))

	return router, m, c
}

// InitWebSocket mounts the live attendance feed.
func InitWebSocket(router *gin.Engine, m *melody.Melody) {
	router.GET("/ws", func(c *gin.Context) {
		m.HandleRequest(c.Writer, c.Request)
	})
}
