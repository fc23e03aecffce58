package main

import (
	"context"
	"log"

	"faceattendance/config"
	"faceattendance/jobs"
	"faceattendance/repositories"
	"faceattendance/routes"
	"faceattendance/services"
	"faceattendance/services/logger"
	"faceattendance/services/notification"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLogger := logger.NewDefaultLogger(logger.ParseLevel(cfg.LogLevel))
	defer appLogger.Sync()

	loc, _ := cfg.Location()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to db: %v", err)
	}
	if cfg.AutoMigrate {
		if err := config.Migrate(db); err != nil {
			log.Fatalf("Failed to migrate tables: %v", err)
		}
	}

	var userCache services.UserCache = services.NoopUserCache{}
	rdb, err := config.ConnectRedis(context.Background(), cfg)
	if err != nil {
		appLogger.Error("❌ Redis unavailable, user cache disabled: %v", err)
	} else if rdb != nil {
		userCache = services.NewRedisUserCache(rdb, cfg.UserCacheTTL, appLogger)
	}

	router, m, c := config.InitApp(loc, appLogger)
	clock := services.NewClock(loc, nil)

	userService := services.NewUserService(services.UserServiceOptions{
		Repo:   repositories.NewUserRepository(db),
		Cache:  userCache,
		Logger: appLogger,
		Clock:  clock,
	})
	attendanceService := services.NewAttendanceService(services.AttendanceServiceOptions{
		DB:       db,
		Repo:     repositories.NewAttendanceRepository(db),
		Users:    userService,
		Notifier: notification.NewMelodyService(m),
		Logger:   appLogger,
		Clock:    clock,
	})

	if err := jobs.InitCronJobs(c, attendanceService, appLogger); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}
	c.Start()
	defer c.Stop()

	config.InitWebSocket(router, m)
	routes.SetupRoutes(router, userService, attendanceService)

	appLogger.Info("Server starting on port %s (timezone %s)...", cfg.Port, loc)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
