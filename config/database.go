package config

import (
	"fmt"
	"os"

	"faceattendance/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func getDBConfigByEnv(cfg *Config) (string, error) {
	var prefix string
	switch cfg.Env {
	case "dev":
		prefix = "DEV_"
	case "qc":
		prefix = "QC_"
	case "prod":
		prefix = "PROD_"
	default:
		return "", fmt.Errorf("unknown environment: %q", cfg.Env)
	}

	user := os.Getenv(prefix + "DB_USER")
	password := os.Getenv(prefix + "DB_PASSWORD")
	host := os.Getenv(prefix + "DB_HOST")
	port := os.Getenv(prefix + "DB_PORT")
	name := os.Getenv(prefix + "DB_NAME")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, name, port, cfg.SSLMode)
	if cfg.Timezone != "" {
		dsn += " TimeZone=" + cfg.Timezone
	}
	return dsn, nil
}

// ConnectDB mở kết nối postgres
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	dsn, err := getDBConfigByEnv(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("fail to connect to db: %w", err)
	}

	return db, nil
}

// Migrate tạo bảng users, attendance và unique index (user_id, date)
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Attendance{})
}
