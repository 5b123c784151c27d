package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DBDriver returns the configured SQL dialect: "postgres" (default) or "mysql".
func DBDriver() string {
	return GetEnv("DB_DRIVER", "postgres")
}

// PostgresDSN returns DATABASE_URL as used by the hosted Postgres instance.
func PostgresDSN() string {
	return os.Getenv("DATABASE_URL")
}

func mysqlDSN() string {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn != "" {
		return dsn
	}
	user := os.Getenv("MYSQL_USER")
	pass := os.Getenv("MYSQL_PASS")
	host := os.Getenv("MYSQL_HOST")
	port := GetEnv("MYSQL_PORT", "3306")
	db := os.Getenv("MYSQL_DB")
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=Local", user, pass, host, port, db)
}

func NewDB() (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch DBDriver() {
	case "mysql":
		dialector = mysql.Open(mysqlDSN())
	case "postgres":
		dsn := PostgresDSN()
		if dsn == "" {
			return nil, fmt.Errorf("DATABASE_URL is not set")
		}
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", DBDriver())
	}

	logMode := logger.Warn
	if os.Getenv("GORM_LOG") == "off" {
		logMode = logger.Silent
	} else if os.Getenv("GORM_LOG") == "info" {
		logMode = logger.Info
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // Use log.Logger for Printf support
		logger.Config{
			SlowThreshold: time.Second, // Slow SQL threshold
			LogLevel:      logMode,     // Log level
			Colorful:      true,        // Enable color
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(GetEnvInt("DB_MAX_OPEN_CONNS", 10))
	sqlDB.SetMaxIdleConns(GetEnvInt("DB_MAX_IDLE_CONNS", 5))
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}
