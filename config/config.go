package config

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	DB *gorm.DB

	MaxCodeAttempts int
	SeedDatabase    bool
)

func Init() {
	var err error

	// Load application settings from environment variables
	maxAttempts := os.Getenv("CODE_MAX_ATTEMPTS")
	if maxAttempts == "" {
		MaxCodeAttempts = 100
	} else {
		MaxCodeAttempts, err = strconv.Atoi(maxAttempts)
		if err != nil {
			log.Fatalf("Invalid CODE_MAX_ATTEMPTS value: %v", err)
		}
	}

	seed := os.Getenv("SEED_DATABASE")
	if seed == "" {
		SeedDatabase = true
	} else {
		SeedDatabase, err = strconv.ParseBool(seed)
		if err != nil {
			log.Fatalf("Invalid SEED_DATABASE value: %v", err)
		}
	}
}

func ConnectDatabase() {
	host := os.Getenv("DB_HOST")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	port := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		host,
		user,
		password,
		dbname,
		port,
	)

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		// the service wraps multi-statement writes in explicit transactions
		SkipDefaultTransaction: true,
		// duplicate-key violations must surface as gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", "error", err)
	}

	// Connection pool configuration
	sqlDB, err := database.DB()
	if err != nil {
		log.Fatal("Failed to get database object:", "error", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	DB = database
}

func GetDBStats() sql.DBStats {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Errorf("Error getting database instance: %v", err)
		return sql.DBStats{}
	}
	return sqlDB.Stats()
}
