package Models

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Connect opens the shared MySQL handle and bounds its connection pool.
// The pool queues waiters instead of failing; only the 25s dial timeout in
// the DSN can fail an acquisition.
func Connect() (*gorm.DB, error) {
	DbHost := os.Getenv("DB_HOST")
	DbUser := os.Getenv("DB_USER")
	DbPassword := os.Getenv("DB_PASS")
	DbName := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4&timeout=25s",
		DbUser, DbPassword, DbHost, DbName)
	connection, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection successful")
	return connection, nil
}

// Migrate ensures every table exists before any handler is registered.
// Order matters: the master tables first, then the tables that reference
// them, then documents which references tasks_allotment_master. A failure
// for one table is logged and does not stop the rest.
func Migrate(db *gorm.DB) {
	// 1. Tables with no dependencies
	migrateEach(db,
		&User{},
		&Client{},
		&Employee{},
		&DocType{},
		&TaskType{},
	)

	// 2. Tables referencing clients and employees
	migrateEach(db,
		&TaskAllotment{},
		&SubAllotment{},
	)

	// 3. Tables referencing task allotments, plus the free-text
	// sub-allotment table kept for compatibility
	migrateEach(db,
		&Document{},
		&Suballotment{},
	)
}

func migrateEach(db *gorm.DB, models ...interface{}) {
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Printf("Error ensuring table for %T exists: %v", model, err)
		}
	}
}
