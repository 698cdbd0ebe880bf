package main

import (
	"log"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"

	"CaOffice/CronJobs"
	"CaOffice/FiberConfig"
	"CaOffice/Models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	db, err := Models.Connect()
	if err != nil {
		log.Fatal("Database connection failed:", err)
	}

	// Tables must exist before any handler is registered
	Models.Migrate(db)

	checker := CronJobs.NewDueTaskChecker(db, false)
	if err := checker.Start(); err != nil {
		log.Println("Failed to start due-task scheduler:", err)
	}
	defer checker.Stop()

	if err := FiberConfig.Serve(db); err != nil {
		log.Fatal(err)
	}
}
