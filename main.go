package main

import (
	"time"
	"worldcities/api"
	"worldcities/config"
	"worldcities/migrations"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

func main() {
	// set timezone to utc
	time.Local = time.UTC

	// load environment variables
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	config.Init()

	// database connection
	config.ConnectDatabase()
	// migrations and seeders
	migrations.Migrate(config.DB)

	// start http server
	api.StartServer()
}
