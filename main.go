package main

import (
	"log"

	"github.com/baivab22/ictforumFrontend/config"
	"github.com/baivab22/ictforumFrontend/internal/database"
	"github.com/baivab22/ictforumFrontend/internal/server"
)

func main() {
	config.LoadConfig()

	err := database.InitDB(config.AppConfig)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize database: %v", err)
	}

	defer func() {
		if err := database.DB.Close(); err != nil {
			log.Printf("ERROR: Failed to close database connection: %v", err)
		} else {
			log.Println("Database connection closed successfully.")
		}
	}()

	server.StartServer()
}
