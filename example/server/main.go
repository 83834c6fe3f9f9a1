package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/siherrmann/crmfill"
	"github.com/siherrmann/crmfill/database"
	"github.com/siherrmann/crmfill/helper"
	"github.com/siherrmann/crmfill/server"
)

func main() {
	// Load environment variables from .env if present
	_ = godotenv.Load()

	var c *crmfill.CRMFill
	if os.Getenv("DB_HOST") != "" {
		dbConfig, err := helper.NewDatabaseConfiguration()
		if err != nil {
			log.Fatalf("Failed to read database configuration: %v", err)
		}

		c, err = crmfill.NewWithDatabase(dbConfig)
		if err != nil {
			log.Fatalf("Failed to create crmfill: %v", err)
		}
		defer c.Close()
	} else {
		// No database configured, duplicates are tracked in memory
		c = crmfill.New(database.NewMemoryRegistry(), nil)
	}

	if err := c.UseDefaultPipeline(); err != nil {
		log.Fatalf("Failed to set up pipeline: %v", err)
	}

	srv := server.New(c, "static", nil)

	log.Println("Listening on :8080")
	if err := http.ListenAndServe(":8080", srv.Handler()); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
