// Command seed populates the development database with fake users and recipes.
package main

import (
	"flag"
	"log"
	"time"

	"recipebook/internal/config"
	"recipebook/internal/database"
	"recipebook/internal/seed"
)

func main() {
	users := flag.Int("users", 5, "number of users to create")
	recipes := flag.Int("recipes", 3, "number of recipes per user")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Env == "production" || cfg.Env == "prod" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	factory := seed.NewFactory(db, time.Now().UnixNano())
	if err := factory.Run(*users, *recipes); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d users with %d recipes each (password: %q)",
		*users, *recipes, seed.DefaultPassword)
}
