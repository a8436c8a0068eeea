package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/ramana119/yatra/internal/adapters/postgres"
	"github.com/ramana119/yatra/internal/core/domain"
	"github.com/ramana119/yatra/internal/pkg/config"
)

// seed loads the destination catalog from a JSON file into the database.
// Usage: seed [path/to/destinations.json]
func main() {
	path := "data/destinations.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load("yatra-seed")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read %s: %v", path, err)
	}

	var dests []domain.Destination
	if err := json.Unmarshal(data, &dests); err != nil {
		log.Fatalf("parse %s: %v", path, err)
	}
	if len(dests) == 0 {
		log.Fatalf("%s contains no destinations", path)
	}

	ctx := context.Background()
	db, err := postgres.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewDestinationRepo(db)
	if err := repo.UpsertBatch(ctx, dests); err != nil {
		log.Fatalf("seed destinations: %v", err)
	}

	log.Printf("seeded %d destinations from %s", len(dests), path)
}
