// Command seed imports a JSON dish catalog file into the local store,
// skipping dishes whose id already exists.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/menufacil/backend/config"
	"github.com/menufacil/backend/internal/logging"
	"github.com/menufacil/backend/internal/service"
	"github.com/menufacil/backend/internal/store"
)

func main() {
	file := flag.String("file", "recetas.json", "path to a JSON array of dishes")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("failed to read %s: %v", *file, err)
	}

	kv, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open local store: %v", err)
	}

	catalog := service.NewCatalogService(kv, logger.Sugar())
	added, skipped, err := catalog.Import(raw)
	if err != nil {
		log.Fatalf("import rejected: %v", err)
	}
	fmt.Printf("imported %d dishes, skipped %d duplicates\n", added, skipped)
}
