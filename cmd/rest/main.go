package main

import (
	"context"
	"log"

	"robotics-rag-be/internal/bootstrap"
	"robotics-rag-be/internal/config"
	"robotics-rag-be/internal/server"
	"robotics-rag-be/internal/tracer"
	"robotics-rag-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database (vector index backend)
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}
	defer database.Close(gormDB)

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.SysLogger.Sync()

	// 4. Ensure the vector collection exists before serving
	if err := container.RagService.InitializeCollection(context.Background()); err != nil {
		log.Panicf("Unable to initialize vector collection: %v", err)
	}

	// 5. Start Background Indexer
	go func() {
		log.Println("Background: Starting Indexer Service...")
		if err := container.IndexerService.Consume(context.Background()); err != nil {
			log.Printf("Background Indexer Error: %v", err)
		}
	}()

	// 6. Initialize Server
	srv := server.New(cfg, container)

	// 7. Run Server
	log.Fatal(srv.Run())
}
