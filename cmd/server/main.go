package main

import (
	"log"
	"net/http"

	"sport_events/internal/config"
	"sport_events/internal/controllers"
	"sport_events/internal/geoclient"
	"sport_events/internal/logger"
	"sport_events/internal/middleware"
	"sport_events/internal/routes"
	"sport_events/internal/service"
	"sport_events/internal/store"
)

func main() {
	// Structured logging to file
	logger.Setup()

	cfg := config.Load()

	db, err := config.InitDB(cfg.Database)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	if cfg.SeedData {
		if err := config.SeedSampleData(db); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
	}

	events := store.NewEventStore(db)
	categories := store.NewSportCategoryStore(db)
	geo := geoclient.New(cfg.Geolocation.BaseURL, cfg.Geolocation.Timeout)

	svc := service.NewEventService(events, categories, geo)
	controller := controllers.NewEventController(svc)

	r := routes.SetupRouter(controller)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("🚀 Server running at %s", cfg.Server.Addr)
	log.Fatal(http.ListenAndServe(cfg.Server.Addr, handler))
}
