package main

import (
	"log"
	"net/http"

	"pcb-advisor/config"
	"pcb-advisor/internal/api/rest"
	app "pcb-advisor/internal/application"
	"pcb-advisor/internal/infrastructure/vision"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	thresholds, err := vision.LoadThresholds(cfg.ThresholdsFile)
	if err != nil {
		log.Fatalf("Failed to load thresholds: %v", err)
	}

	extractor, err := vision.NewExtractor(cfg.VisionBackend, thresholds)
	if err != nil {
		log.Fatalf("Failed to create extractor: %v", err)
	}

	analyzer := app.NewAnalyzerService(extractor)
	router := rest.NewRouter(analyzer)

	log.Printf("HTTP API is listening on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, router); err != nil {
		log.Fatalf("HTTP server error: %v", err)
	}
}
