// Package rest — HTTP-поверхность анализатора. Тело запроса — сырые
// байты снимка, опция анализа — query-параметр.
package rest

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	app "pcb-advisor/internal/application"
	"pcb-advisor/internal/domain/entity"
)

// maxImageBytes ограничение размера тела запроса
const maxImageBytes = 16 << 20

type Server struct {
	analyzer *app.AnalyzerService
}

// NewRouter собирает маршруты HTTP API
func NewRouter(analyzer *app.AnalyzerService) http.Handler {
	s := &Server{analyzer: analyzer}

	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	mux.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	mux.Post("/v1/analyze", s.handleAnalyze)

	return mux
}

// POST /v1/analyze?option=N
// Тело запроса — байты изображения. Ответ всегда 200: сбой обработки
// приходит той же структурой с полями "Error" (контракт границы ошибок).
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	option := entity.OptionBoth
	if raw := r.URL.Query().Get("option"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "option must be an integer", http.StatusBadRequest)
			return
		}
		option = entity.AnalysisOption(n)
	}

	imageData, err := io.ReadAll(io.LimitReader(r.Body, maxImageBytes))
	if err != nil {
		http.Error(w, "read body: "+err.Error(), http.StatusBadRequest)
		return
	}

	result := s.analyzer.Analyze(r.Context(), imageData, option)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
