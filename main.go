// Package main wires the title correlation service: configuration,
// provider clients, the matching engine and the HTTP surface.
package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"vodmatch/config"
	"vodmatch/models"
	"vodmatch/services"
	"vodmatch/titles"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

const (
	missingParamMessage      = "Parâmetro obrigatório ausente (tmdb_id)"
	movieNotFoundMessage     = "Filme não encontrado no TMDb"
	seriesNotFoundMessage    = "Série não disponível no momento"
	seriesUnavailableMessage = "Série não disponível no momento no IPTV"
)

// App holds the request handlers' dependencies.
type App struct {
	titles *titles.Service
	log    *slog.Logger
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("could not load .env file", "error", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	tmdb := services.NewTMDBService(cfg.TMDB.BaseURL, cfg.TMDB.APIKey, cfg.TMDB.Language)
	iptv := services.NewIPTVService(cfg.IPTV.Domain, cfg.IPTV.Username, cfg.IPTV.Password)

	app := &App{
		titles: titles.NewService(tmdb, iptv, logger),
		log:    logger,
	}

	r := mux.NewRouter()
	r.Use(app.requestLogger)
	r.HandleFunc("/health", healthHandler).Methods("GET")
	r.HandleFunc("/movie", app.movieHandler).Methods("GET")
	r.HandleFunc("/series", app.seriesHandler).Methods("GET")

	logger.Info("server starting", "addr", cfg.ListenAddr)
	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	if err := server.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		slog.Warn("failed to write response", "error", err)
	}
}

// movieHandler serves GET /movie?tmdb_id=. A missing playback match is
// a soft failure (200 with success false); a failed metadata lookup is
// a 404.
func (app *App) movieHandler(w http.ResponseWriter, r *http.Request) {
	tmdbID := r.URL.Query().Get("tmdb_id")
	if tmdbID == "" {
		app.writeError(w, http.StatusBadRequest, missingParamMessage)
		return
	}

	details, err := app.titles.MovieDetails(r.Context(), tmdbID)
	if err != nil {
		app.log.Warn("movie lookup failed", "tmdb_id", tmdbID, "error", err)
		app.writeError(w, http.StatusNotFound, movieNotFoundMessage)
		return
	}
	app.writeJSON(w, http.StatusOK, details)
}

// seriesHandler serves GET /series?tmdb_id=. Both a failed metadata
// lookup and a missing playback match are hard 404s.
func (app *App) seriesHandler(w http.ResponseWriter, r *http.Request) {
	tmdbID := r.URL.Query().Get("tmdb_id")
	if tmdbID == "" {
		app.writeError(w, http.StatusBadRequest, missingParamMessage)
		return
	}

	details, err := app.titles.SeriesDetails(r.Context(), tmdbID)
	if err != nil {
		app.log.Warn("series lookup failed", "tmdb_id", tmdbID, "error", err)
		if errors.Is(err, titles.ErrNoPlaybackMatch) {
			app.writeError(w, http.StatusNotFound, seriesUnavailableMessage)
			return
		}
		app.writeError(w, http.StatusNotFound, seriesNotFoundMessage)
		return
	}
	app.writeJSON(w, http.StatusOK, details)
}

// requestLogger tags every request with a correlation id and logs its
// outcome.
func (app *App) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		app.log.Info("request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"duration", time.Since(start),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (app *App) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.log.Warn("failed to encode response", "error", err)
	}
}

func (app *App) writeError(w http.ResponseWriter, status int, message string) {
	app.writeJSON(w, status, models.ErrorResponse{Success: false, Message: message})
}
