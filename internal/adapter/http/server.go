package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/deccanpulse/footfall-density-service/internal/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DensityService answers live queries against the built corpus.
type DensityService interface {
	CheckReadiness(ctx context.Context) error
	Predict(c domain.Context) (int, domain.Tier, error)
	TopHours(location string, k int) []domain.HourAverage
	GlobalQuartiles() (domain.QuartileSet, bool)
	LocationQuartiles(location string) (domain.QuartileSet, bool)
}

// Server exposes health, readiness, metrics, and density query endpoints.
type Server struct {
	httpServer *http.Server
	service    DensityService
	logger     *slog.Logger
}

// NewServer creates an HTTP server with operational routes plus the v1
// density API.
func NewServer(addr string, service DensityService, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		service: service,
		logger:  logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("POST /v1/predict", s.handlePredict)
	mux.HandleFunc("GET /v1/top-hours", s.handleTopHours)
	mux.HandleFunc("GET /v1/quartiles", s.handleQuartiles)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.service.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// PredictRequest is a live what-if query for one context tuple.
type PredictRequest struct {
	Location    string  `json:"location"`
	Hour        int     `json:"hour"`
	Weather     string  `json:"weather"`
	Temperature float64 `json:"temperature"`
	IsFestival  bool    `json:"is_festival"`
	IsHoliday   bool    `json:"is_holiday"`
}

// PredictResponse carries the estimate and its density tier.
type PredictResponse struct {
	Footfall     int    `json:"footfall"`
	DensityLabel string `json:"density_label"`
	DensityRank  int    `json:"density_rank"`
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var req PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	footfall, tier, err := s.service.Predict(domain.Context{
		Location:    req.Location,
		Hour:        req.Hour,
		Weather:     req.Weather,
		Temperature: req.Temperature,
		IsFestival:  req.IsFestival,
		IsHoliday:   req.IsHoliday,
	})
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, PredictResponse{
		Footfall:     footfall,
		DensityLabel: tier.String(),
		DensityRank:  int(tier),
	})
}

// TopHoursResponse lists a site's busiest hours, descending by average.
type TopHoursResponse struct {
	Location string               `json:"location"`
	Hours    []domain.HourAverage `json:"hours"`
}

func (s *Server) handleTopHours(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	if location == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "location is required"})
		return
	}

	k := 0
	if v := r.URL.Query().Get("k"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "k must be a positive integer"})
			return
		}
		k = n
	}

	hours := s.service.TopHours(location, k)
	if hours == nil {
		hours = []domain.HourAverage{}
	}
	writeJSON(w, http.StatusOK, TopHoursResponse{Location: location, Hours: hours})
}

// QuartilesResponse carries one quartile set; Location is empty for the
// global boundaries.
type QuartilesResponse struct {
	Location  string             `json:"location,omitempty"`
	Quartiles domain.QuartileSet `json:"quartiles"`
}

func (s *Server) handleQuartiles(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")

	var (
		q  domain.QuartileSet
		ok bool
	)
	if location == "" {
		q, ok = s.service.GlobalQuartiles()
	} else {
		q, ok = s.service.LocationQuartiles(location)
	}
	if !ok {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": domain.ErrNoQuartiles.Error()})
		return
	}

	writeJSON(w, http.StatusOK, QuartilesResponse{Location: location, Quartiles: q})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
