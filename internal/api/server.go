// Package api provides the HTTP API for querying stored runs and launching
// new ones. GET endpoints are public (read-only observation). POST endpoints
// require a bearer token.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cellarworks/internal/config"
	"cellarworks/internal/economy"
	"cellarworks/internal/pipeline"
	"cellarworks/internal/store"
)

// Server serves run history and on-demand simulations over HTTP.
type Server struct {
	DB       *store.DB
	Addr     string
	AdminKey string // Bearer token for POST endpoints. Empty = POST disabled.
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	// Simulations are CPU work; keep callers from queueing them up faster
	// than they finish.
	simulateLimiter := NewRateLimiter(60, time.Hour)

	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/runs", s.handleRuns)
	mux.HandleFunc("/api/v1/run/", s.handleRunDetail)

	mux.HandleFunc("/api/v1/simulate",
		s.adminOnly(RateLimitMiddleware(simulateLimiter, s.handleSimulate)))

	slog.Info("HTTP API starting", "addr", s.Addr, "admin_auth", s.AdminKey != "")

	go func() {
		if err := http.ListenAndServe(s.Addr, mux); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

// checkBearerToken returns true if the request has a valid admin bearer token.
func (s *Server) checkBearerToken(r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	return strings.HasPrefix(auth, "Bearer ") && strings.TrimPrefix(auth, "Bearer ") == s.AdminKey
}

// adminOnly wraps a handler to require bearer token auth on POST requests.
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if s.AdminKey == "" {
				http.Error(w, "admin endpoints disabled (no CELLARWORKS_ADMIN_KEY set)", http.StatusForbidden)
				return
			}
			if !s.checkBearerToken(r) {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
		}
		next(w, r)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	runs := 0
	if s.DB != nil {
		if recent, err := s.DB.RecentRuns(1); err == nil && len(recent) > 0 {
			runs = int(recent[0].ID)
		}
	}
	writeJSON(w, map[string]any{
		"name":       "cellarworks",
		"runs":       runs,
		"persistent": s.DB != nil,
	})
}

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "database not available", http.StatusServiceUnavailable)
		return
	}

	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	runs, err := s.DB.RecentRuns(limit)
	if err != nil {
		slog.Error("runs query failed", "error", err)
		http.Error(w, "query failed", http.StatusInternalServerError)
		return
	}
	if runs == nil {
		runs = []store.RunRow{}
	}
	writeJSON(w, runs)
}

func (s *Server) handleRunDetail(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "database not available", http.StatusServiceUnavailable)
		return
	}

	parts := strings.Split(r.URL.Path, "/")
	if len(parts) < 5 {
		http.Error(w, "missing run id", http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(parts[4], 10, 64)
	if err != nil {
		http.Error(w, "invalid run id", http.StatusBadRequest)
		return
	}

	crops, err := s.DB.RunCrops(id)
	if err != nil {
		slog.Error("run detail query failed", "error", err, "run", id)
		http.Error(w, "query failed", http.StatusInternalServerError)
		return
	}
	if len(crops) == 0 {
		http.Error(w, "run not found", http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]any{
		"run_id": id,
		"crops":  crops,
	})
}

// handleSimulate runs a simulation from a JSON config body and returns the
// result, saving it when a database is attached.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var f config.File
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if err := f.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := pipeline.New(f.BuildPipeline()).Run()
	profit := economy.ComputeProfit(res.Crops, f.BuildPricing(), f.Modifiers().Fertilizer)

	var runID int64
	if s.DB != nil {
		label := r.URL.Query().Get("label")
		if label == "" {
			label = "api"
		}
		id, err := s.DB.SaveRun(label, res, profit.TotalProfit)
		if err != nil {
			slog.Error("run save failed", "error", err)
		} else {
			runID = id
		}
	}

	writeJSON(w, map[string]any{
		"run_id": runID,
		"result": res,
		"profit": profit,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("JSON encode failed", "error", err)
	}
}
