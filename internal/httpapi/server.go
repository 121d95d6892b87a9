// Package httpapi exposes the scan pipeline over HTTP. Document decoding
// stays upstream: the endpoint accepts plain text only.
package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"skillscout/internal/pipeline"
)

// ScanRunner runs one scan over extracted document text.
type ScanRunner interface {
	Run(ctx context.Context, text string) (*pipeline.Result, error)
}

// Server handles the JSON API.
type Server struct {
	pipe   ScanRunner
	logger *slog.Logger
}

// New creates an API server around the given pipeline.
func New(pipe ScanRunner, logger *slog.Logger) *Server {
	return &Server{pipe: pipe, logger: logger}
}

// Routes builds the request mux.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/scan", s.handleScan)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

// Start blocks serving the API on addr.
func (s *Server) Start(addr string) error {
	s.logger.Info("api listening", "addr", addr)
	return http.ListenAndServe(addr, s.Routes())
}

type scanRequest struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if req.Text == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "text must not be empty"})
		return
	}

	result, err := s.pipe.Run(r.Context(), req.Text)
	if err != nil {
		s.logger.Error("scan failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
