package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/jusunglee/mds-go/pkg/mds"
)

// Handler handles HTTP requests
// It proxies each request straight through the MDS client; nothing is
// cached between requests
type Handler struct {
	client mds.Client
}

// NewHandler creates a new HTTP handler
func NewHandler(client mds.Client) *Handler {
	return &Handler{client: client}
}

// RegisterRoutes registers all routes
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.handleIndex).Methods("GET")
	r.HandleFunc("/trips", h.handleResource(h.client.GetTrips)).Methods("GET")
	r.HandleFunc("/status_changes", h.handleResource(h.client.GetStatusChanges)).Methods("GET")
	r.HandleFunc("/events", h.handleResource(h.client.GetEvents)).Methods("GET")
}

// Response wraps API responses
type Response struct {
	Data  []mds.Record `json:"data"`
	Count int          `json:"count"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"title":     "mds-go",
		"readme":    "Visit https://github.com/jusunglee/mds-go for more info",
		"resources": []string{mds.ResourceTrips, mds.ResourceStatusChanges, mds.ResourceEvents},
	}
	h.writeJSON(w, response)
}

// handleResource adapts one client query method into an HTTP handler
func (h *Handler) handleResource(fetch func(context.Context, mds.Query) ([]mds.Record, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := queryFromRequest(r)
		if err != nil {
			h.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}

		records, err := fetch(r.Context(), query)
		if err != nil {
			// the provider failed or misbehaved, not this gateway
			h.writeError(w, err.Error(), http.StatusBadGateway)
			return
		}
		if records == nil {
			records = []mds.Record{}
		}

		h.writeJSON(w, Response{Data: records, Count: len(records)})
	}
}

// queryFromRequest maps request query params onto an MDS query
func queryFromRequest(r *http.Request) (mds.Query, error) {
	var query mds.Query
	params := r.URL.Query()

	if s := params.Get("start_time"); s != "" {
		secs, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return query, fmt.Errorf("invalid start_time %q: expected UNIX seconds", s)
		}
		query.StartTime = time.Unix(secs, 0)
	}
	if s := params.Get("end_time"); s != "" {
		secs, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return query, fmt.Errorf("invalid end_time %q: expected UNIX seconds", s)
		}
		query.EndTime = time.Unix(secs, 0)
	}

	query.DeviceID = params.Get("device_id")
	query.VehicleID = params.Get("vehicle_id")
	query.BBox = params.Get("bbox")

	return query, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.writeError(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}
