package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/eugenenazirov/fuelcalc/internal/fuel"
	"github.com/eugenenazirov/fuelcalc/internal/storage"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Handler wires the mass storage into HTTP handlers. The fuel arithmetic
// itself is pure and needs no injection.
type Handler struct {
	storage storage.Storage

	clock func() time.Time

	mu              sync.RWMutex
	massesUpdatedAt time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(store storage.Storage, opts ...HandlerOption) *Handler {
	h := &Handler{
		storage: store,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.massesUpdatedAt = h.clock()
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetMasses(w http.ResponseWriter, r *http.Request) {
	_ = r
	masses, err := h.storage.GetMasses()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	resp := massesResponse{
		Masses:    intsFromMasses(masses),
		Count:     len(masses),
		UpdatedAt: h.currentMassesUpdatedAt(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePutMasses(w http.ResponseWriter, r *http.Request) {
	var req massesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	if len(req.Masses) == 0 {
		writeError(w, http.StatusBadRequest, "Invalid masses", "masses must contain at least one value")
		return
	}

	if err := h.storage.SetMasses(massesFromInts(req.Masses)); err != nil {
		if errors.Is(err, storage.ErrNoMasses) {
			writeError(w, http.StatusBadRequest, "Invalid masses", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	h.markMassesUpdated()

	masses, err := h.storage.GetMasses()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	resp := massesResponse{
		Masses:    intsFromMasses(masses),
		Count:     len(masses),
		UpdatedAt: h.currentMassesUpdatedAt(),
		Message:   "Masses updated successfully",
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	masses := massesFromInts(req.Masses)
	if len(masses) == 0 {
		stored, err := h.storage.GetMasses()
		if err != nil {
			writeInternalError(w, err)
			return
		}
		masses = stored
	}

	if len(masses) == 0 {
		suggestion := "Supply masses in the request body or load them via PUT /api/masses first"
		writeError(w, http.StatusBadRequest, "No masses to calculate", "mass list is empty", suggestion)
		return
	}

	start := time.Now()
	report := fuel.Summarize(masses)
	elapsed := time.Since(start)

	resp := calculateResponse{
		Masses:            report.Masses,
		Fuel:              int64(report.Direct),
		TotalFuel:         int64(report.Total),
		CalculationTimeMs: elapsed.Milliseconds(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) currentMassesUpdatedAt() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.massesUpdatedAt
}

func (h *Handler) markMassesUpdated() {
	h.mu.Lock()
	h.massesUpdatedAt = h.clock()
	h.mu.Unlock()
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

func massesFromInts(values []int64) []fuel.Mass {
	if len(values) == 0 {
		return nil
	}
	masses := make([]fuel.Mass, len(values))
	for i, v := range values {
		masses[i] = fuel.Mass(v)
	}
	return masses
}

func intsFromMasses(masses []fuel.Mass) []int64 {
	values := make([]int64, len(masses))
	for i, m := range masses {
		values[i] = int64(m)
	}
	return values
}

type massesRequest struct {
	Masses []int64 `json:"masses"`
}

type calculateRequest struct {
	Masses []int64 `json:"masses"`
}

type calculateResponse struct {
	Masses            int   `json:"masses"`
	Fuel              int64 `json:"fuel"`
	TotalFuel         int64 `json:"totalFuel"`
	CalculationTimeMs int64 `json:"calculationTimeMs"`
}

type massesResponse struct {
	Masses    []int64   `json:"masses"`
	Count     int       `json:"count"`
	UpdatedAt time.Time `json:"updatedAt"`
	Message   string    `json:"message,omitempty"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
