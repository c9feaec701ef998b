package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/basketmanager/stats-api/internal/directory"
	"github.com/basketmanager/stats-api/internal/logic"
	"github.com/basketmanager/stats-api/internal/models"
)

var validate = validator.New()

// ValidateStruct runs the validate tags of a request or record
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// Health check endpoint
// @Summary Health
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint
// @Summary Readiness
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /ready [get]
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	checks := make(map[string]bool, len(h.checks))
	allHealthy := true
	for name, check := range h.checks {
		err := check(ctx)
		checks[name] = err == nil
		if err != nil {
			allHealthy = false
			h.logger.Warnw("Readiness check failed", "store", name, "error", err)
		}
	}

	queueDepth := 0
	if h.queue != nil {
		queueDepth = h.queue.QueueDepth()
	}

	status := http.StatusOK
	if !allHealthy {
		status = http.StatusServiceUnavailable
	}
	h.jsonResponse(w, status, map[string]interface{}{
		"ready":      allHealthy,
		"checks":     checks,
		"queueDepth": queueDepth,
	})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Debugw("Failed to write response", "status", status, "error", err)
	}
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

// errorStatus maps a service error to its HTTP status
func errorStatus(err error) int {
	switch {
	case errors.Is(err, logic.ErrMatchNotFound), errors.Is(err, directory.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidEvent), errors.Is(err, models.ErrUnknownShotType):
		return http.StatusBadRequest
	case errors.Is(err, logic.ErrNotConvened):
		return http.StatusConflict
	case errors.Is(err, logic.ErrNotInPool), errors.Is(err, logic.ErrUnknownAthlete):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// serviceError writes err with its mapped status. Unexpected errors are
// logged and hidden behind msg.
func (h *Handler) serviceError(w http.ResponseWriter, err error, msg string, keysAndValues ...interface{}) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Errorw(msg, append(keysAndValues, "error", err)...)
		h.errorResponse(w, status, msg)
		return
	}
	h.errorResponse(w, status, err.Error())
}

// decodeBody reads a size-limited JSON body into dst and validates it.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := ValidateStruct(dst); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// sideParam reads an optional side from the query string.
func sideParam(r *http.Request) (models.Side, error) {
	side := models.Side(r.URL.Query().Get("side"))
	if side != "" && !models.ValidSide(side) {
		return "", fmt.Errorf("%w: side %q", models.ErrInvalidEvent, side)
	}
	return side, nil
}

func boolParam(r *http.Request, key string) bool {
	b, _ := strconv.ParseBool(r.URL.Query().Get(key))
	return b
}
