package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

// decodeRequest parses and validates a JSON body into dst. An empty body
// is allowed: every request type works with its zero value.
func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			// empty body, zero-value request
			return h.validateRequest(w, dst)
		}
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return h.validateRequest(w, dst)
}

func (h *Handler) validateRequest(w http.ResponseWriter, dst interface{}) bool {
	if err := h.validator.Struct(dst); err != nil {
		h.logger.Infow("request validation failed", "error", err)
		h.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return false
	}
	return true
}
