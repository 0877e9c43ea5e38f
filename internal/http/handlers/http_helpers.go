package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/princesinghgemini-dotcom/veto/internal/observability/logger"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any) {
	out, err := json.Marshal(data)
	if err != nil {
		logger.L().Error("failed to encode response", zap.Error(err))
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(out); err != nil {
		logger.L().Error("failed to write response", zap.Error(err))
	}
}

// uuidParam parses a UUID path parameter.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}

// serveCachedList writes a previously cached list response if one exists.
func serveCachedList(w http.ResponseWriter, key string) bool {
	if listCache == nil {
		return false
	}
	body, ok := listCache.Get(key)
	if !ok {
		return false
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(body); err != nil {
		logger.L().Error("failed to write cached response", zap.Error(err))
	}
	return true
}

// writeListJSON writes a list response and, when key is non-empty, stores
// the marshaled body for subsequent reads.
func writeListJSON(w http.ResponseWriter, key string, data any) {
	out, err := json.Marshal(data)
	if err != nil {
		logger.L().Error("failed to encode response", zap.Error(err))
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	if listCache != nil && key != "" {
		listCache.Set(key, out)
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(out); err != nil {
		logger.L().Error("failed to write response", zap.Error(err))
	}
}

// invalidateLists drops cached list responses after a mutation.
func invalidateLists(keys ...string) {
	if listCache == nil {
		return
	}
	for _, key := range keys {
		listCache.Delete(key)
	}
}
