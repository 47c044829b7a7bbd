// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the InkPress editor API.
// Handlers are grouped on the API struct and receive their dependencies
// through it. All endpoints speak JSON; the caller's Authorization header is
// forwarded verbatim to the remote blog API.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"inkpress/internal/blogapi"
	"inkpress/internal/editor"
	"inkpress/internal/preview"
)

// maxRequestBody caps JSON request bodies for the conversion endpoints (2 MB).
const maxRequestBody = 2 << 20

// API groups the editor API handlers and their dependencies.
type API struct {
	svc          *editor.Service
	renderer     *preview.Renderer
	uploadFolder string
}

// NewAPI creates the handler group for the editor API.
func NewAPI(svc *editor.Service, renderer *preview.Renderer, uploadFolder string) *API {
	return &API{
		svc:          svc,
		renderer:     renderer,
		uploadFolder: uploadFolder,
	}
}

// Healthz reports liveness.
func (a *API) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// bearerToken returns the caller's Authorization header, empty when absent.
// The blog API client falls back to its configured service token then.
func bearerToken(r *http.Request) string {
	return r.Header.Get("Authorization")
}

// decodeJSON reads a size-limited JSON request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// writeError writes a JSON error body with the given status code.
func writeError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeAPIError maps service errors onto HTTP status codes.
func writeAPIError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, blogapi.ErrNotFound):
		writeError(w, "Post not found.", http.StatusNotFound)
	case errors.Is(err, editor.ErrInvalidDraft):
		writeError(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("blog api request failed", "error", err)
		writeError(w, "Upstream request failed.", http.StatusBadGateway)
	}
}
