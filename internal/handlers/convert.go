// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"inkpress/internal/blocks"
	"inkpress/internal/htmlmd"
)

// convertRequest is the body for markdown-in endpoints.
type convertRequest struct {
	Markdown string `json:"markdown"`
}

// reconstructRequest is the body for the block-JSON-in endpoint.
type reconstructRequest struct {
	Blocks []blocks.ContentBlock `json:"blocks"`
}

// importHTMLRequest is the body for the HTML import endpoint.
type importHTMLRequest struct {
	HTML string `json:"html"`
}

// Convert parses markdown into the block JSON the blog API stores.
func (a *API) Convert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"blocks": blocks.ParseContent(req.Markdown),
	})
}

// Reconstruct turns stored block JSON back into editable markdown.
func (a *API) Reconstruct(w http.ResponseWriter, r *http.Request) {
	var req reconstructRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"markdown": blocks.BlocksToMarkdown(req.Blocks),
	})
}

// Preview renders markdown to HTML for the editor's preview pane.
func (a *API) Preview(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	html, err := a.renderer.Render(req.Markdown)
	if err != nil {
		writeError(w, "Failed to render preview.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"html": html})
}

// ImportHTML converts pasted HTML into markdown and the equivalent blocks,
// so content migrated from other platforms lands directly in the editor.
func (a *API) ImportHTML(w http.ResponseWriter, r *http.Request) {
	var req importHTMLRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	markdown, err := htmlmd.Convert(req.HTML)
	if err != nil {
		writeError(w, "Failed to parse HTML.", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"markdown": markdown,
		"blocks":   blocks.ParseContent(markdown),
	})
}
