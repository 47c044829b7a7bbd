// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"inkpress/internal/editor"
)

// ListPosts returns the posts visible to the caller.
func (a *API) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := a.svc.List(r.Context(), bearerToken(r))
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

// GetPost returns one post both ways: the stored blocks as the API holds
// them, and a draft with the markdown reconstructed from those blocks.
func (a *API) GetPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	post, err := a.svc.Get(r.Context(), bearerToken(r), id)
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"post":  post,
		"draft": editor.DraftFromPost(post),
	})
}

// CreatePost converts a draft's markdown sections to blocks and creates the
// post through the blog API.
func (a *API) CreatePost(w http.ResponseWriter, r *http.Request) {
	var draft editor.Draft
	if err := decodeJSON(w, r, &draft); err != nil {
		writeError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}
	draft.RemoteID = ""

	post, err := a.svc.Submit(r.Context(), bearerToken(r), &draft)
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

// UpdatePost converts a draft's markdown sections to blocks and updates the
// stored post.
func (a *API) UpdatePost(w http.ResponseWriter, r *http.Request) {
	var draft editor.Draft
	if err := decodeJSON(w, r, &draft); err != nil {
		writeError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}
	draft.RemoteID = chi.URLParam(r, "id")

	post, err := a.svc.Submit(r.Context(), bearerToken(r), &draft)
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// DeletePost removes a stored post.
func (a *API) DeletePost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := a.svc.Delete(r.Context(), bearerToken(r), id); err != nil {
		writeAPIError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PublishPost flips a stored post to published state.
func (a *API) PublishPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	post, err := a.svc.Publish(r.Context(), bearerToken(r), id)
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}
