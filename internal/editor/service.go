// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package editor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"inkpress/internal/blocks"
	"inkpress/internal/blogapi"
	"inkpress/internal/cache"
)

// ErrInvalidDraft marks validation failures so handlers can answer 400
// instead of 502.
var ErrInvalidDraft = errors.New("invalid draft")

// Service runs the editor workflows against the blog API. postCache may be
// nil when no Valkey is configured.
type Service struct {
	client    *blogapi.Client
	postCache *cache.PostCache
}

// NewService creates an editor service.
func NewService(client *blogapi.Client, postCache *cache.PostCache) *Service {
	return &Service{client: client, postCache: postCache}
}

// Load fetches a post and reconstructs the editable markdown for each
// section from its stored blocks, preferring cached post JSON when present.
func (s *Service) Load(ctx context.Context, token, id string) (*Draft, error) {
	post, err := s.fetchPost(ctx, token, id)
	if err != nil {
		return nil, err
	}
	return DraftFromPost(post), nil
}

// DraftFromPost rebuilds the editable markdown sections from a post's
// stored blocks.
func DraftFromPost(post *blogapi.Post) *Draft {
	return &Draft{
		ID:         uuid.New(),
		RemoteID:   post.ID,
		Title:      post.Title,
		Category:   post.Category,
		CoverImage: post.CoverImage,
		Body:       blocks.BlocksToMarkdown(post.Content),
		Conclusion: blocks.BlocksToMarkdown(post.Conclusion),
	}
}

// Submit validates the draft, converts its markdown sections to block JSON,
// and creates or updates the post through the API. The converted post comes
// back with the server's view of it, including the assigned ID on create.
func (s *Service) Submit(ctx context.Context, token string, d *Draft) (*blogapi.Post, error) {
	if msg := validateDraft(d); msg != "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDraft, msg)
	}

	post := &blogapi.Post{
		ID:         d.RemoteID,
		Title:      d.Title,
		Category:   d.Category,
		CoverImage: d.CoverImage,
		Content:    blocks.ParseContent(d.Body),
		Conclusion: blocks.ParseContent(d.Conclusion),
	}

	var saved *blogapi.Post
	var err error
	if d.RemoteID == "" {
		saved, err = s.client.CreatePost(ctx, token, post)
	} else {
		saved, err = s.client.UpdatePost(ctx, token, d.RemoteID, post)
	}
	if err != nil {
		return nil, err
	}

	s.postCache.Invalidate(ctx, saved.ID)
	slog.Info("post saved",
		"id", saved.ID,
		"title", saved.Title,
		"blocks", len(saved.Content),
	)
	return saved, nil
}

// Publish flips a stored post to published state.
func (s *Service) Publish(ctx context.Context, token, id string) (*blogapi.Post, error) {
	post, err := s.client.PublishPost(ctx, token, id)
	if err != nil {
		return nil, err
	}
	s.postCache.Invalidate(ctx, id)
	slog.Info("post published", "id", id)
	return post, nil
}

// Delete removes a stored post.
func (s *Service) Delete(ctx context.Context, token, id string) error {
	if err := s.client.DeletePost(ctx, token, id); err != nil {
		return err
	}
	s.postCache.Invalidate(ctx, id)
	return nil
}

// List fetches the posts visible to the caller.
func (s *Service) List(ctx context.Context, token string) ([]blogapi.Post, error) {
	return s.client.ListPosts(ctx, token)
}

// Get fetches one post, read-through cached.
func (s *Service) Get(ctx context.Context, token, id string) (*blogapi.Post, error) {
	return s.fetchPost(ctx, token, id)
}

// Upload forwards a file to the remote upload endpoint and returns its URL.
func (s *Service) Upload(ctx context.Context, token, folder, filename string, file io.Reader) (string, error) {
	return s.client.Upload(ctx, token, folder, filename, file)
}

func (s *Service) fetchPost(ctx context.Context, token, id string) (*blogapi.Post, error) {
	if body, ok := s.postCache.Get(ctx, id); ok {
		var post blogapi.Post
		if err := json.Unmarshal(body, &post); err == nil {
			return &post, nil
		}
		// Corrupt entry: fall through to the API and replace it.
		s.postCache.Invalidate(ctx, id)
	}

	post, err := s.client.GetPost(ctx, token, id)
	if err != nil {
		return nil, err
	}

	if body, err := json.Marshal(post); err == nil {
		s.postCache.Set(ctx, id, body)
	}
	return post, nil
}
