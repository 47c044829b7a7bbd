// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package blogapi is the typed HTTP client for the platform's REST API,
// which owns all persistence, authentication enforcement and search. This
// service forwards the editor's bearer token on every call and treats any
// non-2xx response as an error; it never retries.
package blogapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNotFound reports a 404 from the blog API, typically a post ID that
// was deleted from another session.
var ErrNotFound = errors.New("blog api: not found")

// Config holds the connection settings for the blog API.
type Config struct {
	// BaseURL is the API root, e.g. "https://api.example.com/v1".
	BaseURL string

	// Token is the service bearer token used when a call does not carry
	// a caller token of its own.
	Token string

	// Timeout bounds each request; zero means DefaultTimeout.
	Timeout time.Duration
}

// DefaultTimeout bounds blog API calls that carry no explicit deadline.
const DefaultTimeout = 30 * time.Second

// Client talks to the blog API. It is safe for concurrent use.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// New creates a blog API client from the given config.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		client:  &http.Client{Timeout: timeout},
	}
}

// ListPosts fetches all posts visible to the caller.
func (c *Client) ListPosts(ctx context.Context, token string) ([]Post, error) {
	var out []Post
	if err := c.doJSON(ctx, token, http.MethodGet, "/posts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPost fetches one post by ID.
func (c *Client) GetPost(ctx context.Context, token, id string) (*Post, error) {
	var out Post
	if err := c.doJSON(ctx, token, http.MethodGet, "/posts/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePost stores a new post and returns it with the server-assigned ID.
func (c *Client) CreatePost(ctx context.Context, token string, post *Post) (*Post, error) {
	var out Post
	if err := c.doJSON(ctx, token, http.MethodPost, "/posts", post, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePost replaces an existing post's document.
func (c *Client) UpdatePost(ctx context.Context, token, id string, post *Post) (*Post, error) {
	var out Post
	if err := c.doJSON(ctx, token, http.MethodPut, "/posts/"+id, post, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePost removes a post.
func (c *Client) DeletePost(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, token, http.MethodDelete, "/posts/"+id, nil, nil)
}

// PublishPost flips a post to published state on the server.
func (c *Client) PublishPost(ctx context.Context, token, id string) (*Post, error) {
	var out Post
	if err := c.doJSON(ctx, token, http.MethodPost, "/posts/"+id+"/publish", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// doJSON performs one API round trip: marshal in (when non-nil), send with
// auth headers, check the status, decode into out (when non-nil).
func (c *Client) doJSON(ctx context.Context, token, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("blog api marshal: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("blog api request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req, token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("blog api http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("blog api read body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("blog api %s %s: status %d: %s", method, path, resp.StatusCode, string(respBody))
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("blog api unmarshal: %w", err)
		}
	}
	return nil
}

// authorize attaches the caller's bearer token, falling back to the
// configured service token. Tokens are opaque here; the API enforces them.
func (c *Client) authorize(req *http.Request, token string) {
	if token == "" {
		token = c.token
	}
	if token != "" {
		if !strings.HasPrefix(token, "Bearer ") {
			token = "Bearer " + token
		}
		req.Header.Set("Authorization", token)
	}
}
