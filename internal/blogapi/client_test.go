// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blogapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inkpress/internal/blocks"
)

// newTestServer creates an httptest.Server that records the last request
// and replies with the given status and body. The caller must Close it.
func newTestServer(t *testing.T, status int, body []byte, lastReq **http.Request) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if lastReq != nil {
			clone := r.Clone(r.Context())
			if err := r.ParseMultipartForm(1 << 20); err == nil {
				clone.MultipartForm = r.MultipartForm
			}
			*lastReq = clone
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write(body)
	}))
}

func postBody(t *testing.T, p Post) []byte {
	t.Helper()
	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal post: %v", err)
	}
	return b
}

// TestGetPost verifies path, auth header, and payload decoding including
// the embedded block JSON.
func TestGetPost(t *testing.T) {
	want := Post{
		ID:    "p1",
		Title: "Hello",
		Content: []blocks.ContentBlock{
			{Type: blocks.BlockHeading, RawContent: "# Hello", Text: "Hello", Level: 1},
		},
		Conclusion: []blocks.ContentBlock{},
	}

	var got *http.Request
	srv := newTestServer(t, http.StatusOK, postBody(t, want), &got)
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL, Token: "service-token"})
	post, err := c.GetPost(context.Background(), "", "p1")
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}

	if got.URL.Path != "/posts/p1" {
		t.Errorf("path = %q, want /posts/p1", got.URL.Path)
	}
	if auth := got.Header.Get("Authorization"); auth != "Bearer service-token" {
		t.Errorf("Authorization = %q, want service token fallback", auth)
	}
	if post.Title != "Hello" || len(post.Content) != 1 || post.Content[0].Level != 1 {
		t.Errorf("decoded post = %+v", post)
	}
}

// TestCallerTokenOverridesServiceToken verifies that a per-call token wins
// over the configured one.
func TestCallerTokenOverridesServiceToken(t *testing.T) {
	var got *http.Request
	srv := newTestServer(t, http.StatusOK, []byte(`[]`), &got)
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL, Token: "service-token"})
	if _, err := c.ListPosts(context.Background(), "Bearer caller-token"); err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}

	if auth := got.Header.Get("Authorization"); auth != "Bearer caller-token" {
		t.Errorf("Authorization = %q, want caller token", auth)
	}
}

// TestCreatePost verifies method, JSON body round trip, and content type.
func TestCreatePost(t *testing.T) {
	reply := Post{ID: "assigned", Title: "New"}

	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(r.Context())
		var in Post
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if in.Title != "New" || len(in.Content) != 1 {
			t.Errorf("request post = %+v", in)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(reply)
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL})
	out, err := c.CreatePost(context.Background(), "tok", &Post{
		Title:   "New",
		Content: []blocks.ContentBlock{{Type: blocks.BlockText, Text: "body"}},
	})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	if got.Method != http.MethodPost || got.URL.Path != "/posts" {
		t.Errorf("request = %s %s, want POST /posts", got.Method, got.URL.Path)
	}
	if ct := got.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if out.ID != "assigned" {
		t.Errorf("returned ID = %q, want server-assigned", out.ID)
	}
}

// TestPublishPost verifies the publish action path.
func TestPublishPost(t *testing.T) {
	var got *http.Request
	srv := newTestServer(t, http.StatusOK, postBody(t, Post{ID: "p1", Status: PostStatusPublished}), &got)
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL})
	post, err := c.PublishPost(context.Background(), "tok", "p1")
	if err != nil {
		t.Fatalf("PublishPost failed: %v", err)
	}

	if got.Method != http.MethodPost || got.URL.Path != "/posts/p1/publish" {
		t.Errorf("request = %s %s, want POST /posts/p1/publish", got.Method, got.URL.Path)
	}
	if !post.IsPublished() {
		t.Errorf("post status = %q, want published", post.Status)
	}
}

// TestNotFound verifies the sentinel for 404s.
func TestNotFound(t *testing.T) {
	srv := newTestServer(t, http.StatusNotFound, []byte(`{"error":"gone"}`), nil)
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL})
	if _, err := c.GetPost(context.Background(), "tok", "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetPost error = %v, want ErrNotFound", err)
	}
	if err := c.DeletePost(context.Background(), "tok", "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeletePost error = %v, want ErrNotFound", err)
	}
}

// TestServerError verifies that non-2xx responses surface status and body.
func TestServerError(t *testing.T) {
	srv := newTestServer(t, http.StatusBadGateway, []byte("upstream down"), nil)
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL})
	_, err := c.ListPosts(context.Background(), "tok")
	if err == nil {
		t.Fatal("ListPosts succeeded on a 502")
	}
	if !strings.Contains(err.Error(), "502") || !strings.Contains(err.Error(), "upstream down") {
		t.Errorf("error = %v, want status and body included", err)
	}
}

// TestUpload verifies the multipart request shape and URL extraction.
func TestUpload(t *testing.T) {
	var got *http.Request
	srv := newTestServer(t, http.StatusOK, []byte(`{"url":"https://cdn.example.com/blog/x.png"}`), &got)
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL})
	url, err := c.Upload(context.Background(), "tok", "blog-images", "x.png", strings.NewReader("fake-bytes"))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if url != "https://cdn.example.com/blog/x.png" {
		t.Errorf("url = %q", url)
	}
	if got.URL.Path != "/upload" {
		t.Errorf("path = %q, want /upload", got.URL.Path)
	}
	if got.MultipartForm == nil {
		t.Fatal("request was not multipart")
	}
	if folders := got.MultipartForm.Value["folder"]; len(folders) != 1 || folders[0] != "blog-images" {
		t.Errorf("folder field = %v", got.MultipartForm.Value["folder"])
	}
	files := got.MultipartForm.File["file"]
	if len(files) != 1 || files[0].Filename != "x.png" {
		t.Errorf("file part = %+v", files)
	}
}

// TestUploadRejectsEmptyURL verifies that a malformed upload reply fails
// instead of splicing an empty image source into the editor.
func TestUploadRejectsEmptyURL(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, []byte(`{}`), nil)
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL})
	if _, err := c.Upload(context.Background(), "tok", "f", "a.png", strings.NewReader("x")); err == nil {
		t.Fatal("Upload succeeded with empty url")
	}
}
