// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// post.go provides a Valkey-backed cache of post documents keyed by post
// ID. The editor fetches the same post repeatedly while a session is open;
// caching the API's JSON reply skips those round trips. Entries are
// invalidated whenever this service writes the post back.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// postKeyPrefix is the Valkey key prefix for cached post documents.
	postKeyPrefix = "post:"

	// DefaultPostTTL is how long a fetched post stays cached.
	DefaultPostTTL = 5 * time.Minute
)

// PostCache stores raw post JSON as returned by the blog API.
type PostCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPostCache creates a post cache backed by the given Valkey client.
func NewPostCache(client *redis.Client, ttl time.Duration) *PostCache {
	if ttl == 0 {
		ttl = DefaultPostTTL
	}
	return &PostCache{client: client, ttl: ttl}
}

// Get retrieves the cached JSON for a post ID. A nil receiver always
// misses, so callers need no branch for the cache-disabled setup.
func (pc *PostCache) Get(ctx context.Context, id string) ([]byte, bool) {
	if pc == nil {
		return nil, false
	}
	val, err := pc.client.Get(ctx, postKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("post cache get error", "id", id, "error", err)
		return nil, false
	}
	slog.Debug("post cache hit", "id", id)
	return val, true
}

// Set stores a post's JSON with the configured TTL.
func (pc *PostCache) Set(ctx context.Context, id string, body []byte) {
	if pc == nil {
		return
	}
	if err := pc.client.Set(ctx, postKeyPrefix+id, body, pc.ttl).Err(); err != nil {
		slog.Warn("post cache set error", "id", id, "error", err)
	}
}

// Invalidate removes a post from the cache after a write-through.
func (pc *PostCache) Invalidate(ctx context.Context, id string) {
	if pc == nil {
		return
	}
	if err := pc.client.Del(ctx, postKeyPrefix+id).Err(); err != nil {
		slog.Warn("post cache invalidate error", "id", id, "error", err)
	}
	slog.Debug("post cache invalidated", "id", id)
}
