// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blogapi

import (
	"time"

	"inkpress/internal/blocks"
)

// PostStatus is the publishing state reported by the blog API.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
)

// Post is the blog document exchanged with the remote API. The body and
// closing sections are stored as block JSON under the content and
// conclusion keys; markdown never crosses the wire.
type Post struct {
	ID         string                `json:"id,omitempty"`
	Title      string                `json:"title"`
	Category   string                `json:"category,omitempty"`
	CoverImage string                `json:"coverImage,omitempty"`
	Status     PostStatus            `json:"status,omitempty"`
	Author     string                `json:"author,omitempty"`
	Content    []blocks.ContentBlock `json:"content"`
	Conclusion []blocks.ContentBlock `json:"conclusion"`
	CreatedAt  *time.Time            `json:"created_at,omitempty"`
	UpdatedAt  *time.Time            `json:"updated_at,omitempty"`
}

// IsPublished returns true if the post is in published status.
func (p *Post) IsPublished() bool {
	return p.Status == PostStatusPublished
}
