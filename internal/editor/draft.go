// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package editor implements the authoring workflows: loading a stored post
// back into markdown, validating and submitting drafts, and publishing.
// Conversion between markdown and block JSON happens here, synchronously at
// submit time, after any pending uploads have been spliced into the text.
package editor

import (
	"fmt"

	"github.com/google/uuid"
)

// Draft is the in-progress post as the editor form sees it: markdown per
// section plus metadata. It carries a client-side UUID until the remote API
// assigns a durable ID on first save.
type Draft struct {
	ID         uuid.UUID `json:"id"`
	RemoteID   string    `json:"remote_id,omitempty"`
	Title      string    `json:"title"`
	Category   string    `json:"category,omitempty"`
	CoverImage string    `json:"coverImage,omitempty"`
	Body       string    `json:"body"`
	Conclusion string    `json:"conclusion,omitempty"`
}

// NewDraft creates an empty draft with a fresh client-side identity.
func NewDraft() *Draft {
	return &Draft{ID: uuid.New()}
}

// ImageMarkdown builds the image snippet spliced into the editor text after
// an upload resolves to a URL.
func ImageMarkdown(alt, url string) string {
	if alt == "" {
		alt = "image"
	}
	return fmt.Sprintf("![%s](%s)", alt, url)
}
