// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package blocks converts markdown source into the block-JSON representation
// stored by the blog API, and back. The converter is a pure, line-oriented
// parser with no I/O: every call receives an immutable string and returns a
// fresh block list, so instances never race and results never alias.
package blocks

// BlockType tags the semantic kind of a content block.
type BlockType string

const (
	BlockText       BlockType = "text"
	BlockHeading    BlockType = "heading"
	BlockImage      BlockType = "image"
	BlockTable      BlockType = "table"
	BlockList       BlockType = "list"
	BlockCode       BlockType = "code"
	BlockBlockquote BlockType = "blockquote"
)

// ContentBlock is one semantic unit of post content. Only the fields
// relevant to its Type are populated; RawContent always preserves the
// original markdown so the editor can reconstruct the source losslessly.
type ContentBlock struct {
	Type       BlockType `json:"type"`
	RawContent string    `json:"rawContent,omitempty"`

	// Text-bearing blocks (text, heading, blockquote, code).
	Text string `json:"text,omitempty"`

	// Inline formatting runs (text, heading, blockquote). Concatenating
	// the span texts in order reproduces Text exactly.
	FormattedContent []FormattedSpan `json:"formattedContent,omitempty"`

	// Heading depth 1-6.
	Level int `json:"level,omitempty"`

	// Image metadata.
	Alt string `json:"alt,omitempty"`
	Src string `json:"src,omitempty"`

	// Table cells.
	Headers []string   `json:"headers,omitempty"`
	Rows    [][]string `json:"rows,omitempty"`

	// List items.
	Items []string `json:"items,omitempty"`

	// Fenced code block language tag, possibly empty.
	Language string `json:"language,omitempty"`
}

// FormattedSpan is a contiguous run of text with a single formatting
// identity. Formatting delimiters are stripped from Text; they survive only
// in the owning block's RawContent.
type FormattedSpan struct {
	Text   string `json:"text"`
	Bold   bool   `json:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty"`
	Code   bool   `json:"code,omitempty"`
	Link   *Link  `json:"link,omitempty"`
}

// Link carries the target and display text of a link span.
type Link struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}
