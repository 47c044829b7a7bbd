// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package preview renders the editor's live preview pane: the markdown
// currently in the form, as HTML. This is editor tooling only — published
// posts are rendered by the platform from their stored blocks, never here.
package preview

import (
	"bytes"
	"fmt"

	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// DefaultStyle is the syntax highlighting theme for fenced code blocks.
const DefaultStyle = "monokai"

// Renderer converts markdown to preview HTML. Build one with New and reuse
// it; the underlying engine is stateless across Render calls.
type Renderer struct {
	md goldmark.Markdown
}

// New creates a renderer with GFM extensions (tables, strikethrough,
// autolinks) and fenced-code highlighting in the given style. An empty
// style selects DefaultStyle.
func New(style string) *Renderer {
	if style == "" {
		style = DefaultStyle
	}
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle(style),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
	}
}

// Render converts markdown source into preview HTML.
func (r *Renderer) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render preview: %w", err)
	}
	return buf.String(), nil
}
