// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package importer reads markdown files with YAML frontmatter into editor
// drafts, so existing posts can be pushed to the platform from the command
// line instead of retyped in the browser.
package importer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/adrg/frontmatter"

	"inkpress/internal/editor"
)

// conclusionMarker splits a file's body from its optional conclusion
// section, which the platform stores as a separate block list.
const conclusionMarker = "<!-- conclusion -->"

// FrontMatter is the metadata accepted at the top of an import file. All
// fields are optional except title.
type FrontMatter struct {
	Title      string `yaml:"title"`
	Category   string `yaml:"category"`
	CoverImage string `yaml:"cover"`
	RemoteID   string `yaml:"id"`
}

// ParseFile reads a markdown file into a draft ready for editor.Submit.
func ParseFile(path string) (*editor.Draft, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	draft, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return draft, nil
}

// Parse reads frontmatter plus markdown body from r. Content after the
// conclusion marker becomes the draft's conclusion section.
func Parse(r io.Reader) (*editor.Draft, error) {
	var meta FrontMatter
	body, err := frontmatter.Parse(r, &meta)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	if strings.TrimSpace(meta.Title) == "" {
		return nil, fmt.Errorf("frontmatter title is required")
	}

	draft := editor.NewDraft()
	draft.RemoteID = meta.RemoteID
	draft.Title = meta.Title
	draft.Category = meta.Category
	draft.CoverImage = meta.CoverImage

	text := strings.TrimSpace(string(body))
	if main, rest, found := strings.Cut(text, conclusionMarker); found {
		draft.Body = strings.TrimSpace(main)
		draft.Conclusion = strings.TrimSpace(rest)
	} else {
		draft.Body = text
	}

	return draft, nil
}
