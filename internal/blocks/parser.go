// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blocks

import (
	"regexp"
	"strings"
)

var (
	imageRe   = regexp.MustCompile(`^!\[(.*?)\]\((.*?)\)$`)
	headingRe = regexp.MustCompile(`^(#{1,6}) (.+)$`)
)

// ParseContent converts a markdown document into its ordered block
// representation. Lines are classified one at a time against a fixed
// priority (fence, blank, blockquote, image, table row, list item, heading,
// plain text); at most one multi-line accumulator (paragraph, list, table or
// code fence) is open at any point, and opening a new one flushes whichever
// was open. A fence left unterminated at end of input emits nothing.
//
// The returned slice is never nil: an empty document yields an empty list,
// which marshals as JSON [] inside post payloads.
func ParseContent(markdown string) []ContentBlock {
	p := &parser{blocks: []ContentBlock{}}
	if markdown == "" {
		return p.blocks
	}

	for _, raw := range strings.Split(markdown, "\n") {
		p.feed(raw)
	}
	p.finish()

	return p.blocks
}

// parser holds the transient accumulator state for one ParseContent call.
type parser struct {
	blocks []ContentBlock

	// Paragraph accumulator. paraSpans is recomputed over the whole
	// accumulated text on every appended line, not incrementally.
	paraLines []string
	paraSpans []FormattedSpan

	// List accumulator.
	listItems []string
	listRaw   []string

	// Table accumulator.
	tableRows [][]string
	tableRaw  []string

	// Fenced code accumulator.
	inCode    bool
	codeLang  string
	codeOpen  string
	codeLines []string
}

func (p *parser) feed(raw string) {
	line := strings.TrimSpace(raw)

	// Inside a fence every line belongs to the code body verbatim until the
	// closing delimiter, including blank lines.
	if p.inCode {
		if strings.HasPrefix(line, "```") {
			p.emitCode(line)
			return
		}
		p.codeLines = append(p.codeLines, raw)
		return
	}

	if strings.HasPrefix(line, "```") {
		p.flushParagraph()
		p.flushList()
		p.flushTable()
		p.inCode = true
		p.codeOpen = line
		p.codeLang = strings.TrimSpace(strings.TrimPrefix(line, "```"))
		p.codeLines = nil
		return
	}

	if line == "" {
		p.flushParagraph()
		p.flushList()
		p.flushTable()
		return
	}

	if content, ok := strings.CutPrefix(line, "> "); ok {
		p.flushParagraph()
		p.flushList()
		p.flushTable()
		p.blocks = append(p.blocks, ContentBlock{
			Type:             BlockBlockquote,
			RawContent:       line,
			Text:             content,
			FormattedContent: ParseFormattedText(content),
		})
		return
	}

	if m := imageRe.FindStringSubmatch(line); m != nil {
		p.flushParagraph()
		p.flushList()
		p.flushTable()
		p.blocks = append(p.blocks, ContentBlock{
			Type:       BlockImage,
			RawContent: line,
			Alt:        m[1],
			Src:        m[2],
		})
		return
	}

	if strings.Contains(line, "|") {
		if isTableSeparator(line) {
			// "|---|---|" rows delimit header from body; they carry no
			// cells but keep the table open.
			if len(p.tableRows) > 0 {
				p.tableRaw = append(p.tableRaw, line)
				return
			}
		} else {
			p.flushParagraph()
			p.flushList()
			p.tableRows = append(p.tableRows, splitTableRow(line))
			p.tableRaw = append(p.tableRaw, line)
			return
		}
	}

	if item, ok := cutListMarker(line); ok {
		p.flushParagraph()
		p.flushTable()
		p.listItems = append(p.listItems, item)
		p.listRaw = append(p.listRaw, line)
		return
	}

	if m := headingRe.FindStringSubmatch(line); m != nil {
		p.flushParagraph()
		p.flushList()
		p.flushTable()
		p.blocks = append(p.blocks, ContentBlock{
			Type:             BlockHeading,
			RawContent:       line,
			Text:             m[2],
			FormattedContent: ParseFormattedText(m[2]),
			Level:            len(m[1]),
		})
		return
	}

	// Plain text. While a list is open, a plain line soft-wraps onto the
	// previous item rather than starting a paragraph.
	if len(p.listItems) > 0 {
		p.listItems[len(p.listItems)-1] += " " + line
		p.listRaw = append(p.listRaw, line)
		return
	}
	p.flushTable()

	p.paraLines = append(p.paraLines, line)
	p.paraSpans = ParseFormattedText(strings.Join(p.paraLines, "\n"))
}

// finish flushes any still-open accumulator at end of input. An open code
// fence is dropped, not flushed.
func (p *parser) finish() {
	if p.inCode {
		p.inCode = false
		p.codeLines = nil
		return
	}
	p.flushParagraph()
	p.flushList()
	p.flushTable()
}

func (p *parser) flushParagraph() {
	if len(p.paraLines) == 0 {
		return
	}
	text := strings.Join(p.paraLines, "\n")
	p.blocks = append(p.blocks, ContentBlock{
		Type:             BlockText,
		RawContent:       text,
		Text:             text,
		FormattedContent: p.paraSpans,
	})
	p.paraLines = nil
	p.paraSpans = nil
}

func (p *parser) flushList() {
	if len(p.listItems) == 0 {
		return
	}
	p.blocks = append(p.blocks, ContentBlock{
		Type:       BlockList,
		RawContent: strings.Join(p.listRaw, "\n"),
		Items:      p.listItems,
	})
	p.listItems = nil
	p.listRaw = nil
}

func (p *parser) flushTable() {
	if len(p.tableRows) == 0 {
		return
	}
	block := ContentBlock{
		Type:       BlockTable,
		RawContent: strings.Join(p.tableRaw, "\n"),
		Headers:    p.tableRows[0],
	}
	if len(p.tableRows) > 1 {
		block.Rows = p.tableRows[1:]
	}
	p.blocks = append(p.blocks, block)
	p.tableRows = nil
	p.tableRaw = nil
}

func (p *parser) emitCode(closing string) {
	body := strings.Join(p.codeLines, "\n")
	parts := []string{p.codeOpen}
	if len(p.codeLines) > 0 {
		parts = append(parts, body)
	}
	parts = append(parts, closing)

	p.blocks = append(p.blocks, ContentBlock{
		Type:       BlockCode,
		RawContent: strings.Join(parts, "\n"),
		Text:       body,
		Language:   p.codeLang,
	})

	p.inCode = false
	p.codeLang = ""
	p.codeOpen = ""
	p.codeLines = nil
}

// isTableSeparator reports whether a line is purely table separator
// punctuation: dashes, pipes and whitespace.
func isTableSeparator(line string) bool {
	for _, r := range line {
		switch r {
		case '-', '|', ' ', '\t':
		default:
			return false
		}
	}
	return true
}

// splitTableRow splits a table line on pipes, trims each cell, and drops the
// empty leading/trailing cells produced by boundary pipes.
func splitTableRow(line string) []string {
	parts := strings.Split(line, "|")
	for i, cell := range parts {
		parts[i] = strings.TrimSpace(cell)
	}
	if len(parts) > 0 && parts[0] == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// cutListMarker strips a leading list marker ("- ", "* " or "+ ") from a
// trimmed line, reporting whether one was present.
func cutListMarker(line string) (string, bool) {
	for _, marker := range []string{"- ", "* ", "+ "} {
		if item, ok := strings.CutPrefix(line, marker); ok {
			return item, true
		}
	}
	return "", false
}
