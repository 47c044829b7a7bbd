// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blocks

import (
	"regexp"
	"sort"
	"strings"
)

// Inline formatting patterns. Each is matched independently over the whole
// string; overlap between pattern classes is resolved after the fact by
// offset order (see ParseFormattedText).
var (
	boldRe   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe = regexp.MustCompile(`\*([^*]+?)\*`)
	codeRe   = regexp.MustCompile("`([^`]+?)`")
	linkRe   = regexp.MustCompile(`\[([^\]]+?)\]\(([^)]+?)\)`)
)

// inlineMatch records one pattern hit tagged with its position in the input.
type inlineMatch struct {
	start int
	end   int
	span  FormattedSpan
}

// ParseFormattedText decomposes a plain string into formatting runs. All
// four inline patterns (bold, italic, code, link) are collected across the
// whole input, sorted by start offset, and emitted left to right with
// unformatted gap spans between them. Matches that begin inside an already
// emitted span are skipped, so concatenating the span texts always
// reproduces the input with the matched delimiters stripped.
//
// Input with no markers comes back as a single unformatted span; the result
// is never empty for non-empty input.
func ParseFormattedText(text string) []FormattedSpan {
	var matches []inlineMatch

	for _, m := range boldRe.FindAllStringSubmatchIndex(text, -1) {
		matches = append(matches, inlineMatch{
			start: m[0],
			end:   m[1],
			span:  FormattedSpan{Text: text[m[2]:m[3]], Bold: true},
		})
	}
	for _, m := range italicRe.FindAllStringSubmatchIndex(text, -1) {
		matches = append(matches, inlineMatch{
			start: m[0],
			end:   m[1],
			span:  FormattedSpan{Text: text[m[2]:m[3]], Italic: true},
		})
	}
	for _, m := range codeRe.FindAllStringSubmatchIndex(text, -1) {
		matches = append(matches, inlineMatch{
			start: m[0],
			end:   m[1],
			span:  FormattedSpan{Text: text[m[2]:m[3]], Code: true},
		})
	}
	for _, m := range linkRe.FindAllStringSubmatchIndex(text, -1) {
		label := text[m[2]:m[3]]
		matches = append(matches, inlineMatch{
			start: m[0],
			end:   m[1],
			span: FormattedSpan{
				Text: label,
				Link: &Link{URL: text[m[4]:m[5]], Text: label},
			},
		})
	}

	if len(matches) == 0 {
		return []FormattedSpan{{Text: text}}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].start < matches[j].start
	})

	spans := make([]FormattedSpan, 0, len(matches)*2+1)
	pos := 0
	for _, m := range matches {
		if m.start < pos {
			// Overlaps the previous match (e.g. the italic pattern firing
			// inside "**bold**"); first match wins.
			continue
		}
		if m.start > pos {
			spans = append(spans, FormattedSpan{Text: text[pos:m.start]})
		}
		spans = append(spans, m.span)
		pos = m.end
	}
	if pos < len(text) {
		spans = append(spans, FormattedSpan{Text: text[pos:]})
	}

	return spans
}

// PlainText concatenates the span texts in order, recovering the block's
// plain text with formatting delimiters stripped.
func PlainText(spans []FormattedSpan) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}
