package blocks

import (
	"reflect"
	"testing"
)

// TestParseFormattedTextPlain verifies that strings without inline markers
// come back as a single unformatted span.
func TestParseFormattedTextPlain(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "simple sentence", in: "just some plain text"},
		{name: "punctuation", in: "no markers here: 1 + 2 = 3."},
		{name: "single word", in: "word"},
		{name: "unmatched bracket", in: "a [label without url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFormattedText(tt.in)
			want := []FormattedSpan{{Text: tt.in}}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("ParseFormattedText(%q) = %+v, want %+v", tt.in, got, want)
			}
		})
	}
}

// TestParseFormattedTextMarkers verifies each inline pattern in isolation
// and in combination, including the gap spans around matches.
func TestParseFormattedTextMarkers(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []FormattedSpan
	}{
		{
			name: "bold only",
			in:   "**strong**",
			want: []FormattedSpan{{Text: "strong", Bold: true}},
		},
		{
			name: "italic only",
			in:   "*slanted*",
			want: []FormattedSpan{{Text: "slanted", Italic: true}},
		},
		{
			name: "code only",
			in:   "`x := 1`",
			want: []FormattedSpan{{Text: "x := 1", Code: true}},
		},
		{
			name: "link only",
			in:   "[docs](https://example.com)",
			want: []FormattedSpan{{
				Text: "docs",
				Link: &Link{URL: "https://example.com", Text: "docs"},
			}},
		},
		{
			name: "bold mid-sentence",
			in:   "a **b** c",
			want: []FormattedSpan{
				{Text: "a "},
				{Text: "b", Bold: true},
				{Text: " c"},
			},
		},
		{
			name: "trailing plain text",
			in:   "`cmd` runs first",
			want: []FormattedSpan{
				{Text: "cmd", Code: true},
				{Text: " runs first"},
			},
		},
		{
			name: "mixed markers in offset order",
			in:   "*a* then **b** then [c](u)",
			want: []FormattedSpan{
				{Text: "a", Italic: true},
				{Text: " then "},
				{Text: "b", Bold: true},
				{Text: " then "},
				{Text: "c", Link: &Link{URL: "u", Text: "c"}},
			},
		},
		{
			name: "two links",
			in:   "[a](1) and [b](2)",
			want: []FormattedSpan{
				{Text: "a", Link: &Link{URL: "1", Text: "a"}},
				{Text: " and "},
				{Text: "b", Link: &Link{URL: "2", Text: "b"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFormattedText(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseFormattedText(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

// TestParseFormattedTextOverlap verifies that a match starting inside an
// already emitted span is skipped: the italic pattern fires inside "**b**"
// but the bold match, sorted first, wins.
func TestParseFormattedTextOverlap(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []FormattedSpan
	}{
		{
			name: "italic inside bold delimiters",
			in:   "**b**",
			want: []FormattedSpan{{Text: "b", Bold: true}},
		},
		{
			name: "nested italic stays literal inside bold",
			in:   "**bold *it* bold**",
			want: []FormattedSpan{{Text: "bold *it* bold", Bold: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFormattedText(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseFormattedText(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

// TestParseFormattedTextConcatenation verifies the span invariant: joining
// the span texts in order reproduces the input with the matched formatting
// delimiters stripped.
func TestParseFormattedTextConcatenation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "nothing special", want: "nothing special"},
		{name: "bold", in: "a **b** c", want: "a b c"},
		{name: "italic", in: "a *b* c", want: "a b c"},
		{name: "code", in: "run `go vet` first", want: "run go vet first"},
		{name: "link", in: "see [here](u) now", want: "see here now"},
		{name: "all four", in: "**a** *b* `c` [d](u)", want: "a b c d"},
		{name: "overlap", in: "x **bold *it* bold** y", want: "x bold *it* bold y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlainText(ParseFormattedText(tt.in))
			if got != tt.want {
				t.Errorf("PlainText(ParseFormattedText(%q)) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
