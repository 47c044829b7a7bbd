// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package htmlmd converts pasted rich-text HTML into markdown the editor
// can work with. Conversion is a recursive descent over the parsed node
// tree; all accumulators (including the ordered-list item counter) are
// scoped to the descent, so Convert is reentrant and calls never interfere.
package htmlmd

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var wsRe = regexp.MustCompile(`\s+`)

// Convert renders an HTML fragment or document as markdown. Unknown
// elements contribute their children transparently; markup with no
// convertible content yields an empty string.
func Convert(src string) (string, error) {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	c := &converter{}
	c.walk(findBody(doc))
	return strings.Join(c.blocks, "\n\n"), nil
}

// converter accumulates finished block strings; each element of blocks
// becomes one blank-line-separated markdown block.
type converter struct {
	blocks []string
}

func (c *converter) walk(n *html.Node) {
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		c.renderBlock(ch)
	}
}

func (c *converter) renderBlock(n *html.Node) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(collapse(n.Data)); t != "" {
			c.blocks = append(c.blocks, t)
		}
		return
	}
	if n.Type != html.ElementNode {
		return
	}

	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(n.Data[1] - '0')
		if text := inlineText(n); text != "" {
			c.blocks = append(c.blocks, strings.Repeat("#", level)+" "+text)
		}
	case "p":
		if text := inlineText(n); text != "" {
			c.blocks = append(c.blocks, text)
		}
	case "ul":
		if list := renderList(n, false, 0); list != "" {
			c.blocks = append(c.blocks, list)
		}
	case "ol":
		if list := renderList(n, true, 0); list != "" {
			c.blocks = append(c.blocks, list)
		}
	case "pre":
		c.blocks = append(c.blocks, renderPre(n))
	case "blockquote":
		if quote := renderBlockquote(n); quote != "" {
			c.blocks = append(c.blocks, quote)
		}
	case "img":
		c.blocks = append(c.blocks, imageMarkdown(n))
	case "hr":
		c.blocks = append(c.blocks, "---")
	case "br":
		// Stray line breaks between blocks carry no content.
	default:
		// head, script and style never contribute; everything else
		// (div, article, section, main...) is a transparent container.
		switch n.Data {
		case "head", "script", "style":
			return
		}
		c.walk(n)
	}
}

// renderList renders a <ul> or <ol> and its nested lists. The item counter
// is a local of each invocation: every <ol> numbers from 1 independently,
// at any nesting depth, regardless of how many lists came before it.
func renderList(n *html.Node, ordered bool, depth int) string {
	indent := strings.Repeat("  ", depth)
	index := 1

	var lines []string
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type != html.ElementNode || ch.Data != "li" {
			continue
		}

		marker := "- "
		if ordered {
			marker = fmt.Sprintf("%d. ", index)
			index++
		}

		text, nested := renderListItem(ch, depth)
		lines = append(lines, indent+marker+text)
		lines = append(lines, nested...)
	}
	return strings.Join(lines, "\n")
}

// renderListItem separates an <li>'s inline content from its nested lists,
// which are rendered one level deeper.
func renderListItem(li *html.Node, depth int) (string, []string) {
	var sb strings.Builder
	var nested []string

	for ch := li.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode && (ch.Data == "ul" || ch.Data == "ol") {
			nested = append(nested, renderList(ch, ch.Data == "ol", depth+1))
			continue
		}
		writeInline(&sb, ch)
	}
	return strings.TrimSpace(sb.String()), nested
}

func renderBlockquote(n *html.Node) string {
	var lines []string
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		var text string
		if ch.Type == html.ElementNode && ch.Data == "p" {
			text = inlineText(ch)
		} else {
			var sb strings.Builder
			writeInline(&sb, ch)
			text = strings.TrimSpace(sb.String())
		}
		if text != "" {
			lines = append(lines, "> "+text)
		}
	}
	return strings.Join(lines, "\n")
}

// renderPre emits a fenced code block, picking the language tag off a
// nested <code class="language-xxx"> when present.
func renderPre(n *html.Node) string {
	lang := ""
	body := n
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode && ch.Data == "code" {
			body = ch
			if class, ok := strings.CutPrefix(attr(ch, "class"), "language-"); ok {
				lang = class
			}
			break
		}
	}

	code := strings.TrimRight(textContent(body), "\n")
	return "```" + lang + "\n" + code + "\n```"
}

func imageMarkdown(n *html.Node) string {
	return "![" + attr(n, "alt") + "](" + attr(n, "src") + ")"
}

// inlineText renders the inline children of a block element.
func inlineText(n *html.Node) string {
	var sb strings.Builder
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		writeInline(&sb, ch)
	}
	return strings.TrimSpace(sb.String())
}

func writeInline(sb *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		sb.WriteString(collapse(n.Data))
		return
	}
	if n.Type != html.ElementNode {
		return
	}

	switch n.Data {
	case "strong", "b":
		sb.WriteString("**")
		writeInlineChildren(sb, n)
		sb.WriteString("**")
	case "em", "i":
		sb.WriteString("*")
		writeInlineChildren(sb, n)
		sb.WriteString("*")
	case "code":
		sb.WriteString("`" + textContent(n) + "`")
	case "a":
		var label strings.Builder
		writeInlineChildren(&label, n)
		sb.WriteString("[" + strings.TrimSpace(label.String()) + "](" + attr(n, "href") + ")")
	case "img":
		sb.WriteString(imageMarkdown(n))
	case "br":
		sb.WriteString("\n")
	default:
		writeInlineChildren(sb, n)
	}
}

func writeInlineChildren(sb *strings.Builder, n *html.Node) {
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		writeInline(sb, ch)
	}
}

// textContent concatenates all descendant text verbatim.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		sb.WriteString(textContent(ch))
	}
	return sb.String()
}

// collapse folds runs of whitespace into single spaces, the way browsers
// treat inline text.
func collapse(s string) string {
	return wsRe.ReplaceAllString(s, " ")
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// findBody locates the <body> element html.Parse always synthesizes.
func findBody(doc *html.Node) *html.Node {
	var body *html.Node
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if body != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == "body" {
			body = n
			return
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			visit(ch)
		}
	}
	visit(doc)
	if body == nil {
		return doc
	}
	return body
}
