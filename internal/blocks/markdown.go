// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blocks

import "strings"

// BlocksToMarkdown reconstructs an editable markdown document from stored
// blocks. Each block contributes its RawContent verbatim, falling back to
// Text when RawContent was never populated; blocks are joined by a blank
// line. Reconstruction is best effort, not an inverse of ParseContent —
// fidelity is exact only when every block carries RawContent, which holds
// for all block types the forward parser produces.
func BlocksToMarkdown(list []ContentBlock) string {
	parts := make([]string, 0, len(list))
	for _, b := range list {
		if b.RawContent != "" {
			parts = append(parts, b.RawContent)
			continue
		}
		parts = append(parts, b.Text)
	}
	return strings.Join(parts, "\n\n")
}
