package editor

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for draft fields.
const (
	maxTitleLen      = 300
	maxCategoryLen   = 100
	maxCoverURLLen   = 2_000
	maxBodyLen       = 100_000
	maxConclusionLen = 20_000
)

// validateDraft checks draft inputs and returns the first error found.
func validateDraft(d *Draft) string {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if utf8.RuneCountInString(d.Category) > maxCategoryLen {
		return "Category is too long (max 100 characters)."
	}
	if utf8.RuneCountInString(d.CoverImage) > maxCoverURLLen {
		return "Cover image URL is too long (max 2,000 characters)."
	}
	if strings.TrimSpace(d.Body) == "" {
		return "Post body is required."
	}
	if utf8.RuneCountInString(d.Body) > maxBodyLen {
		return "Post body is too long (max 100,000 characters)."
	}
	if utf8.RuneCountInString(d.Conclusion) > maxConclusionLen {
		return "Conclusion is too long (max 20,000 characters)."
	}
	return ""
}
