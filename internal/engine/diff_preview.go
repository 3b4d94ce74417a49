package engine

import (
	"strings"

	"github.com/aymanbagabas/go-udiff"
)

// DefaultDiffMaxLines is the default maximum number of diff lines shown per file.
const DefaultDiffMaxLines = 40

// DiffPreview is a user-facing diff between a replaced file and its
// generated successor.
type DiffPreview struct {
	Path        string
	UnifiedDiff string
	Truncated   bool
}

// buildDiffPreview diffs before against after, truncating at maxLines.
// Returns nil when the contents are identical or before is empty (new file).
func buildDiffPreview(path string, before string, after string, maxLines int) *DiffPreview {
	if before == "" || before == after {
		return nil
	}
	if maxLines <= 0 {
		maxLines = DefaultDiffMaxLines
	}
	unified := udiff.Unified(path+" (previous)", path, before, after)
	lines := strings.Split(strings.TrimRight(unified, "\n"), "\n")
	truncated := false
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		truncated = true
	}
	return &DiffPreview{
		Path:        path,
		UnifiedDiff: strings.Join(lines, "\n"),
		Truncated:   truncated,
	}
}
