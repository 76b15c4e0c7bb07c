// Package format renders byte sizes, paths and snippets for table output.
package format

import (
	"fmt"
	"math"
	"strconv"
)

// FormatBytes converts bytes to human-readable format (KB, MB, GB, TB).
func FormatBytes(bytes int64) string {
	if bytes == 0 {
		return "0 B"
	}

	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	exp := int(math.Log(float64(bytes)) / math.Log(unit))
	if exp > 4 {
		exp = 4
	}

	units := []string{"B", "KB", "MB", "GB", "TB"}
	value := float64(bytes) / math.Pow(unit, float64(exp))

	return fmt.Sprintf("%.1f %s", value, units[exp])
}

// Truncate shortens s to maxLen, marking the cut with a trailing ellipsis.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// TruncatePath shortens a path to maxLen from the front, so the
// basename stays visible.
func TruncatePath(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return "..." + s[len(s)-maxLen+3:]
}

// Snippet renders s as a quoted Go string with escapes visible, cut
// to maxLen. Closing snippets contain newlines, so the raw text would
// wreck table layout.
func Snippet(s string, maxLen int) string {
	return Truncate(strconv.Quote(s), maxLen)
}
