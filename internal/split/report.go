package split

import (
	"fmt"
	"strings"
)

// FormatSize renders a byte count as megabytes once it reaches 1 MiB and as
// kilobytes otherwise, with two-decimal precision. Sub-kilobyte counts
// render as a kilobyte fraction ("0.50 KB").
func FormatSize(n int64) string {
	mb := float64(n) / (1024 * 1024)
	if mb >= 1 {
		return fmt.Sprintf("%.2f MB", mb)
	}
	return fmt.Sprintf("%.2f KB", float64(n)/1024)
}

// Summary renders a bordered table of created files and their sizes.
// Column widths follow the longest entry in each column. Zero results is a
// first-class case and yields an empty string; callers print nothing then.
func Summary(results []Result) string {
	if len(results) == 0 {
		return ""
	}

	var nameW, sizeW int
	for _, r := range results {
		nameW = max(nameW, len(r.Name))
		sizeW = max(sizeW, len(FormatSize(r.Size)))
	}

	sep := "+" + strings.Repeat("-", nameW+2) + "+" + strings.Repeat("-", sizeW+2) + "+"

	var b strings.Builder
	b.WriteString(sep + "\n")
	fmt.Fprintf(&b, "| %-*s | %-*s |\n", nameW, "File Name", sizeW, "Size")
	b.WriteString(sep + "\n")
	for _, r := range results {
		fmt.Fprintf(&b, "| %-*s | %-*s |\n", nameW, r.Name, sizeW, FormatSize(r.Size))
	}
	b.WriteString(sep)
	return b.String()
}
