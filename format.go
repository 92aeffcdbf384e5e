package classics

import (
	"fmt"
	"strings"
)

const (
	countWidth  = 8
	numberWidth = 6
	runWidth    = 4
)

// FormatValue returns n right-justified in a field of 8 characters, or the
// empty string when the field is not shown.
func FormatValue(n uint64, show bool) string {
	if !show {
		return ""
	}
	return fmt.Sprintf("%*d", countWidth, n)
}

// FormatRow joins the four count fields and appends the suffix preceded by a
// space. An empty suffix is omitted with its space.
func FormatRow(lines, words, bytes, chars, suffix string) string {
	var str strings.Builder
	str.WriteString(lines)
	str.WriteString(words)
	str.WriteString(bytes)
	str.WriteString(chars)
	if suffix != "" {
		str.WriteString(" ")
		str.WriteString(suffix)
	}
	return str.String()
}

func formatNumber(n int) string {
	return fmt.Sprintf("%*d\t", numberWidth, n)
}

func formatRun(n int) string {
	return fmt.Sprintf("%*d ", runWidth, n)
}
