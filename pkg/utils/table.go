package utils

import (
	"fmt"
	"strings"
)

// WriteTable renders rows as an aligned text table.
func WriteTable(sb *strings.Builder, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	for i, h := range headers {
		fmt.Fprintf(sb, "%-*s  ", widths[i], h)
	}
	sb.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			fmt.Fprintf(sb, "%-*s  ", widths[i], cell)
		}
		sb.WriteString("\n")
	}
}
