// Package cellref builds A1-style cell addresses from 1-based
// (column, row) coordinate pairs.
package cellref

import (
	"fmt"
	"strings"
)

// ColumnName returns the spreadsheet column letters for a 1-based column
// number ("A" for 1, "Z" for 26, "AA" for 27). Returns "" for col < 1.
func ColumnName(col int) string {
	if col < 1 {
		return ""
	}
	var sb strings.Builder
	for col > 0 {
		col--
		sb.WriteByte(byte('A' + col%26))
		col /= 26
	}
	// Letters were emitted least-significant first.
	runes := []rune(sb.String())
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// CellAddress returns the A1-style address for a 1-based (col, row) pair.
func CellAddress(col, row int) string {
	return fmt.Sprintf("%s%d", ColumnName(col), row)
}
