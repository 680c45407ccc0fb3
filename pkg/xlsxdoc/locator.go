package xlsxdoc

import "strings"

// HeaderMatch is the location of a named column's header cell.
type HeaderMatch struct {
	Row    int // 1-based
	Column int // 1-based
}

// FindColumn scans the first maxRows rows for a cell whose resolved text
// equals name, case-insensitively and ignoring surrounding whitespace. Cells
// are visited in stored column order and the first match wins.
func (d *Document) FindColumn(name string, maxRows int) (HeaderMatch, bool) {
	target := strings.TrimSpace(name)
	for _, row := range d.rows {
		if row.Index > maxRows {
			break
		}
		for _, cell := range row.Cells {
			if strings.EqualFold(strings.TrimSpace(cell.Value), target) {
				return HeaderMatch{Row: row.Index, Column: cell.Column}, true
			}
		}
	}
	return HeaderMatch{}, false
}
