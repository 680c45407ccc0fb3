// Package xlsxdoc provides a read-only view over the first worksheet of an
// xlsx workbook held in memory: rows with resolved cell text, hyperlink
// lookup by cell address, and header-column location.
package xlsxdoc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/linksheet/pkg/cellref"
)

// Cell is a single populated cell. Value is the resolved text, after any
// shared-string indirection has been applied by the parser.
type Cell struct {
	Column int // 1-based
	Value  string
}

// Row is one worksheet row. Cells are ordered by ascending column.
type Row struct {
	Index int // 1-based
	Cells []Cell
}

// Value returns the resolved text of the cell in the given 1-based column,
// or "" if the row has no cell there.
func (r Row) Value(col int) string {
	for _, c := range r.Cells {
		if c.Column == col {
			return c.Value
		}
	}
	return ""
}

// HasData reports whether at least one cell in the row has non-blank text.
func (r Row) HasData() bool {
	for _, c := range r.Cells {
		if strings.TrimSpace(c.Value) != "" {
			return true
		}
	}
	return false
}

// Document is a parsed workbook, scoped to its first worksheet. It is
// read-only and must be closed after use.
type Document struct {
	file  *excelize.File
	sheet string
	rows  []Row
}

// Open parses an xlsx workbook from an in-memory byte buffer. The returned
// Document exposes the first worksheet only.
func Open(data []byte) (*Document, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}

	sheet := f.GetSheetName(0)
	if sheet == "" {
		f.Close()
		return nil, fmt.Errorf("workbook has no sheets")
	}

	raw, err := f.GetRows(sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read rows from sheet %s: %w", sheet, err)
	}

	rows := make([]Row, 0, len(raw))
	for i, cols := range raw {
		row := Row{Index: i + 1}
		for j, value := range cols {
			row.Cells = append(row.Cells, Cell{Column: j + 1, Value: value})
		}
		rows = append(rows, row)
	}

	return &Document{file: f, sheet: sheet, rows: rows}, nil
}

// Close releases the underlying parser resources.
func (d *Document) Close() error {
	return d.file.Close()
}

// SheetName returns the name of the worksheet the document is scoped to.
func (d *Document) SheetName() string {
	return d.sheet
}

// Rows returns every row of the worksheet in order. The slice is shared;
// callers must not mutate it.
func (d *Document) Rows() []Row {
	return d.rows
}

// HyperlinkFor resolves the hyperlink attached to the cell at the given
// A1-style address via the worksheet's relationship table. A missing or
// unresolvable relationship yields ("", false), never an error.
func (d *Document) HyperlinkFor(addr string) (string, bool) {
	has, target, err := d.file.GetCellHyperLink(d.sheet, addr)
	if err != nil || !has || target == "" {
		return "", false
	}
	return target, true
}

// HyperlinkAt is HyperlinkFor keyed by 1-based coordinates.
func (d *Document) HyperlinkAt(col, row int) (string, bool) {
	return d.HyperlinkFor(cellref.CellAddress(col, row))
}
