// Package xlsxout builds output workbooks: a single-sheet writer with a
// fixed style palette, and a YAML-defined template renderer.
package xlsxout

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/linksheet/pkg/cellref"
)

// StyleID selects an entry from the writer's style palette. The order is
// positional and must not change: consumers reference entries by index.
type StyleID int

const (
	StyleDefault StyleID = iota
	StyleBold
	StyleHyperlink     // blue, underlined
	StyleExtractHeader // bold on light blue fill
	StyleCaption       // gray text
	StyleMergeHeader   // bold on light green fill
	styleCount
)

const (
	hyperlinkBlue  = "0563C1"
	captionGray    = "808080"
	headerBlueFill = "BDD7EE"
	headerGreenFill = "C6EFCE"
)

// Writer assembles a new single-sheet workbook. Each Writer owns a fresh
// file and a freshly built style palette, so concurrent calls never share
// mutable state.
type Writer struct {
	file   *excelize.File
	sheet  string
	styles [styleCount]int
}

// NewWriter creates a workbook with one sheet of the given name and
// registers the full style palette on it.
func NewWriter(sheetName string) (*Writer, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("name sheet: %w", err)
	}
	w := &Writer{file: f, sheet: sheetName}
	if err := w.buildPalette(); err != nil {
		f.Close()
		return nil, err
	}
	return w, nil
}

// buildPalette registers the palette styles in their positional order.
func (w *Writer) buildPalette() error {
	defs := [styleCount]*excelize.Style{
		StyleDefault: {},
		StyleBold: {
			Font: &excelize.Font{Bold: true},
		},
		StyleHyperlink: {
			Font: &excelize.Font{Color: hyperlinkBlue, Underline: "single"},
		},
		StyleExtractHeader: {
			Font: &excelize.Font{Bold: true},
			Fill: excelize.Fill{Type: "pattern", Color: []string{headerBlueFill}, Pattern: 1},
		},
		StyleCaption: {
			Font: &excelize.Font{Color: captionGray},
		},
		StyleMergeHeader: {
			Font: &excelize.Font{Bold: true},
			Fill: excelize.Fill{Type: "pattern", Color: []string{headerGreenFill}, Pattern: 1},
		},
	}
	for i, def := range defs {
		id, err := w.file.NewStyle(def)
		if err != nil {
			return fmt.Errorf("build style %d: %w", i, err)
		}
		w.styles[i] = id
	}
	return nil
}

// SheetName returns the output worksheet name.
func (w *Writer) SheetName() string {
	return w.sheet
}

// SetCell writes a value and style at the 1-based (col, row) coordinates.
func (w *Writer) SetCell(col, row int, value string, style StyleID) error {
	addr := cellref.CellAddress(col, row)
	if err := w.file.SetCellValue(w.sheet, addr, value); err != nil {
		return fmt.Errorf("set cell %s: %w", addr, err)
	}
	if err := w.file.SetCellStyle(w.sheet, addr, addr, w.styles[style]); err != nil {
		return fmt.Errorf("style cell %s: %w", addr, err)
	}
	return nil
}

// SetHyperlink attaches an external hyperlink relationship to the cell at
// the 1-based (col, row) coordinates. The cell value is untouched.
func (w *Writer) SetHyperlink(col, row int, target string) error {
	addr := cellref.CellAddress(col, row)
	if err := w.file.SetCellHyperLink(w.sheet, addr, target, "External"); err != nil {
		return fmt.Errorf("link cell %s: %w", addr, err)
	}
	return nil
}

// SetColumnWidth fixes the width of a 1-based column.
func (w *Writer) SetColumnWidth(col int, width float64) error {
	name := cellref.ColumnName(col)
	return w.file.SetColWidth(w.sheet, name, name, width)
}

// Bytes serializes the workbook and releases the underlying file. The
// Writer must not be used afterwards. Output is byte-identical for
// identical workbook content.
func (w *Writer) Bytes() ([]byte, error) {
	defer w.file.Close()
	buf := new(bytes.Buffer)
	if _, err := w.file.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	out, err := normalizeArchive(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("normalize workbook archive: %w", err)
	}
	return out, nil
}

// normalizeArchive rewrites a zip archive with its entries ordered by name.
// The serializer holds package parts in a map and emits them in iteration
// order, so two workbooks with identical parts can otherwise differ byte
// for byte.
func normalizeArchive(data []byte) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	files := make([]*zip.File, len(r.File))
	copy(files, r.File)
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	for _, f := range files {
		// A fresh header keeps the rewrite free of per-run metadata such
		// as modification times.
		dst, err := zw.CreateHeader(&zip.FileHeader{Name: f.Name, Method: zip.Deflate})
		if err != nil {
			return nil, err
		}
		src, err := f.Open()
		if err != nil {
			return nil, err
		}
		_, err = io.Copy(dst, src)
		src.Close()
		if err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Close discards the workbook without serializing it.
func (w *Writer) Close() error {
	return w.file.Close()
}
