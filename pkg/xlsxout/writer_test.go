package xlsxout

import (
	"archive/zip"
	"bytes"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func reopen(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestWriterBuildsWorkbook(t *testing.T) {
	w, err := NewWriter("Report")
	require.NoError(t, err)

	require.NoError(t, w.SetCell(1, 1, "Title", StyleExtractHeader))
	require.NoError(t, w.SetCell(2, 1, "URL", StyleExtractHeader))
	require.NoError(t, w.SetCell(1, 2, "Example", StyleHyperlink))
	require.NoError(t, w.SetHyperlink(1, 2, "https://example.com/"))
	require.NoError(t, w.SetColumnWidth(1, 30))
	require.NoError(t, w.SetColumnWidth(2, 50))

	data, err := w.Bytes()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f := reopen(t, data)
	assert.Equal(t, "Report", f.GetSheetName(0))

	v, err := f.GetCellValue("Report", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Title", v)

	v, err = f.GetCellValue("Report", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Example", v)

	has, target, err := f.GetCellHyperLink("Report", "A2")
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, "https://example.com/", target)

	width, err := f.GetColWidth("Report", "A")
	require.NoError(t, err)
	assert.InDelta(t, 30, width, 0.01)
}

func TestWriterOutputIsByteDeterministic(t *testing.T) {
	build := func() []byte {
		w, err := NewWriter("Report")
		require.NoError(t, err)
		require.NoError(t, w.SetCell(1, 1, "Title", StyleExtractHeader))
		require.NoError(t, w.SetCell(1, 2, "Example", StyleHyperlink))
		require.NoError(t, w.SetHyperlink(1, 2, "https://example.com/"))
		require.NoError(t, w.SetCell(2, 2, "https://example.com/", StyleDefault))
		require.NoError(t, w.SetColumnWidth(1, 30))
		data, err := w.Bytes()
		require.NoError(t, err)
		return data
	}

	first := build()
	for i := 1; i < 10; i++ {
		require.Equal(t, first, build(), "serialization %d differs", i)
	}

	// The archive entries are ordered by name so the package layout cannot
	// drift between serializations.
	r, err := zip.NewReader(bytes.NewReader(first), int64(len(first)))
	require.NoError(t, err)
	names := make([]string, len(r.File))
	for i, f := range r.File {
		names[i] = f.Name
	}
	assert.True(t, sort.StringsAreSorted(names), "entries not sorted: %v", names)
}

func TestWriterPaletteIsPerDocument(t *testing.T) {
	// Two writers must not share style state; both must produce the same
	// bytes for the same operations.
	build := func() []byte {
		w, err := NewWriter("S")
		require.NoError(t, err)
		require.NoError(t, w.SetCell(1, 1, "x", StyleBold))
		data, err := w.Bytes()
		require.NoError(t, err)
		return data
	}
	assert.Equal(t, build(), build())
}
