package xlsxout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
templates:
  sample:
    sheet: "Sample"
    columns:
      - column: 1
        width: 20
    rows:
      - index: 1
        cells:
          - column: 1
            value: "Header"
            style: bold
      - index: 2
        cells:
          - column: 1
            value: "Linked"
            style: hyperlink
            hyperlink: "https://example.com/"
`

func TestParseTemplates(t *testing.T) {
	templates, err := ParseTemplates([]byte(sampleYAML))
	require.NoError(t, err)
	spec, ok := templates["sample"]
	require.True(t, ok)
	assert.Equal(t, "Sample", spec.Sheet)
	require.Len(t, spec.Rows, 2)
	assert.Equal(t, "https://example.com/", spec.Rows[1].Cells[0].Hyperlink)
}

func TestParseTemplatesRejectsUnknownStyle(t *testing.T) {
	bad := `
templates:
  sample:
    sheet: "Sample"
    rows:
      - index: 1
        cells:
          - column: 1
            value: "x"
            style: sparkly
`
	_, err := ParseTemplates([]byte(bad))
	assert.ErrorContains(t, err, "unknown style")
}

func TestParseTemplatesRejectsEmpty(t *testing.T) {
	_, err := ParseTemplates([]byte("templates: {}"))
	assert.Error(t, err)

	_, err = ParseTemplates([]byte("templates:\n  sample:\n    rows: []\n"))
	assert.ErrorContains(t, err, "no sheet name")
}

func TestRenderIsDeterministic(t *testing.T) {
	templates, err := ParseTemplates([]byte(sampleYAML))
	require.NoError(t, err)

	first, err := Render(templates["sample"])
	require.NoError(t, err)
	second, err := Render(templates["sample"])
	require.NoError(t, err)

	assert.Equal(t, first, second, "rendering the same spec twice must be byte-identical")
}

func TestRenderOutput(t *testing.T) {
	templates, err := ParseTemplates([]byte(sampleYAML))
	require.NoError(t, err)

	data, err := Render(templates["sample"])
	require.NoError(t, err)

	f := reopen(t, data)
	v, err := f.GetCellValue("Sample", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Header", v)

	has, target, err := f.GetCellHyperLink("Sample", "A2")
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, "https://example.com/", target)
}
