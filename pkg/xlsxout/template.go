package xlsxout

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// TemplateSpec declares a sample workbook: one sheet, fixed column widths,
// literal rows. Rendering is deterministic, so callers may cache the output
// bytes keyed by template name.
type TemplateSpec struct {
	Sheet   string       `yaml:"sheet"`
	Columns []ColumnSpec `yaml:"columns"`
	Rows    []RowSpec    `yaml:"rows"`
}

type ColumnSpec struct {
	Column int     `yaml:"column"`
	Width  float64 `yaml:"width"`
}

type RowSpec struct {
	Index int        `yaml:"index"`
	Cells []CellSpec `yaml:"cells"`
}

type CellSpec struct {
	Column    int    `yaml:"column"`
	Value     string `yaml:"value"`
	Style     string `yaml:"style"`
	Hyperlink string `yaml:"hyperlink,omitempty"`
}

var styleNames = map[string]StyleID{
	"":               StyleDefault,
	"default":        StyleDefault,
	"bold":           StyleBold,
	"hyperlink":      StyleHyperlink,
	"extract_header": StyleExtractHeader,
	"caption":        StyleCaption,
	"merge_header":   StyleMergeHeader,
}

type templateFile struct {
	Templates map[string]TemplateSpec `yaml:"templates"`
}

// ParseTemplates decodes a YAML document containing named template specs.
func ParseTemplates(data []byte) (map[string]TemplateSpec, error) {
	var tf templateFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("decode template yaml: %w", err)
	}
	if len(tf.Templates) == 0 {
		return nil, fmt.Errorf("template yaml declares no templates")
	}
	for name, spec := range tf.Templates {
		if spec.Sheet == "" {
			return nil, fmt.Errorf("template %q has no sheet name", name)
		}
		for _, row := range spec.Rows {
			for _, cell := range row.Cells {
				if _, ok := styleNames[cell.Style]; !ok {
					return nil, fmt.Errorf("template %q: unknown style %q", name, cell.Style)
				}
			}
		}
	}
	return tf.Templates, nil
}

// Render builds the workbook a spec describes and returns its bytes.
func Render(spec TemplateSpec) ([]byte, error) {
	w, err := NewWriter(spec.Sheet)
	if err != nil {
		return nil, err
	}

	for _, col := range spec.Columns {
		if err := w.SetColumnWidth(col.Column, col.Width); err != nil {
			w.Close()
			return nil, err
		}
	}

	for _, row := range spec.Rows {
		for _, cell := range row.Cells {
			if err := w.SetCell(cell.Column, row.Index, cell.Value, styleNames[cell.Style]); err != nil {
				w.Close()
				return nil, err
			}
			if cell.Hyperlink != "" {
				if err := w.SetHyperlink(cell.Column, row.Index, cell.Hyperlink); err != nil {
					w.Close()
					return nil, err
				}
			}
		}
	}

	return w.Bytes()
}
