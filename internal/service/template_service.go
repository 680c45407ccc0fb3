package service

import (
	_ "embed"

	"github.com/linksheet/pkg/xlsxout"
)

const (
	templateExtraction = "extraction"
	templateMerge      = "merge"
)

//go:embed templates.yaml
var templateYAML []byte

// ExtractionTemplate renders the sample workbook for the extract flow: a
// Title/URL header, two hyperlinked sample rows, and an instructional
// caption. Output is deterministic, so callers may cache it.
func (s *excelLinkService) ExtractionTemplate() ([]byte, error) {
	return xlsxout.Render(s.templates[templateExtraction])
}

// MergeTemplate renders the sample workbook for the merge flow: a Title/URL
// header and three plain-text sample rows.
func (s *excelLinkService) MergeTemplate() ([]byte, error) {
	return xlsxout.Render(s.templates[templateMerge])
}
