package service

import (
	"context"
	"fmt"

	"github.com/linksheet/internal/domain"
	"github.com/linksheet/pkg/xlsxdoc"
	"github.com/linksheet/pkg/xlsxout"
)

const (
	extractSheetName = "Extracted Links"
	mergeSheetName   = "Merged Links"

	titleColumnName = "Title"
	urlColumnName   = "URL"
)

// ExcelLinkService exposes the two workbook transforms and the template
// generators. Every operation is a one-shot pure transform: bytes in,
// result record out. Failures are recovered into the result, never
// propagated, so concurrent callers can invoke operations freely.
type ExcelLinkService interface {
	ExtractLinks(ctx context.Context, data []byte, columnName string, opts domain.ProcessingOptions) domain.ExtractionResult
	MergeLinks(ctx context.Context, data []byte, opts domain.ProcessingOptions) domain.MergeResult
	ExtractionTemplate() ([]byte, error)
	MergeTemplate() ([]byte, error)
}

type excelLinkService struct {
	templates map[string]xlsxout.TemplateSpec
}

// NewExcelLinkService parses the embedded template definitions and returns
// a ready service. The service holds no mutable state.
func NewExcelLinkService() (ExcelLinkService, error) {
	templates, err := xlsxout.ParseTemplates(templateYAML)
	if err != nil {
		return nil, fmt.Errorf("load workbook templates: %w", err)
	}
	for _, name := range []string{templateExtraction, templateMerge} {
		if _, ok := templates[name]; !ok {
			return nil, fmt.Errorf("workbook template %q is not defined", name)
		}
	}
	return &excelLinkService{templates: templates}, nil
}

// validateUpload checks size and file signature before any parsing is
// attempted.
func validateUpload(data []byte, opts domain.ProcessingOptions) error {
	if len(data) == 0 {
		return domain.NewInvalidFileFormatError("the uploaded file is empty")
	}
	if opts.MaxFileSizeBytes > 0 && int64(len(data)) > opts.MaxFileSizeBytes {
		return domain.NewInvalidFileFormatError(fmt.Sprintf(
			"the uploaded file is %d bytes, which exceeds the limit of %d bytes",
			len(data), opts.MaxFileSizeBytes))
	}
	switch xlsxdoc.DetectSignature(data) {
	case xlsxdoc.SignatureZIP, xlsxdoc.SignatureOLE2:
		return nil
	default:
		if len(data) < 8 {
			return domain.NewInvalidFileFormatError("the uploaded file is too small to contain a valid file signature")
		}
		return domain.NewInvalidFileFormatError("the uploaded file does not have a recognized Excel file signature")
	}
}

// openDocument parses a validated upload, translating parse failures into
// the reported error taxonomy.
func openDocument(data []byte) (*xlsxdoc.Document, error) {
	doc, err := xlsxdoc.Open(data)
	if err != nil {
		if xlsxdoc.DetectSignature(data) == xlsxdoc.SignatureOLE2 {
			return nil, domain.NewExcelProcessingError(
				"legacy .xls workbooks cannot be processed; save the file as .xlsx and retry")
		}
		return nil, domain.NewExcelProcessingError(fmt.Sprintf("the workbook could not be parsed: %v", err))
	}
	return doc, nil
}
