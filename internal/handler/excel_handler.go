package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/linksheet/internal/domain"
	"github.com/linksheet/internal/service"
	"github.com/linksheet/internal/service/serviceutils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExcelHandler struct {
	svc  service.ExcelLinkService
	opts domain.ProcessingOptions

	// Template output is deterministic, so it is rendered once per kind.
	extractionTemplate templateCache
	mergeTemplate      templateCache
}

type templateCache struct {
	once sync.Once
	data []byte
	err  error
}

func NewExcelHandler(svc service.ExcelLinkService, opts domain.ProcessingOptions) *ExcelHandler {
	return &ExcelHandler{svc: svc, opts: opts}
}

// ExtractHandler handles POST /api/excel/extract. The upload is multipart
// field "file"; the optional "column" field defaults to "Title". With
// ?format=json the structured result is returned instead of the workbook.
func (h *ExcelHandler) ExtractHandler(c echo.Context) error {
	data, err := readUpload(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "A file upload is required", err)
	}

	column := strings.TrimSpace(c.FormValue("column"))
	if column == "" {
		column = "Title"
	}

	res := h.svc.ExtractLinks(c.Request().Context(), data, column, h.opts)
	if res.ErrorMessage != "" {
		return serviceutils.ResponseError(c, statusForMessage(res.ErrorMessage), res.ErrorMessage, nil)
	}

	if c.QueryParam("format") == "json" {
		return serviceutils.ResponseSuccess(c, http.StatusOK, "extraction completed", res)
	}

	c.Response().Header().Set("X-Operation-Id", res.OperationID)
	c.Response().Header().Set("X-Total-Rows", strconv.Itoa(res.TotalRows))
	c.Response().Header().Set("X-Links-Found", strconv.Itoa(res.LinksFound))
	return writeWorkbook(c, "extracted_links.xlsx", res.OutputFile)
}

// MergeHandler handles POST /api/excel/merge.
func (h *ExcelHandler) MergeHandler(c echo.Context) error {
	data, err := readUpload(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "A file upload is required", err)
	}

	res := h.svc.MergeLinks(c.Request().Context(), data, h.opts)
	if res.ErrorMessage != "" {
		return serviceutils.ResponseError(c, statusForMessage(res.ErrorMessage), res.ErrorMessage, nil)
	}

	if c.QueryParam("format") == "json" {
		return serviceutils.ResponseSuccess(c, http.StatusOK, "merge completed", res)
	}

	c.Response().Header().Set("X-Operation-Id", res.OperationID)
	c.Response().Header().Set("X-Total-Rows", strconv.Itoa(res.TotalRows))
	c.Response().Header().Set("X-Links-Created", strconv.Itoa(res.LinksCreated))
	return writeWorkbook(c, "merged_links.xlsx", res.OutputFile)
}

// ExtractionTemplateHandler handles GET /api/excel/template/extraction.
func (h *ExcelHandler) ExtractionTemplateHandler(c echo.Context) error {
	h.extractionTemplate.once.Do(func() {
		h.extractionTemplate.data, h.extractionTemplate.err = h.svc.ExtractionTemplate()
	})
	if h.extractionTemplate.err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to generate template", h.extractionTemplate.err)
	}
	return writeWorkbook(c, "extraction_template.xlsx", h.extractionTemplate.data)
}

// MergeTemplateHandler handles GET /api/excel/template/merge.
func (h *ExcelHandler) MergeTemplateHandler(c echo.Context) error {
	h.mergeTemplate.once.Do(func() {
		h.mergeTemplate.data, h.mergeTemplate.err = h.svc.MergeTemplate()
	})
	if h.mergeTemplate.err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to generate template", h.mergeTemplate.err)
	}
	return writeWorkbook(c, "merge_template.xlsx", h.mergeTemplate.data)
}

func readUpload(c echo.Context) ([]byte, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("form field \"file\" is missing: %w", err)
	}
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()
	return io.ReadAll(src)
}

func writeWorkbook(c echo.Context, filename string, data []byte) error {
	c.Response().Header().Set(echo.HeaderContentType, xlsxContentType)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Response().Header().Set(echo.HeaderContentLength, strconv.Itoa(len(data)))
	_, err := c.Response().Write(data)
	return err
}

// statusForMessage maps a reported error code prefix to an HTTP status.
func statusForMessage(msg string) int {
	switch {
	case strings.HasPrefix(msg, string(domain.CodeInvalidFileFormat)),
		strings.HasPrefix(msg, string(domain.CodeInvalidColumn)),
		strings.HasPrefix(msg, string(domain.CodeExcelProcessing)):
		return http.StatusBadRequest
	case strings.HasPrefix(msg, string(domain.CodeOutOfMemory)):
		return http.StatusRequestEntityTooLarge
	case strings.HasPrefix(msg, string(domain.CodePermissionDenied)):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
