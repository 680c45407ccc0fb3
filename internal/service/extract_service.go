package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/linksheet/internal/domain"
	"github.com/linksheet/internal/logger"
	"github.com/linksheet/pkg/xlsxout"
)

const (
	extractTitleWidth = 30
	extractURLWidth   = 50
)

// ExtractLinks builds a workbook listing every hyperlink found in the named
// column, preserving the header row and all data rows of the input. The
// result always carries either an output buffer or an error message.
func (s *excelLinkService) ExtractLinks(ctx context.Context, data []byte, columnName string, opts domain.ProcessingOptions) domain.ExtractionResult {
	start := time.Now()
	res := domain.ExtractionResult{
		OperationID: uuid.NewString(),
		Links:       []domain.LinkRecord{},
	}

	out, err := s.extract(data, columnName, opts, &res)
	if err != nil {
		perr := domain.Classify(err)
		res.ErrorMessage = perr.Error()
		logger.WarnLog(ctx, "extract failed op=%s code=%s bytes_in=%d elapsed=%s err=%q",
			res.OperationID, perr.Code, len(data), time.Since(start), perr.Message)
		return res
	}

	res.OutputFile = out
	logger.InfoLog(ctx, "extract ok op=%s column=%q bytes_in=%d bytes_out=%d rows=%d links=%d elapsed=%s",
		res.OperationID, columnName, len(data), len(out), res.TotalRows, res.LinksFound, time.Since(start))
	return res
}

func (s *excelLinkService) extract(data []byte, columnName string, opts domain.ProcessingOptions, res *domain.ExtractionResult) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extract panicked: %v", r)
		}
	}()

	if err := validateUpload(data, opts); err != nil {
		return nil, err
	}

	doc, err := openDocument(data)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	header, found := doc.FindColumn(columnName, opts.MaxHeaderSearchRows)
	if !found {
		return nil, domain.NewInvalidColumnError(fmt.Sprintf(
			"column %q was not found in the first %d rows", columnName, opts.MaxHeaderSearchRows))
	}

	w, err := xlsxout.NewWriter(extractSheetName)
	if err != nil {
		return nil, err
	}
	serialized := false
	defer func() {
		if !serialized {
			w.Close()
		}
	}()

	// Header cells keep their original column positions; only the row moves
	// to 1.
	outRow := 1
	for _, row := range doc.Rows() {
		if row.Index == header.Row {
			for _, cell := range row.Cells {
				if err := w.SetCell(cell.Column, 1, cell.Value, xlsxout.StyleBold); err != nil {
					return nil, err
				}
			}
		}
		if row.Index <= header.Row {
			continue
		}
		if !row.HasData() {
			// Fully blank rows are dropped and do not count toward TotalRows.
			continue
		}

		outRow++
		extractedURL := ""
		for _, cell := range row.Cells {
			style := xlsxout.StyleDefault
			link, linked := doc.HyperlinkAt(cell.Column, row.Index)
			if linked {
				style = xlsxout.StyleHyperlink
			}
			if err := w.SetCell(cell.Column, outRow, cell.Value, style); err != nil {
				return nil, err
			}
			if linked && cell.Column == header.Column {
				extractedURL = link
				res.Links = append(res.Links, domain.LinkRecord{
					Row:   row.Index,
					Title: cell.Value,
					URL:   link,
				})
			}
		}
		// Surface the target column's URL as plain text in column B so the
		// reader sees it even though the styled cell renders as a link.
		if extractedURL != "" {
			if err := w.SetCell(2, outRow, extractedURL, xlsxout.StyleDefault); err != nil {
				return nil, err
			}
		}
	}

	if err := w.SetColumnWidth(1, extractTitleWidth); err != nil {
		return nil, err
	}
	if err := w.SetColumnWidth(2, extractURLWidth); err != nil {
		return nil, err
	}

	res.TotalRows = outRow - 1
	res.LinksFound = len(res.Links)

	serialized = true
	return w.Bytes()
}
