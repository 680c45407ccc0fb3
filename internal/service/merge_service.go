package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/linksheet/internal/domain"
	"github.com/linksheet/internal/logger"
	"github.com/linksheet/pkg/urlsan"
	"github.com/linksheet/pkg/xlsxout"
)

const (
	mergeTitleWidth = 40
	mergeURLWidth   = 60
)

// MergeLinks builds a workbook where each row's Title cell links to its
// sanitized URL. Rows whose URL fails sanitization are kept as plain text;
// TotalRows reflects every non-blank input row.
func (s *excelLinkService) MergeLinks(ctx context.Context, data []byte, opts domain.ProcessingOptions) domain.MergeResult {
	start := time.Now()
	res := domain.MergeResult{
		OperationID: uuid.NewString(),
		Links:       []domain.LinkRecord{},
	}

	out, err := s.merge(data, opts, &res)
	if err != nil {
		perr := domain.Classify(err)
		res.ErrorMessage = perr.Error()
		logger.WarnLog(ctx, "merge failed op=%s code=%s bytes_in=%d elapsed=%s err=%q",
			res.OperationID, perr.Code, len(data), time.Since(start), perr.Message)
		return res
	}

	res.OutputFile = out
	logger.InfoLog(ctx, "merge ok op=%s bytes_in=%d bytes_out=%d rows=%d links=%d elapsed=%s",
		res.OperationID, len(data), len(out), res.TotalRows, res.LinksCreated, time.Since(start))
	return res
}

func (s *excelLinkService) merge(data []byte, opts domain.ProcessingOptions, res *domain.MergeResult) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("merge panicked: %v", r)
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

	titleHeader, titleFound := doc.FindColumn(titleColumnName, opts.MaxHeaderSearchRows)
	urlHeader, urlFound := doc.FindColumn(urlColumnName, opts.MaxHeaderSearchRows)
	switch {
	case !titleFound && !urlFound:
		return nil, domain.NewExcelProcessingError(fmt.Sprintf(
			"neither a %q nor a %q column was found in the first %d rows",
			titleColumnName, urlColumnName, opts.MaxHeaderSearchRows))
	case !titleFound:
		return nil, domain.NewInvalidColumnError(fmt.Sprintf(
			"column %q was not found in the first %d rows", titleColumnName, opts.MaxHeaderSearchRows))
	case !urlFound:
		return nil, domain.NewInvalidColumnError(fmt.Sprintf(
			"column %q was not found in the first %d rows", urlColumnName, opts.MaxHeaderSearchRows))
	}

	// The two headers may sit in different rows; data starts after the
	// lower of the two so neither header leaks into the output.
	headerRow := titleHeader.Row
	if urlHeader.Row > headerRow {
		headerRow = urlHeader.Row
	}

	w, err := xlsxout.NewWriter(mergeSheetName)
	if err != nil {
		return nil, err
	}
	serialized := false
	defer func() {
		if !serialized {
			w.Close()
		}
	}()

	if err := w.SetCell(1, 1, titleColumnName, xlsxout.StyleMergeHeader); err != nil {
		return nil, err
	}
	if err := w.SetCell(2, 1, urlColumnName, xlsxout.StyleMergeHeader); err != nil {
		return nil, err
	}

	outRow := 1
	for _, row := range doc.Rows() {
		if row.Index <= headerRow {
			continue
		}
		title := strings.TrimSpace(row.Value(titleHeader.Column))
		rawURL := strings.TrimSpace(row.Value(urlHeader.Column))
		if title == "" && rawURL == "" {
			continue
		}

		outRow++
		sanitized, ok := urlsan.Sanitize(rawURL, opts.MaxURLLength)

		titleStyle := xlsxout.StyleDefault
		if ok {
			titleStyle = xlsxout.StyleHyperlink
		}
		if err := w.SetCell(1, outRow, title, titleStyle); err != nil {
			return nil, err
		}
		if err := w.SetCell(2, outRow, rawURL, xlsxout.StyleDefault); err != nil {
			return nil, err
		}

		if ok {
			if err := w.SetHyperlink(1, outRow, sanitized); err != nil {
				return nil, err
			}
			res.LinksCreated++
			res.Links = append(res.Links, domain.LinkRecord{
				Row:   outRow,
				Title: title,
				URL:   sanitized,
			})
		}
	}

	if err := w.SetColumnWidth(1, mergeTitleWidth); err != nil {
		return nil, err
	}
	if err := w.SetColumnWidth(2, mergeURLWidth); err != nil {
		return nil, err
	}

	res.TotalRows = outRow - 1

	serialized = true
	return w.Bytes()
}
