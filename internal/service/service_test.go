package service_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/linksheet/internal/domain"
	"github.com/linksheet/internal/service"
)

func newService(t *testing.T) service.ExcelLinkService {
	t.Helper()
	svc, err := service.NewExcelLinkService()
	require.NoError(t, err)
	return svc
}

func buildWorkbook(t *testing.T, build func(f *excelize.File, sheet string)) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	build(f, f.GetSheetName(0))
	buf := new(bytes.Buffer)
	_, err := f.WriteTo(buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func reopen(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func ctx() context.Context {
	return context.Background()
}

func opts() domain.ProcessingOptions {
	return domain.DefaultOptions()
}

func TestEmptyInputIsRejected(t *testing.T) {
	svc := newService(t)

	ext := svc.ExtractLinks(ctx(), nil, "Title", opts())
	require.Nil(t, ext.OutputFile)
	require.True(t, strings.HasPrefix(ext.ErrorMessage, "E001"), ext.ErrorMessage)

	mrg := svc.MergeLinks(ctx(), []byte{}, opts())
	require.Nil(t, mrg.OutputFile)
	require.True(t, strings.HasPrefix(mrg.ErrorMessage, "E001"), mrg.ErrorMessage)
}

func TestOversizedInputIsRejectedBeforeParsing(t *testing.T) {
	svc := newService(t)
	small := opts()
	small.MaxFileSizeBytes = 16

	// The payload is not even a valid workbook; the size gate must trip
	// before any parsing happens.
	payload := bytes.Repeat([]byte{0xAB}, 64)

	ext := svc.ExtractLinks(ctx(), payload, "Title", small)
	require.Nil(t, ext.OutputFile)
	require.True(t, strings.HasPrefix(ext.ErrorMessage, "E001"), ext.ErrorMessage)

	mrg := svc.MergeLinks(ctx(), payload, small)
	require.Nil(t, mrg.OutputFile)
	require.True(t, strings.HasPrefix(mrg.ErrorMessage, "E001"), mrg.ErrorMessage)
}

func TestUnrecognizedSignatureIsRejected(t *testing.T) {
	svc := newService(t)

	res := svc.ExtractLinks(ctx(), []byte("this is just text, not a workbook"), "Title", opts())
	require.Nil(t, res.OutputFile)
	require.True(t, strings.HasPrefix(res.ErrorMessage, "E001"), res.ErrorMessage)

	tiny := svc.ExtractLinks(ctx(), []byte{0x01, 0x02}, "Title", opts())
	require.True(t, strings.HasPrefix(tiny.ErrorMessage, "E001"), tiny.ErrorMessage)
}

func TestLegacyOLE2IsReportedAsProcessingError(t *testing.T) {
	svc := newService(t)
	payload := append([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, make([]byte, 512)...)

	res := svc.ExtractLinks(ctx(), payload, "Title", opts())
	require.Nil(t, res.OutputFile)
	require.True(t, strings.HasPrefix(res.ErrorMessage, "E003"), res.ErrorMessage)
	require.Contains(t, res.ErrorMessage, ".xls")
}
