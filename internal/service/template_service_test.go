package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractionTemplateIsDeterministic(t *testing.T) {
	svc := newService(t)

	first, err := svc.ExtractionTemplate()
	require.NoError(t, err)
	second, err := svc.ExtractionTemplate()
	require.NoError(t, err)
	assert.Equal(t, first, second, "repeated renders must be byte-identical")

	f := reopen(t, first)
	assert.Equal(t, "Sample Links", f.GetSheetName(0))

	v, _ := f.GetCellValue("Sample Links", "A1")
	assert.Equal(t, "Title", v)
	v, _ = f.GetCellValue("Sample Links", "B1")
	assert.Equal(t, "URL", v)

	has, target, err := f.GetCellHyperLink("Sample Links", "A2")
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, "https://example.com/", target)

	// Column B carries the URL as plain text only.
	v, _ = f.GetCellValue("Sample Links", "B2")
	assert.Equal(t, "https://example.com/", v)
	has, _, err = f.GetCellHyperLink("Sample Links", "B2")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestMergeTemplateIsDeterministic(t *testing.T) {
	svc := newService(t)

	first, err := svc.MergeTemplate()
	require.NoError(t, err)
	second, err := svc.MergeTemplate()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	f := reopen(t, first)
	assert.Equal(t, "Sample Merge", f.GetSheetName(0))

	v, _ := f.GetCellValue("Sample Merge", "A1")
	assert.Equal(t, "Title", v)
	v, _ = f.GetCellValue("Sample Merge", "B4")
	assert.Equal(t, "https://stackoverflow.com", v)

	// Merge templates carry plain text only; the merge operation is what
	// turns the URL column into live hyperlinks.
	has, _, err := f.GetCellHyperLink("Sample Merge", "A2")
	require.NoError(t, err)
	assert.False(t, has)
}
