package repository

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"voiceorder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFAQCSV(t *testing.T) {
	input := `Question,Response
What time is breakfast served?,"Breakfast is served from 6:30 to 10:30 AM, daily."
,orphan answer
Is there a pool?,
  Where is the gym?  ,  Second floor.
`
	entries, err := ReadFAQCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []model.FAQEntry{
		{Question: "What time is breakfast served?", Answer: "Breakfast is served from 6:30 to 10:30 AM, daily."},
		{Question: "Where is the gym?", Answer: "Second floor."},
	}, entries)
}

func TestReadFAQCSV_ColumnOrderAndCase(t *testing.T) {
	input := "id,ANSWER,question\n1,Open 24 hours.,When is the gym open?\n"

	entries, err := ReadFAQCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "When is the gym open?", entries[0].Question)
	assert.Equal(t, "Open 24 hours.", entries[0].Answer)
}

func TestReadFAQCSV_Errors(t *testing.T) {
	_, err := ReadFAQCSV(strings.NewReader(""))
	assert.Error(t, err)

	_, err = ReadFAQCSV(strings.NewReader("topic,text\na,b\n"))
	assert.ErrorIs(t, err, ErrMissingColumns)
}

func TestLoadFAQFromCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inquiries.csv")
	require.NoError(t, os.WriteFile(path, []byte("Question,Response\nIs there parking?,Yes.\n"), 0o644))

	entries, err := LoadFAQFromCSV(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	_, err = LoadFAQFromCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestLoadFAQFromCSV_BundledCorpus(t *testing.T) {
	entries, err := LoadFAQFromCSV(filepath.Join("..", "..", "data", "inquiries.csv"))
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
	for _, e := range entries {
		assert.NotEmpty(t, e.Question)
		assert.NotEmpty(t, e.Answer)
	}
}
