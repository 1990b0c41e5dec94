package output

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestSummary_EmptyInput(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)
	r.Summary()
	assert.Equal(t, "No files are present to be sorted. Nothing to do.\n", buf.String())
}

func TestSummary_ApplyModeSingular(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)
	r.RecordResorted()
	r.RecordUnchanged()
	r.RecordUnsortable()
	r.Summary()
	assert.Equal(t, "1 file was resorted, 1 file was left unchanged, 1 file was not sortable\n", buf.String())
}

func TestSummary_ApplyModePlural(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)
	r.RecordResorted()
	r.RecordUnchanged()
	r.RecordUnchanged()
	r.Summary()
	assert.Equal(t, "1 file was resorted, 2 files were left unchanged\n", buf.String())
}

func TestSummary_CheckMode(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, true)
	r.RecordResorted()
	r.RecordUnchanged()
	r.RecordUnchanged()
	r.Summary()
	assert.Equal(t, "1 file would be resorted, 2 files would be left unchanged\n", buf.String())
}

func TestSummary_OnlyNonZeroCategories(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)
	r.RecordUnchanged()
	r.Summary()
	assert.Equal(t, "1 file was left unchanged\n", buf.String())
}

func TestErrorf_PrefixesERROR(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)
	r.Errorf("%s does not exist", "missing.py")
	assert.Equal(t, "ERROR: missing.py does not exist\n", buf.String())
}

func TestSorting_PrintsNotice(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)
	r.Sorting("file.py")
	assert.Equal(t, "Sorting file.py\n", buf.String())
}
