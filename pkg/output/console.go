// Package output reports osort's per-file outcomes to the console, the
// way github.com/aiseeq/glint/pkg/output reports lint violations: colored
// via fatih/color, writer-injectable for tests, with a final tally line.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Reporter accumulates per-file outcomes for one osort run and prints
// them as it goes, finishing with a single summary line. Errorf and
// Sorting print immediately; the Record* methods only update the tally
// that Summary prints at the end.
type Reporter struct {
	w     io.Writer
	check bool

	resorted   int
	unchanged  int
	unsortable int
}

// NewReporter creates a Reporter writing to w. check selects the
// "would be"-phrased summary wording used by --check's report-only mode.
func NewReporter(w io.Writer, check bool) *Reporter {
	return &Reporter{w: w, check: check}
}

// Errorf prints one "ERROR: ..." line. A single file can produce several
// of these (e.g. one per unresolved reference) before its outcome is
// recorded.
func (r *Reporter) Errorf(format string, args ...any) {
	red := color.New(color.FgRed)
	red.Fprintf(r.w, "ERROR: "+format+"\n", args...)
}

// Sorting prints the apply-mode notice that path is being rewritten.
func (r *Reporter) Sorting(path string) {
	green := color.New(color.FgGreen)
	green.Fprintf(r.w, "Sorting %s\n", path)
}

// RecordResorted tallies a file that was (or, in check mode, would be)
// rewritten into a different statement order.
func (r *Reporter) RecordResorted() { r.resorted++ }

// RecordUnchanged tallies a file whose sorted output is byte-identical
// to its input.
func (r *Reporter) RecordUnchanged() { r.unchanged++ }

// RecordUnsortable tallies a file that some policy (or a missing/unreadable
// path) kept osort from sorting at all.
func (r *Reporter) RecordUnsortable() { r.unsortable++ }

// Summary prints the run's final tally line, or the empty-input notice
// when nothing was scanned at all.
func (r *Reporter) Summary() {
	total := r.resorted + r.unchanged + r.unsortable
	if total == 0 {
		fmt.Fprintln(r.w, "No files are present to be sorted. Nothing to do.")
		return
	}

	var parts []string
	if r.resorted > 0 {
		parts = append(parts, phrase(r.resorted, r.resortedVerb()))
	}
	if r.unchanged > 0 {
		parts = append(parts, phrase(r.unchanged, r.unchangedVerb()))
	}
	if r.unsortable > 0 {
		parts = append(parts, phrase(r.unsortable, r.unsortableVerb()))
	}
	fmt.Fprintln(r.w, strings.Join(parts, ", "))
}

func phrase(n int, verb string) string {
	noun := "file"
	if n != 1 {
		noun = "files"
	}
	return fmt.Sprintf("%d %s %s", n, noun, verb)
}

func (r *Reporter) resortedVerb() string {
	if r.check {
		return "would be resorted"
	}
	if r.resorted == 1 {
		return "was resorted"
	}
	return "were resorted"
}

func (r *Reporter) unchangedVerb() string {
	if r.check {
		return "would be left unchanged"
	}
	if r.unchanged == 1 {
		return "was left unchanged"
	}
	return "were left unchanged"
}

func (r *Reporter) unsortableVerb() string {
	if r.check {
		return "would not be sortable"
	}
	if r.unsortable == 1 {
		return "was not sortable"
	}
	return "were not sortable"
}
