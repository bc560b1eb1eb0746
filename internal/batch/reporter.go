package batch

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Reporter renders user-facing batch progress. It is constructed with its
// output writers so tests can capture what it prints without touching
// process-global state.
type Reporter struct {
	out     io.Writer
	errOut  io.Writer
	magenta *color.Color
	red     *color.Color
}

// NewReporter returns a Reporter writing progress to out and problems to
// errOut.
func NewReporter(out, errOut io.Writer) *Reporter {
	return &Reporter{
		out:     out,
		errOut:  errOut,
		magenta: color.New(color.FgMagenta),
		red:     color.New(color.FgRed),
	}
}

// Invalid reports project paths that failed validation.
func (r *Reporter) Invalid(paths []string) {
	r.red.Fprintf(r.errOut, "The following projects do not exist: %s\n", strings.Join(paths, ", "))
}

// Announce prints the batch banner and the target project list.
func (r *Reporter) Announce(op Operation, projects []string) {
	r.magenta.Fprintf(r.out, "\U0001f4d6 Anthologist trying to %s the following projects:\n\n", op.Describe())
	for _, p := range projects {
		r.magenta.Fprintln(r.out, p)
	}
	r.magenta.Fprintln(r.out, "----------------")
}

// Project marks the start of one per-project invocation.
func (r *Reporter) Project(op Operation, project string) {
	r.magenta.Fprintf(r.out, "\nAnthologist %s %s:\n", op.Doing(), project)
}

// Step advances the visible progress indicator.
func (r *Reporter) Step(current, total int) {
	r.magenta.Fprintf(r.out, "[%d/%d]\n", current, total)
}

// Done prints the batch outcome. Failures are listed per project; the batch
// still counts as finished since later projects ran regardless.
func (r *Reporter) Done(s *Summary) {
	if s.OK() {
		r.magenta.Fprintf(r.out, "\nDone: %d project(s) processed.\n", len(s.Results))
		return
	}
	failed := s.Failed()
	r.red.Fprintf(r.errOut, "\nDone with failures: %d of %d project(s) failed:\n", len(failed), len(s.Results))
	for _, f := range failed {
		if f.Err != nil {
			r.red.Fprintf(r.errOut, "  %s: %v\n", f.Project, f.Err)
		} else {
			r.red.Fprintf(r.errOut, "  %s: exit status %d\n", f.Project, f.ExitCode)
		}
	}
}

// Info prints an uncolored informational line.
func (r *Reporter) Info(format string, a ...any) {
	fmt.Fprintf(r.out, format+"\n", a...)
}
