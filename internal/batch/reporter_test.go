package batch

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func newCapturedReporter(t *testing.T) (*Reporter, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return NewReporter(out, errOut), out, errOut
}

func TestReporterAnnounce(t *testing.T) {
	r, out, errOut := newCapturedReporter(t)

	r.Announce(Add{Dependency: "requests", Version: "2.31.0"}, []string{"/repos/p1", "/repos/p2"})

	got := out.String()
	for _, want := range []string{
		"trying to add requests=2.31.0 to the following projects:",
		"/repos/p1",
		"/repos/p2",
		"----------------",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Announce output missing %q:\n%s", want, got)
		}
	}
	if errOut.Len() != 0 {
		t.Errorf("Announce wrote to the error stream: %q", errOut.String())
	}
}

func TestReporterInvalidGoesToErrorStream(t *testing.T) {
	r, out, errOut := newCapturedReporter(t)

	r.Invalid([]string{"/nope", "/also-nope"})

	if out.Len() != 0 {
		t.Errorf("Invalid wrote to stdout: %q", out.String())
	}
	got := errOut.String()
	if !strings.Contains(got, "/nope") || !strings.Contains(got, "/also-nope") {
		t.Errorf("Invalid output missing offending paths: %q", got)
	}
}

func TestReporterProgress(t *testing.T) {
	r, out, _ := newCapturedReporter(t)

	r.Project(Remove{Dependency: "requests"}, "/repos/p1")
	r.Step(1, 3)

	got := out.String()
	if !strings.Contains(got, "removing requests from /repos/p1") {
		t.Errorf("missing per-project marker: %q", got)
	}
	if !strings.Contains(got, "[1/3]") {
		t.Errorf("missing progress indicator: %q", got)
	}
}

func TestReporterDone(t *testing.T) {
	t.Run("all succeeded", func(t *testing.T) {
		r, out, errOut := newCapturedReporter(t)
		s := &Summary{Results: []Result{{Project: "/repos/p1"}, {Project: "/repos/p2"}}}

		r.Done(s)

		if !strings.Contains(out.String(), "2 project(s) processed") {
			t.Errorf("Done output = %q", out.String())
		}
		if errOut.Len() != 0 {
			t.Errorf("Done wrote to the error stream on success: %q", errOut.String())
		}
	})

	t.Run("with failures", func(t *testing.T) {
		r, _, errOut := newCapturedReporter(t)
		s := &Summary{Results: []Result{
			{Project: "/repos/p1"},
			{Project: "/repos/p2", ExitCode: 2},
		}}

		r.Done(s)

		got := errOut.String()
		if !strings.Contains(got, "1 of 2 project(s) failed") {
			t.Errorf("Done output missing failure count: %q", got)
		}
		if !strings.Contains(got, "/repos/p2: exit status 2") {
			t.Errorf("Done output missing failed project detail: %q", got)
		}
	})
}
