package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// DefaultTool is the package-manager binary used when no override is
// configured.
const DefaultTool = "poetry"

// CommandRunner executes one external command in the given working
// directory and returns its exit code. Implementations stream the command's
// own output; the runner does not capture or interpret it.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) (int, error)
}

// execRunner runs commands with os/exec, passing subprocess output through
// to the attached writers.
type execRunner struct {
	stdout io.Writer
	stderr io.Writer
}

// NewExecRunner returns a CommandRunner backed by os/exec. Subprocess
// stdout and stderr are forwarded to the given writers.
func NewExecRunner(stdout, stderr io.Writer) CommandRunner {
	return &execRunner{stdout: stdout, stderr: stderr}
}

func (e *execRunner) Run(ctx context.Context, dir, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

// Result is the outcome of one per-project invocation.
type Result struct {
	Project  string
	ExitCode int
	Err      error // non-nil when the command could not run at all
}

// OK reports whether the invocation ran and exited zero.
func (r Result) OK() bool { return r.Err == nil && r.ExitCode == 0 }

// Summary aggregates per-project results for one batch. The batch itself is
// best-effort: a failing project never stops the remaining ones, so the
// summary is the only place failures are collected.
type Summary struct {
	Results []Result
}

// Failed returns the results that did not succeed, in batch order.
func (s *Summary) Failed() []Result {
	var failed []Result
	for _, r := range s.Results {
		if !r.OK() {
			failed = append(failed, r)
		}
	}
	return failed
}

// OK reports whether every invocation in the batch succeeded. An empty
// batch is vacuously OK.
func (s *Summary) OK() bool { return len(s.Failed()) == 0 }

// Runner dispatches one Operation across a list of projects, sequentially
// and in the given order. It is stateless between batches.
type Runner struct {
	Tool     string
	Exec     CommandRunner
	Reporter *Reporter
}

// LookupTool verifies that the named package-manager binary (DefaultTool
// when empty) is on the search path, returning the name to dispatch with.
func LookupTool(tool string) (string, error) {
	if tool == "" {
		tool = DefaultTool
	}
	if _, err := exec.LookPath(tool); err != nil {
		return "", fmt.Errorf("finding %s executable: %w", tool, err)
	}
	return tool, nil
}

// Dispatch composes the operation's arguments once and runs the external
// tool with them in every project directory, reporting progress as it goes.
// Callers must have validated the project list first; per-project failures
// land in the Summary and do not interrupt the batch.
func (r *Runner) Dispatch(ctx context.Context, op Operation, projects []string) *Summary {
	tool := r.Tool
	if tool == "" {
		tool = DefaultTool
	}

	args := op.Args()
	summary := &Summary{}

	r.Reporter.Announce(op, projects)
	for i, proj := range projects {
		r.Reporter.Project(op, proj)
		code, err := r.Exec.Run(ctx, proj, tool, args...)
		summary.Results = append(summary.Results, Result{
			Project:  proj,
			ExitCode: code,
			Err:      err,
		})
		r.Reporter.Step(i+1, len(projects))
	}
	r.Reporter.Done(summary)

	return summary
}
