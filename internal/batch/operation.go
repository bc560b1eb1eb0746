// Package batch composes package-manager invocations and drives them across
// a set of projects.
package batch

import "fmt"

// Operation is one of the four batch actions. Each variant carries its own
// option set and composes the external command's argument list once; the
// same arguments are reused verbatim for every project in the batch.
type Operation interface {
	// Args returns the argument list passed to the package-manager binary,
	// starting with the operation verb.
	Args() []string
	// Describe returns an imperative phrase ("add requests to") used when
	// announcing the batch.
	Describe() string
	// Doing returns the present-participle phrase ("adding requests to")
	// used in per-project progress markers.
	Doing() string
}

// Add adds a dependency to each project.
type Add struct {
	Dependency string
	Version    string // optional constraint, joined as name=version
	Group      string
	Optional   bool
	LockOnly   bool
}

// token returns the dependency argument, with the version constraint
// appended when one was given.
func (a Add) token() string {
	if a.Version != "" {
		return a.Dependency + "=" + a.Version
	}
	return a.Dependency
}

func (a Add) Args() []string {
	args := []string{"add", a.token()}
	if a.Group != "" {
		args = append(args, "--group", a.Group)
	}
	if a.Optional {
		args = append(args, "--optional")
	}
	if a.LockOnly {
		args = append(args, "--lock")
	}
	return args
}

func (a Add) Describe() string { return fmt.Sprintf("add %s to", a.token()) }
func (a Add) Doing() string    { return fmt.Sprintf("adding %s to", a.Dependency) }

// Remove removes a dependency from each project.
type Remove struct {
	Dependency string
	Group      string
	LockOnly   bool
}

func (r Remove) Args() []string {
	args := []string{"remove", r.Dependency}
	if r.Group != "" {
		args = append(args, "--group", r.Group)
	}
	if r.LockOnly {
		args = append(args, "--lock")
	}
	return args
}

func (r Remove) Describe() string { return fmt.Sprintf("remove %s from", r.Dependency) }
func (r Remove) Doing() string    { return fmt.Sprintf("removing %s from", r.Dependency) }

// Update updates all dependencies of each project.
type Update struct {
	LockOnly bool
	Sync     bool
}

func (u Update) Args() []string {
	args := []string{"update"}
	if u.LockOnly {
		args = append(args, "--lock")
	}
	if u.Sync {
		args = append(args, "--sync")
	}
	return args
}

func (u Update) Describe() string { return "update dependencies for" }
func (u Update) Doing() string    { return "updating dependencies for" }

// Lock refreshes the lock file of each project.
type Lock struct {
	NoUpdate bool
}

func (l Lock) Args() []string {
	args := []string{"lock"}
	if l.NoUpdate {
		args = append(args, "--no-update")
	}
	return args
}

func (l Lock) Describe() string { return "lock dependencies for" }
func (l Lock) Doing() string    { return "locking dependencies for" }
