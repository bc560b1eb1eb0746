package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jharibo/anthologist/internal/batch"
	"github.com/jharibo/anthologist/internal/project"
)

var (
	addCmd = &cobra.Command{
		Use:   "add dependency",
		Short: "Add a dependency to multiple projects",
		Long:  `Add a dependency to every target project, optionally pinned to a version constraint or placed in a dependency group.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			constraint, _ := cmd.Flags().GetString("version")
			group, _ := cmd.Flags().GetString("group")
			optional, _ := cmd.Flags().GetBool("optional")
			lockOnly, _ := cmd.Flags().GetBool("lock")

			return runBatch(cmd, batch.Add{
				Dependency: args[0],
				Version:    constraint,
				Group:      group,
				Optional:   optional,
				LockOnly:   lockOnly,
			})
		},
	}

	updateCmd = &cobra.Command{
		Use:   "update",
		Short: "Update dependencies for multiple projects",
		Long:  `Update all dependencies of every target project to their latest compatible versions.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lockOnly, _ := cmd.Flags().GetBool("lock")
			sync, _ := cmd.Flags().GetBool("sync")

			return runBatch(cmd, batch.Update{LockOnly: lockOnly, Sync: sync})
		},
	}

	removeCmd = &cobra.Command{
		Use:   "remove dependency",
		Short: "Remove a dependency from multiple projects",
		Long:  `Remove a dependency from every target project, optionally from a specific dependency group.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			group, _ := cmd.Flags().GetString("group")
			lockOnly, _ := cmd.Flags().GetBool("lock")

			return runBatch(cmd, batch.Remove{
				Dependency: args[0],
				Group:      group,
				LockOnly:   lockOnly,
			})
		},
	}

	lockCmd = &cobra.Command{
		Use:   "lock",
		Short: "Lock dependencies for multiple projects",
		Long:  `Refresh the lock file of every target project.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			noUpdate, _ := cmd.Flags().GetBool("no-update")

			return runBatch(cmd, batch.Lock{NoUpdate: noUpdate})
		},
	}
)

func init() {
	for _, cmd := range []*cobra.Command{addCmd, updateCmd, removeCmd, lockCmd} {
		cmd.Flags().StringArray("projects", nil, "paths to poetry-managed projects (repeatable)")
		cmd.Flags().StringArray("set", nil, "named project set from the config file (repeatable)")
		cmd.Flags().BoolP("interactive", "i", false, "choose projects interactively before running")
	}

	addCmd.Flags().String("version", "", "version constraint of the dependency")
	addCmd.Flags().StringP("group", "G", "", "the group to add the dependency to")
	addCmd.Flags().Bool("optional", false, "add as an optional dependency")
	addCmd.Flags().Bool("lock", false, "do not perform install (only update the lockfile)")

	updateCmd.Flags().Bool("lock", false, "do not perform install (only update the lockfile)")
	updateCmd.Flags().Bool("sync", false, "synchronize the environment with the locked packages")

	removeCmd.Flags().StringP("group", "G", "", "the group to remove the dependency from")
	removeCmd.Flags().Bool("lock", false, "do not perform operations (only update the lockfile)")

	lockCmd.Flags().Bool("no-update", false, "only refresh the lock file - do not update dependencies to latest available compatible versions")
}

// runBatch resolves and validates the target projects, then dispatches the
// operation across them. Per-project command failures are reported but do
// not fail the process; only validation and environment errors do.
func runBatch(cmd *cobra.Command, op batch.Operation) error {
	projects, err := resolveProjects(cmd)
	if err != nil {
		return err
	}

	reporter := batch.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	if missing := project.Missing(projects); missing != nil {
		reporter.Invalid(missing)
		return fmt.Errorf("%d project path(s) are not directories", len(missing))
	}

	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		projects, err = pickProjects(op, projects)
		if err != nil {
			return err
		}
		if len(projects) == 0 {
			reporter.Info("Nothing selected, nothing to do.")
			return nil
		}
	}

	tool, err := batch.LookupTool(viper.GetString("tool"))
	if err != nil {
		return err
	}

	runner := &batch.Runner{
		Tool:     tool,
		Exec:     batch.NewExecRunner(cmd.OutOrStdout(), cmd.ErrOrStderr()),
		Reporter: reporter,
	}
	runner.Dispatch(context.Background(), op, projects)

	return nil
}

// resolveProjects merges explicit --projects values with any --set lists
// from the config file, preserving order and dropping duplicates.
func resolveProjects(cmd *cobra.Command) ([]string, error) {
	explicit, _ := cmd.Flags().GetStringArray("projects")
	sets, _ := cmd.Flags().GetStringArray("set")

	projects := append([]string(nil), explicit...)
	for _, name := range sets {
		key := "sets." + name
		if !viper.IsSet(key) {
			return nil, fmt.Errorf("project set %q not found in config", name)
		}
		projects = append(projects, viper.GetStringSlice(key)...)
	}

	projects = dedupePaths(projects)
	if len(projects) == 0 {
		return nil, fmt.Errorf("no projects given: use --projects or --set")
	}
	return projects, nil
}

func dedupePaths(paths []string) []string {
	seen := make(map[string]bool)
	var result []string

	for _, p := range paths {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" && !seen[trimmed] {
			seen[trimmed] = true
			result = append(result, trimmed)
		}
	}

	return result
}
