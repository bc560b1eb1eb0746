package main

import (
	"github.com/charmbracelet/huh"

	"github.com/jharibo/anthologist/internal/batch"
)

// pickProjects lets the user trim the validated project list and confirm
// the batch before any command runs. Returns nil when the user declines.
func pickProjects(op batch.Operation, projects []string) ([]string, error) {
	chosen := append([]string(nil), projects...)
	opts := make([]huh.Option[string], len(projects))
	for i, p := range projects {
		opts[i] = huh.NewOption(p, p).Selected(true)
	}

	confirmed := true
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select projects").
				Description("Anthologist will "+op.Describe()+" each selected project.").
				Options(opts...).
				Value(&chosen),
			huh.NewConfirm().
				Title("Run the batch now?").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, nil
	}
	return chosen, nil
}
