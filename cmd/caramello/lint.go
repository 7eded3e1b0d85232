package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func (a *app) lintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Print DSL diagnostics; exit 1 when any exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entities, issues, err := a.compile()
			if err != nil {
				return err
			}
			a.out.Section("Lint")
			for _, is := range issues {
				a.out.Warning("%s", is)
			}
			if len(issues) > 0 {
				return errors.New(pluralize(len(issues), "issue", "issues") + " found")
			}
			a.out.Success("%s clean", pluralize(len(entities), "entity", "entities"))
			return nil
		},
	}
}
