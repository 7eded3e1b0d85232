package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"caramello/internal/validate"
)

var errValidation = errors.New("validation failed")

func (a *app) validateCmd() *cobra.Command {
	var testCommand string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check generated artifacts against the DSL and run the generated tests",
		Long: `Validate checks, for every manifest entity, that its model file declares the
table and Read view and that routed entities have a test file. It then checks the
migrations directory and, when every check passed, runs the test command.

Exit code 0 when everything passed, 1 otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := validate.OptionsFrom(a.cfg)
			if cmd.Flags().Changed("test-command") {
				opts.TestCommand = testCommand
			}

			a.out.Section("Validate")
			res, err := validate.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}
			for _, f := range res.Findings {
				switch f.Severity {
				case validate.SeverityOK:
					a.out.Success("%s", f.Message)
				case validate.SeverityWarning:
					a.out.Warning("%s", f.Message)
				default:
					a.out.Error("%s", f.Message)
				}
			}
			if n := res.Errors(); n > 0 {
				return fmt.Errorf("%w: %s", errValidation, pluralize(n, "check", "checks")+" failed")
			}

			if res.TestsRun {
				a.out.Section("Tests: " + opts.TestCommand)
				if res.TestErr != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), strings.TrimSpace(res.TestOutput))
					a.out.Error("%v", res.TestErr)
					return errValidation
				}
				a.out.Success("tests passed")
			}
			a.out.Success("validation successful")
			return nil
		},
	}
	cmd.Flags().StringVar(&testCommand, "test-command", "", "command running the generated tests (empty skips)")
	return cmd
}
