package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"caramello/internal/driver"
)

func (a *app) generateCmd() *cobra.Command {
	var (
		reportPath string
		watch      bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write models, routers and tests for every manifest entity",
		Long: `Generate processes the manifest entities in order. A document that cannot be
loaded is reported and skipped; the remaining entities are still generated.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := driver.OptionsFrom(a.cfg)
			opts.Logger = a.log

			if watch {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
				defer stop()
				a.out.Info("watching %s, interrupt to stop", a.cfg.DSLDir)
				return driver.Watch(ctx, opts, driver.DefaultDebounce, func(rep *driver.Report, err error) {
					if err := a.report(rep, err, reportPath); err != nil {
						a.out.Error("%v", err)
					}
				}, a.cfg.DSLDir, a.cfg.EntitiesPath())
			}
			rep, err := driver.Run(opts)
			return a.report(rep, err, reportPath)
		},
	}
	cmd.Flags().StringVar(&reportPath, "report", "", "write the run report as JSON to this file")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "regenerate whenever the DSL changes")
	return cmd
}

// report prints one run and stores it when reportPath is set.
func (a *app) report(rep *driver.Report, err error, reportPath string) error {
	a.out.Section("Generate")
	if rep != nil && reportPath != "" {
		if werr := rep.WriteJSON(reportPath); werr != nil {
			return fmt.Errorf("write report: %w", werr)
		}
	}
	if err != nil {
		return err
	}

	for _, res := range rep.Results {
		name := res.Entity
		if name == "" {
			name = res.Document
		}
		switch {
		case res.Skipped:
			a.out.Error("%s skipped: %s", name, res.Error)
		case res.Error != "":
			a.out.Warning("%s: %s", name, res.Error)
		default:
			a.out.Success("%s (%s)", name, pluralize(len(res.Files), "file", "files"))
		}
	}
	a.out.Info("run %s", rep.RunID)
	if n := rep.Failed(); n > 0 {
		return errors.New(pluralize(n, "entity", "entities") + " not fully generated")
	}
	return nil
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
