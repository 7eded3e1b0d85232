package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"caramello/internal/pg"
)

func (a *app) migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Generate and apply SQL migrations",
	}
	cmd.AddCommand(a.migrateGenerateCmd())
	cmd.AddCommand(a.migrateApplyCmd())
	return cmd
}

func (a *app) migrateGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate [name]",
		Short: "Write the full schema of the manifest entities as a new migration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "schema"
			if len(args) == 1 {
				name = args[0]
			}
			entities, issues, err := a.compile()
			if err != nil {
				return err
			}
			for _, is := range issues {
				a.out.Warning("%s", is)
			}
			if len(entities) == 0 {
				return errors.New("no entity could be loaded")
			}

			m, err := pg.WriteMigration(a.cfg.MigrationsDir, name, pg.NewVersion(time.Now()), entities)
			if err != nil {
				return err
			}
			a.out.Success("wrote %s", m.Up)
			a.out.Success("wrote %s", m.Down)
			return nil
		},
	}
}

func (a *app) migrateApplyCmd() *cobra.Command {
	var dbURL string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply every up migration in version order to Postgres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			url := a.cfg.DatabaseURL()
			if cmd.Flags().Changed("db") {
				url = dbURL
			}
			if url == "" {
				return errors.New("no database: pass --db or set CARAMELLO_DB_URL")
			}

			db, err := pg.Open(cmd.Context(), url)
			if err != nil {
				return err
			}
			defer db.Close()

			migs, err := pg.ApplyMigrations(cmd.Context(), db, a.cfg.MigrationsDir)
			if err != nil {
				return err
			}
			for _, m := range migs {
				a.out.Success("applied %s_%s", m.Version, m.Name)
			}
			if len(migs) == 0 {
				a.out.Warning("no migrations in %s", a.cfg.MigrationsDir)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dbURL, "db", "", "Postgres URL (default from config)")
	return cmd
}
