package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tonylturner/cbusdefs/internal/catalog"
	"github.com/tonylturner/cbusdefs/internal/errors"
)

func newCatalogCmd(state *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Definition catalog operations",
		Long: `Export the built-in tables as a YAML definition catalog, or check a
catalog against them.

A catalog lists each code space as an Enum or Flags definition with
one body item per named value, and is versioned with semver.`,
	}

	cmd.AddCommand(newCatalogExportCmd(state))
	cmd.AddCommand(newCatalogValidateCmd(state))

	return cmd
}

// --- catalog export ---

type catalogExportFlags struct {
	out string
}

func newCatalogExportCmd(state *cliState) *cobra.Command {
	flags := &catalogExportFlags{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the built-in tables as a catalog",
		Example: `  cbusdefs catalog export
  cbusdefs catalog export --out cbus.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			file := catalog.Export()
			if flags.out == "" {
				data, err := catalog.Marshal(file)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := catalog.Save(flags.out, file); err != nil {
				return errors.WrapCatalogError(err, flags.out)
			}
			state.log.Info("wrote %d definitions to %s", len(file.Spec), flags.out)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.out, "out", "", "Output file (default stdout)")

	return cmd
}

// --- catalog validate ---

type catalogValidateFlags struct {
	strict bool
}

func newCatalogValidateCmd(state *cliState) *cobra.Command {
	flags := &catalogValidateFlags{}

	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Check a catalog against the built-in tables",
		Long: `Check a catalog's schema, then compare it with the built-in tables.
Values the tables do not define are errors. Renamed values, unbound
definitions and values missing from the catalog are warnings, which
fail the check only with --strict or catalog.strict in the config.

The path defaults to catalog.path from the config.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			path := state.cfg.Catalog.Path
			if len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				return missingArgError(cmd, "path")
			}
			return runCatalogValidate(cmd, state, path, flags.strict || state.cfg.Catalog.Strict)
		},
	}

	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Treat warnings as failures")

	return cmd
}

func runCatalogValidate(cmd *cobra.Command, state *cliState, path string, strict bool) error {
	file, err := catalog.LoadAndValidate(path)
	if err != nil {
		return errors.WrapCatalogError(err, path)
	}

	result := catalog.ValidateAgainstRegistry(file)
	out := cmd.OutOrStdout()
	s := state.styles

	for _, e := range result.Errors {
		fmt.Fprintf(out, "%s %s\n", s.bad.Render("ERROR"), e)
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(out, "%s  %s\n", s.warn.Render("WARN"), w)
	}
	fmt.Fprintf(out, "%s: %d definitions, %d errors, %d warnings\n",
		path, len(file.Spec), len(result.Errors), len(result.Warnings))

	switch {
	case !result.IsValid():
		return errors.WrapCatalogError(fmt.Errorf("%d registry errors", len(result.Errors)), path)
	case strict && !result.IsClean():
		return errors.WrapCatalogError(fmt.Errorf("%d warnings in strict mode", len(result.Warnings)), path)
	}
	fmt.Fprintln(out, s.ok.Render("OK"))
	return nil
}
