package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tonylturner/cbusdefs/internal/config"
)

func newConfigCmd(state *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration file operations",
	}

	cmd.AddCommand(newConfigInitCmd(state))
	cmd.AddCommand(newConfigShowCmd(state))

	return cmd
}

type configInitFlags struct {
	force bool
}

func newConfigInitCmd(state *cliState) *cobra.Command {
	flags := &configInitFlags{}

	cmd := &cobra.Command{
		Use:   "init <path>",
		Short: "Write the default configuration",
		Example: `  cbusdefs config init cbusdefs.yaml
  cbusdefs config init cbusdefs.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			if len(args) == 0 {
				return missingArgError(cmd, "path")
			}
			path := args[0]
			if _, err := os.Stat(path); err == nil && !flags.force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			state.log.Info("wrote %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.force, "force", false, "Overwrite an existing file")

	return cmd
}

func newConfigShowCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Encode(state.cfg, config.FormatYAML)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
