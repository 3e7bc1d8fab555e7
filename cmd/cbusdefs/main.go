package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tonylturner/cbusdefs/internal/capture"
	"github.com/tonylturner/cbusdefs/internal/catalog"
	"github.com/tonylturner/cbusdefs/internal/config"
	"github.com/tonylturner/cbusdefs/internal/logging"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// cliState is shared by every subcommand of one invocation.
type cliState struct {
	configPath string
	logLevel   string
	logFile    string
	noColor    bool

	cfg    *config.Config
	log    *logging.Logger
	styles styles
}

func newRootCmd() (*cobra.Command, *cliState) {
	state := &cliState{cfg: config.Default(), log: logging.Nop(), styles: newStyles(true)}

	rootCmd := &cobra.Command{
		Use:   "cbusdefs",
		Short: "CBUS/VLCB protocol constant registry",
		Long: `cbusdefs looks up and validates the constants of the CBUS and VLCB
layout control protocols: opcodes, manufacturers, module types,
processors, node parameters and capability flags. It can also
decode frames, classify SocketCAN captures and keep YAML
definition catalogs in step with the built-in tables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return state.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&state.configPath, "config", "", "Config file (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().StringVar(&state.logLevel, "log-level", "", "Log level: silent, error, info, verbose, debug")
	rootCmd.PersistentFlags().StringVar(&state.logFile, "log-file", "", "Write logs to file")
	rootCmd.PersistentFlags().BoolVar(&state.noColor, "no-color", false, "Disable styled output")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSpacesCmd(state))
	rootCmd.AddCommand(newListCmd(state))
	rootCmd.AddCommand(newLookupCmd(state))
	rootCmd.AddCommand(newOpcodeCmd(state))
	rootCmd.AddCommand(newModuleTypeCmd(state))
	rootCmd.AddCommand(newProcessorCmd(state))
	rootCmd.AddCommand(newFlagsCmd(state))
	rootCmd.AddCommand(newParamsCmd(state))
	rootCmd.AddCommand(newDecodeCmd(state))
	rootCmd.AddCommand(newCatalogCmd(state))
	rootCmd.AddCommand(newCaptureCmd(state))
	rootCmd.AddCommand(newConfigCmd(state))

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != rootCmd {
			if cmd.Long != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", cmd.Long)
			}
			fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
			return
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n\n", cmd.Long)
		fmt.Fprintf(out, "Usage:\n  %s <command> [arguments] [options]\n\n", cmd.Name())
		fmt.Fprintf(out, "Available Commands:\n")
		for _, subCmd := range cmd.Commands() {
			if !subCmd.Hidden && subCmd.IsAvailableCommand() {
				fmt.Fprintf(out, "  %-15s %s\n", subCmd.Name(), subCmd.Short)
			}
		}
		fmt.Fprintf(out, "\nUse \"%s help <command>\" for more information about a command.\n", cmd.Name())
	})

	return rootCmd, state
}

// execute runs one invocation. The logger is closed whether or not the
// command succeeds, since cobra skips post-run hooks after an error.
func execute(rootCmd *cobra.Command, state *cliState) error {
	err := rootCmd.Execute()
	if err != nil {
		state.log.Debug("%s failed: %v", rootCmd.Name(), err)
	}
	if cerr := state.log.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("close log: %w", cerr)
	}
	return err
}

// setup loads configuration and builds the logger before a command runs.
func (s *cliState) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return err
	}
	if s.logLevel != "" {
		cfg.Logging.Level = s.logLevel
	}
	if s.logFile != "" {
		cfg.Logging.File = s.logFile
	}
	if s.noColor {
		cfg.Output.NoColor = true
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	log, err := logging.NewLogger(level, cfg.Logging.File)
	if err != nil {
		return err
	}

	s.cfg = cfg
	s.log = log
	s.styles = newStyles(cfg.Output.NoColor)
	catalog.SetLogger(log.Zap().Named("catalog"))
	capture.SetLogger(log.Zap().Named("capture"))

	log.LogStartup(cmd.CommandPath(), s.configPath)
	return nil
}

func main() {
	if err := execute(newRootCmd()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
