package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tonylturner/cbusdefs/cbus"
	"github.com/tonylturner/cbusdefs/internal/errors"
)

func newSpacesCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "spaces",
		Short: "List the code spaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(cbus.Spaces()))
			for _, space := range cbus.Spaces() {
				entries, _ := cbus.Entries(space)
				rows = append(rows, []string{string(space), fmt.Sprint(len(entries))})
			}
			state.styles.writeTable(cmd.OutOrStdout(), []string{"SPACE", "CODES"}, rows)
			return nil
		},
	}
}

func resolveSpace(raw string) (cbus.Space, error) {
	space := cbus.Space(strings.ToLower(strings.TrimSpace(raw)))
	if !cbus.IsKnownSpace(space) {
		names := make([]string, 0, len(cbus.Spaces()))
		for _, s := range cbus.Spaces() {
			names = append(names, string(s))
		}
		return "", errors.UserFriendlyError{
			Message: fmt.Sprintf("Unknown code space %q", raw),
			Hint:    "Known spaces: " + strings.Join(names, ", "),
			Try:     "cbusdefs spaces",
		}
	}
	return space, nil
}

func newListCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "list <space>",
		Short: "List every defined code of a space",
		Example: `  cbusdefs list opcode
  cbusdefs list manufacturer`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			if len(args) == 0 {
				return missingArgError(cmd, "space")
			}
			space, err := resolveSpace(args[0])
			if err != nil {
				return err
			}
			entries, _ := cbus.Entries(space)
			state.log.Verbose("%s: %d codes", space, len(entries))

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{fmt.Sprintf("0x%02X", e.Code), fmt.Sprint(e.Code), e.Name, e.Description})
			}
			state.styles.writeTable(cmd.OutOrStdout(), []string{"HEX", "DEC", "NAME", "DESCRIPTION"}, rows)
			return nil
		},
	}
}

func newLookupCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <space> <code|name>",
		Short: "Look up one code by value or mnemonic",
		Long: `Look up one code by value or mnemonic. Values may be decimal or
0x-prefixed hex. Undefined values are an error.`,
		Example: `  cbusdefs lookup opcode 0x90
  cbusdefs lookup manufacturer MERG
  cbusdefs lookup grsp 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			if len(args) < 2 {
				return missingArgError(cmd, "code|name")
			}
			space, err := resolveSpace(args[0])
			if err != nil {
				return err
			}
			e, err := cbus.Parse(space, args[1])
			if err != nil {
				return errors.WrapCodeError(err, space, args[1])
			}
			state.styles.writeFields(cmd.OutOrStdout(), [][2]string{
				{"Space", string(space)},
				{"Name", e.Name},
				{"Code", fmt.Sprintf("0x%02X (%d)", e.Code, e.Code)},
				{"Description", e.Description},
			})
			return nil
		},
	}
}
