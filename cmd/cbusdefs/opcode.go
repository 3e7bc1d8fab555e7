package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tonylturner/cbusdefs/cbus"
	"github.com/tonylturner/cbusdefs/internal/errors"
)

type opcodeFlags struct {
	unchecked bool
}

func newOpcodeCmd(state *cliState) *cobra.Command {
	flags := &opcodeFlags{}

	cmd := &cobra.Command{
		Use:   "opcode <code|name>",
		Short: "Describe an opcode and its framing",
		Long: `Describe an opcode: mnemonic, meaning, data length and event class.

The data length comes from the top three bits of the opcode, so
--unchecked also describes bytes with no assigned opcode.`,
		Example: `  cbusdefs opcode ACON
  cbusdefs opcode 0xE1
  cbusdefs opcode 0x0B --unchecked`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			if len(args) == 0 {
				return missingArgError(cmd, "code|name")
			}
			return runOpcode(cmd, state, flags, args[0])
		},
	}

	cmd.Flags().BoolVar(&flags.unchecked, "unchecked", false, "Accept opcodes with no assigned mnemonic")

	return cmd
}

func runOpcode(cmd *cobra.Command, state *cliState, flags *opcodeFlags, raw string) error {
	var op cbus.OpCode
	if v, err := cbus.ParseByte(raw); err == nil && flags.unchecked {
		op = cbus.OpCodeFromCodeUnchecked(v)
	} else {
		e, err := cbus.Parse(cbus.SpaceOpCode, raw)
		if err != nil {
			return errors.WrapCodeError(err, cbus.SpaceOpCode, raw)
		}
		op = cbus.OpCodeFromCodeUnchecked(e.Code)
	}

	class := "none"
	switch {
	case op.IsShortEvent():
		class = "short event"
	case op.IsEvent():
		class = "long event"
	}

	state.styles.writeFields(cmd.OutOrStdout(), [][2]string{
		{"Opcode", op.String()},
		{"Code", fmt.Sprintf("0x%02X (%d)", op.Code(), op.Code())},
		{"Description", op.Description()},
		{"Data bytes", fmt.Sprint(op.DataBytes())},
		{"Frame length", fmt.Sprint(op.FrameLen())},
		{"Event", class},
		{"Extended", fmt.Sprint(op.IsExtended())},
	})
	return nil
}
