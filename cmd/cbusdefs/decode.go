package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tonylturner/cbusdefs/frame"
)

func newDecodeCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <can-id> <hex>",
		Short: "Decode one CAN frame as a CBUS message",
		Long: `Decode one standard CAN frame as a CBUS message. The identifier carries
the priority and node CAN ID; the first data byte is the opcode.`,
		Example: `  cbusdefs decode 0x5FD 90 01 02 00 05
  cbusdefs decode 0x581 "0D"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			if len(args) < 2 {
				return missingArgError(cmd, "hex")
			}
			id, err := parseCANID(args[0])
			if err != nil {
				return fmt.Errorf("parse can id %q: %w", args[0], err)
			}
			data, err := parseHexBytes(args[1:])
			if err != nil {
				return err
			}
			f, err := frame.New(id, data)
			if err != nil {
				return err
			}
			state.log.Debug("frame %s", f)

			msg, err := frame.Decode(f)
			if err != nil {
				return fmt.Errorf("decode %s: %w", f, err)
			}

			known := "yes"
			if !msg.Known {
				known = state.styles.warn.Render("no")
			}
			fields := [][2]string{
				{"Message", msg.String()},
				{"Opcode", fmt.Sprintf("%s (0x%02X)", msg.OpCode, msg.OpCode.Code())},
				{"Known", known},
				{"Description", msg.OpCode.Description()},
				{"CAN ID", fmt.Sprint(msg.Header.CANID)},
				{"Priority", fmt.Sprintf("major %d, minor %d", msg.Header.Major, msg.Header.Minor)},
			}
			if nn, ok := msg.NodeNumber(); ok {
				fields = append(fields, [2]string{"Node number", fmt.Sprint(nn)})
			}
			state.styles.writeFields(cmd.OutOrStdout(), fields)
			return nil
		},
	}
}

// parseCANID reads decimal or 0x-prefixed hex, like cbus.ParseByte.
func parseCANID(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	base := 10
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s, base = s[2:], 16
	}
	v, err := strconv.ParseUint(s, base, 32)
	return uint32(v), err
}
