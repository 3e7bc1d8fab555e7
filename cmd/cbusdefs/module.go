package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tonylturner/cbusdefs/cbus"
	"github.com/tonylturner/cbusdefs/internal/config"
	"github.com/tonylturner/cbusdefs/internal/errors"
)

// manufacturerFrom resolves raw, falling back to the configured default.
func manufacturerFrom(cfg *config.Config, raw string) (cbus.Manufacturer, error) {
	c := *cfg
	if raw != "" {
		c.Defaults.Manufacturer = raw
	}
	m, err := c.Manufacturer()
	if err != nil {
		return 0, errors.WrapCodeError(err, cbus.SpaceManufacturer, c.Defaults.Manufacturer)
	}
	return m, nil
}

func processorManufacturerFrom(cfg *config.Config, raw string) (cbus.ProcessorManufacturer, error) {
	c := *cfg
	if raw != "" {
		c.Defaults.ProcessorManufacturer = raw
	}
	m, err := c.ProcessorManufacturer()
	if err != nil {
		return 0, errors.WrapCodeError(err, cbus.SpaceProcessorManufacturer, c.Defaults.ProcessorManufacturer)
	}
	return m, nil
}

func parseByteArg(space cbus.Space, raw string) (uint8, error) {
	v, err := cbus.ParseByte(raw)
	if err != nil {
		return 0, errors.WrapCodeError(err, space, raw)
	}
	return v, nil
}

// --- module-type ---

type moduleTypeFlags struct {
	manufacturer string
	strict       bool
}

func newModuleTypeCmd(state *cliState) *cobra.Command {
	flags := &moduleTypeFlags{}

	cmd := &cobra.Command{
		Use:   "module-type <code>",
		Short: "Decode a module type in a manufacturer's namespace",
		Long: `Decode a module type code (node parameter 3) in the namespace selected by
the manufacturer (node parameter 1). Codes a namespace does not define
decode to the generic arm unless --strict is given.`,
		Example: `  cbusdefs module-type 32
  cbusdefs module-type 2 --manufacturer SPROG
  cbusdefs module-type 252 --manufacturer 165`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			if len(args) == 0 {
				return missingArgError(cmd, "code")
			}
			return runModuleType(cmd, state, flags, args[0])
		},
	}

	cmd.Flags().StringVar(&flags.manufacturer, "manufacturer", "", "Manufacturer name or code (default from config)")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Fail on codes the namespace does not define")

	return cmd
}

func runModuleType(cmd *cobra.Command, state *cliState, flags *moduleTypeFlags, raw string) error {
	m, err := manufacturerFrom(state.cfg, flags.manufacturer)
	if err != nil {
		return err
	}
	code, err := parseByteArg(cbus.SpaceModuleType, raw)
	if err != nil {
		return err
	}

	mt := cbus.ModuleTypeFromCode(m, code)
	if flags.strict {
		if mt, err = cbus.ModuleTypeFromCodeChecked(m, code); err != nil {
			return errors.WrapCodeError(err, cbus.SpaceModuleType, raw)
		}
	}
	state.log.Debug("module type %d under %s decoded to %s", code, m, mt)

	state.styles.writeFields(cmd.OutOrStdout(), [][2]string{
		{"Module type", mt.String()},
		{"Manufacturer", fmt.Sprintf("%s (%d)", m, m.Code())},
		{"Namespace", mt.Vendor().String()},
		{"Code", fmt.Sprintf("0x%02X (%d)", mt.Code(), mt.Code())},
		{"Name", mt.Name()},
		{"Description", mt.Description()},
	})
	return nil
}

// --- processor ---

type processorFlags struct {
	strict bool
}

func newProcessorCmd(state *cliState) *cobra.Command {
	flags := &processorFlags{}

	cmd := &cobra.Command{
		Use:   "processor <cpu-id> [manufacturer]",
		Short: "Decode a processor identity",
		Long: `Decode a processor identity from the cpu id (node parameter 9) and the
cpu manufacturer (node parameter 19). The manufacturer defaults to the
configured one.`,
		Example: `  cbusdefs processor 13
  cbusdefs processor 3 Arm
  cbusdefs processor 0x2A 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			if len(args) == 0 {
				return missingArgError(cmd, "cpu-id")
			}
			raw := ""
			if len(args) > 1 {
				raw = args[1]
			}
			return runProcessor(cmd, state, flags, args[0], raw)
		},
	}

	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Fail on unknown processors")

	return cmd
}

func runProcessor(cmd *cobra.Command, state *cliState, flags *processorFlags, rawCPU, rawManufacturer string) error {
	pm, err := processorManufacturerFrom(state.cfg, rawManufacturer)
	if err != nil {
		return err
	}
	cpu, err := parseByteArg(cbus.SpaceProcessor, rawCPU)
	if err != nil {
		return err
	}

	p := cbus.ProcessorFromCodes(cpu, pm.Code())
	if flags.strict {
		if p, err = cbus.ProcessorFromCodesChecked(cpu, pm.Code()); err != nil {
			return errors.WrapCodeError(err, cbus.SpaceProcessor, rawCPU)
		}
	}

	state.styles.writeFields(cmd.OutOrStdout(), [][2]string{
		{"Processor", p.String()},
		{"Kind", p.Kind().String()},
		{"CPU id", fmt.Sprintf("0x%02X (%d)", p.CPUID(), p.CPUID())},
		{"Manufacturer", fmt.Sprintf("%s (%d)", pm, pm.Code())},
	})
	return nil
}

// --- flags ---

func newFlagsCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "flags <byte>",
		Short: "Decode a node flags byte (parameter 8)",
		Example: `  cbusdefs flags 0x4B
  cbusdefs flags 13`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			if len(args) == 0 {
				return missingArgError(cmd, "byte")
			}
			v, err := parseByteArg(cbus.SpaceParam, args[0])
			if err != nil {
				return err
			}
			f := cbus.ParamFlagsFromCode(v)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s 0x%02X = %s\n\n", state.styles.title.Render("Flags"), v, f)

			rows := [][]string{}
			for _, b := range cbus.ParamFlagBits() {
				set := "-"
				if f.Contains(b.Flag) {
					set = "yes"
				}
				rows = append(rows, []string{fmt.Sprintf("0x%02X", uint8(b.Flag)), b.Name, b.Alias, set})
			}
			state.styles.writeTable(out, []string{"BIT", "NAME", "ALIAS", "SET"}, rows)
			if r := f.Reserved(); r != 0 {
				fmt.Fprintln(out, state.styles.warn.Render(fmt.Sprintf("reserved bits set: 0x%02X", uint8(r))))
			}
			return nil
		},
	}
}

// --- params ---

// parseHexBytes accepts hex with optional spaces, colons or dashes between
// bytes.
func parseHexBytes(args []string) ([]byte, error) {
	s := strings.Join(args, "")
	s = strings.NewReplacer(" ", "", ":", "", "-", "", "0x", "", "0X", "").Replace(s)
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("parse hex: %w", err)
	}
	return data, nil
}

func newParamsCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "params <hex>",
		Short: "Decode a node parameter block",
		Long: `Decode a node parameter block: parameters 1 to 20 as sent in PARAN
replies or stored in the firmware image.`,
		Example: `  cbusdefs params "A5 61 20 20 04 10 04 08 0D 01 00 08 00 00 ..."`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			if len(args) == 0 {
				return missingArgError(cmd, "hex")
			}
			data, err := parseHexBytes(args)
			if err != nil {
				return err
			}
			state.log.LogHex("parameter block", data)
			block, err := cbus.ParameterBlockFromBytes(data)
			if err != nil {
				return err
			}
			return writeParams(cmd, state, block)
		},
	}
}

func writeParams(cmd *cobra.Command, state *cliState, block cbus.ParameterBlock) error {
	m := block.Manufacturer()
	var ver string
	if v, err := block.Version(); err == nil {
		ver = v.String()
	} else {
		ver = state.styles.bad.Render(err.Error())
	}
	bus, err := block.BusType()
	busText := bus.String()
	if err != nil {
		busText = state.styles.warn.Render(cbus.BusTypeFromCodeUnchecked(block.Bytes()[cbus.ParamBusType-1]).String())
	}

	out := cmd.OutOrStdout()
	state.styles.writeFields(out, [][2]string{
		{"Manufacturer", fmt.Sprintf("%s (%d)", m, m.Code())},
		{"Module type", block.ModuleType().String()},
		{"Version", ver},
		{"Flags", block.Flags().String()},
		{"Processor", block.Processor().String()},
		{"Bus type", busText},
		{"Events", fmt.Sprintf("%d, %d EVs each", block.MaxEvents(), block.EVsPerEvent())},
		{"NVs", fmt.Sprint(block.NVCount())},
		{"Load address", fmt.Sprintf("0x%08X", block.LoadAddress())},
		{"CPU mfr id", block.CPUManufacturerID().String()},
	})
	fmt.Fprintln(out)

	rows := make([][]string, 0, cbus.ParamBlockLen)
	for i := uint8(1); i <= cbus.ParamBlockLen; i++ {
		v, _ := block.Param(i)
		name := ""
		if p, err := cbus.ParamFromCode(i); err == nil {
			name = p.String()
		}
		rows = append(rows, []string{fmt.Sprint(i), name, fmt.Sprintf("0x%02X", v)})
	}
	state.styles.writeTable(out, []string{"#", "PARAM", "VALUE"}, rows)
	return nil
}
