package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tonylturner/cbusdefs/internal/capture"
	"github.com/tonylturner/cbusdefs/internal/errors"
	"github.com/tonylturner/cbusdefs/internal/report"
)

type captureFlags struct {
	top  int
	json bool
	csv  string
}

func newCaptureCmd(state *cliState) *cobra.Command {
	flags := &captureFlags{top: -1}

	cmd := &cobra.Command{
		Use:   "capture <pcap>",
		Short: "Summarize CBUS traffic in a SocketCAN capture",
		Long: `Summarize CBUS traffic in a pcap or pcapng file recorded from a
SocketCAN interface: opcode counts, unassigned opcodes, malformed
frames and active CAN IDs.`,
		Example: `  cbusdefs capture layout.pcapng
  cbusdefs capture layout.pcap --top 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			if len(args) == 0 {
				return missingArgError(cmd, "pcap")
			}
			top := state.cfg.Capture.Top
			if flags.top >= 0 {
				top = flags.top
			}
			return runCapture(cmd, state, flags, args[0], top)
		},
	}

	cmd.Flags().IntVar(&flags.top, "top", -1, "Opcodes to list, 0 for all (default from config)")
	cmd.Flags().BoolVar(&flags.json, "json", false, "Print the summary as JSON")
	cmd.Flags().StringVar(&flags.csv, "csv", "", "Also write opcode counts to a CSV file")

	return cmd
}

func runCapture(cmd *cobra.Command, state *cliState, flags *captureFlags, path string, top int) error {
	summary, err := capture.ReadFile(path)
	if err != nil {
		return errors.WrapCaptureError(err, path)
	}

	out := cmd.OutOrStdout()
	if flags.json || flags.csv != "" {
		rep := report.CaptureReport{
			GeneratedAt:     report.FormatTimestamp(),
			CBUSDefsVersion: version,
			CBUSDefsCommit:  commit,
			CBUSDefsDate:    date,
			Captures:        []report.CaptureSummary{report.FromSummary(path, summary)},
		}
		if flags.csv != "" {
			if err := report.WriteOpCodeCSVFile(flags.csv, rep); err != nil {
				return err
			}
			state.log.Info("wrote opcode counts to %s", flags.csv)
		}
		if flags.json {
			return report.WriteJSON(out, rep)
		}
	}
	s := state.styles

	fmt.Fprintln(out, s.title.Render("Capture "+path))
	s.writeFields(out, [][2]string{
		{"Frames", fmt.Sprint(summary.TotalFrames)},
		{"Messages", fmt.Sprint(summary.Messages)},
		{"Skipped", fmt.Sprint(summary.Skipped)},
		{"Duration", summary.Duration().String()},
		{"CAN IDs", fmt.Sprint(len(summary.CANIDs))},
	})

	counts := summary.TopOpCodes()
	if top > 0 && len(counts) > top {
		counts = counts[:top]
	}
	if len(counts) > 0 {
		fmt.Fprintln(out)
		rows := make([][]string, 0, len(counts))
		for _, c := range counts {
			rows = append(rows, []string{fmt.Sprintf("0x%02X", c.OpCode.Code()), c.OpCode.String(), fmt.Sprint(c.Count)})
		}
		s.writeTable(out, []string{"HEX", "OPCODE", "COUNT"}, rows)
	}

	if len(summary.Unknown) > 0 {
		fmt.Fprintln(out)
		codes := make([]int, 0, len(summary.Unknown))
		for c := range summary.Unknown {
			codes = append(codes, int(c))
		}
		sort.Ints(codes)
		for _, c := range codes {
			fmt.Fprintln(out, s.warn.Render(fmt.Sprintf("unassigned opcode 0x%02X seen %d times", c, summary.Unknown[uint8(c)])))
		}
	}

	if len(summary.Malformed) > 0 {
		fmt.Fprintln(out)
		reasons := make([]string, 0, len(summary.Malformed))
		for r := range summary.Malformed {
			reasons = append(reasons, r)
		}
		sort.Strings(reasons)
		for _, r := range reasons {
			fmt.Fprintln(out, s.bad.Render(fmt.Sprintf("malformed: %s (%d)", r, summary.Malformed[r])))
		}
	}

	state.log.Verbose("%s: %d frames, %d messages", path, summary.TotalFrames, summary.Messages)
	return nil
}
