package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteOpCodeCSVFile writes one row per capture and opcode.
func WriteOpCodeCSVFile(path string, report CaptureReport) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create csv directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	return WriteOpCodeCSV(f, report)
}

// WriteOpCodeCSV writes one row per capture and opcode.
func WriteOpCodeCSV(w io.Writer, report CaptureReport) error {
	writer := csv.NewWriter(w)

	header := []string{"Capture", "Code", "OpCode", "Known", "Count", "Share"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, c := range report.Captures {
		for _, row := range c.OpCodes {
			share := 0.0
			if c.Messages > 0 {
				share = float64(row.Count) / float64(c.Messages)
			}
			record := []string{
				c.Capture,
				fmt.Sprintf("0x%02X", row.Code),
				row.Name,
				fmt.Sprintf("%t", row.Known),
				fmt.Sprintf("%d", row.Count),
				fmt.Sprintf("%.4f", share),
			}
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
