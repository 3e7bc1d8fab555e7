package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// FormatTimestamp returns the current time as an RFC3339 UTC string.
func FormatTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// WriteJSONFile writes a capture report to path, creating its directory.
func WriteJSONFile(path string, report CaptureReport) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer f.Close()

	if err := WriteJSON(f, report); err != nil {
		return err
	}
	return f.Close()
}

// WriteJSON writes a capture report as indented JSON.
func WriteJSON(w io.Writer, report CaptureReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
