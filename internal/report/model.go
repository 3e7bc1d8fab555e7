// Package report renders capture summaries as JSON and CSV.
package report

import (
	"sort"

	"github.com/tonylturner/cbusdefs/internal/capture"
)

// CaptureReport collects the summaries of one or more captures.
type CaptureReport struct {
	GeneratedAt     string           `json:"generated_at"`
	CBUSDefsVersion string           `json:"cbusdefs_version"`
	CBUSDefsCommit  string           `json:"cbusdefs_commit"`
	CBUSDefsDate    string           `json:"cbusdefs_date"`
	Captures        []CaptureSummary `json:"captures"`
}

// CaptureSummary is the serialisable form of capture.Summary.
type CaptureSummary struct {
	Capture    string         `json:"capture"`
	Frames     int            `json:"frames"`
	Messages   int            `json:"messages"`
	Skipped    int            `json:"skipped"`
	DurationMS int64          `json:"duration_ms"`
	OpCodes    []OpCodeRow    `json:"opcodes"`
	Unknown    []uint8        `json:"unknown_opcodes,omitempty"`
	Malformed  map[string]int `json:"malformed,omitempty"`
	CANIDs     []CANIDRow     `json:"can_ids"`
}

// OpCodeRow is one opcode count.
type OpCodeRow struct {
	Code  uint8  `json:"code"`
	Name  string `json:"name"`
	Known bool   `json:"known"`
	Count int    `json:"count"`
}

// CANIDRow is the message count of one node CAN ID.
type CANIDRow struct {
	CANID uint8 `json:"can_id"`
	Count int   `json:"count"`
}

// FromSummary converts a capture summary. Opcodes keep the summary's
// count order; CAN IDs and unknown opcodes are ascending.
func FromSummary(name string, s *capture.Summary) CaptureSummary {
	out := CaptureSummary{
		Capture:    name,
		Frames:     s.TotalFrames,
		Messages:   s.Messages,
		Skipped:    s.Skipped,
		DurationMS: s.Duration().Milliseconds(),
		OpCodes:    []OpCodeRow{},
		CANIDs:     []CANIDRow{},
	}
	for _, c := range s.TopOpCodes() {
		out.OpCodes = append(out.OpCodes, OpCodeRow{
			Code:  c.OpCode.Code(),
			Name:  c.OpCode.String(),
			Known: c.OpCode.IsValid(),
			Count: c.Count,
		})
	}
	for code := range s.Unknown {
		out.Unknown = append(out.Unknown, code)
	}
	sort.Slice(out.Unknown, func(i, j int) bool { return out.Unknown[i] < out.Unknown[j] })
	if len(s.Malformed) > 0 {
		out.Malformed = make(map[string]int, len(s.Malformed))
		for k, v := range s.Malformed {
			out.Malformed[k] = v
		}
	}
	for id, n := range s.CANIDs {
		out.CANIDs = append(out.CANIDs, CANIDRow{CANID: id, Count: n})
	}
	sort.Slice(out.CANIDs, func(i, j int) bool { return out.CANIDs[i].CANID < out.CANIDs[j].CANID })
	return out
}
