// Package capture classifies CBUS traffic recorded in pcap and pcapng files.
package capture

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"go.uber.org/zap"

	"github.com/tonylturner/cbusdefs/cbus"
	"github.com/tonylturner/cbusdefs/frame"
)

// LinkTypeCANSocketCAN is LINKTYPE_CAN_SOCKETCAN. Records are SocketCAN
// can_frame structs with the identifier in network byte order.
const LinkTypeCANSocketCAN = layers.LinkType(227)

const pcapngMagic = 0x0A0D0D0A

// ErrUnsupportedLinkType is returned for captures that do not hold CAN frames.
var ErrUnsupportedLinkType = errors.New("capture: unsupported link type")

// packetReader is satisfied by both pcapgo readers.
type packetReader interface {
	ReadPacketData() ([]byte, gopacket.CaptureInfo, error)
	LinkType() layers.LinkType
}

// OpCodeCount is one row of a summary's opcode table.
type OpCodeCount struct {
	OpCode cbus.OpCode
	Count  int
}

// Summary aggregates the frames of a capture.
type Summary struct {
	TotalFrames int
	Messages    int
	// Skipped counts frames that are valid CAN but not CBUS messages:
	// extended, remote and error frames.
	Skipped   int
	Malformed map[string]int
	OpCodes   map[cbus.OpCode]int
	Unknown   map[uint8]int
	CANIDs    map[uint8]int
	First     time.Time
	Last      time.Time
}

func newSummary() *Summary {
	return &Summary{
		Malformed: make(map[string]int),
		OpCodes:   make(map[cbus.OpCode]int),
		Unknown:   make(map[uint8]int),
		CANIDs:    make(map[uint8]int),
	}
}

// Duration is the time between the first and last frame.
func (s *Summary) Duration() time.Duration {
	if s.First.IsZero() {
		return 0
	}
	return s.Last.Sub(s.First)
}

// TopOpCodes returns opcodes ordered by count, then by code.
func (s *Summary) TopOpCodes() []OpCodeCount {
	out := make([]OpCodeCount, 0, len(s.OpCodes))
	for op, n := range s.OpCodes {
		out = append(out, OpCodeCount{OpCode: op, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].OpCode < out[j].OpCode
	})
	return out
}

// Add classifies one decoded CAN frame.
func (s *Summary) Add(f frame.Frame, ts time.Time) {
	s.TotalFrames++
	if !ts.IsZero() {
		if s.First.IsZero() || ts.Before(s.First) {
			s.First = ts
		}
		if ts.After(s.Last) {
			s.Last = ts
		}
	}
	msg, err := frame.Decode(f)
	switch {
	case errors.Is(err, frame.ErrExtendedFrame), errors.Is(err, frame.ErrRemoteFrame):
		s.Skipped++
		return
	case err != nil:
		s.Malformed[reason(err)]++
		return
	}
	s.Messages++
	s.OpCodes[msg.OpCode]++
	s.CANIDs[msg.Header.CANID]++
	if !msg.Known {
		s.Unknown[msg.OpCode.Code()]++
	}
}

func reason(err error) string {
	for _, target := range []error{frame.ErrEmptyFrame, frame.ErrLengthMismatch, frame.ErrInvalidLen, frame.ErrInvalidID, frame.ErrInvalidHeader} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}

// ReadFile summarises a pcap or pcapng file.
func ReadFile(path string) (*Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open capture: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read summarises a pcap or pcapng stream.
func Read(r io.Reader) (*Summary, error) {
	br := bufio.NewReader(r)
	pr, err := openReader(br)
	if err != nil {
		return nil, err
	}
	if pr.LinkType() != LinkTypeCANSocketCAN {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedLinkType, pr.LinkType())
	}

	s := newSummary()
	for {
		data, ci, err := pr.ReadPacketData()
		if err == io.EOF {
			break
		}
		if err != nil {
			return s, fmt.Errorf("read packet %d: %w", s.TotalFrames+1, err)
		}
		f, err := frame.UnmarshalSocketCAN(data, binary.BigEndian)
		if errors.Is(err, frame.ErrErrorFrame) {
			s.TotalFrames++
			s.Skipped++
			continue
		}
		if err != nil {
			s.TotalFrames++
			s.Malformed[reason(err)]++
			Logger().Debug("malformed record", zap.Int("index", s.TotalFrames), zap.Error(err))
			continue
		}
		s.Add(f, ci.Timestamp)
	}
	Logger().Info("capture summarised",
		zap.Int("frames", s.TotalFrames),
		zap.Int("messages", s.Messages),
		zap.Int("unknown_opcodes", len(s.Unknown)),
	)
	return s, nil
}

func openReader(br *bufio.Reader) (packetReader, error) {
	magic, err := br.Peek(4)
	if err != nil {
		return nil, fmt.Errorf("read capture header: %w", err)
	}
	if binary.LittleEndian.Uint32(magic) == pcapngMagic {
		r, err := pcapgo.NewNgReader(br, pcapgo.DefaultNgReaderOptions)
		if err != nil {
			return nil, fmt.Errorf("open pcapng: %w", err)
		}
		return r, nil
	}
	r, err := pcapgo.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("open pcap: %w", err)
	}
	return r, nil
}

// WriteFile records frames as a LINKTYPE_CAN_SOCKETCAN pcap file.
func WriteFile(path string, frames []frame.Frame, start time.Time, step time.Duration) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create pcap: %w", err)
	}
	defer file.Close()
	return Write(file, frames, start, step)
}

// Write records frames as a LINKTYPE_CAN_SOCKETCAN pcap stream, stamping
// each frame step after the previous one.
func Write(w io.Writer, frames []frame.Frame, start time.Time, step time.Duration) error {
	writer := pcapgo.NewWriter(w)
	if err := writer.WriteFileHeader(frame.SocketCANLen, LinkTypeCANSocketCAN); err != nil {
		return fmt.Errorf("write pcap header: %w", err)
	}
	ts := start
	for i, f := range frames {
		data, err := f.MarshalSocketCAN(binary.BigEndian)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		ci := gopacket.CaptureInfo{Timestamp: ts, CaptureLength: len(data), Length: len(data)}
		if err := writer.WritePacket(ci, data); err != nil {
			return fmt.Errorf("write frame %d: %w", i, err)
		}
		ts = ts.Add(step)
	}
	return nil
}
