package frame

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tonylturner/cbusdefs/cbus"
)

var (
	ErrExtendedFrame  = errors.New("frame: extended frames do not carry CBUS messages")
	ErrRemoteFrame    = errors.New("frame: remote frames do not carry CBUS messages")
	ErrEmptyFrame     = errors.New("frame: no opcode")
	ErrLengthMismatch = errors.New("frame: length does not match opcode")
	ErrInvalidHeader  = errors.New("frame: invalid header")
)

// MajorPriority is the top two bits of the identifier.
type MajorPriority uint8

const (
	MajorHighest MajorPriority = 0
	MajorNext    MajorPriority = 1
	MajorNormal  MajorPriority = 2
)

// MinorPriority is the next two bits of the identifier.
type MinorPriority uint8

const (
	MinorHigh        MinorPriority = 0
	MinorAboveNormal MinorPriority = 1
	MinorNormal      MinorPriority = 2
	MinorLow         MinorPriority = 3
)

const (
	canIDBits  = 7
	canIDMask  = 1<<canIDBits - 1
	minorShift = canIDBits
	majorShift = canIDBits + 2
	prioMask   = 0x3

	// MaxCANID is the largest node CAN ID.
	MaxCANID = canIDMask
)

// Header is the decoded 11-bit identifier.
type Header struct {
	Major MajorPriority
	Minor MinorPriority
	CANID uint8
}

// DefaultHeader is the priority used for ordinary traffic.
func DefaultHeader(canID uint8) Header {
	return Header{Major: MajorNormal, Minor: MinorLow, CANID: canID}
}

// ParseHeader splits a standard identifier.
func ParseHeader(id uint32) (Header, error) {
	if id > maxStdID {
		return Header{}, fmt.Errorf("%w: 0x%X exceeds 11 bits", ErrInvalidHeader, id)
	}
	return Header{
		Major: MajorPriority(id >> majorShift & prioMask),
		Minor: MinorPriority(id >> minorShift & prioMask),
		CANID: uint8(id & canIDMask),
	}, nil
}

// ID packs the header into a standard identifier.
func (h Header) ID() (uint32, error) {
	if h.Major > prioMask || h.Minor > prioMask || h.CANID > canIDMask {
		return 0, fmt.Errorf("%w: %+v", ErrInvalidHeader, h)
	}
	return uint32(h.Major)<<majorShift | uint32(h.Minor)<<minorShift | uint32(h.CANID), nil
}

// Message is a classified CBUS frame.
type Message struct {
	Header Header
	OpCode cbus.OpCode
	// Known is false for opcodes without an assigned mnemonic. Such frames
	// still frame correctly and are reported, not rejected.
	Known bool
	Data  []byte
}

// Decode classifies a CAN frame as a CBUS message.
func Decode(f Frame) (Message, error) {
	switch {
	case f.Extended:
		return Message{}, ErrExtendedFrame
	case f.RTR:
		return Message{}, ErrRemoteFrame
	case f.Len == 0:
		return Message{}, ErrEmptyFrame
	}
	if err := f.Validate(); err != nil {
		return Message{}, err
	}
	h, err := ParseHeader(f.ID)
	if err != nil {
		return Message{}, err
	}
	op := cbus.OpCodeFromCodeUnchecked(f.Data[0])
	if int(f.Len) != op.FrameLen() {
		return Message{}, fmt.Errorf("%w: %s needs %d data bytes, frame has %d",
			ErrLengthMismatch, op, op.DataBytes(), int(f.Len)-1)
	}
	data := make([]byte, op.DataBytes())
	copy(data, f.Data[1:f.Len])
	return Message{Header: h, OpCode: op, Known: op.IsValid(), Data: data}, nil
}

// Encode is the inverse of Decode.
func Encode(m Message) (Frame, error) {
	if len(m.Data) != m.OpCode.DataBytes() {
		return Frame{}, fmt.Errorf("%w: %s needs %d data bytes, got %d",
			ErrLengthMismatch, m.OpCode, m.OpCode.DataBytes(), len(m.Data))
	}
	id, err := m.Header.ID()
	if err != nil {
		return Frame{}, err
	}
	f := Frame{ID: id, Len: uint8(m.OpCode.FrameLen())}
	f.Data[0] = m.OpCode.Code()
	copy(f.Data[1:], m.Data)
	return f, nil
}

// NodeNumber returns the first two data bytes as a big-endian node number
// when the opcode carries one.
func (m Message) NodeNumber() (uint16, bool) {
	if !m.OpCode.HasNodeNumber() || len(m.Data) < 2 {
		return 0, false
	}
	return uint16(m.Data[0])<<8 | uint16(m.Data[1]), true
}

func (m Message) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s can_id=%d prio=%d/%d", m.OpCode, m.Header.CANID, m.Header.Major, m.Header.Minor)
	if len(m.Data) > 0 {
		fmt.Fprintf(&b, " % X", m.Data)
	}
	return b.String()
}
