// Package frame applies the CBUS framing rules to classical CAN frames.
//
// CBUS uses standard 11-bit identifiers laid out as a 4-bit priority
// (2-bit major, 2-bit minor) above a 7-bit CAN ID. The first payload byte is
// the opcode and its top three bits give the number of data bytes that
// follow. Nothing in this package performs I/O.
package frame

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Frame is a classical CAN 2.0 frame.
type Frame struct {
	ID       uint32 // 11-bit (std) or 29-bit (ext)
	Extended bool
	RTR      bool
	Len      uint8 // 0..8
	Data     [8]byte
}

const (
	maxStdID = 0x7FF
	maxExtID = 0x1FFFFFFF
	maxLen   = 8

	// SocketCANLen is the size of a Linux struct can_frame.
	SocketCANLen = 16

	canEffFlag = 0x80000000
	canRtrFlag = 0x40000000
	canErrFlag = 0x20000000
	canEffMask = 0x1FFFFFFF
	canStdMask = 0x7FF
)

var (
	ErrInvalidID  = errors.New("frame: invalid identifier")
	ErrInvalidLen = errors.New("frame: invalid data length")
	// ErrErrorFrame marks SocketCAN error frames, which carry controller
	// status rather than bus traffic.
	ErrErrorFrame = errors.New("frame: error frame")
)

// New builds a standard data frame.
func New(id uint32, data []byte) (Frame, error) {
	var f Frame
	if len(data) > maxLen {
		return f, ErrInvalidLen
	}
	f.ID = id
	f.Len = uint8(len(data))
	copy(f.Data[:], data)
	return f, f.Validate()
}

// Validate returns an error if the identifier or length is out of range.
func (f Frame) Validate() error {
	if f.Len > maxLen {
		return ErrInvalidLen
	}
	limit := uint32(maxStdID)
	if f.Extended {
		limit = maxExtID
	}
	if f.ID > limit {
		return ErrInvalidID
	}
	return nil
}

// Payload returns the valid data bytes.
func (f Frame) Payload() []byte {
	n := int(f.Len)
	if n > maxLen {
		n = maxLen
	}
	return f.Data[:n]
}

func (f Frame) String() string {
	kind := "std"
	if f.Extended {
		kind = "ext"
	}
	if f.RTR {
		return fmt.Sprintf("%s 0x%X RTR [%d]", kind, f.ID, f.Len)
	}
	return fmt.Sprintf("%s 0x%X [%d] % X", kind, f.ID, f.Len, f.Payload())
}

// MarshalSocketCAN encodes the frame in the 16-byte SocketCAN can_frame
// layout. Host captures use little-endian can_id; pcap LINKTYPE 227 files
// use big-endian.
//
//	0..3  can_id with EFF/RTR/ERR flags
//	4     can_dlc
//	5..7  padding
//	8..15 data
func (f Frame) MarshalSocketCAN(order binary.ByteOrder) ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	id := f.ID
	if f.Extended {
		id |= canEffFlag
	}
	if f.RTR {
		id |= canRtrFlag
	}
	buf := make([]byte, SocketCANLen)
	order.PutUint32(buf[0:4], id)
	buf[4] = f.Len
	copy(buf[8:], f.Data[:])
	return buf, nil
}

// UnmarshalSocketCAN decodes a SocketCAN can_frame record.
func UnmarshalSocketCAN(data []byte, order binary.ByteOrder) (Frame, error) {
	var f Frame
	if len(data) < SocketCANLen {
		return f, fmt.Errorf("frame: need %d bytes, got %d", SocketCANLen, len(data))
	}
	id := order.Uint32(data[0:4])
	if id&canErrFlag != 0 {
		return f, ErrErrorFrame
	}
	f.Extended = id&canEffFlag != 0
	f.RTR = id&canRtrFlag != 0
	if f.Extended {
		f.ID = id & canEffMask
	} else {
		f.ID = id & canStdMask
	}
	f.Len = data[4]
	copy(f.Data[:], data[8:16])
	return f, f.Validate()
}
