package frame

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/tonylturner/cbusdefs/cbus"
)

func TestHeaderRoundTrip(t *testing.T) {
	for id := uint32(0); id <= maxStdID; id++ {
		h, err := ParseHeader(id)
		if err != nil {
			t.Fatalf("ParseHeader(0x%X): %v", id, err)
		}
		got, err := h.ID()
		if err != nil || got != id {
			t.Fatalf("0x%X -> %+v -> 0x%X, %v", id, h, got, err)
		}
	}
}

func TestHeaderLayout(t *testing.T) {
	h := Header{Major: MajorNormal, Minor: MinorLow, CANID: 0x7D}
	id, err := h.ID()
	if err != nil {
		t.Fatal(err)
	}
	if id != 0x5FD {
		t.Errorf("ID() = 0x%X, want 0x5FD", id)
	}
	if _, err := (Header{CANID: 0x80}).ID(); !errors.Is(err, ErrInvalidHeader) {
		t.Errorf("CAN ID 0x80 error = %v", err)
	}
	if _, err := (Header{Major: 4}).ID(); !errors.Is(err, ErrInvalidHeader) {
		t.Errorf("major 4 error = %v", err)
	}
	if _, err := ParseHeader(0x800); !errors.Is(err, ErrInvalidHeader) {
		t.Errorf("ParseHeader(0x800) error = %v", err)
	}
	if DefaultHeader(3) != (Header{Major: MajorNormal, Minor: MinorLow, CANID: 3}) {
		t.Error("unexpected default header")
	}
}

func TestDecode(t *testing.T) {
	acon, _ := New(0x5FD, []byte{0x90, 0x01, 0x02, 0x00, 0x05})
	m, err := Decode(acon)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if m.OpCode != cbus.OpACON || !m.Known {
		t.Errorf("OpCode = %v, Known = %v", m.OpCode, m.Known)
	}
	if !bytes.Equal(m.Data, []byte{0x01, 0x02, 0x00, 0x05}) {
		t.Errorf("Data = % X", m.Data)
	}
	if nn, ok := m.NodeNumber(); !ok || nn != 0x0102 {
		t.Errorf("NodeNumber() = 0x%X, %v", nn, ok)
	}
	if m.Header.CANID != 0x7D {
		t.Errorf("CANID = 0x%X", m.Header.CANID)
	}
	if got := m.String(); got != "ACON can_id=125 prio=2/3 01 02 00 05" {
		t.Errorf("String() = %q", got)
	}
}

func TestNodeNumberOnlyForNodeOpcodes(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint16
		ok   bool
	}{
		{"RQNPN", []byte{0x73, 0x01, 0x02, 0x03}, 0x0102, true},
		{"NNACK", []byte{0x52, 0x00, 0x2A}, 0x002A, true},
		{"DSPD", []byte{0x47, 0x01, 0x80}, 0, false},
		{"DFNON", []byte{0x49, 0x01, 0x05}, 0, false},
		{"unassigned", []byte{0x4B, 0x01, 0x02}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(0x5FD, tt.data)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			m, err := Decode(f)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			nn, ok := m.NodeNumber()
			if ok != tt.ok || nn != tt.want {
				t.Errorf("NodeNumber() = 0x%X, %v; want 0x%X, %v", nn, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestDecodeUnknownOpcode(t *testing.T) {
	f, _ := New(0x001, []byte{0x2F, 0xAA})
	m, err := Decode(f)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if m.Known {
		t.Error("0x2F reported as known")
	}
	if m.OpCode.String() != "Unknown(0x2F)" {
		t.Errorf("OpCode = %v", m.OpCode)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		f    Frame
		want error
	}{
		{"extended", Frame{ID: 0x1000, Extended: true, Len: 1}, ErrExtendedFrame},
		{"remote", Frame{ID: 0x10, RTR: true}, ErrRemoteFrame},
		{"empty", Frame{ID: 0x10}, ErrEmptyFrame},
		{"short", Frame{ID: 0x10, Len: 2, Data: [8]byte{0x90, 1}}, ErrLengthMismatch},
		{"long", Frame{ID: 0x10, Len: 2, Data: [8]byte{0x00, 1}}, ErrLengthMismatch},
		{"bad len", Frame{ID: 0x10, Len: 9}, ErrInvalidLen},
		{"bad id", Frame{ID: 0x800, Len: 1}, ErrInvalidID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.f); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEncodeDecodeInverse(t *testing.T) {
	for _, op := range cbus.OpCodes() {
		data := make([]byte, op.DataBytes())
		for i := range data {
			data[i] = byte(i + 1)
		}
		in := Message{Header: DefaultHeader(42), OpCode: op, Known: true, Data: data}
		f, err := Encode(in)
		if err != nil {
			t.Fatalf("%v: Encode: %v", op, err)
		}
		out, err := Decode(f)
		if err != nil {
			t.Fatalf("%v: Decode: %v", op, err)
		}
		if out.Header != in.Header || out.OpCode != in.OpCode || !out.Known || !bytes.Equal(out.Data, in.Data) {
			t.Errorf("%v: got %+v, want %+v", op, out, in)
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	if _, err := Encode(Message{OpCode: cbus.OpACON, Data: []byte{1}}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("short data error = %v", err)
	}
	if _, err := Encode(Message{Header: Header{CANID: 200}, OpCode: cbus.OpACK}); !errors.Is(err, ErrInvalidHeader) {
		t.Errorf("bad header error = %v", err)
	}
}

func TestSocketCANRoundTrip(t *testing.T) {
	orders := []binary.ByteOrder{binary.LittleEndian, binary.BigEndian}
	frames := []Frame{
		{ID: 0x5FD, Len: 3, Data: [8]byte{0x42, 0x01, 0x02}},
		{ID: 0x1ABCDEF, Extended: true, Len: 8, Data: [8]byte{1, 2, 3, 4, 5, 6, 7, 8}},
		{ID: 0x123, RTR: true},
	}
	for _, order := range orders {
		for _, in := range frames {
			raw, err := in.MarshalSocketCAN(order)
			if err != nil {
				t.Fatalf("marshal %v: %v", in, err)
			}
			if len(raw) != SocketCANLen {
				t.Fatalf("len = %d", len(raw))
			}
			out, err := UnmarshalSocketCAN(raw, order)
			if err != nil {
				t.Fatalf("unmarshal %v: %v", in, err)
			}
			if out != in {
				t.Errorf("%v: got %v, want %v", order, out, in)
			}
		}
	}
}

func TestUnmarshalSocketCANErrors(t *testing.T) {
	if _, err := UnmarshalSocketCAN(make([]byte, 8), binary.BigEndian); err == nil {
		t.Error("short record accepted")
	}
	raw := make([]byte, SocketCANLen)
	binary.BigEndian.PutUint32(raw, canErrFlag|0x4)
	if _, err := UnmarshalSocketCAN(raw, binary.BigEndian); !errors.Is(err, ErrErrorFrame) {
		t.Errorf("error frame error = %v", err)
	}
}

func TestNewRejectsLongPayload(t *testing.T) {
	if _, err := New(1, make([]byte, 9)); !errors.Is(err, ErrInvalidLen) {
		t.Errorf("error = %v", err)
	}
}
