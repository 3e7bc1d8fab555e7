package cbus

// OpCode is the first byte of every CBUS/VLCB frame and identifies the
// message kind.
//
// An OpCode may hold any byte, including values with no assigned mnemonic.
// Use OpCodeFromCode to validate bytes read off the bus.
type OpCode uint8

// dataBytesShift isolates the three most significant bits of an opcode.
const dataBytesShift = 5

// MaxDataBytes is the largest number of data bytes any opcode can carry.
const MaxDataBytes = 7

// DataByteCount returns the number of data bytes that follow opcode b in a
// frame. The count is encoded in the top three bits, so it is defined for
// every byte whether or not the opcode is assigned.
func DataByteCount(b uint8) int {
	return int(b >> dataBytesShift)
}

// OpCodeFromCode converts a wire byte to an OpCode, failing with an
// *UndefinedCodeError when the byte has no assigned mnemonic.
func OpCodeFromCode(c uint8) (OpCode, error) {
	return opcodeTable.fromCode(c)
}

// OpCodeFromCodeUnchecked converts without validation. The caller must
// already know that c is an assigned opcode, for example because it was
// produced by OpCode.Code or checked upstream. Undefined input yields an
// OpCode for which IsValid reports false.
func OpCodeFromCodeUnchecked(c uint8) OpCode {
	return OpCode(c)
}

// OpCodeFromName finds an opcode by mnemonic ("ACON", "rqnpn").
func OpCodeFromName(name string) (OpCode, bool) {
	return opcodeTable.fromName(name)
}

// OpCodes returns every assigned opcode in ascending order.
func OpCodes() []OpCode {
	return opcodeTable.list()
}

// Code returns the wire byte.
func (o OpCode) Code() uint8 {
	return uint8(o)
}

// DataBytes returns the number of data bytes that follow this opcode.
func (o OpCode) DataBytes() int {
	return DataByteCount(uint8(o))
}

// FrameLen returns the CAN payload length of a frame carrying this opcode.
func (o OpCode) FrameLen() int {
	return 1 + o.DataBytes()
}

// IsValid reports whether the opcode has an assigned mnemonic.
func (o OpCode) IsValid() bool {
	return opcodeTable.valid(o)
}

// String returns the protocol mnemonic, or Unknown(0xNN).
func (o OpCode) String() string {
	return opcodeTable.name(o)
}

// Description returns the one-line protocol description.
func (o OpCode) Description() string {
	return opcodeTable.desc(o)
}

// IsExtended reports whether the opcode is one of the EXTC escapes that
// introduce a second opcode byte.
func (o OpCode) IsExtended() bool {
	switch o {
	case OpEXTC, OpEXTC1, OpEXTC2, OpEXTC3, OpEXTC4, OpEXTC5, OpEXTC6:
		return true
	default:
		return false
	}
}

// IsEvent reports whether the opcode is an accessory event (long or short,
// on or off, request or response, with or without data bytes).
func (o OpCode) IsEvent() bool {
	switch o {
	case OpACON, OpACOF, OpAREQ, OpARON, OpAROF,
		OpASON, OpASOF, OpASRQ, OpARSON, OpARSOF,
		OpACON1, OpACOF1, OpARON1, OpAROF1, OpASON1, OpASOF1, OpARSON1, OpARSOF1,
		OpACON2, OpACOF2, OpARON2, OpAROF2, OpASON2, OpASOF2, OpARSON2, OpARSOF2,
		OpACON3, OpACOF3, OpARON3, OpAROF3, OpASON3, OpASOF3, OpARSON3, OpARSOF3:
		return true
	default:
		return false
	}
}

// IsShortEvent reports whether the opcode is a short (device numbered) event.
func (o OpCode) IsShortEvent() bool {
	switch o {
	case OpASON, OpASOF, OpASRQ, OpARSON, OpARSOF,
		OpASON1, OpASOF1, OpARSON1, OpARSOF1,
		OpASON2, OpASOF2, OpARSON2, OpARSOF2,
		OpASON3, OpASOF3, OpARSON3, OpARSOF3:
		return true
	default:
		return false
	}
}

// HasNodeNumber reports whether the first two data bytes of the opcode are
// the node number of the sender or target. Every accessory event carries
// one, as do the node management and VLCB service opcodes. Session, DCC
// and device-numbered data opcodes do not.
func (o OpCode) HasNodeNumber() bool {
	if o.IsEvent() {
		return true
	}
	switch o {
	case OpSNN, OpNNRSM, OpRQNN, OpNNREL, OpNNACK, OpNNLRN, OpNNULN, OpNNCLR,
		OpNNEVN, OpNERD, OpRQEVN, OpWRACK, OpRQDAT, OpRQDDS, OpBOOT, OpENUM, OpNNRST,
		OpCMDERR, OpEVNLF, OpNVRD, OpNENRD, OpRQNPN, OpNUMEV, OpCANID, OpMODE, OpRQSD,
		OpRDGN, OpNVSETRD, OpEVULN, OpNVSET, OpNVANS, OpPARAN, OpREVAL,
		OpHEARTB, OpSD, OpGRSP, OpREQEV, OpNEVAL, OpPNN,
		OpDGN, OpEVLRN, OpEVANS,
		OpSTAT, OpENACK, OpESD, OpENRSP, OpEVLRNI, OpACDAT, OpARDAT:
		return true
	default:
		return false
	}
}
