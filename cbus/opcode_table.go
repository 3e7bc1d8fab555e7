package cbus

// Operation codes grouped by framing band. The top three bits of each value
// give the number of data bytes that follow the opcode in a frame.
const (
	// No data bytes
	OpACK   OpCode = 0x00
	OpNAK   OpCode = 0x01
	OpHLT   OpCode = 0x02
	OpBON   OpCode = 0x03
	OpTOF   OpCode = 0x04
	OpTON   OpCode = 0x05
	OpESTOP OpCode = 0x06
	OpARST  OpCode = 0x07
	OpRTOF  OpCode = 0x08
	OpRTON  OpCode = 0x09
	OpRESTP OpCode = 0x0A
	OpRSTAT OpCode = 0x0C
	OpQNN   OpCode = 0x0D
	OpRQNP  OpCode = 0x10
	OpRQMN  OpCode = 0x11

	// 1 data byte
	OpKLOC  OpCode = 0x21
	OpQLOC  OpCode = 0x22
	OpDKEEP OpCode = 0x23
	OpDBG1  OpCode = 0x30
	OpEXTC  OpCode = 0x3F

	// 2 data bytes
	OpRLOC  OpCode = 0x40
	OpQCON  OpCode = 0x41
	OpSNN   OpCode = 0x42
	OpALOC  OpCode = 0x43
	OpSTMOD OpCode = 0x44
	OpPCON  OpCode = 0x45
	OpKCON  OpCode = 0x46
	OpDSPD  OpCode = 0x47
	OpDFLG  OpCode = 0x48
	OpDFNON OpCode = 0x49
	OpDFNOF OpCode = 0x4A
	OpSSTAT OpCode = 0x4C
	OpNNRSM OpCode = 0x4F
	OpRQNN  OpCode = 0x50
	OpNNREL OpCode = 0x51
	OpNNACK OpCode = 0x52
	OpNNLRN OpCode = 0x53
	OpNNULN OpCode = 0x54
	OpNNCLR OpCode = 0x55
	OpNNEVN OpCode = 0x56
	OpNERD  OpCode = 0x57
	OpRQEVN OpCode = 0x58
	OpWRACK OpCode = 0x59
	OpRQDAT OpCode = 0x5A
	OpRQDDS OpCode = 0x5B
	OpBOOT  OpCode = 0x5C
	OpENUM  OpCode = 0x5D
	OpNNRST OpCode = 0x5E
	OpEXTC1 OpCode = 0x5F

	// 3 data bytes
	OpDFUN   OpCode = 0x60
	OpGLOC   OpCode = 0x61
	OpERR    OpCode = 0x63
	OpCMDERR OpCode = 0x6F
	OpEVNLF  OpCode = 0x70
	OpNVRD   OpCode = 0x71
	OpNENRD  OpCode = 0x72
	OpRQNPN  OpCode = 0x73
	OpNUMEV  OpCode = 0x74
	OpCANID  OpCode = 0x75
	OpMODE   OpCode = 0x76
	OpRQSD   OpCode = 0x78
	OpEXTC2  OpCode = 0x7F

	// 4 data bytes
	OpRDCC3   OpCode = 0x80
	OpWCVO    OpCode = 0x82
	OpWCVB    OpCode = 0x83
	OpQCVS    OpCode = 0x84
	OpPCVS    OpCode = 0x85
	OpRDGN    OpCode = 0x87
	OpNVSETRD OpCode = 0x8E
	OpACON    OpCode = 0x90
	OpACOF    OpCode = 0x91
	OpAREQ    OpCode = 0x92
	OpARON    OpCode = 0x93
	OpAROF    OpCode = 0x94
	OpEVULN   OpCode = 0x95
	OpNVSET   OpCode = 0x96
	OpNVANS   OpCode = 0x97
	OpASON    OpCode = 0x98
	OpASOF    OpCode = 0x99
	OpASRQ    OpCode = 0x9A
	OpPARAN   OpCode = 0x9B
	OpREVAL   OpCode = 0x9C
	OpARSON   OpCode = 0x9D
	OpARSOF   OpCode = 0x9E
	OpEXTC3   OpCode = 0x9F

	// 5 data bytes
	OpRDCC4  OpCode = 0xA0
	OpWCVS   OpCode = 0xA2
	OpVCVS   OpCode = 0xA4
	OpHEARTB OpCode = 0xAB
	OpSD     OpCode = 0xAC
	OpGRSP   OpCode = 0xAF
	OpACON1  OpCode = 0xB0
	OpACOF1  OpCode = 0xB1
	OpREQEV  OpCode = 0xB2
	OpARON1  OpCode = 0xB3
	OpAROF1  OpCode = 0xB4
	OpNEVAL  OpCode = 0xB5
	OpPNN    OpCode = 0xB6
	OpASON1  OpCode = 0xB8
	OpASOF1  OpCode = 0xB9
	OpARSON1 OpCode = 0xBD
	OpARSOF1 OpCode = 0xBE
	OpEXTC4  OpCode = 0xBF

	// 6 data bytes
	OpRDCC5  OpCode = 0xC0
	OpWCVOA  OpCode = 0xC1
	OpCABDAT OpCode = 0xC2
	OpDGN    OpCode = 0xC7
	OpFCLK   OpCode = 0xCF
	OpACON2  OpCode = 0xD0
	OpACOF2  OpCode = 0xD1
	OpEVLRN  OpCode = 0xD2
	OpEVANS  OpCode = 0xD3
	OpARON2  OpCode = 0xD4
	OpAROF2  OpCode = 0xD5
	OpASON2  OpCode = 0xD8
	OpASOF2  OpCode = 0xD9
	OpARSON2 OpCode = 0xDD
	OpARSOF2 OpCode = 0xDE
	OpEXTC5  OpCode = 0xDF

	// 7 data bytes
	OpRDCC6  OpCode = 0xE0
	OpPLOC   OpCode = 0xE1
	OpNAME   OpCode = 0xE2
	OpSTAT   OpCode = 0xE3
	OpENACK  OpCode = 0xE6
	OpESD    OpCode = 0xE7
	OpDTXC   OpCode = 0xE9
	OpPARAMS OpCode = 0xEF
	OpACON3  OpCode = 0xF0
	OpACOF3  OpCode = 0xF1
	OpENRSP  OpCode = 0xF2
	OpARON3  OpCode = 0xF3
	OpAROF3  OpCode = 0xF4
	OpEVLRNI OpCode = 0xF5
	OpACDAT  OpCode = 0xF6
	OpARDAT  OpCode = 0xF7
	OpASON3  OpCode = 0xF8
	OpASOF3  OpCode = 0xF9
	OpDDES   OpCode = 0xFA
	OpDDRS   OpCode = 0xFB
	OpDDWS   OpCode = 0xFC
	OpARSON3 OpCode = 0xFD
	OpARSOF3 OpCode = 0xFE
	OpEXTC6  OpCode = 0xFF
)

var opcodeTable = newCodeTable(SpaceOpCode, map[OpCode]entry{
	OpACK:     {"ACK", "General ack"},
	OpNAK:     {"NAK", "General nak"},
	OpHLT:     {"HLT", "Bus Halt"},
	OpBON:     {"BON", "Bus on"},
	OpTOF:     {"TOF", "Track off"},
	OpTON:     {"TON", "Track on"},
	OpESTOP:   {"ESTOP", "Track stopped"},
	OpARST:    {"ARST", "System reset"},
	OpRTOF:    {"RTOF", "Request track off"},
	OpRTON:    {"RTON", "Request track on"},
	OpRESTP:   {"RESTP", "Request emergency stop all"},
	OpRSTAT:   {"RSTAT", "Request node status"},
	OpQNN:     {"QNN", "Query nodes"},
	OpRQNP:    {"RQNP", "Read node parameters"},
	OpRQMN:    {"RQMN", "Request name of module type"},
	OpKLOC:    {"KLOC", "Release engine by handle"},
	OpQLOC:    {"QLOC", "Query engine by handle"},
	OpDKEEP:   {"DKEEP", "Keep alive for cab"},
	OpDBG1:    {"DBG1", "Debug message with 1 status byte"},
	OpEXTC:    {"EXTC", "Extended opcode"},
	OpRLOC:    {"RLOC", "Request session for loco"},
	OpQCON:    {"QCON", "Query consist"},
	OpSNN:     {"SNN", "Set node number"},
	OpALOC:    {"ALOC", "Allocate loco (used to allocate to a shuttle in cancmd)"},
	OpSTMOD:   {"STMOD", "Set Throttle mode"},
	OpPCON:    {"PCON", "Consist loco"},
	OpKCON:    {"KCON", "De-consist loco"},
	OpDSPD:    {"DSPD", "Loco speed/dir"},
	OpDFLG:    {"DFLG", "Set engine flags"},
	OpDFNON:   {"DFNON", "Loco function on"},
	OpDFNOF:   {"DFNOF", "Loco function off"},
	OpSSTAT:   {"SSTAT", "Service mode status"},
	OpNNRSM:   {"NNRSM", "Reset to manufacturer's defaults"},
	OpRQNN:    {"RQNN", "Request Node number in setup mode"},
	OpNNREL:   {"NNREL", "Node number release"},
	OpNNACK:   {"NNACK", "Node number acknowledge"},
	OpNNLRN:   {"NNLRN", "Set learn mode"},
	OpNNULN:   {"NNULN", "Release learn mode"},
	OpNNCLR:   {"NNCLR", "Clear all events"},
	OpNNEVN:   {"NNEVN", "Read available event slots"},
	OpNERD:    {"NERD", "Read all stored events"},
	OpRQEVN:   {"RQEVN", "Read number of stored events"},
	OpWRACK:   {"WRACK", "Write acknowledge"},
	OpRQDAT:   {"RQDAT", "Request node data event"},
	OpRQDDS:   {"RQDDS", "Request short data frame"},
	OpBOOT:    {"BOOT", "Put node into boot mode"},
	OpENUM:    {"ENUM", "Force can_id self enumeration"},
	OpNNRST:   {"NNRST", "Reset node (as in restart)"},
	OpEXTC1:   {"EXTC1", "Extended opcode with 1 data byte"},
	OpDFUN:    {"DFUN", "Set engine functions"},
	OpGLOC:    {"GLOC", "Get loco (with support for steal/share)"},
	OpERR:     {"ERR", "Command station error"},
	OpCMDERR:  {"CMDERR", "Errors from nodes during config"},
	OpEVNLF:   {"EVNLF", "Event slots left response"},
	OpNVRD:    {"NVRD", "Request read of node variable"},
	OpNENRD:   {"NENRD", "Request read stored event by index"},
	OpRQNPN:   {"RQNPN", "Request read module parameters"},
	OpNUMEV:   {"NUMEV", "Number of events stored response"},
	OpCANID:   {"CANID", "Set canid"},
	OpMODE:    {"MODE", "Set mode"},
	OpRQSD:    {"RQSD", "Request service discovery"},
	OpEXTC2:   {"EXTC2", "Extended opcode with 2 data bytes"},
	OpRDCC3:   {"RDCC3", "3 byte DCC packet"},
	OpWCVO:    {"WCVO", "Write CV byte Ops mode by handle"},
	OpWCVB:    {"WCVB", "Write CV bit Ops mode by handle"},
	OpQCVS:    {"QCVS", "Read CV"},
	OpPCVS:    {"PCVS", "Report CV"},
	OpRDGN:    {"RDGN", "Request diagnostics"},
	OpNVSETRD: {"NVSETRD", "Set NV with Read"},
	OpACON:    {"ACON", "on event"},
	OpACOF:    {"ACOF", "off event"},
	OpAREQ:    {"AREQ", "Accessory Request event"},
	OpARON:    {"ARON", "Accessory response event on"},
	OpAROF:    {"AROF", "Accessory response event off"},
	OpEVULN:   {"EVULN", "Unlearn event"},
	OpNVSET:   {"NVSET", "Set a node variable"},
	OpNVANS:   {"NVANS", "Node variable value response"},
	OpASON:    {"ASON", "Short event on"},
	OpASOF:    {"ASOF", "Short event off"},
	OpASRQ:    {"ASRQ", "Short Request event"},
	OpPARAN:   {"PARAN", "Single node parameter response"},
	OpREVAL:   {"REVAL", "Request read of event variable"},
	OpARSON:   {"ARSON", "Accessory short response on event"},
	OpARSOF:   {"ARSOF", "Accessory short response off event"},
	OpEXTC3:   {"EXTC3", "Extended opcode with 3 data bytes"},
	OpRDCC4:   {"RDCC4", "4 byte DCC packet"},
	OpWCVS:    {"WCVS", "Write CV service mode"},
	OpVCVS:    {"VCVS", "Verify CV service mode - used for CV read hints"},
	OpHEARTB:  {"HEARTB", "Heartbeat"},
	OpSD:      {"SD", "Service discovery response"},
	OpGRSP:    {"GRSP", "General response"},
	OpACON1:   {"ACON1", "On event with one data byte"},
	OpACOF1:   {"ACOF1", "Off event with one data byte"},
	OpREQEV:   {"REQEV", "Read event variable in learn mode"},
	OpARON1:   {"ARON1", "Accessory on response (1 data byte)"},
	OpAROF1:   {"AROF1", "Accessory off response (1 data byte)"},
	OpNEVAL:   {"NEVAL", "Event variable by index read response"},
	OpPNN:     {"PNN", "Response to QNN"},
	OpASON1:   {"ASON1", "Accessory short on with 1 data byte"},
	OpASOF1:   {"ASOF1", "Accessory short off with 1 data byte"},
	OpARSON1:  {"ARSON1", "Short response event on with one data byte"},
	OpARSOF1:  {"ARSOF1", "Short response event off with one data byte"},
	OpEXTC4:   {"EXTC4", "Extended opcode with 4 data bytes"},
	OpRDCC5:   {"RDCC5", "5 byte DCC packet"},
	OpWCVOA:   {"WCVOA", "Write CV ops mode by address"},
	OpCABDAT:  {"CABDAT", "Cab data (cab signalling)"},
	OpDGN:     {"DGN", "Diagnostics"},
	OpFCLK:    {"FCLK", "Fast clock"},
	OpACON2:   {"ACON2", "On event with two data bytes"},
	OpACOF2:   {"ACOF2", "Off event with two data bytes"},
	OpEVLRN:   {"EVLRN", "Teach event"},
	OpEVANS:   {"EVANS", "Event variable read response in learn mode"},
	OpARON2:   {"ARON2", "Accessory on response"},
	OpAROF2:   {"AROF2", "Accessory off response"},
	OpASON2:   {"ASON2", "Accessory short on with 2 data bytes"},
	OpASOF2:   {"ASOF2", "Accessory short off with 2 data bytes"},
	OpARSON2:  {"ARSON2", "Short response event on with two data bytes"},
	OpARSOF2:  {"ARSOF2", "Short response event off with two data bytes"},
	OpEXTC5:   {"EXTC5", "Extended opcode with 5 data bytes"},
	OpRDCC6:   {"RDCC6", "6 byte DCC packets"},
	OpPLOC:    {"PLOC", "Loco session report"},
	OpNAME:    {"NAME", "Module name response"},
	OpSTAT:    {"STAT", "Command station status report"},
	OpENACK:   {"ENACK", "Event Acknowledge"},
	OpESD:     {"ESD", "Extended service discovery"},
	OpDTXC:    {"DTXC", "Long message packet"},
	OpPARAMS:  {"PARAMS", "Node parameters response"},
	OpACON3:   {"ACON3", "On event with 3 data bytes"},
	OpACOF3:   {"ACOF3", "Off event with 3 data bytes"},
	OpENRSP:   {"ENRSP", "Read node events response"},
	OpARON3:   {"ARON3", "Accessory on response"},
	OpAROF3:   {"AROF3", "Accessory off response"},
	OpEVLRNI:  {"EVLRNI", "Teach event using event indexing"},
	OpACDAT:   {"ACDAT", "Accessory data event: 5 bytes of node data (eg: RFID)"},
	OpARDAT:   {"ARDAT", "Accessory data response"},
	OpASON3:   {"ASON3", "Accessory short on with 3 data bytes"},
	OpASOF3:   {"ASOF3", "Accessory short off with 3 data bytes"},
	OpDDES:    {"DDES", "Short data frame aka device data event (device id plus 5 data bytes)"},
	OpDDRS:    {"DDRS", "Short data frame response aka device data response"},
	OpDDWS:    {"DDWS", "Device Data Write Short"},
	OpARSON3:  {"ARSON3", "Short response event on with 3 data bytes"},
	OpARSOF3:  {"ARSOF3", "Short response event off with 3 data bytes"},
	OpEXTC6:   {"EXTC6", "Extended opcode with 6 data byes"},
})
