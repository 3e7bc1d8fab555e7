package cbus

// MERG module types (manufacturer 165).
const (
	MergSLIM         MergModuleType = 0
	MergCANACC4      MergModuleType = 1
	MergCANACC5      MergModuleType = 2
	MergCANACC8      MergModuleType = 3
	MergCANACE3      MergModuleType = 4
	MergCANACE8C     MergModuleType = 5
	MergCANLED       MergModuleType = 6
	MergCANLED64     MergModuleType = 7
	MergCANACC4_2    MergModuleType = 8
	MergCANCAB       MergModuleType = 9
	MergCANCMD       MergModuleType = 10
	MergCANSERVO     MergModuleType = 11
	MergCANBC        MergModuleType = 12
	MergCANRPI       MergModuleType = 13
	MergCANTTCA      MergModuleType = 14
	MergCANTTCB      MergModuleType = 15
	MergCANHS        MergModuleType = 16
	MergCANTOTI      MergModuleType = 17
	MergCAN8I8O      MergModuleType = 18
	MergCANSERVO8C   MergModuleType = 19
	MergCANRFID      MergModuleType = 20
	MergCANTC4       MergModuleType = 21
	MergCANACE16C    MergModuleType = 22
	MergCANIO8       MergModuleType = 23
	MergCANSNDX      MergModuleType = 24
	MergCANEther     MergModuleType = 25
	MergCANSIG64     MergModuleType = 26
	MergCANSIG8      MergModuleType = 27
	MergCANCOND8C    MergModuleType = 28
	MergCANPAN       MergModuleType = 29
	MergCANACE3C     MergModuleType = 30
	MergCANPanel     MergModuleType = 31
	MergCANMIO       MergModuleType = 32
	MergCANACE8MIO   MergModuleType = 33
	MergCANSOL       MergModuleType = 34
	MergCANBIP       MergModuleType = 35
	MergCANCDU       MergModuleType = 36
	MergCANACC4CDU   MergModuleType = 37
	MergCANWiBase    MergModuleType = 38
	MergWiCAB        MergModuleType = 39
	MergCANWiFi      MergModuleType = 40
	MergCANFTT       MergModuleType = 41
	MergCANHNDST     MergModuleType = 42
	MergCANTCHNDST   MergModuleType = 43
	MergCANRFID8     MergModuleType = 44
	MergCANmchRFID   MergModuleType = 45
	MergCANPiWi      MergModuleType = 46
	MergCAN4DC       MergModuleType = 47
	MergCANELEV      MergModuleType = 48
	MergCANSCAN      MergModuleType = 49
	MergCANMIO_SVO   MergModuleType = 50
	MergCANMIO_INP   MergModuleType = 51
	MergCANMIO_OUT   MergModuleType = 52
	MergCANBIP_OUT   MergModuleType = 53
	MergCANASTOP     MergModuleType = 54
	MergCANCSB       MergModuleType = 55
	MergCANMAG       MergModuleType = 56
	MergCANACE16CMIO MergModuleType = 57
	MergCANPiNODE    MergModuleType = 58
	MergCANDISP      MergModuleType = 59
	MergCANCOMPUTE   MergModuleType = 60
	MergCANRC522     MergModuleType = 61
	MergCANINP       MergModuleType = 62
	MergCANOUT       MergModuleType = 63
	MergCANXIO       MergModuleType = 64
	MergCANCABDC     MergModuleType = 65
	MergCANRCOM      MergModuleType = 66
	MergCANMP3       MergModuleType = 67
	MergCANXMAS      MergModuleType = 68
	MergCANSVOSET    MergModuleType = 69
	MergCANCMDDC     MergModuleType = 70
	MergCANTEXT      MergModuleType = 71
	MergCANASIGNAL   MergModuleType = 72
	MergCANSLIDER    MergModuleType = 73
	MergCANDCATC     MergModuleType = 74
	MergCANGATE      MergModuleType = 75
	MergCANSINP      MergModuleType = 76
	MergCANSOUT      MergModuleType = 77
	MergCANSBIP      MergModuleType = 78
	MergCANBUFFER    MergModuleType = 79
	MergCANLEVER     MergModuleType = 80
	MergCANSHIELD    MergModuleType = 81
	MergCAN4IN4OUT   MergModuleType = 82
	MergCANCMDB      MergModuleType = 83
	MergCANPIXEL     MergModuleType = 84
	MergCANCABPE     MergModuleType = 85
	MergCANSMARTTD   MergModuleType = 86
	MergVLCB         MergModuleType = 252
	MergCANUSB       MergModuleType = 253
	MergEMPTY        MergModuleType = 254
	MergCAN_SW       MergModuleType = 255
)

var mergModuleTable = newCodeTable(SpaceMergModuleType, map[MergModuleType]entry{
	MergSLIM:         {"SLIM", "default for SLiM nodes"},
	MergCANACC4:      {"CANACC4", "Solenoid point driver"},
	MergCANACC5:      {"CANACC5", "Motorised point driver"},
	MergCANACC8:      {"CANACC8", "8 digital outputs"},
	MergCANACE3:      {"CANACE3", "Control panel switch/button encoder"},
	MergCANACE8C:     {"CANACE8C", "8 digital inputs"},
	MergCANLED:       {"CANLED", "64 led driver"},
	MergCANLED64:     {"CANLED64", "64 led driver (multi leds per event)"},
	MergCANACC4_2:    {"CANACC4_2", "12v version of CANACC4"},
	MergCANCAB:       {"CANCAB", "CANCAB hand throttle"},
	MergCANCMD:       {"CANCMD", "CANCMD command station"},
	MergCANSERVO:     {"CANSERVO", "8 servo driver (on canacc8 or similar hardware)"},
	MergCANBC:        {"CANBC", "BC1a command station"},
	MergCANRPI:       {"CANRPI", "RPI and RFID interface"},
	MergCANTTCA:      {"CANTTCA", "Turntable controller (turntable end)"},
	MergCANTTCB:      {"CANTTCB", "Turntable controller (control panel end)"},
	MergCANHS:        {"CANHS", "Handset controller for old BC1a type handsets"},
	MergCANTOTI:      {"CANTOTI", "Track occupancy detector"},
	MergCAN8I8O:      {"CAN8I8O", "8 inputs 8 outputs"},
	MergCANSERVO8C:   {"CANSERVO8C", "Canservo with servo position feedback"},
	MergCANRFID:      {"CANRFID", "RFID input"},
	MergCANTC4:       {"CANTC4", ""},
	MergCANACE16C:    {"CANACE16C", "16 inputs"},
	MergCANIO8:       {"CANIO8", "8 way I/O"},
	MergCANSNDX:      {"CANSNDX", ""},
	MergCANEther:     {"CANEther", "Ethernet interface"},
	MergCANSIG64:     {"CANSIG64", "Multiple aspect signalling for CANLED module"},
	MergCANSIG8:      {"CANSIG8", "Multiple aspect signalling for CANACC8 module"},
	MergCANCOND8C:    {"CANCOND8C", "Conditional event generation"},
	MergCANPAN:       {"CANPAN", "Control panel 32/32"},
	MergCANACE3C:     {"CANACE3C", "Newer version of CANACE3 firmware"},
	MergCANPanel:     {"CANPanel", "Control panel 64/64"},
	MergCANMIO:       {"CANMIO", "Multiple I/O – Universal CANMIO firmware"},
	MergCANACE8MIO:   {"CANACE8MIO", "Multiple IO module 16 inputs emulating CANACE8C on CANMIO hardware"},
	MergCANSOL:       {"CANSOL", "Solenoid driver module"},
	MergCANBIP:       {"CANBIP", "Universal CANBIP firmware - Bipolar IO module with additional 8 I/O pins (CANMIO family)"},
	MergCANCDU:       {"CANCDU", "Solenoid driver module with additional 6 I/O pins (CANMIO family)"},
	MergCANACC4CDU:   {"CANACC4CDU", "CANACC4 firmware ported to CANCDU"},
	MergCANWiBase:    {"CANWiBase", "CAN to MiWi base station"},
	MergWiCAB:        {"WiCAB", "Wireless cab using MiWi protocol"},
	MergCANWiFi:      {"CANWiFi", "CAN to WiFi connection with Withrottle to CBUS protocol conversion"},
	MergCANFTT:       {"CANFTT", "Turntable controller configured using FLiM"},
	MergCANHNDST:     {"CANHNDST", "Handset (alternative to CANCAB)"},
	MergCANTCHNDST:   {"CANTCHNDST", "Touchscreen handset"},
	MergCANRFID8:     {"CANRFID8", "multi-channel RFID reader"},
	MergCANmchRFID:   {"CANmchRFID", "either a 2ch or 8ch RFID reader"},
	MergCANPiWi:      {"CANPiWi", "a Raspberry Pi based module for WiFi"},
	MergCAN4DC:       {"CAN4DC", "DC train controller"},
	MergCANELEV:      {"CANELEV", "Nelevator controller"},
	MergCANSCAN:      {"CANSCAN", "128 switch inputs"},
	MergCANMIO_SVO:   {"CANMIO_SVO", "16MHz 25k80 version of CANSERVO8c on CANMIO hardware"},
	MergCANMIO_INP:   {"CANMIO_INP", "16MHz 25k80 version of CANACE8MIO on CANMIO hardware"},
	MergCANMIO_OUT:   {"CANMIO_OUT", "16MHz 25k80 version of CANACC8 on CANMIO hardware"},
	MergCANBIP_OUT:   {"CANBIP_OUT", "16MHz 25k80 version of CANACC5 on CANBIP hardware"},
	MergCANASTOP:     {"CANASTOP", "DCC stop generator"},
	MergCANCSB:       {"CANCSB", "CANCMD with on board 3A booster"},
	MergCANMAG:       {"CANMAG", "Magnet on Track detector"},
	MergCANACE16CMIO: {"CANACE16CMIO", "16 input equivaent to CANACE8C"},
	MergCANPiNODE:    {"CANPiNODE", "CBUS module based on Raspberry Pi"},
	MergCANDISP:      {"CANDISP", "25K80 version of CANLED64 (IHart and MB)"},
	MergCANCOMPUTE:   {"CANCOMPUTE", "Compute Event processing engine"},
	MergCANRC522:     {"CANRC522", "Read/Write from/to RC522 RFID tags"},
	MergCANINP:       {"CANINP", "8 inputs module (2g version of CANACE8c) (Pete Brownlow)"},
	MergCANOUT:       {"CANOUT", "8 outputs module (2g version of CANACC8) (Pete Brownlow)"},
	MergCANXIO:       {"CANXIO", "Extended CANMIO (24 I/O ports) (Pete Brownlow)"},
	MergCANCABDC:     {"CANCABDC", "DC cab"},
	MergCANRCOM:      {"CANRCOM", "DC Railcom detector/reader"},
	MergCANMP3:       {"CANMP3", "MP3 sound player in response to events (eg: station announcements) (Duncan Greenwood)"},
	MergCANXMAS:      {"CANXMAS", "Addressed RGB LED driver (Duncan Greenwood)"},
	MergCANSVOSET:    {"CANSVOSET", "Servo setting box (Duncan Greenwood)"},
	MergCANCMDDC:     {"CANCMDDC", "DC Command station"},
	MergCANTEXT:      {"CANTEXT", "Text message display"},
	MergCANASIGNAL:   {"CANASIGNAL", "Signal controller"},
	MergCANSLIDER:    {"CANSLIDER", "DCC cab with slider control (Dave Radcliffe)"},
	MergCANDCATC:     {"CANDCATC", "DC ATC module (Dave Harris)"},
	MergCANGATE:      {"CANGATE", "Logic module using and/or gates (Phil Silver)"},
	MergCANSINP:      {"CANSINP", "Q series PIC input module (Ian Hart)"},
	MergCANSOUT:      {"CANSOUT", "Q series PIC input module (Ian Hart)"},
	MergCANSBIP:      {"CANSBIP", "Q series PIC input module (Ian Hart)"},
	MergCANBUFFER:    {"CANBUFFER", "Message buffer (Phil Silver)"},
	MergCANLEVER:     {"CANLEVER", "Lever frame module (Tim Coombs)"},
	MergCANSHIELD:    {"CANSHIELD", "Kit 110 Arduino shield test firmware"},
	MergCAN4IN4OUT:   {"CAN4IN4OUT", "4 inputs 4 outputs (Arduino module)"},
	MergCANCMDB:      {"CANCMDB", "CANCMD with built in booster (Simon West)"},
	MergCANPIXEL:     {"CANPIXEL", "neopixel driver (Jon Denham)"},
	MergCANCABPE:     {"CANCABPE", "Cab2 with pot or encoder (Simon West hardware, Jon Denham new C firmware)"},
	MergCANSMARTTD:   {"CANSMARTTD", "Smart train detector (Michael Smith)"},
	MergVLCB:         {"VLCB", "All VLCB modules have the same ID"},
	MergCANUSB:       {"CANUSB", "USB interface"},
	MergEMPTY:        {"EMPTY", "Empty module, bootloader only"},
	MergCAN_SW:       {"CAN_SW", "Software nodes"},
})
