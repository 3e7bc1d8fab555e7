package cbus

// Microchip processor codes, used by the FCU to pick a compatible bootloader.
const (
	MicrochipP18F2480     MicrochipProcessor = 1
	MicrochipP18F4480     MicrochipProcessor = 2
	MicrochipP18F2580     MicrochipProcessor = 3
	MicrochipP18F4580     MicrochipProcessor = 4
	MicrochipP18F2585     MicrochipProcessor = 5
	MicrochipP18F4585     MicrochipProcessor = 6
	MicrochipP18F2680     MicrochipProcessor = 7
	MicrochipP18F4680     MicrochipProcessor = 8
	MicrochipP18F2682     MicrochipProcessor = 9
	MicrochipP18F4682     MicrochipProcessor = 10
	MicrochipP18F2685     MicrochipProcessor = 11
	MicrochipP18F4685     MicrochipProcessor = 12
	MicrochipP18F25K80    MicrochipProcessor = 13
	MicrochipP18F45K80    MicrochipProcessor = 14
	MicrochipP18F26K80    MicrochipProcessor = 15
	MicrochipP18F46K80    MicrochipProcessor = 16
	MicrochipP18F65K80    MicrochipProcessor = 17
	MicrochipP18F66K80    MicrochipProcessor = 18
	MicrochipP18F25K83    MicrochipProcessor = 19
	MicrochipP18F26K83    MicrochipProcessor = 20
	MicrochipP18F27Q84    MicrochipProcessor = 21
	MicrochipP18F47Q84    MicrochipProcessor = 22
	MicrochipP18F27Q83    MicrochipProcessor = 23
	MicrochipP18F14K22    MicrochipProcessor = 25
	MicrochipP32MX534F064 MicrochipProcessor = 30
	MicrochipP32MX564F064 MicrochipProcessor = 31
	MicrochipP32MX564F128 MicrochipProcessor = 32
	MicrochipP32MX575F256 MicrochipProcessor = 33
	MicrochipP32MX575F512 MicrochipProcessor = 34
	MicrochipP32MX764F128 MicrochipProcessor = 35
	MicrochipP32MX775F256 MicrochipProcessor = 36
	MicrochipP32MX775F512 MicrochipProcessor = 37
	MicrochipP32MX795F512 MicrochipProcessor = 38
)

var microchipTable = newCodeTable(SpaceMicrochipProcessor, map[MicrochipProcessor]entry{
	MicrochipP18F2480:     {"P18F2480", "Microchip PIC18F2480"},
	MicrochipP18F4480:     {"P18F4480", "Microchip PIC18F4480"},
	MicrochipP18F2580:     {"P18F2580", "Microchip PIC18F2580"},
	MicrochipP18F4580:     {"P18F4580", "Microchip PIC18F4580"},
	MicrochipP18F2585:     {"P18F2585", "Microchip PIC18F2585"},
	MicrochipP18F4585:     {"P18F4585", "Microchip PIC18F4585"},
	MicrochipP18F2680:     {"P18F2680", "Microchip PIC18F2680"},
	MicrochipP18F4680:     {"P18F4680", "Microchip PIC18F4680"},
	MicrochipP18F2682:     {"P18F2682", "Microchip PIC18F2682"},
	MicrochipP18F4682:     {"P18F4682", "Microchip PIC18F4682"},
	MicrochipP18F2685:     {"P18F2685", "Microchip PIC18F2685"},
	MicrochipP18F4685:     {"P18F4685", "Microchip PIC18F4685"},
	MicrochipP18F25K80:    {"P18F25K80", "Microchip PIC18F25K80"},
	MicrochipP18F45K80:    {"P18F45K80", "Microchip PIC18F45K80"},
	MicrochipP18F26K80:    {"P18F26K80", "Microchip PIC18F26K80"},
	MicrochipP18F46K80:    {"P18F46K80", "Microchip PIC18F46K80"},
	MicrochipP18F65K80:    {"P18F65K80", "Microchip PIC18F65K80"},
	MicrochipP18F66K80:    {"P18F66K80", "Microchip PIC18F66K80"},
	MicrochipP18F25K83:    {"P18F25K83", "Microchip PIC18F25K83"},
	MicrochipP18F26K83:    {"P18F26K83", "Microchip PIC18F26K83"},
	MicrochipP18F27Q84:    {"P18F27Q84", "Microchip PIC18F27Q84"},
	MicrochipP18F47Q84:    {"P18F47Q84", "Microchip PIC18F47Q84"},
	MicrochipP18F27Q83:    {"P18F27Q83", "Microchip PIC18F27Q83"},
	MicrochipP18F14K22:    {"P18F14K22", "Microchip PIC18F14K22"},
	MicrochipP32MX534F064: {"P32MX534F064", "Microchip PIC32MX534F064"},
	MicrochipP32MX564F064: {"P32MX564F064", "Microchip PIC32MX564F064"},
	MicrochipP32MX564F128: {"P32MX564F128", "Microchip PIC32MX564F128"},
	MicrochipP32MX575F256: {"P32MX575F256", "Microchip PIC32MX575F256"},
	MicrochipP32MX575F512: {"P32MX575F512", "Microchip PIC32MX575F512"},
	MicrochipP32MX764F128: {"P32MX764F128", "Microchip PIC32MX764F128"},
	MicrochipP32MX775F256: {"P32MX775F256", "Microchip PIC32MX775F256"},
	MicrochipP32MX775F512: {"P32MX775F512", "Microchip PIC32MX775F512"},
	MicrochipP32MX795F512: {"P32MX795F512", "Microchip PIC32MX795F512"},
})
