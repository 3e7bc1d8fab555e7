package cbus

import "testing"

func testModuleInfo() ModuleInfo {
	return ModuleInfo{
		Manufacturer:      ManufacturerMERG,
		ModuleType:        NewMergModuleType(MergCANMIO),
		Version:           NewModuleVersion(3, 'e', 2),
		MaxEvents:         255,
		EVsPerEvent:       20,
		NVCount:           200,
		Flags:             FlagEventCombi | FlagFLiM | FlagBootloader,
		Processor:         NewMicrochipProcessor(MicrochipP18F26K80),
		BusType:           BusCAN,
		LoadAddress:       0x00000800,
		CPUManufacturerID: CPUManufacturerID{0x00, 0x61, 0x12, 0x34},
	}
}

func TestNewParameterBlockLayout(t *testing.T) {
	b := NewParameterBlock(testModuleInfo())
	want := []byte{
		165, 'e', 32, 255, 20, 200, 3, 0x0F, 15, 1,
		0x00, 0x08, 0x00, 0x00,
		0x00, 0x61, 0x12, 0x34,
		1, 2,
	}
	got := b.Bytes()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("offset %d (param %d) = %d, want %d", i, i+1, got[i], want[i])
		}
	}
}

func TestParameterBlockViews(t *testing.T) {
	info := testModuleInfo()
	b := NewParameterBlock(info)

	if b.Manufacturer() != ManufacturerMERG {
		t.Errorf("Manufacturer() = %v", b.Manufacturer())
	}
	if b.ModuleType() != info.ModuleType {
		t.Errorf("ModuleType() = %v", b.ModuleType())
	}
	v, err := b.Version()
	if err != nil || v != info.Version {
		t.Errorf("Version() = %v, %v", v, err)
	}
	if b.Flags() != info.Flags {
		t.Errorf("Flags() = %v", b.Flags())
	}
	if b.Processor() != info.Processor {
		t.Errorf("Processor() = %v", b.Processor())
	}
	if bt, err := b.BusType(); err != nil || bt != BusCAN {
		t.Errorf("BusType() = %v, %v", bt, err)
	}
	if b.LoadAddress() != 0x800 {
		t.Errorf("LoadAddress() = 0x%X", b.LoadAddress())
	}
	if b.CPUManufacturerID() != info.CPUManufacturerID {
		t.Errorf("CPUManufacturerID() = %v", b.CPUManufacturerID())
	}
	if b.MaxEvents() != 255 || b.EVsPerEvent() != 20 || b.NVCount() != 200 {
		t.Errorf("counts = %d %d %d", b.MaxEvents(), b.EVsPerEvent(), b.NVCount())
	}
}

func TestParameterBlockParam(t *testing.T) {
	b := NewParameterBlock(testModuleInfo())
	tests := []struct {
		idx  uint8
		want byte
		ok   bool
	}{
		{0, ParamBlockLen, true},
		{uint8(ParamManufacturer), 165, true},
		{uint8(ParamModuleType), 32, true},
		{uint8(ParamBetaVersion), 2, true},
		{21, 0, false},
		{255, 0, false},
	}
	for _, tt := range tests {
		got, ok := b.Param(tt.idx)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Param(%d) = %d, %v; want %d, %v", tt.idx, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParameterBlockFromBytes(t *testing.T) {
	b, err := ParameterBlockFromBytes([]byte{44, 'a', 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mt, ok := b.ModuleType().Sprog(); !ok || mt != SprogCANSPROG {
		t.Errorf("ModuleType() = %v", b.ModuleType())
	}
	if _, err := b.Version(); err != nil {
		t.Errorf("Version() error: %v", err)
	}
	if _, err := b.BusType(); err == nil {
		t.Error("zero bus type accepted")
	}

	bad, _ := ParameterBlockFromBytes([]byte{165, '7'})
	if _, err := bad.Version(); err == nil {
		t.Error("numeric minor version accepted")
	}

	if _, err := ParameterBlockFromBytes(make([]byte, 21)); err == nil {
		t.Error("oversized block accepted")
	}
}
