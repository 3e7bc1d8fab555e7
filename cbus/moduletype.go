package cbus

import "fmt"

// ModuleVendor selects the arm of a ModuleType.
type ModuleVendor uint8

const (
	VendorGeneric ModuleVendor = iota
	VendorVLCB
	VendorMERG
	VendorSPROG
	VendorRocRail
	VendorSpectrum
	VendorSysPixie
)

func (v ModuleVendor) String() string {
	switch v {
	case VendorGeneric:
		return "Generic"
	case VendorVLCB:
		return "VLCB"
	case VendorMERG:
		return "MERG"
	case VendorSPROG:
		return "SPROG"
	case VendorRocRail:
		return "RocRail"
	case VendorSpectrum:
		return "Spectrum"
	case VendorSysPixie:
		return "SysPixie"
	default:
		return fmt.Sprintf("ModuleVendor(%d)", uint8(v))
	}
}

// ModuleType is a module type code interpreted in the namespace of the
// manufacturer that assigned it. The same byte means different modules for
// different manufacturers; the vendor arm keeps them apart.
//
// The zero value is Generic(0).
type ModuleType struct {
	vendor ModuleVendor
	code   uint8
}

// ModuleTypeVLCB is the single module type shared by all VLCB modules.
var ModuleTypeVLCB = ModuleType{vendor: VendorVLCB, code: uint8(MergVLCB)}

// NewMergModuleType wraps a MERG module type. MergVLCB becomes ModuleTypeVLCB.
func NewMergModuleType(t MergModuleType) ModuleType {
	if t == MergVLCB {
		return ModuleTypeVLCB
	}
	return ModuleType{vendor: VendorMERG, code: uint8(t)}
}

func NewSprogModuleType(t SprogModuleType) ModuleType {
	return ModuleType{vendor: VendorSPROG, code: uint8(t)}
}

func NewRocRailModuleType(t RocRailModuleType) ModuleType {
	return ModuleType{vendor: VendorRocRail, code: uint8(t)}
}

func NewSpectrumModuleType(t SpectrumModuleType) ModuleType {
	return ModuleType{vendor: VendorSpectrum, code: uint8(t)}
}

func NewSysPixieModuleType(t SysPixieModuleType) ModuleType {
	return ModuleType{vendor: VendorSysPixie, code: uint8(t)}
}

// GenericModuleType carries a byte no vendor registry claims.
func GenericModuleType(raw uint8) ModuleType {
	return ModuleType{vendor: VendorGeneric, code: raw}
}

// ModuleTypeFromCode decodes a module type byte for manufacturer m. It never
// fails: codes that the manufacturer's registry does not define, and codes
// from manufacturers without a registry, decode to the Generic arm.
func ModuleTypeFromCode(m Manufacturer, code uint8) ModuleType {
	switch m {
	case ManufacturerMERG, ManufacturerMERGVLCB:
		if t, err := MergModuleTypeFromCode(code); err == nil {
			return NewMergModuleType(t)
		}
	case ManufacturerSPROG:
		if t, err := SprogModuleTypeFromCode(code); err == nil {
			return NewSprogModuleType(t)
		}
	case ManufacturerRocRail:
		if t, err := RocRailModuleTypeFromCode(code); err == nil {
			return NewRocRailModuleType(t)
		}
	case ManufacturerSpectrum:
		if t, err := SpectrumModuleTypeFromCode(code); err == nil {
			return NewSpectrumModuleType(t)
		}
	case ManufacturerSysPixie:
		if t, err := SysPixieModuleTypeFromCode(code); err == nil {
			return NewSysPixieModuleType(t)
		}
	}
	return GenericModuleType(code)
}

// ModuleTypeFromCodeChecked is ModuleTypeFromCode for callers that require a
// registered module type. It fails when the result would be Generic.
func ModuleTypeFromCodeChecked(m Manufacturer, code uint8) (ModuleType, error) {
	t := ModuleTypeFromCode(m, code)
	if t.vendor == VendorGeneric {
		return ModuleType{}, &UndefinedCodeError{Space: SpaceModuleType, Value: code}
	}
	return t, nil
}

// ModuleTypeFromCodeUnchecked selects the arm from the manufacturer alone
// and trusts that code is defined there. Manufacturers without a registry
// still yield Generic.
func ModuleTypeFromCodeUnchecked(m Manufacturer, code uint8) ModuleType {
	switch m {
	case ManufacturerMERG, ManufacturerMERGVLCB:
		return NewMergModuleType(MergModuleTypeFromCodeUnchecked(code))
	case ManufacturerSPROG:
		return NewSprogModuleType(SprogModuleTypeFromCodeUnchecked(code))
	case ManufacturerRocRail:
		return NewRocRailModuleType(RocRailModuleTypeFromCodeUnchecked(code))
	case ManufacturerSpectrum:
		return NewSpectrumModuleType(SpectrumModuleTypeFromCodeUnchecked(code))
	case ManufacturerSysPixie:
		return NewSysPixieModuleType(SysPixieModuleTypeFromCodeUnchecked(code))
	default:
		return GenericModuleType(code)
	}
}

func (t ModuleType) Vendor() ModuleVendor { return t.vendor }

// Code returns the wire byte. It is total over every arm.
func (t ModuleType) Code() uint8 { return t.code }

func (t ModuleType) IsVLCB() bool    { return t.vendor == VendorVLCB }
func (t ModuleType) IsGeneric() bool { return t.vendor == VendorGeneric }

func (t ModuleType) Merg() (MergModuleType, bool) {
	return MergModuleType(t.code), t.vendor == VendorMERG
}

func (t ModuleType) Sprog() (SprogModuleType, bool) {
	return SprogModuleType(t.code), t.vendor == VendorSPROG
}

func (t ModuleType) RocRail() (RocRailModuleType, bool) {
	return RocRailModuleType(t.code), t.vendor == VendorRocRail
}

func (t ModuleType) Spectrum() (SpectrumModuleType, bool) {
	return SpectrumModuleType(t.code), t.vendor == VendorSpectrum
}

func (t ModuleType) SysPixie() (SysPixieModuleType, bool) {
	return SysPixieModuleType(t.code), t.vendor == VendorSysPixie
}

// Name returns the mnemonic within the vendor namespace.
func (t ModuleType) Name() string {
	switch t.vendor {
	case VendorVLCB:
		return MergVLCB.String()
	case VendorMERG:
		return MergModuleType(t.code).String()
	case VendorSPROG:
		return SprogModuleType(t.code).String()
	case VendorRocRail:
		return RocRailModuleType(t.code).String()
	case VendorSpectrum:
		return SpectrumModuleType(t.code).String()
	case VendorSysPixie:
		return SysPixieModuleType(t.code).String()
	default:
		return unknownName(t.code)
	}
}

func (t ModuleType) Description() string {
	switch t.vendor {
	case VendorVLCB:
		return MergVLCB.Description()
	case VendorMERG:
		return MergModuleType(t.code).Description()
	case VendorSPROG:
		return SprogModuleType(t.code).Description()
	case VendorRocRail:
		return RocRailModuleType(t.code).Description()
	case VendorSpectrum:
		return SpectrumModuleType(t.code).Description()
	case VendorSysPixie:
		return SysPixieModuleType(t.code).Description()
	default:
		return ""
	}
}

// String renders the arm and mnemonic, e.g. "MERG/CANMIO", "VLCB" or
// "Generic(0x20)".
func (t ModuleType) String() string {
	switch t.vendor {
	case VendorVLCB:
		return "VLCB"
	case VendorGeneric:
		return fmt.Sprintf("Generic(0x%02X)", t.code)
	default:
		return t.vendor.String() + "/" + t.Name()
	}
}
