package cbus

import (
	"errors"
	"fmt"
)

// ErrInvalidMinorVersion is returned when a minor version byte is not an
// ASCII letter.
var ErrInvalidMinorVersion = errors.New("cbus: minor version must be an ASCII letter")

// ModuleVersion is a firmware version: numeric major, alphabetic minor and a
// beta revision that is 0 for releases.
type ModuleVersion struct {
	major uint8
	minor byte
	beta  uint8
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// NewModuleVersion builds a version from compiled-in firmware metadata. It
// panics if minor is not an ASCII letter.
func NewModuleVersion(major uint8, minor rune, beta uint8) ModuleVersion {
	if !isASCIILetter(minor) {
		panic(fmt.Sprintf("cbus: minor version %q is not an ASCII letter", minor))
	}
	return ModuleVersion{major: major, minor: byte(minor), beta: beta}
}

// ModuleVersionFromParams builds a version from parameter block bytes, which
// may come off the wire.
func ModuleVersionFromParams(major, minor, beta byte) (ModuleVersion, error) {
	if !isASCIILetter(rune(minor)) {
		return ModuleVersion{}, fmt.Errorf("%w: got 0x%02X", ErrInvalidMinorVersion, minor)
	}
	return ModuleVersion{major: major, minor: minor, beta: beta}, nil
}

func (v ModuleVersion) Major() uint8 { return v.major }
func (v ModuleVersion) Minor() rune  { return rune(v.minor) }
func (v ModuleVersion) Beta() uint8  { return v.beta }

func (v ModuleVersion) IsRelease() bool { return v.beta == 0 }

// String renders "4a" for releases and "4a-beta3" otherwise.
func (v ModuleVersion) String() string {
	if v.IsRelease() {
		return fmt.Sprintf("%d%c", v.major, v.minor)
	}
	return fmt.Sprintf("%d%c-beta%d", v.major, v.minor, v.beta)
}
