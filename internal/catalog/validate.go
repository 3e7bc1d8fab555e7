package catalog

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tonylturner/cbusdefs/cbus"
)

// ValidationError represents a catalog validation finding.
type ValidationError struct {
	Definition string
	Field      string
	Message    string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Definition, e.Field, e.Message)
}

// ValidationResult holds results from catalog validation.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// IsValid returns true if no errors were found.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// IsClean returns true if there were neither errors nor warnings.
func (r *ValidationResult) IsClean() bool {
	return len(r.Errors) == 0 && len(r.Warnings) == 0
}

func (r *ValidationResult) errorf(def, field, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Definition: def, Field: field, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warnf(def, field, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Definition: def, Field: field, Message: fmt.Sprintf(format, args...)})
}

// ValidateAgainstRegistry compares a catalog with the compiled registries.
// Values a bound definition gives that the registry does not define are
// errors; renamed codes, unbound definitions and registry codes missing
// from the catalog are warnings.
func ValidateAgainstRegistry(f *File) *ValidationResult {
	result := &ValidationResult{}

	for _, d := range f.Spec {
		switch {
		case d.Space == "":
			result.warnf(d.Identifier, "space", "not bound to a registry")
		case d.Space == flagsSpace:
			validateFlags(d, result)
		case cbus.IsKnownSpace(cbus.Space(d.Space)):
			validateEnum(d, cbus.Space(d.Space), result)
		default:
			result.errorf(d.Identifier, "space", "unknown registry %q", d.Space)
		}
	}

	for _, space := range cbus.Spaces() {
		if _, ok := f.Bound(string(space)); !ok {
			result.warnf(string(space), "space", "registry has no catalog definition")
		}
	}
	if _, ok := f.Bound(flagsSpace); !ok {
		result.warnf(flagsSpace, "space", "registry has no catalog definition")
	}

	Logger().Debug("catalog checked against registry",
		zap.Int("errors", len(result.Errors)),
		zap.Int("warnings", len(result.Warnings)))
	return result
}

func validateEnum(d *Definition, space cbus.Space, result *ValidationResult) {
	if d.Type != DefEnum {
		result.errorf(d.Identifier, "type", "registry %s is an Enum, got %s", space, d.Type)
		return
	}
	if d.DataType != DataU8 {
		result.errorf(d.Identifier, "data_type", "registry %s is u8, got %s", space, d.DataType)
		return
	}

	seen := make(map[uint8]bool)
	for _, it := range d.Body {
		if it.Value < 0 || it.Value > 0xFF {
			result.errorf(d.Identifier, it.Identifier, "value %d is not a byte", it.Value)
			continue
		}
		code := uint8(it.Value)
		seen[code] = true
		e, err := cbus.Lookup(space, code)
		if err != nil {
			result.errorf(d.Identifier, it.Identifier, "0x%02X is not defined in %s", code, space)
			continue
		}
		if !strings.EqualFold(e.Name, it.Identifier) {
			result.warnf(d.Identifier, it.Identifier, "0x%02X is named %s in %s", code, e.Name, space)
		}
	}

	entries, _ := cbus.Entries(space)
	for _, e := range entries {
		if !seen[e.Code] {
			result.warnf(d.Identifier, e.Name, "0x%02X is missing from the catalog", e.Code)
		}
	}
}

func validateFlags(d *Definition, result *ValidationResult) {
	if d.Type != DefFlags {
		result.errorf(d.Identifier, "type", "registry %s is Flags, got %s", flagsSpace, d.Type)
		return
	}

	byName := make(map[string]cbus.ParamFlags)
	for _, b := range cbus.ParamFlagBits() {
		byName[strings.ToLower(b.Name)] = b.Flag
		if b.Alias != "" {
			byName[strings.ToLower(b.Alias)] = b.Flag
		}
	}

	covered := cbus.ParamFlags(0)
	for _, it := range d.Body {
		if it.Value < 0 || it.Value > 0xFF {
			result.errorf(d.Identifier, it.Identifier, "value %d is not a byte", it.Value)
			continue
		}
		flag := cbus.ParamFlags(it.Value)
		if flag.Reserved() != 0 {
			result.errorf(d.Identifier, it.Identifier, "0x%02X uses reserved bits", it.Value)
			continue
		}
		want, ok := byName[strings.ToLower(it.Identifier)]
		switch {
		case !ok:
			result.warnf(d.Identifier, it.Identifier, "no flag bit has this name")
		case want != flag:
			result.errorf(d.Identifier, it.Identifier, "value 0x%02X, registry has 0x%02X", it.Value, uint8(want))
		}
		covered |= flag
	}

	for _, b := range cbus.ParamFlagBits() {
		if !covered.Contains(b.Flag) {
			result.warnf(d.Identifier, b.Name, "bit 0x%02X is missing from the catalog", uint8(b.Flag))
		}
	}
}
