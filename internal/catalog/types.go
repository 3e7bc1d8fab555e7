// Package catalog reads, writes and checks YAML definition catalogs that
// describe the CBUS code spaces in a language-neutral form.
package catalog

import (
	"fmt"

	"github.com/coreos/go-semver/semver"
)

// SchemaMajor is the catalog format major version this package reads.
const SchemaMajor = 1

// SchemaVersion is written by Export.
const SchemaVersion = "1.0.0"

// DefType is the kind of a definition.
type DefType string

const (
	DefEnum  DefType = "Enum"  // one value per identifier, values unique
	DefFlags DefType = "Flags" // bit masks, aliases allowed
)

// DataType is the storage type of a definition's values.
type DataType string

const (
	DataU8   DataType = "u8"
	DataU16  DataType = "u16"
	DataU32  DataType = "u32"
	DataU64  DataType = "u64"
	DataI8   DataType = "i8"
	DataI16  DataType = "i16"
	DataI32  DataType = "i32"
	DataI64  DataType = "i64"
	DataChar DataType = "char"
)

// valueRange is the inclusive range of a data type.
func (d DataType) valueRange() (lo, hi int64, ok bool) {
	switch d {
	case DataU8:
		return 0, 1<<8 - 1, true
	case DataU16:
		return 0, 1<<16 - 1, true
	case DataU32:
		return 0, 1<<32 - 1, true
	case DataU64:
		return 0, 1<<63 - 1, true
	case DataI8:
		return -1 << 7, 1<<7 - 1, true
	case DataI16:
		return -1 << 15, 1<<15 - 1, true
	case DataI32:
		return -1 << 31, 1<<31 - 1, true
	case DataI64:
		return -1 << 63, 1<<63 - 1, true
	case DataChar:
		return 0, 0x7F, true
	}
	return 0, 0, false
}

// Item is one named value of a definition.
type Item struct {
	Identifier string
	Value      int64
	IsDefault  bool
	Comments   string
}

// Definition is one enum or flag set.
type Definition struct {
	Type       DefType  `yaml:"type"`
	DataType   DataType `yaml:"data_type"`
	Identifier string   `yaml:"identifier"`
	// Space binds the definition to a compiled registry for
	// ValidateAgainstRegistry. It may be empty.
	Space    string  `yaml:"space,omitempty"`
	Comments string  `yaml:"comments,omitempty"`
	Body     []*Item `yaml:"body"`
}

// Item returns the item named identifier.
func (d *Definition) Item(identifier string) (*Item, bool) {
	for _, it := range d.Body {
		if it.Identifier == identifier {
			return it, true
		}
	}
	return nil, false
}

// File is a definition catalog.
type File struct {
	Version string        `yaml:"version"`
	Name    string        `yaml:"name,omitempty"`
	Spec    []*Definition `yaml:"spec"`
}

// Definition returns the definition named identifier.
func (f *File) Definition(identifier string) (*Definition, bool) {
	for _, d := range f.Spec {
		if d.Identifier == identifier {
			return d, true
		}
	}
	return nil, false
}

// Bound returns the definition bound to space.
func (f *File) Bound(space string) (*Definition, bool) {
	for _, d := range f.Spec {
		if d.Space == space {
			return d, true
		}
	}
	return nil, false
}

// SemVer parses the catalog version.
func (f *File) SemVer() (*semver.Version, error) {
	v, err := semver.NewVersion(f.Version)
	if err != nil {
		return nil, fmt.Errorf("version %q: %w", f.Version, err)
	}
	return v, nil
}

// Validate checks the catalog file for consistency.
func (f *File) Validate() error {
	v, err := f.SemVer()
	if err != nil {
		return err
	}
	if v.Major != SchemaMajor {
		return fmt.Errorf("unsupported catalog version: %s", v)
	}

	defs := make(map[string]bool)
	spaces := make(map[string]bool)
	for i, d := range f.Spec {
		if d.Identifier == "" {
			return fmt.Errorf("definition %d: missing identifier", i)
		}
		if defs[d.Identifier] {
			return fmt.Errorf("definition %d: duplicate identifier %q", i, d.Identifier)
		}
		defs[d.Identifier] = true

		if d.Space != "" {
			if spaces[d.Space] {
				return fmt.Errorf("definition %q: space %q already bound", d.Identifier, d.Space)
			}
			spaces[d.Space] = true
		}

		if err := d.validate(); err != nil {
			return fmt.Errorf("definition %q: %w", d.Identifier, err)
		}
	}

	return nil
}

func (d *Definition) validate() error {
	switch d.Type {
	case DefEnum, DefFlags:
	case "":
		return fmt.Errorf("missing type")
	default:
		return fmt.Errorf("unknown type %q", d.Type)
	}
	lo, hi, ok := d.DataType.valueRange()
	if !ok {
		return fmt.Errorf("unknown data_type %q", d.DataType)
	}
	if d.Type == DefFlags && (d.DataType == DataChar || lo < 0) {
		return fmt.Errorf("flags need an unsigned data_type, got %s", d.DataType)
	}

	names := make(map[string]bool)
	values := make(map[int64]string)
	defaults := 0
	for i, it := range d.Body {
		if it.Identifier == "" {
			return fmt.Errorf("body %d: missing identifier", i)
		}
		if names[it.Identifier] {
			return fmt.Errorf("body %d: duplicate identifier %q", i, it.Identifier)
		}
		names[it.Identifier] = true

		if it.Value < lo || it.Value > hi {
			return fmt.Errorf("%s: value %d out of range for %s", it.Identifier, it.Value, d.DataType)
		}
		if it.IsDefault {
			if d.Type == DefFlags {
				return fmt.Errorf("%s: is_default is only valid for Enum", it.Identifier)
			}
			defaults++
		}
		if d.Type == DefEnum {
			if prev, dup := values[it.Value]; dup {
				return fmt.Errorf("%s: value %d already used by %s", it.Identifier, it.Value, prev)
			}
			values[it.Value] = it.Identifier
		}
	}
	if defaults > 1 {
		return fmt.Errorf("%d items marked is_default", defaults)
	}
	return nil
}

// flagsSpace binds a Flags definition to the node parameter flag bits.
const flagsSpace = "param_flags"
