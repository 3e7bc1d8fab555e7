package catalog

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/tonylturner/cbusdefs/cbus"
)

func TestExportIsConsistent(t *testing.T) {
	file := Export()

	if err := file.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	result := ValidateAgainstRegistry(file)
	if !result.IsClean() {
		t.Errorf("expected clean result, got errors %v warnings %v", result.Errors, result.Warnings)
	}

	if len(file.Spec) != len(cbus.Spaces())+1 {
		t.Errorf("expected %d definitions, got %d", len(cbus.Spaces())+1, len(file.Spec))
	}

	def, ok := file.Definition("Opcode")
	if !ok {
		t.Fatal("Opcode definition missing")
	}
	acon, ok := def.Item("ACON")
	if !ok || acon.Value != 0x90 {
		t.Errorf("ACON = %+v", acon)
	}

	flags, ok := file.Bound(flagsSpace)
	if !ok {
		t.Fatal("flags definition missing")
	}
	flim, ok := flags.Item("FLiM")
	if !ok || flim.Value != int64(cbus.FlagFLiM) {
		t.Errorf("FLiM alias = %+v", flim)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cbus.yaml")
	want := Export()

	if err := Save(path, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate failed: %v", err)
	}

	if !reflect.DeepEqual(got, want) {
		t.Error("catalog changed across Save/Load")
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "read catalog file") {
		t.Errorf("expected read error, got %v", err)
	}
}

const handWritten = `
version: 1.2.0
spec:
  - type: Enum
    data_type: char
    identifier: Grade
    body:
      - identifier: Alpha
        value: A
        is_default: true
      - identifier: Beta
        value: "B"
  - type: Flags
    data_type: u16
    identifier: Wide
    comments: Sixteen bit flags
    body:
      - identifier: Low
        value: 0x0001
      - identifier: High
        value: 0b1000000000000000
`

func TestParseHandWritten(t *testing.T) {
	file, err := Parse([]byte(handWritten))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if err := file.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	grade, _ := file.Definition("Grade")
	if a, _ := grade.Item("Alpha"); a.Value != 'A' || !a.IsDefault {
		t.Errorf("Alpha = %+v", a)
	}
	if b, _ := grade.Item("Beta"); b.Value != 'B' {
		t.Errorf("Beta = %+v", b)
	}

	wide, _ := file.Definition("Wide")
	if h, _ := wide.Item("High"); h.Value != 0x8000 {
		t.Errorf("High = %+v", h)
	}

	v, err := file.SemVer()
	if err != nil || v.Minor != 2 {
		t.Errorf("SemVer() = %v, %v", v, err)
	}

	result := ValidateAgainstRegistry(file)
	if !result.IsValid() {
		t.Errorf("unbound definitions should only warn: %v", result.Errors)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected warnings for unbound definitions")
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in      string
		dt      DataType
		want    int64
		wantErr bool
	}{
		{"0x10", DataU8, 16, false},
		{"12", DataU8, 12, false},
		{"010", DataU8, 10, false},
		{" 7 ", DataU16, 7, false},
		{"-3", DataI8, -3, false},
		{"-0x10", DataI16, -16, false},
		{"0b101", DataU8, 5, false},
		{"A", DataChar, 'A', false},
		{"1", DataChar, '1', false},
		{" ", DataChar, ' ', false},
		{"A", DataU8, 0, true},
		{"AB", DataChar, 0, true},
		{"0x41", DataChar, 0, true},
		{"0o17", DataU8, 0, true},
		{"", DataU8, 0, true},
		{"zz", DataU8, 0, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.dt)+"/"+tt.in, func(t *testing.T) {
			got, err := parseValue(tt.in, tt.dt)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseValue(%q, %s) error = %v", tt.in, tt.dt, err)
			}
			if got != tt.want {
				t.Errorf("parseValue(%q, %s) = %d, want %d", tt.in, tt.dt, got, tt.want)
			}
		})
	}
}

const charDigits = `
version: 1.0.0
spec:
  - type: Enum
    data_type: char
    identifier: Digit
    body:
      - identifier: One
        value: '1'
      - identifier: Two
        value: 2
`

func TestCharValuesAreCharacters(t *testing.T) {
	file, err := Parse([]byte(charDigits))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if err := file.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	digit, _ := file.Definition("Digit")
	if one, _ := digit.Item("One"); one.Value != '1' {
		t.Errorf("One = 0x%02X, want 0x31", one.Value)
	}
	if two, _ := digit.Item("Two"); two.Value != '2' {
		t.Errorf("Two = 0x%02X, want 0x32", two.Value)
	}

	data, err := Marshal(file)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(data), "0x31") || !strings.Contains(string(data), `value: "1"`) {
		t.Errorf("char value not written as a character:\n%s", data)
	}
	again, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse after Marshal failed: %v", err)
	}
	if !reflect.DeepEqual(again, file) {
		t.Error("char catalog changed across Marshal/Parse")
	}
}

func TestParseRejectsValueForDataType(t *testing.T) {
	tests := []struct {
		name string
		dt   string
		val  string
	}{
		{"char in u8", "u8", "'A'"},
		{"number in char", "char", "0x41"},
		{"word in char", "char", "AB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := "version: 1.0.0\nspec:\n  - type: Enum\n    data_type: " + tt.dt +
				"\n    identifier: E\n    body:\n      - identifier: X\n        value: " + tt.val + "\n"
			_, err := Parse([]byte(doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), "E: X: value") {
				t.Errorf("error = %v", err)
			}
		})
	}
}

func TestFileValidateErrors(t *testing.T) {
	item := func(id string, v int64) *Item { return &Item{Identifier: id, Value: v} }
	enum := func(body ...*Item) *Definition {
		return &Definition{Type: DefEnum, DataType: DataU8, Identifier: "E", Body: body}
	}

	tests := []struct {
		name     string
		file     *File
		contains string
	}{
		{"bad semver", &File{Version: "1.0"}, "version"},
		{"wrong major", &File{Version: "2.0.0"}, "unsupported catalog version"},
		{"missing identifier", &File{Version: "1.0.0", Spec: []*Definition{{Type: DefEnum, DataType: DataU8}}}, "missing identifier"},
		{"duplicate definition", &File{Version: "1.0.0", Spec: []*Definition{enum(), enum()}}, "duplicate identifier"},
		{"bad type", &File{Version: "1.0.0", Spec: []*Definition{{Type: "Bitset", DataType: DataU8, Identifier: "E"}}}, "unknown type"},
		{"bad data type", &File{Version: "1.0.0", Spec: []*Definition{{Type: DefEnum, DataType: "u128", Identifier: "E"}}}, "unknown data_type"},
		{"signed flags", &File{Version: "1.0.0", Spec: []*Definition{{Type: DefFlags, DataType: DataI8, Identifier: "F"}}}, "unsigned"},
		{"duplicate item", &File{Version: "1.0.0", Spec: []*Definition{enum(item("A", 1), item("A", 2))}}, "duplicate identifier"},
		{"duplicate value", &File{Version: "1.0.0", Spec: []*Definition{enum(item("A", 1), item("B", 1))}}, "already used by A"},
		{"out of range", &File{Version: "1.0.0", Spec: []*Definition{enum(item("A", 256))}}, "out of range"},
		{"two defaults", &File{Version: "1.0.0", Spec: []*Definition{enum(
			&Item{Identifier: "A", Value: 1, IsDefault: true},
			&Item{Identifier: "B", Value: 2, IsDefault: true},
		)}}, "is_default"},
		{"space bound twice", &File{Version: "1.0.0", Spec: []*Definition{
			{Type: DefEnum, DataType: DataU8, Identifier: "A", Space: "opcode"},
			{Type: DefEnum, DataType: DataU8, Identifier: "B", Space: "opcode"},
		}}, "already bound"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.file.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error = %v, want to contain %q", err, tt.contains)
			}
		})
	}
}

func TestFlagsAllowSharedValues(t *testing.T) {
	file := &File{Version: "1.0.0", Spec: []*Definition{{
		Type: DefFlags, DataType: DataU8, Identifier: "F",
		Body: []*Item{{Identifier: "A", Value: 4}, {Identifier: "B", Value: 4}},
	}}}
	if err := file.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func findings(list []ValidationError, field string) int {
	n := 0
	for _, f := range list {
		if f.Field == field {
			n++
		}
	}
	return n
}

func TestValidateAgainstRegistryDrift(t *testing.T) {
	file := Export()

	ops, _ := file.Bound(string(cbus.SpaceOpCode))
	acon, _ := ops.Item("ACON")
	acon.Identifier = "ACCESSORY_ON"
	ops.Body = append(ops.Body, &Item{Identifier: "BOGUS", Value: 0x0B})
	ops.Body = ops.Body[1:]

	flags, _ := file.Bound(flagsSpace)
	lm, _ := flags.Item("LearnMode")
	lm.Value = int64(cbus.FlagBootloader)

	file.Spec = append(file.Spec, &Definition{Type: DefEnum, DataType: DataU8, Identifier: "Extra", Space: "nowhere"})

	result := ValidateAgainstRegistry(file)

	if findings(result.Warnings, "ACCESSORY_ON") != 1 {
		t.Errorf("expected rename warning, got %v", result.Warnings)
	}
	if findings(result.Errors, "BOGUS") != 1 {
		t.Errorf("expected undefined code error, got %v", result.Errors)
	}
	first := cbus.OpCodes()[0]
	if findings(result.Warnings, first.String()) != 1 {
		t.Errorf("expected missing %s warning, got %v", first, result.Warnings)
	}
	if findings(result.Errors, "LearnMode") != 1 {
		t.Errorf("expected flag value error, got %v", result.Errors)
	}
	if findings(result.Errors, "space") != 1 {
		t.Errorf("expected unknown registry error, got %v", result.Errors)
	}
	if result.IsValid() {
		t.Error("result should not be valid")
	}
}

func TestValidateAgainstRegistryTypeMismatch(t *testing.T) {
	file := Export()
	ops, _ := file.Bound(string(cbus.SpaceOpCode))
	ops.Type = DefFlags

	result := ValidateAgainstRegistry(file)
	if findings(result.Errors, "type") != 1 {
		t.Errorf("expected type error, got %v", result.Errors)
	}
}

func TestIdentifierFor(t *testing.T) {
	tests := map[string]string{
		"opcode":           "Opcode",
		"merg_module_type": "MergModuleType",
		"cabsig_aspect1":   "CabsigAspect1",
	}
	for in, want := range tests {
		if got := identifierFor(in); got != want {
			t.Errorf("identifierFor(%q) = %q, want %q", in, got, want)
		}
	}
}
