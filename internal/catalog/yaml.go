package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// itemYAML is the YAML representation with string values.
type itemYAML struct {
	Identifier string `yaml:"identifier"`
	Value      string `yaml:"value"`
	IsDefault  bool   `yaml:"is_default,omitempty"`
	Comments   string `yaml:"comments,omitempty"`
}

// definitionYAML mirrors Definition with raw item values, which can only be
// read once data_type is known.
type definitionYAML struct {
	Type       DefType    `yaml:"type"`
	DataType   DataType   `yaml:"data_type"`
	Identifier string     `yaml:"identifier"`
	Space      string     `yaml:"space,omitempty"`
	Comments   string     `yaml:"comments,omitempty"`
	Body       []itemYAML `yaml:"body"`
}

// UnmarshalYAML implements yaml.Unmarshaler for Definition.
func (d *Definition) UnmarshalYAML(value *yaml.Node) error {
	var raw definitionYAML
	if err := value.Decode(&raw); err != nil {
		return err
	}

	def := Definition{
		Type:       raw.Type,
		DataType:   raw.DataType,
		Identifier: raw.Identifier,
		Space:      raw.Space,
		Comments:   raw.Comments,
	}
	if raw.Body != nil {
		def.Body = make([]*Item, 0, len(raw.Body))
	}
	for _, it := range raw.Body {
		v, err := parseValue(it.Value, raw.DataType)
		if err != nil {
			return fmt.Errorf("%s: %s: value: %w", raw.Identifier, it.Identifier, err)
		}
		def.Body = append(def.Body, &Item{
			Identifier: it.Identifier,
			Value:      v,
			IsDefault:  it.IsDefault,
			Comments:   it.Comments,
		})
	}

	*d = def
	return nil
}

// MarshalYAML implements yaml.Marshaler for Definition.
func (d Definition) MarshalYAML() (interface{}, error) {
	raw := definitionYAML{
		Type:       d.Type,
		DataType:   d.DataType,
		Identifier: d.Identifier,
		Space:      d.Space,
		Comments:   d.Comments,
		Body:       make([]itemYAML, 0, len(d.Body)),
	}
	for _, it := range d.Body {
		raw.Body = append(raw.Body, itemYAML{
			Identifier: it.Identifier,
			Value:      formatValue(it.Value, d.DataType),
			IsDefault:  it.IsDefault,
			Comments:   it.Comments,
		})
	}
	return raw, nil
}

// parseValue reads an item value for data type dt. char values are a single
// ASCII character. Integer values are decimal, 0x-prefixed hex or
// 0b-prefixed binary with an optional sign; leading zeros are decimal.
func parseValue(s string, dt DataType) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("missing")
	}
	if dt == DataChar {
		if len(s) != 1 || s[0] >= 0x80 {
			return 0, fmt.Errorf("%q: char values must be a single ASCII character", s)
		}
		return int64(s[0]), nil
	}

	trimmed := strings.TrimSpace(s)
	sign := ""
	if trimmed != "" && (trimmed[0] == '-' || trimmed[0] == '+') {
		sign, trimmed = trimmed[:1], trimmed[1:]
	}
	base := 10
	if len(trimmed) > 2 && trimmed[0] == '0' {
		switch trimmed[1] {
		case 'x', 'X':
			trimmed, base = trimmed[2:], 16
		case 'b', 'B':
			trimmed, base = trimmed[2:], 2
		}
	}
	v, err := strconv.ParseInt(sign+trimmed, base, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %s values must be integers", s, dt)
	}
	return v, nil
}

func formatValue(v int64, dt DataType) string {
	if dt == DataChar && v >= 0 && v < 0x80 {
		return string(rune(v))
	}
	if v < 0 {
		return strconv.FormatInt(v, 10)
	}
	return fmt.Sprintf("0x%02X", v)
}
