package catalog

import (
	"fmt"
	"strings"

	"github.com/tonylturner/cbusdefs/cbus"
)

// Export renders the compiled registries as a catalog.
func Export() *File {
	file := &File{Version: SchemaVersion, Name: "cbus"}

	for _, space := range cbus.Spaces() {
		entries, _ := cbus.Entries(space)
		def := &Definition{
			Type:       DefEnum,
			DataType:   DataU8,
			Identifier: identifierFor(string(space)),
			Space:      string(space),
			Body:       make([]*Item, 0, len(entries)),
		}
		for _, e := range entries {
			def.Body = append(def.Body, &Item{
				Identifier: e.Name,
				Value:      int64(e.Code),
				Comments:   e.Description,
			})
		}
		file.Spec = append(file.Spec, def)
	}

	flags := &Definition{
		Type:       DefFlags,
		DataType:   DataU8,
		Identifier: "ParamFlags",
		Space:      flagsSpace,
		Comments:   "Node parameter 8 capability bits",
	}
	for _, b := range cbus.ParamFlagBits() {
		flags.Body = append(flags.Body, &Item{
			Identifier: b.Name,
			Value:      int64(b.Flag),
			Comments:   b.Description,
		})
		if b.Alias != "" {
			flags.Body = append(flags.Body, &Item{
				Identifier: b.Alias,
				Value:      int64(b.Flag),
				Comments:   fmt.Sprintf("Alias of %s", b.Name),
			})
		}
	}
	file.Spec = append(file.Spec, flags)

	return file
}

// identifierFor turns a space name such as "merg_module_type" into
// "MergModuleType".
func identifierFor(space string) string {
	var b strings.Builder
	for _, part := range strings.Split(space, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
