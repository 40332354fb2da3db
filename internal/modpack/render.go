package modpack

import (
	"strings"

	"scam/internal/preset"
	"scam/internal/schema"
)

const (
	header     = "CustomPlayer : struct.begin {refurl=../ObjPrototypes.cfg; refkey=Player}\n"
	structEnd  = "struct.end"
	indent     = "   "
	itemIndent = "      "
)

// Render returns the cfg text for diff. Sections keep diff order, the reserved
// sync section is omitted, and the text has no trailing newline.
func Render(diff *preset.Preset) string {
	var b strings.Builder
	b.WriteString(header)
	if diff != nil {
		for _, section := range diff.Sections() {
			if section.Name == schema.SyncSection || len(section.Items) == 0 {
				continue
			}
			b.WriteString(indent + section.Name + " : struct.begin\n")
			for _, item := range section.Items {
				b.WriteString(itemIndent + item.Ref.Key + " = " + item.Value.String() + "\n")
			}
			b.WriteString(indent + structEnd + "\n")
		}
	}
	b.WriteString(structEnd)
	return b.String()
}
