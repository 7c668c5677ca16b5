package sheets

import (
	"path/filepath"
	"strings"
)

var unsafeChars = strings.NewReplacer(
	"<", "_",
	">", "_",
	":", "_",
	"\"", "_",
	"/", "_",
	"\\", "_",
	"|", "_",
	"?", "_",
	"*", "_",
	" ", "_",
)

// SanitizeFileName makes a server or user supplied name safe to write into
// a single directory. ext is applied when the name has none.
func SanitizeFileName(name, ext string) string {
	name = strings.TrimSpace(name)
	name = unsafeChars.Replace(name)
	for strings.Contains(name, "__") {
		name = strings.ReplaceAll(name, "__", "_")
	}
	name = strings.Trim(name, "._")
	if name == "" {
		name = "character"
	}
	if filepath.Ext(name) == "" && ext != "" {
		name += ext
	}
	return name
}
