package features

import (
	"github.com/wcg-tools/osf-chargen/internal/domain/rulebook"
)

// IsIncomplete reports whether a feature's effect has to be applied by hand
func IsIncomplete(f rulebook.Feature) bool {
	for _, attr := range f.Attributes {
		switch attr.Type {
		case rulebook.FeatureAttrPlus1, rulebook.FeatureSkill:
			return true
		case rulebook.FeatureDADV:
			if attr.Modifier == rulebook.ModifierAny {
				return true
			}
		}
	}
	return false
}

// IncompleteSelection returns the selected features from catalog that are
// incomplete, each name once, in selection order
func IncompleteSelection(catalog []rulebook.Feature, selected []string) []string {
	var out []string
	seen := make(map[string]bool, len(selected))
	for _, name := range selected {
		if seen[name] {
			continue
		}
		seen[name] = true

		f, ok := rulebook.Find(catalog, name)
		if ok && IsIncomplete(f) {
			out = append(out, name)
		}
	}
	return out
}
