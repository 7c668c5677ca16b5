package character

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	dnderr "github.com/wcg-tools/osf-chargen/internal/errors"
)

// CharClass is the closed set of character classes
type CharClass string

const (
	ClassBerzerker CharClass = "berzerker"
	ClassMage      CharClass = "mage"
	ClassMystic    CharClass = "mystic"
	ClassRanger    CharClass = "ranger"
	ClassRogue     CharClass = "rogue"
	ClassShaman    CharClass = "shaman"
	ClassSkald     CharClass = "skald"
	ClassWarrior   CharClass = "warrior"
)

// AllClasses lists classes in display order
var AllClasses = []CharClass{
	ClassBerzerker,
	ClassMage,
	ClassMystic,
	ClassRanger,
	ClassRogue,
	ClassShaman,
	ClassSkald,
	ClassWarrior,
}

var titleCaser = cases.Title(language.English)

// ParseCharClass accepts the internal key in any case
func ParseCharClass(s string) (CharClass, error) {
	c := CharClass(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllClasses {
		if c == known {
			return c, nil
		}
	}
	return "", dnderr.InvalidArgumentf("unknown character class %q", s)
}

// Name returns the display name, e.g. "Berzerker"
func (c CharClass) Name() string {
	return titleCaser.String(string(c))
}

// Upper is the wire form used in requests and lookups
func (c CharClass) Upper() string {
	return strings.ToUpper(string(c))
}

// IsMagicUser reports whether the class casts spells
func (c CharClass) IsMagicUser() bool {
	return c == ClassMage || c == ClassShaman
}
