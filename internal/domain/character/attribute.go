package character

import (
	"slices"
	"strings"

	dnderr "github.com/wcg-tools/osf-chargen/internal/errors"
)

// Attribute is one of the seven attribute keys
type Attribute string

const (
	AttributeSTR Attribute = "STR"
	AttributeCOR Attribute = "COR"
	AttributeSTA Attribute = "STA"
	AttributePER Attribute = "PER"
	AttributeINT Attribute = "INT"
	AttributePRS Attribute = "PRS"
	AttributeLUC Attribute = "LUC"
)

// Attributes lists every attribute in canonical sheet order
var Attributes = []Attribute{
	AttributeSTR,
	AttributeCOR,
	AttributeSTA,
	AttributePER,
	AttributeINT,
	AttributePRS,
	AttributeLUC,
}

// NumAttributes is the size of the attribute set and of every value pool
const NumAttributes = 7

var attributeNames = map[Attribute]string{
	AttributeSTR: "Strength",
	AttributeCOR: "Coordination",
	AttributeSTA: "Stamina",
	AttributePER: "Perception",
	AttributeINT: "Intellect",
	AttributePRS: "Presence",
	AttributeLUC: "Luck",
}

// Name returns the long display name, e.g. "Coordination"
func (a Attribute) Name() string {
	return attributeNames[a]
}

// Valid reports whether a is one of the seven keys
func (a Attribute) Valid() bool {
	_, ok := attributeNames[a]
	return ok
}

// Index returns the canonical position of a, or -1
func (a Attribute) Index() int {
	return slices.Index(Attributes, a)
}

// ParseAttribute accepts a short key in any case
func ParseAttribute(s string) (Attribute, error) {
	a := Attribute(strings.ToUpper(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", dnderr.InvalidArgumentf("unknown attribute %q", s)
	}
	return a, nil
}

// AttributeScores maps every attribute to its score; nil means unassigned
type AttributeScores map[Attribute]*int

// NewAttributeScores returns scores with all seven keys present and unassigned
func NewAttributeScores() AttributeScores {
	scores := make(AttributeScores, NumAttributes)
	for _, a := range Attributes {
		scores[a] = nil
	}
	return scores
}

// AllAssigned reports whether every attribute has a score
func (s AttributeScores) AllAssigned() bool {
	for _, a := range Attributes {
		if s[a] == nil {
			return false
		}
	}
	return true
}

// Assigned counts the filled attributes
func (s AttributeScores) Assigned() int {
	n := 0
	for _, a := range Attributes {
		if s[a] != nil {
			n++
		}
	}
	return n
}

// Values flattens assigned scores into a plain map
func (s AttributeScores) Values() map[string]int {
	out := make(map[string]int, NumAttributes)
	for _, a := range Attributes {
		if v := s[a]; v != nil {
			out[string(a)] = *v
		}
	}
	return out
}

// Clone deep-copies the scores so callers never share pointers
func (s AttributeScores) Clone() AttributeScores {
	out := NewAttributeScores()
	for _, a := range Attributes {
		if v := s[a]; v != nil {
			n := *v
			out[a] = &n
		}
	}
	return out
}

// Highest returns the attributes holding the maximum score and whether
// every attribute is tied at that maximum
func (s AttributeScores) Highest() ([]Attribute, bool) {
	if !s.AllAssigned() {
		return nil, false
	}

	maxScore := *s[Attributes[0]]
	for _, a := range Attributes[1:] {
		maxScore = max(maxScore, *s[a])
	}

	var top []Attribute
	for _, a := range Attributes {
		if *s[a] == maxScore {
			top = append(top, a)
		}
	}
	return top, len(top) == NumAttributes
}
