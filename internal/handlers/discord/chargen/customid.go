package chargen

import (
	"strings"
)

// CustomIDPrefix marks every component this package owns
const CustomIDPrefix = "chargen"

// Component actions
const (
	ActionPrevious     = "prev"
	ActionNext         = "next"
	ActionRefresh      = "refresh"
	ActionRetry        = "retry"
	ActionSpecies      = "species"
	ActionProfession   = "profession"
	ActionClass        = "class"
	ActionQuickGear    = "quickgear"
	ActionSpeciesSkill = "speciesskill"
	ActionBonusSkills  = "bonusskills"
	ActionArray        = "array"
	ActionPick         = "pick"
	ActionPlace        = "place"
	ActionResetAttrs   = "resetattrs"
	ActionStrength     = "strength"
	ActionWeakness     = "weakness"
	ActionTier1        = "tier1"
	ActionTier2        = "tier2"
	ActionName         = "name"
	ActionNameModal    = "namemodal"
	ActionSheet        = "sheet"
	ActionSubmit       = "submit"
)

// CustomID is the parsed form of "chargen:<action>:<session>[:<arg>]"
type CustomID struct {
	Action    string
	SessionID string
	Arg       string
}

// NewCustomID builds a custom ID for a session action
func NewCustomID(action, sessionID string, arg ...string) CustomID {
	id := CustomID{Action: action, SessionID: sessionID}
	if len(arg) > 0 {
		id.Arg = arg[0]
	}
	return id
}

func (c CustomID) String() string {
	parts := []string{CustomIDPrefix, c.Action, c.SessionID}
	if c.Arg != "" {
		parts = append(parts, c.Arg)
	}
	return strings.Join(parts, ":")
}

// ParseCustomID reports false for IDs that belong to someone else
func ParseCustomID(s string) (CustomID, bool) {
	parts := strings.SplitN(s, ":", 4)
	if len(parts) < 3 || parts[0] != CustomIDPrefix || parts[1] == "" || parts[2] == "" {
		return CustomID{}, false
	}

	id := CustomID{Action: parts[1], SessionID: parts[2]}
	if len(parts) == 4 {
		id.Arg = parts[3]
	}
	return id, true
}
