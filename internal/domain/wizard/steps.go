package wizard

import (
	"slices"

	"github.com/wcg-tools/osf-chargen/internal/domain/character"
)

// StepID identifies one wizard step
type StepID string

const (
	StepSpecies    StepID = "species"
	StepProfession StepID = "profession"
	StepClass      StepID = "class"
	StepSkills     StepID = "skills"
	StepAttributes StepID = "attributes"
	StepFeatures   StepID = "features"
	StepCreate     StepID = "create"
)

var stepTitles = map[StepID]string{
	StepSpecies:    "Species",
	StepProfession: "Profession",
	StepClass:      "Class",
	StepSkills:     "Skills",
	StepAttributes: "Attributes",
	StepFeatures:   "Features",
	StepCreate:     "Create Character",
}

// Title is the display title of the step
func (s StepID) Title() string {
	return stepTitles[s]
}

// Steps returns the ordered steps for a mode and level. Level 1 has no
// feature picks, so its features step is dropped.
func Steps(mode character.Mode, level int) []StepID {
	if mode == character.ModeZero {
		return []StepID{StepSpecies, StepProfession, StepAttributes, StepCreate}
	}

	steps := []StepID{StepSpecies, StepClass, StepSkills, StepAttributes, StepFeatures, StepCreate}
	if level <= 1 {
		steps = slices.DeleteFunc(steps, func(s StepID) bool { return s == StepFeatures })
	}
	return steps
}
