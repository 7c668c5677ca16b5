package wizard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcg-tools/osf-chargen/internal/domain/character"
	"github.com/wcg-tools/osf-chargen/internal/domain/rulebook"
	"github.com/wcg-tools/osf-chargen/internal/domain/wizard"
)

var ready = wizard.Context{CatalogReady: true}

func newDraft(t *testing.T, level int) *character.Draft {
	t.Helper()
	mode := character.ModeTraditional
	if level == 0 {
		mode = character.ModeZero
	}
	d, err := character.NewDraft(mode, level)
	require.NoError(t, err)
	return d
}

func fillScores(d *character.Draft) {
	for i, a := range character.Attributes {
		v := character.ArrayChallenging.Values()[i]
		d.AttributeScores[a] = &v
	}
}

func TestEligible_Selections(t *testing.T) {
	d := newDraft(t, 0)
	assert.False(t, wizard.Eligible(wizard.StepSpecies, d, ready))
	d.Species = character.SpeciesDwarf
	assert.True(t, wizard.Eligible(wizard.StepSpecies, d, ready))

	assert.False(t, wizard.Eligible(wizard.StepProfession, d, ready))
	d.Profession = "Baker"
	assert.True(t, wizard.Eligible(wizard.StepProfession, d, ready))
	assert.False(t, wizard.Eligible(wizard.StepProfession, d, wizard.Context{}), "catalog not loaded")

	c := newDraft(t, 3)
	assert.False(t, wizard.Eligible(wizard.StepClass, c, ready))
	c.CharClass = character.ClassSkald
	assert.True(t, wizard.Eligible(wizard.StepClass, c, ready))

	assert.False(t, wizard.Eligible(wizard.StepSpecies, nil, ready))
	assert.False(t, wizard.Eligible("bogus", c, ready))
}

func TestEligible_SkillsHuman(t *testing.T) {
	d := newDraft(t, 1)
	d.Species = character.SpeciesHuman

	assert.False(t, wizard.Eligible(wizard.StepSkills, d, ready), "nil selection")
	d.BonusSkills = []string{}
	assert.False(t, wizard.Eligible(wizard.StepSkills, d, ready))
	d.BonusSkills = []string{"Climb"}
	assert.False(t, wizard.Eligible(wizard.StepSkills, d, ready))
	d.BonusSkills = []string{"Climb", "Swim"}
	assert.True(t, wizard.Eligible(wizard.StepSkills, d, ready))
	assert.False(t, wizard.Eligible(wizard.StepSkills, d, wizard.Context{}))
}

func TestEligible_SkillsNonHuman(t *testing.T) {
	d := newDraft(t, 1)
	d.Species = character.SpeciesElf

	d.BonusSkills = []string{"Climb"}
	assert.False(t, wizard.Eligible(wizard.StepSkills, d, ready), "missing species skill")

	d.SpeciesSkill = "Tracking"
	assert.True(t, wizard.Eligible(wizard.StepSkills, d, ready))

	d.BonusSkills = []string{"Climb", "Swim"}
	assert.False(t, wizard.Eligible(wizard.StepSkills, d, ready))
}

func TestEligible_Attributes(t *testing.T) {
	d := newDraft(t, 2)
	d.Species = character.SpeciesHalfling
	assert.False(t, wizard.Eligible(wizard.StepAttributes, d, ready))

	fillScores(d)
	assert.False(t, wizard.Eligible(wizard.StepAttributes, d, ready))
	d.SpeciesStrength = character.AttributeLUC
	assert.False(t, wizard.Eligible(wizard.StepAttributes, d, ready), "halflings need a weakness")
	d.SpeciesWeakness = character.AttributePER
	assert.True(t, wizard.Eligible(wizard.StepAttributes, d, ready))

	d.Species = character.SpeciesHuman
	d.SpeciesWeakness = ""
	assert.True(t, wizard.Eligible(wizard.StepAttributes, d, ready))
}

func TestEligible_Features(t *testing.T) {
	d := newDraft(t, 4)
	assert.False(t, wizard.Eligible(wizard.StepFeatures, d, ready))

	d.Tier1Features = []string{"A", "B", "C"}
	assert.False(t, wizard.Eligible(wizard.StepFeatures, d, ready))
	d.Tier2Features = []string{"X"}
	assert.True(t, wizard.Eligible(wizard.StepFeatures, d, ready))

	catalogCtx := wizard.Context{CatalogReady: true, Features: &rulebook.FeaturesCatalog{
		NumAllowedTier1Features: 4,
		NumAllowedTier2Features: 1,
	}}
	assert.False(t, wizard.Eligible(wizard.StepFeatures, d, catalogCtx), "catalog allowance wins")

	low := newDraft(t, 3)
	low.Tier1Features = []string{"A", "B", "C"}
	assert.True(t, wizard.Eligible(wizard.StepFeatures, low, ready), "no tier II below level 4")
}

func TestEligible_CreateAndSubmit(t *testing.T) {
	d := newDraft(t, 0)
	assert.False(t, wizard.Eligible(wizard.StepCreate, d, ready))
	assert.False(t, wizard.CanSubmit(d))

	d.CharName = "Brom"
	assert.True(t, wizard.Eligible(wizard.StepCreate, d, ready))
	assert.False(t, wizard.CanSubmit(d))

	d.SheetType = character.SheetPDF
	assert.True(t, wizard.CanSubmit(d))
}
