package wizard

import (
	"strings"

	"github.com/wcg-tools/osf-chargen/internal/domain/character"
	"github.com/wcg-tools/osf-chargen/internal/domain/features"
	"github.com/wcg-tools/osf-chargen/internal/domain/rulebook"
)

// Context is what the rules need beyond the draft itself
type Context struct {
	// CatalogReady is false while the step's catalog is loading or failed
	CatalogReady bool
	// Features is the fetched features catalog, if any
	Features *rulebook.FeaturesCatalog
}

// UsesCatalog reports whether a step depends on a server catalog
func UsesCatalog(step StepID) bool {
	switch step {
	case StepProfession, StepSkills, StepFeatures:
		return true
	}
	return false
}

// Eligible reports whether the user may advance past step
func Eligible(step StepID, d *character.Draft, ctx Context) bool {
	if d == nil {
		return false
	}
	if UsesCatalog(step) && !ctx.CatalogReady {
		return false
	}

	switch step {
	case StepSpecies:
		return d.Species != ""
	case StepProfession:
		return d.Profession != ""
	case StepClass:
		return d.CharClass != ""
	case StepSkills:
		return SkillsEligible(d)
	case StepAttributes:
		return AttributesEligible(d)
	case StepFeatures:
		return FeaturesEligible(d, FeatureAllowance(d, ctx.Features))
	case StepCreate:
		return strings.TrimSpace(d.CharName) != ""
	}
	return false
}

// SkillsEligible: humans need exactly two skills, everyone else a species
// skill plus exactly one bonus skill. No selection is never valid.
func SkillsEligible(d *character.Draft) bool {
	if d.BonusSkills == nil {
		return false
	}
	if d.Species.IsHuman() {
		return len(d.BonusSkills) == 2
	}
	return d.SpeciesSkill != "" && len(d.BonusSkills) == 1
}

// AttributesEligible needs every score plus strength, and weakness for non-humans
func AttributesEligible(d *character.Draft) bool {
	if d.AttributeScores == nil || !d.AttributeScores.AllAssigned() {
		return false
	}
	if d.SpeciesStrength == "" {
		return false
	}
	return d.Species.IsHuman() || d.SpeciesWeakness != ""
}

// FeatureAllowance prefers the fetched catalog and falls back to the level table
func FeatureAllowance(d *character.Draft, catalog *rulebook.FeaturesCatalog) features.Allowance {
	if catalog != nil {
		return features.Allowance{
			Tier1: catalog.NumAllowedTier1Features,
			Tier2: catalog.NumAllowedTier2Features,
		}
	}
	return d.FeatureAllowance()
}

// FeaturesEligible compares cumulative picks to the allowance
func FeaturesEligible(d *character.Draft, allowance features.Allowance) bool {
	return len(d.Tier1Features) >= allowance.Tier1 && len(d.Tier2Features) >= allowance.Tier2
}

// CanSubmit gates the final submit action: a name and a sheet type
func CanSubmit(d *character.Draft) bool {
	return d != nil && strings.TrimSpace(d.CharName) != "" && d.SheetType.Valid()
}
