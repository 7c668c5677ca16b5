package character

import (
	"slices"
	"strings"
	"time"

	"github.com/wcg-tools/osf-chargen/internal/domain/features"
	dnderr "github.com/wcg-tools/osf-chargen/internal/errors"
)

// Draft is everything the user has entered so far for one character
type Draft struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`

	Mode  Mode `json:"mode"`
	Level int  `json:"level"`

	Species    Species   `json:"species,omitempty"`
	Profession string    `json:"profession,omitempty"`
	CharClass  CharClass `json:"char_class,omitempty"`

	SpeciesSkill  string   `json:"species_skill,omitempty"`
	BonusSkills   []string `json:"bonus_skills,omitempty"`
	Tier1Features []string `json:"tier1_features,omitempty"`
	Tier2Features []string `json:"tier2_features,omitempty"`
	UseQuickGear  *bool    `json:"use_quick_gear,omitempty"`

	// AttributeBase is the pool as generated; AttributeValues is what is left of it
	ArrayType       ArrayType       `json:"array_type,omitempty"`
	AttributeBase   []int           `json:"attribute_base,omitempty"`
	AttributeValues []*int          `json:"attribute_values,omitempty"`
	AttributeScores AttributeScores `json:"attribute_scores"`
	SpeciesStrength Attribute       `json:"species_strength,omitempty"`
	SpeciesWeakness Attribute       `json:"species_weakness,omitempty"`

	CharName  string    `json:"char_name,omitempty"`
	SheetType SheetType `json:"sheet_type,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewDraft creates an empty draft for a mode and level
func NewDraft(mode Mode, level int) (*Draft, error) {
	if err := ValidateLevel(mode, level); err != nil {
		return nil, err
	}

	return &Draft{
		Mode:            mode,
		Level:           level,
		AttributeScores: NewAttributeScores(),
	}, nil
}

// IsCommoner reports whether this is a level 0 character
func (d *Draft) IsCommoner() bool {
	return d.Level == 0
}

// FeatureAllowance is the cumulative feature allowance for the draft's level
func (d *Draft) FeatureAllowance() features.Allowance {
	return features.AllowanceForLevel(d.Level)
}

// SelectSpecies sets the species. Changing it drops every choice that depended on it.
func (d *Draft) SelectSpecies(species Species) error {
	s, err := ParseSpecies(string(species))
	if err != nil {
		return err
	}
	if d.Species == s {
		return nil
	}

	d.Species = s
	d.SpeciesSkill = ""
	d.BonusSkills = nil
	d.ClearSpeciesModifiers()
	return nil
}

// SelectProfession sets the commoner profession
func (d *Draft) SelectProfession(profession string) error {
	if !d.IsCommoner() {
		return dnderr.FailedPreconditionf("only level 0 characters have a profession")
	}
	profession = strings.TrimSpace(profession)
	if profession == "" {
		return dnderr.InvalidArgument("profession is required")
	}

	d.Profession = profession
	return nil
}

// SelectClass sets the class. Changing it drops skills and features.
// Quick gear starts off.
func (d *Draft) SelectClass(class CharClass) error {
	if d.IsCommoner() {
		return dnderr.FailedPreconditionf("level 0 characters cannot have a class")
	}
	c, err := ParseCharClass(string(class))
	if err != nil {
		return err
	}
	if d.CharClass == c {
		return nil
	}

	d.CharClass = c
	if d.UseQuickGear == nil {
		off := false
		d.UseQuickGear = &off
	}
	d.SpeciesSkill = ""
	d.BonusSkills = nil
	d.Tier1Features = nil
	d.Tier2Features = nil
	return nil
}

// MaxBonusSkills is how many bonus skills the species gets
func (d *Draft) MaxBonusSkills() int {
	if d.Species.IsHuman() {
		return 2
	}
	return 1
}

// SelectSpeciesSkill sets the free species skill for non-humans and removes
// it from the bonus skills
func (d *Draft) SelectSpeciesSkill(skill string) error {
	if d.IsCommoner() {
		return dnderr.FailedPreconditionf("level 0 characters do not pick skills")
	}
	if d.Species == "" {
		return dnderr.FailedPreconditionf("select a species first")
	}
	if d.Species.IsHuman() {
		return dnderr.FailedPreconditionf("humans pick both skills from the bonus list")
	}
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return dnderr.InvalidArgument("species skill is required")
	}

	d.SpeciesSkill = skill
	d.BonusSkills = slices.DeleteFunc(d.BonusSkills, func(s string) bool { return s == skill })
	return nil
}

// ClearSpeciesSkill deselects the species skill, returning it to the bonus candidates
func (d *Draft) ClearSpeciesSkill() {
	d.SpeciesSkill = ""
}

// BonusSkillCandidates filters pool down to the skills still pickable as bonus skills
func (d *Draft) BonusSkillCandidates(pool []string) []string {
	out := make([]string, 0, len(pool))
	for _, s := range pool {
		if d.SpeciesSkill != "" && s == d.SpeciesSkill {
			continue
		}
		out = append(out, s)
	}
	return out
}

// SetBonusSkills replaces the bonus skills. A nil or empty list deselects all.
func (d *Draft) SetBonusSkills(skills []string) error {
	if d.IsCommoner() {
		return dnderr.FailedPreconditionf("level 0 characters do not pick skills")
	}
	if d.Species == "" {
		return dnderr.FailedPreconditionf("select a species first")
	}

	normalized := NormalizeKeys(skills)
	if len(normalized) > d.MaxBonusSkills() {
		return dnderr.InvalidArgumentf("%s may pick %d bonus skills, got %d",
			d.Species.Plural(), d.MaxBonusSkills(), len(normalized))
	}
	if d.SpeciesSkill != "" && slices.Contains(normalized, d.SpeciesSkill) {
		return dnderr.InvalidArgumentf("%s is already the species skill", d.SpeciesSkill)
	}

	d.BonusSkills = normalized
	return nil
}

// SetFeatures replaces the selected features for tier 1 or 2
func (d *Draft) SetFeatures(tier int, keys []string) error {
	allowance := d.FeatureAllowance()
	if allowance.Empty() {
		return dnderr.FailedPreconditionf("level %d characters do not pick features", d.Level)
	}
	if tier != 1 && tier != 2 {
		return dnderr.InvalidArgumentf("unknown feature tier %d", tier)
	}
	if tier == 2 && d.Level < features.MinTier2Level {
		return dnderr.FailedPreconditionf("tier II features start at level %d", features.MinTier2Level)
	}

	normalized := NormalizeKeys(keys)
	if len(normalized) > allowance.Tier(tier) {
		return dnderr.InvalidArgumentf("level %d allows %d tier %d features, got %d",
			d.Level, allowance.Tier(tier), tier, len(normalized))
	}

	if tier == 1 {
		d.Tier1Features = normalized
	} else {
		d.Tier2Features = normalized
	}
	return nil
}

// SetUseQuickGear sets the quick gear flag for class characters
func (d *Draft) SetUseQuickGear(use bool) error {
	if d.IsCommoner() {
		return dnderr.FailedPreconditionf("quick gear only applies to class characters")
	}
	d.UseQuickGear = &use
	return nil
}

// StrengthCandidates lists the attributes the species strength may be put on.
// Empty until every score is assigned.
func (d *Draft) StrengthCandidates() []Attribute {
	if d.Species == "" || !d.AttributeScores.AllAssigned() {
		return nil
	}
	if !d.Species.IsHuman() {
		return slices.Clone(d.Species.Info().Strengths)
	}

	top, allTied := d.AttributeScores.Highest()
	if allTied {
		return slices.Clone(Attributes)
	}
	out := make([]Attribute, 0, NumAttributes)
	for _, a := range Attributes {
		if !slices.Contains(top, a) {
			out = append(out, a)
		}
	}
	return out
}

// WeaknessCandidates lists the attributes the species weakness may be put on.
// Always empty for humans.
func (d *Draft) WeaknessCandidates() []Attribute {
	if d.Species == "" || d.Species.IsHuman() || !d.AttributeScores.AllAssigned() {
		return nil
	}
	return slices.Clone(d.Species.Info().Weaknesses)
}

// SetSpeciesStrength picks the +1 attribute
func (d *Draft) SetSpeciesStrength(a Attribute) error {
	if !d.AttributeScores.AllAssigned() {
		return dnderr.FailedPreconditionf("assign every attribute score first")
	}
	if !slices.Contains(d.StrengthCandidates(), a) {
		return dnderr.InvalidArgumentf("%s is not a valid strength for %s", a, d.Species.Plural())
	}
	d.SpeciesStrength = a
	return nil
}

// SetSpeciesWeakness picks the -1 attribute for non-humans
func (d *Draft) SetSpeciesWeakness(a Attribute) error {
	if d.Species.IsHuman() {
		return dnderr.FailedPreconditionf("humans have no species weakness")
	}
	if !d.AttributeScores.AllAssigned() {
		return dnderr.FailedPreconditionf("assign every attribute score first")
	}
	if !slices.Contains(d.WeaknessCandidates(), a) {
		return dnderr.InvalidArgumentf("%s is not a valid weakness for %s", a, d.Species.Plural())
	}
	d.SpeciesWeakness = a
	return nil
}

// ClearSpeciesModifiers drops strength and weakness, which are meaningless once scores change
func (d *Draft) ClearSpeciesModifiers() {
	d.SpeciesStrength = ""
	d.SpeciesWeakness = ""
}

// SetName sets the character name
func (d *Draft) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return dnderr.InvalidArgument("character name is required")
	}
	d.CharName = name
	return nil
}

// SetSheetType picks the delivery format; it requires a name
func (d *Draft) SetSheetType(t SheetType) error {
	if strings.TrimSpace(d.CharName) == "" {
		return dnderr.FailedPreconditionf("name the character before choosing a sheet")
	}
	if !t.Valid() {
		return dnderr.InvalidArgumentf("unknown sheet type %q", t)
	}
	d.SheetType = t
	return nil
}

// Reset empties every choice, keeping identity, mode and level
func (d *Draft) Reset() {
	*d = Draft{
		ID:              d.ID,
		OwnerID:         d.OwnerID,
		Mode:            d.Mode,
		Level:           d.Level,
		AttributeScores: NewAttributeScores(),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// NormalizeKeys trims, drops blanks and duplicates, and returns nil for no selections
func NormalizeKeys(keys []string) []string {
	var out []string
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" || slices.Contains(out, k) {
			continue
		}
		out = append(out, k)
	}
	return out
}
