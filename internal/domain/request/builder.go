package request

import (
	"slices"
	"strings"

	"github.com/wcg-tools/osf-chargen/internal/domain/character"
	"github.com/wcg-tools/osf-chargen/internal/domain/features"
	dnderr "github.com/wcg-tools/osf-chargen/internal/errors"
)

const (
	minCommonerAttribute = -3
	maxCommonerAttribute = 3
)

// Builder accumulates a creation request; Build validates and emits it
type Builder struct {
	name         string
	species      character.Species
	level        int
	class        character.CharClass
	profession   string
	attributes   map[string]int
	strength     character.Attribute
	weakness     character.Attribute
	speciesSkill string
	bonusSkills  []string
	useQuickGear *bool
	tier1        []string
	tier2        []string
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) WithCharacterName(name string) *Builder {
	b.name = strings.TrimSpace(name)
	return b
}

func (b *Builder) WithSpecies(s character.Species) *Builder {
	b.species = s
	return b
}

func (b *Builder) WithLevel(level int) *Builder {
	b.level = level
	return b
}

func (b *Builder) WithCharacterClass(c character.CharClass) *Builder {
	b.class = c
	return b
}

func (b *Builder) WithProfession(profession string) *Builder {
	b.profession = strings.TrimSpace(profession)
	return b
}

func (b *Builder) WithAttributes(scores character.AttributeScores) *Builder {
	b.attributes = scores.Values()
	return b
}

func (b *Builder) WithSpeciesStrength(a character.Attribute) *Builder {
	b.strength = a
	return b
}

func (b *Builder) WithSpeciesWeakness(a character.Attribute) *Builder {
	b.weakness = a
	return b
}

func (b *Builder) WithSpeciesSkill(skill string) *Builder {
	b.speciesSkill = strings.TrimSpace(skill)
	return b
}

// WithBonusSkills always stores a list, even for a single skill
func (b *Builder) WithBonusSkills(skills ...string) *Builder {
	b.bonusSkills = slices.Clone(skills)
	return b
}

func (b *Builder) WithUseQuickGear(use bool) *Builder {
	b.useQuickGear = &use
	return b
}

func (b *Builder) WithFeatures(tier1, tier2 []string) *Builder {
	b.tier1 = slices.Clone(tier1)
	b.tier2 = slices.Clone(tier2)
	return b
}

// FromDraft loads every field of a draft into a new builder
func FromDraft(d *character.Draft) *Builder {
	b := NewBuilder().
		WithCharacterName(d.CharName).
		WithSpecies(d.Species).
		WithLevel(d.Level).
		WithCharacterClass(d.CharClass).
		WithProfession(d.Profession).
		WithAttributes(d.AttributeScores).
		WithSpeciesStrength(d.SpeciesStrength).
		WithSpeciesWeakness(d.SpeciesWeakness).
		WithSpeciesSkill(d.SpeciesSkill).
		WithBonusSkills(d.BonusSkills...).
		WithFeatures(d.Tier1Features, d.Tier2Features)
	if d.UseQuickGear != nil {
		b.WithUseQuickGear(*d.UseQuickGear)
	}
	return b
}

// Build validates the accumulated fields and emits the request. Fields that
// do not apply to the level or species are left out.
func (b *Builder) Build() (*CreateCharacterRequest, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	req := &CreateCharacterRequest{
		CharacterName:   b.name,
		Species:         b.species.Upper(),
		Level:           b.level,
		Attributes:      b.attributes,
		SpeciesStrength: string(b.strength),
	}

	if !b.species.IsHuman() {
		req.SpeciesWeakness = string(b.weakness)
	}

	if b.level == 0 {
		req.Profession = b.profession
		return req, nil
	}

	req.CharacterClass = b.class.Upper()
	req.BonusSkills = nonNil(b.bonusSkills)
	req.UseQuickGear = b.useQuickGear
	if !b.species.IsHuman() {
		req.SpeciesSkill = b.speciesSkill
	}

	if b.level > 1 {
		req.Features = &Features{
			Tier1: nonNil(b.tier1),
			Tier2: nonNil(b.tier2),
		}
	}

	return req, nil
}

func (b *Builder) validate() error {
	if b.name == "" {
		return dnderr.Validation("missing character name")
	}
	if _, err := character.ParseSpecies(string(b.species)); err != nil {
		return dnderr.Validationf("invalid species %q", b.species)
	}
	if b.level < 0 || b.level > character.MaxLevel {
		return dnderr.Validationf("level must be between 0 and %d", character.MaxLevel)
	}

	commoner := b.level == 0
	if commoner {
		if b.class != "" {
			return dnderr.Validation("level 0 characters cannot have a character class")
		}
		if b.profession == "" {
			return dnderr.Validation("level 0 characters must have a profession")
		}
	} else {
		if b.profession != "" {
			return dnderr.Validation("class characters cannot have a profession")
		}
		if _, err := character.ParseCharClass(string(b.class)); err != nil {
			return dnderr.Validation("missing character class")
		}
	}

	if err := b.validateAttributes(commoner); err != nil {
		return err
	}
	if err := b.validateSpeciesModifiers(); err != nil {
		return err
	}

	if !commoner {
		if !b.species.IsHuman() && b.speciesSkill == "" {
			return dnderr.Validationf("%s must pick a species skill", b.species.Plural())
		}
		expected := 1
		if b.species.IsHuman() {
			expected = 2
		}
		if len(b.bonusSkills) != expected {
			return dnderr.Validationf("expected %d bonus skills for %s, got %d",
				expected, b.species.Plural(), len(b.bonusSkills))
		}
		if b.useQuickGear == nil {
			return dnderr.Validation("use quick gear must be specified for class characters")
		}
	}

	allowance := features.AllowanceForLevel(b.level)
	if b.level > 1 {
		if len(b.tier1) != allowance.Tier1 {
			return dnderr.Validationf("expected %d tier I features for level %d, got %d",
				allowance.Tier1, b.level, len(b.tier1))
		}
		if len(b.tier2) != allowance.Tier2 {
			return dnderr.Validationf("expected %d tier II features for level %d, got %d",
				allowance.Tier2, b.level, len(b.tier2))
		}
	} else if len(b.tier1) > 0 || len(b.tier2) > 0 {
		return dnderr.Validation("features cannot be specified for commoner or level 1 characters")
	}

	return nil
}

func (b *Builder) validateAttributes(commoner bool) error {
	values := make([]int, 0, character.NumAttributes)
	for _, a := range character.Attributes {
		v, ok := b.attributes[string(a)]
		if !ok {
			return dnderr.Validationf("attributes are missing %s", a)
		}
		values = append(values, v)
	}

	if commoner {
		for i, v := range values {
			if v < minCommonerAttribute || v > maxCommonerAttribute {
				return dnderr.Validationf("attribute %s has value %d outside %d..%d",
					character.Attributes[i], v, minCommonerAttribute, maxCommonerAttribute)
			}
		}
		return nil
	}

	slices.Sort(values)
	for _, t := range []character.ArrayType{character.ArrayChallenging, character.ArrayHeroic} {
		want := t.Values()
		slices.Sort(want)
		if slices.Equal(want, values) {
			return nil
		}
	}
	return dnderr.Validation("attribute values do not match the challenging or heroic array")
}

func (b *Builder) validateSpeciesModifiers() error {
	if !b.strength.Valid() {
		return dnderr.Validationf("species strength %q is not an attribute", b.strength)
	}
	if b.species.IsHuman() {
		return nil
	}

	info := b.species.Info()
	if !slices.Contains(info.Strengths, b.strength) {
		return dnderr.Validationf("species strength %s is not valid for %s", b.strength, b.species.Plural())
	}
	if b.weakness == "" {
		return dnderr.Validation("non-human characters must specify a species weakness")
	}
	if !slices.Contains(info.Weaknesses, b.weakness) {
		return dnderr.Validationf("species weakness %s is not valid for %s", b.weakness, b.species.Plural())
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
