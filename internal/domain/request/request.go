package request

// Features is the cumulative feature picks sent for level 2+ characters
type Features struct {
	Tier1 []string `json:"tier1"`
	Tier2 []string `json:"tier2"`
}

// CreateCharacterRequest is the body of both character creation endpoints
type CreateCharacterRequest struct {
	CharacterName   string         `json:"characterName"`
	CharacterClass  string         `json:"characterClass,omitempty"`
	Species         string         `json:"species"`
	Profession      string         `json:"profession,omitempty"`
	Level           int            `json:"level"`
	Attributes      map[string]int `json:"attributes"`
	SpeciesStrength string         `json:"speciesStrength"`
	SpeciesWeakness string         `json:"speciesWeakness,omitempty"`
	SpeciesSkill    string         `json:"speciesSkill,omitempty"`
	BonusSkills     []string       `json:"bonusSkills,omitempty"`
	UseQuickGear    *bool          `json:"useQuickGear,omitempty"`
	Features        *Features      `json:"features,omitempty"`
}

// IsCommoner reports whether the request is for a level 0 character
func (r *CreateCharacterRequest) IsCommoner() bool {
	return r.Level == 0
}

// AttributeWithModifiers is the score the sheet shows once strength and weakness apply
func (r *CreateCharacterRequest) AttributeWithModifiers(attr string) int {
	value := r.Attributes[attr]
	if r.SpeciesStrength == attr {
		value++
	}
	if r.SpeciesWeakness == attr {
		value--
	}
	return value
}
