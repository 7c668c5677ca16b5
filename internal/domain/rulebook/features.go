package rulebook

// FeatureAttributeType is the kind of effect a feature has on the sheet
type FeatureAttributeType string

const (
	FeatureAttrPlus1 FeatureAttributeType = "ATTR_PLUS_1"
	FeatureSkill     FeatureAttributeType = "SKILL"
	FeatureDADV      FeatureAttributeType = "DADV"
	FeatureAttrMod   FeatureAttributeType = "ATTR_MOD"
	FeatureHP        FeatureAttributeType = "HP"
	FeatureInit      FeatureAttributeType = "INIT"
)

// ModifierAny marks a modifier the player has to choose themselves
const ModifierAny = "Any"

// FeatureAttribute is one mechanical effect of a feature
type FeatureAttribute struct {
	Type     FeatureAttributeType `json:"type"`
	Modifier string               `json:"modifier"`
}

// Feature is a Tier I or Tier II class feature. Description doubles as its key.
type Feature struct {
	Description string             `json:"description"`
	Attributes  []FeatureAttribute `json:"attributes"`
}

// FeatureTiers groups features by tier
type FeatureTiers struct {
	Tier1 []Feature `json:"tier1"`
	Tier2 []Feature `json:"tier2"`
}

// FeaturesCatalog is the server's answer to a features lookup for a class and level
type FeaturesCatalog struct {
	NumAllowedTier1Features int          `json:"numAllowedTier1Features"`
	NumAllowedTier2Features int          `json:"numAllowedTier2Features"`
	Features                FeatureTiers `json:"features"`
}

// Find looks a feature up by description in the given tier list
func Find(features []Feature, description string) (Feature, bool) {
	for _, f := range features {
		if f.Description == description {
			return f, true
		}
	}
	return Feature{}, false
}
