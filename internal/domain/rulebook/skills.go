package rulebook

// Skill is a trainable skill and the attributes it keys off
type Skill struct {
	Name       string   `json:"name"`
	Attributes []string `json:"attributes"`
}

// SkillsCatalog is the server's answer to a skills lookup for a class and species
type SkillsCatalog struct {
	ClassSkills   []Skill `json:"classSkills"`
	SpeciesSkills []Skill `json:"speciesSkills"`
	BonusSkills   []Skill `json:"bonusSkills"`
}

// SkillNames returns the names of the given skills in order
func SkillNames(skills []Skill) []string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return names
}

// CombinedBonusPool returns species and bonus skills as one de-duplicated list.
// Humans choose their two skills from this pool.
func (c *SkillsCatalog) CombinedBonusPool() []Skill {
	if c == nil {
		return nil
	}

	seen := make(map[string]bool, len(c.SpeciesSkills)+len(c.BonusSkills))
	out := make([]Skill, 0, len(c.SpeciesSkills)+len(c.BonusSkills))
	for _, list := range [][]Skill{c.SpeciesSkills, c.BonusSkills} {
		for _, s := range list {
			if seen[s.Name] {
				continue
			}
			seen[s.Name] = true
			out = append(out, s)
		}
	}
	return out
}
