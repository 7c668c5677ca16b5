package rulebook

// Profession is a commoner background rolled on a d100 table
type Profession struct {
	Name       string `json:"name"`
	RangeStart int    `json:"rangeStart"`
	RangeEnd   int    `json:"rangeEnd"`
}

// ProfessionsCatalog is a freshly generated set of professions to choose from
type ProfessionsCatalog struct {
	Professions []Profession `json:"professions"`
}

// Names returns the profession names in order
func (c *ProfessionsCatalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.Professions))
	for _, p := range c.Professions {
		names = append(names, p.Name)
	}
	return names
}

// Contains reports whether name is one of the generated professions
func (c *ProfessionsCatalog) Contains(name string) bool {
	if c == nil {
		return false
	}
	for _, p := range c.Professions {
		if p.Name == name {
			return true
		}
	}
	return false
}
