package character

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	dnderr "github.com/wcg-tools/osf-chargen/internal/errors"
)

// Species is the closed set of playable species
type Species string

const (
	SpeciesDwarf    Species = "dwarf"
	SpeciesElf      Species = "elf"
	SpeciesHalfling Species = "halfling"
	SpeciesHuman    Species = "human"
)

// AllSpecies lists species in display order
var AllSpecies = []Species{SpeciesDwarf, SpeciesElf, SpeciesHalfling, SpeciesHuman}

// SpeciesInfo is the static data for one species
type SpeciesInfo struct {
	Key        Species     `yaml:"key"`
	Name       string      `yaml:"name"`
	Plural     string      `yaml:"plural"`
	Strengths  []Attribute `yaml:"strengths"`
	Weaknesses []Attribute `yaml:"weaknesses"`
}

//go:embed species.yaml
var speciesData []byte

var speciesInfo = mustLoadSpecies(speciesData)

func mustLoadSpecies(data []byte) map[Species]SpeciesInfo {
	info, err := loadSpecies(data)
	if err != nil {
		panic(fmt.Sprintf("species data: %v", err))
	}
	return info
}

func loadSpecies(data []byte) (map[Species]SpeciesInfo, error) {
	var doc struct {
		Species []SpeciesInfo `yaml:"species"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	out := make(map[Species]SpeciesInfo, len(doc.Species))
	for _, info := range doc.Species {
		for _, a := range append(append([]Attribute{}, info.Strengths...), info.Weaknesses...) {
			if !a.Valid() {
				return nil, fmt.Errorf("%s: unknown attribute %q", info.Key, a)
			}
		}
		out[info.Key] = info
	}

	for _, s := range AllSpecies {
		if _, ok := out[s]; !ok {
			return nil, fmt.Errorf("missing species %s", s)
		}
	}
	return out, nil
}

// ParseSpecies accepts the internal key in any case
func ParseSpecies(s string) (Species, error) {
	sp := Species(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := speciesInfo[sp]; !ok {
		return "", dnderr.InvalidArgumentf("unknown species %q", s)
	}
	return sp, nil
}

// Info returns the static data for s
func (s Species) Info() SpeciesInfo {
	return speciesInfo[s]
}

// Name returns the singular display name
func (s Species) Name() string {
	return speciesInfo[s].Name
}

// Plural returns the plural display name
func (s Species) Plural() string {
	return speciesInfo[s].Plural
}

// IsHuman reports whether s is human
func (s Species) IsHuman() bool {
	return s == SpeciesHuman
}

// Upper is the wire form used in creation requests
func (s Species) Upper() string {
	return strings.ToUpper(string(s))
}
