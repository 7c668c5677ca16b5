package features

// Allowance is the cumulative number of Tier I and Tier II picks for a level
type Allowance struct {
	Tier1 int
	Tier2 int
}

// MinTier2Level is the first level that grants a Tier II pick
const MinTier2Level = 4

// Cumulative picks indexed by level-1. Level 0 shares the level 1 baseline.
var (
	cumulativeTier1 = [...]int{0, 1, 3, 3, 3, 4, 5}
	cumulativeTier2 = [...]int{0, 0, 0, 1, 2, 3, 4}
)

// AllowanceForLevel returns the cumulative picks for level; out of range is zero
func AllowanceForLevel(level int) Allowance {
	if level < 1 || level > len(cumulativeTier1) {
		return Allowance{}
	}
	return Allowance{
		Tier1: cumulativeTier1[level-1],
		Tier2: cumulativeTier2[level-1],
	}
}

// Tier returns the allowance for tier 1 or 2
func (a Allowance) Tier(tier int) int {
	switch tier {
	case 1:
		return a.Tier1
	case 2:
		return a.Tier2
	}
	return 0
}

// Empty reports whether no picks are allowed
func (a Allowance) Empty() bool {
	return a.Tier1 == 0 && a.Tier2 == 0
}
