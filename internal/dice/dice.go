package dice

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// RollResult holds the individual dice and the total of a roll
type RollResult struct {
	Count int
	Sides int
	Bonus int
	Rolls []int
	Total int
}

// Roll rolls count dice of the given size and adds bonus
func Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}

	if sides < 1 {
		return nil, errors.New("invalid dice size")
	}

	total := 0
	out := make([]int, count)
	for i := 0; i < count; i++ {
		roll := rand.Intn(sides) + 1
		total += roll
		out[i] = roll
	}

	return &RollResult{
		Count: count,
		Sides: sides,
		Bonus: bonus,
		Rolls: out,
		Total: total + bonus,
	}, nil
}

func (r *RollResult) String() string {
	compact := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", "")
	return fmt.Sprintf("%dd%d%+d = %d %s", r.Count, r.Sides, r.Bonus, r.Total, compact)
}
