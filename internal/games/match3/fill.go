package match3

import "math/rand"

// RefillPolicy decides which refilled boards are accepted.
type RefillPolicy int

const (
	// RefillChain accepts any refill that leaves a feasible move. Matches made
	// by the new symbols are resolved by the cascade as a chain reaction.
	RefillChain RefillPolicy = iota
	// RefillStrict accepts only refills with no match and a feasible move.
	RefillStrict
)

// String returns the config name of the policy.
func (p RefillPolicy) String() string {
	if p == RefillStrict {
		return "strict"
	}
	return "chain"
}

// Filler draws random symbols into a grid by rejection sampling.
type Filler struct {
	Alphabet Alphabet
	Rand     *rand.Rand
	Policy   RefillPolicy
}

// FillRandom assigns uniformly random symbols to the target cells: every cell
// when emptyOnly is false, only the empty ones otherwise. It redraws all
// target cells until the board is acceptable and returns the number of draws.
//
// A full fill must end with no match and at least one feasible move. A refill
// restores the pre-refill board before each redraw, so settled symbols are
// kept, and is accepted according to the policy. There is no retry cap.
func (f *Filler) FillRandom(g *Grid, emptyOnly bool) int {
	var base *Grid
	if emptyOnly {
		base = g.Clone()
	}

	attempts := 0
	for {
		attempts++
		if emptyOnly {
			g.CopyFrom(base)
		}
		f.draw(g, emptyOnly)

		if f.accept(g, emptyOnly) {
			return attempts
		}
	}
}

func (f *Filler) draw(g *Grid, emptyOnly bool) {
	for r := range g.cells {
		for c := range g.cells[r] {
			if emptyOnly && g.cells[r][c] != Empty {
				continue
			}
			g.cells[r][c] = f.Alphabet[f.Rand.Intn(len(f.Alphabet))]
		}
	}
}

func (f *Filler) accept(g *Grid, emptyOnly bool) bool {
	if (!emptyOnly || f.Policy == RefillStrict) && HasMatch(g) {
		return false
	}
	return HasFeasibleMove(g)
}
