package match3

// HasFeasibleMove reports whether any single adjacent swap would produce a match.
func HasFeasibleMove(g *Grid) bool {
	_, _, ok := FindFeasibleMove(g)
	return ok
}

// FindFeasibleMove returns the first swap, in row-major order and
// up/down/left/right per cell, that produces a match. g is not modified.
//
// Each candidate is a full re-scan of the board. That is fine for small
// boards; a local re-scan of the two touched rows and columns would give the
// same answer faster on large ones.
func FindFeasibleMove(g *Grid) (Coord, Direction, bool) {
	scratch := g.Clone()

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			from := Coord{Row: r, Col: c}
			for _, d := range Directions {
				to := from.Step(d)
				if !g.InBounds(to) {
					continue
				}
				scratch.Swap(from, to)
				hit := HasMatch(scratch)
				scratch.Swap(from, to)
				if hit {
					return from, d, true
				}
			}
		}
	}

	return NoCoord, DirUp, false
}
