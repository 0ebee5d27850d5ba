package match3

// MinRun is the shortest run that counts as a match.
const MinRun = 3

// MatchInfo holds the extremes of one vertical and one horizontal run found
// by a single scan. An axis with no run holds NoCoord in both fields.
type MatchInfo struct {
	High  Coord // topmost cell of the vertical run
	Low   Coord // bottommost cell of the vertical run
	Left  Coord // leftmost cell of the horizontal run
	Right Coord // rightmost cell of the horizontal run
}

// NoMatch returns a MatchInfo with both axes absent.
func NoMatch() MatchInfo {
	return MatchInfo{High: NoCoord, Low: NoCoord, Left: NoCoord, Right: NoCoord}
}

// HasVertical reports whether a vertical run was recorded.
func (m MatchInfo) HasVertical() bool {
	return m.High != NoCoord
}

// HasHorizontal reports whether a horizontal run was recorded.
func (m MatchInfo) HasHorizontal() bool {
	return m.Left != NoCoord
}

// Detect scans g for runs of MinRun or more identical symbols.
//
// Every non-empty cell is extended in both directions along its column and
// its row. Qualifying runs overwrite info in row-major scan order, so only the
// last vertical and the last horizontal run are reported; callers clear and
// detect again until nothing is found.
func Detect(g *Grid) (bool, MatchInfo) {
	found := false
	info := NoMatch()

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cur := g.cells[r][c]
			if cur == Empty {
				continue
			}

			top, bottom := r, r
			for top-1 >= 0 && g.cells[top-1][c] == cur {
				top--
			}
			for bottom+1 < g.rows && g.cells[bottom+1][c] == cur {
				bottom++
			}
			if bottom-top+1 >= MinRun {
				found = true
				info.High = Coord{Row: top, Col: c}
				info.Low = Coord{Row: bottom, Col: c}
			}

			left, right := c, c
			for left-1 >= 0 && g.cells[r][left-1] == cur {
				left--
			}
			for right+1 < g.cols && g.cells[r][right+1] == cur {
				right++
			}
			if right-left+1 >= MinRun {
				found = true
				info.Left = Coord{Row: r, Col: left}
				info.Right = Coord{Row: r, Col: right}
			}
		}
	}

	return found, info
}

// HasMatch reports only whether any match is present.
func HasMatch(g *Grid) bool {
	found, _ := Detect(g)
	return found
}
