package domain

// Groups enumerates the 27 constraint groups of a 9x9 board: indexes 0-8 are
// rows, 9-17 are columns, 18-26 are boxes. Every group requires pairwise
// distinct digits.
var Groups = buildGroups()

func buildGroups() [27][9]CellCoord {
	var g [27][9]CellCoord
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			g[i][j] = CellCoord{Row: i, Col: j}
			g[9+i][j] = CellCoord{Row: j, Col: i}
			g[18+i][j] = CellCoord{Row: (i/3)*3 + j/3, Col: (i%3)*3 + j%3}
		}
	}
	return g
}

// BoxOf returns the box index (0..8) of a cell.
func BoxOf(r, c int) int { return (r/3)*3 + c/3 }
