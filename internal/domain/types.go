package domain

// Board holds current values and which cells are fixed givens.
// Values are 0 for blank cells and 1..9 otherwise.
type Board struct {
	Values [9][9]uint8 `json:"board"`
	Fixed  [9][9]bool  `json:"fixed,omitempty"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SolveRecord is one completed solve run, as kept by the history store.
type SolveRecord struct {
	ID        string `json:"id"`
	Puzzle    string `json:"puzzle"` // 81 row-major digits, 0 for blanks
	Solver    string `json:"solver"`
	Solutions int    `json:"solutions"`
	Nodes     int    `json:"nodes"`
	DurMillis int64  `json:"durMillis"`
	CreatedAt int64  `json:"createdAt"`
}
