package move

// PlayResult is the user-facing summary of a move, as written by the shell
// and the command line tool.
type PlayResult struct {
	NoPlay   bool   `json:"no_play" yaml:"no_play"`
	Word     string `json:"word,omitempty" yaml:"word,omitempty"`
	Tiles    string `json:"tiles,omitempty" yaml:"tiles,omitempty"`
	Coords   string `json:"coords,omitempty" yaml:"coords,omitempty"`
	Row      int    `json:"row" yaml:"row"`
	Col      int    `json:"col" yaml:"col"`
	Vertical bool   `json:"vertical" yaml:"vertical"`
	Score    int    `json:"score" yaml:"score"`
	Bingo    bool   `json:"bingo,omitempty" yaml:"bingo,omitempty"`
	Leave    string `json:"leave,omitempty" yaml:"leave,omitempty"`
}

// Result summarizes the move. Row and column are zero-based.
func (m *Move) Result() PlayResult {
	if m.action == MoveTypeNoPlay {
		return PlayResult{NoPlay: true, Leave: m.LeaveString()}
	}
	return PlayResult{
		Word:     m.WordString(),
		Tiles:    m.TilesString(),
		Coords:   m.coords,
		Row:      m.rowStart,
		Col:      m.colStart,
		Vertical: m.vertical,
		Score:    m.score,
		Bingo:    m.bingo,
		Leave:    m.LeaveString(),
	}
}
