package move

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/samber/lo"

	"github.com/twiby/rsScrabble/tilemapping"
)

// MoveType is a type of move; a play, or the absence of one.
type MoveType uint8

const (
	MoveTypePlay MoveType = iota
	// MoveTypeNoPlay is returned when no legal placement exists. It is a
	// normal result, not an error.
	MoveTypeNoPlay
)

// Move is a move. A play has a score, a position and the tiles it places.
type Move struct {
	action MoveType
	score  int
	coords string
	// tiles has one entry per square covered by the main word, with 0 for
	// squares that were already occupied.
	tiles tilemapping.MachineWord
	// word is the full main word, played-through letters included.
	word        tilemapping.MachineWord
	leave       tilemapping.MachineWord
	rowStart    int
	colStart    int
	vertical    bool
	bingo       bool
	tilesPlayed int
	alph        *tilemapping.TileMapping
}

// A Placement is one tile newly put on the board by a play.
type Placement struct {
	Row    int
	Col    int
	Letter tilemapping.MachineLetter
}

var reVertical, reHorizontal *regexp.Regexp

func init() {
	reVertical = regexp.MustCompile(`^(?P<col>[A-Z])(?P<row>[0-9]+)$`)
	reHorizontal = regexp.MustCompile(`^(?P<row>[0-9]+)(?P<col>[A-Z])$`)
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	switch m.action {
	case MoveTypePlay:
		return fmt.Sprintf(
			"<%p action: play word: %v %v score: %v tp: %v leave: %v>",
			m, m.coords, m.TilesString(), m.score, m.tilesPlayed, m.LeaveString())
	case MoveTypeNoPlay:
		return fmt.Sprintf("<%p action: no-play leave: %v>", m, m.LeaveString())
	}
	return "<Unhandled move>"
}

// TilesString shows the placed tiles, with a dot for every played-through
// square.
func (m *Move) TilesString() string {
	if m.alph == nil {
		return ""
	}
	return m.tiles.UserVisiblePlayedTiles(m.alph)
}

// WordString is the full main word. Blanks are shown in uppercase.
func (m *Move) WordString() string {
	if m.alph == nil {
		return ""
	}
	return m.word.UserVisible(m.alph)
}

func (m *Move) LeaveString() string {
	if m.alph == nil {
		return ""
	}
	return m.leave.UserVisible(m.alph)
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (m *Move) ShortDescription() string {
	switch m.action {
	case MoveTypePlay:
		return fmt.Sprintf("%v %v", m.coords, m.WordString())
	case MoveTypeNoPlay:
		return "(No play)"
	}
	return "UNHANDLED"
}

// FullRack returns the entire rack that the move was made from. This
// can be calculated from the tiles it uses and the leave.
func (m *Move) FullRack() string {
	if m.alph == nil {
		return ""
	}
	rack := []rune(m.LeaveString())
	for _, ml := range m.tiles {
		switch {
		case ml.IsBlanked():
			rack = append(rack, tilemapping.BlankToken)
		case ml == 0:
			// played through
		default:
			rack = append(rack, m.alph.Letter(ml))
		}
	}
	sort.Slice(rack, func(i, j int) bool {
		return rack[i] < rack[j]
	})
	return string(rack)
}

func (m *Move) Action() MoveType {
	return m.action
}

// IsNoPlay is true for the explicit no-play result.
func (m *Move) IsNoPlay() bool {
	return m.action == MoveTypeNoPlay
}

// TilesPlayed returns the number of tiles played by this move.
func (m *Move) TilesPlayed() int {
	return m.tilesPlayed
}

// NewScoringMove creates a scoring *Move and returns it. tiles and word
// have the same length; tiles holds 0 wherever word goes through a tile
// that was already on the board.
func NewScoringMove(score int, tiles tilemapping.MachineWord, word tilemapping.MachineWord,
	leave tilemapping.MachineWord, vertical bool, tilesPlayed int, bingo bool,
	alph *tilemapping.TileMapping, rowStart int, colStart int) *Move {

	return &Move{
		action: MoveTypePlay, score: score, tiles: tiles, word: word, leave: leave,
		vertical: vertical, bingo: bingo, tilesPlayed: tilesPlayed, alph: alph,
		rowStart: rowStart, colStart: colStart,
		coords: ToBoardGameCoords(rowStart, colStart, vertical),
	}
}

// NewScoringMoveSimple takes in user-visible strings. tiles uses a dot for
// played-through squares, and word is the full main word. leave is what
// stays on the rack; an empty leave makes the move a bingo, whatever the
// rack size. It is a little slower, so mostly for tests.
func NewScoringMoveSimple(score int, coords string, tiles string, word string,
	leave string, alph *tilemapping.TileMapping) (*Move, error) {

	row, col, vertical, err := FromBoardGameCoords(coords)
	if err != nil {
		return nil, err
	}
	tilesMW, err := tilemapping.ToMachineWord(tiles, alph)
	if err != nil {
		return nil, err
	}
	wordMW, err := tilemapping.ToMachineWord(word, alph)
	if err != nil {
		return nil, err
	}
	if len(tilesMW) != len(wordMW) {
		return nil, fmt.Errorf("tiles %q do not cover word %q", tiles, word)
	}
	leaveMW, err := tilemapping.ToMachineWord(leave, alph)
	if err != nil {
		return nil, err
	}
	tilesPlayed := lo.CountBy(tilesMW, func(ml tilemapping.MachineLetter) bool {
		return ml.IsPlayedTile()
	})
	return NewScoringMove(score, tilesMW, wordMW, leaveMW, vertical, tilesPlayed,
		tilesPlayed > 0 && len(leaveMW) == 0, alph, row, col), nil
}

// NewNoPlayMove is the result when no tile can be placed. The leave is the
// whole rack.
func NewNoPlayMove(leave tilemapping.MachineWord, alph *tilemapping.TileMapping) *Move {
	return &Move{
		action: MoveTypeNoPlay,
		leave:  leave,
		alph:   alph,
	}
}

// Alphabet is the alphabet used by this move
func (m *Move) Alphabet() *tilemapping.TileMapping {
	return m.alph
}

func (m *Move) Score() int {
	return m.score
}

func (m *Move) Bingo() bool {
	return m.bingo
}

func (m *Move) Leave() tilemapping.MachineWord {
	return m.leave
}

func (m *Move) Tiles() tilemapping.MachineWord {
	return m.tiles
}

func (m *Move) Word() tilemapping.MachineWord {
	return m.word
}

func (m *Move) CoordsAndVertical() (int, int, bool) {
	return m.rowStart, m.colStart, m.vertical
}

func (m *Move) BoardCoords() string {
	return m.coords
}

// Placements lists the tiles this move puts on the board, in order along
// the main word.
func (m *Move) Placements() []Placement {
	ps := make([]Placement, 0, m.tilesPlayed)
	for i, ml := range m.tiles {
		if !ml.IsPlayedTile() {
			continue
		}
		p := Placement{Row: m.rowStart, Col: m.colStart, Letter: ml}
		if m.vertical {
			p.Row += i
		} else {
			p.Col += i
		}
		ps = append(ps, p)
	}
	return ps
}

// Equals compares two moves. With alsoViaTransposition, a play and its
// mirror image across the diagonal compare equal. ignoreLeave skips the
// leave.
func (m *Move) Equals(o *Move, alsoViaTransposition, ignoreLeave bool) bool {
	if m.action != o.action || m.score != o.score || m.tilesPlayed != o.tilesPlayed {
		return false
	}
	if m.action == MoveTypePlay {
		sameSpot := m.rowStart == o.rowStart && m.colStart == o.colStart &&
			m.vertical == o.vertical
		transposed := m.rowStart == o.colStart && m.colStart == o.rowStart &&
			m.vertical != o.vertical
		if !sameSpot && !(alsoViaTransposition && transposed) {
			return false
		}
		if !sliceEqual(m.tiles, o.tiles) {
			return false
		}
	}
	if !ignoreLeave && !sliceEqual(m.leave, o.leave) {
		return false
	}
	return true
}

func sliceEqual(a, b tilemapping.MachineWord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ToBoardGameCoords converts the row, col, and orientation of the play to
// a coordinate like 5F or G4.
func ToBoardGameCoords(row int, col int, vertical bool) string {
	colCoords := string(rune('A' + col))
	rowCoords := strconv.Itoa(row + 1)
	if vertical {
		return colCoords + rowCoords
	}
	return rowCoords + colCoords
}

// FromBoardGameCoords does the inverse operation of ToBoardGameCoords above.
func FromBoardGameCoords(c string) (int, int, bool, error) {
	if vMatches := reVertical.FindStringSubmatch(c); len(vMatches) == 3 {
		row, err := strconv.Atoi(vMatches[2])
		if err != nil {
			return 0, 0, false, err
		}
		return row - 1, int(vMatches[1][0] - 'A'), true, nil
	}
	if hMatches := reHorizontal.FindStringSubmatch(c); len(hMatches) == 3 {
		row, err := strconv.Atoi(hMatches[1])
		if err != nil {
			return 0, 0, false, err
		}
		return row - 1, int(hMatches[2][0] - 'A'), false, nil
	}
	return 0, 0, false, fmt.Errorf("unrecognized coordinates %q", c)
}
