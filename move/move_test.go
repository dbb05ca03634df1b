package move

import (
	"testing"

	"github.com/matryer/is"

	"github.com/twiby/rsScrabble/tilemapping"
)

type coordTestStruct struct {
	row      int
	col      int
	vertical bool
	output   string
}

var coordTests = []coordTestStruct{
	{0, 0, false, "1A"},
	{0, 0, true, "A1"},
	{14, 14, false, "15O"},
	{14, 14, true, "O15"},
	{9, 8, false, "10I"},
	{9, 8, true, "I10"},
	{1, 7, false, "2H"},
	{1, 7, true, "H2"},
}

func TestToBoardGameCoords(t *testing.T) {
	for _, tc := range coordTests {
		calc := ToBoardGameCoords(tc.row, tc.col, tc.vertical)
		if calc != tc.output {
			t.Errorf("For row=%v col=%v vertical=%v got %v, expected %v",
				tc.row, tc.col, tc.vertical, calc, tc.output)
		}
	}
}

func TestFromBoardGameCoords(t *testing.T) {
	for _, tc := range coordTests {
		row, col, vertical, err := FromBoardGameCoords(tc.output)
		if err != nil {
			t.Fatal(err)
		}
		if row != tc.row || col != tc.col || vertical != tc.vertical {
			t.Errorf("For coord %v expected (%v, %v, %v) got (%v, %v, %v)",
				tc.output, tc.row, tc.col, tc.vertical, row, col, vertical)
		}
	}
	_, _, _, err := FromBoardGameCoords("8-H")
	if err == nil {
		t.Error("expected an error for 8-H")
	}
}

func TestScoringMoveSimple(t *testing.T) {
	is := is.New(t)
	alph := tilemapping.LatinAlphabet()
	m, err := NewScoringMoveSimple(32, "11F", "te.fes", "terfes", "a", alph)
	is.NoErr(err)
	is.Equal(m.Action(), MoveTypePlay)
	is.Equal(m.TilesPlayed(), 5)
	is.True(!m.Bingo())
	is.Equal(m.BoardCoords(), "11F")
	is.Equal(m.ShortDescription(), "11F terfes")
	is.Equal(m.TilesString(), "te.fes")
	is.Equal(m.FullRack(), "aeefst")

	row, col, vertical := m.CoordsAndVertical()
	is.Equal(row, 10)
	is.Equal(col, 5)
	is.True(!vertical)

	_, err = NewScoringMoveSimple(3, "8H", "a.", "abc", "", alph)
	is.True(err != nil)
}

func TestScoringMoveSimpleBingo(t *testing.T) {
	is := is.New(t)
	alph := tilemapping.LatinAlphabet()

	// a short rack played out
	m, err := NewScoringMoveSimple(58, "8H", "ab", "ab", "", alph)
	is.NoErr(err)
	is.True(m.Bingo())

	m, err = NewScoringMoveSimple(8, "8H", "ab", "ab", "c", alph)
	is.NoErr(err)
	is.True(!m.Bingo())

	m, err = NewScoringMoveSimple(66, "8H", "tertial", "tertial", "", alph)
	is.NoErr(err)
	is.True(m.Bingo())
}

func TestPlacements(t *testing.T) {
	is := is.New(t)
	alph := tilemapping.LatinAlphabet()
	m, err := NewScoringMoveSimple(10, "H7", "S.t", "SaT", "", alph)
	is.NoErr(err)
	ps := m.Placements()
	is.Equal(len(ps), 2)
	is.Equal(ps[0], Placement{Row: 6, Col: 7, Letter: 19 | tilemapping.BlankMask})
	is.Equal(ps[1], Placement{Row: 8, Col: 7, Letter: 20})
	is.Equal(m.FullRack(), "0t")
}

func TestEqualsWithTransposition(t *testing.T) {
	is := is.New(t)
	alph := tilemapping.LatinAlphabet()
	m1, _ := NewScoringMoveSimple(66, "H8", "tertial", "tertial", "", alph)
	m2, _ := NewScoringMoveSimple(66, "8H", "tertial", "tertial", "", alph)
	is.True(!m1.Equals(m2, false, false))
	is.True(m1.Equals(m2, true, false))

	m3, _ := NewScoringMoveSimple(24, "8H", "phew", "phew", "", alph)
	m4, _ := NewScoringMoveSimple(24, "8F", "phew", "phew", "", alph)
	is.True(!m3.Equals(m4, true, false))
}

func TestEqualsWithLeaveIgnore(t *testing.T) {
	is := is.New(t)
	alph := tilemapping.LatinAlphabet()
	m1, _ := NewScoringMoveSimple(66, "H8", "what", "what", "abc", alph)
	m2, _ := NewScoringMoveSimple(66, "8H", "what", "what", "f", alph)
	is.True(!m1.Equals(m2, false, false))
	is.True(!m1.Equals(m2, false, true))
	is.True(m1.Equals(m2, true, true))
	is.True(!m1.Equals(m2, true, false))
}

func TestNoPlayResult(t *testing.T) {
	is := is.New(t)
	alph := tilemapping.LatinAlphabet()
	m := NewNoPlayMove(nil, alph)
	is.True(m.IsNoPlay())
	is.Equal(m.Score(), 0)
	is.Equal(m.ShortDescription(), "(No play)")
	is.Equal(m.Result(), PlayResult{NoPlay: true})
	is.Equal(len(m.Placements()), 0)
}

func TestResult(t *testing.T) {
	is := is.New(t)
	alph := tilemapping.LatinAlphabet()
	m, err := NewScoringMoveSimple(14, "J3", "ab", "ab", "cde", alph)
	is.NoErr(err)
	is.Equal(m.Result(), PlayResult{
		Word: "ab", Tiles: "ab", Coords: "J3", Row: 2, Col: 9, Vertical: true,
		Score: 14, Leave: "cde",
	})
}
