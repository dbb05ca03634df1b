package board

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/twiby/rsScrabble/config"
	"github.com/twiby/rsScrabble/tilemapping"
)

var tm = tilemapping.LatinAlphabet()

func TestRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name string
		msg  string
		dim  int
	}{
		{"empty", StandardEmpty, 15},
		{"arbre", ArbreBoard, 15},
		{"scoring", ScoringBoard, 15},
		{"small-empty", SmallEmpty, 7},
		{"small-bar", SmallBar, 7},
		{"small-crowded", SmallCrowded, 7},
	} {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			b, err := DecodeDim(tc.msg, tc.dim, tm)
			is.NoErr(err)
			is.Equal(b.Encode(tm), tc.msg)
		})
	}
}

func TestStandardEmptyMatchesLayout(t *testing.T) {
	is := is.New(t)
	b, err := Decode(StandardEmpty, tm)
	is.NoErr(err)
	is.True(b.Equals(NewEmptyBoard()))
	is.True(b.IsEmpty())
	is.Equal(b.Center(), 7)
	is.Equal(b.GetBonus(0, 0), Bonus3WS)
	is.Equal(b.GetBonus(7, 7), Bonus2WS)
	is.Equal(b.GetBonus(0, 3), Bonus2LS)
	is.Equal(b.GetBonus(1, 5), Bonus3LS)
	is.Equal(NewEmptyBoard().Encode(tm), StandardEmpty)
}

func TestDecodeTiles(t *testing.T) {
	is := is.New(t)
	b, err := Decode(ArbreBoard, tm)
	is.NoErr(err)
	is.Equal(b.TilesPlayed(), 6)
	is.Equal(b.GetLetter(7, 7), tilemapping.MachineLetter(1))
	r := b.GetLetter(10, 7)
	is.True(r.IsBlanked())
	is.Equal(r.Unblank(), tilemapping.MachineLetter(18))
	// occupied squares keep their layout bonus
	is.Equal(b.GetBonus(7, 7), Bonus2WS)
	is.Equal(b.GetBonus(9, 9), Bonus3LS)
}

func TestDecodeErrors(t *testing.T) {
	is := is.New(t)
	var ferr *FormatError

	for _, msg := range []string{"", StandardEmpty[:224], StandardEmpty + "_"} {
		_, err := Decode(msg, tm)
		is.True(errors.As(err, &ferr))
		is.True(errors.Is(err, ErrWrongLength))
		is.Equal(ferr.Pos, -1)
	}

	for _, sym := range []rune{'1', '8', '9', '0', '#', 'é', '?', '.'} {
		msg := []rune(StandardEmpty)
		msg[17] = sym
		_, err := Decode(string(msg), tm)
		is.True(errors.As(err, &ferr))
		is.True(errors.Is(err, ErrUnknownSymbol))
		is.Equal(ferr.Pos, 17)
		is.Equal(ferr.Symbol, sym)
	}

	// multi-byte runes count as one square
	msg := []rune(StandardEmpty)
	msg[0] = 'é'
	_, err := Decode(string(msg), tm)
	is.True(errors.Is(err, ErrUnknownSymbol))

	_, err = DecodeDim(SmallEmpty, 15, tm)
	is.True(errors.Is(err, ErrWrongLength))
}

func TestExtendedBonuses(t *testing.T) {
	is := is.New(t)
	msg := "47_" + "___" + "___"
	b, err := DecodeDim(msg, 3, tm)
	is.NoErr(err)
	is.Equal(b.GetBonus(0, 0).LetterMultiplier(), 4)
	is.Equal(b.GetBonus(0, 1).WordMultiplier(), 4)
	is.Equal(b.Encode(tm), msg)
}

func TestMultipliers(t *testing.T) {
	for _, tc := range []struct {
		b      BonusSquare
		lm, wm int
	}{
		{BonusNone, 1, 1},
		{Bonus2LS, 2, 1},
		{Bonus3LS, 3, 1},
		{Bonus2WS, 1, 2},
		{Bonus3WS, 1, 3},
	} {
		assert.Equal(t, tc.lm, tc.b.LetterMultiplier(), string(tc.b))
		assert.Equal(t, tc.wm, tc.b.WordMultiplier(), string(tc.b))
	}
}

func TestTranspose(t *testing.T) {
	is := is.New(t)
	b, err := Decode(ArbreBoard, tm)
	is.NoErr(err)
	b.Transpose()
	is.True(b.IsTransposed())
	// arbre now goes across row 7
	word := []rune{}
	for col := 7; col <= 11; col++ {
		word = append(word, tm.Letter(b.GetLetter(7, col)))
	}
	is.Equal(string(word), "arbRe")
	is.Equal(b.GetLetter(8, 9), tilemapping.MachineLetter(5))
	// encoding ignores the frame
	is.Equal(b.Encode(tm), ArbreBoard)
	b.Transpose()
	is.True(!b.IsTransposed())
}

func TestCopy(t *testing.T) {
	is := is.New(t)
	b, err := Decode(ArbreBoard, tm)
	is.NoErr(err)
	c := b.Copy()
	c.SetLetter(0, 0, 3)
	is.Equal(b.GetLetter(0, 0), tilemapping.MachineLetter(0))
	is.Equal(c.TilesPlayed(), b.TilesPlayed()+1)
	c.SetLetter(0, 0, 0)
	is.True(c.Equals(b))
	c.Transpose()
	is.True(c.Equals(b))
	is.True(!b.IsTransposed())
}

func TestNeighbors(t *testing.T) {
	is := is.New(t)
	b, err := Decode(ArbreBoard, tm)
	is.NoErr(err)
	ld, err := tilemapping.FrenchLetterDistribution(config.DefaultConfig())
	is.NoErr(err)

	is.True(b.HasNeighbor(6, 7))
	is.True(b.HasNeighbor(9, 9))
	is.True(!b.HasNeighbor(0, 0))
	is.True(!b.HasLetter(-1, 3))
	is.True(b.LeftAndRightEmpty(7, 7))
	is.True(!b.LeftAndRightEmpty(9, 9))

	is.Equal(b.WordEdge(9, 8, LeftDirection), 7)
	is.Equal(b.WordEdge(9, 7, RightDirection), 8)
	// b + e
	is.Equal(b.TraverseBackwardsForScore(9, 8, ld), 4)
	is.Equal(b.TraverseForwardsForScore(9, 7, ld), 4)

	b.Transpose()
	// a r b R e
	is.Equal(b.TraverseBackwardsForScore(7, 11, ld), 6)
}

func TestSetRow(t *testing.T) {
	is := is.New(t)
	b := NewEmptyBoard()
	played, err := b.SetRow(7, "     arBre", tm)
	is.NoErr(err)
	is.Equal(len(played), 5)
	is.Equal(b.TilesPlayed(), 5)
	is.Equal(b.ToDisplayText(tm) != "", true)
	_, err = b.SetRow(7, "1", tm)
	is.True(err != nil)
}
