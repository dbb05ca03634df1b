package movegen

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/twiby/rsScrabble/board"
	"github.com/twiby/rsScrabble/cross_set"
	"github.com/twiby/rsScrabble/move"
	"github.com/twiby/rsScrabble/testhelpers"
)

func TestScoreMove(t *testing.T) {
	is := is.New(t)
	ld := testhelpers.FrenchDistribution()
	tm := ld.TileMapping()
	b, err := board.Decode(board.ScoringBoard, tm)
	is.NoErr(err)
	cs := cross_set.MakeBoardCrossSets(b)
	cross_set.GenAllCrossScores(b, cs, ld)
	scorer := NewScorer(ld, DefaultBingoBonus)

	testCases := []struct {
		tiles string
		word  string
		score int
	}{
		{"te.se", "teRse", 7},
		{"tE.se", "tERse", 6},
		{"te.Se", "teRSe", 3},
		{"te.ses", "teRses", 14},
		{"te.Ses", "teRSes", 8},
		{"te.fes", "teRfes", 32},
	}
	for _, tc := range testCases {
		m, err := move.NewScoringMoveSimple(0, "11F", tc.tiles, tc.word, "", tm)
		is.NoErr(err)
		assert.Equal(t, tc.score, scorer.ScoreMove(b, cs, m, 7), tc.tiles)
	}
}

func TestScoreMoveBingo(t *testing.T) {
	is := is.New(t)
	ld := testhelpers.FrenchDistribution()
	tm := ld.TileMapping()
	b, err := board.Decode(board.ScoringBoard, tm)
	is.NoErr(err)
	cs := cross_set.MakeBoardCrossSets(b)
	cross_set.GenAllCrossScores(b, cs, ld)

	m, err := move.NewScoringMoveSimple(0, "11F", "te.se", "teRse", "", tm)
	is.NoErr(err)
	is.Equal(NewScorer(ld, DefaultBingoBonus).ScoreMove(b, cs, m, 4), 57)
	is.Equal(NewScorer(ld, 35).ScoreMove(b, cs, m, 4), 42)
	is.Equal(NewScorer(ld, DefaultBingoBonus).ScoreMove(b, cs, m, 5), 7)
}

func TestScoreMoveVertical(t *testing.T) {
	is := is.New(t)
	ld := testhelpers.FrenchDistribution()
	tm := ld.TileMapping()
	b, err := board.Decode(board.ArbreBoard, tm)
	is.NoErr(err)
	cs := cross_set.MakeBoardCrossSets(b)
	cross_set.GenAllCrossScores(b, cs, ld)
	scorer := NewScorer(ld, DefaultBingoBonus)

	m, err := move.NewScoringMoveSimple(0, "H8", ".....s", "arbRes", "", tm)
	is.NoErr(err)
	is.Equal(scorer.ScoreMove(b, cs, m, 7), 7)

	// "es" down from the e of "be". The s also goes next to the R of
	// "arbRe"; the scorer adds that cross word whether or not it is valid.
	m, err = move.NewScoringMoveSimple(0, "I10", ".s", "es", "", tm)
	is.NoErr(err)
	// main: e(1) + s(1) = 2, cross: R(0) + s(1) = 1
	is.Equal(scorer.ScoreMove(b, cs, m, 7), 3)
	// the board was not left transposed
	is.True(!b.IsTransposed())
}

func TestScoreNoPlay(t *testing.T) {
	is := is.New(t)
	ld := testhelpers.FrenchDistribution()
	b := board.NewEmptyBoard()
	cs := cross_set.MakeBoardCrossSets(b)
	m := move.NewNoPlayMove(nil, ld.TileMapping())
	is.Equal(NewScorer(ld, DefaultBingoBonus).ScoreMove(b, cs, m, 0), 0)
}
