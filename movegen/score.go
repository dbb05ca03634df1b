package movegen

import (
	"github.com/twiby/rsScrabble/board"
	"github.com/twiby/rsScrabble/cross_set"
	"github.com/twiby/rsScrabble/move"
	"github.com/twiby/rsScrabble/tilemapping"
)

// DefaultBingoBonus is added to a play that uses every tile of the rack.
const DefaultBingoBonus = 50

// Scorer computes the score of a finalized placement. Only the letters and
// the cross scores already on the board are used, so the result does not
// depend on the order the tiles were laid.
type Scorer struct {
	ld         *tilemapping.LetterDistribution
	bingoBonus int
}

func NewScorer(ld *tilemapping.LetterDistribution, bingoBonus int) *Scorer {
	return &Scorer{ld: ld, bingoBonus: bingoBonus}
}

func (s *Scorer) BingoBonus() int {
	return s.bingoBonus
}

// ScoreMove scores m on the untransposed board b. cs must hold the cross
// scores of b. rackTiles is the number of tiles the rack held before the
// play; the bingo bonus applies when all of them were placed.
func (s *Scorer) ScoreMove(b *board.GameBoard, cs *cross_set.BoardCrossSets, m *move.Move,
	rackTiles int) int {

	if m.Action() != move.MoveTypePlay {
		return 0
	}
	row, col, vertical := m.CoordsAndVertical()
	if !vertical {
		return s.scoreTiles(b, cs, row, col, m.Tiles(), board.VerticalDirection, rackTiles)
	}
	tb := b.Copy()
	tb.Transpose()
	return s.scoreTiles(tb, cs.BindTo(tb), col, row, m.Tiles(), board.HorizontalDirection,
		rackTiles)
}

// scoreTiles scores tiles laid left to right from row, col in the frame of
// b. A 0 tile is a square already on the board. csDirection is the
// direction of the cross words.
func (s *Scorer) scoreTiles(b *board.GameBoard, cs *cross_set.BoardCrossSets, row, col int,
	tiles []tilemapping.MachineLetter, csDirection board.BoardDirection, rackTiles int) int {

	mainWordScore := 0
	crossScores := 0
	wordMultiplier := 1
	tilesPlayed := 0

	for i, ml := range tiles {
		c := col + i
		if ml == 0 {
			mainWordScore += s.ld.Score(b.GetLetter(row, c))
			continue
		}
		tilesPlayed++
		bonus := b.GetBonus(row, c)
		lm, wm := bonus.LetterMultiplier(), bonus.WordMultiplier()
		ls := s.ld.Score(ml) * lm
		mainWordScore += ls
		wordMultiplier *= wm
		if cs.IsCrossed(row, c, csDirection) {
			crossScores += (cs.GetCrossScore(row, c, csDirection) + ls) * wm
		}
	}
	score := mainWordScore*wordMultiplier + crossScores
	if tilesPlayed > 0 && tilesPlayed == rackTiles {
		score += s.bingoBonus
	}
	return score
}
