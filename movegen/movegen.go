// Package movegen contains all the move-generating functions. It walks the
// word graph from every anchor, placing a left part and then extending to
// the right, and only ever generates along rows: vertical plays are found
// on a transposed board.
package movegen

import (
	"github.com/rs/zerolog/log"

	"github.com/twiby/rsScrabble/board"
	"github.com/twiby/rsScrabble/cross_set"
	"github.com/twiby/rsScrabble/kwg"
	"github.com/twiby/rsScrabble/move"
	"github.com/twiby/rsScrabble/tilemapping"
)

// MoveGenerator is a generic interface for generating moves.
type MoveGenerator interface {
	GenAll(rack *tilemapping.Rack) []*move.Move
	GenByOrientation(rack *tilemapping.Rack, dir board.BoardDirection)
	SetPlayRecorder(pr PlayRecorderFunc)
	Plays() []*move.Move
	NumCandidates() int
}

var _ MoveGenerator = (*GordonGenerator)(nil)

// GordonGenerator generates moves from the anchors of a board. Candidates
// come out in a fixed order: horizontal before vertical, anchors row by
// row, each left part before its extensions, letters ascending and a rack
// tile before a blank standing for the same letter.
type GordonGenerator struct {
	lexicon            *kwg.KWG
	letterDistribution *tilemapping.LetterDistribution
	scorer             *Scorer

	board   *board.GameBoard
	csets   *cross_set.BoardCrossSets
	anchors *Anchors

	// curRowIdx is the current row for which we are generating moves. Note
	// that we are always thinking in terms of rows, and columns are the
	// current anchor column. In order to generate vertical moves, we just
	// transpose the board.
	curRowIdx     int
	curAnchorCol  int
	lastAnchorCol int
	vertical      bool

	// strip holds the tiles of the play being built, with 0 for squares
	// that already have a tile.
	strip []tilemapping.MachineLetter
	// leftPart is the left part being built, in order.
	leftPart    []tilemapping.MachineLetter
	tilesPlayed int
	rackTiles   int

	playRecorder  PlayRecorderFunc
	plays         []*move.Move
	winner        *move.Move
	numCandidates int
}

// NewGordonGenerator returns a generator for b. cs must hold the cross sets
// of b, bound to b itself. The generator may transpose b while it works;
// it is left in its original orientation afterwards.
func NewGordonGenerator(lex *kwg.KWG, b *board.GameBoard, cs *cross_set.BoardCrossSets,
	ld *tilemapping.LetterDistribution, scorer *Scorer) *GordonGenerator {

	return &GordonGenerator{
		lexicon:            lex,
		letterDistribution: ld,
		scorer:             scorer,
		board:              b,
		csets:              cs,
		anchors:            MakeAnchors(b),
		strip:              make([]tilemapping.MachineLetter, b.Dim()),
		leftPart:           make([]tilemapping.MachineLetter, 0, b.Dim()),
		playRecorder:       AllPlaysRecorder,
	}
}

func (gen *GordonGenerator) SetPlayRecorder(pr PlayRecorderFunc) {
	gen.playRecorder = pr
}

// Plays returns the plays recorded by the last generation.
func (gen *GordonGenerator) Plays() []*move.Move {
	return gen.plays
}

// NumCandidates is the number of legal placements seen by the last
// generation, recorded or not.
func (gen *GordonGenerator) NumCandidates() int {
	return gen.numCandidates
}

func (gen *GordonGenerator) Anchors() *Anchors {
	return gen.anchors
}

func (gen *GordonGenerator) reset(rack *tilemapping.Rack) {
	gen.plays = nil
	gen.winner = nil
	gen.numCandidates = 0
	gen.tilesPlayed = 0
	gen.rackTiles = int(rack.NumTiles())
}

// GenAll generates all moves on the board, horizontal ones first.
func (gen *GordonGenerator) GenAll(rack *tilemapping.Rack) []*move.Move {
	gen.reset(rack)
	gen.genByOrientation(rack, board.HorizontalDirection)
	gen.genByOrientation(rack, board.VerticalDirection)
	return gen.plays
}

// GenByOrientation generates the moves of one orientation only.
func (gen *GordonGenerator) GenByOrientation(rack *tilemapping.Rack, dir board.BoardDirection) {
	gen.reset(rack)
	gen.genByOrientation(rack, dir)
}

func (gen *GordonGenerator) genByOrientation(rack *tilemapping.Rack, dir board.BoardDirection) {
	if rack.Empty() {
		return
	}
	wasTransposed := gen.board.IsTransposed()
	if (dir == board.VerticalDirection) != wasTransposed {
		gen.board.Transpose()
		defer gen.board.Transpose()
	}
	gen.vertical = dir == board.VerticalDirection
	dim := gen.board.Dim()
	before := gen.numCandidates

	for row := 0; row < dim; row++ {
		gen.curRowIdx = row
		gen.lastAnchorCol = -1
		for col := 0; col < dim; col++ {
			if gen.anchors.IsAnchor(row, col) {
				gen.curAnchorCol = col
				gen.genFromAnchor(rack)
				gen.lastAnchorCol = col
			}
		}
	}
	log.Debug().Str("dir", dir.String()).Int("candidates", gen.numCandidates-before).
		Msg("gen-by-orientation")
}

func (gen *GordonGenerator) genFromAnchor(rack *tilemapping.Rack) {
	row, anchor := gen.curRowIdx, gen.curAnchorCol
	nodeIdx := gen.lexicon.GetRootNodeIndex()

	if gen.board.HasLetter(row, anchor-1) {
		// The tiles left of the anchor are the left part; follow them.
		start := gen.board.WordEdge(row, anchor-1, board.LeftDirection)
		for col := start; col < anchor; col++ {
			entry, ok := gen.lexicon.FindArc(nodeIdx, gen.board.GetLetter(row, col))
			if !ok {
				return
			}
			gen.strip[col] = 0
			nodeIdx = gen.lexicon.ArcIndex(entry)
		}
		gen.extendRight(rack, nodeIdx, anchor, start)
		return
	}
	// Every square between the previous anchor and this one is empty and
	// has no neighbors, so any letter may go there.
	gen.leftPart = gen.leftPart[:0]
	gen.genLeftPart(rack, nodeIdx, anchor-gen.lastAnchorCol-1)
}

// genLeftPart tries every left part of at most limit tiles that can be
// followed from nodeIdx, shortest first along each branch.
func (gen *GordonGenerator) genLeftPart(rack *tilemapping.Rack, nodeIdx uint32, limit int) {
	anchor := gen.curAnchorCol
	leftCol := anchor - len(gen.leftPart)
	copy(gen.strip[leftCol:anchor], gen.leftPart)
	gen.extendRight(rack, nodeIdx, anchor, leftCol)

	if limit == 0 || rack.NumTiles() < 2 {
		// Keep a tile for the anchor.
		return
	}
	gen.lexicon.IterateSiblings(nodeIdx, func(ml tilemapping.MachineLetter, nnidx uint32, _ bool) {
		if nnidx == 0 {
			return
		}
		if rack.Has(ml) {
			gen.pushLeft(rack, ml, ml)
			gen.genLeftPart(rack, nnidx, limit-1)
			gen.popLeft(rack, ml)
		}
		if rack.Has(0) {
			gen.pushLeft(rack, 0, ml.Blank())
			gen.genLeftPart(rack, nnidx, limit-1)
			gen.popLeft(rack, 0)
		}
	})
}

func (gen *GordonGenerator) pushLeft(rack *tilemapping.Rack, tile, ml tilemapping.MachineLetter) {
	rack.Take(tile)
	gen.tilesPlayed++
	gen.leftPart = append(gen.leftPart, ml)
}

func (gen *GordonGenerator) popLeft(rack *tilemapping.Rack, tile tilemapping.MachineLetter) {
	gen.leftPart = gen.leftPart[:len(gen.leftPart)-1]
	gen.tilesPlayed--
	rack.Add(tile)
}

func (gen *GordonGenerator) crossDirection() board.BoardDirection {
	if gen.vertical {
		return board.HorizontalDirection
	}
	return board.VerticalDirection
}

// extendRight places a letter on col, following the arcs that start at
// nodeIdx. leftCol is where the play starts.
func (gen *GordonGenerator) extendRight(rack *tilemapping.Rack, nodeIdx uint32, col, leftCol int) {
	row := gen.curRowIdx
	if gen.board.HasLetter(row, col) {
		entry, ok := gen.lexicon.FindArc(nodeIdx, gen.board.GetLetter(row, col))
		if !ok {
			return
		}
		gen.strip[col] = 0
		gen.goOn(rack, gen.lexicon.ArcIndex(entry), gen.lexicon.Accepts(entry), col, leftCol)
		return
	}
	if rack.Empty() {
		return
	}
	crossSet := gen.csets.GetCrossSet(row, col, gen.crossDirection())
	gen.lexicon.IterateSiblings(nodeIdx, func(ml tilemapping.MachineLetter, nnidx uint32, accepts bool) {
		if !crossSet.Allowed(ml) {
			return
		}
		if rack.Has(ml) {
			rack.Take(ml)
			gen.tilesPlayed++
			gen.strip[col] = ml
			gen.goOn(rack, nnidx, accepts, col, leftCol)
			gen.tilesPlayed--
			rack.Add(ml)
		}
		if rack.Has(0) {
			rack.Take(0)
			gen.tilesPlayed++
			gen.strip[col] = ml.Blank()
			gen.goOn(rack, nnidx, accepts, col, leftCol)
			gen.tilesPlayed--
			rack.Add(0)
		}
	})
}

// goOn is called once col holds a letter. accepts is true if the letters
// from leftCol to col form a word.
func (gen *GordonGenerator) goOn(rack *tilemapping.Rack, nnidx uint32, accepts bool, col, leftCol int) {
	row := gen.curRowIdx
	nextEmpty := !gen.board.HasLetter(row, col+1)
	if accepts && nextEmpty && col >= gen.curAnchorCol && gen.tilesPlayed > 0 {
		gen.recordPlay(rack, leftCol, col)
	}
	if nnidx != 0 && col+1 < gen.board.Dim() {
		gen.extendRight(rack, nnidx, col+1, leftCol)
	}
}

func (gen *GordonGenerator) recordPlay(rack *tilemapping.Rack, leftstrip, rightstrip int) {
	if rightstrip-leftstrip+1 < 2 {
		return
	}
	if gen.vertical && gen.tilesPlayed == 1 && gen.singleTileCrossed(leftstrip, rightstrip) {
		// The same tile makes a horizontal word too; that play has already
		// been seen with the same score.
		return
	}
	gen.numCandidates++
	score := gen.scorer.scoreTiles(gen.board, gen.csets, gen.curRowIdx, leftstrip,
		gen.strip[leftstrip:rightstrip+1], gen.crossDirection(), gen.rackTiles)
	gen.playRecorder(gen, rack, leftstrip, rightstrip, score)
}

func (gen *GordonGenerator) singleTileCrossed(leftstrip, rightstrip int) bool {
	for col := leftstrip; col <= rightstrip; col++ {
		if gen.strip[col] != 0 {
			return gen.csets.IsCrossed(gen.curRowIdx, col, gen.crossDirection())
		}
	}
	return false
}

// playFromStrip turns the current strip into a move.
func (gen *GordonGenerator) playFromStrip(rack *tilemapping.Rack, leftstrip, rightstrip, score int) *move.Move {
	length := rightstrip - leftstrip + 1
	tiles := make([]tilemapping.MachineLetter, length)
	copy(tiles, gen.strip[leftstrip:rightstrip+1])
	word := make([]tilemapping.MachineLetter, length)
	for i, ml := range tiles {
		if ml == 0 {
			ml = gen.board.GetLetter(gen.curRowIdx, leftstrip+i)
		}
		word[i] = ml
	}
	row, col := gen.curRowIdx, leftstrip
	if gen.vertical {
		// We flip it here because we only generate vertical moves when we
		// transpose the board, so the row and col are actually transposed.
		row, col = col, row
	}
	return move.NewScoringMove(score, tiles, word, rack.TilesOn(), gen.vertical,
		gen.tilesPlayed, gen.tilesPlayed == gen.rackTiles,
		gen.letterDistribution.TileMapping(), row, col)
}
