package cross_set

import (
	"github.com/rs/zerolog/log"

	"github.com/twiby/rsScrabble/board"
	"github.com/twiby/rsScrabble/kwg"
	"github.com/twiby/rsScrabble/tilemapping"
)

const (
	// TrivialCrossSet allows every possible letter. It is the state of a
	// square with no tile on either side.
	TrivialCrossSet = (1 << tilemapping.MaxAlphabetSize) - 1
)

// A CrossSet is a bit mask of letters that are allowed on a square. It is
// inherently directional, as it depends on which direction we are generating
// moves in. If we are generating moves HORIZONTALLY, we check in the
// VERTICAL cross set to make sure we can play a letter there.
// Therefore, a VERTICAL cross set is created by looking at the tile(s)
// above and/or below the relevant square and seeing what letters lead to
// valid words.
type CrossSet uint64

func (c CrossSet) Allowed(letter tilemapping.MachineLetter) bool {
	return c&(1<<uint8(letter.Unblank())) != 0
}

func (c *CrossSet) Set(letter tilemapping.MachineLetter) {
	*c = *c | (1 << letter.Unblank())
}

func CrossSetFromString(letters string, tm *tilemapping.TileMapping) (CrossSet, error) {
	c := CrossSet(0)
	for _, l := range letters {
		v, err := tm.Val(l)
		if err != nil {
			return 0, err
		}
		c.Set(v)
	}
	return c, nil
}

func (c *CrossSet) SetAll() {
	*c = TrivialCrossSet
}

func (c *CrossSet) Clear() {
	*c = 0
}

// BoardCrossSets stores the cross-sets and cross-scores for a game board.
// We don't store these in the board itself, to keep move generation apart
// from the board model. Values are stored by untransposed position; row and
// col arguments are in the frame of the board the sets are bound to.
type BoardCrossSets struct {
	hcrossSets   []CrossSet
	vcrossSets   []CrossSet
	hcrossScores []int
	vcrossScores []int
	// crossed is true when a tile placed on the square forms a word in
	// that direction.
	hcrossed []bool
	vcrossed []bool

	board *Board
}

func MakeBoardCrossSets(b *Board) *BoardCrossSets {
	n := b.Dim() * b.Dim()
	bcs := &BoardCrossSets{
		hcrossSets:   make([]CrossSet, n),
		vcrossSets:   make([]CrossSet, n),
		hcrossScores: make([]int, n),
		vcrossScores: make([]int, n),
		hcrossed:     make([]bool, n),
		vcrossed:     make([]bool, n),
		board:        b,
	}
	bcs.SetAllCrosses()
	return bcs
}

// BindTo returns cross sets sharing these values but reading positions in
// the frame of b, which must be a copy of the original board. The values
// must not be written through either one while both are in use.
func (bcs *BoardCrossSets) BindTo(b *Board) *BoardCrossSets {
	cp := *bcs
	cp.board = b
	return &cp
}

func (bcs *BoardCrossSets) pos(row, col int) int {
	if bcs.board.IsTransposed() {
		return col*bcs.board.Dim() + row
	}
	return row*bcs.board.Dim() + col
}

func (bcs *BoardCrossSets) SetCrossSet(row int, col int, cs CrossSet, dir board.BoardDirection) {
	if dir == Horizontal {
		bcs.hcrossSets[bcs.pos(row, col)] = cs
		return
	}
	bcs.vcrossSets[bcs.pos(row, col)] = cs
}

func (bcs *BoardCrossSets) GetCrossSet(row, col int, dir board.BoardDirection) CrossSet {
	if dir == Horizontal {
		return bcs.hcrossSets[bcs.pos(row, col)]
	}
	return bcs.vcrossSets[bcs.pos(row, col)]
}

func (bcs *BoardCrossSets) SetCrossScore(row, col int, score int, crossed bool, dir board.BoardDirection) {
	p := bcs.pos(row, col)
	if dir == Horizontal {
		bcs.hcrossScores[p] = score
		bcs.hcrossed[p] = crossed
		return
	}
	bcs.vcrossScores[p] = score
	bcs.vcrossed[p] = crossed
}

// GetCrossScore returns the face value sum of the tiles that a tile placed
// on this square would join in direction dir.
func (bcs *BoardCrossSets) GetCrossScore(row, col int, dir board.BoardDirection) int {
	if dir == Horizontal {
		return bcs.hcrossScores[bcs.pos(row, col)]
	}
	return bcs.vcrossScores[bcs.pos(row, col)]
}

// IsCrossed returns true if a tile placed on this square forms a word of
// at least two letters in direction dir.
func (bcs *BoardCrossSets) IsCrossed(row, col int, dir board.BoardDirection) bool {
	if dir == Horizontal {
		return bcs.hcrossed[bcs.pos(row, col)]
	}
	return bcs.vcrossed[bcs.pos(row, col)]
}

func (bcs *BoardCrossSets) SetAllCrosses() {
	for i := range bcs.hcrossSets {
		bcs.hcrossSets[i] = TrivialCrossSet
		bcs.vcrossSets[i] = TrivialCrossSet
	}
}

type Board = board.GameBoard

const (
	Left       = board.LeftDirection
	Right      = board.RightDirection
	Horizontal = board.HorizontalDirection
	Vertical   = board.VerticalDirection
)

// Generator fills in cross-sets. There are two implementations:
// - CrossScoreOnlyGenerator{Dist}
// - KWGCrossSetGenerator{Dist, KWG}
type Generator interface {
	Generate(b *Board, cs *BoardCrossSets, row int, col int, dir board.BoardDirection)
	GenerateAll(b *Board, cs *BoardCrossSets)
}

type iGenerator interface {
	Generate(b *Board, cs *BoardCrossSets, row int, col int, dir board.BoardDirection)
}

// generateAll generates all cross-sets, going through the entire board,
// for both transpositions. The board is left untransposed.
func generateAll(g iGenerator, b *Board, cs *BoardCrossSets) {
	if b.IsTransposed() {
		b.Transpose()
	}
	n := b.Dim()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			g.Generate(b, cs, i, j, Horizontal)
		}
	}
	b.Transpose()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			g.Generate(b, cs, i, j, Vertical)
		}
	}
	// And transpose back to the original orientation.
	b.Transpose()
}

// ----------------------------------------------------------------------
// Use a CrossScoreOnlyGenerator when you don't need cross sets

type CrossScoreOnlyGenerator struct {
	Dist *tilemapping.LetterDistribution
}

func (g CrossScoreOnlyGenerator) Generate(b *Board, cs *BoardCrossSets, row int, col int, dir board.BoardDirection) {
	genCrossScore(b, cs, row, col, dir, g.Dist)
}

func (g CrossScoreOnlyGenerator) GenerateAll(b *Board, cs *BoardCrossSets) {
	generateAll(g, b, cs)
}

func GenAllCrossScores(b *Board, cs *BoardCrossSets, ld *tilemapping.LetterDistribution) {
	gen := CrossScoreOnlyGenerator{Dist: ld}
	gen.GenerateAll(b, cs)
}

// genCrossScore sets the cross score and crossed flag of one square. It
// reports whether the square is an empty square next to a tile on this row.
func genCrossScore(b *Board, cs *BoardCrossSets, row int, col int, dir board.BoardDirection,
	ld *tilemapping.LetterDistribution) bool {

	if b.HasLetter(row, col) || b.LeftAndRightEmpty(row, col) {
		cs.SetCrossScore(row, col, 0, false, dir)
		return false
	}
	score := b.TraverseBackwardsForScore(row, col-1, ld) + b.TraverseForwardsForScore(row, col+1, ld)
	cs.SetCrossScore(row, col, score, true, dir)
	return true
}

// ----------------------------------------------------------------------
// KWGCrossSetGenerator generates cross sets via a word graph

type KWGCrossSetGenerator struct {
	Dist *tilemapping.LetterDistribution
	KWG  *kwg.KWG
}

func (g KWGCrossSetGenerator) Generate(b *Board, cs *BoardCrossSets, row int, col int, dir board.BoardDirection) {
	GenCrossSet(b, cs, row, col, dir, g.KWG, g.Dist)
}

func (g KWGCrossSetGenerator) GenerateAll(b *Board, cs *BoardCrossSets) {
	generateAll(g, b, cs)
}

func GenAllCrossSets(b *Board, cs *BoardCrossSets, k *kwg.KWG, ld *tilemapping.LetterDistribution) {
	gen := KWGCrossSetGenerator{Dist: ld, KWG: k}
	gen.GenerateAll(b, cs)
}

// GenCrossSet generates the cross-set of one square by looking left and
// right of it on its row: every letter L such that left+L+right is a word.
func GenCrossSet(b *Board, cs *BoardCrossSets, row int, col int, dir board.BoardDirection,
	k *kwg.KWG, ld *tilemapping.LetterDistribution) {

	if !b.PosExists(row, col) {
		return
	}
	if b.HasLetter(row, col) {
		cs.SetCrossSet(row, col, CrossSet(0), dir)
		cs.SetCrossScore(row, col, 0, false, dir)
		return
	}
	if !genCrossScore(b, cs, row, col, dir, ld) {
		cs.SetCrossSet(row, col, TrivialCrossSet, dir)
		return
	}
	leftCol := b.WordEdge(row, col-1, Left)
	rightCol := b.WordEdge(row, col+1, Right)

	nodeIdx := k.GetRootNodeIndex()
	for c := leftCol; c < col; c++ {
		entry, ok := k.FindArc(nodeIdx, b.GetLetter(row, c))
		if !ok {
			// The tiles on the board are not the start of any word; this
			// can happen if a phony was played.
			cs.SetCrossSet(row, col, CrossSet(0), dir)
			return
		}
		nodeIdx = k.ArcIndex(entry)
	}
	crossSet := CrossSet(0)
	k.IterateSiblings(nodeIdx, func(ml tilemapping.MachineLetter, nnidx uint32, accepts bool) {
		if rightCol == col {
			if accepts {
				crossSet.Set(ml)
			}
			return
		}
		if suffixAccepted(b, k, row, col+1, rightCol, nnidx) {
			crossSet.Set(ml)
		}
	})
	log.Debug().Int("row", row).Int("col", col).Uint64("cs", uint64(crossSet)).
		Str("dir", dir.String()).Msg("gen-cross-set")
	cs.SetCrossSet(row, col, crossSet, dir)
}

// suffixAccepted follows the tiles from fromCol to toCol starting at nodeIdx
// and returns true if they end a word.
func suffixAccepted(b *Board, k *kwg.KWG, row, fromCol, toCol int, nodeIdx uint32) bool {
	var entry uint32
	for c := fromCol; c <= toCol; c++ {
		if c > fromCol {
			nodeIdx = k.ArcIndex(entry)
		}
		var ok bool
		entry, ok = k.FindArc(nodeIdx, b.GetLetter(row, c))
		if !ok {
			return false
		}
	}
	return k.Accepts(entry)
}
