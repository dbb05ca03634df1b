package movegen

import (
	"github.com/twiby/rsScrabble/board"
)

// Anchors are places on the board where a word can start.
// These are very tied to move generation so we put them in this package.
// An anchor is an empty square next to a tile, in any direction. On an
// empty board the center square is the only anchor.
// Values are stored by untransposed position, so the same anchors can be
// read while the board is transposed.
type Anchors struct {
	anchors []bool
	board   *board.GameBoard
}

func MakeAnchors(b *board.GameBoard) *Anchors {
	a := &Anchors{
		board:   b,
		anchors: make([]bool, b.Dim()*b.Dim()),
	}
	a.UpdateAllAnchors()
	return a
}

// BindTo returns anchors sharing these values but reading positions in the
// frame of b, a copy of the original board.
func (a *Anchors) BindTo(b *board.GameBoard) *Anchors {
	cp := *a
	cp.board = b
	return &cp
}

func (a *Anchors) pos(row, col int) int {
	if a.board.IsTransposed() {
		return col*a.board.Dim() + row
	}
	return row*a.board.Dim() + col
}

// IsAnchor gets whether the passed-in row and column is an anchor.
// This function can be called while the board is transposed.
func (a *Anchors) IsAnchor(row, col int) bool {
	return a.anchors[a.pos(row, col)]
}

func (a *Anchors) UpdateAllAnchors() {
	dim := a.board.Dim()
	if a.board.IsEmpty() {
		for i := range a.anchors {
			a.anchors[i] = false
		}
		c := a.board.Center()
		a.anchors[a.pos(c, c)] = true
		return
	}
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			a.anchors[a.pos(i, j)] = !a.board.HasLetter(i, j) && a.board.HasNeighbor(i, j)
		}
	}
}

// Count is the number of anchors on the board.
func (a *Anchors) Count() int {
	n := 0
	for _, ok := range a.anchors {
		if ok {
			n++
		}
	}
	return n
}
