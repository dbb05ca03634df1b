package board

import (
	"github.com/twiby/rsScrabble/tilemapping"
)

type BoardDirection uint8
type WordDirection int

func (bd BoardDirection) String() string {
	if bd == HorizontalDirection {
		return "(horizontal)"
	} else if bd == VerticalDirection {
		return "(vertical)"
	}
	return "none"
}

const (
	HorizontalDirection BoardDirection = iota
	VerticalDirection
)

const (
	LeftDirection  WordDirection = -1
	RightDirection WordDirection = 1
)

// A GameBoard is the main board structure. It contains all of the Squares,
// with bonuses or filled letters. The board can be transposed so that
// vertical plays are found with the same code as horizontal ones; row and
// column arguments are always in the board's current frame.
type GameBoard struct {
	squares     [][]*Square
	transposed  bool
	tilesPlayed int
}

// MakeBoard creates an empty board from a layout, one string per row, using
// the BonusSquare runes.
func MakeBoard(layout []string) *GameBoard {
	rows := make([][]*Square, 0, len(layout))
	for _, s := range layout {
		row := []*Square{}
		for _, c := range s {
			row = append(row, &Square{bonus: BonusSquare(c)})
		}
		rows = append(rows, row)
	}
	return &GameBoard{squares: rows}
}

// NewEmptyBoard returns an empty standard board.
func NewEmptyBoard() *GameBoard {
	return MakeBoard(CrosswordGameBoard)
}

// Dim is the dimension of the board. It assumes the board is square.
func (g *GameBoard) Dim() int {
	return len(g.squares)
}

// Center returns the index of the center row and column.
func (g *GameBoard) Center() int {
	return g.Dim() / 2
}

func (g *GameBoard) GetBonus(row int, col int) BonusSquare {
	return g.squares[row][col].bonus
}

func (g *GameBoard) GetSquare(row int, col int) *Square {
	return g.squares[row][col]
}

// SetLetter puts a tile on a square, or empties it with 0.
func (g *GameBoard) SetLetter(row int, col int, letter tilemapping.MachineLetter) {
	sq := g.squares[row][col]
	if sq.letter == 0 && letter != 0 {
		g.tilesPlayed++
	} else if sq.letter != 0 && letter == 0 {
		g.tilesPlayed--
	}
	sq.letter = letter
}

func (g *GameBoard) GetLetter(row int, col int) tilemapping.MachineLetter {
	return g.squares[row][col].letter
}

// HasLetter returns true if the square exists and holds a tile.
func (g *GameBoard) HasLetter(row int, col int) bool {
	return g.PosExists(row, col) && g.squares[row][col].letter != 0
}

// HasNeighbor returns true if any orthogonally adjacent square holds a tile.
func (g *GameBoard) HasNeighbor(row int, col int) bool {
	return g.HasLetter(row-1, col) || g.HasLetter(row+1, col) ||
		g.HasLetter(row, col-1) || g.HasLetter(row, col+1)
}

// Transpose transposes the board, swapping rows and columns.
func (g *GameBoard) Transpose() {
	n := g.Dim()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.squares[i][j], g.squares[j][i] = g.squares[j][i], g.squares[i][j]
		}
	}
	g.transposed = !g.transposed
}

func (g *GameBoard) IsTransposed() bool {
	return g.transposed
}

// Copy returns a deep copy of the board, in the same frame.
func (g *GameBoard) Copy() *GameBoard {
	n := g.Dim()
	squares := make([][]*Square, n)
	for i := range g.squares {
		squares[i] = make([]*Square, n)
		for j, sq := range g.squares[i] {
			cp := *sq
			squares[i][j] = &cp
		}
	}
	return &GameBoard{
		squares:     squares,
		transposed:  g.transposed,
		tilesPlayed: g.tilesPlayed,
	}
}

// TilesPlayed is the number of tiles on the board.
func (g *GameBoard) TilesPlayed() int {
	return g.tilesPlayed
}

// IsEmpty returns if the board is empty.
func (g *GameBoard) IsEmpty() bool {
	return g.tilesPlayed == 0
}

func (g *GameBoard) PosExists(row int, col int) bool {
	d := g.Dim()
	return row >= 0 && row < d && col >= 0 && col < d
}

// LeftAndRightEmpty returns true if the squares at col - 1 and col + 1
// on this row are empty, checking carefully for boundary conditions.
func (g *GameBoard) LeftAndRightEmpty(row int, col int) bool {
	return !g.HasLetter(row, col-1) && !g.HasLetter(row, col+1)
}

// WordEdge finds the edge of a word on the board, returning the column.
func (g *GameBoard) WordEdge(row int, col int, dir WordDirection) int {
	for g.PosExists(row, col) && !g.squares[row][col].IsEmpty() {
		col += int(dir)
	}
	return col - int(dir)
}

// TraverseBackwardsForScore sums the face values of the tiles starting at
// col and going left until an empty square.
func (g *GameBoard) TraverseBackwardsForScore(row int, col int, ld *tilemapping.LetterDistribution) int {
	score := 0
	for g.PosExists(row, col) {
		ml := g.squares[row][col].letter
		if ml == 0 {
			break
		}
		score += ld.Score(ml)
		col--
	}
	return score
}

// TraverseForwardsForScore is TraverseBackwardsForScore going right.
func (g *GameBoard) TraverseForwardsForScore(row int, col int, ld *tilemapping.LetterDistribution) int {
	score := 0
	for g.PosExists(row, col) {
		ml := g.squares[row][col].letter
		if ml == 0 {
			break
		}
		score += ld.Score(ml)
		col++
	}
	return score
}

// canonicalSquare returns the square at row, col of the untransposed board.
func (g *GameBoard) canonicalSquare(row int, col int) *Square {
	if g.transposed {
		return g.squares[col][row]
	}
	return g.squares[row][col]
}
