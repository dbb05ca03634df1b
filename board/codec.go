package board

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/twiby/rsScrabble/tilemapping"
)

// The wire format is one rune per square, row by row:
//
//	_        empty, no bonus
//	2 3 4    empty, letter score x2 x3 x4
//	5 6 7    empty, word score x2 x3 x4
//	a-z      tile from the rack
//	A-Z      tile from a blank
const EmptySymbol = '_'

var (
	ErrWrongLength   = errors.New("board has wrong length")
	ErrUnknownSymbol = errors.New("unknown board symbol")
)

// FormatError is returned when a board string cannot be decoded.
type FormatError struct {
	// Length is the number of runes received.
	Length int
	// Pos is the rune index of the offending symbol, or -1.
	Pos    int
	Symbol rune
	Err    error
}

func (e *FormatError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("%v: %q at position %d", e.Err, e.Symbol, e.Pos)
	}
	return fmt.Sprintf("%v: got %d squares", e.Err, e.Length)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

var symbolToBonus = map[rune]BonusSquare{
	EmptySymbol: BonusNone,
	'2':         Bonus2LS,
	'3':         Bonus3LS,
	'4':         Bonus4LS,
	'5':         Bonus2WS,
	'6':         Bonus3WS,
	'7':         Bonus4WS,
}

var bonusToSymbol = map[BonusSquare]rune{}

func init() {
	for sym, b := range symbolToBonus {
		bonusToSymbol[b] = sym
	}
}

// Decode reads a standard 15x15 board.
func Decode(msg string, tm *tilemapping.TileMapping) (*GameBoard, error) {
	return DecodeDim(msg, DefaultDim, tm)
}

// DecodeDim reads a dim x dim board. Occupied squares of a standard-size
// board keep the bonus of the standard layout; it is never scored again.
func DecodeDim(msg string, dim int, tm *tilemapping.TileMapping) (*GameBoard, error) {
	runes := []rune(msg)
	if dim <= 0 || len(runes) != dim*dim {
		return nil, &FormatError{Length: len(runes), Pos: -1, Err: ErrWrongLength}
	}
	g := &GameBoard{squares: make([][]*Square, dim)}
	for row := 0; row < dim; row++ {
		g.squares[row] = make([]*Square, dim)
	}
	for i, r := range runes {
		row, col := i/dim, i%dim
		sq := &Square{}
		g.squares[row][col] = sq
		if b, ok := symbolToBonus[r]; ok {
			sq.bonus = b
			continue
		}
		if !unicode.IsLetter(r) {
			return nil, &FormatError{Length: len(runes), Pos: i, Symbol: r, Err: ErrUnknownSymbol}
		}
		ml, err := tm.Val(r)
		if err != nil || ml == 0 {
			return nil, &FormatError{Length: len(runes), Pos: i, Symbol: r, Err: ErrUnknownSymbol}
		}
		sq.letter = ml
		g.tilesPlayed++
		sq.bonus = BonusNone
		if dim == DefaultDim {
			sq.bonus = BonusSquare([]rune(CrosswordGameBoard[row])[col])
		}
	}
	log.Debug().Int("dim", dim).Int("tiles", g.tilesPlayed).Msg("decoded-board")
	return g, nil
}

// Encode writes the board in the wire format, always in the untransposed
// frame. Decode(Encode(b)) == b.
func (g *GameBoard) Encode(tm *tilemapping.TileMapping) string {
	var sb strings.Builder
	n := g.Dim()
	sb.Grow(n * n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			sq := g.canonicalSquare(row, col)
			if sq.letter != 0 {
				sb.WriteRune(tm.Letter(sq.letter))
				continue
			}
			sym, ok := bonusToSymbol[sq.bonus]
			if !ok {
				sym = EmptySymbol
			}
			sb.WriteRune(sym)
		}
	}
	return sb.String()
}
