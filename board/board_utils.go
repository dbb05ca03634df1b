package board

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/twiby/rsScrabble/tilemapping"
)

// ToDisplayText draws the board with column letters and row numbers.
func (g *GameBoard) ToDisplayText(tm *tilemapping.TileMapping) string {
	var str strings.Builder
	n := g.Dim()
	str.WriteString("\n   ")
	for i := 0; i < n; i++ {
		str.WriteString(fmt.Sprintf("%c ", 'A'+i))
	}
	str.WriteString("\n   " + strings.Repeat("-", n*2) + "\n")
	for i := 0; i < n; i++ {
		str.WriteString(fmt.Sprintf("%2d|", i+1))
		for j := 0; j < n; j++ {
			str.WriteString(g.canonicalSquare(i, j).DisplayString(tm) + " ")
		}
		str.WriteString("|\n")
	}
	str.WriteString("   " + strings.Repeat("-", n*2) + "\n")
	return str.String()
}

// SetRow sets the row in the board to the passed in letters; spaces are
// empty squares. It returns the letters placed.
func (g *GameBoard) SetRow(rowNum int, letters string, tm *tilemapping.TileMapping) ([]tilemapping.MachineLetter, error) {
	for idx := 0; idx < g.Dim(); idx++ {
		g.SetLetter(rowNum, idx, 0)
	}
	lettersPlayed := []tilemapping.MachineLetter{}
	for idx, r := range []rune(letters) {
		if r == ' ' {
			continue
		}
		letter, err := tm.Val(r)
		if err != nil {
			return nil, err
		}
		g.SetLetter(rowNum, idx, letter)
		lettersPlayed = append(lettersPlayed, letter)
	}
	return lettersPlayed, nil
}

// Equals checks the boards for equality, square by square, in the
// untransposed frame.
func (g *GameBoard) Equals(g2 *GameBoard) bool {
	if g.Dim() != g2.Dim() {
		log.Debug().Msgf("Dims don't match: %v %v", g.Dim(), g2.Dim())
		return false
	}
	if g.tilesPlayed != g2.tilesPlayed {
		log.Debug().Msgf("Tiles played don't match: %v %v", g.tilesPlayed, g2.tilesPlayed)
		return false
	}
	for row := 0; row < g.Dim(); row++ {
		for col := 0; col < g.Dim(); col++ {
			s1, s2 := g.canonicalSquare(row, col), g2.canonicalSquare(row, col)
			if s1.letter != s2.letter || s1.bonus != s2.bonus {
				log.Debug().Msgf("> Not equal, row %v col %v", row, col)
				return false
			}
		}
	}
	return true
}
