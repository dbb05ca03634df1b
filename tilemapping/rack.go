package tilemapping

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/rs/zerolog/log"
)

// RackSize is the most tiles a rack can hold.
const RackSize = 7

var (
	ErrUnknownRackTile = errors.New("unknown rack tile")
	ErrRackTooLong     = errors.New("rack has too many tiles")
)

// InvalidRackError is returned when a rack string cannot be read.
type InvalidRackError struct {
	Rack string
	// Pos is the rune position of the offending tile, or -1.
	Pos int
	Err error
}

func (e *InvalidRackError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("invalid rack %q at position %d: %v", e.Rack, e.Pos, e.Err)
	}
	return fmt.Sprintf("invalid rack %q: %v", e.Rack, e.Err)
}

func (e *InvalidRackError) Unwrap() error {
	return e.Err
}

// Rack is a machine-friendly representation of a user's rack.
type Rack struct {
	// LetArr is an array of letter counts from 0 to alphabet.NumLetters.
	// The blank goes at 0.
	LetArr     []int
	numLetters uint8
	alphabet   *TileMapping
}

// NewRack creates a brand new rack structure with an alphabet.
func NewRack(alph *TileMapping) *Rack {
	return &Rack{
		alphabet: alph,
		LetArr:   make([]int, alph.NumLetters()),
	}
}

// ParseRack reads a rack made of letters (either case) and blanks, written
// 0 or ?. It returns an *InvalidRackError on any other tile or when the
// rack holds more than RackSize tiles.
func ParseRack(rack string, a *TileMapping) (*Rack, error) {
	r := NewRack(a)
	pos := 0
	for _, ch := range rack {
		var ml MachineLetter
		switch {
		case ch == BlankToken || ch == AltBlankToken:
			ml = 0
		case a.HasLetter(unicode.ToLower(ch)):
			ml = a.vals[unicode.ToLower(ch)]
		default:
			return nil, &InvalidRackError{Rack: rack, Pos: pos, Err: ErrUnknownRackTile}
		}
		// The tile count is a uint8; stop before it can wrap.
		if pos >= RackSize {
			return nil, &InvalidRackError{Rack: rack, Pos: -1, Err: ErrRackTooLong}
		}
		r.Add(ml)
		pos++
	}
	return r, nil
}

// RackFromString creates a Rack from a string and an alphabet. Invalid racks
// are logged and come back empty; use ParseRack to get the error.
func RackFromString(rack string, a *TileMapping) *Rack {
	r, err := ParseRack(rack, a)
	if err != nil {
		log.Error().AnErr("err", err).Msg("unable to convert rack")
		return NewRack(a)
	}
	return r
}

// String returns a user-visible version of this rack.
func (r *Rack) String() string {
	return r.TilesOn().UserVisible(r.alphabet)
}

// Copy returns a deep copy of this rack
func (r *Rack) Copy() *Rack {
	n := &Rack{
		numLetters: r.numLetters,
		alphabet:   r.alphabet,
	}
	n.LetArr = make([]int, len(r.LetArr))
	copy(n.LetArr, r.LetArr)
	return n
}

// Set sets the rack from a list of machine letters
func (r *Rack) Set(mls []MachineLetter) {
	r.Clear()
	for _, ml := range mls {
		r.LetArr[ml]++
	}
	r.numLetters = uint8(len(mls))
}

func (r *Rack) Clear() {
	for i := range r.LetArr {
		r.LetArr[i] = 0
	}
	r.numLetters = 0
}

// Take removes one tile. It should only be called if the tile is on the
// rack; it doesn't check.
func (r *Rack) Take(letter MachineLetter) {
	r.LetArr[letter]--
	r.numLetters--
}

func (r *Rack) Has(letter MachineLetter) bool {
	return r.LetArr[letter] > 0
}

func (r *Rack) CountOf(letter MachineLetter) int {
	return r.LetArr[letter]
}

func (r *Rack) Add(letter MachineLetter) {
	r.LetArr[letter]++
	r.numLetters++
}

// TilesOn returns the MachineLetters of the rack's current tiles, blanks
// first, then letters in alphabet order.
func (r *Rack) TilesOn() MachineWord {
	if r.numLetters == 0 {
		return MachineWord{}
	}
	letters := make([]MachineLetter, 0, r.numLetters)
	for i, ct := range r.LetArr {
		for j := 0; j < ct; j++ {
			letters = append(letters, MachineLetter(i))
		}
	}
	return letters
}

// NumTiles returns the current number of tiles on this rack.
func (r *Rack) NumTiles() uint8 {
	return r.numLetters
}

func (r *Rack) Empty() bool {
	return r.numLetters == 0
}

func (r *Rack) Alphabet() *TileMapping {
	return r.alphabet
}

// ScoreOn returns the face value sum of the tiles on this rack.
func (r *Rack) ScoreOn(ld *LetterDistribution) int {
	score := 0
	for i := 1; i < len(r.LetArr); i++ {
		score += ld.Score(MachineLetter(i)) * r.LetArr[i]
	}
	return score
}
