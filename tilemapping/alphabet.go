package tilemapping

import (
	"errors"
	"fmt"
	"sort"
	"unicode"

	"github.com/rs/zerolog/log"
)

// A "letter" or tile is internally represented by a byte.
// The 0 value is used to represent various things:
// - an empty square on the board
// - a blank on your rack
// - a "played-through" letter on the board, when used in the description of a play.
// The letter a is represented by 1, b by 2, ... all the way to 26 for the
// french alphabet.
// A designated blank is the same letter with the high bit set (0x80 | ml).
const (
	// MaxAlphabetSize should be below 64 so that a letterset can be a 64-bit int.
	MaxAlphabetSize = 62
	// ASCIIPlayedThrough is a somewhat user-friendly representation of a
	// played-through letter, used mostly for debug purposes.
	ASCIIPlayedThrough = '.'
	// BlankToken is the user-friendly representation of a blank on a rack.
	BlankToken = '0'
	// AltBlankToken is also accepted as a blank on a rack.
	AltBlankToken = '?'
)

const (
	BlankMask   = 0x80
	UnblankMask = (0x80 - 1)
)

var ErrAlphabetTooLarge = errors.New("exceeded max alphabet size")

// LetterSet is a bit mask of acceptable letters, with indices from 0 to
// the maximum alphabet size.
type LetterSet uint64

// MachineLetter is a machine-only representation of a letter.
type MachineLetter byte

type MachineWord []MachineLetter

// LetterSlice is a slice of runes. We make it a separate type for ease in
// defining sort functions on it.
type LetterSlice []rune

// A TileMapping maps a user-visible rune, like the letter b, into its
// MachineLetter counterpart, and back. Letters are lowercase; an uppercase
// letter is the same letter played with a blank.
type TileMapping struct {
	vals    map[rune]MachineLetter
	letters map[MachineLetter]rune

	letterSlice LetterSlice
}

// Init initializes the alphabet data structures
func (rm *TileMapping) Init() {
	rm.vals = make(map[rune]MachineLetter)
	rm.letters = make(map[MachineLetter]rune)
}

// Letter returns the letter that this position in the alphabet corresponds to.
func (rm *TileMapping) Letter(b MachineLetter) rune {
	if b == 0 {
		return BlankToken
	}
	if b.IsBlanked() {
		return unicode.ToUpper(rm.letters[b.Unblank()])
	}
	return rm.letters[b]
}

// Val returns the 'value' of this rune in the alphabet.
// Uppercase letters are returned as designated blanks.
func (rm *TileMapping) Val(r rune) (MachineLetter, error) {
	if r == BlankToken || r == AltBlankToken || r == ASCIIPlayedThrough {
		return 0, nil
	}
	val, ok := rm.vals[r]
	if ok {
		return val, nil
	}
	if unicode.IsUpper(r) {
		val, ok = rm.vals[unicode.ToLower(r)]
		if ok {
			return val.Blank(), nil
		}
	}
	return 0, fmt.Errorf("letter `%c` not found in alphabet", r)
}

// HasLetter returns true if r is a plain letter of this alphabet.
func (rm *TileMapping) HasLetter(r rune) bool {
	_, ok := rm.vals[r]
	return ok
}

// UserVisible turns the passed-in machine letter into a user-visible rune.
func (ml MachineLetter) UserVisible(rm *TileMapping, zeroForPlayedThrough bool) rune {
	if ml == 0 {
		if zeroForPlayedThrough {
			return ASCIIPlayedThrough
		}
		return BlankToken
	}
	return rm.Letter(ml)
}

// Blank turns the machine letter into its blank version
func (ml MachineLetter) Blank() MachineLetter {
	return ml | BlankMask
}

// Unblank turns the machine letter into its non-blank version (if it's a blanked letter)
func (ml MachineLetter) Unblank() MachineLetter {
	return ml & UnblankMask
}

// IsBlanked returns true if the machine letter is a designated blank letter.
func (ml MachineLetter) IsBlanked() bool {
	return ml&BlankMask > 0
}

// IsPlayedTile returns true if this represents a tile that was actually
// placed: an assigned blank or a letter, not a played-through marker.
func (ml MachineLetter) IsPlayedTile() bool {
	return ml != 0
}

// UserVisible turns the passed-in machine word into a user-visible string.
func (mw MachineWord) UserVisible(rm *TileMapping) string {
	runes := make([]rune, len(mw))
	for i, l := range mw {
		runes[i] = l.UserVisible(rm, false)
	}
	return string(runes)
}

// UserVisiblePlayedTiles turns the passed-in machine word into a user-visible string.
// It assumes that the MachineWord represents played tiles and not just
// tiles on a rack, so it uses the PlayedThrough character for 0.
func (mw MachineWord) UserVisiblePlayedTiles(rm *TileMapping) string {
	runes := make([]rune, len(mw))
	for i, l := range mw {
		runes[i] = l.UserVisible(rm, true)
	}
	return string(runes)
}

// Unblanked returns a copy of the word with every blank designation removed.
func (mw MachineWord) Unblanked() MachineWord {
	ret := make(MachineWord, len(mw))
	for i, l := range mw {
		ret[i] = l.Unblank()
	}
	return ret
}

// Score returns the score of this word given the ld.
func (mw MachineWord) Score(ld *LetterDistribution) int {
	score := 0
	for _, c := range mw {
		score += ld.Score(c)
	}
	return score
}

// NumLetters returns the number of machine letters in this alphabet,
// counting the blank at index 0.
func (rm *TileMapping) NumLetters() uint8 {
	return uint8(len(rm.letters) + 1)
}

func ToMachineWord(word string, tm *TileMapping) (MachineWord, error) {
	mls, err := ToMachineLetters(word, tm)
	if err != nil {
		return nil, err
	}
	return MachineWord(mls), nil
}

// ToMachineLetters creates an array of MachineLetters from the given string.
func ToMachineLetters(word string, rm *TileMapping) ([]MachineLetter, error) {
	letters := make([]MachineLetter, 0, len(word))
	for _, ch := range word {
		ml, err := rm.Val(ch)
		if err != nil {
			return nil, err
		}
		letters = append(letters, ml)
	}
	return letters, nil
}

// Reconcile takes the ordered glyphs of an alphabet and numbers them from 1.
func (rm *TileMapping) Reconcile(letters []string) error {
	if len(letters) > MaxAlphabetSize {
		return ErrAlphabetTooLarge
	}
	sortMap := make(map[rune]int)
	for idx, letter := range letters {
		rn := []rune(letter)
		if len(rn) != 1 {
			return fmt.Errorf("letter %q must be a single rune", letter)
		}
		sortMap[rn[0]] = idx
		rm.vals[rn[0]] = 0
	}
	rm.genLetterSlice(sortMap)
	return nil
}

func (rm *TileMapping) genLetterSlice(sortMap map[rune]int) {
	rm.letterSlice = []rune{}
	for rn := range rm.vals {
		rm.letterSlice = append(rm.letterSlice, rn)
	}
	if sortMap != nil {
		sort.Slice(rm.letterSlice, func(i, j int) bool {
			return sortMap[rm.letterSlice[i]] < sortMap[rm.letterSlice[j]]
		})
	} else {
		sort.Sort(rm.letterSlice)
	}
	for idx, rn := range rm.letterSlice {
		rm.vals[rn] = MachineLetter(idx + 1)
		rm.letters[MachineLetter(idx+1)] = rn
	}
	log.Debug().Str("letters", string(rm.letterSlice)).Msg("tilemapping-reconciled")
}

// FromSlice creates an alphabet from an ordered list of runes. The first
// rune gets machine letter 1.
func FromSlice(arr []rune) *TileMapping {
	rm := &TileMapping{}
	rm.Init()
	for i, r := range arr {
		rm.vals[r] = MachineLetter(i + 1)
		rm.letters[MachineLetter(i+1)] = r
	}
	rm.letterSlice = append(LetterSlice{}, arr...)
	return rm
}

// LatinAlphabet returns the 26-letter lowercase alphabet shared by the
// french and english distributions.
func LatinAlphabet() *TileMapping {
	letters := make([]rune, 0, 26)
	for r := 'a'; r <= 'z'; r++ {
		letters = append(letters, r)
	}
	return FromSlice(letters)
}

func (a LetterSlice) Len() int           { return len(a) }
func (a LetterSlice) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a LetterSlice) Less(i, j int) bool { return a[i] < a[j] }
