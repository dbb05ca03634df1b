package kwg

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/twiby/rsScrabble/tilemapping"
)

// LoadError is returned when a word list cannot produce a dictionary.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load word list %v: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

var ligatures = strings.NewReplacer("œ", "oe", "æ", "ae", "ß", "ss")

// newNormalizer lowercases, then strips diacritics: é -> e, ç -> c.
// Transformers keep state, so each load gets its own.
func newNormalizer() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// NormalizeWord returns word as it is stored in a dictionary.
func NormalizeWord(t transform.Transformer, word string) string {
	word = ligatures.Replace(strings.ToLower(word))
	out, _, err := transform.String(t, word)
	if err != nil {
		return word
	}
	return out
}

// FromWords builds a KWG from user-visible words. Words are normalized;
// words shorter than two letters or with letters outside the alphabet are
// skipped.
func FromWords(name string, words []string, tm *tilemapping.TileMapping) (*KWG, error) {
	t := newNormalizer()
	mws := make([]tilemapping.MachineWord, 0, len(words))
	skipped := 0
	for _, w := range words {
		w = NormalizeWord(t, w)
		if utf8.RuneCountInString(w) < 2 {
			skipped++
			continue
		}
		mw, err := tilemapping.ToMachineWord(w, tm)
		if err != nil || !allLetters(mw) {
			skipped++
			continue
		}
		mws = append(mws, mw)
	}
	if skipped > 0 {
		log.Debug().Str("lexicon", name).Int("skipped", skipped).Msg("skipped-invalid-words")
	}
	return Build(name, mws, tm)
}

func allLetters(mw tilemapping.MachineWord) bool {
	for _, ml := range mw {
		if ml == 0 || ml.IsBlanked() {
			return false
		}
	}
	return true
}

// ScanWords splits a newline-delimited word list, keeping the first field
// of each line. Input that is not valid UTF-8 is read as ISO-8859-1.
func ScanWords(data []byte) ([]string, error) {
	if !utf8.Valid(data) {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return nil, err
		}
		data = decoded
	}
	words := []string{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) > 0 {
			words = append(words, fields[0])
		}
	}
	return words, scanner.Err()
}

// LoadFromFile builds a KWG from a newline-delimited word list. Any failure
// is a *LoadError.
func LoadFromFile(filename string, tm *tilemapping.TileMapping) (*KWG, error) {
	log.Debug().Msgf("Loading %v ...", filename)
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, &LoadError{Path: filename, Err: err}
	}
	words, err := ScanWords(data)
	if err != nil {
		return nil, &LoadError{Path: filename, Err: err}
	}
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	k, err := FromWords(name, words, tm)
	if err != nil {
		return nil, &LoadError{Path: filename, Err: err}
	}
	log.Info().Str("lexicon", name).Int("words", k.NumWords()).
		Str("checksum", fmt.Sprintf("%016x", k.Checksum())).Msg("loaded-word-list")
	return k, nil
}
