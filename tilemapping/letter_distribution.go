package tilemapping

import (
	"bytes"
	"embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/twiby/rsScrabble/config"
)

//go:embed data/*.csv
var builtinDistributions embed.FS

// LetterDistribution encodes the tile distribution and tile values for the
// relevant game. The first row of a distribution file is the blank.
type LetterDistribution struct {
	tilemapping      *TileMapping
	Vowels           []MachineLetter
	distribution     []uint8
	scores           []int
	numUniqueLetters uint
	numLetters       uint
	Name             string
}

// ScanLetterDistribution reads rows of letter,quantity,value,vowel.
func ScanLetterDistribution(data io.Reader) (*LetterDistribution, error) {
	r := csv.NewReader(data)
	r.FieldsPerRecord = 4
	dist := []uint8{}
	ptValues := []int{}
	vowels := []MachineLetter{}
	alph := &TileMapping{}
	alph.Init()
	idx := 0
	letters := []string{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		letter := record[0]
		n, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, err
		}
		p, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, err
		}
		v, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, err
		}
		if v == 1 {
			vowels = append(vowels, MachineLetter(idx))
		}
		dist = append(dist, uint8(n))
		ptValues = append(ptValues, p)
		if idx > 0 {
			letters = append(letters, letter)
		}
		idx++
	}
	if idx < 2 {
		return nil, fmt.Errorf("letter distribution needs a blank row and at least one letter, got %d rows", idx)
	}
	if err := alph.Reconcile(letters); err != nil {
		return nil, err
	}
	return newLetterDistribution(alph, dist, ptValues, vowels), nil
}

func newLetterDistribution(alph *TileMapping, dist []uint8,
	ptValues []int, vowels []MachineLetter) *LetterDistribution {

	numTotalLetters := uint(0)
	numUniqueLetters := uint(len(dist))
	for _, v := range dist {
		numTotalLetters += uint(v)
	}
	// Note: numUniqueLetters/numTotalLetters includes the blank.

	return &LetterDistribution{
		tilemapping:      alph,
		distribution:     dist,
		scores:           ptValues,
		Vowels:           vowels,
		numUniqueLetters: numUniqueLetters,
		numLetters:       numTotalLetters,
	}
}

// Score gives the face value of the given machine letter. A designated
// blank is worth what the blank is worth.
func (ld *LetterDistribution) Score(ml MachineLetter) int {
	if ml.IsBlanked() {
		return ld.scores[0]
	}
	return ld.scores[ml]
}

func (ld *LetterDistribution) TileMapping() *TileMapping {
	return ld.tilemapping
}

// WordScore returns the face value sum of this word.
func (ld *LetterDistribution) WordScore(mw MachineWord) int {
	return mw.Score(ld)
}

func (ld *LetterDistribution) Distribution() []uint8 {
	return ld.distribution
}

func (ld *LetterDistribution) NumTotalLetters() int {
	return int(ld.numLetters)
}

// FrenchLetterDistribution returns the french letter distribution.
func FrenchLetterDistribution(cfg *config.Config) (*LetterDistribution, error) {
	return NamedLetterDistribution(cfg, "french")
}

// EnglishLetterDistribution returns the english letter distribution.
func EnglishLetterDistribution(cfg *config.Config) (*LetterDistribution, error) {
	return NamedLetterDistribution(cfg, "english")
}

// NamedLetterDistribution loads a distribution by name. A <name>.csv file in
// the configured letter-distribution-path wins over the built-in one.
func NamedLetterDistribution(cfg *config.Config, name string) (*LetterDistribution, error) {
	name = strings.ToLower(name)
	var data []byte
	var err error
	if dir := cfg.GetString(config.ConfigLetterDistributionPath); dir != "" {
		fn := filepath.Join(dir, name+".csv")
		data, err = os.ReadFile(fn)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		if err == nil {
			log.Debug().Str("file", fn).Msg("loading letter distribution from file")
		}
	}
	if data == nil {
		data, err = builtinDistributions.ReadFile("data/" + name + ".csv")
		if err != nil {
			return nil, fmt.Errorf("letter distribution %v not found", name)
		}
	}
	ld, err := ScanLetterDistribution(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	ld.Name = name
	return ld, nil
}
