// Package testhelpers holds fixtures shared by the tests of several packages.
package testhelpers

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/twiby/rsScrabble/config"
	"github.com/twiby/rsScrabble/kwg"
	"github.com/twiby/rsScrabble/tilemapping"
)

//go:embed data/french_small.txt
var frenchSmall string

var DefaultConfig = config.DefaultConfig()

var (
	smallOnce sync.Once
	smallKWG  *kwg.KWG
	smallErr  error
)

// FrenchDistribution returns the built-in french letter distribution.
func FrenchDistribution() *tilemapping.LetterDistribution {
	ld, err := tilemapping.FrenchLetterDistribution(DefaultConfig)
	if err != nil {
		panic(err)
	}
	return ld
}

// FrenchSmallWords returns the words of the small french test list, in file
// order. The list has one duplicate.
func FrenchSmallWords() []string {
	return strings.Fields(frenchSmall)
}

// FrenchSmallKWG returns a shared dictionary built from the small french list.
func FrenchSmallKWG() *kwg.KWG {
	smallOnce.Do(func() {
		smallKWG, smallErr = kwg.FromWords("french_small", FrenchSmallWords(),
			FrenchDistribution().TileMapping())
	})
	if smallErr != nil {
		panic(smallErr)
	}
	return smallKWG
}

// WriteWordList writes contents to a file in a temporary directory and
// returns its path.
func WriteWordList(t testing.TB, name string, contents []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, contents, 0o644); err != nil {
		t.Fatal(err)
	}
	return fn
}

// FrenchSmallFile writes the small french list to a temporary file.
func FrenchSmallFile(t testing.TB) string {
	return WriteWordList(t, "french_small.txt", []byte(frenchSmall))
}
