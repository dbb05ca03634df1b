package kwg_test

import (
	"errors"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding/charmap"

	"github.com/twiby/rsScrabble/kwg"
	"github.com/twiby/rsScrabble/testhelpers"
	"github.com/twiby/rsScrabble/tilemapping"
)

func wordSet() map[string]bool {
	set := map[string]bool{}
	for _, w := range testhelpers.FrenchSmallWords() {
		set[w] = true
	}
	return set
}

func TestIsWord(t *testing.T) {
	is := is.New(t)
	k := testhelpers.FrenchSmallKWG()
	is.Equal(k.NumWords(), 170)
	for w := range wordSet() {
		assert.True(t, k.IsWord(w), w)
		assert.True(t, k.IsWord(strings.ToUpper(w)), w)
	}
	for _, w := range []string{"", "a", "arb", "arbr", "arbreq", "zz", "systemess", "b3"} {
		assert.False(t, k.IsWord(w), w)
	}
}

func TestPrefixClosure(t *testing.T) {
	k := testhelpers.FrenchSmallKWG()
	for w := range wordSet() {
		for i := 0; i <= len(w); i++ {
			assert.True(t, k.HasPrefix(w[:i]), "%q of %q", w[:i], w)
		}
	}
	for _, p := range []string{"q", "arbrz", "xy", "systemesx"} {
		assert.False(t, k.HasPrefix(p), p)
	}
}

// Every short string is checked against a plain map.
func TestExhaustiveShortStrings(t *testing.T) {
	k := testhelpers.FrenchSmallKWG()
	set := wordSet()
	prefixes := map[string]bool{}
	for w := range set {
		for i := 1; i <= len(w); i++ {
			prefixes[w[:i]] = true
		}
	}
	var check func(s string)
	check = func(s string) {
		if len(s) > 0 {
			if k.IsWord(s) != set[s] || k.HasPrefix(s) != prefixes[s] {
				t.Errorf("mismatch for %q: word %v prefix %v", s, k.IsWord(s), k.HasPrefix(s))
			}
		}
		if len(s) == 3 {
			return
		}
		for r := 'a'; r <= 'z'; r++ {
			check(s + string(r))
		}
	}
	check("")
}

func TestBlankLettersMatch(t *testing.T) {
	is := is.New(t)
	k := testhelpers.FrenchSmallKWG()
	mw, err := tilemapping.ToMachineWord("arbRe", k.GetAlphabet())
	is.NoErr(err)
	is.True(k.HasWord(mw))
	is.True(k.HasMachinePrefix(mw[:3]))
	is.True(k.HasMachinePrefix(nil))
}

func TestLetterSets(t *testing.T) {
	is := is.New(t)
	k := testhelpers.FrenchSmallKWG()
	tm := k.GetAlphabet()
	node := k.GetRootNodeIndex()
	for _, r := range "ar" {
		ml, _ := tm.Val(r)
		node = k.NextNodeIdx(node, ml)
		is.True(node != 0)
	}
	var expected tilemapping.LetterSet
	for _, r := range "aet" {
		ml, _ := tm.Val(r)
		expected |= 1 << ml
		is.True(k.InLetterSet(ml, node))
	}
	is.Equal(k.GetLetterSet(node), expected)

	var letters []rune
	k.IterateSiblings(node, func(ml tilemapping.MachineLetter, nnidx uint32, accepts bool) {
		letters = append(letters, tm.Letter(ml))
	})
	is.Equal(string(letters), "abet")

	// nothing follows a dead end
	is.Equal(k.GetLetterSet(0), tilemapping.LetterSet(0))
	is.Equal(k.NextNodeIdx(0, 1), uint32(0))
}

func TestMinimized(t *testing.T) {
	is := is.New(t)
	k := testhelpers.FrenchSmallKWG()
	total := 0
	for w := range wordSet() {
		total += len(w)
	}
	// shared suffixes (-s, -es, -re) collapse: 164 arcs plus the root entry.
	is.True(k.NumNodes() < total/2)
	is.Equal(k.NumNodes(), 165)
}

func TestChecksum(t *testing.T) {
	is := is.New(t)
	tm := tilemapping.LatinAlphabet()
	a, err := kwg.FromWords("a", []string{"bar", "arbre", "bar"}, tm)
	is.NoErr(err)
	b, err := kwg.FromWords("b", []string{"ARBRE", "bar"}, tm)
	is.NoErr(err)
	c, err := kwg.FromWords("c", []string{"arbre", "bars"}, tm)
	is.NoErr(err)
	is.Equal(a.NumWords(), 2)
	is.Equal(a.Checksum(), b.Checksum())
	is.True(a.Checksum() != c.Checksum())
}

func TestLoadFromFile(t *testing.T) {
	is := is.New(t)
	tm := tilemapping.LatinAlphabet()
	fn := testhelpers.WriteWordList(t, "mixed.txt",
		[]byte("Été 12\nfenêtre\nx\nŒuf\nca1\n\n  garçon  \n"))
	k, err := kwg.LoadFromFile(fn, tm)
	is.NoErr(err)
	is.Equal(k.LexiconName(), "mixed")
	is.Equal(k.NumWords(), 4)
	for _, w := range []string{"ete", "fenetre", "oeuf", "garcon"} {
		is.True(k.IsWord(w))
	}
	is.True(!k.IsWord("x"))
}

func TestLoadLatin1(t *testing.T) {
	is := is.New(t)
	enc, err := charmap.ISO8859_1.NewEncoder().String("élève\nfenêtre\n")
	is.NoErr(err)
	fn := testhelpers.WriteWordList(t, "latin1.txt", []byte(enc))
	k, err := kwg.LoadFromFile(fn, tilemapping.LatinAlphabet())
	is.NoErr(err)
	is.True(k.IsWord("eleve"))
	is.True(k.IsWord("fenetre"))
}

func TestLoadErrors(t *testing.T) {
	is := is.New(t)
	tm := tilemapping.LatinAlphabet()
	var lerr *kwg.LoadError

	_, err := kwg.LoadFromFile("/nonexistent/words.txt", tm)
	is.True(errors.As(err, &lerr))
	is.Equal(lerr.Path, "/nonexistent/words.txt")
	is.True(errors.Is(err, os.ErrNotExist))

	fn := testhelpers.WriteWordList(t, "empty.txt", nil)
	_, err = kwg.LoadFromFile(fn, tm)
	is.True(errors.As(err, &lerr))
	is.True(errors.Is(err, kwg.ErrNoWords))

	fn = testhelpers.WriteWordList(t, "junk.txt", []byte("a\n1234\n"))
	_, err = kwg.LoadFromFile(fn, tm)
	is.True(errors.Is(err, kwg.ErrNoWords))
}

func TestGetShares(t *testing.T) {
	is := is.New(t)
	fn := testhelpers.FrenchSmallFile(t)
	k1, err := kwg.Get(testhelpers.DefaultConfig, fn)
	is.NoErr(err)
	k2, err := kwg.Get(testhelpers.DefaultConfig, fn)
	is.NoErr(err)
	is.True(k1 == k2)
	is.Equal(k1.Checksum(), testhelpers.FrenchSmallKWG().Checksum())

	_, err = kwg.Get(testhelpers.DefaultConfig, fn+".missing")
	var lerr *kwg.LoadError
	is.True(errors.As(err, &lerr))
}

func TestConcurrentReads(t *testing.T) {
	k := testhelpers.FrenchSmallKWG()
	words := testhelpers.FrenchSmallWords()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, w := range words {
				if !k.IsWord(w) || !k.HasPrefix(w[:1]) {
					t.Errorf("lookup failed for %q", w)
				}
			}
		}()
	}
	wg.Wait()
}
