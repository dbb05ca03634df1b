package tilemapping

import (
	"testing"

	"github.com/matryer/is"
)

func TestToMachineLetters(t *testing.T) {
	is := is.New(t)
	tm := LatinAlphabet()
	mls, err := ToMachineLetters("arbre", tm)
	is.NoErr(err)
	is.Equal(mls, []MachineLetter{1, 18, 2, 18, 5})

	// uppercase letters are blanks
	mls, err = ToMachineLetters("arbRe", tm)
	is.NoErr(err)
	is.Equal(mls, []MachineLetter{1, 18, 2, 18 | 0x80, 5})

	mls, err = ToMachineLetters("te.se", tm)
	is.NoErr(err)
	is.Equal(mls, []MachineLetter{20, 5, 0, 19, 5})

	_, err = ToMachineLetters("été", tm)
	is.True(err != nil)
}

func TestUV(t *testing.T) {
	is := is.New(t)
	tm := LatinAlphabet()

	uv := MachineWord([]MachineLetter{1, 18, 2, 18 | 0x80, 5}).UserVisible(tm)
	is.Equal(uv, "arbRe")

	uv = MachineWord([]MachineLetter{20, 5, 0, 19 | 0x80, 5}).UserVisiblePlayedTiles(tm)
	is.Equal(uv, "te.Se")

	uv = MachineWord([]MachineLetter{0, 1}).UserVisible(tm)
	is.Equal(uv, "0a")
}

func TestBlankRoundTrip(t *testing.T) {
	is := is.New(t)
	for ml := MachineLetter(1); ml <= 26; ml++ {
		b := ml.Blank()
		is.True(b.IsBlanked())
		is.True(!ml.IsBlanked())
		is.Equal(b.Unblank(), ml)
	}
}

func TestReconcile(t *testing.T) {
	is := is.New(t)
	tm := &TileMapping{}
	tm.Init()
	is.NoErr(tm.Reconcile([]string{"c", "a", "b"}))
	is.Equal(tm.Letter(1), 'c')
	is.Equal(tm.Letter(3), 'b')
	is.Equal(tm.NumLetters(), uint8(4))

	is.True(tm.Reconcile([]string{"ab"}) != nil)
}
