package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/twiby/rsScrabble/board"
	"github.com/twiby/rsScrabble/solver"
	"github.com/twiby/rsScrabble/testhelpers"
	"github.com/twiby/rsScrabble/tilemapping"
)

func TestOneShot(t *testing.T) {
	is := is.New(t)
	wf := solver.New(testhelpers.FrenchSmallKWG(), testhelpers.FrenchDistribution())

	var buf bytes.Buffer
	is.NoErr(oneShot(&buf, wf, "text", "systeme", board.StandardEmpty))
	is.Equal(buf.String(), "8C systeme 104\n")
}

func TestOneShotErrors(t *testing.T) {
	wf := solver.New(testhelpers.FrenchSmallKWG(), testhelpers.FrenchDistribution())
	var buf bytes.Buffer

	err := oneShot(&buf, wf, "text", "abc", board.StandardEmpty[1:])
	assert.ErrorIs(t, err, board.ErrWrongLength)

	err = oneShot(&buf, wf, "text", strings.Repeat("e", 256), board.StandardEmpty)
	assert.ErrorIs(t, err, tilemapping.ErrRackTooLong)

	err = oneShot(&buf, wf, "xml", "abc", board.StandardEmpty)
	assert.Error(t, err)

	// nothing is written for a failed query
	assert.Equal(t, 0, buf.Len())
}
