package movegen

import (
	"github.com/twiby/rsScrabble/move"
	"github.com/twiby/rsScrabble/tilemapping"
)

// A PlayRecorderFunc is called for every legal placement. The play is in
// gen.strip[leftstrip:rightstrip+1] on the current row.
type PlayRecorderFunc func(gen *GordonGenerator, rack *tilemapping.Rack, leftstrip, rightstrip int, score int)

// NullPlayRecorder records nothing; NumCandidates still counts every
// placement.
func NullPlayRecorder(gen *GordonGenerator, rack *tilemapping.Rack, leftstrip, rightstrip int, score int) {
}

// AllPlaysRecorder keeps every play.
func AllPlaysRecorder(gen *GordonGenerator, rack *tilemapping.Rack, leftstrip, rightstrip int, score int) {
	gen.plays = append(gen.plays, gen.playFromStrip(rack, leftstrip, rightstrip, score))
}

// TopPlayOnlyRecorder only records the very top move. A play replaces the
// current winner only if it scores strictly more, so on a tie the play
// generated first stays. Moves are only allocated for a new winner.
func TopPlayOnlyRecorder(gen *GordonGenerator, rack *tilemapping.Rack, leftstrip, rightstrip int, score int) {
	if gen.winner != nil && score <= gen.winner.Score() {
		return
	}
	gen.winner = gen.playFromStrip(rack, leftstrip, rightstrip, score)
	if len(gen.plays) == 0 {
		gen.plays = append(gen.plays, gen.winner)
	} else {
		gen.plays[0] = gen.winner
	}
}

// BestPlay returns the best play recorded by the last generation, or a
// no-play move holding the whole rack when there was none.
func (gen *GordonGenerator) BestPlay(rack *tilemapping.Rack) *move.Move {
	best := Best(gen.plays)
	if best == nil {
		return move.NewNoPlayMove(rack.TilesOn(), gen.letterDistribution.TileMapping())
	}
	return best
}

// Best returns the highest scoring play, the earliest one on a tie, or nil
// for no plays.
func Best(plays []*move.Move) *move.Move {
	var best *move.Move
	for _, p := range plays {
		if p.Action() != move.MoveTypePlay {
			continue
		}
		if best == nil || p.Score() > best.Score() {
			best = p
		}
	}
	return best
}
