// Package solver finds the best play for a rack on an encoded board.
package solver

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/twiby/rsScrabble/board"
	"github.com/twiby/rsScrabble/config"
	"github.com/twiby/rsScrabble/cross_set"
	"github.com/twiby/rsScrabble/kwg"
	"github.com/twiby/rsScrabble/move"
	"github.com/twiby/rsScrabble/movegen"
	"github.com/twiby/rsScrabble/tilemapping"
)

// WordFinder holds a dictionary and answers best-play queries. It keeps no
// state between queries and is safe for concurrent use.
type WordFinder struct {
	lexicon    *kwg.KWG
	ld         *tilemapping.LetterDistribution
	bingoBonus int
	parallel   bool
	dim        int
}

type Option func(*WordFinder)

// WithBingoBonus sets the bonus for a play that uses every tile of the rack.
func WithBingoBonus(bonus int) Option {
	return func(wf *WordFinder) { wf.bingoBonus = bonus }
}

// WithParallel searches horizontal and vertical plays concurrently.
func WithParallel(parallel bool) Option {
	return func(wf *WordFinder) { wf.parallel = parallel }
}

// WithDim sets the board dimension of the encoded boards. The default is
// the standard 15.
func WithDim(dim int) Option {
	return func(wf *WordFinder) { wf.dim = dim }
}

func New(lex *kwg.KWG, ld *tilemapping.LetterDistribution, opts ...Option) *WordFinder {
	wf := &WordFinder{
		lexicon:    lex,
		ld:         ld,
		bingoBonus: movegen.DefaultBingoBonus,
		dim:        board.DefaultDim,
	}
	for _, opt := range opts {
		opt(wf)
	}
	return wf
}

// NewFromConfig loads the configured word list and letter distribution. The
// word list is shared with every other WordFinder of the process that uses
// the same file.
func NewFromConfig(cfg *config.Config) (*WordFinder, error) {
	ld, err := tilemapping.NamedLetterDistribution(cfg, cfg.GetString(config.ConfigLetterDistribution))
	if err != nil {
		return nil, err
	}
	lex, err := kwg.Get(cfg, cfg.GetString(config.ConfigWordList))
	if err != nil {
		return nil, err
	}
	return New(lex, ld,
		WithBingoBonus(cfg.GetInt(config.ConfigBingoBonus)),
		WithParallel(cfg.GetBool(config.ConfigParallel))), nil
}

// NewFromFile builds the dictionary from a newline-delimited word list. It
// fails with a *kwg.LoadError.
func NewFromFile(path string, ld *tilemapping.LetterDistribution, opts ...Option) (*WordFinder, error) {
	lex, err := kwg.LoadFromFile(path, ld.TileMapping())
	if err != nil {
		return nil, err
	}
	return New(lex, ld, opts...), nil
}

func (wf *WordFinder) Lexicon() *kwg.KWG {
	return wf.lexicon
}

func (wf *WordFinder) LetterDistribution() *tilemapping.LetterDistribution {
	return wf.ld
}

// IsWord returns true if word is in the dictionary. Case is ignored.
func (wf *WordFinder) IsWord(word string) bool {
	return wf.lexicon.IsWord(word)
}

// HasPrefix returns true if some word of the dictionary starts with prefix.
func (wf *WordFinder) HasPrefix(prefix string) bool {
	return wf.lexicon.HasPrefix(prefix)
}

// DecodeBoard reads an encoded board. It fails with a *board.FormatError.
func (wf *WordFinder) DecodeBoard(boardMsg string) (*board.GameBoard, error) {
	return board.DecodeDim(boardMsg, wf.dim, wf.ld.TileMapping())
}

// GetBestPlay returns the highest scoring play of rack on the encoded
// board. Between plays of equal score, horizontal plays come first, then
// plays from anchors nearer the top left. When nothing can be played the
// result is a move of type move.MoveTypeNoPlay. Malformed input fails with
// a *board.FormatError or a *tilemapping.InvalidRackError before any search.
func (wf *WordFinder) GetBestPlay(rack string, boardMsg string) (*move.Move, error) {
	b, err := wf.DecodeBoard(boardMsg)
	if err != nil {
		return nil, err
	}
	rk, err := tilemapping.ParseRack(rack, wf.ld.TileMapping())
	if err != nil {
		return nil, err
	}
	return wf.BestPlay(rk, b), nil
}

// BestPlay is GetBestPlay for a decoded rack and board. b must be
// untransposed. It is transposed and back while cross sets are computed, so
// it must not be shared with another goroutine meanwhile.
func (wf *WordFinder) BestPlay(rk *tilemapping.Rack, b *board.GameBoard) *move.Move {
	start := time.Now()
	noPlay := move.NewNoPlayMove(rk.TilesOn(), wf.ld.TileMapping())
	if rk.Empty() {
		return noPlay
	}
	cs := cross_set.MakeBoardCrossSets(b)
	cross_set.GenAllCrossSets(b, cs, wf.lexicon, wf.ld)
	scorer := movegen.NewScorer(wf.ld, wf.bingoBonus)

	var best *move.Move
	var candidates int
	if wf.parallel {
		best, candidates = wf.bestByOrientation(rk, b, cs, scorer)
	} else {
		wb := b.Copy()
		gen := movegen.NewGordonGenerator(wf.lexicon, wb, cs.BindTo(wb), wf.ld, scorer)
		gen.SetPlayRecorder(movegen.TopPlayOnlyRecorder)
		gen.GenAll(rk.Copy())
		best, candidates = movegen.Best(gen.Plays()), gen.NumCandidates()
	}
	if best == nil {
		best = noPlay
	}
	log.Debug().Str("rack", rk.String()).Int("candidates", candidates).
		Str("best", best.ShortDescription()).Int("score", best.Score()).
		Dur("elapsed", time.Since(start)).Msg("best-play")
	return best
}

// bestByOrientation runs one generator per orientation, each on its own copy
// of the board, and merges their winners. Horizontal wins a tie, as it
// does when both orientations run in sequence.
func (wf *WordFinder) bestByOrientation(rk *tilemapping.Rack, b *board.GameBoard,
	cs *cross_set.BoardCrossSets, scorer *movegen.Scorer) (*move.Move, int) {

	dirs := []board.BoardDirection{board.HorizontalDirection, board.VerticalDirection}
	winners := make([]*move.Move, len(dirs))
	candidates := make([]int, len(dirs))

	var g errgroup.Group
	for i, dir := range dirs {
		wb := b.Copy()
		wrk := rk.Copy()
		g.Go(func() error {
			gen := movegen.NewGordonGenerator(wf.lexicon, wb, cs.BindTo(wb), wf.ld, scorer)
			gen.SetPlayRecorder(movegen.TopPlayOnlyRecorder)
			gen.GenByOrientation(wrk, dir)
			winners[i] = movegen.Best(gen.Plays())
			candidates[i] = gen.NumCandidates()
			return nil
		})
	}
	_ = g.Wait()

	best := lo.MaxBy(lo.Compact(winners), func(a, b *move.Move) bool {
		return a.Score() > b.Score()
	})
	return best, lo.Sum(candidates)
}
