package kwg

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"

	"github.com/twiby/rsScrabble/tilemapping"
)

const (
	MaxDepth      = 35
	LetterBuckets = 997
)

var (
	ErrNoWords       = errors.New("no valid words")
	ErrGraphTooLarge = errors.New("word graph does not fit in 22-bit arc indexes")
)

// node is a temporary type used while building the graph.
type node struct {
	arcs    []*arc
	accepts bool
	// Utility fields for minimizing at the end:
	visited   bool
	copyOf    *node
	depth     uint8
	letterSum uint32
}

type arc struct {
	letter      tilemapping.MachineLetter
	destination *node
}

type arcPtrSlice []*arc

func (a arcPtrSlice) Len() int           { return len(a) }
func (a arcPtrSlice) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a arcPtrSlice) Less(i, j int) bool { return a[i].letter < a[j].letter }

type builder struct {
	root      *node
	numStates int
	numArcs   int
}

func (b *builder) createNode() *node {
	b.numStates++
	return &node{}
}

func (n *node) containsArc(ml tilemapping.MachineLetter) *arc {
	for _, a := range n.arcs {
		if a.letter == ml {
			return a
		}
	}
	return nil
}

// addArc returns the node reached from n by ml, creating it if needed.
func (n *node) addArc(ml tilemapping.MachineLetter, b *builder) *node {
	if existing := n.containsArc(ml); existing != nil {
		return existing.destination
	}
	next := b.createNode()
	n.arcs = append(n.arcs, &arc{letter: ml, destination: next})
	b.numArcs++
	return next
}

func (b *builder) addWord(word tilemapping.MachineWord) {
	st := b.root
	for _, ml := range word {
		st = st.addArc(ml, b)
	}
	st.accepts = true
}

// Build makes a KWG out of already-converted words. Words are deduplicated;
// blanks are read as the letter they stand for.
func Build(name string, words []tilemapping.MachineWord, tm *tilemapping.TileMapping) (*KWG, error) {
	sorted := make([]tilemapping.MachineWord, 0, len(words))
	for _, w := range words {
		if len(w) == 0 {
			continue
		}
		sorted = append(sorted, w.Unblanked())
	}
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(toBytes(sorted[i]), toBytes(sorted[j])) < 0
	})

	b := &builder{}
	b.root = b.createNode()
	digest := xxhash.New()
	numWords := 0
	for i, w := range sorted {
		if i > 0 && bytes.Equal(toBytes(w), toBytes(sorted[i-1])) {
			continue
		}
		b.addWord(w)
		digest.Write(toBytes(w))
		digest.Write([]byte{'\n'})
		numWords++
	}
	if numWords == 0 {
		return nil, ErrNoWords
	}
	b.sortArcs()
	b.minimize()
	nodes, err := b.serialize()
	if err != nil {
		return nil, err
	}
	log.Debug().Str("lexicon", name).Int("words", numWords).Int("num-nodes", len(nodes)).
		Msg("built-kwg")
	return &KWG{
		nodes:       nodes,
		alphabet:    tm,
		lexiconName: name,
		numWords:    numWords,
		checksum:    digest.Sum64(),
	}, nil
}

func toBytes(mw tilemapping.MachineWord) []byte {
	bts := make([]byte, len(mw))
	for i, l := range mw {
		bts[i] = byte(l)
	}
	return bts
}

type nodeTraversalFn func(*node)

func traverseTreeAndExecute(n *node, fn nodeTraversalFn) {
	fn(n)
	for _, a := range n.arcs {
		traverseTreeAndExecute(a.destination, fn)
	}
}

func (b *builder) sortArcs() {
	traverseTreeAndExecute(b.root, func(n *node) {
		sort.Sort(arcPtrSlice(n.arcs))
	})
}

// minimize merges equivalent nodes. Two nodes are the same if they accept
// the same way and have the same arc letters leading to the same nodes.
// Nodes are bucketed by depth and letter sum, and buckets are visited from
// the leaves up so that children are already merged when their parents are
// compared.
func (b *builder) minimize() {
	calculateDepth(b.root)
	calculateSums(b.root)
	bucket := make([][][]*node, MaxDepth)
	for i := range bucket {
		bucket[i] = make([][]*node, LetterBuckets)
	}
	traverseTreeAndExecute(b.root, func(n *node) {
		if n.visited {
			return
		}
		n.visited = true
		d := int(n.depth) - 1
		if d >= MaxDepth {
			// too deep to bucket; these nodes are never merged.
			return
		}
		key := n.letterSum % LetterBuckets
		bucket[d][key] = append(bucket[d][key], n)
	})
	for i := 0; i < MaxDepth; i++ {
		for j := 0; j < LetterBuckets; j++ {
			narr := bucket[i][j]
			if len(narr) < 2 {
				continue
			}
			for idx1, n1 := range narr[:len(narr)-1] {
				if n1.copyOf != nil {
					continue
				}
				for _, n2 := range narr[idx1+1:] {
					if n2.copyOf == nil && n1.equals(n2) {
						n2.copyOf = n1
					}
				}
			}
		}
	}
	states := 0
	seen := make(map[*node]bool)
	traverseTreeAndExecute(b.root, func(n *node) {
		for _, a := range n.arcs {
			if a.destination.copyOf != nil {
				a.destination = a.destination.copyOf
			}
		}
		if !seen[n] {
			seen[n] = true
			states++
		}
	})
	log.Debug().Int("before", b.numStates).Int("after", states).Msg("minimized")
	b.numStates = states
}

func (n *node) canonical() *node {
	if n.copyOf != nil {
		return n.copyOf
	}
	return n
}

func (n *node) equals(other *node) bool {
	if n.accepts != other.accepts || len(n.arcs) != len(other.arcs) ||
		n.letterSum != other.letterSum || n.depth != other.depth {
		return false
	}
	for idx, a1 := range n.arcs {
		a2 := other.arcs[idx]
		if a1.letter != a2.letter {
			return false
		}
		if a1.destination.canonical() != a2.destination.canonical() {
			return false
		}
	}
	return true
}

func calculateDepth(n *node) uint8 {
	maxDepth := uint8(0)
	for _, a := range n.arcs {
		if d := calculateDepth(a.destination); d > maxDepth {
			maxDepth = d
		}
	}
	n.depth = 1 + maxDepth
	return n.depth
}

func calculateSums(n *node) uint32 {
	sum := uint32(0)
	for _, a := range n.arcs {
		sum += uint32(a.letter) + calculateSums(a.destination)
	}
	n.letterSum = sum
	return sum
}

// serialize lays out the arcs of every distinct node contiguously,
// breadth-first from the root.
func (b *builder) serialize() ([]uint32, error) {
	nodes := []uint32{0}
	blockIdx := make(map[*node]uint32)
	queue := []*node{}
	assign := func(n *node) uint32 {
		if len(n.arcs) == 0 {
			return 0
		}
		if idx, ok := blockIdx[n]; ok {
			return idx
		}
		idx := uint32(len(nodes))
		blockIdx[n] = idx
		nodes = append(nodes, make([]uint32, len(n.arcs))...)
		queue = append(queue, n)
		return idx
	}
	rootIdx := assign(b.root)
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		base := blockIdx[n]
		for i, a := range n.arcs {
			ci := assign(a.destination)
			entry := uint32(a.letter)<<tileShift | ci
			if a.destination.accepts {
				entry |= acceptsBit
			}
			if i == len(n.arcs)-1 {
				entry |= isEndBit
			}
			nodes[base+uint32(i)] = entry
		}
		if len(nodes) > arcIndexMask {
			return nil, fmt.Errorf("%w: %d entries", ErrGraphTooLarge, len(nodes))
		}
	}
	nodes[0] = rootIdx | isEndBit
	return nodes, nil
}
