package kwg

import (
	"strings"

	"github.com/twiby/rsScrabble/tilemapping"
)

const (
	acceptsBit   = 0x800000
	isEndBit     = 0x400000
	arcIndexMask = 0x3fffff
	tileShift    = 24
)

// A KWG is a Kurnia Word Graph: a minimized word graph flattened into a
// slice of 32-bit entries. Each entry is one arc:
//
//	tile<<24 | accepts | isEnd | arcIndex
//
// Arcs leaving the same node are stored contiguously; the last one has the
// isEnd bit. arcIndex points at the first arc of the destination node, or
// is 0 when the destination has no outgoing arcs. Entry 0 only holds the
// index of the root's arcs.
// More details: https://github.com/andy-k/wolges/blob/main/details.txt
//
// A KWG is never modified after it is built and can be shared between
// goroutines.
type KWG struct {
	nodes       []uint32
	alphabet    *tilemapping.TileMapping
	lexiconName string
	numWords    int
	checksum    uint64
}

func (k *KWG) GetRootNodeIndex() uint32 {
	return k.ArcIndex(0)
}

func (k *KWG) GetAlphabet() *tilemapping.TileMapping {
	return k.alphabet
}

func (k *KWG) LexiconName() string {
	return k.lexiconName
}

// NumWords is the number of distinct words in the graph.
func (k *KWG) NumWords() int {
	return k.numWords
}

// NumNodes is the number of entries in the flat arc array.
func (k *KWG) NumNodes() int {
	return len(k.nodes)
}

// Checksum identifies the word list the graph was built from.
func (k *KWG) Checksum() uint64 {
	return k.checksum
}

// FindArc returns the entry of the arc labeled letter among the arcs
// starting at nodeIdx.
func (k *KWG) FindArc(nodeIdx uint32, letter tilemapping.MachineLetter) (uint32, bool) {
	if nodeIdx == 0 {
		return 0, false
	}
	letter = letter.Unblank()
	for i := nodeIdx; ; i++ {
		if k.Tile(i) == uint8(letter) {
			return i, true
		}
		if k.IsEnd(i) {
			return 0, false
		}
	}
}

// NextNodeIdx follows the arc labeled letter. It returns 0 both when there
// is no such arc and when the arc leads to a node without arcs.
func (k *KWG) NextNodeIdx(nodeIdx uint32, letter tilemapping.MachineLetter) uint32 {
	i, ok := k.FindArc(nodeIdx, letter)
	if !ok {
		return 0
	}
	return k.ArcIndex(i)
}

// InLetterSet returns true if following letter from nodeIdx completes a word.
func (k *KWG) InLetterSet(letter tilemapping.MachineLetter, nodeIdx uint32) bool {
	i, ok := k.FindArc(nodeIdx, letter)
	return ok && k.Accepts(i)
}

// GetLetterSet returns the letters that complete a word from nodeIdx.
func (k *KWG) GetLetterSet(nodeIdx uint32) tilemapping.LetterSet {
	var ls tilemapping.LetterSet
	if nodeIdx == 0 {
		return ls
	}
	for i := nodeIdx; ; i++ {
		if k.Accepts(i) {
			ls |= (1 << k.Tile(i))
		}
		if k.IsEnd(i) {
			break
		}
	}
	return ls
}

func (k *KWG) IsEnd(nodeIdx uint32) bool {
	return k.nodes[nodeIdx]&isEndBit != 0
}

func (k *KWG) Accepts(nodeIdx uint32) bool {
	return k.nodes[nodeIdx]&acceptsBit != 0
}

func (k *KWG) ArcIndex(nodeIdx uint32) uint32 {
	return k.nodes[nodeIdx] & arcIndexMask
}

func (k *KWG) Tile(nodeIdx uint32) uint8 {
	return uint8(k.nodes[nodeIdx] >> tileShift)
}

// IterateSiblings calls cb for each arc starting at nodeIdx, in ascending
// letter order.
func (k *KWG) IterateSiblings(nodeIdx uint32, cb func(ml tilemapping.MachineLetter, nnidx uint32, accepts bool)) {
	if nodeIdx == 0 {
		return
	}
	for i := nodeIdx; ; i++ {
		cb(tilemapping.MachineLetter(k.Tile(i)), k.ArcIndex(i), k.Accepts(i))
		if k.IsEnd(i) {
			break
		}
	}
}

// walk follows word from the root. It returns the entry of the last arc
// taken, or false if the path does not exist. Blanks are read as the
// letter they stand for.
func (k *KWG) walk(word tilemapping.MachineWord) (uint32, bool) {
	nodeIdx := k.GetRootNodeIndex()
	var entry uint32
	for i, ml := range word {
		if i > 0 {
			nodeIdx = k.ArcIndex(entry)
		}
		var ok bool
		entry, ok = k.FindArc(nodeIdx, ml)
		if !ok {
			return 0, false
		}
	}
	return entry, true
}

// HasWord returns true if word is in the graph.
func (k *KWG) HasWord(word tilemapping.MachineWord) bool {
	if len(word) == 0 {
		return false
	}
	entry, ok := k.walk(word)
	return ok && k.Accepts(entry)
}

// HasMachinePrefix returns true if some word in the graph starts with prefix.
func (k *KWG) HasMachinePrefix(prefix tilemapping.MachineWord) bool {
	if len(prefix) == 0 {
		return k.GetRootNodeIndex() != 0
	}
	_, ok := k.walk(prefix)
	return ok
}

// IsWord is HasWord for a user-visible string. Case is ignored.
func (k *KWG) IsWord(word string) bool {
	mw, err := tilemapping.ToMachineWord(strings.ToLower(word), k.alphabet)
	if err != nil {
		return false
	}
	return k.HasWord(mw)
}

// HasPrefix is HasMachinePrefix for a user-visible string. Case is ignored.
func (k *KWG) HasPrefix(prefix string) bool {
	mw, err := tilemapping.ToMachineWord(strings.ToLower(prefix), k.alphabet)
	if err != nil {
		return false
	}
	return k.HasMachinePrefix(mw)
}
