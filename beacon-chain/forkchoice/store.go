// Package forkchoice implements the in-memory block index the node consults
// when deciding whether gossip messages reference known, non-finalized blocks.
// Every known, processed block at or after finalization has a node here.
package forkchoice

import (
	"sync"

	types "github.com/prysmaticlabs/eth2-types"
)

// Block is the slim summary fork choice keeps per processed block.
type Block struct {
	Slot       types.Slot
	Root       [32]byte
	ParentRoot [32]byte
	StateRoot  [32]byte
}

// BlockProvider looks up block summaries by root.
type BlockProvider interface {
	Block(root [32]byte) *Block
	HasBlock(root [32]byte) bool
}

// Store is a thread-safe root indexed collection of block summaries.
type Store struct {
	lock  sync.RWMutex
	nodes map[[32]byte]*Block
}

// NewStore initializes an empty block index.
func NewStore() *Store {
	return &Store{nodes: make(map[[32]byte]*Block)}
}

// InsertBlock indexes the block summary by its root. Inserting the same root
// twice keeps the first entry.
func (s *Store) InsertBlock(blk *Block) {
	if blk == nil {
		return
	}
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.nodes[blk.Root]; ok {
		return
	}
	s.nodes[blk.Root] = blk
}

// Block returns the summary for the root, or nil when the root is unknown.
// A root may be unknown either because the block was never processed or
// because it precedes the latest finalized block.
func (s *Store) Block(root [32]byte) *Block {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.nodes[root]
}

// HasBlock reports whether the root is indexed.
func (s *Store) HasBlock(root [32]byte) bool {
	return s.Block(root) != nil
}

// Prune drops every node with a slot lower than the finalized slot.
func (s *Store) Prune(finalizedSlot types.Slot) {
	s.lock.Lock()
	defer s.lock.Unlock()

	for root, blk := range s.nodes {
		if blk.Slot < finalizedSlot {
			delete(s.nodes, root)
		}
	}
}
