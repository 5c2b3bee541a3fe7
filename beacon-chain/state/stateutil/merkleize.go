// Package stateutil defines utility functions to compute state roots by
// merkleization, padding with precomputed zero-subtree hashes.
package stateutil

import (
	"encoding/binary"

	"github.com/prysmaticlabs/attestation/shared/hashutil"
)

const zeroHashLayers = 64

// zeroHashes is a cache of the subtree roots of trees holding only zero
// leaves, indexed by tree depth.
var zeroHashes [][32]byte

func init() {
	zeroHashes = make([][32]byte, zeroHashLayers+1)
	for i := 0; i < zeroHashLayers; i++ {
		zeroHashes[i+1] = hashutil.Hash(append(zeroHashes[i][:], zeroHashes[i][:]...))
	}
}

// depth returns the number of merkle layers needed for a tree bounded by
// limit leaves.
func depth(limit uint64) int {
	d := 0
	for l := uint64(1); l < limit; l <<= 1 {
		d++
	}
	return d
}

// Merkleize hashes the chunks up to the root of a tree bounded by limit
// leaves, padding missing subtrees with cached zero hashes.
func Merkleize(chunks [][32]byte, limit uint64) [32]byte {
	d := depth(limit)
	layer := make([][32]byte, len(chunks))
	copy(layer, chunks)
	for i := 0; i < d; i++ {
		if len(layer) == 0 {
			return zeroHashes[d]
		}
		if len(layer)%2 == 1 {
			layer = append(layer, zeroHashes[i])
		}
		next := make([][32]byte, len(layer)/2)
		for j := 0; j < len(next); j++ {
			next[j] = hashutil.Hash(append(layer[2*j][:], layer[2*j+1][:]...))
		}
		layer = next
	}
	if len(layer) == 0 {
		return zeroHashes[d]
	}
	return layer[0]
}

// MixInLength mixes the length of a list into its merkle root, per the SSZ
// merkleization of list types.
func MixInLength(root [32]byte, length uint64) [32]byte {
	var lengthChunk [32]byte
	binary.LittleEndian.PutUint64(lengthChunk[:8], length)
	return hashutil.Hash(append(root[:], lengthChunk[:]...))
}

// Uint64Root computes the merkle chunk of a uint64 value.
func Uint64Root(val uint64) [32]byte {
	var root [32]byte
	binary.LittleEndian.PutUint64(root[:8], val)
	return root
}

// BytesRoot computes the chunked merkle root of an arbitrary byte slice.
func BytesRoot(b []byte) [32]byte {
	numChunks := (len(b) + 31) / 32
	chunks := make([][32]byte, numChunks)
	for i := 0; i < numChunks; i++ {
		copy(chunks[i][:], b[i*32:])
	}
	if numChunks <= 1 {
		if numChunks == 0 {
			return [32]byte{}
		}
		return chunks[0]
	}
	return Merkleize(chunks, uint64(numChunks))
}
