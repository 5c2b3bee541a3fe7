// Package sliceutil implements set operations for specified data type
// combinations.
package sliceutil

// SplitOffset returns (listsize * index) / chunks that is used to split a
// list into chunks.
//
// Spec pseudocode definition:
//  def get_split_offset(list_size: int, chunks: int, index: int) -> int:
//    """
//    Returns a value such that for a list L, chunk count k and index i,
//    split(L, k)[i] == L[get_split_offset(len(L), k, i): get_split_offset(len(L), k, i+1)]
//    """
//    return (list_size * index) // chunks
func SplitOffset(listSize, chunks, index uint64) uint64 {
	return (listSize * index) / chunks
}

// IsInUint64 returns true if an uint64 is in the uint64 list.
func IsInUint64(a uint64, b []uint64) bool {
	for _, v := range b {
		if v == a {
			return true
		}
	}
	return false
}

// SubsetUint64 returns true if the first array is completely contained in the
// second array with time complexity of approximately O(n).
func SubsetUint64(a, b []uint64) bool {
	if len(a) > len(b) {
		return false
	}

	set := make(map[uint64]uint64, len(b))
	for _, v := range b {
		set[v]++
	}

	for _, v := range a {
		if count, found := set[v]; !found {
			return false
		} else if count < 1 {
			return false
		} else {
			set[v] = count - 1
		}
	}
	return true
}
