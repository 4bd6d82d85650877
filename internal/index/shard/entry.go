package shard

import "sort"

// NumLetters is the number of shards; one per letter 'a'..'z'.
const NumLetters = 26

// Entry is one indexed word together with every file it appears in. FileIDs
// are 1-based manifest positions, strictly ascending with no duplicates.
type Entry struct {
	Word    string
	FileIDs []int
}

// addFileID inserts id at its sorted position; a no-op when already present.
func (e *Entry) addFileID(id int) {
	i := sort.SearchInts(e.FileIDs, id)
	if i < len(e.FileIDs) && e.FileIDs[i] == id {
		return
	}
	e.FileIDs = append(e.FileIDs, 0)
	copy(e.FileIDs[i+1:], e.FileIDs[i:])
	e.FileIDs[i] = id
}

// clone returns a deep copy so snapshots never alias table-owned slices.
func (e *Entry) clone() Entry {
	ids := make([]int, len(e.FileIDs))
	copy(ids, e.FileIDs)
	return Entry{Word: e.Word, FileIDs: ids}
}
