package shard

import (
	"sort"
	"sync"
	"testing"
)

func findEntry(t *testing.T, entries []Entry, word string) Entry {
	t.Helper()
	for _, e := range entries {
		if e.Word == word {
			return e
		}
	}
	t.Fatalf("word %q not found in snapshot", word)
	return Entry{}
}

func TestMergeFileIdempotentPerFile(t *testing.T) {
	table := NewTable()
	// The same file merged twice must not duplicate its id.
	table.MergeFile(2, map[string]int{"cat": 3}, 1)
	table.MergeFile(2, map[string]int{"cat": 3}, 1)

	e := findEntry(t, table.Snapshot(2), "cat")
	if len(e.FileIDs) != 1 || e.FileIDs[0] != 1 {
		t.Errorf("FileIDs = %v, want [1]", e.FileIDs)
	}
}

func TestMergeFileKeepsIDsSorted(t *testing.T) {
	table := NewTable()
	for _, id := range []int{5, 2, 9, 1, 7, 2} {
		table.MergeFile(0, map[string]int{"apple": 1}, id)
	}
	e := findEntry(t, table.Snapshot(0), "apple")
	want := []int{1, 2, 5, 7, 9}
	if len(e.FileIDs) != len(want) {
		t.Fatalf("FileIDs = %v, want %v", e.FileIDs, want)
	}
	for i := range want {
		if e.FileIDs[i] != want[i] {
			t.Fatalf("FileIDs = %v, want %v", e.FileIDs, want)
		}
	}
}

func TestConcurrentMergesPreserveInvariants(t *testing.T) {
	table := NewTable()
	const files = 64

	var wg sync.WaitGroup
	for id := 1; id <= files; id++ {
		wg.Add(1)
		go func(fileID int) {
			defer wg.Done()
			// Every file contains the same words across several letters.
			table.MergeFile(0, map[string]int{"apple": 2, "ant": 1}, fileID)
			table.MergeFile(25, map[string]int{"zebra": 1}, fileID)
		}(id)
	}
	wg.Wait()

	for _, word := range []string{"apple", "ant"} {
		e := findEntry(t, table.Snapshot(0), word)
		if len(e.FileIDs) != files {
			t.Errorf("%s: got %d ids, want %d", word, len(e.FileIDs), files)
		}
		if !sort.IntsAreSorted(e.FileIDs) {
			t.Errorf("%s: ids not ascending: %v", word, e.FileIDs)
		}
		for i := 1; i < len(e.FileIDs); i++ {
			if e.FileIDs[i] == e.FileIDs[i-1] {
				t.Errorf("%s: duplicate id %d", word, e.FileIDs[i])
			}
		}
	}
	if n := table.Len(25); n != 1 {
		t.Errorf("letter z: %d entries, want 1", n)
	}
}

func TestSnapshotDoesNotAliasTable(t *testing.T) {
	table := NewTable()
	table.MergeFile(0, map[string]int{"apple": 1}, 1)
	table.MergeFile(0, map[string]int{"apple": 1}, 2)

	snap := table.Snapshot(0)
	snap[0].FileIDs[0] = 999
	snap[0].Word = "mutated"

	e := findEntry(t, table.Snapshot(0), "apple")
	if e.FileIDs[0] != 1 || e.FileIDs[1] != 2 {
		t.Errorf("table mutated through snapshot: %v", e.FileIDs)
	}
}

func TestSnapshotEmptyShard(t *testing.T) {
	table := NewTable()
	if entries := table.Snapshot(13); len(entries) != 0 {
		t.Errorf("empty shard snapshot has %d entries", len(entries))
	}
}
