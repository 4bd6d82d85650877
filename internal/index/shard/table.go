// Package shard holds the 26-way partitioned word index shared between
// mapper and reducer workers. Each partition carries its own mutex; that is
// the sole unit of lock granularity, so operations on different letters never
// contend.
package shard

import "sync"

type partition struct {
	mu      sync.Mutex
	entries map[string]*Entry
}

// Table is the shared index. It is created once before any worker starts,
// mutated only by mappers during the map phase, and read by reducers after
// the phase barrier releases.
type Table struct {
	partitions [NumLetters]partition
}

func NewTable() *Table {
	t := &Table{}
	for i := range t.partitions {
		t.partitions[i].entries = make(map[string]*Entry)
	}
	return t
}

// MergeFile records that every word in words occurs in the file with the
// given 1-based id. It takes the letter's lock exactly once, which is why
// mappers aggregate a whole file locally before calling it. Occurrence
// counts beyond one are irrelevant here; a word contributes its file id once
// no matter how often it appears.
func (t *Table) MergeFile(letter int, words map[string]int, fileID int) {
	p := &t.partitions[letter]
	p.mu.Lock()
	defer p.mu.Unlock()

	for word := range words {
		entry, ok := p.entries[word]
		if !ok {
			p.entries[word] = &Entry{Word: word, FileIDs: []int{fileID}}
			continue
		}
		entry.addFileID(fileID)
	}
}

// Snapshot copies every entry of the letter's partition out under its lock.
// The copies share no memory with the table, so callers may sort and mutate
// them freely.
func (t *Table) Snapshot(letter int) []Entry {
	p := &t.partitions[letter]
	p.mu.Lock()
	defer p.mu.Unlock()

	entries := make([]Entry, 0, len(p.entries))
	for _, e := range p.entries {
		entries = append(entries, e.clone())
	}
	return entries
}

// Len reports the number of distinct words in the letter's partition.
func (t *Table) Len(letter int) int {
	p := &t.partitions[letter]
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}
