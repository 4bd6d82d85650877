package pipeline

import "sync"

// FileQueue is the shared FIFO of input file indices drained by mappers. It
// is fully populated before workers start and never replenished.
type FileQueue struct {
	mu    sync.Mutex
	items []int
}

func NewFileQueue() *FileQueue {
	return &FileQueue{}
}

// Enqueue appends an index at the tail. Only called during setup, but it
// takes the same lock as TryDequeue for uniformity.
func (q *FileQueue) Enqueue(fileIndex int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, fileIndex)
}

// TryDequeue removes and returns the head. The lock makes it atomic with
// respect to concurrent callers: no index is returned twice and none is
// lost. The second return is false once the queue is empty.
func (q *FileQueue) TryDequeue() (int, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return 0, false
	}
	head := q.items[0]
	q.items = q.items[1:]
	return head, true
}

// Len reports the number of indices still queued.
func (q *FileQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
