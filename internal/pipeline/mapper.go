package pipeline

import (
	"bufio"
	"log/slog"
	"time"

	"github.com/TraistaruAndreea/Parallel-Inverted-Index/internal/index/shard"
	"github.com/TraistaruAndreea/Parallel-Inverted-Index/internal/index/tokenizer"
	"github.com/TraistaruAndreea/Parallel-Inverted-Index/pkg/metrics"
)

type mapper struct {
	files   []string
	queue   *FileQueue
	table   *shard.Table
	source  Source
	barrier *Barrier
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// run drains the queue, indexing one file per iteration, then arrives at the
// barrier exactly once. Per-file I/O failures are absorbed here so the
// barrier count always balances.
func (m *mapper) run() {
	start := time.Now()
	processed := 0
	for {
		idx, ok := m.queue.TryDequeue()
		if !ok {
			break
		}
		m.indexFile(idx)
		processed++
	}
	m.metrics.PhaseDuration.WithLabelValues("map").Observe(time.Since(start).Seconds())
	m.logger.Debug("mapper drained queue", "files", processed)
	m.barrier.Wait()
}

func (m *mapper) indexFile(idx int) {
	path := m.files[idx]
	r, err := m.source.Open(path)
	if err != nil {
		m.logger.Error("skipping unreadable input file", "file", path, "error", err)
		m.metrics.FilesProcessed.WithLabelValues("open_error").Inc()
		return
	}
	defer r.Close()

	// Aggregate the whole file without locks; the table is touched once per
	// distinct letter below.
	local := make(map[int]map[string]int)
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		word := tokenizer.Normalize(scanner.Text())
		letter, ok := tokenizer.Letter(word)
		if !ok {
			m.metrics.TokensDiscarded.Inc()
			continue
		}
		bucket := local[letter]
		if bucket == nil {
			bucket = make(map[string]int)
			local[letter] = bucket
		}
		bucket[word]++
	}
	if err := scanner.Err(); err != nil {
		m.logger.Error("skipping file after read failure", "file", path, "error", err)
		m.metrics.FilesProcessed.WithLabelValues("read_error").Inc()
		return
	}

	words := 0
	for letter, bucket := range local {
		m.table.MergeFile(letter, bucket, idx+1)
		words += len(bucket)
	}
	m.metrics.WordsIndexed.Add(float64(words))
	m.metrics.FilesProcessed.WithLabelValues("ok").Inc()
}
