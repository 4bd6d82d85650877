package pipeline

import (
	"bufio"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/TraistaruAndreea/Parallel-Inverted-Index/internal/index/shard"
	"github.com/TraistaruAndreea/Parallel-Inverted-Index/pkg/metrics"
)

type reducer struct {
	rank    int
	total   int
	table   *shard.Table
	sinks   SinkFactory
	barrier *Barrier
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// run waits for every mapper to finish, then emits each shard in this
// reducer's range. Ranges partition [0, 26) exactly: reducer i of R owns
// [i*26/R, (i+1)*26/R).
func (r *reducer) run() {
	r.barrier.Wait()
	start := time.Now()

	lo := r.rank * shard.NumLetters / r.total
	hi := (r.rank + 1) * shard.NumLetters / r.total
	for letter := lo; letter < hi; letter++ {
		r.emitShard(letter)
	}

	r.metrics.PhaseDuration.WithLabelValues("reduce").Observe(time.Since(start).Seconds())
	r.logger.Debug("reducer finished", "first_letter", lo, "letters", hi-lo)
}

func (r *reducer) emitShard(letter int) {
	entries := r.table.Snapshot(letter)
	sort.Slice(entries, func(i, j int) bool {
		if len(entries[i].FileIDs) != len(entries[j].FileIDs) {
			return len(entries[i].FileIDs) > len(entries[j].FileIDs)
		}
		return entries[i].Word < entries[j].Word
	})

	name := byte('a' + letter)
	w, err := r.sinks.Create(name)
	if err != nil {
		r.logger.Error("abandoning shard output", "letter", string(name), "error", err)
		r.metrics.ArtifactsWritten.WithLabelValues("error").Inc()
		return
	}
	defer w.Close()

	bw := bufio.NewWriter(w)
	for _, e := range entries {
		bw.WriteString(e.Word)
		bw.WriteString(":[")
		for i, id := range e.FileIDs {
			if i > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(id))
		}
		bw.WriteString("]\n")
	}
	if err := bw.Flush(); err != nil {
		r.logger.Error("writing shard output failed", "letter", string(name), "error", err)
		r.metrics.ArtifactsWritten.WithLabelValues("error").Inc()
		return
	}

	r.metrics.ShardEntries.WithLabelValues(string(name)).Set(float64(len(entries)))
	r.metrics.ArtifactsWritten.WithLabelValues("ok").Inc()
}
