// Package pipeline implements the two-phase concurrent indexing core: a
// fan-out map phase that tokenizes files into a sharded table and a reduce
// phase that sorts and emits one artifact per letter. The two phases are
// separated by a single counted rendezvous with mappers+reducers
// participants; that barrier is the only cross-phase ordering point.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/TraistaruAndreea/Parallel-Inverted-Index/internal/index/shard"
	apperrors "github.com/TraistaruAndreea/Parallel-Inverted-Index/pkg/errors"
	"github.com/TraistaruAndreea/Parallel-Inverted-Index/pkg/logger"
	"github.com/TraistaruAndreea/Parallel-Inverted-Index/pkg/metrics"
)

// Source opens an input file as a byte stream. An open error is a
// recoverable, per-file signal: the mapper logs it and moves on.
type Source interface {
	Open(path string) (io.ReadCloser, error)
}

// SinkFactory creates the output artifact for one letter shard.
type SinkFactory interface {
	Create(letter byte) (io.WriteCloser, error)
}

// Config carries everything a pipeline run needs, passed by value at
// construction so workers never share mutable setup state.
type Config struct {
	// Files are the manifest paths in order; position+1 becomes the file id
	// emitted in artifacts, independent of which mapper processes the file.
	Files    []string
	Mappers  int
	Reducers int
	Source   Source
	Sinks    SinkFactory
	Metrics  *metrics.Metrics
}

// Pipeline orchestrates one indexing run over a fixed file list.
type Pipeline struct {
	cfg   Config
	table *shard.Table
}

func New(cfg Config) (*Pipeline, error) {
	if cfg.Mappers < 1 {
		return nil, fmt.Errorf("%w: mappers must be at least 1, got %d",
			apperrors.ErrInvalidWorkerCount, cfg.Mappers)
	}
	if cfg.Reducers < 1 {
		return nil, fmt.Errorf("%w: reducers must be at least 1, got %d",
			apperrors.ErrInvalidWorkerCount, cfg.Reducers)
	}
	if cfg.Source == nil {
		return nil, fmt.Errorf("%w: source", apperrors.ErrMissingCollaborator)
	}
	if cfg.Sinks == nil {
		return nil, fmt.Errorf("%w: sink factory", apperrors.ErrMissingCollaborator)
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.New()
	}
	return &Pipeline{
		cfg:   cfg,
		table: shard.NewTable(),
	}, nil
}

// Run executes the full map-barrier-reduce cycle and blocks until every
// worker has returned. Per-file and per-artifact I/O failures are handled
// inside the workers, so a nil return means the run completed; it does not
// imply every input file was readable.
func (p *Pipeline) Run(ctx context.Context) error {
	base := logger.FromContext(ctx)
	log := base.With("component", "pipeline")
	start := time.Now()

	queue := NewFileQueue()
	for i := range p.cfg.Files {
		queue.Enqueue(i)
	}
	barrier := NewBarrier(p.cfg.Mappers + p.cfg.Reducers)

	log.Info("pipeline starting",
		"files", len(p.cfg.Files),
		"mappers", p.cfg.Mappers,
		"reducers", p.cfg.Reducers,
	)

	var g errgroup.Group
	for i := 0; i < p.cfg.Mappers; i++ {
		m := &mapper{
			files:   p.cfg.Files,
			queue:   queue,
			table:   p.table,
			source:  p.cfg.Source,
			barrier: barrier,
			metrics: p.cfg.Metrics,
			logger:  base.With("component", "mapper", "worker_id", i),
		}
		g.Go(func() error {
			m.run()
			return nil
		})
	}
	for i := 0; i < p.cfg.Reducers; i++ {
		r := &reducer{
			rank:    i,
			total:   p.cfg.Reducers,
			table:   p.table,
			sinks:   p.cfg.Sinks,
			barrier: barrier,
			metrics: p.cfg.Metrics,
			logger:  base.With("component", "reducer", "worker_id", i),
		}
		g.Go(func() error {
			r.run()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("pipeline finished", "duration", time.Since(start))
	return nil
}

// Table exposes the shard table for inspection after Run returns.
func (p *Pipeline) Table() *shard.Table {
	return p.table
}
