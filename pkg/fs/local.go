// Package fs provides the local-filesystem collaborators the pipeline core
// stays agnostic of: opening input files for reading and creating per-letter
// output artifacts.
package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Local opens input files from the local filesystem.
type Local struct{}

func NewLocal() Local {
	return Local{}
}

func (Local) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// ArtifactDir creates one `<letter>.txt` file per shard inside a directory,
// creating the directory on first use.
type ArtifactDir struct {
	dir string
}

func NewArtifactDir(dir string) ArtifactDir {
	if dir == "" {
		dir = "."
	}
	return ArtifactDir{dir: dir}
}

func (d ArtifactDir) Create(letter byte) (io.WriteCloser, error) {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", d.dir, err)
	}
	path := filepath.Join(d.dir, fmt.Sprintf("%c.txt", letter))
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating artifact %s: %w", path, err)
	}
	return f, nil
}
