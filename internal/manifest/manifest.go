// Package manifest loads the input file list: a count on the first line
// followed by one path per line. A garbled manifest is the one fatal setup
// error in the system; it aborts the run before any worker launches.
package manifest

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	apperrors "github.com/TraistaruAndreea/Parallel-Inverted-Index/pkg/errors"
)

// Load reads the manifest at path and returns the file paths in manifest
// order. Positions become the pipeline's 0-based file indices and the
// 1-based ids emitted in artifacts. Paths are used verbatim; relative ones
// resolve against the process working directory.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading manifest %s: %w", path, err)
		}
		return nil, fmt.Errorf("%w: %s is empty", apperrors.ErrMalformedManifest, path)
	}
	count, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || count < 0 {
		return nil, fmt.Errorf("%w: bad file count %q in %s",
			apperrors.ErrMalformedManifest, scanner.Text(), path)
	}

	files := make([]string, 0, count)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		files = append(files, line)
		if len(files) == count {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	if len(files) < count {
		return nil, fmt.Errorf("%w: %s declares %d files but lists %d",
			apperrors.ErrMalformedManifest, path, count, len(files))
	}
	return files, nil
}
