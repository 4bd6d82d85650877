// Package errors defines the sentinel errors shared across the indexer.
// Worker-level I/O failures are logged and absorbed locally, so the only
// errors that cross package boundaries are the fatal setup ones below.
package errors

import "errors"

var (
	ErrMalformedManifest   = errors.New("malformed manifest")
	ErrInvalidWorkerCount  = errors.New("invalid worker count")
	ErrMissingCollaborator = errors.New("missing pipeline collaborator")
)
