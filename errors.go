package recents

import "errors"

// Error kinds returned by the registry. Codec failures surface as
// xbel.ErrParse and xbel.ErrSerialize. All errors are returned to the caller
// as-is: no retries, no partial-failure recovery, no logging.
var (
	// ErrNotFound means the registry location could not be resolved or the
	// registry file does not exist yet.
	ErrNotFound = errors.New("recents: registry file not found")

	// ErrRead means an existing registry file could not be read.
	ErrRead = errors.New("recents: could not read registry file")

	// ErrUpdate means the rewritten registry could not be stored.
	ErrUpdate = errors.New("recents: could not update registry file")

	// ErrMetadata means the target file's own timestamps could not be read.
	ErrMetadata = errors.New("recents: could not read metadata from path")

	// ErrPath means the target path could not be represented as a file:// URI.
	ErrPath = errors.New("recents: could not generate href from path")
)
