// Package href converts absolute filesystem paths into the canonical
// file:// URIs used as registry keys.
package href

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Resolve converts an absolute, already-canonicalized filesystem path into a
// file:// URI with a percent-encoded path. It does not touch the filesystem:
// no canonicalization, no symlink resolution.
func Resolve(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty path")
	}
	if !filepath.IsAbs(path) {
		return "", fmt.Errorf("not an absolute path: %q", path)
	}
	if strings.ContainsRune(path, 0) {
		return "", fmt.Errorf("path contains NUL byte")
	}

	u := url.URL{Scheme: "file", Path: path}
	return u.String(), nil
}
