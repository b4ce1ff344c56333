// Package mimetype provides best-effort MIME type inference from a path's
// extension. Absence of a type is an expected, silent outcome.
package mimetype

import (
	"mime"
	"path/filepath"
	"strings"
)

// Infer looks up the MIME type for the path's extension. The second return
// value reports whether a type was found. It is a pure function over the
// path string: no filesystem access, no content sniffing, and it never fails.
func Infer(path string) (string, bool) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", false
	}

	t := mime.TypeByExtension(ext)
	if t == "" {
		return "", false
	}

	// TypeByExtension may append parameters ("text/plain; charset=utf-8");
	// the registry stores the bare type/subtype pair.
	if base, _, found := strings.Cut(t, ";"); found {
		t = base
	}
	return strings.TrimSpace(t), true
}
