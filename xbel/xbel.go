// Package xbel models the freedesktop recently-used.xbel document and owns
// its exact wire schema. The types mirror the XML tree one-to-one: a Registry
// holds bookmarks, a bookmark optionally holds an info/metadata subtree with
// per-application usage records.
//
// Timestamps are kept as opaque RFC3339 strings (microsecond precision,
// "Z" suffix when UTC) rather than time.Time so that files written by other
// desktop environments round-trip byte for byte.
package xbel

// Registry is the in-memory form of one recently-used.xbel document.
//
// Invariant: no two bookmarks share the same Href.
type Registry struct {
	// Bookmarks in document order. New entries are appended;
	// updates happen in place and never reorder.
	Bookmarks []Bookmark
}

// Bookmark is one registry entry per unique resource URI.
type Bookmark struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// Href is the canonical file:// URI of the resource.
	// It is the registry's primary key.
	Href string

	// ─────────────────────────────
	// Target-file timestamps
	// (overwritten on every recorded access)
	// ─────────────────────────────

	// Added is when the file was added to the list.
	Added string

	// Modified is when the file was last modified.
	Modified string

	// Visited is when the file was last visited.
	Visited string

	// ─────────────────────────────
	// Optional metadata
	// ─────────────────────────────

	// Info carries MIME and application usage metadata.
	// Nil when the producing application recorded none.
	Info *Info
}

// Info wraps exactly one Metadata element.
type Info struct {
	Metadata Metadata
}

// Metadata carries the owner, an optional MIME type and the list of
// applications that accessed the bookmark.
type Metadata struct {
	// Owner of the metadata. Set once at bookmark creation,
	// defaults to http://freedesktop.org.
	Owner string

	// MimeType is a best-effort inference made at creation time.
	// Nil when the type could not be determined.
	MimeType *MimeType

	// Applications that have accessed the file.
	Applications Applications
}

// MimeType is a single type/subtype pair, e.g. "text/markdown".
type MimeType struct {
	Type string
}

// Applications is the ordered list of per-application usage records.
//
// Invariant: no two entries within one bookmark share the same Name.
type Applications struct {
	Applications []Application
}

// Application is one consumer's usage record attached to a bookmark.
type Application struct {
	// Name identifies the consuming application, e.g. "org.gnome.gedit".
	Name string

	// Exec is the command used to launch the application.
	Exec string

	// Modified is when this application last used the file.
	Modified string

	// Count is the number of recorded uses by this application.
	// Always >= 1; incremented by exactly 1 per recorded use.
	Count uint32
}

// FindBookmark returns the bookmark with the given href, or nil.
func (r *Registry) FindBookmark(href string) *Bookmark {
	for i := range r.Bookmarks {
		if r.Bookmarks[i].Href == href {
			return &r.Bookmarks[i]
		}
	}
	return nil
}

// FindApplication returns the usage record with the given name, or nil.
func (a *Applications) FindApplication(name string) *Application {
	for i := range a.Applications {
		if a.Applications[i].Name == name {
			return &a.Applications[i]
		}
	}
	return nil
}
