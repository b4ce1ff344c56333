package xbel

// Wire schema constants. Consuming desktop environments match on these
// exact names and namespace prefixes, so they must never drift.
const (
	// XMLDeclaration prefixes every rendered document.
	XMLDeclaration = `version="1.0" encoding="UTF-8"`

	// NamespaceBookmark backs the bookmark: prefix.
	NamespaceBookmark = "http://www.freedesktop.org/standards/desktop-bookmarks"

	// NamespaceMime backs the mime: prefix.
	NamespaceMime = "http://www.freedesktop.org/standards/shared-mime-info"

	elemRoot         = "xbel"
	elemBookmark     = "bookmark"
	elemInfo         = "info"
	elemMetadata     = "metadata"
	elemMimeType     = "mime-type"
	elemApplications = "applications"
	elemApplication  = "application"

	prefixedMimeType     = "mime:mime-type"
	prefixedApplications = "bookmark:applications"
	prefixedApplication  = "bookmark:application"

	attrVersion  = "version"
	attrHref     = "href"
	attrAdded    = "added"
	attrModified = "modified"
	attrVisited  = "visited"
	attrOwner    = "owner"
	attrType     = "type"
	attrName     = "name"
	attrExec     = "exec"
	attrCount    = "count"

	schemaVersion = "1.0"
)
