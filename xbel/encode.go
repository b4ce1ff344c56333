package xbel

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
)

// ErrSerialize wraps every failure to render a document.
var ErrSerialize = errors.New("xbel: serialize")

// Render encodes a registry into the exact byte form consuming desktop
// environments expect: a literal XML declaration, the xbel root with its two
// fixed namespace declarations, bookmark attributes in the order
// href, added, modified, visited, and self-closing namespaced mime-type and
// application elements. Absent optional structure emits nothing.
//
// The document is built as an explicit tree walked in schema order. A
// reflection-driven serializer cannot guarantee the attribute order or the
// conditional nesting, which is why one is not used.
func Render(reg *Registry) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", XMLDeclaration)

	root := doc.CreateElement(elemRoot)
	root.CreateAttr(attrVersion, schemaVersion)
	root.CreateAttr("xmlns:bookmark", NamespaceBookmark)
	root.CreateAttr("xmlns:mime", NamespaceMime)

	for i := range reg.Bookmarks {
		renderBookmark(root, &reg.Bookmarks[i])
	}

	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	return out, nil
}

func renderBookmark(root *etree.Element, b *Bookmark) {
	el := root.CreateElement(elemBookmark)
	el.CreateAttr(attrHref, b.Href)
	el.CreateAttr(attrAdded, b.Added)
	el.CreateAttr(attrModified, b.Modified)
	el.CreateAttr(attrVisited, b.Visited)

	if b.Info == nil {
		return
	}

	meta := el.CreateElement(elemInfo).CreateElement(elemMetadata)
	meta.CreateAttr(attrOwner, b.Info.Metadata.Owner)

	if mt := b.Info.Metadata.MimeType; mt != nil {
		meta.CreateElement(prefixedMimeType).CreateAttr(attrType, mt.Type)
	}

	apps := meta.CreateElement(prefixedApplications)
	for _, app := range b.Info.Metadata.Applications.Applications {
		el := apps.CreateElement(prefixedApplication)
		el.CreateAttr(attrName, app.Name)
		el.CreateAttr(attrExec, app.Exec)
		el.CreateAttr(attrModified, app.Modified)
		el.CreateAttr(attrCount, strconv.FormatUint(uint64(app.Count), 10))
	}
}
