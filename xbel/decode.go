package xbel

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
)

// ErrParse wraps every failure to decode a document: malformed XML,
// a missing xbel root, a missing required attribute or a bad count.
var ErrParse = errors.New("xbel: parse")

// Parse decodes one recently-used.xbel document.
//
// Missing optional structure (info, metadata, mime-type, applications) maps
// to nil pointers and empty lists, never to an error. Element selection is
// namespace-lenient on input: both "applications" and "bookmark:applications"
// are accepted, as real desktop files vary.
func Parse(data []byte) (*Registry, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: malformed document: %v", ErrParse, err)
	}

	root := doc.SelectElement(elemRoot)
	if root == nil {
		return nil, fmt.Errorf("%w: missing <%s> root element", ErrParse, elemRoot)
	}

	reg := &Registry{}
	for _, el := range root.SelectElements(elemBookmark) {
		b, err := parseBookmark(el)
		if err != nil {
			return nil, err
		}
		reg.Bookmarks = append(reg.Bookmarks, b)
	}
	return reg, nil
}

func parseBookmark(el *etree.Element) (Bookmark, error) {
	var b Bookmark
	for _, f := range []struct {
		attr string
		dst  *string
	}{
		{attrHref, &b.Href},
		{attrAdded, &b.Added},
		{attrModified, &b.Modified},
		{attrVisited, &b.Visited},
	} {
		a := el.SelectAttr(f.attr)
		if a == nil {
			return b, fmt.Errorf("%w: bookmark missing required attribute %q", ErrParse, f.attr)
		}
		*f.dst = a.Value
	}

	info := el.SelectElement(elemInfo)
	if info == nil {
		return b, nil
	}
	meta := info.SelectElement(elemMetadata)
	if meta == nil {
		// An info without metadata carries nothing we recognize.
		return b, nil
	}

	md := Metadata{Owner: meta.SelectAttrValue(attrOwner, "")}
	if mt := meta.SelectElement(elemMimeType); mt != nil {
		md.MimeType = &MimeType{Type: mt.SelectAttrValue(attrType, "")}
	}
	if apps := meta.SelectElement(elemApplications); apps != nil {
		for _, app := range apps.SelectElements(elemApplication) {
			entry, err := parseApplication(app)
			if err != nil {
				return b, err
			}
			md.Applications.Applications = append(md.Applications.Applications, entry)
		}
	}
	b.Info = &Info{Metadata: md}
	return b, nil
}

func parseApplication(el *etree.Element) (Application, error) {
	var app Application
	for _, f := range []struct {
		attr string
		dst  *string
	}{
		{attrName, &app.Name},
		{attrExec, &app.Exec},
		{attrModified, &app.Modified},
	} {
		a := el.SelectAttr(f.attr)
		if a == nil {
			return app, fmt.Errorf("%w: application missing required attribute %q", ErrParse, f.attr)
		}
		*f.dst = a.Value
	}

	raw := el.SelectAttr(attrCount)
	if raw == nil {
		return app, fmt.Errorf("%w: application missing required attribute %q", ErrParse, attrCount)
	}
	count, err := strconv.ParseUint(raw.Value, 10, 32)
	if err != nil {
		return app, fmt.Errorf("%w: application count %q: %v", ErrParse, raw.Value, err)
	}
	app.Count = uint32(count)
	return app, nil
}
