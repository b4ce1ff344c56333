package recents

import (
	"fmt"

	"github.com/MrSnakeDoc/recents/internal/fstime"
	"github.com/MrSnakeDoc/recents/internal/href"
	"github.com/MrSnakeDoc/recents/internal/mimetype"
	"github.com/MrSnakeDoc/recents/xbel"
)

// DefaultOwner is recorded on newly created bookmarks when the caller does
// not supply an owner.
const DefaultOwner = "http://freedesktop.org"

// accessEvent is one file-open event to fold into the registry.
type accessEvent struct {
	path    string // absolute path of the accessed file
	appName string // identifier of the recording application
	exec    string // command used to launch it
	owner   string // empty means DefaultOwner
}

// apply folds a single access event into the registry in place. It is a pure
// transformation over the registry: the only outside reads are the target
// file's own timestamps, obtained through the injected source.
//
// Existing bookmarks get their three timestamps overwritten and their
// application entry incremented or appended. Unknown hrefs get a fresh
// bookmark appended at the end; existing bookmarks never move.
func apply(ev accessEvent, reg *xbel.Registry, times fstime.Source) error {
	uri, err := href.Resolve(ev.path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPath, err)
	}

	ts, err := times.Times(ev.path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMetadata, err)
	}

	if b := reg.FindBookmark(uri); b != nil {
		b.Added = ts.Added
		b.Modified = ts.Modified
		b.Visited = ts.Visited

		// A bookmark recorded without an info block keeps none: we do not
		// synthesize application history the entry never had.
		if b.Info == nil {
			return nil
		}

		apps := &b.Info.Metadata.Applications
		if app := apps.FindApplication(ev.appName); app != nil {
			app.Count++
			app.Modified = ts.Modified
			return nil
		}
		apps.Applications = append(apps.Applications, xbel.Application{
			Name:     ev.appName,
			Exec:     ev.exec,
			Modified: ts.Modified,
			Count:    1,
		})
		return nil
	}

	owner := ev.owner
	if owner == "" {
		owner = DefaultOwner
	}

	md := xbel.Metadata{
		Owner: owner,
		Applications: xbel.Applications{
			Applications: []xbel.Application{{
				Name:     ev.appName,
				Exec:     ev.exec,
				Modified: ts.Modified,
				Count:    1,
			}},
		},
	}
	if mt, ok := mimetype.Infer(ev.path); ok {
		md.MimeType = &xbel.MimeType{Type: mt}
	}

	reg.Bookmarks = append(reg.Bookmarks, xbel.Bookmark{
		Href:     uri,
		Added:    ts.Added,
		Modified: ts.Modified,
		Visited:  ts.Visited,
		Info:     &xbel.Info{Metadata: md},
	})
	return nil
}
