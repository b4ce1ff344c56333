// Package recents maintains the desktop-wide registry of recently accessed
// files stored at ~/.local/share/recently-used.xbel, so that multiple
// applications can record file-open events and share one recents list.
//
//	reg, err := recents.LoadRegistry()
//	if err != nil {
//		return err
//	}
//	for _, b := range reg.Bookmarks {
//		fmt.Println(b.Href)
//	}
//
// Recording an access is a single call:
//
//	err := recents.RecordAccess("/tmp/a.txt", "org.example.app", "example-app", "")
//
// The document model and the bit-exact codec live in the xbel subpackage.
package recents

import "github.com/MrSnakeDoc/recents/xbel"

// Dir returns the well-known path of the registry file.
func Dir() (string, error) {
	return DefaultPath()
}

// LoadRegistry parses the registry file at its default location.
func LoadRegistry() (*xbel.Registry, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return NewStore(path).Load()
}

// RecordAccess records one file-open event against the registry at its
// default location. path must be absolute and canonicalized. An empty owner
// selects DefaultOwner.
func RecordAccess(path, appName, exec, owner string) error {
	loc, err := DefaultPath()
	if err != nil {
		return err
	}
	return NewStore(loc).RecordAccess(path, appName, exec, owner)
}
