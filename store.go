package recents

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MrSnakeDoc/recents/internal/fstime"
	"github.com/MrSnakeDoc/recents/internal/utils"
	"github.com/MrSnakeDoc/recents/xbel"
)

// Store performs the load-merge-store cycle against one registry file.
//
// Every call is synchronous and self-contained: the registry is read from
// disk, transformed in memory and written back in full. Nothing is cached
// between calls and no lock guards the file, so two processes recording at
// nearly the same time can race (see RecordAccess).
type Store struct {
	path  string
	times fstime.Source
}

// NewStore creates a store for the registry file at path.
func NewStore(path string) *Store {
	return &Store{
		path:  path,
		times: fstime.System{},
	}
}

// DefaultPath returns the well-known registry location,
// ${HOME}/.local/share/recently-used.xbel.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: resolving home directory: %v", ErrNotFound, err)
	}
	return filepath.Join(home, ".local", "share", "recently-used.xbel"), nil
}

// Load reads and parses the registry file. A missing file is ErrNotFound;
// callers that want to start from scratch use WriteEmpty first.
func (s *Store) Load() (*xbel.Registry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return xbel.Parse(data)
}

// RecordAccess folds one file-open event into the registry file: load, merge,
// render, overwrite.
//
// The read-modify-write cycle is unguarded by design. Two concurrent callers
// both read the same prior state, merge independently, and the second writer
// silently discards the first writer's update. Callers needing stronger
// guarantees must serialize access themselves.
func (s *Store) RecordAccess(path, appName, exec, owner string) error {
	reg, err := s.Load()
	if err != nil {
		return err
	}

	ev := accessEvent{path: path, appName: appName, exec: exec, owner: owner}
	if err := apply(ev, reg, s.times); err != nil {
		return err
	}

	return s.write(reg)
}

// WriteEmpty bootstraps an empty registry document at the store's path,
// replacing whatever is there.
func (s *Store) WriteEmpty() error {
	return s.write(&xbel.Registry{})
}

// write replaces the registry file in full. Rendering to a temp file in the
// same directory and renaming over the target keeps a failed write from
// leaving a truncated registry behind; it does not close the lost-update
// window between concurrent cycles.
func (s *Store) write(reg *xbel.Registry) error {
	out, err := xbel.Render(reg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".recently-used-*.xbel")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpdate, err)
	}
	if _, err := tmp.Write(out); err != nil {
		utils.Close(tmp)
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrUpdate, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrUpdate, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrUpdate, err)
	}
	return nil
}
