// Package fstime reads the filesystem timestamps of a target file and formats
// them the way the registry stores them. The three values describe the file
// being recorded, not the registry file.
package fstime

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// Layout is the timestamp form used throughout the registry: RFC3339 with
// microsecond precision and a literal Z for UTC.
const Layout = "2006-01-02T15:04:05.000000Z07:00"

// Times holds the formatted timestamps for one target file.
type Times struct {
	// Added is derived from the inode change time. Plain stat does not
	// expose a birth time, so ctime stands in for creation.
	Added string

	// Modified is the content modification time.
	Modified string

	// Visited is the last access time.
	Visited string
}

// Source obtains the timestamps for a target path. The concrete
// implementation is injected so the merge logic stays a pure transformation.
type Source interface {
	Times(path string) (Times, error)
}

// System reads timestamps from the local filesystem via stat(2).
type System struct{}

// Times implements Source.
func (System) Times(path string) (Times, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return Times{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return Times{
		Added:    Format(timespecToTime(st.Ctim)),
		Modified: Format(timespecToTime(st.Mtim)),
		Visited:  Format(timespecToTime(st.Atim)),
	}, nil
}

// Format renders a timestamp in the registry's on-disk form.
func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

func timespecToTime(ts unix.Timespec) time.Time {
	return time.Unix(0, unix.TimespecToNsec(ts))
}
