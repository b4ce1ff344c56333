package xbel

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func sampleRegistry() *Registry {
	return &Registry{
		Bookmarks: []Bookmark{
			{
				Href:     "file:///tmp/a.txt",
				Added:    "2024-03-01T10:00:00.000000Z",
				Modified: "2024-03-01T10:05:00.000000Z",
				Visited:  "2024-03-01T10:06:00.000000Z",
				Info: &Info{
					Metadata: Metadata{
						Owner:    "http://freedesktop.org",
						MimeType: &MimeType{Type: "text/plain"},
						Applications: Applications{
							Applications: []Application{
								{Name: "org.test", Exec: "test", Modified: "2024-03-01T10:05:00.000000Z", Count: 1},
							},
						},
					},
				},
			},
		},
	}
}

func TestRenderEmptyRegistry(t *testing.T) {
	out, err := Render(&Registry{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := `<?xml version="1.0" encoding="UTF-8"?>` +
		`<xbel version="1.0"` +
		` xmlns:bookmark="http://www.freedesktop.org/standards/desktop-bookmarks"` +
		` xmlns:mime="http://www.freedesktop.org/standards/shared-mime-info"/>`
	if string(out) != want {
		t.Errorf("Render() =\n%s\nwant\n%s", out, want)
	}
}

func TestRenderFullBookmark(t *testing.T) {
	out, err := Render(sampleRegistry())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := `<?xml version="1.0" encoding="UTF-8"?>` +
		`<xbel version="1.0"` +
		` xmlns:bookmark="http://www.freedesktop.org/standards/desktop-bookmarks"` +
		` xmlns:mime="http://www.freedesktop.org/standards/shared-mime-info">` +
		`<bookmark href="file:///tmp/a.txt"` +
		` added="2024-03-01T10:00:00.000000Z"` +
		` modified="2024-03-01T10:05:00.000000Z"` +
		` visited="2024-03-01T10:06:00.000000Z">` +
		`<info><metadata owner="http://freedesktop.org">` +
		`<mime:mime-type type="text/plain"/>` +
		`<bookmark:applications>` +
		`<bookmark:application name="org.test" exec="test"` +
		` modified="2024-03-01T10:05:00.000000Z" count="1"/>` +
		`</bookmark:applications>` +
		`</metadata></info></bookmark></xbel>`
	if string(out) != want {
		t.Errorf("Render() =\n%s\nwant\n%s", out, want)
	}
}

func TestRenderOmitsAbsentStructure(t *testing.T) {
	reg := &Registry{
		Bookmarks: []Bookmark{
			{
				Href:     "file:///tmp/b.txt",
				Added:    "2024-03-01T10:00:00.000000Z",
				Modified: "2024-03-01T10:00:00.000000Z",
				Visited:  "2024-03-01T10:00:00.000000Z",
			},
		},
	}

	out, err := Render(reg)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	s := string(out)
	if strings.Contains(s, "<info") {
		t.Errorf("Render() emitted an info element for a bookmark without one:\n%s", s)
	}
	if !strings.Contains(s, `visited="2024-03-01T10:00:00.000000Z"/>`) {
		t.Errorf("Render() bookmark without info should self-close:\n%s", s)
	}
}

func TestRenderNoMimeType(t *testing.T) {
	reg := sampleRegistry()
	reg.Bookmarks[0].Info.Metadata.MimeType = nil

	out, err := Render(reg)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(string(out), "mime-type") {
		t.Errorf("Render() emitted a mime-type element without one set:\n%s", out)
	}
	if !strings.Contains(string(out), "<bookmark:applications>") {
		t.Errorf("Render() must still emit the applications wrapper:\n%s", out)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		reg  *Registry
	}{
		{"empty", &Registry{}},
		{"full bookmark", sampleRegistry()},
		{
			"bookmark without info",
			&Registry{Bookmarks: []Bookmark{
				{Href: "file:///x", Added: "a", Modified: "m", Visited: "v"},
			}},
		},
		{
			"two bookmarks mixed",
			&Registry{Bookmarks: []Bookmark{
				sampleRegistry().Bookmarks[0],
				{Href: "file:///y", Added: "a", Modified: "m", Visited: "v",
					Info: &Info{Metadata: Metadata{Owner: "http://freedesktop.org"}}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Render(tt.reg)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			got, err := Parse(out)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.reg) {
				t.Errorf("Parse(Render()) = %+v, want %+v", got, tt.reg)
			}
		})
	}
}

func TestParseLenientNamespaces(t *testing.T) {
	// Some producers write the applications tree without namespace prefixes.
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<xbel version="1.0">
  <bookmark href="file:///tmp/a.txt" added="a" modified="m" visited="v">
    <info>
      <metadata owner="http://freedesktop.org">
        <mime-type type="text/plain"/>
        <applications>
          <application name="gedit" exec="'gedit %u'" modified="m" count="7"/>
        </applications>
      </metadata>
    </info>
  </bookmark>
</xbel>`

	reg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(reg.Bookmarks) != 1 {
		t.Fatalf("Parse() bookmarks = %d, want 1", len(reg.Bookmarks))
	}
	apps := reg.Bookmarks[0].Info.Metadata.Applications.Applications
	if len(apps) != 1 || apps[0].Name != "gedit" || apps[0].Count != 7 {
		t.Errorf("Parse() applications = %+v, want one gedit entry with count 7", apps)
	}
}

func TestParseMissingOptionalStructure(t *testing.T) {
	doc := `<xbel version="1.0"><bookmark href="file:///x" added="a" modified="m" visited="v"/></xbel>`

	reg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if reg.Bookmarks[0].Info != nil {
		t.Errorf("Parse() info = %+v, want nil", reg.Bookmarks[0].Info)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed xml", `<xbel version="1.0"><bookmark`},
		{"missing root", `<bookmarks/>`},
		{"bookmark missing href", `<xbel><bookmark added="a" modified="m" visited="v"/></xbel>`},
		{"bookmark missing visited", `<xbel><bookmark href="h" added="a" modified="m"/></xbel>`},
		{
			"application missing name",
			`<xbel><bookmark href="h" added="a" modified="m" visited="v">` +
				`<info><metadata owner="o"><applications>` +
				`<application exec="e" modified="m" count="1"/>` +
				`</applications></metadata></info></bookmark></xbel>`,
		},
		{
			"application bad count",
			`<xbel><bookmark href="h" added="a" modified="m" visited="v">` +
				`<info><metadata owner="o"><applications>` +
				`<application name="n" exec="e" modified="m" count="many"/>` +
				`</applications></metadata></info></bookmark></xbel>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if !errors.Is(err, ErrParse) {
				t.Errorf("Parse() error = %v, want ErrParse", err)
			}
		})
	}
}

func TestParseAttributeEscaping(t *testing.T) {
	reg := &Registry{Bookmarks: []Bookmark{
		{Href: "file:///tmp/a%20b%26c.txt", Added: "a", Modified: "m", Visited: "v",
			Info: &Info{Metadata: Metadata{
				Owner: "http://freedesktop.org",
				Applications: Applications{Applications: []Application{
					{Name: "a<b", Exec: `"cmd" %u`, Modified: "m", Count: 2},
				}},
			}}},
	}}

	out, err := Render(reg)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	got, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !reflect.DeepEqual(got, reg) {
		t.Errorf("Parse(Render()) = %+v, want %+v", got, reg)
	}
}
