package linkel

import "github.com/pthm/linkel/lib/dom"

// Attribute names making up the configuration surface. The first two are
// the declared observed attributes; the markers are presence-based and
// tracked through the mutation observer instead.
const (
	AttrURL         = "url"
	AttrColorScheme = "color-scheme"
	AttrIsButton    = "is-button"
	AttrIsExternal  = "is-external"
)

// State is the canonical record of one link's configuration. After mount
// it is the unique source of truth: channels and accessors write it, the
// renderer projects it, and nothing reads configuration from the rendered
// element or raw markup.
type State struct {
	URL         string
	ColorScheme string
	IsButton    bool
	IsExternal  bool
	Label       string
}

// field identifies one State field in the change queue.
type field int

const (
	fieldURL field = iota
	fieldColorScheme
	fieldIsButton
	fieldIsExternal
	fieldLabel
)

// fieldKind says how a field is sourced from markup.
type fieldKind int

const (
	kindString fieldKind = iota // attribute value
	kindMarker                  // attribute presence
	kindText                    // element text content
)

// fieldSpec is one row of the enumerated field table: which field, which
// source attribute (empty for text content), and how to read it.
type fieldSpec struct {
	f    field
	attr string
	kind fieldKind
}

// fieldTable enumerates the full configuration surface. Seeding reads
// exactly these rows - arbitrary external attribute names are never
// reflected onto the component.
var fieldTable = []fieldSpec{
	{fieldURL, AttrURL, kindString},
	{fieldColorScheme, AttrColorScheme, kindString},
	{fieldIsButton, AttrIsButton, kindMarker},
	{fieldIsExternal, AttrIsExternal, kindMarker},
	{fieldLabel, "", kindText},
}

// seedState populates a State from the element's initial markup.
func seedState(el *dom.Element) State {
	var st State
	for _, fs := range fieldTable {
		switch fs.kind {
		case kindString:
			st.setString(fs.f, el.Attr(fs.attr))
		case kindMarker:
			st.setBool(fs.f, el.HasAttr(fs.attr))
		case kindText:
			st.setString(fs.f, el.Text())
		}
	}
	return st
}

func (s *State) setString(f field, v string) {
	switch f {
	case fieldURL:
		s.URL = v
	case fieldColorScheme:
		s.ColorScheme = v
	case fieldLabel:
		s.Label = v
	}
}

func (s *State) setBool(f field, v bool) {
	switch f {
	case fieldIsButton:
		s.IsButton = v
	case fieldIsExternal:
		s.IsExternal = v
	}
}
