package linkel

// Typed property accessors for programmatic callers. Getters return the
// canonical State value - never a value read back from the rendered
// element - so programmatic access stays decoupled from presentation.
// Setters funnel through the change queue like every other channel and
// drain synchronously, so the element is up to date when a setter returns.
//
// The boolean setters take a Go bool, which is the strict-boolean
// coercion point for programmatic writes; markup writes of the marker
// attributes remain presence-based regardless of value.

// URL returns the destination URL.
func (l *Link) URL() string { return l.state.URL }

// SetURL sets the destination URL and re-renders.
func (l *Link) SetURL(url string) {
	l.set(change{f: fieldURL, s: url})
}

// ColorScheme returns the style-scheme token.
func (l *Link) ColorScheme() string { return l.state.ColorScheme }

// SetColorScheme sets the style-scheme token and re-renders. Tokens are
// not validated; unknown tokens pass through to the class attribute.
func (l *Link) SetColorScheme(scheme string) {
	l.set(change{f: fieldColorScheme, s: scheme})
}

// IsButton reports whether the link renders button-styled.
func (l *Link) IsButton() bool { return l.state.IsButton }

// SetIsButton switches between button and text-link rendering.
func (l *Link) SetIsButton(v bool) {
	l.set(change{f: fieldIsButton, b: v})
}

// IsExternal reports whether the link opens externally.
func (l *Link) IsExternal() bool { return l.state.IsExternal }

// SetIsExternal toggles target=_blank plus rel=noopener noreferrer.
func (l *Link) SetIsExternal(v bool) {
	l.set(change{f: fieldIsExternal, b: v})
}

// Label returns the link text.
func (l *Link) Label() string { return l.state.Label }

// SetLabel sets the link text and re-renders.
func (l *Link) SetLabel(label string) {
	l.set(change{f: fieldLabel, s: label})
}

func (l *Link) set(c change) {
	l.push(c)
	l.drain()
}
