package linkel

import "github.com/pthm/linkel/lib/dom"

// handleAttributeChanged is the scalar-attribute channel. The host only
// delivers callbacks for the declared observed attributes (url and
// color-scheme); marker attributes deliberately route through the
// mutation channel instead, because observed-attribute declarations are
// fixed in advance and presence changes are what matter for markers.
//
// Significance is judged against the value last applied to State, not
// against the host's reported old value: an earlier variant of this
// component treated an empty-string old value as "absent" and silently
// dropped explicit-empty-to-real transitions.
func (l *Link) handleAttributeChanged(name, oldValue, newValue string) {
	if oldValue == newValue {
		return
	}
	switch name {
	case AttrURL:
		if newValue == l.state.URL {
			return
		}
		l.push(change{f: fieldURL, s: newValue})
	case AttrColorScheme:
		if newValue == l.state.ColorScheme {
			return
		}
		l.push(change{f: fieldColorScheme, s: newValue})
	default:
		return
	}
	l.drain()
}

// handleMutations is the coarse mutation channel: one ordered batch of
// heterogeneous records per tick, covering text-shape changes anywhere in
// the subtree and presence changes of the two marker attributes.
//
// Text records always re-read the root's full text content, never the
// mutated fragment - edits inside nested text nodes would otherwise
// desynchronize Label from the element's true rendered text. Marker
// records reduce to attribute presence; the value, including an explicit
// "false", is irrelevant.
//
// Records are processed strictly in delivered order, and the queue drains
// once at the end of the batch, so N records cost one render.
func (l *Link) handleMutations(recs []dom.Record) {
	for _, rec := range recs {
		switch rec.Type {
		case dom.MutationChildList, dom.MutationCharacterData:
			l.push(change{f: fieldLabel, s: l.el.Text()})
		case dom.MutationAttributes:
			switch rec.AttrName {
			case AttrIsButton:
				l.push(change{f: fieldIsButton, b: l.el.HasAttr(AttrIsButton)})
			case AttrIsExternal:
				l.push(change{f: fieldIsExternal, b: l.el.HasAttr(AttrIsExternal)})
			}
		}
	}
	l.drain()
}
