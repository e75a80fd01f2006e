package linkel

import "github.com/pthm/linkel/lib/dom"

// Link is one mounted link component: canonical State plus exclusive
// ownership of its output element and mutation subscription. Independent
// Links share nothing.
//
// Links are normally created by the registry when a cmp-link element is
// parsed or created (see Register). Mount exists for embedders that manage
// elements directly.
type Link struct {
	el      *dom.Element
	obs     *dom.Observer
	state   State
	queue   []change
	mounted bool
}

// Mount attaches a new Link to el: State is seeded from the element's
// current attributes, marker presence, and full text content via the
// enumerated field table; the mutation subscription is registered; and the
// first render runs synchronously.
func Mount(el *dom.Element) (*Link, error) {
	if el == nil {
		return nil, ErrNilElement
	}
	l := &Link{el: el, state: seedState(el)}
	l.obs = el.Document().NewObserver(l.handleMutations)
	l.obs.Observe(el, dom.ObserveOptions{
		Subtree:         true,
		ChildList:       true,
		CharacterData:   true,
		Attributes:      true,
		AttributeFilter: []string{AttrIsButton, AttrIsExternal},
	})
	l.mounted = true
	applyState(l.state, l.el)
	return l, nil
}

// Unmount cancels the mutation subscription - no callbacks fire after this
// returns, even for records already queued - and releases the element
// reference. State getters keep returning the last canonical values;
// setters become no-ops.
func (l *Link) Unmount() error {
	if !l.mounted {
		return ErrNotMounted
	}
	l.mounted = false
	l.obs.Disconnect()
	l.obs = nil
	l.el = nil
	l.queue = nil
	return nil
}

// Mounted reports whether the link currently owns an element.
func (l *Link) Mounted() bool {
	return l.mounted
}

// Element returns the owned output element, or nil after unmount.
func (l *Link) Element() *dom.Element {
	return l.el
}

// State returns a copy of the canonical state.
func (l *Link) State() State {
	return l.state
}
