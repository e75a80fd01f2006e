package linkel

import "github.com/pthm/linkel/lib/dom"

// TagName is the fixed custom-element tag the component registers under.
// The tag is an external interface contract; renaming it breaks every
// document that uses the component.
const TagName = "cmp-link"

// ElementDefinition wires the Link lifecycle into a dom.Registry: it
// mounts a Link when a cmp-link element connects, routes observed
// attribute callbacks to the link's attribute channel, and unmounts on
// disconnect. One definition serves any number of element instances.
type ElementDefinition struct {
	links map[*dom.Element]*Link
}

// Register defines the cmp-link element on reg and returns the definition
// for instance lookup. Registering the tag twice fails with the registry's
// collision error.
func Register(reg *dom.Registry) (*ElementDefinition, error) {
	def := &ElementDefinition{links: make(map[*dom.Element]*Link)}
	if err := reg.Define(TagName, def); err != nil {
		return nil, err
	}
	return def, nil
}

// ObservedAttributes declares the scalar attributes the host watches.
// Marker attributes are intentionally absent: they are tracked through
// the mutation observer's attribute filter instead.
func (d *ElementDefinition) ObservedAttributes() []string {
	return []string{AttrURL, AttrColorScheme}
}

// Connected mounts a Link on the newly upgraded element.
func (d *ElementDefinition) Connected(el *dom.Element) {
	_, _ = d.Mount(el)
}

// Mount mounts a Link on el and tracks it for LinkFor lookup. Embedders
// managing elements outside a registry upgrade can call this directly.
// Fails with ErrAlreadyLinked if the element already has a mounted link.
func (d *ElementDefinition) Mount(el *dom.Element) (*Link, error) {
	if _, exists := d.links[el]; exists {
		return nil, ErrAlreadyLinked
	}
	l, err := Mount(el)
	if err != nil {
		return nil, err
	}
	d.links[el] = l
	return l, nil
}

// Disconnected unmounts and forgets the element's Link.
func (d *ElementDefinition) Disconnected(el *dom.Element) {
	if l, ok := d.links[el]; ok {
		_ = l.Unmount()
		delete(d.links, el)
	}
}

// AttributeChanged routes an observed-attribute callback to the element's
// Link.
func (d *ElementDefinition) AttributeChanged(el *dom.Element, name, oldValue, newValue string) {
	if l, ok := d.links[el]; ok {
		l.handleAttributeChanged(name, oldValue, newValue)
	}
}

// LinkFor returns the Link mounted on el, if any.
func (d *ElementDefinition) LinkFor(el *dom.Element) (*Link, bool) {
	l, ok := d.links[el]
	return l, ok
}
