package dom

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTagDefined is returned by Define on a tag-name collision.
var ErrTagDefined = errors.New("dom: tag already defined")

// ErrInvalidTag is returned by Define for tag names that are not valid
// custom-element names (lower-case, at least one hyphen).
var ErrInvalidTag = errors.New("dom: invalid custom element tag")

// Definition is the lifecycle contract a custom element implements.
//
// ObservedAttributes declares, up front, the exact attribute names for
// which AttributeChanged callbacks are delivered. The host only watches
// declared names; everything else an element needs to track (marker
// attributes, text) must come through a mutation observer.
//
// Connected fires when an element with the defined tag is created or
// parsed. Disconnected fires when the element is detached from its parent.
// AttributeChanged is delivered asynchronously, one call per attribute
// edit, carrying the previous and new values.
type Definition interface {
	ObservedAttributes() []string
	Connected(el *Element)
	Disconnected(el *Element)
	AttributeChanged(el *Element, name, oldValue, newValue string)
}

// Registry maps custom-element tag names to definitions. Registration is
// explicit and happens before documents are built; the registry itself is
// immutable from the document's point of view.
type Registry struct {
	defs map[string]Definition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Definition)}
}

// Define registers a definition under a tag name.
func (r *Registry) Define(tag string, def Definition) error {
	tag = strings.ToLower(tag)
	if !validTag(tag) {
		return fmt.Errorf("%w: %q", ErrInvalidTag, tag)
	}
	if _, exists := r.defs[tag]; exists {
		return fmt.Errorf("%w: %q", ErrTagDefined, tag)
	}
	r.defs[tag] = def
	return nil
}

// Lookup returns the definition for a tag, if any.
func (r *Registry) Lookup(tag string) (Definition, bool) {
	def, ok := r.defs[strings.ToLower(tag)]
	return def, ok
}

// validTag accepts lower-case names containing a hyphen, the customary
// shape for custom-element tags.
func validTag(tag string) bool {
	if tag == "" || !strings.Contains(tag, "-") {
		return false
	}
	for _, r := range tag {
		if r >= 'A' && r <= 'Z' {
			return false
		}
	}
	return true
}
