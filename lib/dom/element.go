package dom

import (
	"strings"

	"go.uber.org/zap"
)

// Document owns one element tree's delivery machinery: the scheduler that
// serializes callback delivery, the custom-element registry consulted when
// elements are created or parsed, and the set of active mutation observers.
type Document struct {
	sched     *Scheduler
	reg       *Registry
	log       *zap.Logger
	observers []*Observer
}

// Option configures a Document.
type Option func(*Document)

// WithLogger attaches a zap logger used for scheduler and delivery debug
// logging. The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(d *Document) {
		d.log = log
	}
}

// NewDocument creates a document backed by the given registry.
// A nil registry is valid; no element will be upgraded.
func NewDocument(reg *Registry, opts ...Option) *Document {
	d := &Document{reg: reg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(d)
	}
	d.sched = NewScheduler(d.log)
	return d
}

// Scheduler returns the document's task scheduler. Tests and embedders
// drive delivery by calling Step or Flush on it.
func (d *Document) Scheduler() *Scheduler {
	return d.sched
}

// CreateElement creates an element owned by this document and upgrades it
// immediately if its tag has a registered definition.
func (d *Document) CreateElement(tag string) *Element {
	e := &Element{doc: d, tag: strings.ToLower(tag)}
	d.upgrade(e)
	return e
}

// upgrade attaches the tag's definition, if any, and fires Connected.
func (d *Document) upgrade(e *Element) {
	if d.reg == nil || e.def != nil {
		return
	}
	def, ok := d.reg.Lookup(e.tag)
	if !ok {
		return
	}
	e.def = def
	def.Connected(e)
}

// Node is a member of the element tree: either *Element or *Text.
type Node interface {
	setParent(p *Element)
	writeText(sb *strings.Builder)
}

// Attr is a single named attribute. Attribute order is preserved so
// serialization is deterministic.
type Attr struct {
	Name  string
	Value string
}

// Element is a node with a tag, ordered attributes, and children.
type Element struct {
	doc    *Document
	tag    string
	parent *Element
	attrs  []Attr
	kids   []Node
	def    Definition
}

func (e *Element) setParent(p *Element) { e.parent = p }

func (e *Element) writeText(sb *strings.Builder) {
	for _, kid := range e.kids {
		kid.writeText(sb)
	}
}

// Tag returns the element's lower-cased tag name.
func (e *Element) Tag() string { return e.tag }

// Parent returns the parent element, or nil for a detached root.
func (e *Element) Parent() *Element { return e.parent }

// Document returns the owning document.
func (e *Element) Document() *Document { return e.doc }

// Attrs returns a copy of the attribute list in document order.
func (e *Element) Attrs() []Attr {
	out := make([]Attr, len(e.attrs))
	copy(out, e.attrs)
	return out
}

// Attr returns the attribute's value, or "" when absent. Use HasAttr to
// distinguish an absent attribute from an explicit empty value.
func (e *Element) Attr(name string) string {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// HasAttr reports whether the attribute is present, regardless of value.
func (e *Element) HasAttr(name string) bool {
	for _, a := range e.attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}

// SetAttr sets an attribute, emitting an attributes mutation record and,
// when the element is upgraded and the name is observed, scheduling an
// AttributeChanged callback. Writing a value identical to the current one
// is a no-op and emits nothing, which keeps redundant renders inert.
func (e *Element) SetAttr(name, value string) {
	for i, a := range e.attrs {
		if a.Name == name {
			if a.Value == value {
				return
			}
			e.attrs[i].Value = value
			e.attrChanged(name, a.Value, value)
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
	e.attrChanged(name, "", value)
}

// RemoveAttr removes an attribute if present.
func (e *Element) RemoveAttr(name string) {
	for i, a := range e.attrs {
		if a.Name == name {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			e.attrChanged(name, a.Value, "")
			return
		}
	}
}

func (e *Element) attrChanged(name, old, value string) {
	e.doc.notify(Record{Type: MutationAttributes, Target: e, AttrName: name, OldValue: old})
	if e.def == nil {
		return
	}
	for _, obs := range e.def.ObservedAttributes() {
		if obs == name {
			def, el := e.def, e
			e.doc.sched.Enqueue(func() {
				def.AttributeChanged(el, name, old, value)
			})
			return
		}
	}
}

// Children returns a copy of the child node list.
func (e *Element) Children() []Node {
	out := make([]Node, len(e.kids))
	copy(out, e.kids)
	return out
}

// AppendChild appends a node, emitting a childList record.
// Element children must belong to the same document.
func (e *Element) AppendChild(n Node) {
	n.setParent(e)
	if el, ok := n.(*Element); ok {
		el.doc = e.doc
	}
	e.kids = append(e.kids, n)
	e.doc.notify(Record{Type: MutationChildList, Target: e})
}

// RemoveChild detaches a child node. If the child is an upgraded element,
// its definition's Disconnected callback fires synchronously after the
// detach, matching unmount-before-further-delivery semantics.
func (e *Element) RemoveChild(n Node) {
	for i, kid := range e.kids {
		if kid == n {
			e.kids = append(e.kids[:i], e.kids[i+1:]...)
			n.setParent(nil)
			e.doc.notify(Record{Type: MutationChildList, Target: e})
			if el, ok := n.(*Element); ok && el.def != nil {
				el.def.Disconnected(el)
			}
			return
		}
	}
}

// Remove detaches the element from its parent, if any.
func (e *Element) Remove() {
	if e.parent != nil {
		e.parent.RemoveChild(e)
	}
}

// AppendText appends a new text node and returns it.
func (e *Element) AppendText(data string) *Text {
	t := &Text{data: data}
	e.AppendChild(t)
	return t
}

// Text returns the concatenated text content of the whole subtree.
// This is the read components should use: a narrow fragment read can
// desynchronize from the element's true rendered text when edits land
// inside nested text nodes.
func (e *Element) Text() string {
	var sb strings.Builder
	e.writeText(&sb)
	return sb.String()
}

// SetText replaces all children with a single text node, emitting one
// childList record.
func (e *Element) SetText(data string) {
	for _, kid := range e.kids {
		kid.setParent(nil)
	}
	e.kids = e.kids[:0]
	t := &Text{data: data, parent: e}
	e.kids = append(e.kids, t)
	e.doc.notify(Record{Type: MutationChildList, Target: e})
}

// Contains reports whether other is a descendant of e.
func (e *Element) Contains(other *Element) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == e {
			return true
		}
	}
	return false
}

// Text is a leaf text node.
type Text struct {
	parent *Element
	data   string
}

func (t *Text) setParent(p *Element) { t.parent = p }

func (t *Text) writeText(sb *strings.Builder) { sb.WriteString(t.data) }

// Data returns the node's text.
func (t *Text) Data() string { return t.data }

// SetData replaces the node's text, emitting a characterData record
// targeting the parent element. Writing identical text is a no-op.
func (t *Text) SetData(data string) {
	if t.data == data {
		return
	}
	old := t.data
	t.data = data
	if t.parent != nil {
		t.parent.doc.notify(Record{Type: MutationCharacterData, Target: t.parent, OldValue: old})
	}
}
