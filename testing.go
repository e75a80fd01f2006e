package linkel

import (
	"strings"

	"go.uber.org/zap"

	"github.com/pthm/linkel/lib/dom"
)

// Fixture holds a fully wired component under test: a private registry
// with cmp-link defined, a document, the parsed nodes, and the first
// cmp-link element with its mounted Link.
//
// Typical usage:
//
//	f, err := linkel.MountFixture(`<cmp-link url="/docs">Docs</cmp-link>`)
//	f.El.SetAttr("is-button", "")
//	f.Flush()
//	if !f.Result().HasAttr("role", "button") { ... }
type Fixture struct {
	Doc   *dom.Document
	Def   *ElementDefinition
	Nodes []dom.Node
	El    *dom.Element
	Link  *Link
}

// MountFixture parses markup, mounts the first cmp-link element it
// contains, and flushes the scheduler so the fixture starts settled.
func MountFixture(markup string) (*Fixture, error) {
	return MountFixtureWithLogger(markup, nil)
}

// MountFixtureWithLogger is MountFixture with an attached zap logger,
// for debugging delivery order in a failing test.
func MountFixtureWithLogger(markup string, log *zap.Logger) (*Fixture, error) {
	reg := dom.NewRegistry()
	def, err := Register(reg)
	if err != nil {
		return nil, err
	}

	var opts []dom.Option
	if log != nil {
		opts = append(opts, dom.WithLogger(log))
	}
	doc := dom.NewDocument(reg, opts...)

	nodes, err := doc.ParseFragment(markup)
	if err != nil {
		return nil, err
	}

	el := dom.FindByTag(nodes, TagName)
	if el == nil {
		return nil, ErrNoLinkElement
	}
	link, ok := def.LinkFor(el)
	if !ok {
		return nil, ErrNotMounted
	}

	f := &Fixture{Doc: doc, Def: def, Nodes: nodes, El: el, Link: link}
	f.Flush()
	return f, nil
}

// Flush drives the document's scheduler to quiescence and returns the
// number of ticks run. Call after external edits to deliver the resulting
// callbacks.
func (f *Fixture) Flush() int {
	return f.Doc.Scheduler().Flush()
}

// Result captures the element's current rendered output for assertions.
func (f *Fixture) Result() *RenderResult {
	attrs := make(map[string]string)
	for _, a := range f.El.Attrs() {
		attrs[a.Name] = a.Value
	}
	return &RenderResult{
		HTML:  dom.OuterHTML(f.El),
		Attrs: attrs,
		Text:  f.El.Text(),
	}
}

// RenderResult is a point-in-time snapshot of the rendered element.
type RenderResult struct {
	HTML  string
	Attrs map[string]string
	Text  string
}

// HasAttr checks that an attribute is present with the given value.
func (r *RenderResult) HasAttr(name, value string) bool {
	v, ok := r.Attrs[name]
	return ok && v == value
}

// AttrPresent checks that an attribute is present with any value.
func (r *RenderResult) AttrPresent(name string) bool {
	_, ok := r.Attrs[name]
	return ok
}

// AttrAbsent checks that an attribute is not present at all.
func (r *RenderResult) AttrAbsent(name string) bool {
	_, ok := r.Attrs[name]
	return !ok
}

// HTMLContains checks if the serialized output contains a substring.
func (r *RenderResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// Equal reports whether two captures are byte-identical renders.
func (r *RenderResult) Equal(other *RenderResult) bool {
	return r.HTML == other.HTML
}
