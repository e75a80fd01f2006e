package linkel

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/linkel/lib/dom"
)

// Component returns a templ component that writes the link's settled outer
// HTML, so a mounted link can be embedded in templ pages alongside
// ordinary templates:
//
//	@link.Component()
//
// The write reflects the element at render time; drive the document's
// scheduler to quiescence first if edits are still pending.
func (l *Link) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if !l.mounted {
			return ErrNotMounted
		}
		_, err := io.WriteString(w, dom.OuterHTML(l.el))
		return err
	})
}

// Fragment returns a templ component writing a whole parsed fragment,
// typically ParseFragment output containing one or more cmp-link elements
// among surrounding markup.
func Fragment(nodes []dom.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, dom.SerializeFragment(nodes))
		return err
	})
}
