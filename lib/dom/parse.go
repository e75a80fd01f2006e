package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// voidTags never carry children and serialize without an end tag.
var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// ParseFragment parses markup into nodes owned by this document.
//
// The tree is built completely before any custom element is upgraded, so a
// definition's Connected callback always sees the element's initial
// attributes and text in place. Comments and other non-element, non-text
// content are dropped.
func (d *Document) ParseFragment(markup string) ([]Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	parsed, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, err
	}

	var nodes []Node
	for _, n := range parsed {
		if node := d.convert(n); node != nil {
			nodes = append(nodes, node)
		}
	}
	for _, node := range nodes {
		if el, ok := node.(*Element); ok {
			d.upgradeTree(el)
		}
	}
	return nodes, nil
}

// convert builds the dom tree silently - no mutation records fire for
// initial construction.
func (d *Document) convert(n *html.Node) Node {
	switch n.Type {
	case html.TextNode:
		return &Text{data: n.Data}
	case html.ElementNode:
		e := &Element{doc: d, tag: strings.ToLower(n.Data)}
		for _, a := range n.Attr {
			e.attrs = append(e.attrs, Attr{Name: strings.ToLower(a.Key), Value: a.Val})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if kid := d.convert(c); kid != nil {
				kid.setParent(e)
				e.kids = append(e.kids, kid)
			}
		}
		return e
	default:
		return nil
	}
}

// upgradeTree upgrades parent-first so ancestors mount before descendants.
func (d *Document) upgradeTree(e *Element) {
	d.upgrade(e)
	for _, kid := range e.kids {
		if el, ok := kid.(*Element); ok {
			d.upgradeTree(el)
		}
	}
}

// FindByTag returns the first element with the given tag in a depth-first
// walk of the node list, or nil.
func FindByTag(nodes []Node, tag string) *Element {
	tag = strings.ToLower(tag)
	for _, n := range nodes {
		el, ok := n.(*Element)
		if !ok {
			continue
		}
		if el.tag == tag {
			return el
		}
		if found := FindByTag(el.Children(), tag); found != nil {
			return found
		}
	}
	return nil
}

// OuterHTML serializes a node back to markup. Attribute order follows
// document order, so serialization is deterministic for a given tree.
func OuterHTML(n Node) string {
	var sb strings.Builder
	writeNode(&sb, n)
	return sb.String()
}

// SerializeFragment serializes a node list, typically ParseFragment output.
func SerializeFragment(nodes []Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		writeNode(&sb, n)
	}
	return sb.String()
}

func writeNode(sb *strings.Builder, n Node) {
	switch v := n.(type) {
	case *Text:
		sb.WriteString(html.EscapeString(v.data))
	case *Element:
		sb.WriteString("<")
		sb.WriteString(v.tag)
		for _, a := range v.attrs {
			sb.WriteString(" ")
			sb.WriteString(a.Name)
			sb.WriteString(`="`)
			sb.WriteString(html.EscapeString(a.Value))
			sb.WriteString(`"`)
		}
		sb.WriteString(">")
		if voidTags[v.tag] {
			return
		}
		for _, kid := range v.kids {
			writeNode(sb, kid)
		}
		sb.WriteString("</")
		sb.WriteString(v.tag)
		sb.WriteString(">")
	}
}
