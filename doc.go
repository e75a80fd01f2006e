// Package linkel implements a self-synchronizing hyperlink component for
// in-process documents: a custom element (tag "cmp-link") that renders as
// either a plain inline text link or a button-styled link.
//
// # Core Concepts
//
// A mounted Link owns exactly one output element and one canonical State
// holding its five configuration fields: URL, ColorScheme, IsButton,
// IsExternal, and Label. Nothing ever reads configuration back from the
// rendered element - the element is a pure projection of State.
//
// External edits reach the component through three channels:
//
//   - Attribute-changed callbacks for the declared observed attributes
//     "url" and "color-scheme" (the host only watches declared names).
//   - A subtree mutation observer covering text edits and presence changes
//     of the marker attributes "is-button" and "is-external".
//   - Typed property accessors for programmatic callers.
//
// Every channel normalizes its edits into one internal change queue. A
// drain applies all pending changes to State in order and invokes the
// renderer at most once, so a burst of edits costs one render. The
// renderer recomputes every output attribute from State on every call and
// skips writes whose value is already in place; rendering twice with
// unchanged state is byte-identical and emits no mutation records.
//
// The renderer's own text write is itself observable by the component's
// mutation observer. Because the re-delivered record reads back the value
// already stored in State, the cycle settles after one extra delivery -
// the engine verifies this fixpoint and defensively bounds re-entrant
// drain passes.
//
// # Marker Attributes
//
// IsButton and IsExternal are presence-based: any occurrence of the marker
// attribute means true, including is-button="false". Parsed truthy/falsy
// values are deliberately not interpreted; remove the attribute to clear
// the flag.
//
// # Registration
//
// Components are registered explicitly against a dom.Registry:
//
//	reg := dom.NewRegistry()
//	def, err := linkel.Register(reg)
//	doc := dom.NewDocument(reg)
//	nodes, err := doc.ParseFragment(`<cmp-link url="/docs">Read the docs</cmp-link>`)
//
// Parsing upgrades every cmp-link element: State is seeded from the
// initial markup through an enumerated field table, the observer is
// registered, and the first render runs. Detaching the element unmounts
// the component and cancels observation.
//
// # Snapshots
//
// State round-trips through signed or encrypted msgpack tokens
// (lib/encoding), giving servers a tamper-proof way to carry link
// configuration across requests:
//
//	tok, err := link.Snapshot(enc, false)
//	err = other.RestoreSnapshot(enc, tok, false)
//
// # Design Rationale
//
// The system favors explicitness over magic:
//   - Explicit registration (no init() side effects)
//   - Explicit field table (no blanket attribute-to-property reflection)
//   - Explicit presence semantics for marker attributes
//   - One canonical State; the rendered node is never authoritative
package linkel
