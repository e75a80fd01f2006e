// Package dom provides the in-process document substrate that linkel
// components live in: an element tree with ordered attributes and text
// nodes, a custom-element registry, and asynchronous change delivery.
//
// The substrate is deliberately small. It models the parts of a document
// runtime that a self-synchronizing component actually depends on:
//
//   - Element mutations (attributes, text, children) emit MutationRecords
//     to observers registered with Document.NewObserver.
//   - Elements whose tag has a registered Definition receive lifecycle
//     callbacks (Connected, Disconnected) and AttributeChanged callbacks
//     for their declared observed attributes.
//   - All callbacks are delivered asynchronously through a single-threaded
//     Scheduler. Edits made synchronously within one tick are batched into
//     one ordered record slice per observer.
//
// There is no layout, styling, or event system here - components own their
// output node and the document owns delivery order, nothing more.
//
// Markup enters and leaves the tree through ParseFragment and OuterHTML,
// built on golang.org/x/net/html.
package dom
