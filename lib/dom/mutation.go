package dom

import "go.uber.org/zap"

// MutationType classifies a mutation record.
type MutationType string

const (
	// MutationChildList reports child nodes added or removed.
	MutationChildList MutationType = "childList"

	// MutationCharacterData reports a text node edit. The record targets
	// the text node's parent element.
	MutationCharacterData MutationType = "characterData"

	// MutationAttributes reports an attribute set or removed.
	MutationAttributes MutationType = "attributes"
)

// Record describes one observed mutation. Records are delivered to
// observers in the order the mutations occurred.
type Record struct {
	Type     MutationType
	Target   *Element
	AttrName string // attributes records only
	OldValue string // previous attribute value or text
}

// ObserveOptions selects which mutations an observer receives.
type ObserveOptions struct {
	// Subtree extends observation to all descendants of the target.
	Subtree bool

	// ChildList delivers childList records.
	ChildList bool

	// CharacterData delivers characterData records.
	CharacterData bool

	// Attributes delivers attributes records.
	Attributes bool

	// AttributeFilter restricts attributes records to these names.
	// Empty means all attributes.
	AttributeFilter []string
}

// Observer receives batched mutation records. One observer owns at most
// one subscription; Observe replaces any previous target.
//
// Delivery is asynchronous: records accumulate as mutations happen and are
// handed to the callback as one ordered slice on a later scheduler tick.
// After Disconnect no further callbacks fire, even for records already
// queued.
type Observer struct {
	doc       *Document
	fn        func([]Record)
	target    *Element
	opts      ObserveOptions
	pending   []Record
	scheduled bool
	active    bool
}

// NewObserver creates an observer that delivers records to fn.
func (d *Document) NewObserver(fn func([]Record)) *Observer {
	o := &Observer{doc: d, fn: fn}
	d.observers = append(d.observers, o)
	return o
}

// Observe subscribes the observer to mutations on target per opts.
func (o *Observer) Observe(target *Element, opts ObserveOptions) {
	o.target = target
	o.opts = opts
	o.active = true
}

// Disconnect cancels the subscription and drops any undelivered records.
func (o *Observer) Disconnect() {
	o.active = false
	o.pending = nil
	for i, obs := range o.doc.observers {
		if obs == o {
			o.doc.observers = append(o.doc.observers[:i], o.doc.observers[i+1:]...)
			break
		}
	}
}

// notify routes a record to every matching observer and schedules delivery.
func (d *Document) notify(rec Record) {
	for _, o := range d.observers {
		if !o.matches(rec) {
			continue
		}
		o.pending = append(o.pending, rec)
		if !o.scheduled {
			o.scheduled = true
			d.sched.Enqueue(o.deliver)
		}
	}
}

func (o *Observer) matches(rec Record) bool {
	if !o.active || o.target == nil {
		return false
	}
	if rec.Target != o.target {
		if !o.opts.Subtree || !o.target.Contains(rec.Target) {
			return false
		}
	}
	switch rec.Type {
	case MutationChildList:
		return o.opts.ChildList
	case MutationCharacterData:
		return o.opts.CharacterData
	case MutationAttributes:
		if !o.opts.Attributes {
			return false
		}
		if len(o.opts.AttributeFilter) == 0 {
			return true
		}
		for _, name := range o.opts.AttributeFilter {
			if name == rec.AttrName {
				return true
			}
		}
		return false
	}
	return false
}

// deliver hands all pending records to the callback. Runs as a scheduler
// task; records produced by the callback itself schedule a fresh delivery
// on a later tick.
func (o *Observer) deliver() {
	o.scheduled = false
	if !o.active || len(o.pending) == 0 {
		o.pending = nil
		return
	}
	batch := o.pending
	o.pending = nil
	o.doc.log.Debug("delivering mutation batch",
		zap.Int("records", len(batch)), zap.String("target", o.target.Tag()))
	o.fn(batch)
}
