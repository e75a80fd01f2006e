package linkel

// change is one normalized external edit: a target field and its new
// value. Every channel - attribute callbacks, mutation batches, property
// setters, snapshot restores - reduces its edits to changes on one queue,
// so the engine has a single application path regardless of which channel
// a write arrived on.
type change struct {
	f field
	s string
	b bool
}

// maxDrainPasses bounds re-entrant drain work. A drain that keeps finding
// new queued changes after applying a full pass is feeding on its own
// output; the renderer's write-skip makes that impossible in practice, so
// the bound is a defensive cutoff, not a control mechanism.
const maxDrainPasses = 2

func (l *Link) push(c change) {
	l.queue = append(l.queue, c)
}

// drain applies every pending change to State in queue order, then invokes
// the renderer exactly once if anything actually changed. Applying a batch
// wholesale before the single render is equivalent to per-record renders
// (the renderer is a pure function of final State) and far cheaper.
func (l *Link) drain() {
	if !l.mounted {
		l.queue = nil
		return
	}
	for pass := 0; pass < maxDrainPasses; pass++ {
		pending := l.queue
		l.queue = nil

		changed := false
		for _, c := range pending {
			if l.apply(c) {
				changed = true
			}
		}
		if changed {
			applyState(l.state, l.el)
		}
		// Verification pass: anything queued during render gets one
		// more application. Quiescent queue means fixpoint.
		if len(l.queue) == 0 {
			return
		}
	}
	l.queue = nil
}

// apply writes one change into State, reporting whether the stored value
// differed. No-op writes (same value re-delivered, e.g. by the observer
// seeing the renderer's own text write) report false and trigger nothing.
func (l *Link) apply(c change) bool {
	switch c.f {
	case fieldURL:
		if l.state.URL == c.s {
			return false
		}
		l.state.URL = c.s
	case fieldColorScheme:
		if l.state.ColorScheme == c.s {
			return false
		}
		l.state.ColorScheme = c.s
	case fieldIsButton:
		if l.state.IsButton == c.b {
			return false
		}
		l.state.IsButton = c.b
	case fieldIsExternal:
		if l.state.IsExternal == c.b {
			return false
		}
		l.state.IsExternal = c.b
	case fieldLabel:
		if l.state.Label == c.s {
			return false
		}
		l.state.Label = c.s
	default:
		return false
	}
	return true
}
