package linkel

import (
	"strings"

	"github.com/pthm/linkel/lib/dom"
)

// applyState projects st onto el. Every output attribute is recomputed on
// every call, in a fixed order independent of which field changed, so no
// attribute can drift out of sync with State.
//
// The projection is idempotent: element writes whose value is already in
// place are skipped at the substrate level, so a second call with
// identical state changes nothing observable and emits no mutation
// records. That makes it safe for several channels to each request a
// render for what is logically one external edit.
func applyState(st State, el *dom.Element) {
	// href tracks URL unconditionally; an absent URL renders an empty
	// href rather than erroring.
	el.SetAttr("href", st.URL)

	if st.IsExternal {
		el.SetAttr("target", "_blank")
		el.SetAttr("rel", "noopener noreferrer")
	} else {
		el.RemoveAttr("target")
		el.RemoveAttr("rel")
	}

	if st.IsButton {
		el.SetAttr("role", "button")
		el.SetAttr("aria-label", st.Label)
		// Unrecognized scheme tokens pass through uninterpreted; the
		// presentation layer owns their meaning. TrimSpace keeps an
		// empty scheme from leaving a trailing space in the class.
		el.SetAttr("class", strings.TrimSpace("button "+st.ColorScheme))
	} else {
		el.SetAttr("class", "text-link")
		el.RemoveAttr("role")
		el.RemoveAttr("aria-label")
	}

	if el.Text() != st.Label {
		el.SetText(st.Label)
	}
}
