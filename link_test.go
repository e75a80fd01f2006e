package linkel

import (
	"testing"

	"github.com/pthm/linkel/lib/dom"
)

func TestMountPlainTextLink(t *testing.T) {
	f, err := MountFixture(`<cmp-link url="https://example.com">Learn more</cmp-link>`)
	if err != nil {
		t.Fatalf("MountFixture failed: %v", err)
	}

	r := f.Result()
	if !r.HasAttr("href", "https://example.com") {
		t.Errorf("href = %q, want %q", r.Attrs["href"], "https://example.com")
	}
	if !r.HasAttr("class", "text-link") {
		t.Errorf("class = %q, want %q", r.Attrs["class"], "text-link")
	}
	if r.Text != "Learn more" {
		t.Errorf("text = %q, want %q", r.Text, "Learn more")
	}
	for _, name := range []string{"role", "target", "rel", "aria-label"} {
		if !r.AttrAbsent(name) {
			t.Errorf("%s should be absent on a plain text link", name)
		}
	}
}

func TestMountSeedsFromMarkup(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   State
	}{
		{
			name:   "all defaults",
			markup: `<cmp-link></cmp-link>`,
			want:   State{},
		},
		{
			name:   "scalars",
			markup: `<cmp-link url="/docs" color-scheme="secondary">Docs</cmp-link>`,
			want:   State{URL: "/docs", ColorScheme: "secondary", Label: "Docs"},
		},
		{
			name:   "markers present",
			markup: `<cmp-link url="/x" is-button="" is-external="">Go</cmp-link>`,
			want:   State{URL: "/x", IsButton: true, IsExternal: true, Label: "Go"},
		},
		{
			name:   "marker with false-like value is still true",
			markup: `<cmp-link is-button="false">Go</cmp-link>`,
			want:   State{IsButton: true, Label: "Go"},
		},
		{
			name:   "nested text fragments seed the full label",
			markup: `<cmp-link url="/x">Learn <b>more</b></cmp-link>`,
			want:   State{URL: "/x", Label: "Learn more"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := MountFixture(tt.markup)
			if err != nil {
				t.Fatalf("MountFixture failed: %v", err)
			}
			if got := f.Link.State(); got != tt.want {
				t.Errorf("State = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestButtonUpgradeScenario(t *testing.T) {
	f, err := MountFixture(`<cmp-link url="https://example.com">Learn more</cmp-link>`)
	if err != nil {
		t.Fatalf("MountFixture failed: %v", err)
	}

	f.Link.SetIsButton(true)
	f.Link.SetColorScheme("secondary")

	r := f.Result()
	if !r.HasAttr("role", "button") {
		t.Errorf("role = %q, want button", r.Attrs["role"])
	}
	if !r.HasAttr("aria-label", "Learn more") {
		t.Errorf("aria-label = %q, want %q", r.Attrs["aria-label"], "Learn more")
	}
	if !r.HasAttr("class", "button secondary") {
		t.Errorf("class = %q, want %q", r.Attrs["class"], "button secondary")
	}
	if !r.HasAttr("href", "https://example.com") {
		t.Error("href must survive the button upgrade")
	}
}

func TestExternalMarkerViaStructuralEdit(t *testing.T) {
	tests := []struct {
		name   string
		markup string
	}{
		{"plain link", `<cmp-link url="/x">Go</cmp-link>`},
		{"button link", `<cmp-link url="/x" is-button="">Go</cmp-link>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := MountFixture(tt.markup)
			if err != nil {
				t.Fatalf("MountFixture failed: %v", err)
			}

			f.El.SetAttr("is-external", "")
			f.Flush()

			r := f.Result()
			if !r.HasAttr("target", "_blank") {
				t.Errorf("target = %q, want _blank", r.Attrs["target"])
			}
			if !r.HasAttr("rel", "noopener noreferrer") {
				t.Errorf("rel = %q, want noopener noreferrer", r.Attrs["rel"])
			}
		})
	}
}

func TestMarkerRemovalClearsFlag(t *testing.T) {
	f, err := MountFixture(`<cmp-link url="/x" is-external="">Go</cmp-link>`)
	if err != nil {
		t.Fatalf("MountFixture failed: %v", err)
	}

	f.El.RemoveAttr("is-external")
	f.Flush()

	r := f.Result()
	if !r.AttrAbsent("target") || !r.AttrAbsent("rel") {
		t.Error("target and rel must both be removed when is-external is cleared")
	}
	if f.Link.IsExternal() {
		t.Error("IsExternal should be false after marker removal")
	}
}

func TestObservedAttributeEditUpdatesState(t *testing.T) {
	f, err := MountFixture(`<cmp-link url="/old">Go</cmp-link>`)
	if err != nil {
		t.Fatalf("MountFixture failed: %v", err)
	}

	f.El.SetAttr("url", "/new")
	f.El.SetAttr("color-scheme", "primary")
	f.Flush()

	if f.Link.URL() != "/new" {
		t.Errorf("URL = %q, want %q", f.Link.URL(), "/new")
	}
	if f.Link.ColorScheme() != "primary" {
		t.Errorf("ColorScheme = %q, want %q", f.Link.ColorScheme(), "primary")
	}
	if !f.Result().HasAttr("href", "/new") {
		t.Error("href should track the url attribute edit")
	}
}

func TestEmptyToValueTransitionIsNotSkipped(t *testing.T) {
	// An explicit empty url must not be confused with an absent one: the
	// transition from "" to a real value is a significant change.
	f, err := MountFixture(`<cmp-link url="">Go</cmp-link>`)
	if err != nil {
		t.Fatalf("MountFixture failed: %v", err)
	}

	f.El.SetAttr("url", "https://example.com")
	f.Flush()

	if f.Link.URL() != "https://example.com" {
		t.Errorf("URL = %q, want the empty-to-value transition applied", f.Link.URL())
	}
	if !f.Result().HasAttr("href", "https://example.com") {
		t.Error("href should reflect the transition from explicit empty")
	}
}

func TestNestedTextEditResyncsWholeLabel(t *testing.T) {
	f, err := MountFixture(`<cmp-link url="/x" is-button="">Learn <b>more</b></cmp-link>`)
	if err != nil {
		t.Fatalf("MountFixture failed: %v", err)
	}

	// Edit the nested fragment only; label must re-read the whole root.
	b := dom.FindByTag(f.El.Children(), "b")
	if b == nil {
		t.Fatal("nested element not found")
	}
	b.SetText("even more")
	f.Flush()

	if got := f.Link.Label(); got != "Learn even more" {
		t.Errorf("Label = %q, want %q", got, "Learn even more")
	}
	if !f.Result().HasAttr("aria-label", "Learn even more") {
		t.Error("aria-label should track the resynced label")
	}
}

func TestUnmountStopsDelivery(t *testing.T) {
	f, err := MountFixture(`<cmp-link url="/x">Go</cmp-link>`)
	if err != nil {
		t.Fatalf("MountFixture failed: %v", err)
	}

	if err := f.Link.Unmount(); err != nil {
		t.Fatalf("Unmount failed: %v", err)
	}
	if f.Link.Mounted() {
		t.Error("link should report unmounted")
	}

	f.El.SetAttr("is-button", "")
	f.Flush()
	if f.Link.IsButton() {
		t.Error("edits after unmount must not reach state")
	}

	if err := f.Link.Unmount(); !IsNotMounted(err) {
		t.Errorf("second Unmount = %v, want ErrNotMounted", err)
	}
}

func TestDetachUnmountsThroughDefinition(t *testing.T) {
	f, err := MountFixture(`<div><cmp-link url="/x">Go</cmp-link></div>`)
	if err != nil {
		t.Fatalf("MountFixture failed: %v", err)
	}

	f.El.Remove()
	if f.Link.Mounted() {
		t.Error("detaching the element should unmount the link")
	}
	if _, ok := f.Def.LinkFor(f.El); ok {
		t.Error("definition should forget a detached element")
	}
}

func TestMountNilElement(t *testing.T) {
	if _, err := Mount(nil); err != ErrNilElement {
		t.Errorf("Mount(nil) = %v, want ErrNilElement", err)
	}
}
