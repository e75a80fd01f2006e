package linkel

import "testing"

func TestSettersRenderSynchronously(t *testing.T) {
	f, err := MountFixture(`<cmp-link url="/old">Old</cmp-link>`)
	if err != nil {
		t.Fatalf("MountFixture failed: %v", err)
	}

	f.Link.SetURL("/new")
	f.Link.SetColorScheme("primary")
	f.Link.SetIsButton(true)
	f.Link.SetIsExternal(true)
	f.Link.SetLabel("New")

	// No flush: setters drain before returning.
	r := f.Result()
	if !r.HasAttr("href", "/new") {
		t.Errorf("href = %q, want /new", r.Attrs["href"])
	}
	if !r.HasAttr("class", "button primary") {
		t.Errorf("class = %q, want button primary", r.Attrs["class"])
	}
	if !r.HasAttr("target", "_blank") {
		t.Error("target should be set synchronously")
	}
	if r.Text != "New" {
		t.Errorf("text = %q, want New", r.Text)
	}
}

func TestGettersReadStateNotNode(t *testing.T) {
	f, err := MountFixture(`<cmp-link url="/x" color-scheme="primary" is-button="">Go</cmp-link>`)
	if err != nil {
		t.Fatalf("MountFixture failed: %v", err)
	}

	// Scribble directly on rendered output attributes. Getters must keep
	// returning canonical values - presentation is never authoritative.
	f.El.SetAttr("href", "/hijacked")
	f.El.SetAttr("class", "wrong")
	f.El.SetAttr("aria-label", "wrong")

	if f.Link.URL() != "/x" {
		t.Errorf("URL = %q, want canonical /x", f.Link.URL())
	}
	if f.Link.ColorScheme() != "primary" {
		t.Errorf("ColorScheme = %q, want canonical primary", f.Link.ColorScheme())
	}
	if f.Link.Label() != "Go" {
		t.Errorf("Label = %q, want canonical Go", f.Link.Label())
	}
}

func TestBooleanSettersAreStrict(t *testing.T) {
	f, err := MountFixture(`<cmp-link url="/x" is-button="">Go</cmp-link>`)
	if err != nil {
		t.Fatalf("MountFixture failed: %v", err)
	}

	f.Link.SetIsButton(false)
	if f.Link.IsButton() {
		t.Error("SetIsButton(false) should clear the flag")
	}
	if !f.Result().HasAttr("class", "text-link") {
		t.Error("clearing IsButton should demote to text-link")
	}

	f.Link.SetIsExternal(true)
	f.Link.SetIsExternal(false)
	r := f.Result()
	if !r.AttrAbsent("target") || !r.AttrAbsent("rel") {
		t.Error("SetIsExternal(false) should remove target and rel")
	}
}

func TestSettersAfterUnmountAreNoOps(t *testing.T) {
	f, err := MountFixture(`<cmp-link url="/x">Go</cmp-link>`)
	if err != nil {
		t.Fatalf("MountFixture failed: %v", err)
	}
	if err := f.Link.Unmount(); err != nil {
		t.Fatalf("Unmount failed: %v", err)
	}

	f.Link.SetURL("/nope")
	if f.Link.URL() != "/x" {
		t.Errorf("URL = %q, setters should be inert after unmount", f.Link.URL())
	}
}

func TestRedundantSetterDoesNotRender(t *testing.T) {
	f, err := MountFixture(`<cmp-link url="/x">Go</cmp-link>`)
	if err != nil {
		t.Fatalf("MountFixture failed: %v", err)
	}
	before := f.Result()

	f.Link.SetURL("/x")
	f.Link.SetLabel("Go")
	f.Flush()

	if !f.Result().Equal(before) {
		t.Error("setting unchanged values should not alter output")
	}
}
