package container_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/km-arc/go-container/framework/container"
)

// ── fixture graph ─────────────────────────────────────────────────────────────
//
// gadget → widget → part×2
//        → part

type part struct{ kind string }

type widget struct {
	a, b *part
}

type gadget struct {
	w     *widget
	spare *part
}

func partBinding(kind string) container.Binding {
	return container.NewBinding("test.Part", func(_ []any) any {
		return &part{kind: kind}
	})
}

func widgetBinding() container.Binding {
	return container.NewBinding("test.Widget",
		func(args []any) any {
			return &widget{a: args[0].(*part), b: args[1].(*part)}
		},
		container.Dep("a", "test.part"),
		container.Dep("b", "test.part"),
	)
}

func gadgetBinding() container.Binding {
	return container.NewBinding("test.Gadget",
		func(args []any) any {
			return &gadget{w: args[0].(*widget), spare: args[1].(*part)}
		},
		container.Dep("widget", "test.widget"),
		container.Dep("spare", "test.part"),
	)
}

func newFixture() *container.Container {
	c := container.New()
	c.Bind("test.part", partBinding("stock"))
	c.Bind("test.widget", widgetBinding())
	c.Bind("test.gadget", gadgetBinding())
	return c
}

// ── Registration & Make ───────────────────────────────────────────────────────

func TestMake_BuildsFromBlueprint(t *testing.T) {
	c := newFixture()

	v, err := c.Make("test.widget")
	if err != nil {
		t.Fatalf("Make: %v", err)
	}
	w := v.(*widget)
	if w.a.kind != "stock" || w.b.kind != "stock" {
		t.Errorf("widget parts: got %q/%q, want stock/stock", w.a.kind, w.b.kind)
	}
}

func TestMake_SiblingsAreDistinctInstances(t *testing.T) {
	c := newFixture()

	w := mustMake[*widget](t, c, "test.widget")
	if w.a == w.b {
		t.Error("sibling parts should be distinct instances, got shared pointer")
	}
}

func TestMake_EachCallBuildsFresh(t *testing.T) {
	c := newFixture()

	first := mustMake[*widget](t, c, "test.widget")
	second := mustMake[*widget](t, c, "test.widget")
	if first == second {
		t.Error("two Make calls returned the same instance — nothing should be cached")
	}
}

func TestMake_Unregistered(t *testing.T) {
	c := container.New()

	_, err := c.Make("nope")
	var unreg *container.UnregisteredError
	if !errors.As(err, &unreg) {
		t.Fatalf("got %v, want *UnregisteredError", err)
	}
	if unreg.Abstract != "nope" || unreg.Name != "" {
		t.Errorf("error fields: got (%q, %q), want (\"nope\", \"\")", unreg.Abstract, unreg.Name)
	}
}

func TestMake_UnregisteredLeafPropagates(t *testing.T) {
	c := container.New()
	c.Bind("test.widget", widgetBinding()) // "test.part" deliberately missing

	_, err := c.Make("test.widget")
	var unreg *container.UnregisteredError
	if !errors.As(err, &unreg) {
		t.Fatalf("got %v, want *UnregisteredError from nested resolution", err)
	}
	if unreg.Abstract != "test.part" {
		t.Errorf("Abstract: got %q, want \"test.part\"", unreg.Abstract)
	}
}

func TestBind_ReRegistrationReplaces(t *testing.T) {
	c := newFixture()
	c.Bind("test.part", partBinding("upgraded"))

	p := mustMake[*part](t, c, "test.part")
	if p.kind != "upgraded" {
		t.Errorf("got %q, want the later registration to win", p.kind)
	}
}

func TestInstance_SameReferenceEveryResolution(t *testing.T) {
	c := container.New()
	fixed := &part{kind: "fixed"}
	c.Instance("test.part", fixed)

	first := mustMake[*part](t, c, "test.part")
	second := mustMake[*part](t, c, "test.part")
	if first != fixed || second != fixed {
		t.Error("Instance registration should return the exact registered reference")
	}
}

// ── Named registrations ───────────────────────────────────────────────────────

func TestMakeNamed_CoexistingVariants(t *testing.T) {
	c := newFixture()
	c.BindNamed("test.part", "alloy", partBinding("alloy"))
	c.BindNamed("test.part", "steel", partBinding("steel"))

	tests := []struct {
		name string
		want string
	}{
		{"", "stock"},
		{"alloy", "alloy"},
		{"steel", "steel"},
	}
	for _, tt := range tests {
		v, err := c.MakeNamed("test.part", tt.name)
		if err != nil {
			t.Fatalf("MakeNamed(%q): %v", tt.name, err)
		}
		if got := v.(*part).kind; got != tt.want {
			t.Errorf("MakeNamed(%q): got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestMakeNamed_UnknownName(t *testing.T) {
	c := newFixture()

	_, err := c.MakeNamed("test.part", "titanium")
	var unreg *container.UnregisteredError
	if !errors.As(err, &unreg) {
		t.Fatalf("got %v, want *UnregisteredError", err)
	}
	if unreg.Name != "titanium" {
		t.Errorf("Name: got %q, want \"titanium\"", unreg.Name)
	}
}

// ── Factories ─────────────────────────────────────────────────────────────────

func TestBindFactory_ReceivesContainer(t *testing.T) {
	c := newFixture()
	c.BindFactory("test.pair", func(c *container.Container) (any, error) {
		a, err := c.Make("test.part")
		if err != nil {
			return nil, err
		}
		b, err := c.Make("test.part")
		if err != nil {
			return nil, err
		}
		return &widget{a: a.(*part), b: b.(*part)}, nil
	})

	w := mustMake[*widget](t, c, "test.pair")
	if w.a == w.b {
		t.Error("factory-built parts should be distinct")
	}
}

func TestBindFactory_ErrorSurfaces(t *testing.T) {
	c := container.New()
	boom := errors.New("boom")
	c.BindFactory("explosive", func(_ *container.Container) (any, error) {
		return nil, boom
	})

	if _, err := c.Make("explosive"); !errors.Is(err, boom) {
		t.Errorf("got %v, want factory error to surface", err)
	}
}

// ── Aliases, tags, introspection ──────────────────────────────────────────────

func TestAlias_ResolvesCanonical(t *testing.T) {
	c := newFixture()
	c.Alias("test.part", "component")

	p := mustMake[*part](t, c, "component")
	if p.kind != "stock" {
		t.Errorf("alias resolution: got %q, want \"stock\"", p.kind)
	}
}

func TestAlias_SelfAliasPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("aliasing an abstract to itself should panic")
		}
	}()
	container.New().Alias("x", "x")
}

func TestTagged_ResolvesGroup(t *testing.T) {
	c := container.New()
	c.Bind("report.cpu", partBinding("cpu"))
	c.Bind("report.mem", partBinding("mem"))
	c.Tag([]string{"report.cpu", "report.mem"}, "reports")

	reports, err := c.Tagged("reports")
	if err != nil {
		t.Fatalf("Tagged: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("got %d reports, want 2", len(reports))
	}
	kinds := []string{reports[0].(*part).kind, reports[1].(*part).kind}
	sort.Strings(kinds)
	if kinds[0] != "cpu" || kinds[1] != "mem" {
		t.Errorf("tagged kinds: got %v", kinds)
	}
}

func TestTagged_UnregisteredMemberFails(t *testing.T) {
	c := container.New()
	c.Tag([]string{"missing"}, "reports")

	if _, err := c.Tagged("reports"); err == nil {
		t.Error("Tagged should fail when a member is unregistered")
	}
}

func TestBound(t *testing.T) {
	c := newFixture()
	c.BindNamed("test.part", "alloy", partBinding("alloy"))

	if !c.Bound("test.part") {
		t.Error("Bound: want true for registered abstract")
	}
	if !c.BoundNamed("test.part", "alloy") {
		t.Error("BoundNamed: want true for registered name")
	}
	if c.Bound("test.missing") {
		t.Error("Bound: want false for unregistered abstract")
	}
}

func TestForget_RemovesAllNames(t *testing.T) {
	c := newFixture()
	c.BindNamed("test.part", "alloy", partBinding("alloy"))

	c.Forget("test.part")

	if c.Bound("test.part") || c.BoundNamed("test.part", "alloy") {
		t.Error("Forget should remove default and named registrations")
	}
}

func TestBindings_RendersNamedKeys(t *testing.T) {
	c := container.New()
	c.Bind("test.part", partBinding("stock"))
	c.BindNamed("test.part", "alloy", partBinding("alloy"))

	keys := c.Bindings()
	found := map[string]bool{}
	for _, k := range keys {
		found[k] = true
	}
	if !found["test.part"] || !found["test.part@alloy"] {
		t.Errorf("Bindings: got %v, want test.part and test.part@alloy", keys)
	}
}

func TestNew_BindsItself(t *testing.T) {
	c := container.New()
	if got := container.MustResolve[*container.Container](c, "container"); got != c {
		t.Error("the container should resolve itself under \"container\"")
	}
}

// ── Callbacks ─────────────────────────────────────────────────────────────────

func TestRebinding_FiresOnReplacement(t *testing.T) {
	c := newFixture()
	var fired []string
	c.Rebinding("test.part", func(abstract string) {
		fired = append(fired, abstract)
	})

	c.Bind("test.other", partBinding("other")) // fresh key — no callback
	c.Bind("test.part", partBinding("upgraded"))

	if len(fired) != 1 || fired[0] != "test.part" {
		t.Errorf("rebound callbacks: got %v, want one firing for test.part", fired)
	}
}

func TestAfterResolving_FiresPerConstruction(t *testing.T) {
	c := newFixture()
	counts := map[string]int{}
	c.AfterResolving(func(abstract string, _ any) {
		counts[abstract]++
	})

	mustMake[*widget](t, c, "test.widget")

	if counts["test.widget"] != 1 {
		t.Errorf("test.widget resolutions: got %d, want 1", counts["test.widget"])
	}
	if counts["test.part"] != 2 {
		t.Errorf("test.part resolutions: got %d, want 2 (one per parameter)", counts["test.part"])
	}
}

// ── Generics helpers ──────────────────────────────────────────────────────────

func TestResolve_WrongType(t *testing.T) {
	c := newFixture()

	_, err := container.Resolve[*widget](c, "test.part")
	var wrong *container.WrongTypeError
	if !errors.As(err, &wrong) {
		t.Fatalf("got %v, want *WrongTypeError", err)
	}
	if wrong.Abstract != "test.part" {
		t.Errorf("Abstract: got %q", wrong.Abstract)
	}
}

func TestMustResolve_PanicsOnMissing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustResolve should panic for unregistered abstracts")
		}
	}()
	container.MustResolve[*part](container.New(), "missing")
}

func TestTypeKey(t *testing.T) {
	key := container.TypeKey((*container.Container)(nil))
	want := "github.com/km-arc/go-container/framework/container.Container"
	if key != want {
		t.Errorf("TypeKey: got %q, want %q", key, want)
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func mustMake[T any](t *testing.T, c *container.Container, abstract string, overrides ...*container.Override) T {
	t.Helper()
	v, err := container.Resolve[T](c, abstract, overrides...)
	if err != nil {
		t.Fatalf("resolve %s: %v", abstract, err)
	}
	return v
}
