package container

// ── Call-scoped overrides ─────────────────────────────────────────────────────

type overrideKind int

const (
	overrideDependency overrideKind = iota
	overrideInstance
	overrideParam
)

// Override is a substitution rule passed to a single Make call. It replaces
// what the resolver would otherwise produce for a dependency or a named
// constructor parameter, and has no effect outside that one call.
//
// Precedence when several directives could satisfy the same parameter:
// parameter-name overrides first, then dependency/instance overrides, then
// registration-time contextual bindings, then default resolution. A directive
// that never matches anything is silently ignored.
//
//	// Laravel: $app->makeWith(Car::class, ['frontLeft' => $wheel])
//	car, err := c.Make("vehicles.car", container.OverrideParam("frontLeft", wheel))
type Override struct {
	kind     overrideKind
	abstract string   // dependency/instance overrides
	param    string   // parameter overrides
	binding  *Binding // replacement blueprint, when overriding by type
	value    any      // replacement value, when overriding by instance
	hasValue bool
	onlyFor  string // enclosing concrete restriction ("" = unrestricted)
}

// OverrideDependency substitutes a replacement blueprint for every resolution
// of abstract during one Make call, wherever it occurs in the graph. The
// replacement is built fresh at each matching position.
func OverrideDependency(abstract string, replacement Binding) *Override {
	return &Override{kind: overrideDependency, abstract: abstract, binding: &replacement}
}

// OverrideInstance substitutes a pre-built value for every resolution of
// abstract during one Make call. Every matching position receives the same
// reference — the container never copies or rebuilds it.
func OverrideInstance(abstract string, value any) *Override {
	return &Override{kind: overrideInstance, abstract: abstract, value: value, hasValue: true}
}

// OverrideParam substitutes a pre-built value for every constructor parameter
// with the given name, regardless of which abstract the parameter declares.
func OverrideParam(name string, value any) *Override {
	return &Override{kind: overrideParam, param: name, value: value, hasValue: true}
}

// OverrideParamBinding is OverrideParam with a blueprint instead of a value:
// each matching parameter gets a freshly built replacement.
func OverrideParamBinding(name string, replacement Binding) *Override {
	return &Override{kind: overrideParam, param: name, binding: &replacement}
}

// For restricts the override to parameters of one concrete type: it only
// applies while the resolver is constructing an instance whose Binding.Concrete
// equals the given label. The check is against the immediately enclosing
// constructed type, not ancestors further up the graph, and therefore never
// matches the top-level request itself.
//
//	// only Car's wheels, Trailer keeps the default
//	container.OverrideDependency("vehicles.wheel", winter).For("vehicles.Car")
func (o *Override) For(concrete string) *Override {
	o.onlyFor = concrete
	return o
}

// ── matching ─────────────────────────────────────────────────────────────────

func (o *Override) scopeMatches(enclosing string) bool {
	return o.onlyFor == "" || o.onlyFor == enclosing
}

// matchesParam reports whether the directive claims a constructor parameter
// by name.
func (o *Override) matchesParam(name, enclosing string) bool {
	return o.kind == overrideParam && o.param == name && o.scopeMatches(enclosing)
}

// matchesAbstract reports whether the directive claims a dependency by
// abstract key.
func (o *Override) matchesAbstract(abstract, enclosing string) bool {
	return (o.kind == overrideDependency || o.kind == overrideInstance) &&
		o.abstract == abstract && o.scopeMatches(enclosing)
}
