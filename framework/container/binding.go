package container

// ── Constructor blueprints ────────────────────────────────────────────────────

// Param describes one constructor parameter of a concrete type:
// its name and the abstract it should be resolved from.
//
// Because Go has no runtime constructor reflection, the container never
// inspects function signatures — each Binding carries its ordered parameter
// list explicitly, and the resolver intercepts per parameter.
type Param struct {
	// Name is the constructor parameter name, e.g. "frontLeft".
	// Parameter overrides match against it.
	Name string

	// Abstract is the key resolved to produce the argument.
	Abstract string

	// Registration selects a named registration of Abstract ("" = default).
	Registration string
}

// Dep declares a constructor parameter resolved from the default
// registration of abstract.
//
//	container.Dep("frontLeft", "vehicles.wheel")
func Dep(name, abstract string) Param {
	return Param{Name: name, Abstract: abstract}
}

// DepNamed declares a constructor parameter resolved from a named
// registration of abstract.
//
//	container.DepNamed("spare", "vehicles.wheel", "compact")
func DepNamed(name, abstract, registration string) Param {
	return Param{Name: name, Abstract: abstract, Registration: registration}
}

// Binding is the static constructor descriptor for a concrete type.
//
// Concrete labels the type being built (used by scoped overrides and
// contextual bindings — the Go stand-in for PhotoController::class).
// Params lists the constructor parameters in declaration order.
// Build receives the resolved arguments, one per Param, in the same order.
//
//	// Laravel: $app->bind(Car::class) + constructor type-hints
//	container.NewBinding("vehicles.Car",
//	    func(args []any) any {
//	        return vehicles.NewCar(args[0].(vehicles.Wheel), args[1].(vehicles.Wheel))
//	    },
//	    container.Dep("left", "vehicles.wheel"),
//	    container.Dep("right", "vehicles.wheel"),
//	)
type Binding struct {
	Concrete string
	Params   []Param
	Build    func(args []any) any
}

// NewBinding assembles a Binding from a concrete label, a build function
// and the ordered parameter list.
func NewBinding(concrete string, build func(args []any) any, params ...Param) Binding {
	return Binding{Concrete: concrete, Params: params, Build: build}
}
