package container

import (
	"reflect"
	"sync"
)

// ── Registrations ─────────────────────────────────────────────────────────────

// registrationKey identifies a registration: an abstract plus an optional
// registration name ("" = default). Distinct names coexist; re-binding the
// same key replaces the prior entry.
type registrationKey struct {
	abstract string
	name     string
}

// registration is one registry entry: exactly one of blueprint, factory or
// instance is set.
type registration struct {
	blueprint *Binding
	factory   func(c *Container) (any, error)
	instance  any
	isValue   bool
}

// ── Container ─────────────────────────────────────────────────────────────────

// Container is the IoC container: a registry of constructor blueprints and
// fixed values, plus the resolver that turns them into object graphs.
//
// It supports:
//   - Bind / BindNamed / BindFactory / Instance / Alias
//   - Make / MakeNamed with call-scoped overrides (see Override)
//   - Resolve / MustResolve (generic)
//   - Tags (group multiple abstractions under one tag)
//   - Contextual binding (when A needs B, give it C)
//   - Rebound callbacks on re-registration
//   - Resolved event callbacks
//
// The registry is read-only during resolution, so concurrent Make calls are
// safe to share one Container. Each call gets its own override snapshot and
// build stack — nothing about an in-flight resolution leaks into another.
type Container struct {
	mu sync.RWMutex

	// (abstract, name) → registration
	registrations map[registrationKey]*registration

	// alias → abstract (canonical key)
	aliases map[string]string

	// tag → []abstract
	tags map[string][]string

	// contextual: when[concrete][abstract] = replacement
	contextual map[string]map[string]*contextualGive

	// rebound callbacks: abstract → []func(abstract)
	reboundCallbacks map[string][]func(string)

	// resolved callbacks: []func(abstract, instance)
	afterResolving []func(string, any)
}

// New creates an empty container.
func New() *Container {
	c := &Container{
		registrations:    make(map[registrationKey]*registration),
		aliases:          make(map[string]string),
		tags:             make(map[string][]string),
		contextual:       make(map[string]map[string]*contextualGive),
		reboundCallbacks: make(map[string][]func(string)),
	}
	// Bind the container to itself — like Laravel's $app->instance()
	c.Instance("container", c)
	return c
}

// ── Registration ──────────────────────────────────────────────────────────────

// Bind registers the default blueprint for an abstract. Each Make builds a
// new instance graph from it — there is no singleton cache.
//
//	// Laravel: $app->bind(Car::class, ...)
//	c.Bind("vehicles.car", vehicles.CarBinding())
func (c *Container) Bind(abstract string, b Binding) {
	c.register(abstract, "", &registration{blueprint: &b})
}

// BindNamed registers a blueprint under a registration name, coexisting with
// the default and with other names for the same abstract.
//
//	c.BindNamed("vehicles.wheel", "winter", vehicles.WinterWheelBinding())
func (c *Container) BindNamed(abstract, name string, b Binding) {
	c.register(abstract, name, &registration{blueprint: &b})
}

// BindFactory registers an opaque factory for an abstract. Factory bindings
// have no parameter descriptors, so per-parameter overrides cannot reach
// inside them; dependency and instance overrides for the abstract itself
// still apply. Used mainly for deferred providers and values that must
// consult the container at build time.
//
//	// Laravel: $app->bind('logger', fn($app) => ...)
//	c.BindFactory("logger", func(c *container.Container) (any, error) { ... })
func (c *Container) BindFactory(abstract string, factory func(c *Container) (any, error)) {
	c.register(abstract, "", &registration{factory: factory})
}

// BindFactoryNamed is BindFactory under a registration name.
func (c *Container) BindFactoryNamed(abstract, name string, factory func(c *Container) (any, error)) {
	c.register(abstract, name, &registration{factory: factory})
}

// Instance registers a pre-built value. Every resolution of the abstract
// returns the same reference; the container holds it, never copies it.
//
//	// Laravel: $app->instance(Config::class, $config)
//	c.Instance("config", cfg)
func (c *Container) Instance(abstract string, value any) {
	c.register(abstract, "", &registration{instance: value, isValue: true})
}

// InstanceNamed is Instance under a registration name.
func (c *Container) InstanceNamed(abstract, name string, value any) {
	c.register(abstract, name, &registration{instance: value, isValue: true})
}

// register stores an entry and fires rebound callbacks when it replaced an
// existing one (last registration for a key wins).
func (c *Container) register(abstract, name string, reg *registration) {
	c.mu.Lock()
	key := registrationKey{abstract: c.canonical(abstract), name: name}
	_, replaced := c.registrations[key]
	c.registrations[key] = reg
	var cbs []func(string)
	if replaced {
		cbs = append(cbs, c.reboundCallbacks[key.abstract]...)
	}
	c.mu.Unlock()

	for _, cb := range cbs {
		cb(key.abstract)
	}
}

// Alias registers an alternative name for an abstract.
//
//	// Laravel: $app->alias(Cache::class, 'cache')
//	c.Alias("config", "configuration")
func (c *Container) Alias(abstract, alias string) {
	if abstract == alias {
		panic("container: [" + abstract + "] is aliased to itself")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aliases[alias] = c.canonical(abstract)
}

// ── Tags ──────────────────────────────────────────────────────────────────────

// Tag associates multiple abstracts under a named group.
//
//	// Laravel: $app->tag([CpuReport::class, MemoryReport::class], 'reports')
//	c.Tag([]string{"report.cpu", "report.memory"}, "reports")
func (c *Container) Tag(abstracts []string, tag string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tags[tag] = append(c.tags[tag], abstracts...)
}

// Tagged resolves the default registration of every abstract under a tag.
// It stops at the first resolution error.
//
//	// Laravel: $app->tagged('reports')
//	reports, err := c.Tagged("reports")
func (c *Container) Tagged(tag string) ([]any, error) {
	c.mu.RLock()
	abstracts := append([]string(nil), c.tags[tag]...)
	c.mu.RUnlock()

	result := make([]any, 0, len(abstracts))
	for _, abs := range abstracts {
		v, err := c.Make(abs)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

// ── Resolution entry points ───────────────────────────────────────────────────

// Make resolves the default registration of an abstract, applying the given
// call-scoped overrides. The overrides affect this one call only.
//
//	// Laravel: $app->make(Car::class)
//	car, err := c.Make("vehicles.car")
func (c *Container) Make(abstract string, overrides ...*Override) (any, error) {
	return c.MakeNamed(abstract, "", overrides...)
}

// MakeNamed resolves a named registration of an abstract.
func (c *Container) MakeNamed(abstract, name string, overrides ...*Override) (any, error) {
	r := &resolution{c: c, overrides: overrides}
	return r.resolveAbstract(abstract, name)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// Bound returns true if the abstract has a default registration.
//
//	// Laravel: $app->bound(Car::class)
func (c *Container) Bound(abstract string) bool {
	return c.BoundNamed(abstract, "")
}

// BoundNamed returns true if the abstract has a registration under name.
func (c *Container) BoundNamed(abstract, name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.registrations[registrationKey{abstract: c.canonical(abstract), name: name}]
	return ok
}

// Forget removes every registration (all names) for an abstract.
func (c *Container) Forget(abstract string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	canonical := c.canonical(abstract)
	for key := range c.registrations {
		if key.abstract == canonical {
			delete(c.registrations, key)
		}
	}
}

// Flush resets the entire container.
func (c *Container) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.registrations = make(map[registrationKey]*registration)
	c.aliases = make(map[string]string)
	c.tags = make(map[string][]string)
	c.contextual = make(map[string]map[string]*contextualGive)
}

// Bindings returns all registered keys (for debugging). Named registrations
// render as "abstract@name".
func (c *Container) Bindings() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.registrations))
	for key := range c.registrations {
		if key.name == "" {
			out = append(out, key.abstract)
		} else {
			out = append(out, key.abstract+"@"+key.name)
		}
	}
	return out
}

// lookup fetches a registration under the read lock, returning the canonical
// abstract so errors and callbacks report the real key, not an alias.
func (c *Container) lookup(abstract, name string) (*registration, string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	canonical := c.canonical(abstract)
	reg, ok := c.registrations[registrationKey{abstract: canonical, name: name}]
	return reg, canonical, ok
}

// canonical resolves an alias to its canonical key (must hold mu).
func (c *Container) canonical(abstract string) string {
	if target, ok := c.aliases[abstract]; ok {
		return target
	}
	return abstract
}

// ── Callbacks ─────────────────────────────────────────────────────────────────

// Rebinding registers a callback fired whenever a registration for the
// abstract is replaced by a later Bind/Instance call.
//
//	// Laravel: $app->rebinding(Cache::class, fn(...) => ...)
func (c *Container) Rebinding(abstract string, cb func(abstract string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.canonical(abstract)
	c.reboundCallbacks[key] = append(c.reboundCallbacks[key], cb)
}

// AfterResolving registers a callback fired after any blueprint or factory
// registration is resolved into an instance.
//
//	// Laravel: $app->afterResolving(fn($object, $app) => ...)
func (c *Container) AfterResolving(cb func(abstract string, instance any)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.afterResolving = append(c.afterResolving, cb)
}

func (c *Container) fireAfterResolving(abstract string, instance any) {
	c.mu.RLock()
	cbs := c.afterResolving
	c.mu.RUnlock()
	for _, cb := range cbs {
		cb(abstract, instance)
	}
}

// ── Reflect helpers ───────────────────────────────────────────────────────────

// TypeKey returns the package-qualified type name of v, useful as a stable
// abstract key when working with interfaces.
//
//	key := container.TypeKey((*vehicles.Wheel)(nil))
//	c.Bind(key, blueprint)
func TypeKey(v any) string {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.PkgPath() + "." + t.Name()
}

// ── Generics helpers ──────────────────────────────────────────────────────────

// Resolve resolves the default registration of an abstract and type-asserts
// the result.
//
//	// Instead of: car := c.Make("vehicles.car").(*vehicles.Car)
//	// Write:      car, err := container.Resolve[*vehicles.Car](c, "vehicles.car")
func Resolve[T any](c *Container, abstract string, overrides ...*Override) (T, error) {
	return ResolveNamed[T](c, abstract, "", overrides...)
}

// ResolveNamed is Resolve against a named registration.
func ResolveNamed[T any](c *Container, abstract, name string, overrides ...*Override) (T, error) {
	var zero T
	v, err := c.MakeNamed(abstract, name, overrides...)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, &WrongTypeError{
			Abstract: abstract,
			Got:      reflect.TypeOf(v).String(),
			Want:     reflect.TypeOf(&zero).Elem().String(),
		}
	}
	return typed, nil
}

// MustResolve is Resolve for composition roots where a missing registration
// is a programming error: it panics instead of returning one.
func MustResolve[T any](c *Container, abstract string, overrides ...*Override) T {
	v, err := Resolve[T](c, abstract, overrides...)
	if err != nil {
		panic(err)
	}
	return v
}
