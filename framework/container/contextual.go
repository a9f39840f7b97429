package container

// contextualGive is the replacement attached to a contextual binding: either
// a blueprint built fresh per resolution or a fixed value.
type contextualGive struct {
	binding  *Binding
	value    any
	hasValue bool
}

// ContextualBuilder implements the fluent contextual binding API.
//
// Contextual bindings are the registration-time cousin of scoped overrides:
// they substitute a dependency only while a specific concrete type is being
// constructed, live for the container's lifetime, and rank below any
// call-scoped override that matches the same parameter.
//
//	// Laravel: $app->when(PhotoController::class)->needs(Filesystem::class)->give(...)
//	c.When("vehicles.Trailer").Needs("vehicles.wheel").Give(vehicles.OffroadWheelBinding())
type ContextualBuilder struct {
	container *Container
	concrete  string
	needs     string
}

// When starts a contextual binding chain for a concrete label.
func (c *Container) When(concrete string) *ContextualBuilder {
	return &ContextualBuilder{container: c, concrete: concrete}
}

// Needs specifies which abstract the concrete type depends on.
func (b *ContextualBuilder) Needs(abstract string) *ContextualBuilder {
	b.needs = abstract
	return b
}

// Give provides the blueprint used when the concrete type resolves the
// specified abstract.
func (b *ContextualBuilder) Give(replacement Binding) {
	b.store(&contextualGive{binding: &replacement})
}

// GiveValue is a shorthand for Give when the replacement is a pre-built
// instance — every matching parameter receives the same reference.
//
//	// Laravel: ->give('/tmp/photos')
//	c.When("vehicles.Car").Needs("vehicles.wheel").GiveValue(spareWheel)
func (b *ContextualBuilder) GiveValue(value any) {
	b.store(&contextualGive{value: value, hasValue: true})
}

func (b *ContextualBuilder) store(give *contextualGive) {
	c := b.container
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.contextual[b.concrete]; !ok {
		c.contextual[b.concrete] = make(map[string]*contextualGive)
	}
	c.contextual[b.concrete][c.canonical(b.needs)] = give
}

// getContextual returns the contextual replacement for (concrete, abstract),
// or nil.
func (c *Container) getContextual(concrete, abstract string) *contextualGive {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if m, ok := c.contextual[concrete]; ok {
		if give, ok := m[c.canonical(abstract)]; ok {
			return give
		}
	}
	return nil
}
