package container

// resolution is the ephemeral state of one top-level Make call: the override
// snapshot and the stack of concrete labels currently being constructed.
// It is allocated per call and never shared, so concurrent resolutions on the
// same Container cannot contaminate each other's scope checks.
type resolution struct {
	c         *Container
	overrides []*Override
	stack     []string
}

// enclosing returns the label of the concrete type currently under
// construction, or "" at the top level.
func (r *resolution) enclosing() string {
	if len(r.stack) == 0 {
		return ""
	}
	return r.stack[len(r.stack)-1]
}

// resolveAbstract produces a value for (abstract, name).
//
// Order of consultation:
//  1. call-scoped dependency/instance overrides for the abstract;
//  2. registration-time contextual bindings for the enclosing concrete;
//  3. the registry.
//
// Parameter-name overrides never apply here — they are matched one level up,
// in resolveParam, before the parameter's abstract is even looked at.
func (r *resolution) resolveAbstract(abstract, name string) (any, error) {
	for _, o := range r.overrides {
		if o != nil && o.matchesAbstract(abstract, r.enclosing()) {
			return r.applyOverride(o)
		}
	}

	if enc := r.enclosing(); enc != "" {
		if give := r.c.getContextual(enc, abstract); give != nil {
			if give.hasValue {
				return give.value, nil
			}
			return r.build(abstract, give.binding)
		}
	}

	reg, canonical, ok := r.c.lookup(abstract, name)
	if !ok {
		return nil, &UnregisteredError{Abstract: canonical, Name: name}
	}

	switch {
	case reg.isValue:
		return reg.instance, nil
	case reg.factory != nil:
		v, err := reg.factory(r.c)
		if err != nil {
			return nil, err
		}
		r.c.fireAfterResolving(canonical, v)
		return v, nil
	default:
		return r.build(canonical, reg.blueprint)
	}
}

// applyOverride produces the replacement value for a matched directive.
// Instance-style directives hand back the exact reference they carry;
// blueprint-style directives build a fresh graph at every matching position.
func (r *resolution) applyOverride(o *Override) (any, error) {
	if o.hasValue {
		return o.value, nil
	}
	return r.build("", o.binding)
}

// build constructs an instance from a blueprint. The concrete label is pushed
// before its parameters are resolved and popped afterwards, so "immediately
// enclosing type" is exact for scoped overrides and contextual bindings —
// ancestors further up the graph never match.
func (r *resolution) build(abstract string, b *Binding) (any, error) {
	r.stack = append(r.stack, b.Concrete)
	args := make([]any, len(b.Params))
	for i, p := range b.Params {
		v, err := r.resolveParam(p)
		if err != nil {
			r.stack = r.stack[:len(r.stack)-1]
			return nil, err
		}
		args[i] = v
	}
	r.stack = r.stack[:len(r.stack)-1]

	instance := b.Build(args)
	if abstract != "" {
		r.c.fireAfterResolving(abstract, instance)
	}
	return instance, nil
}

// resolveParam produces the argument for one constructor parameter.
// Parameter-name overrides are the most specific rule and win over
// dependency/instance overrides for the same position; anything unmatched
// falls through to resolveAbstract with the same override snapshot.
func (r *resolution) resolveParam(p Param) (any, error) {
	for _, o := range r.overrides {
		if o != nil && o.matchesParam(p.Name, r.enclosing()) {
			return r.applyOverride(o)
		}
	}
	return r.resolveAbstract(p.Abstract, p.Registration)
}
