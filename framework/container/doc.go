// Package container provides a Laravel-flavoured IoC (Inversion of Control)
// container for Go with call-scoped resolution overrides.
//
// # Overview
//
// The container is a registry of constructor blueprints: each registration
// names an abstract (optionally with a registration name), a concrete label,
// an ordered list of constructor parameters, and a build function. Resolution
// walks the blueprint graph recursively, constructing a fresh instance at
// every position — there are no singletons and no caching; fixed values enter
// the graph only through Instance registrations, instance overrides, or
// GiveValue contextual bindings.
//
// Because Go has no runtime constructor reflection, auto-wiring from
// signatures is replaced by the explicit parameter descriptors on each
// Binding. That is what makes per-parameter interception possible.
//
// # Container Lifecycle
//
//  1. Create: c := container.New()
//  2. Register providers: registry.Register(&FleetServiceProvider{})
//  3. Boot: registry.Boot()        — safe to resolve everything after this
//  4. Resolve object graphs, with or without overrides
//
// Registrations persist for the container's lifetime. Re-binding a key
// replaces the prior entry (and fires Rebinding callbacks); distinct
// registration names for the same abstract coexist.
//
// # Bindings
//
//	// Blueprint — new graph every Make()
//	// Laravel: $app->bind(Car::class, ...)
//	c.Bind("vehicles.car", vehicles.CarBinding())
//
//	// Named variants of the same abstract
//	c.BindNamed("vehicles.wheel", "winter", vehicles.WinterWheelBinding())
//
//	// Pre-built value — same reference every resolution
//	// Laravel: $app->instance(Config::class, $config)
//	c.Instance("config", cfg)
//
//	// Alias
//	// Laravel: $app->alias(Config::class, 'config')
//	c.Alias("config", "configuration")
//
// # Resolving
//
//	// Untyped
//	// Laravel: $app->make(Car::class)
//	raw, err := c.Make("vehicles.car")
//
//	// Generic (preferred — no type assertion required)
//	car, err := container.Resolve[*vehicles.Car](c, "vehicles.car")
//
// A request for anything unregistered — at the top level or at any parameter
// deeper in the graph — fails with *UnregisteredError.
//
// # Call-scoped overrides
//
// Overrides are substitution rules handed to one Make call. They are
// consulted at every constructor parameter and discarded when the call
// returns; a directive that matches nothing is silently ignored.
//
//	// Laravel: $app->makeWith(Car::class, ['frontLeft' => $wheel])
//	car, err := c.Make("vehicles.car",
//	    container.OverrideParam("frontLeft", wheel),                      // by parameter name
//	    container.OverrideDependency("vehicles.wheel", winterBinding),    // by abstract, built fresh
//	    container.OverrideInstance("vehicles.wheel", sharedWheel),        // by abstract, same reference
//	)
//
// Scoping restricts a directive to the immediately enclosing concrete type:
//
//	c.Make("vehicles.rig",
//	    container.OverrideDependency("vehicles.wheel", winter).For("vehicles.Car"),
//	)
//
// Parameter-name directives beat abstract-level directives on the same
// parameter; both beat contextual bindings and the default registration.
//
// # Contextual Binding
//
//	// Laravel: $app->when(PhotoController::class)
//	//              ->needs(Filesystem::class)
//	//              ->give(fn() => new S3Filesystem)
//	c.When("vehicles.Trailer").
//	    Needs("vehicles.wheel").
//	    Give(vehicles.OffroadWheelBinding())
//
// # Tags
//
//	// Laravel: $app->tag([CpuReport::class, MemReport::class], 'reports')
//	c.Tag([]string{"report.cpu", "report.mem"}, "reports")
//	reports, err := c.Tagged("reports")
//
// # Service Providers
//
//	type FleetServiceProvider struct{ container.BaseProvider }
//
//	func (p *FleetServiceProvider) Register(app *container.Container) {
//	    app.Bind("vehicles.car", vehicles.CarBinding())
//	}
//
//	registry := container.NewProviderRegistry(c)
//	registry.Register(&FleetServiceProvider{})
//	registry.Boot()
//
// # Concurrency
//
// The registry is read-only during resolution and guarded by a RWMutex, so
// any number of goroutines may Make concurrently. Override snapshots and the
// build stack live in a per-call context, never on the Container.
package container
