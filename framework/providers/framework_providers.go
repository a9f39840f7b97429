package providers

import (
	"github.com/km-arc/go-container/framework/config"
	"github.com/km-arc/go-container/framework/container"
	"github.com/km-arc/go-container/framework/logging"
	"github.com/km-arc/go-container/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from .env and
// binds it into the container as "config".
//
// Bound abstracts:
//   - "config"         → *config.Config
//   - "configuration"  → alias of "config"
//
// Laravel equivalent:
//
//	// Illuminate\Foundation\Bootstrap\LoadConfiguration
//	$app->singleton('config', fn() => new Repository($items));
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(app *container.Container) {
	app.Instance("config", config.Load(p.EnvFiles...))
	app.Alias("config", "configuration")
}

// ── LogServiceProvider ────────────────────────────────────────────────────────

// LogServiceProvider registers the zerolog logger.
//
// Bound abstracts:
//   - "logger"  → *zerolog.Logger
//
// The logger needs "config", so it is built in Boot: by then every provider
// has registered and resolution is safe.
type LogServiceProvider struct {
	container.BaseProvider
}

func (p *LogServiceProvider) Register(_ *container.Container) {
	// Nothing to bind eagerly — the logger depends on "config", see Boot.
}

func (p *LogServiceProvider) Boot(app *container.Container) {
	cfg := container.MustResolve[*config.Config](app, "config")
	app.Instance("logger", logging.New(cfg))
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router.
//
// Bound abstracts:
//   - "router"  → *routing.Router
//
// Laravel equivalent:
//
//	// Illuminate\Routing\RoutingServiceProvider
//	$app->singleton('router', fn($app) => new Router($app['events'], $app));
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(app *container.Container) {
	app.Instance("router", routing.New())
}
