package vehicles

import "github.com/km-arc/go-container/framework/container"

// Abstract keys for the fleet graph.
const (
	WheelAbstract   = "vehicles.wheel"
	CarAbstract     = "vehicles.car"
	TrailerAbstract = "vehicles.trailer"
	RigAbstract     = "vehicles.rig"
)

// Concrete labels, used by scoped overrides and contextual bindings.
const (
	StandardWheelConcrete = "vehicles.StandardWheel"
	OffroadWheelConcrete  = "vehicles.OffroadWheel"
	WinterWheelConcrete   = "vehicles.WinterWheel"
	CarConcrete           = "vehicles.Car"
	TrailerConcrete       = "vehicles.Trailer"
	RigConcrete           = "vehicles.Rig"
)

// ── Blueprints ────────────────────────────────────────────────────────────────

func StandardWheelBinding() container.Binding {
	return container.NewBinding(StandardWheelConcrete, func(_ []any) any {
		return NewStandardWheel()
	})
}

func OffroadWheelBinding() container.Binding {
	return container.NewBinding(OffroadWheelConcrete, func(_ []any) any {
		return NewOffroadWheel()
	})
}

func WinterWheelBinding() container.Binding {
	return container.NewBinding(WinterWheelConcrete, func(_ []any) any {
		return NewWinterWheel()
	})
}

// WheelBinding maps a variant name from config to its blueprint.
// Unknown variants fall back to standard.
func WheelBinding(variant string) container.Binding {
	switch variant {
	case "offroad":
		return OffroadWheelBinding()
	case "winter":
		return WinterWheelBinding()
	default:
		return StandardWheelBinding()
	}
}

func CarBinding() container.Binding {
	return container.NewBinding(CarConcrete,
		func(args []any) any {
			return NewCar(
				args[0].(Wheel), args[1].(Wheel),
				args[2].(Wheel), args[3].(Wheel),
				args[4].(Wheel),
			)
		},
		container.Dep("frontLeft", WheelAbstract),
		container.Dep("frontRight", WheelAbstract),
		container.Dep("rearLeft", WheelAbstract),
		container.Dep("rearRight", WheelAbstract),
		container.Dep("spare", WheelAbstract),
	)
}

func TrailerBinding() container.Binding {
	return container.NewBinding(TrailerConcrete,
		func(args []any) any {
			return NewTrailer(args[0].(Wheel), args[1].(Wheel), args[2].(Wheel))
		},
		container.Dep("left", WheelAbstract),
		container.Dep("right", WheelAbstract),
		container.Dep("spare", WheelAbstract),
	)
}

func RigBinding() container.Binding {
	return container.NewBinding(RigConcrete,
		func(args []any) any {
			return NewRig(args[0].(*Car), args[1].(*Trailer))
		},
		container.Dep("car", CarAbstract),
		container.Dep("trailer", TrailerAbstract),
	)
}

// ── FleetServiceProvider ──────────────────────────────────────────────────────

// FleetServiceProvider registers the fleet graph:
//
//   - "vehicles.wheel"            → default wheel blueprint (standard)
//   - "vehicles.wheel" @offroad   → OffroadWheel
//   - "vehicles.wheel" @winter    → WinterWheel
//   - "vehicles.car"              → Car, plus a @second registration
//   - "vehicles.trailer"          → Trailer
//   - "vehicles.rig"              → Rig
//
// DefaultWheel, when set, re-binds the default wheel in Boot — a deliberate
// re-registration that fires Rebinding callbacks.
type FleetServiceProvider struct {
	container.BaseProvider
	DefaultWheel string
}

func (p *FleetServiceProvider) Register(app *container.Container) {
	app.Bind(WheelAbstract, StandardWheelBinding())
	app.BindNamed(WheelAbstract, "offroad", OffroadWheelBinding())
	app.BindNamed(WheelAbstract, "winter", WinterWheelBinding())

	app.Bind(CarAbstract, CarBinding())
	app.BindNamed(CarAbstract, "second", CarBinding())
	app.Bind(TrailerAbstract, TrailerBinding())
	app.Bind(RigAbstract, RigBinding())
}

func (p *FleetServiceProvider) Boot(app *container.Container) {
	if p.DefaultWheel != "" && p.DefaultWheel != "standard" {
		app.Bind(WheelAbstract, WheelBinding(p.DefaultWheel))
	}
}
