// Package vehicles is the demo object graph wired through the container:
// a Car with five wheels, a Trailer with three, and a Rig towing both.
// Every wheel carries a uuid serial assigned at construction, so tests and
// the demo endpoints can tell sibling instances apart.
package vehicles

import "github.com/google/uuid"

// ── Wheel capability ──────────────────────────────────────────────────────────

// Wheel is the capability every vehicle position depends on.
type Wheel interface {
	// Name identifies the wheel variant ("standard", "offroad", "winter").
	Name() string

	// Serial is unique per constructed wheel.
	Serial() string
}

type StandardWheel struct {
	serial string
}

func NewStandardWheel() *StandardWheel {
	return &StandardWheel{serial: uuid.NewString()}
}

func (w *StandardWheel) Name() string   { return "standard" }
func (w *StandardWheel) Serial() string { return w.serial }

type OffroadWheel struct {
	serial string
}

func NewOffroadWheel() *OffroadWheel {
	return &OffroadWheel{serial: uuid.NewString()}
}

func (w *OffroadWheel) Name() string   { return "offroad" }
func (w *OffroadWheel) Serial() string { return w.serial }

type WinterWheel struct {
	serial string
}

func NewWinterWheel() *WinterWheel {
	return &WinterWheel{serial: uuid.NewString()}
}

func (w *WinterWheel) Name() string   { return "winter" }
func (w *WinterWheel) Serial() string { return w.serial }

// ── Vehicles ──────────────────────────────────────────────────────────────────

// Car has four mounted wheels plus a spare.
type Car struct {
	FrontLeft  Wheel
	FrontRight Wheel
	RearLeft   Wheel
	RearRight  Wheel
	Spare      Wheel
}

func NewCar(frontLeft, frontRight, rearLeft, rearRight, spare Wheel) *Car {
	return &Car{
		FrontLeft:  frontLeft,
		FrontRight: frontRight,
		RearLeft:   rearLeft,
		RearRight:  rearRight,
		Spare:      spare,
	}
}

// Wheels returns all five wheels in position order.
func (c *Car) Wheels() []Wheel {
	return []Wheel{c.FrontLeft, c.FrontRight, c.RearLeft, c.RearRight, c.Spare}
}

// Trailer has two mounted wheels plus a spare.
type Trailer struct {
	Left  Wheel
	Right Wheel
	Spare Wheel
}

func NewTrailer(left, right, spare Wheel) *Trailer {
	return &Trailer{Left: left, Right: right, Spare: spare}
}

// Wheels returns all three wheels in position order.
func (t *Trailer) Wheels() []Wheel {
	return []Wheel{t.Left, t.Right, t.Spare}
}

// Rig is a car towing a trailer — one graph containing two different
// enclosing types, which is what scoped overrides discriminate on.
type Rig struct {
	Car     *Car
	Trailer *Trailer
}

func NewRig(car *Car, trailer *Trailer) *Rig {
	return &Rig{Car: car, Trailer: trailer}
}
