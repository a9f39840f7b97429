package container

import "strconv"

// UnregisteredError is returned when an abstract (or a named registration of
// it) has never been bound. It propagates unchanged out of nested resolution,
// so a missing leaf surfaces at the top-level Make call.
type UnregisteredError struct {
	// Abstract is the canonical key that was requested.
	Abstract string

	// Name is the named registration requested ("" = default).
	Name string
}

// Error implements the error interface.
func (e *UnregisteredError) Error() string {
	// Example: container: no registration for "vehicles.wheel" (name "winter")
	msg := "container: no registration for " + strconv.Quote(e.Abstract)
	if e.Name != "" {
		msg += " (name " + strconv.Quote(e.Name) + ")"
	}
	return msg
}

// WrongTypeError is returned by Resolve when an abstract resolved
// successfully but the value is not of the requested type.
type WrongTypeError struct {
	Abstract string

	// Got is the dynamic type of the resolved value.
	Got string

	// Want is the type requested from Resolve.
	Want string
}

// Error implements the error interface.
func (e *WrongTypeError) Error() string {
	// Example: container: "router" resolved to *chi.Mux, want *routing.Router
	return "container: " + strconv.Quote(e.Abstract) + " resolved to " + e.Got + ", want " + e.Want
}
