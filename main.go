package main

import (
	"encoding/json"
	"net/http"

	"github.com/km-arc/go-container/framework/app"
	"github.com/km-arc/go-container/framework/container"
	"github.com/km-arc/go-container/routing"
	"github.com/km-arc/go-container/vehicles"
)

func main() {
	application := app.New() // loads .env automatically
	cfg := application.Config()

	application.Register(&vehicles.FleetServiceProvider{
		DefaultWheel: cfg.Fleet.DefaultWheel,
	})
	application.Boot()

	log := application.Logger()
	application.AfterResolving(func(abstract string, _ any) {
		log.Debug().Str("abstract", abstract).Msg("resolved")
	})

	r := application.Router()

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"name":     cfg.App.Name,
			"bindings": application.Bindings(),
		})
	})

	r.Prefix("/fleet", func(fleet *routing.Router) {

		// GET /fleet/car?wheels=winter — per-request dependency override
		fleet.Get("/car", func(w http.ResponseWriter, req *http.Request) {
			car, err := container.Resolve[*vehicles.Car](
				application.Container, vehicles.CarAbstract, wheelOverrides(req, "wheels")...)
			if err != nil {
				writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
				return
			}
			writeJSON(w, http.StatusOK, carPayload(car))
		})

		// GET /fleet/trailer
		fleet.Get("/trailer", func(w http.ResponseWriter, req *http.Request) {
			trailer, err := container.Resolve[*vehicles.Trailer](
				application.Container, vehicles.TrailerAbstract, wheelOverrides(req, "wheels")...)
			if err != nil {
				writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
				return
			}
			writeJSON(w, http.StatusOK, trailerPayload(trailer))
		})

		// GET /fleet/rig?car_wheels=offroad — override scoped to the car only;
		// the trailer keeps the default wheels.
		fleet.Get("/rig", func(w http.ResponseWriter, req *http.Request) {
			var overrides []*container.Override
			if v := req.URL.Query().Get("car_wheels"); v != "" {
				overrides = append(overrides,
					container.OverrideDependency(vehicles.WheelAbstract, vehicles.WheelBinding(v)).
						For(vehicles.CarConcrete))
			}
			rig, err := container.Resolve[*vehicles.Rig](
				application.Container, vehicles.RigAbstract, overrides...)
			if err != nil {
				writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"car":     carPayload(rig.Car),
				"trailer": trailerPayload(rig.Trailer),
			})
		})
	})

	application.Run()
}

// wheelOverrides builds a dependency override from a query parameter, if set.
func wheelOverrides(req *http.Request, param string) []*container.Override {
	v := req.URL.Query().Get(param)
	if v == "" {
		return nil
	}
	return []*container.Override{
		container.OverrideDependency(vehicles.WheelAbstract, vehicles.WheelBinding(v)),
	}
}

// ── payloads ─────────────────────────────────────────────────────────────────

func wheelPayload(w vehicles.Wheel) map[string]string {
	return map[string]string{"name": w.Name(), "serial": w.Serial()}
}

func carPayload(c *vehicles.Car) map[string]any {
	return map[string]any{
		"frontLeft":  wheelPayload(c.FrontLeft),
		"frontRight": wheelPayload(c.FrontRight),
		"rearLeft":   wheelPayload(c.RearLeft),
		"rearRight":  wheelPayload(c.RearRight),
		"spare":      wheelPayload(c.Spare),
	}
}

func trailerPayload(t *vehicles.Trailer) map[string]any {
	return map[string]any{
		"left":  wheelPayload(t.Left),
		"right": wheelPayload(t.Right),
		"spare": wheelPayload(t.Spare),
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
