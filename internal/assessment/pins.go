package assessment

import (
	"slices"

	"github.com/google/uuid"
)

// NewPin returns a pin on the canonical view at the clamped position.
func NewPin(xPct, yPct float64) Pin {
	return Pin{
		ID:   uuid.NewString(),
		View: ViewAnterior,
		XPct: ClampPct(xPct),
		YPct: ClampPct(yPct),
	}
}

// PinByID returns the pin with id and its display position.
func (p PainSnapshot) PinByID(id string) (Pin, int, bool) {
	for i, pin := range p.PinLocations {
		if pin.ID == id {
			return pin, i, true
		}
	}
	return Pin{}, -1, false
}

// AddPin appends pin, clamping its coordinates.
func AddPin(pin Pin) Mutation {
	pin.XPct = ClampPct(pin.XPct)
	pin.YPct = ClampPct(pin.YPct)
	if pin.View == "" {
		pin.View = ViewAnterior
	}
	return pinMutation(func(pins []Pin) []Pin {
		return append(pins, pin)
	})
}

// MovePin moves the pin with id to the clamped position.
func MovePin(id string, xPct, yPct float64) Mutation {
	return editPin(id, func(p *Pin) {
		p.XPct = ClampPct(xPct)
		p.YPct = ClampPct(yPct)
	})
}

// LabelPin sets the label of the pin with id.
func LabelPin(id, label string) Mutation {
	return editPin(id, func(p *Pin) { p.Label = label })
}

// RemovePin deletes the pin with id. Later pins shift down one position.
func RemovePin(id string) Mutation {
	return pinMutation(func(pins []Pin) []Pin {
		return slices.DeleteFunc(pins, func(p Pin) bool { return p.ID == id })
	})
}

func editPin(id string, fn func(*Pin)) Mutation {
	return pinMutation(func(pins []Pin) []Pin {
		for i := range pins {
			if pins[i].ID == id {
				fn(&pins[i])
			}
		}
		return pins
	})
}

// pinMutation hands fn a private copy of the pin list.
func pinMutation(fn func([]Pin) []Pin) Mutation {
	m := Update(PainSnapshotSection, func(r PainSnapshot) PainSnapshot {
		r.PinLocations = fn(slices.Clone(r.PinLocations))
		if r.PinLocations == nil {
			r.PinLocations = []Pin{}
		}
		return r
	})
	m.field = PinLocations.key
	return m
}
