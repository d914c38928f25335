// core/deckvar/deckvar.go
package deckvar

// Variable identifies one canonical engine-performance variable. The set is
// fixed at compile time; free-text deck headers are mapped onto it through
// the alias table in alias.go.
type Variable int

const (
	Unrecognized Variable = iota
	Mach
	Altitude
	Throttle
	HybridThrottle
	NetThrust
	GrossThrust
	RamDrag
	TailpipeThrust
	ShaftPower
	Torque
	FuelFlow
	ElectricPower
	NOxRate
	T4Temperature
)

// Class partitions variables by their role in a deck.
type Class int

const (
	ClassUnknown  Class = iota
	ClassRequired       // independent axis that every deck must sample
	ClassOptional       // independent axis that may be absent
	ClassDependent
)

type meta struct {
	name  string // display name
	key   string // stable machine key (JSON, column ids)
	unit  string // default unit
	class Class
}

var table = map[Variable]meta{
	Mach:           {"Mach Number", "mach", "unitless", ClassRequired},
	Altitude:       {"Altitude", "altitude", "ft", ClassRequired},
	Throttle:       {"Throttle", "throttle", "unitless", ClassRequired},
	HybridThrottle: {"Hybrid Throttle", "hybrid_throttle", "unitless", ClassOptional},
	NetThrust:      {"Net Thrust", "thrust_net", "lbf", ClassDependent},
	GrossThrust:    {"Gross Thrust", "thrust_gross", "lbf", ClassDependent},
	RamDrag:        {"Ram Drag", "ram_drag", "lbf", ClassDependent},
	TailpipeThrust: {"Tailpipe Thrust", "tailpipe_thrust", "lbf", ClassDependent},
	ShaftPower:     {"Shaft Power", "shaft_power", "hp", ClassDependent},
	Torque:         {"Torque", "torque", "ft*lbf", ClassDependent},
	FuelFlow:       {"Fuel Flow Rate", "fuel_flow", "lb/h", ClassDependent},
	ElectricPower:  {"Electric Power", "electric_power", "kW", ClassDependent},
	NOxRate:        {"NOx Rate", "nox_rate", "lb/h", ClassDependent},
	T4Temperature:  {"T4 Temperature", "temperature_t4", "degR", ClassDependent},
}

// All lists every canonical variable in declaration order.
var All = []Variable{
	Mach, Altitude, Throttle, HybridThrottle,
	NetThrust, GrossThrust, RamDrag, TailpipeThrust,
	ShaftPower, Torque, FuelFlow, ElectricPower, NOxRate, T4Temperature,
}

// HeaderlessOrder is the column assignment used when a deck has no header
// row: the first four columns are taken in this order.
var HeaderlessOrder = []Variable{Mach, Altitude, Throttle, NetThrust}

func (v Variable) String() string {
	if m, ok := table[v]; ok {
		return m.name
	}
	return "unrecognized"
}

// Key returns the stable machine-readable identifier for v.
func (v Variable) Key() string {
	if m, ok := table[v]; ok {
		return m.key
	}
	return "unrecognized"
}

// DefaultUnit returns the unit deck values are stored in after parsing.
func (v Variable) DefaultUnit() string {
	if m, ok := table[v]; ok {
		return m.unit
	}
	return ""
}

func (v Variable) Class() Class {
	if m, ok := table[v]; ok {
		return m.class
	}
	return ClassUnknown
}

// Independent reports whether v is an interpolation input rather than an
// interpolated output.
func (v Variable) Independent() bool {
	c := v.Class()
	return c == ClassRequired || c == ClassOptional
}
