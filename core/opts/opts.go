// core/opts/opts.go
package opts

import (
	"fmt"

	"edeck-core/units"
)

type entry struct {
	val   any
	units string
}

// Values is a keyed configuration store with per-entry units: the contract
// between the caller's setup code, engine model construction, and the
// propulsion preprocessing step. Keys iterate in insertion order so
// downstream output is deterministic.
type Values struct {
	keys []string
	m    map[string]entry
}

func New() *Values {
	return &Values{m: map[string]entry{}}
}

// Set stores val under name. Units may be empty for dimensionless or
// non-numeric values. Re-setting an existing key overwrites in place.
func (v *Values) Set(name string, val any, unit string) {
	if _, ok := v.m[name]; !ok {
		v.keys = append(v.keys, name)
	}
	v.m[name] = entry{val, unit}
}

// Get returns the raw value and its units.
func (v *Values) Get(name string) (val any, unit string, ok bool) {
	e, ok := v.m[name]
	return e.val, e.units, ok
}

func (v *Values) Has(name string) bool {
	_, ok := v.m[name]
	return ok
}

// Keys returns option names in insertion order.
func (v *Values) Keys() []string {
	return append([]string(nil), v.keys...)
}

// Float returns a numeric option converted to the requested units.
func (v *Values) Float(name, unit string) (float64, error) {
	e, ok := v.m[name]
	if !ok {
		return 0, fmt.Errorf("option %q not set", name)
	}
	x, ok := asFloat(e.val)
	if !ok {
		return 0, fmt.Errorf("option %q is %T, not numeric", name, e.val)
	}
	if unit == "" || e.units == "" || unit == e.units {
		return x, nil
	}
	out, err := units.Convert(x, e.units, unit)
	if err != nil {
		return 0, fmt.Errorf("option %q: %w", name, err)
	}
	return out, nil
}

// FloatDefault returns the option value in its stored units, or def when the
// option is absent or non-numeric.
func (v *Values) FloatDefault(name string, def float64) float64 {
	e, ok := v.m[name]
	if !ok {
		return def
	}
	if x, ok := asFloat(e.val); ok {
		return x
	}
	return def
}

func (v *Values) BoolDefault(name string, def bool) bool {
	if e, ok := v.m[name]; ok {
		if b, ok := e.val.(bool); ok {
			return b
		}
	}
	return def
}

func (v *Values) IntDefault(name string, def int) int {
	e, ok := v.m[name]
	if !ok {
		return def
	}
	switch x := e.val.(type) {
	case int:
		return x
	case int64:
		return int(x)
	case float64:
		return int(x)
	}
	return def
}

func (v *Values) StringDefault(name, def string) string {
	if e, ok := v.m[name]; ok {
		if s, ok := e.val.(string); ok {
			return s
		}
	}
	return def
}

func asFloat(val any) (float64, bool) {
	switch x := val.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}
