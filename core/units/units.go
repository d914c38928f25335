// core/units/units.go
package units

import (
	"fmt"
	"strings"
)

// A unit is stored as an affine transform into its family's base unit:
// base = value*scale + offset. Only temperature units carry an offset.
type unitDef struct {
	family string
	scale  float64
	offset float64
}

// Canonical spellings used for display; lookup is case-insensitive.
var canonical = map[string]string{
	"unitless": "unitless",
	"ft":       "ft",
	"m":        "m",
	"km":       "km",
	"nmi":      "NM",
	"nm":       "NM",
	"lbf":      "lbf",
	"n":        "N",
	"kn":       "kN",
	"lb/h":     "lb/h",
	"lbm/h":    "lb/h",
	"kg/h":     "kg/h",
	"kg/s":     "kg/s",
	"kw":       "kW",
	"w":        "W",
	"mw":       "MW",
	"hp":       "hp",
	"degr":     "degR",
	"k":        "K",
	"degc":     "degC",
	"degf":     "degF",
	"ft*lbf":   "ft*lbf",
	"n*m":      "N*m",
}

var defs = map[string]unitDef{
	"unitless": {"unitless", 1, 0},

	"ft": {"length", 0.3048, 0},
	"m":  {"length", 1, 0},
	"km": {"length", 1000, 0},
	"NM": {"length", 1852, 0},

	"lbf": {"force", 4.4482216152605, 0},
	"N":   {"force", 1, 0},
	"kN":  {"force", 1000, 0},

	"lb/h": {"massflow", 0.45359237 / 3600.0, 0},
	"kg/h": {"massflow", 1.0 / 3600.0, 0},
	"kg/s": {"massflow", 1, 0},

	"kW": {"power", 1000, 0},
	"W":  {"power", 1, 0},
	"MW": {"power", 1e6, 0},
	"hp": {"power", 745.6998715822702, 0},

	"degR": {"temperature", 5.0 / 9.0, 0},
	"K":    {"temperature", 1, 0},
	"degC": {"temperature", 1, 273.15},
	"degF": {"temperature", 5.0 / 9.0, 459.67 * 5.0 / 9.0},

	"ft*lbf": {"torque", 1.3558179483314004, 0},
	"N*m":    {"torque", 1, 0},
}

// Normalize returns the canonical spelling for a unit string, or ok=false
// if the unit is not recognized.
func Normalize(u string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(u))
	key = strings.ReplaceAll(key, " ", "")
	c, ok := canonical[key]
	return c, ok
}

// Convert converts v from one unit to another within the same family.
func Convert(v float64, from, to string) (float64, error) {
	cf, ok := Normalize(from)
	if !ok {
		return 0, fmt.Errorf("unknown unit %q", from)
	}
	ct, ok := Normalize(to)
	if !ok {
		return 0, fmt.Errorf("unknown unit %q", to)
	}
	if cf == ct {
		return v, nil
	}
	df, dt := defs[cf], defs[ct]
	if df.family != dt.family {
		return 0, fmt.Errorf("cannot convert %s to %s", cf, ct)
	}
	base := v*df.scale + df.offset
	return (base - dt.offset) / dt.scale, nil
}

// Compatible reports whether two unit strings share a family.
func Compatible(a, b string) bool {
	ca, ok := Normalize(a)
	if !ok {
		return false
	}
	cb, ok := Normalize(b)
	if !ok {
		return false
	}
	return defs[ca].family == defs[cb].family
}
