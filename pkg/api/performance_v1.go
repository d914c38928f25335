// pkg/api/performance_v1.go
package api

// PerformanceV1 is the stable JSON schema for one performance query result.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
// Output values are keyed by canonical machine keys and carry each
// variable's default unit.
type PerformanceV1 struct {
	Deck           string             `json:"deck"`
	Mach           float64            `json:"mach"`
	AltitudeFt     float64            `json:"altitude_ft"`
	Throttle       float64            `json:"throttle"`
	HybridThrottle *float64           `json:"hybrid_throttle,omitempty"`
	Outputs        map[string]float64 `json:"outputs"`
	OutOfEnvelope  bool               `json:"out_of_envelope,omitempty"`
	OutsideAxes    []string           `json:"outside_axes,omitempty"`
}
