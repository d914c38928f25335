// core/engine/config.go
package engine

import (
	"edeck-core/interp"
	"edeck-core/opts"
)

// ConfigFromValues resolves a deck Config from a keyed option store,
// substituting documented defaults for absent options. The returned slice
// names each option that was missing so callers can surface the
// substitutions as warnings rather than losing them.
func ConfigFromValues(v *opts.Values) (Config, []string) {
	cfg := DefaultConfig()
	var missing []string

	track := func(key string) bool {
		if v.Has(key) {
			return true
		}
		missing = append(missing, key)
		return false
	}

	if track(opts.KeyScaleFactor) {
		cfg.ScaleFactor = v.FloatDefault(opts.KeyScaleFactor, cfg.ScaleFactor)
	}
	if track(opts.KeyClampNegativeThrust) {
		cfg.ClampNegativeThrust = v.BoolDefault(opts.KeyClampNegativeThrust, false)
	}
	if track(opts.KeyGeopotentialAltitude) {
		cfg.GeopotentialAltitude = v.BoolDefault(opts.KeyGeopotentialAltitude, false)
	}
	if track(opts.KeyGenerateFlightIdle) {
		cfg.GenerateFlightIdle = v.BoolDefault(opts.KeyGenerateFlightIdle, false)
	}
	if cfg.GenerateFlightIdle {
		if track(opts.KeyIdleThrustFraction) {
			cfg.FlightIdleThrustFraction = v.FloatDefault(opts.KeyIdleThrustFraction, cfg.FlightIdleThrustFraction)
		}
		if track(opts.KeyIdleMinFuelFlowFraction) {
			cfg.FlightIdleMinFuelFraction = v.FloatDefault(opts.KeyIdleMinFuelFlowFraction, cfg.FlightIdleMinFuelFraction)
		}
		if track(opts.KeyIdleMaxFuelFlowFraction) {
			cfg.FlightIdleMaxFuelFraction = v.FloatDefault(opts.KeyIdleMaxFuelFlowFraction, cfg.FlightIdleMaxFuelFraction)
		}
	}

	if v.Has(opts.KeyInterpMethod) {
		if m, err := interp.ParseMethod(v.StringDefault(opts.KeyInterpMethod, "auto")); err == nil {
			cfg.Interp.Method = m
		}
	}
	if v.BoolDefault(opts.KeyExtrapolate, false) {
		cfg.Interp.Policy = interp.Extrapolate
	}
	return cfg, missing
}
