// internal/preprocess/preprocess.go
package preprocess

import (
	"fmt"

	"go.uber.org/zap"

	"edeck-core/engine"
	"edeck-core/opts"
)

// Engine pairs a performance model with its own option store.
type Engine struct {
	Model   engine.Model
	Options *opts.Values
}

// MissingOption records one absent engine option that was replaced by its
// documented default.
type MissingOption struct {
	Engine  string
	Key     string
	Default any
}

func (m MissingOption) String() string {
	return fmt.Sprintf("%s: option %q not set, using default %v", m.Engine, m.Key, m.Default)
}

// Result reports what preprocessing did. Failed engines are excluded from
// the vehicle-level vectors; the rest of the batch proceeds.
type Result struct {
	Missing []MissingOption
	Failed  map[string]error

	TotalEngines int
}

// Propulsion expands per-engine options into vehicle-level vectors on the
// shared store: engine names, per-engine counts, scale factors and the
// total engine count. Each missing optional option is logged and replaced
// by its default; an engine with inconsistent options is dropped from the
// vectors without aborting the batch.
func Propulsion(store *opts.Values, engines []Engine, log *zap.SugaredLogger) Result {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	log = log.Named("preprocess")

	res := Result{Failed: map[string]error{}}

	var (
		names  []string
		counts []int
		scales []float64
	)
	seen := map[string]bool{}

	for _, e := range engines {
		name := e.Model.Name()
		if seen[name] {
			res.Failed[name] = fmt.Errorf("duplicate engine model name %q", name)
			log.Warnw("engine dropped", "engine", name, "error", res.Failed[name])
			continue
		}
		seen[name] = true

		ev := e.Options
		if ev == nil {
			ev = opts.New()
		}

		miss := func(key string, def any) {
			m := MissingOption{Engine: name, Key: key, Default: def}
			res.Missing = append(res.Missing, m)
			log.Warnw("option not set, default substituted",
				"engine", name, "option", key, "default", def)
		}

		num := ev.IntDefault(opts.KeyNumEngines, 2)
		if !ev.Has(opts.KeyNumEngines) {
			miss(opts.KeyNumEngines, 2)
		}
		wing := ev.IntDefault(opts.KeyNumWingEngines, num)
		if !ev.Has(opts.KeyNumWingEngines) {
			miss(opts.KeyNumWingEngines, num)
		}
		fuselage := ev.IntDefault(opts.KeyNumFuselageEngines, 0)
		if !ev.Has(opts.KeyNumFuselageEngines) {
			miss(opts.KeyNumFuselageEngines, 0)
		}
		if wing+fuselage != num {
			res.Failed[name] = fmt.Errorf(
				"engine counts disagree: %d wing + %d fuselage != %d total",
				wing, fuselage, num)
			log.Warnw("engine dropped", "engine", name, "error", res.Failed[name])
			continue
		}

		scale := ev.FloatDefault(opts.KeyScaleFactor, 1.0)
		if !ev.Has(opts.KeyScaleFactor) {
			miss(opts.KeyScaleFactor, 1.0)
		}
		if !ev.Has(opts.KeyFuelFlowScaler) {
			miss(opts.KeyFuelFlowScaler, 1.0)
		}

		names = append(names, name)
		counts = append(counts, num)
		scales = append(scales, scale)
		res.TotalEngines += num
	}

	store.Set(opts.KeyVehicleEngineNames, names, "")
	store.Set(opts.KeyVehicleNumEngines, counts, "")
	store.Set(opts.KeyVehicleScaleFactors, scales, "")
	store.Set(opts.KeyVehicleTotalEngines, res.TotalEngines, "")

	log.Infow("propulsion preprocessing complete",
		"engines", len(names), "total_count", res.TotalEngines, "failed", len(res.Failed))
	return res
}
