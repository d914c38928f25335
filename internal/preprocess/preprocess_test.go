// internal/preprocess/preprocess_test.go
package preprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"edeck-core/deckvar"
	"edeck-core/engine"
	"edeck-core/opts"
)

func stubModel(name string) engine.Model {
	return engine.NewCustom(name, func(engine.Conditions) (engine.Outputs, error) {
		return engine.Outputs{deckvar.NetThrust: 1000}, nil
	})
}

func TestPropulsionVectors(t *testing.T) {
	left := opts.New()
	left.Set(opts.KeyNumEngines, 2, "")
	left.Set(opts.KeyNumWingEngines, 2, "")
	left.Set(opts.KeyNumFuselageEngines, 0, "")
	left.Set(opts.KeyScaleFactor, 0.9, "")
	left.Set(opts.KeyFuelFlowScaler, 1.0, "")

	right := opts.New()
	right.Set(opts.KeyNumEngines, 1, "")
	right.Set(opts.KeyNumWingEngines, 0, "")
	right.Set(opts.KeyNumFuselageEngines, 1, "")
	right.Set(opts.KeyScaleFactor, 1.1, "")
	right.Set(opts.KeyFuelFlowScaler, 1.0, "")

	store := opts.New()
	res := Propulsion(store, []Engine{
		{Model: stubModel("turbofan"), Options: left},
		{Model: stubModel("aux"), Options: right},
	}, zap.NewNop().Sugar())

	assert.Empty(t, res.Missing)
	assert.Empty(t, res.Failed)
	assert.Equal(t, 3, res.TotalEngines)

	names, _, ok := store.Get(opts.KeyVehicleEngineNames)
	require.True(t, ok)
	assert.Equal(t, []string{"turbofan", "aux"}, names)

	counts, _, ok := store.Get(opts.KeyVehicleNumEngines)
	require.True(t, ok)
	assert.Equal(t, []int{2, 1}, counts)

	scales, _, ok := store.Get(opts.KeyVehicleScaleFactors)
	require.True(t, ok)
	assert.Equal(t, []float64{0.9, 1.1}, scales)

	assert.Equal(t, 3, store.IntDefault(opts.KeyVehicleTotalEngines, 0))
}

func TestPropulsionDefaultsAndWarnings(t *testing.T) {
	store := opts.New()
	res := Propulsion(store, []Engine{{Model: stubModel("bare")}}, nil)

	// Every optional option was absent; each substitution is reported once.
	keys := map[string]bool{}
	for _, m := range res.Missing {
		assert.Equal(t, "bare", m.Engine)
		keys[m.Key] = true
	}
	for _, k := range []string{
		opts.KeyNumEngines, opts.KeyNumWingEngines, opts.KeyNumFuselageEngines,
		opts.KeyScaleFactor, opts.KeyFuelFlowScaler,
	} {
		assert.True(t, keys[k], "missing warning for %s", k)
	}

	assert.Equal(t, 2, res.TotalEngines)
	counts, _, ok := store.Get(opts.KeyVehicleNumEngines)
	require.True(t, ok)
	assert.Equal(t, []int{2}, counts)
}

func TestPropulsionIsolatesFailures(t *testing.T) {
	bad := opts.New()
	bad.Set(opts.KeyNumEngines, 3, "")
	bad.Set(opts.KeyNumWingEngines, 1, "")
	bad.Set(opts.KeyNumFuselageEngines, 1, "")
	bad.Set(opts.KeyScaleFactor, 1.0, "")
	bad.Set(opts.KeyFuelFlowScaler, 1.0, "")

	good := opts.New()
	good.Set(opts.KeyNumEngines, 2, "")
	good.Set(opts.KeyNumWingEngines, 2, "")
	good.Set(opts.KeyNumFuselageEngines, 0, "")
	good.Set(opts.KeyScaleFactor, 1.0, "")
	good.Set(opts.KeyFuelFlowScaler, 1.0, "")

	store := opts.New()
	res := Propulsion(store, []Engine{
		{Model: stubModel("mismatched"), Options: bad},
		{Model: stubModel("fine"), Options: good},
	}, zap.NewNop().Sugar())

	require.Contains(t, res.Failed, "mismatched")
	assert.NotContains(t, res.Failed, "fine")

	names, _, _ := store.Get(opts.KeyVehicleEngineNames)
	assert.Equal(t, []string{"fine"}, names)
	assert.Equal(t, 2, res.TotalEngines)
}

func TestPropulsionDuplicateNames(t *testing.T) {
	store := opts.New()
	res := Propulsion(store, []Engine{
		{Model: stubModel("twin")},
		{Model: stubModel("twin")},
	}, nil)

	require.Contains(t, res.Failed, "twin")
	names, _, _ := store.Get(opts.KeyVehicleEngineNames)
	assert.Equal(t, []string{"twin"}, names)
}
