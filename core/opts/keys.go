// core/opts/keys.go
package opts

// Engine-level option keys. Defaults live with the consumers that apply
// them (engine.ConfigFromValues, preprocess.Propulsion).
const (
	KeyDataFile             = "engine.data_file"
	KeyScaleFactor          = "engine.scale_factor"
	KeyClampNegativeThrust  = "engine.clamp_negative_thrust"
	KeyGeopotentialAltitude = "engine.geopotential_altitude"
	KeyInterpMethod         = "engine.interpolation_method"
	KeyExtrapolate          = "engine.extrapolate"

	KeyGenerateFlightIdle      = "engine.generate_flight_idle"
	KeyIdleThrustFraction      = "engine.flight_idle_thrust_fraction"
	KeyIdleMinFuelFlowFraction = "engine.flight_idle_min_fuel_flow_fraction"
	KeyIdleMaxFuelFlowFraction = "engine.flight_idle_max_fuel_flow_fraction"

	KeyNumEngines         = "engine.num_engines"
	KeyNumWingEngines     = "engine.num_wing_engines"
	KeyNumFuselageEngines = "engine.num_fuselage_engines"

	KeyFuelFlowScaler = "mission.fuel_flow_scaler"
)

// Vehicle-level keys written back by preprocessing, one element per engine
// model.
const (
	KeyVehicleEngineNames  = "vehicle.engine_names"
	KeyVehicleNumEngines   = "vehicle.num_engines"
	KeyVehicleScaleFactors = "vehicle.scale_factors"
	KeyVehicleTotalEngines = "vehicle.total_engines"
)
