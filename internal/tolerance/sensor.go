package tolerance

// Temperature sensor-class tolerance model: a fixed floor plus a term
// that grows with the largest magnitude temperature in range, covering
// self-heating and linearity effects at the extremes.
const (
	tempTolBase    = 0.15
	tempTolPerUnit = 0.0020

	// defaultSensorTol is the datasheet fallback for non-temperature
	// sensors when no explicit value is supplied.
	defaultSensorTol = 0.5
)

// SensorTolerance returns the sensor-class tolerance in sensor units.
//
// Temperature sensors use the built-in model above. Other sensor types
// have no physical model here: the datasheet value passed as override is
// returned unchanged, or defaultSensorTol when the caller supplied none.
func SensorTolerance(r Range, st SensorType, override *float64) float64 {
	if st == SensorTemperature {
		return tempTolBase + tempTolPerUnit*r.MaxAbsBound()
	}
	if override != nil {
		return *override
	}
	return defaultSensorTol
}
