package constants

// Redis key formats
const (
	// Location Service
	KeyDriverLocation   = "driver:location:%s" // Format: driver:location:{driver_id}
	KeyDriverGeo        = "driver:geo"         // GeoHash set of all driver locations
	KeyAvailableDrivers = "drivers:available"  // Set of available driver IDs

	// Dispatch Service
	KeyTripOffered = "trip:offered:%s" // Format: trip:offered:{trip_id}, drivers already offered this trip

	// Matrix provider cache
	KeyMatrixEta = "matrix:eta:%s:%s" // Format: matrix:eta:{origin_geohash}:{dest_geohash}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldTimestamp = "ts"
)
