package domain

// Immutable geographic coordinates (longitude, latitude).
// Stops may carry placeholder values when the upstream order system has
// not geocoded the address yet.
type Coordinates struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}
