package domain

// Building is a physical location that hosts companies.
type Building struct {
	ID        int64
	Address   string
	Latitude  float64
	Longitude float64
}
