package models

// Spaceship is the full detail record of a ship offered for sale.
// Available is the quantity in stock; zero means it cannot be ordered.
type Spaceship struct {
	ID              int64
	SerialNumber    string
	Make            string
	Model           string
	Name            string
	ModelYear       int
	Condition       string
	Modifications   string
	Price           Money
	LastMaintenance string
	Available       int64
}

// IsAvailable reports whether the ship can currently be reserved.
func (s Spaceship) IsAvailable() bool { return s.Available > 0 }

// SpaceshipSummary is the listing row used for paging.
type SpaceshipSummary struct {
	ID    int64
	Make  string
	Model string
	Name  string
	Price Money
}
