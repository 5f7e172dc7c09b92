package domain

// Profile represents a Holidaze user
type Profile struct {
	Name         string
	Email        string
	Bio          string
	Avatar       *Media
	Banner       *Media
	VenueManager bool

	// Counters, present only on full profile responses
	VenuesCount   int
	BookingsCount int
}

// Registration holds the data needed to register a new profile
type Registration struct {
	Name         string
	Email        string
	Password     string
	VenueManager bool
}
