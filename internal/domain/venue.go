package domain

import (
	"strings"
	"time"
)

// Media is an image reference (venue photo, avatar, banner)
type Media struct {
	URL string
	Alt string
}

// VenueMeta describes venue facilities
type VenueMeta struct {
	Wifi      bool
	Parking   bool
	Breakfast bool
	Pets      bool
}

// Location describes where the venue is
type Location struct {
	Address   string
	City      string
	Zip       string
	Country   string
	Continent string
	Lat       float64
	Lng       float64
}

// Venue represents a bookable listing.
// Bookings is a snapshot taken when the venue was fetched; it is not live.
type Venue struct {
	ID          string
	Name        string
	Description string
	Media       []Media
	Price       float64 // price per night
	MaxGuests   int
	Rating      float64
	Meta        VenueMeta
	Location    Location
	Owner       *Profile
	Bookings    []Booking

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookedRanges returns the occupied spans of all known bookings
func (v *Venue) BookedRanges() []DateRange {
	ranges := make([]DateRange, 0, len(v.Bookings))
	for i := range v.Bookings {
		ranges = append(ranges, v.Bookings[i].Range())
	}
	return ranges
}

// IsOwnedBy returns true if the venue belongs to the profile with the given name
func (v *Venue) IsOwnedBy(profileName string) bool {
	return v.Owner != nil && strings.EqualFold(v.Owner.Name, profileName)
}

// Region returns the normalized continent of the venue
func (v *Venue) Region() string {
	return NormalizeRegion(v.Location.Continent)
}

// CanHost returns true if the venue accepts the given number of guests
func (v *Venue) CanHost(guests int) bool {
	return guests >= MinGuests && guests <= v.MaxGuests
}

// NormalizeRegion trims and capitalizes a continent name.
// Empty and "null" values become RegionUnknown.
func NormalizeRegion(region string) string {
	clean := strings.ToLower(strings.TrimSpace(region))
	if clean == "" || clean == "null" {
		return RegionUnknown
	}
	return strings.ToUpper(clean[:1]) + clean[1:]
}

// VenueDraft holds the editable fields of a venue for create and update
type VenueDraft struct {
	Name        string
	Description string
	Media       []Media
	Price       float64
	MaxGuests   int
	Rating      float64
	Meta        VenueMeta
	Location    Location
}
