package domain

import "time"

// Availability is the calendar view of a venue for a window of days
type Availability struct {
	VenueID       string
	Window        DateRange
	Today         time.Time
	MaxGuests     int
	PricePerNight float64
	BookedRanges  []DateRange
	DisabledDates []time.Time
}

// TotalDays returns the number of days in the window
func (a *Availability) TotalDays() int {
	return a.Window.Days()
}

// AvailableDays returns the number of bookable days in the window
func (a *Availability) AvailableDays() int {
	free := a.TotalDays() - len(a.DisabledDates)
	if free < 0 {
		return 0
	}
	return free
}

// IsFullyBooked returns true if no day in the window can be booked
func (a *Availability) IsFullyBooked() bool {
	return a.AvailableDays() == 0
}

// OccupancyRate returns the share of disabled days as a percentage (0-100)
func (a *Availability) OccupancyRate() float64 {
	total := a.TotalDays()
	if total == 0 {
		return 0
	}
	return float64(len(a.DisabledDates)) / float64(total) * 100
}
