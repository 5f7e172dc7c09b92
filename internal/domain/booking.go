package domain

import (
	"sort"
	"time"
)

// Booking represents a confirmed reservation of a venue for a date range.
// Bookings are owned by the remote Holidaze API; once created they are
// immutable except for cancellation (deletion).
type Booking struct {
	ID       string
	DateFrom time.Time
	DateTo   time.Time
	Guests   int
	VenueID  string

	// Expanded relations, present only when requested from the API
	Venue    *Venue
	Customer *Profile

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Range returns the occupied span of the booking
func (b *Booking) Range() DateRange {
	return NewDateRange(b.DateFrom, b.DateTo)
}

// IsUpcoming returns true if the booking has not ended before today.
// A booking ending today is still upcoming.
func (b *Booking) IsUpcoming(now time.Time) bool {
	return !DateOnly(b.DateTo).Before(DateOnly(now))
}

// BookingProposal is a not-yet-submitted candidate booking.
// A zero CheckIn or CheckOut means the date was not selected.
type BookingProposal struct {
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
}

// HasDates returns true if both dates are selected
func (p BookingProposal) HasDates() bool {
	return !p.CheckIn.IsZero() && !p.CheckOut.IsZero()
}

// Range returns the proposed stay as a date range
func (p BookingProposal) Range() DateRange {
	return NewDateRange(p.CheckIn, p.CheckOut)
}

// BookingWithVenue pairs a booking with the venue it targets
type BookingWithVenue struct {
	Booking Booking
	Venue   Venue
}

// SortOrder defines chronological ordering of bookings by DateFrom
type SortOrder string

const (
	SortSoonest SortOrder = "soonest"
	SortLatest  SortOrder = "latest"
)

// IsValid returns true for a known sort order
func (o SortOrder) IsValid() bool {
	return o == SortSoonest || o == SortLatest
}

// SplitBookings partitions bookings into upcoming and past relative to now,
// preserving input order
func SplitBookings(bookings []Booking, now time.Time) (upcoming, past []Booking) {
	upcoming = make([]Booking, 0)
	past = make([]Booking, 0)

	for _, b := range bookings {
		if b.IsUpcoming(now) {
			upcoming = append(upcoming, b)
		} else {
			past = append(past, b)
		}
	}

	return upcoming, past
}

// SortBookingsWithVenue sorts items in place by booking DateFrom
func SortBookingsWithVenue(items []BookingWithVenue, order SortOrder) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].Booking.DateFrom, items[j].Booking.DateFrom
		if order == SortLatest {
			return a.After(b)
		}
		return a.Before(b)
	})
}
