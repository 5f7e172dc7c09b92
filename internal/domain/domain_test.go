package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "date only", input: "2024-06-01", want: day("2024-06-01")},
		{name: "api timestamp", input: "2024-06-01T00:00:00.000Z", want: day("2024-06-01")},
		{name: "timestamp with time is truncated", input: "2024-06-01T18:45:00Z", want: day("2024-06-01")},
		{name: "offset converted to utc day", input: "2024-06-02T01:00:00+03:00", want: day("2024-06-01")},
		{name: "surrounding spaces", input: " 2024-06-01 ", want: day("2024-06-01")},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "01/06/2024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestDateRange_ContainsAndOverlaps(t *testing.T) {
	r := NewDateRange(day("2024-06-10"), day("2024-06-15"))

	assert.True(t, r.Contains(day("2024-06-10")))
	assert.True(t, r.Contains(day("2024-06-15")))
	assert.True(t, r.Contains(day("2024-06-15").Add(23*time.Hour)))
	assert.False(t, r.Contains(day("2024-06-09")))
	assert.False(t, r.Contains(day("2024-06-16")))

	assert.True(t, r.Overlaps(NewDateRange(day("2024-06-12"), day("2024-06-18"))))
	assert.True(t, r.Overlaps(NewDateRange(day("2024-06-15"), day("2024-06-20"))), "touching ranges overlap")
	assert.True(t, r.Overlaps(NewDateRange(day("2024-06-01"), day("2024-06-30"))))
	assert.False(t, r.Overlaps(NewDateRange(day("2024-06-16"), day("2024-06-20"))))
	assert.False(t, r.Overlaps(NewDateRange(day("2024-06-01"), day("2024-06-09"))))

	assert.Equal(t, 6, r.Days())
	assert.Equal(t, 0, NewDateRange(day("2024-06-15"), day("2024-06-10")).Days())
	assert.Equal(t, "2024-06-10..2024-06-15", r.String())
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 3, DaysBetween(day("2024-06-01"), day("2024-06-04")))
	assert.Equal(t, -3, DaysBetween(day("2024-06-04"), day("2024-06-01")))
	assert.Equal(t, 0, DaysBetween(day("2024-06-01"), day("2024-06-01").Add(20*time.Hour)))
	assert.Equal(t, 29, DaysBetween(day("2024-02-01"), day("2024-03-01")))
	assert.Equal(t, 137331, DaysBetween(day("2024-01-01"), day("2400-01-01")))
	assert.Equal(t, -137331, DaysBetween(day("2400-01-01"), day("2024-01-01")))
}

func TestNormalizeRegion(t *testing.T) {
	assert.Equal(t, "Europe", NormalizeRegion("europe "))
	assert.Equal(t, "Europe", NormalizeRegion("EUROPE"))
	assert.Equal(t, "North america", NormalizeRegion("North America"))
	assert.Equal(t, RegionUnknown, NormalizeRegion(""))
	assert.Equal(t, RegionUnknown, NormalizeRegion("   "))
	assert.Equal(t, RegionUnknown, NormalizeRegion("null"))
}

func TestSplitBookings(t *testing.T) {
	now := day("2024-07-10").Add(15 * time.Hour)
	bookings := []Booking{
		{ID: "past", DateFrom: day("2024-07-01"), DateTo: day("2024-07-05")},
		{ID: "ends-today", DateFrom: day("2024-07-08"), DateTo: day("2024-07-10")},
		{ID: "future", DateFrom: day("2024-08-01"), DateTo: day("2024-08-03")},
	}

	upcoming, past := SplitBookings(bookings, now)

	require.Len(t, upcoming, 2)
	require.Len(t, past, 1)
	assert.Equal(t, "ends-today", upcoming[0].ID)
	assert.Equal(t, "future", upcoming[1].ID)
	assert.Equal(t, "past", past[0].ID)
}

func TestSplitBookings_EmptyReturnsNonNil(t *testing.T) {
	upcoming, past := SplitBookings(nil, time.Now())
	assert.NotNil(t, upcoming)
	assert.NotNil(t, past)
}

func TestSortBookingsWithVenue(t *testing.T) {
	items := []BookingWithVenue{
		{Booking: Booking{ID: "b", DateFrom: day("2024-07-10")}},
		{Booking: Booking{ID: "a", DateFrom: day("2024-07-01")}},
		{Booking: Booking{ID: "c", DateFrom: day("2024-07-20")}},
	}

	SortBookingsWithVenue(items, SortSoonest)
	assert.Equal(t, []string{"a", "b", "c"}, ids(items))

	SortBookingsWithVenue(items, SortLatest)
	assert.Equal(t, []string{"c", "b", "a"}, ids(items))
}

func ids(items []BookingWithVenue) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Booking.ID
	}
	return out
}

func TestSession_IsActive(t *testing.T) {
	now := day("2024-07-10")
	s := &Session{ExpiresAt: now.Add(time.Hour)}

	assert.True(t, s.IsActive(now))
	assert.False(t, s.IsActive(now.Add(time.Hour)), "expiry instant is inclusive")

	revokedAt := now
	s.RevokedAt = &revokedAt
	assert.False(t, s.IsActive(now))
}

func TestAvailability_Counters(t *testing.T) {
	a := &Availability{
		Window:        NewDateRange(day("2024-07-01"), day("2024-07-10")),
		DisabledDates: []time.Time{day("2024-07-01"), day("2024-07-02")},
	}

	assert.Equal(t, 10, a.TotalDays())
	assert.Equal(t, 8, a.AvailableDays())
	assert.False(t, a.IsFullyBooked())
	assert.InDelta(t, 20.0, a.OccupancyRate(), 0.001)
}

func TestVenue_Helpers(t *testing.T) {
	v := &Venue{
		MaxGuests: 4,
		Owner:     &Profile{Name: "Kari"},
		Location:  Location{Continent: " europe"},
		Bookings: []Booking{
			{DateFrom: day("2024-07-01"), DateTo: day("2024-07-05")},
		},
	}

	assert.True(t, v.IsOwnedBy("kari"))
	assert.False(t, v.IsOwnedBy("ola"))
	assert.Equal(t, "Europe", v.Region())
	assert.True(t, v.CanHost(4))
	assert.False(t, v.CanHost(5))
	assert.False(t, v.CanHost(0))
	require.Len(t, v.BookedRanges(), 1)
	assert.Equal(t, "2024-07-01..2024-07-05", v.BookedRanges()[0].String())
}
