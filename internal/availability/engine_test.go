package availability

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/holidaze-gateway/internal/domain"
)

func day(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func rng(from, to string) domain.DateRange {
	return domain.NewDateRange(day(from), day(to))
}

func TestIsDateDisabled_PastDates(t *testing.T) {
	today := day("2024-06-15")

	for d := day("2024-05-01"); d.Before(today); d = d.AddDate(0, 0, 1) {
		assert.True(t, IsDateDisabled(d, nil, today), "past date %s must be disabled", d.Format(domain.DateFormat))
	}
}

func TestIsDateDisabled_FutureDatesWithoutBookings(t *testing.T) {
	today := day("2024-06-15")

	for d := today; d.Before(day("2024-08-01")); d = d.AddDate(0, 0, 1) {
		assert.False(t, IsDateDisabled(d, []domain.DateRange{}, today), "date %s must be enabled", d.Format(domain.DateFormat))
	}
}

func TestIsDateDisabled_TodayWithLateClockIsEnabled(t *testing.T) {
	today := day("2024-06-15").Add(23*time.Hour + 59*time.Minute)

	assert.False(t, IsDateDisabled(day("2024-06-15"), nil, today))
}

func TestIsDateDisabled_BookedRangeInclusiveRegardlessOfToday(t *testing.T) {
	booked := []domain.DateRange{rng("2024-06-10", "2024-06-15")}

	for _, today := range []time.Time{day("2020-01-01"), day("2024-06-12"), day("2030-01-01")} {
		for d := day("2024-06-10"); !d.After(day("2024-06-15")); d = d.AddDate(0, 0, 1) {
			assert.True(t, IsDateDisabled(d, booked, today))
		}
	}

	today := day("2024-06-01")
	assert.False(t, IsDateDisabled(day("2024-06-09"), booked, today))
	assert.False(t, IsDateDisabled(day("2024-06-16"), booked, today))
}

func TestIsDateDisabled_CheckoutDayIsDisabled(t *testing.T) {
	booked := []domain.DateRange{rng("2024-07-01", "2024-07-05")}

	assert.True(t, IsDateDisabled(day("2024-07-05"), booked, day("2024-06-01")))
}

func TestIsDateDisabled_TimestampInsideDay(t *testing.T) {
	booked := []domain.DateRange{rng("2024-06-10", "2024-06-15")}

	assert.True(t, IsDateDisabled(day("2024-06-15").Add(18*time.Hour), booked, day("2024-06-01")))
}

func TestComputeNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{name: "three nights", checkIn: day("2024-06-01"), checkOut: day("2024-06-04"), want: 3},
		{name: "same day", checkIn: day("2024-06-01"), checkOut: day("2024-06-01"), want: 0},
		{name: "inverted", checkIn: day("2024-06-04"), checkOut: day("2024-06-01"), want: 0},
		{name: "across month", checkIn: day("2024-01-30"), checkOut: day("2024-02-02"), want: 3},
		{name: "leap day", checkIn: day("2024-02-28"), checkOut: day("2024-03-01"), want: 2},
		{name: "span longer than time.Duration", checkIn: day("2024-01-01"), checkOut: day("2400-01-01"), want: 137331},
		{name: "zero check-in", checkIn: time.Time{}, checkOut: day("2024-06-01"), want: 0},
		{name: "zero check-out", checkIn: day("2024-06-01"), checkOut: time.Time{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeNights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestComputeNights_SameDateIsZero(t *testing.T) {
	for d := day("2024-01-01"); d.Before(day("2025-01-01")); d = d.AddDate(0, 0, 17) {
		assert.Equal(t, 0, ComputeNights(d, d))
	}
}

func TestComputeNightsISO(t *testing.T) {
	assert.Equal(t, 3, ComputeNightsISO("2024-06-01", "2024-06-04"))
	assert.Equal(t, 3, ComputeNightsISO("2024-06-01T00:00:00.000Z", "2024-06-04T00:00:00.000Z"))
	assert.Equal(t, 0, ComputeNightsISO("2024-06-04", "2024-06-01"))
	assert.Equal(t, 0, ComputeNightsISO("", "2024-06-01"))
	assert.Equal(t, 0, ComputeNightsISO("2024-06-01", "not-a-date"))
}

func TestComputeTotalPrice(t *testing.T) {
	assert.Equal(t, 3000.0, ComputeTotalPrice(3, 1000))
	assert.Equal(t, 0.0, ComputeTotalPrice(0, 1000))
	assert.Equal(t, 0.0, ComputeTotalPrice(-2, 1000))
	assert.InDelta(t, 299.97, ComputeTotalPrice(3, 99.99), 1e-9)
	assert.Equal(t, 0.0, ComputeTotalPrice(5, 0))
}

func venue(maxGuests int) *domain.Venue {
	return &domain.Venue{ID: "venue-1", MaxGuests: maxGuests, Price: 1000}
}

func proposal(checkIn, checkOut string, guests int) domain.BookingProposal {
	p := domain.BookingProposal{Guests: guests}
	if checkIn != "" {
		p.CheckIn = day(checkIn)
	}
	if checkOut != "" {
		p.CheckOut = day(checkOut)
	}
	return p
}

func TestValidateProposal(t *testing.T) {
	booked := []domain.DateRange{rng("2024-06-10", "2024-06-15")}

	tests := []struct {
		name      string
		proposal  domain.BookingProposal
		venue     *domain.Venue
		want      Code
		wantField string
		wantErr   error
	}{
		{
			name:      "missing check-in",
			proposal:  proposal("", "2024-06-20", 2),
			venue:     venue(4),
			want:      CodeMissingDates,
			wantField: FieldDates,
			wantErr:   ErrMissingDates,
		},
		{
			name:      "missing check-out",
			proposal:  proposal("2024-06-20", "", 2),
			venue:     venue(4),
			want:      CodeMissingDates,
			wantField: FieldDates,
			wantErr:   ErrMissingDates,
		},
		{
			name:      "equal dates",
			proposal:  proposal("2024-06-20", "2024-06-20", 2),
			venue:     venue(4),
			want:      CodeInvalidRange,
			wantField: FieldDates,
			wantErr:   ErrInvalidRange,
		},
		{
			name:      "inverted dates",
			proposal:  proposal("2024-06-22", "2024-06-20", 2),
			venue:     venue(4),
			want:      CodeInvalidRange,
			wantField: FieldDates,
			wantErr:   ErrInvalidRange,
		},
		{
			name:      "too many guests",
			proposal:  proposal("2024-06-20", "2024-06-22", 5),
			venue:     venue(4),
			want:      CodeGuestCountOutOfBounds,
			wantField: FieldGuests,
			wantErr:   ErrGuestCountOutOfBounds,
		},
		{
			name:      "zero guests",
			proposal:  proposal("2024-06-20", "2024-06-22", 0),
			venue:     venue(4),
			want:      CodeGuestCountOutOfBounds,
			wantField: FieldGuests,
			wantErr:   ErrGuestCountOutOfBounds,
		},
		{
			name:      "strict overlap",
			proposal:  proposal("2024-06-12", "2024-06-18", 2),
			venue:     venue(4),
			want:      CodeDateRangeConflict,
			wantField: FieldDates,
			wantErr:   ErrDateRangeConflict,
		},
		{
			name:      "proposal covers booking",
			proposal:  proposal("2024-06-01", "2024-06-30", 2),
			venue:     venue(4),
			want:      CodeDateRangeConflict,
			wantField: FieldDates,
			wantErr:   ErrDateRangeConflict,
		},
		{
			name:     "entirely before",
			proposal: proposal("2024-06-01", "2024-06-09", 2),
			venue:    venue(4),
			want:     CodeOK,
		},
		{
			name:     "entirely after",
			proposal: proposal("2024-06-16", "2024-06-20", 4),
			venue:    venue(4),
			want:     CodeOK,
		},
		{
			name:      "nil venue rejects any guest count",
			proposal:  proposal("2024-06-16", "2024-06-20", 1),
			venue:     nil,
			want:      CodeGuestCountOutOfBounds,
			wantField: FieldGuests,
			wantErr:   ErrGuestCountOutOfBounds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateProposal(tt.proposal, tt.venue, booked)

			assert.Equal(t, tt.want, res.Code)
			assert.Equal(t, tt.wantField, res.Field)
			if tt.wantErr == nil {
				assert.True(t, res.OK())
				assert.NoError(t, res.Err())
				return
			}
			assert.False(t, res.OK())
			assert.True(t, errors.Is(res.Err(), tt.wantErr), "got %v", res.Err())
		})
	}
}

func TestValidateProposal_MaxGuestsPlusOne(t *testing.T) {
	v := venue(6)

	res := ValidateProposal(proposal("2024-06-01", "2024-06-03", v.MaxGuests+1), v, nil)

	assert.Equal(t, CodeGuestCountOutOfBounds, res.Code)
	assert.Equal(t, 6, res.MaxGuests)
	assert.Contains(t, res.Err().Error(), "between 1 and 6")
}

func TestValidateProposal_ConflictReportsExistingRange(t *testing.T) {
	booked := []domain.DateRange{rng("2024-05-01", "2024-05-03"), rng("2024-06-10", "2024-06-15")}

	res := ValidateProposal(proposal("2024-06-12", "2024-06-18", 2), venue(4), booked)

	require.Equal(t, CodeDateRangeConflict, res.Code)
	require.NotNil(t, res.Conflict)
	assert.Equal(t, "2024-06-10..2024-06-15", res.Conflict.String())
	assert.Equal(t, 6, res.Nights)
}

func TestValidateProposal_OkReportsNights(t *testing.T) {
	res := ValidateProposal(proposal("2024-06-01", "2024-06-04", 2), venue(4), nil)

	require.True(t, res.OK())
	assert.Equal(t, 3, res.Nights)
	assert.Nil(t, res.Conflict)
}

// Заезд в день выезда предыдущего гостя запрещен: границы включительные
func TestValidateProposal_SameDayTurnoverConflicts(t *testing.T) {
	v := venue(4)
	booked := []domain.DateRange{rng("2024-07-01", "2024-07-05")}

	res := ValidateProposal(proposal("2024-07-05", "2024-07-10", 2), v, booked)

	assert.Equal(t, CodeDateRangeConflict, res.Code)

	res = ValidateProposal(proposal("2024-07-06", "2024-07-10", 2), v, booked)
	assert.Equal(t, CodeOK, res.Code)

	// выезд в день заезда следующего гостя тоже конфликт
	res = ValidateProposal(proposal("2024-06-25", "2024-07-01", 2), v, booked)
	assert.Equal(t, CodeDateRangeConflict, res.Code)
}

func TestValidateProposal_OrderOfChecks(t *testing.T) {
	booked := []domain.DateRange{rng("2024-06-10", "2024-06-15")}

	// пересечение и превышение гостей одновременно: сначала гости
	res := ValidateProposal(proposal("2024-06-12", "2024-06-14", 10), venue(4), booked)
	assert.Equal(t, CodeGuestCountOutOfBounds, res.Code)

	// некорректный период и превышение гостей: сначала период
	res = ValidateProposal(proposal("2024-06-14", "2024-06-12", 10), venue(4), booked)
	assert.Equal(t, CodeInvalidRange, res.Code)
}

func TestDisabledDates(t *testing.T) {
	window := rng("2024-06-08", "2024-06-18")
	booked := []domain.DateRange{rng("2024-06-12", "2024-06-13"), rng("2024-06-17", "2024-06-20")}
	today := day("2024-06-10")

	got := DisabledDates(window, booked, today)

	want := []string{"2024-06-08", "2024-06-09", "2024-06-12", "2024-06-13", "2024-06-17", "2024-06-18"}
	require.Len(t, got, len(want))
	for i, d := range got {
		assert.Equal(t, want[i], d.Format(domain.DateFormat))
	}
}

func TestDisabledDates_InvalidWindow(t *testing.T) {
	got := DisabledDates(rng("2024-06-18", "2024-06-08"), nil, day("2024-06-01"))

	assert.NotNil(t, got)
	assert.Empty(t, got)
}
