package domain

// Guest count limits
const (
	MinGuests      = 1
	MaxGuestsLimit = 100 // upper bound accepted by the Holidaze API for a venue
)

// Calendar window limits
const (
	DefaultCalendarMonths = 2   // the booking calendar shows two months
	MaxCalendarDays       = 366 // one year, leap-safe
)

// Listing defaults
const (
	DefaultPageSize = 100 // max page size of the Holidaze API
	MaxPageSize     = 100
)

// Region labels
const (
	RegionAll     = "All"
	RegionUnknown = "Unknown"
)

// Credentials constraints
const (
	MinPasswordLength = 8
	MaxNameLength     = 20
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
