package main

import (
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// maxDiversions is the number of diversion legs the BTS schema carries per flight.
const maxDiversions = 5

// asosFields lists the columns of an ASOS observation row, in file order.
// The output header repeats this list once per matched weather block.
var asosFields = []string{
	"station", "valid", "lon", "lat", "tmpf", "dwpf", "relh", "drct", "sknt", "p01i",
	"alti", "mslp", "vsby", "gust", "skyc1", "skyc2", "skyc3", "skyc4", "skyl1", "skyl2",
	"skyl3", "skyl4", "wxcodes", "ice_accretion_1hr", "ice_accretion_3hr",
	"ice_accretion_6hr", "peak_wind_gust", "peak_wind_drct", "peak_wind_time", "feel",
	"metar", "snowdepth",
}

// WeatherObservation is a single ASOS measurement from one station at one minute.
// Fields holds the full raw record so unmodeled columns pass through to the output.
type WeatherObservation struct {
	Station string
	Time    time.Time
	Fields  []string
}

// WeatherData is an immutable snapshot of one calendar day of observations.
// timeIndex maps minute-of-day to the position of the first observation at
// that minute, or -1 when the minute has no observations.
type WeatherData struct {
	Day          time.Time
	Observations []WeatherObservation
	timeIndex    [minutesPerDay]int
}

// Diversion is one unplanned stop a flight made en route, with wheels-on and
// wheels-off converted to UTC.
type Diversion struct {
	Airport       string
	ArrivalTime   time.Time
	DepartureTime time.Time
}

// Flight is one BTS record with its schedule times converted to UTC.
// Fields holds the full raw record for passthrough to the output.
type Flight struct {
	Origin        string
	Destination   string
	DepartureTime time.Time
	ArrivalTime   time.Time
	Diversions    []Diversion
	Fields        []string
}

// UnknownAirportError reports an airport code absent from the timezone table.
type UnknownAirportError struct {
	Airport string
}

func (e *UnknownAirportError) Error() string {
	return fmt.Sprintf("no timezone data for airport %s", e.Airport)
}

// MalformedObservationError reports an unparsable row in a weather file.
// The whole day is discarded when one is returned: a partially indexed day
// is unsafe to query.
type MalformedObservationError struct {
	Line int
	Err  error
}

func (e *MalformedObservationError) Error() string {
	return fmt.Sprintf("malformed observation at line %d: %v", e.Line, e.Err)
}

func (e *MalformedObservationError) Unwrap() error {
	return e.Err
}
