package main

import (
	"errors"
	"io/fs"
	"time"

	"k8s.io/utils/set"
)

// Matcher joins flights with their nearest weather observations. It holds a
// two-day sliding window over the weather directory: the snapshot for the
// current departure date plus the following day, so arrivals and diversion
// legs that roll past midnight still resolve. Flights must arrive in
// departure-date order; the window never moves backwards.
type Matcher struct {
	weatherDir string

	day      time.Time
	today    *WeatherData
	tomorrow *WeatherData

	// Warned-about days and airports, so each problem logs once per run.
	warned set.Set[string]
}

func NewMatcher(weatherDir string) *Matcher {
	return &Matcher{
		weatherDir: weatherDir,
		warned:     set.New[string](),
	}
}

// Match produces the output row for one flight: its raw fields followed by
// the weather blocks for departure, arrival, and each diversion leg. The
// second return is false when any required weather lookup misses, in which
// case the flight is dropped entirely rather than emitted with gaps.
func (m *Matcher) Match(flight Flight) ([]string, bool) {
	departureDay := dateOf(flight.DepartureTime)
	if !m.advanceTo(departureDay) {
		m.warnOnce("order:"+departureDay.Format(flightDateLayout),
			"flight departing %s arrived out of order; window is at %s",
			departureDay.Format(flightDateLayout), m.day.Format(flightDateLayout))
		return nil, false
	}

	departure, ok := m.lookup(flight.Origin, flight.DepartureTime)
	if !ok {
		return nil, false
	}
	arrival, ok := m.lookup(flight.Destination, flight.ArrivalTime)
	if !ok {
		return nil, false
	}

	row := append([]string(nil), flight.Fields...)
	row = appendWeatherBlock(row, departure.Fields)
	row = appendWeatherBlock(row, arrival.Fields)

	for _, div := range flight.Diversions {
		// Diversion legs query the diversion airport, not the flight's
		// origin or destination.
		divArrival, ok := m.lookup(div.Airport, div.ArrivalTime)
		if !ok {
			return nil, false
		}
		divDeparture, ok := m.lookup(div.Airport, div.DepartureTime)
		if !ok {
			return nil, false
		}
		row = appendWeatherBlock(row, divArrival.Fields)
		row = appendWeatherBlock(row, divDeparture.Fields)
	}
	row = appendBlankBlocks(row, 2*(maxDiversions-len(flight.Diversions)))

	return row, true
}

// advanceTo slides the window forward until it covers day. Returns false for
// a day the window has already moved past.
func (m *Matcher) advanceTo(day time.Time) bool {
	if m.day.IsZero() {
		m.day = day
		m.today = m.loadDay(day)
		m.tomorrow = m.loadDay(day.AddDate(0, 0, 1))
		return true
	}
	if day.Before(m.day) {
		return false
	}
	for day.After(m.day) {
		m.day = m.day.AddDate(0, 0, 1)
		m.today = m.tomorrow
		m.tomorrow = m.loadDay(m.day.AddDate(0, 0, 1))
	}
	return true
}

// lookup finds the nearest observation for one flight event, selecting
// today's or tomorrow's snapshot by the event's calendar date.
func (m *Matcher) lookup(station string, at time.Time) (WeatherObservation, bool) {
	wd := m.snapshotFor(at)
	if wd == nil {
		return WeatherObservation{}, false
	}
	return wd.Find(station, at)
}

func (m *Matcher) snapshotFor(at time.Time) *WeatherData {
	day := dateOf(at)
	switch {
	case day.Equal(m.day):
		return m.today
	case day.Equal(m.day.AddDate(0, 0, 1)):
		return m.tomorrow
	default:
		return nil
	}
}

// loadDay reads one weather day, returning nil when the file is missing or
// the day fails to index. Either way every flight touching that day drops.
func (m *Matcher) loadDay(day time.Time) *WeatherData {
	wd, err := LoadWeatherDay(m.weatherDir, day)
	if err != nil {
		key := "weather:" + day.Format(flightDateLayout)
		if errors.Is(err, fs.ErrNotExist) {
			m.warnOnce(key, "no weather file for %s; dropping flights touching that day", day.Format(flightDateLayout))
		} else {
			m.warnOnce(key, "weather day %s unusable: %v", day.Format(flightDateLayout), err)
		}
		return nil
	}
	return wd
}

func (m *Matcher) warnOnce(key, format string, args ...any) {
	if m.warned.Has(key) {
		return
	}
	m.warned.Insert(key)
	warnf(format, args...)
}

// dateOf truncates an instant to its UTC calendar date.
func dateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
