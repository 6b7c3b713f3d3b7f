package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// flightDateLayout matches the BTS FlightDate column.
const flightDateLayout = "2006-01-02"

// duplicateMarker flags BTS rows that repeat an earlier record.
const duplicateMarker = "Y"

// requiredFlightColumns must all be present in a flight file's header.
var requiredFlightColumns = []string{
	"FlightDate", "Origin", "Dest", "CRSDepTime", "CRSArrTime",
	"DivAirportLandings", "Duplicate",
}

// flightColumns resolves BTS column names to positions. The BTS export is a
// wide schema (110+ columns) whose exact shape varies by download options, so
// columns are addressed by header name rather than fixed position.
type flightColumns map[string]int

func newFlightColumns(header []string) (flightColumns, error) {
	cols := make(flightColumns, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredFlightColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("flight file missing required column %q", name)
		}
	}
	return cols, nil
}

func (c flightColumns) get(record []string, name string) string {
	if i, ok := c[name]; ok && i < len(record) {
		return strings.TrimSpace(record[i])
	}
	return ""
}

// LoadFlights parses a monthly BTS flight file into UTC-normalized flights,
// returning the raw header for output construction. Duplicate rows are
// dropped; rows that fail to parse are skipped with a warning so one bad
// record never aborts the month.
func LoadFlights(r io.Reader, tz *TimezoneTable) ([]string, []Flight, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("flight file is empty")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("error reading flight header: %w", err)
	}

	cols, err := newFlightColumns(header)
	if err != nil {
		return nil, nil, err
	}

	var flights []Flight
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			warnf("skipping flight row %d: %v", line, err)
			continue
		}
		if cols.get(record, "Duplicate") == duplicateMarker {
			continue
		}

		flight, err := parseFlight(record, cols, tz)
		if err != nil {
			warnf("skipping flight row %d: %v", line, err)
			continue
		}
		flights = append(flights, flight)
	}

	return header, flights, nil
}

// parseFlight converts one BTS record into a Flight with UTC times.
func parseFlight(record []string, cols flightColumns, tz *TimezoneTable) (Flight, error) {
	date := cols.get(record, "FlightDate")
	origin := cols.get(record, "Origin")
	dest := cols.get(record, "Dest")

	departure, err := localToUTC(tz, origin, date, cols.get(record, "CRSDepTime"))
	if err != nil {
		return Flight{}, fmt.Errorf("departure time: %w", err)
	}
	arrival, err := localToUTC(tz, dest, date, cols.get(record, "CRSArrTime"))
	if err != nil {
		return Flight{}, fmt.Errorf("arrival time: %w", err)
	}
	// Overnight flight: the schedule carries only one date
	if arrival.Before(departure) {
		arrival = arrival.Add(24 * time.Hour)
	}

	diversions, err := parseDiversions(record, cols, tz, date)
	if err != nil {
		return Flight{}, err
	}

	return Flight{
		Origin:        origin,
		Destination:   dest,
		DepartureTime: departure,
		ArrivalTime:   arrival,
		Diversions:    diversions,
		Fields:        record,
	}, nil
}

// parseDiversions extracts the populated diversion legs from a record. Legs
// with a blank airport or blank wheels times are skipped individually; a leg
// naming an airport without timezone data drops just that leg.
func parseDiversions(record []string, cols flightColumns, tz *TimezoneTable, date string) ([]Diversion, error) {
	count := 0
	if s := cols.get(record, "DivAirportLandings"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("bad DivAirportLandings %q", s)
		}
		count = n
	}
	if count > maxDiversions {
		count = maxDiversions
	}

	var diversions []Diversion
	for i := 1; i <= count; i++ {
		airport := cols.get(record, fmt.Sprintf("Div%dAirport", i))
		wheelsOn := cols.get(record, fmt.Sprintf("Div%dWheelsOn", i))
		wheelsOff := cols.get(record, fmt.Sprintf("Div%dWheelsOff", i))
		if airport == "" || wheelsOn == "" || wheelsOff == "" {
			continue
		}

		arrival, err := localToUTC(tz, airport, date, wheelsOn)
		if err != nil {
			continue
		}
		departure, err := localToUTC(tz, airport, date, wheelsOff)
		if err != nil {
			continue
		}
		// Overnight ground stop
		if departure.Before(arrival) {
			departure = departure.Add(24 * time.Hour)
		}

		diversions = append(diversions, Diversion{
			Airport:       airport,
			ArrivalTime:   arrival,
			DepartureTime: departure,
		})
	}

	return diversions, nil
}

// localToUTC combines a BTS date with a local clock value into a wall-clock
// time and hands it to the timezone table for conversion.
func localToUTC(tz *TimezoneTable, airport, date, clock string) (time.Time, error) {
	clock, extraDay, err := padClock(clock)
	if err != nil {
		return time.Time{}, err
	}

	wall, err := time.Parse(flightDateLayout+"1504", date+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad time %s %s at %s: %w", date, clock, airport, err)
	}
	if extraDay {
		wall = wall.AddDate(0, 0, 1)
	}
	return tz.ToUTC(airport, wall)
}

// padClock normalizes a BTS clock value to a 4-digit HHMM string. BTS emits
// bare integers ("830" for 08:30), sometimes with a trailing ".0", and uses
// "2400" for midnight at the end of the day.
func padClock(clock string) (string, bool, error) {
	if i := strings.IndexByte(clock, '.'); i >= 0 {
		clock = clock[:i]
	}
	if clock == "" {
		return "", false, fmt.Errorf("empty clock value")
	}
	for len(clock) < 4 {
		clock = "0" + clock
	}
	if len(clock) != 4 {
		return "", false, fmt.Errorf("bad clock value %q", clock)
	}
	if clock == "2400" {
		return "0000", true, nil
	}
	return clock, false, nil
}
