package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"
)

// TimezoneTable maps airport codes to their IANA timezone locations. It is
// loaded once at startup and read-only afterwards.
type TimezoneTable struct {
	zones map[string]*time.Location
}

// LoadTimezoneTable reads a two-column CSV of airport_code,iana_zone pairs.
// Rows with fewer than two columns are ignored. A leading header row is
// tolerated; any other row naming an unloadable zone is an error.
func LoadTimezoneTable(r io.Reader) (*TimezoneTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	zones := make(map[string]*time.Location)
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading timezone table: %w", err)
		}
		row++
		if len(record) < 2 {
			continue
		}

		loc, err := time.LoadLocation(record[1])
		if err != nil {
			if row == 1 {
				// Header row
				continue
			}
			return nil, fmt.Errorf("timezone table row %d: unknown zone %q for %s", row, record[1], record[0])
		}
		zones[record[0]] = loc
	}

	if len(zones) == 0 {
		return nil, fmt.Errorf("timezone table contains no usable rows")
	}

	return &TimezoneTable{zones: zones}, nil
}

// LoadTimezoneFile loads a timezone table from a file on disk.
func LoadTimezoneFile(path string) (*TimezoneTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening timezone file: %w", err)
	}
	defer f.Close()

	table, err := LoadTimezoneTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// Resolve returns the timezone location for an airport code.
func (t *TimezoneTable) Resolve(airport string) (*time.Location, error) {
	loc, ok := t.zones[airport]
	if !ok {
		return nil, &UnknownAirportError{Airport: airport}
	}
	return loc, nil
}

// ToUTC reinterprets a wall-clock time as local time at the given airport and
// converts it to UTC.
func (t *TimezoneTable) ToUTC(airport string, local time.Time) (time.Time, error) {
	loc, err := t.Resolve(airport)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), 0, 0, loc).UTC(), nil
}
