package main

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// asosHeaderLines is the fixed comment/header preamble of an ASOS export.
const asosHeaderLines = 6

// asosTimeLayout matches the "valid" column of an ASOS row (minute resolution, UTC).
const asosTimeLayout = "2006-01-02 15:04"

// weatherFileName returns the per-day file name used in the weather directory.
func weatherFileName(day time.Time) string {
	return day.Format("20060102") + ".txt"
}

func newWeatherData(day time.Time) *WeatherData {
	wd := &WeatherData{Day: day}
	for i := range wd.timeIndex {
		wd.timeIndex[i] = -1
	}
	return wd
}

// BuildWeatherData parses one calendar day of ASOS observations and builds
// the minute index over them. Rows must arrive in non-decreasing time order,
// as the ASOS export emits them; stations reporting at the same minute share
// one bucket. A zero-byte file or an empty body yields an empty snapshot; a
// file that ends inside the preamble, or a row with a missing or unparsable
// timestamp, aborts the whole day with a MalformedObservationError.
func BuildWeatherData(day time.Time, r io.Reader) (*WeatherData, error) {
	buffered := bufio.NewReader(r)
	for i := 0; i < asosHeaderLines; i++ {
		text, err := buffered.ReadString('\n')
		if err == io.EOF {
			if i == 0 && text == "" {
				return newWeatherData(day), nil
			}
			if i == asosHeaderLines-1 && text != "" {
				// Final preamble line just lacks a trailing newline.
				break
			}
			return nil, &MalformedObservationError{
				Line: i + 1,
				Err:  fmt.Errorf("file ends inside the %d-line preamble", asosHeaderLines),
			}
		}
		if err != nil {
			return nil, fmt.Errorf("error reading weather header: %w", err)
		}
	}

	reader := csv.NewReader(buffered)
	reader.FieldsPerRecord = -1

	wd := newWeatherData(day)
	line := asosHeaderLines
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &MalformedObservationError{Line: line, Err: err}
		}
		if len(record) < 2 {
			return nil, &MalformedObservationError{Line: line, Err: fmt.Errorf("row has %d columns, need at least 2", len(record))}
		}

		obsTime, err := time.Parse(asosTimeLayout, record[1])
		if err != nil {
			return nil, &MalformedObservationError{Line: line, Err: err}
		}

		minute := obsTime.Hour()*60 + obsTime.Minute()
		if wd.timeIndex[minute] < 0 {
			wd.timeIndex[minute] = len(wd.Observations)
		}
		wd.Observations = append(wd.Observations, WeatherObservation{
			Station: record[0],
			Time:    obsTime,
			Fields:  record,
		})
	}

	return wd, nil
}

// LoadWeatherDay reads the ASOS file for one day from the weather directory.
// A missing file surfaces as fs.ErrNotExist so callers can skip that day
// instead of aborting the run.
func LoadWeatherDay(dir string, day time.Time) (*WeatherData, error) {
	path := filepath.Join(dir, weatherFileName(day))
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wd, err := BuildWeatherData(day, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return wd, nil
}
