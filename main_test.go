package main

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/GeorgeNassef/Weather-Feature-Flight-Delays/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProcessFlightFile runs the whole pipeline over the embedded fixtures:
// a June 2021 flight file against one day of ASOS observations.
func TestProcessFlightFile(t *testing.T) {
	flightDir := t.TempDir()
	flightsRaw, err := io.ReadAll(testdata.Flights(t))
	require.NoError(t, err)
	flightPath := filepath.Join(flightDir, "flights_202106.csv")
	require.NoError(t, os.WriteFile(flightPath, flightsRaw, 0o644))

	cfg := &Config{
		FlightDir:  flightDir,
		WeatherDir: testdata.WeatherDir(t),
		OutputDir:  t.TempDir(),
	}
	tz, err := LoadTimezoneTable(testdata.Timezones(t))
	require.NoError(t, err)

	require.NoError(t, processFlightFile(flightPath, cfg, tz))

	out, err := os.Open(filepath.Join(cfg.OutputDir, "processed_flights_202106.csv"))
	require.NoError(t, err)
	defer out.Close()

	records, err := csv.NewReader(out).ReadAll()
	require.NoError(t, err)

	// Header plus two flights; the LAX->BOS flight drops because BOS never
	// reports, the duplicate and the unknown-origin rows never parse.
	require.Len(t, records, 3)

	const flightWidth = 25
	header := records[0]
	require.Len(t, header, flightWidth+12*len(asosFields))
	assert.Equal(t, "Departure station", header[flightWidth])
	assert.Equal(t, "Arrival station", header[flightWidth+len(asosFields)])
	assert.Equal(t, "Div 5 Departure snowdepth", header[len(header)-1])

	laxJFK := records[1]
	assert.Equal(t, "LAX", laxJFK[4])
	assert.Equal(t, "LAX", laxJFK[flightWidth], "departure weather is the LAX 21:00Z observation")
	assert.Equal(t, "2021-06-01 21:00", laxJFK[flightWidth+1])
	assert.Equal(t, "JFK", laxJFK[flightWidth+len(asosFields)])
	assert.Equal(t, "2021-06-01 23:28", laxJFK[flightWidth+len(asosFields)+1], "arrival matches the closest earlier JFK report")

	diverted := records[2]
	div1Arr := flightWidth + 2*len(asosFields)
	div2Arr := flightWidth + 4*len(asosFields)
	assert.Equal(t, "PDX", diverted[div1Arr])
	assert.Equal(t, "2021-06-01 16:15", diverted[div1Arr+1])
	assert.Equal(t, "PDX", diverted[div1Arr+len(asosFields)])
	assert.Equal(t, "2021-06-01 16:45", diverted[div1Arr+len(asosFields)+1])
	assert.Equal(t, "DEN", diverted[div2Arr])
	assert.Equal(t, "DEN", diverted[div2Arr+len(asosFields)])

	for _, cell := range diverted[flightWidth+6*len(asosFields):] {
		assert.Empty(t, cell, "Div 3-5 blocks stay blank")
	}
}

func TestProcessFlightFile_noUsableFlights(t *testing.T) {
	flightDir := t.TempDir()
	path := filepath.Join(flightDir, "empty.csv")
	header := "FlightDate,Origin,Dest,CRSDepTime,CRSArrTime,DivAirportLandings,Duplicate\n"
	require.NoError(t, os.WriteFile(path, []byte(header), 0o644))

	cfg := &Config{
		FlightDir:  flightDir,
		WeatherDir: t.TempDir(),
		OutputDir:  t.TempDir(),
	}
	tz, err := LoadEmbeddedTimezoneTable()
	require.NoError(t, err)

	require.NoError(t, processFlightFile(path, cfg, tz))

	_, err = os.Stat(filepath.Join(cfg.OutputDir, "processed_empty.csv"))
	assert.True(t, os.IsNotExist(err), "no output file for a month with no usable flights")
}
