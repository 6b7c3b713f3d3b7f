package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return day1.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func TestFind_directBucket(t *testing.T) {
	t.Parallel()
	rows := make([]string, 0, 60)
	for m := 0; m < 60; m++ {
		rows = append(rows, "LAX,"+at(14, m).Format(asosTimeLayout)+",68.0")
	}
	wd := buildDay(t, rows...)

	obs, probes, ok := wd.find("LAX", at(14, 30))
	require.True(t, ok)
	assert.Equal(t, at(14, 30), obs.Time)
	assert.Equal(t, 1, probes, "a station reporting every minute needs no widening")
}

func TestFind_sameMinuteMultipleStations(t *testing.T) {
	t.Parallel()
	wd := buildDay(t,
		"LAX,2021-06-01 12:00,68.0",
		"ORD,2021-06-01 12:00,75.2",
		"DFW,2021-06-01 12:00,88.1",
	)

	for _, station := range []string{"LAX", "ORD", "DFW"} {
		obs, ok := wd.Find(station, at(12, 0))
		require.True(t, ok, station)
		assert.Equal(t, station, obs.Station)
		assert.Equal(t, at(12, 0), obs.Time)
	}
}

func TestFind_widensToEarlierMinute(t *testing.T) {
	t.Parallel()
	wd := buildDay(t, "ORD,2021-06-01 14:10,75.2")

	obs, probes, ok := wd.find("ORD", at(14, 15))
	require.True(t, ok)
	assert.Equal(t, at(14, 10), obs.Time)
	// target, then -1/+1 through -4/+4, then -5
	assert.Equal(t, 10, probes)
}

func TestFind_widensToLaterMinute(t *testing.T) {
	t.Parallel()
	wd := buildDay(t, "ORD,2021-06-01 14:10,75.2")

	obs, ok := wd.Find("ORD", at(14, 3))
	require.True(t, ok)
	assert.Equal(t, at(14, 10), obs.Time, "widening reaches later minutes once the early arm is exhausted")
}

func TestFind_doesNotCrossBucket(t *testing.T) {
	t.Parallel()
	wd := buildDay(t,
		"LAX,2021-06-01 12:00,68.0",
		"ORD,2021-06-01 12:00,75.2",
		"JFK,2021-06-01 12:01,71.1",
	)

	obs, ok := wd.Find("JFK", at(12, 0))
	require.True(t, ok)
	assert.Equal(t, at(12, 1), obs.Time, "the 12:00 bucket scan must stop at the 12:01 entries and widen instead")
}

func TestFind_minuteZeroBoundary(t *testing.T) {
	t.Parallel()
	wd := buildDay(t, "DEN,2021-06-01 00:05,52.0")

	_, ok := wd.Find("LAX", at(0, 0))
	assert.False(t, ok, "absent station at start of day reports not found")

	obs, ok := wd.Find("DEN", at(0, 0))
	require.True(t, ok)
	assert.Equal(t, at(0, 5), obs.Time)
}

func TestFind_stationAbsent(t *testing.T) {
	t.Parallel()
	wd := buildDay(t,
		"LAX,2021-06-01 00:00,60.0",
		"LAX,2021-06-01 23:59,61.0",
	)

	_, ok := wd.Find("JFK", at(13, 37))
	assert.False(t, ok)
}

func TestFind_endOfDay(t *testing.T) {
	t.Parallel()
	wd := buildDay(t, "LAX,2021-06-01 23:59,61.0")

	obs, ok := wd.Find("LAX", at(23, 59))
	require.True(t, ok)
	assert.Equal(t, at(23, 59), obs.Time)
}

func TestFind_matchedStationOnly(t *testing.T) {
	t.Parallel()
	wd := buildDay(t,
		"ORD,2021-06-01 10:00,75.2",
		"LAX,2021-06-01 10:02,68.0",
		"ORD,2021-06-01 10:04,75.4",
	)

	obs, ok := wd.Find("LAX", at(10, 4))
	require.True(t, ok)
	assert.Equal(t, "LAX", obs.Station)
	assert.Equal(t, at(10, 2), obs.Time)
}
