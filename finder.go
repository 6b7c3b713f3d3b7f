package main

import "time"

// Find returns the observation for station in the minute bucket closest to
// the target instant, or false when the day holds none. The target's bucket
// is probed first; on a miss the search widens over neighboring minutes with
// alternating offsets -1, +1, -2, +2, ... until both directions run off the
// day. Minutes before 0 are never probed: the search does not wrap into the
// previous day, so early-morning queries can only match later observations.
func (wd *WeatherData) Find(station string, at time.Time) (WeatherObservation, bool) {
	obs, _, ok := wd.find(station, at)
	return obs, ok
}

// find is Find plus the number of minute buckets probed, for tests asserting
// that a station reporting every minute is found without widening.
func (wd *WeatherData) find(station string, at time.Time) (WeatherObservation, int, bool) {
	at = at.UTC()
	target := at.Hour()*60 + at.Minute()

	probes := 1
	if obs, ok := wd.probeBucket(station, target); ok {
		return obs, probes, true
	}

	for offset := 1; ; offset++ {
		below, above := target-offset, target+offset
		if below < 0 && above >= minutesPerDay {
			return WeatherObservation{}, probes, false
		}
		if below >= 0 {
			probes++
			if obs, ok := wd.probeBucket(station, below); ok {
				return obs, probes, true
			}
		}
		if above < minutesPerDay {
			probes++
			if obs, ok := wd.probeBucket(station, above); ok {
				return obs, probes, true
			}
		}
	}
}

// probeBucket scans the observations sharing the timestamp that starts minute
// bucket m, returning the first from the wanted station.
func (wd *WeatherData) probeBucket(station string, m int) (WeatherObservation, bool) {
	start := wd.timeIndex[m]
	if start < 0 {
		return WeatherObservation{}, false
	}

	bucketTime := wd.Observations[start].Time
	for i := start; i < len(wd.Observations) && wd.Observations[i].Time.Equal(bucketTime); i++ {
		if wd.Observations[i].Station == station {
			return wd.Observations[i], true
		}
	}
	return WeatherObservation{}, false
}
