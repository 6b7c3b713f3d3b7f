package main

import "fmt"

// weatherBlockPrefixes orders the labeled weather blocks appended to each
// output row: departure, arrival, then each diversion's arrival/departure.
var weatherBlockPrefixes = func() []string {
	prefixes := []string{"Departure", "Arrival"}
	for i := 1; i <= maxDiversions; i++ {
		prefixes = append(prefixes,
			fmt.Sprintf("Div %d Arrival", i),
			fmt.Sprintf("Div %d Departure", i))
	}
	return prefixes
}()

// OutputHeader builds the output CSV header: the flight file's own columns
// followed by the ASOS field names under each weather block prefix.
func OutputHeader(flightHeader []string) []string {
	header := append([]string(nil), flightHeader...)
	for _, prefix := range weatherBlockPrefixes {
		for _, field := range asosFields {
			header = append(header, prefix+" "+field)
		}
	}
	return header
}

// appendWeatherBlock appends one observation's raw fields, padded or
// truncated to the ASOS column count so output columns stay aligned even
// when a source row is ragged.
func appendWeatherBlock(row []string, fields []string) []string {
	for i := range asosFields {
		if i < len(fields) {
			row = append(row, fields[i])
		} else {
			row = append(row, "")
		}
	}
	return row
}

// appendBlankBlocks pads the row with empty weather blocks for diversion
// slots the flight did not use.
func appendBlankBlocks(row []string, blocks int) []string {
	for b := 0; b < blocks; b++ {
		for range asosFields {
			row = append(row, "")
		}
	}
	return row
}
