package main

import (
	"bytes"
	"embed"
	"fmt"
)

//go:embed assets/airport_timezones.csv
var embeddedFiles embed.FS

// LoadEmbeddedTimezoneTable loads the built-in airport timezone table, used
// when no -timezone-file is supplied. It covers the larger US airports only;
// a full table should be provided for production runs.
func LoadEmbeddedTimezoneTable() (*TimezoneTable, error) {
	fileContent, err := embeddedFiles.ReadFile("assets/airport_timezones.csv")
	if err != nil {
		return nil, fmt.Errorf("error reading embedded timezone table: %w", err)
	}

	table, err := LoadTimezoneTable(bytes.NewReader(fileContent))
	if err != nil {
		return nil, fmt.Errorf("error parsing embedded timezone table: %w", err)
	}
	return table, nil
}
