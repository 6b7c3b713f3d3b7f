package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

func main() {
	configFlag := flag.String("config", "", "Path to YAML config file")
	tzFileFlag := flag.String("timezone-file", "", "Path to airport timezone mapping CSV (default: built-in table)")
	flightDirFlag := flag.String("flight-dir", "", "Directory containing monthly BTS flight CSV files")
	weatherDirFlag := flag.String("weather-dir", "", "Directory containing daily ASOS weather files")
	outputDirFlag := flag.String("output-dir", "", "Directory to write processed CSV files")
	flagNoColor := flag.Bool("no-color", false, "Disable color output")
	flag.Parse()

	if *flagNoColor {
		color.NoColor = true // disables colorized output globally
	}

	cfg, err := LoadConfig(*configFlag)
	if err != nil {
		fatalf("%v", err)
	}
	if *tzFileFlag != "" {
		cfg.TimezoneFile = *tzFileFlag
	}
	if *flightDirFlag != "" {
		cfg.FlightDir = *flightDirFlag
	}
	if *weatherDirFlag != "" {
		cfg.WeatherDir = *weatherDirFlag
	}
	if *outputDirFlag != "" {
		cfg.OutputDir = *outputDirFlag
	}
	if err := cfg.validate(); err != nil {
		fatalf("%v", err)
	}

	tz, err := loadTimezones(cfg.TimezoneFile)
	if err != nil {
		fatalf("%v", err)
	}

	flightFiles, err := filepath.Glob(filepath.Join(cfg.FlightDir, "*.csv"))
	if err != nil {
		fatalf("listing flight files: %v", err)
	}
	if len(flightFiles) == 0 {
		fatalf("no flight files found in %s", cfg.FlightDir)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		fatalf("creating output directory: %v", err)
	}

	for _, path := range flightFiles {
		if err := processFlightFile(path, cfg, tz); err != nil {
			errorf("processing %s: %v", filepath.Base(path), err)
		}
	}
}

func loadTimezones(path string) (*TimezoneTable, error) {
	if path == "" {
		return LoadEmbeddedTimezoneTable()
	}
	return LoadTimezoneFile(path)
}

// processFlightFile joins one month of flights with weather and writes
// processed_<name>.csv into the output directory.
func processFlightFile(path string, cfg *Config, tz *TimezoneTable) error {
	infof("Processing %s...", filepath.Base(path))

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	header, flights, err := LoadFlights(f, tz)
	f.Close()
	if err != nil {
		return err
	}
	if len(flights) == 0 {
		warnf("%s contains no usable flights", filepath.Base(path))
		return nil
	}

	outName := "processed_" + strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".csv"
	outPath := filepath.Join(cfg.OutputDir, outName)
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	writer := csv.NewWriter(out)
	if err := writer.Write(OutputHeader(header)); err != nil {
		return err
	}

	matcher := NewMatcher(cfg.WeatherDir)
	matched, dropped := 0, 0
	for _, flight := range flights {
		row, ok := matcher.Match(flight)
		if !ok {
			dropped++
			continue
		}
		if err := writer.Write(row); err != nil {
			return err
		}
		matched++
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	infof("Saved %d flights (%d dropped) to %s", matched, dropped, outPath)
	return nil
}
