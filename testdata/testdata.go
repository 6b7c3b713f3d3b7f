package testdata

import (
	"embed"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

//go:embed *.txt *.csv
var data embed.FS

func open(t *testing.T, path string) io.Reader {
	f, err := data.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, f.Close())
	})
	return f
}

// ASOSDay returns one day of ASOS observations (2021-06-01, UTC).
func ASOSDay(t *testing.T) io.Reader {
	return open(t, "asos_20210601.txt")
}

// Flights returns a small BTS-style monthly flight file.
func Flights(t *testing.T) io.Reader {
	return open(t, "flights_202106.csv")
}

// Timezones returns the airport timezone table covering the fixture airports.
func Timezones(t *testing.T) io.Reader {
	return open(t, "airport_timezones.csv")
}

// WeatherDir materializes the embedded weather days into a temp directory
// laid out the way the CLI expects (YYYYMMDD.txt).
func WeatherDir(t *testing.T) string {
	dir := t.TempDir()
	content, err := data.ReadFile("asos_20210601.txt")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "20210601.txt"), content, 0o644))
	return dir
}
