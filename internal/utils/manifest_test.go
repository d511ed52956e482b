package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"lyra/internal/models"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func manifestLaunches() []models.Launch {
	return []models.Launch{
		{
			ID: "l1", Name: "FalconSat", FlightNumber: 1,
			DateUTC: time.Date(2006, 3, 24, 22, 30, 0, 0, time.UTC),
			Success: boolPtr(false), Rocket: "r1", Launchpad: "p1",
			Details: strPtr("Engine failure at 33 seconds"),
		},
		{
			ID: "l2", Name: "Starlink 4-7", FlightNumber: 145,
			DateUTC:  time.Date(2022, 2, 21, 14, 44, 0, 0, time.UTC),
			Upcoming: false, Success: boolPtr(true), Rocket: "r1", Launchpad: "p1",
		},
	}
}

func TestBuildLaunchManifest(t *testing.T) {
	buf, err := BuildLaunchManifest(manifestLaunches())
	require.NoError(t, err)
	require.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Launches", "B2")
	require.NoError(t, err)
	assert.Equal(t, "FalconSat", name)

	status, err := f.GetCellValue("Launches", "D2")
	require.NoError(t, err)
	assert.Equal(t, "Failed", status)

	total, err := f.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "2", total)
}

func TestBuildLaunchManifestEmpty(t *testing.T) {
	buf, err := BuildLaunchManifest([]models.Launch{})
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}

func TestBuildLaunchCSV(t *testing.T) {
	data, err := BuildLaunchCSV(manifestLaunches())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "flight,name,date_utc,status,rocket,launchpad,details", lines[0])
	assert.Contains(t, lines[1], "FalconSat")
	assert.Contains(t, lines[1], "failed")
	assert.Contains(t, lines[2], "success")
}
