package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRocketDetail(t *testing.T) {
	data := []byte(`{
		"id": "5e9d0d95eda69973a809d1ec",
		"name": "Falcon 9",
		"type": "rocket",
		"description": "Falcon 9 is a two-stage rocket",
		"height": {"meters": 70, "feet": 229.6},
		"diameter": {"meters": 3.7, "feet": 12}
	}`)

	rocket, verr := ParseRocketDetail(data)
	require.Nil(t, verr)

	assert.Equal(t, "Falcon 9", rocket.Name)
	require.NotNil(t, rocket.Height)
	require.NotNil(t, rocket.Height.Meters)
	assert.Equal(t, 70.0, *rocket.Height.Meters)
}

func TestParseRocketDetailMissingFields(t *testing.T) {
	rocket, verr := ParseRocketDetail([]byte(`{"type":"rocket"}`))
	require.Nil(t, rocket)
	require.NotNil(t, verr)

	assert.Equal(t, "rocket", verr.Entity)
	assert.Contains(t, verr.Errors, "id is required")
	assert.Contains(t, verr.Errors, "name is required")
}

func TestParseLaunchpadDetail(t *testing.T) {
	data := []byte(`{
		"id": "5e9e4502f5090995de566f86",
		"name": "CCSFS SLC 40",
		"full_name": "Cape Canaveral Space Force Station Space Launch Complex 40",
		"locality": "Cape Canaveral",
		"region": "Florida",
		"timezone": "America/New_York",
		"latitude": 28.5618571,
		"longitude": -80.577366,
		"launch_attempts": 99,
		"launch_successes": 97,
		"status": "active"
	}`)

	pad, verr := ParseLaunchpadDetail(data)
	require.Nil(t, verr)

	assert.Equal(t, "CCSFS SLC 40", pad.Name)
	assert.Equal(t, "Cape Canaveral Space Force Station Space Launch Complex 40", pad.FullName)
	require.NotNil(t, pad.Latitude)
	assert.InDelta(t, 28.5618571, *pad.Latitude, 1e-9)
	assert.Equal(t, "active", pad.Status)
}

func TestParseLaunchpadDetailFullNameFallsBack(t *testing.T) {
	pad, verr := ParseLaunchpadDetail([]byte(`{"id":"x","name":"Kwajalein Atoll"}`))
	require.Nil(t, verr)
	assert.Equal(t, "Kwajalein Atoll", pad.FullName)
}

func TestParseDetailNotJSON(t *testing.T) {
	rocket, verr := ParseRocketDetail([]byte(`{broken`))
	require.Nil(t, rocket)
	require.NotNil(t, verr)
	assert.Contains(t, verr.Errors[0], "record is not valid JSON")
}
