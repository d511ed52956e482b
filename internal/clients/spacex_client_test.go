package clients

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validLaunchJSON = `{
	"id": "5eb87cd9ffd86e000604b32a",
	"name": "FalconSat",
	"flight_number": 1,
	"date_utc": "2006-03-24T22:30:00.000Z",
	"success": false,
	"rocket": "r1",
	"launchpad": "p1"
}`

func newTestClient(handler http.HandlerFunc) (SpaceXClient, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewSpaceXClient(SpaceXConfig{BaseURL: server.URL, Timeout: 2 * time.Second})
	return client, server
}

func TestGetLaunches(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/launches", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte("[" + validLaunchJSON + "]"))
	})
	defer server.Close()

	launches, err := client.GetLaunches(context.Background())
	require.NoError(t, err)
	require.Len(t, launches, 1)
	assert.Equal(t, "FalconSat", launches[0].Name)
}

func TestGetLaunchesEmptyArray(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	defer server.Close()

	launches, err := client.GetLaunches(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, launches)
	assert.Empty(t, launches)
}

func TestGetLaunchesSchemaDriftReported(t *testing.T) {
	// The second record misses required fields; the position is named in
	// the error.
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[" + validLaunchJSON + `, {"id": "only-an-id"}]`))
	})
	defer server.Close()

	launches, err := client.GetLaunches(context.Background())
	require.Error(t, err)
	assert.Nil(t, launches)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ErrValidation, apiErr.Kind)
	assert.False(t, apiErr.Retryable())
	assert.Contains(t, apiErr.Message, "launches[1]")
}

func TestGetLaunchByID(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/launches/5eb87cd9ffd86e000604b32a", r.URL.Path)
		w.Write([]byte(validLaunchJSON))
	})
	defer server.Close()

	launch, err := client.GetLaunchByID(context.Background(), "5eb87cd9ffd86e000604b32a")
	require.NoError(t, err)
	assert.Equal(t, 1, launch.FlightNumber)
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantKind  ErrorKind
		retryable bool
	}{
		{"server error", http.StatusInternalServerError, "", ErrServer, true},
		{"bad gateway", http.StatusBadGateway, "", ErrServer, true},
		{"not found", http.StatusNotFound, `{"error":"Not Found"}`, ErrNotFound, false},
		{"bad request", http.StatusBadRequest, `{"message":"malformed id"}`, ErrClient, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			defer server.Close()

			_, err := client.GetLaunchByID(context.Background(), "x")
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantKind, apiErr.Kind)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.retryable, apiErr.Retryable())
		})
	}
}

func TestNotFoundCarriesRemoteMessage(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Not Found"}`))
	})
	defer server.Close()

	_, err := client.GetLaunchByID(context.Background(), "nope")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Not Found", apiErr.Message)
}

func TestNetworkErrorKind(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening anymore

	client := NewSpaceXClient(SpaceXConfig{BaseURL: server.URL, Timeout: time.Second})
	_, err := client.GetLaunches(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ErrNetwork, apiErr.Kind)
	assert.True(t, apiErr.Retryable())
}

func TestTimeoutErrorKind(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.GetLaunches(ctx)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ErrTimeout, apiErr.Kind)
	assert.True(t, apiErr.Retryable())
}

func TestErrorKindOf(t *testing.T) {
	apiErr := &APIError{Kind: ErrServer, StatusCode: 500, Message: "boom"}
	assert.Equal(t, ErrServer, ErrorKindOf(apiErr))

	wrapped := errors.New("plain")
	assert.Equal(t, ErrorKind(""), ErrorKindOf(wrapped))
}
