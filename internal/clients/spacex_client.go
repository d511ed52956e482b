package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"lyra/internal/models"
	"lyra/internal/schema"
)

// SpaceXClient fetches launch data from the public SpaceX v4 API. Every
// response is run through the schema validator before it is returned; the
// client itself does no caching and no retries.
type SpaceXClient interface {
	GetLaunches(ctx context.Context) ([]models.Launch, error)
	GetLaunchByID(ctx context.Context, id string) (*models.Launch, error)
	GetRocketByID(ctx context.Context, id string) (*models.RocketDetail, error)
	GetLaunchpadByID(ctx context.Context, id string) (*models.LaunchpadDetail, error)
}

type spacexClient struct {
	baseURL string
	client  *http.Client
}

type SpaceXConfig struct {
	BaseURL string
	Timeout time.Duration
}

func NewSpaceXClient(config SpaceXConfig) SpaceXClient {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &spacexClient{
		baseURL: config.BaseURL,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:       10,
				IdleConnTimeout:    30 * time.Second,
				DisableCompression: false,
			},
		},
	}
}

func (c *spacexClient) GetLaunches(ctx context.Context) ([]models.Launch, error) {
	body, err := c.get(ctx, "/launches")
	if err != nil {
		return nil, err
	}

	var rawRecords []json.RawMessage
	if err := json.Unmarshal(body, &rawRecords); err != nil {
		return nil, &APIError{Kind: ErrValidation, Message: "launches response is not a JSON array", Err: err}
	}

	launches := make([]models.Launch, 0, len(rawRecords))
	for i, raw := range rawRecords {
		launch, verr := schema.ParseLaunch(raw)
		if verr != nil {
			apiErr := validationError(verr)
			apiErr.Message = fmt.Sprintf("launches[%d]: %s", i, verr.Error())
			return nil, apiErr
		}
		launches = append(launches, *launch)
	}

	return launches, nil
}

func (c *spacexClient) GetLaunchByID(ctx context.Context, id string) (*models.Launch, error) {
	body, err := c.get(ctx, "/launches/"+id)
	if err != nil {
		return nil, err
	}

	launch, verr := schema.ParseLaunch(body)
	if verr != nil {
		return nil, validationError(verr)
	}
	return launch, nil
}

func (c *spacexClient) GetRocketByID(ctx context.Context, id string) (*models.RocketDetail, error) {
	body, err := c.get(ctx, "/rockets/"+id)
	if err != nil {
		return nil, err
	}

	rocket, verr := schema.ParseRocketDetail(body)
	if verr != nil {
		return nil, validationError(verr)
	}
	return rocket, nil
}

func (c *spacexClient) GetLaunchpadByID(ctx context.Context, id string) (*models.LaunchpadDetail, error) {
	body, err := c.get(ctx, "/launchpads/"+id)
	if err != nil {
		return nil, err
	}

	launchpad, verr := schema.ParseLaunchpadDetail(body)
	if verr != nil {
		return nil, validationError(verr)
	}
	return launchpad, nil
}

// get performs one GET against the API and normalizes every failure mode
// into an *APIError.
func (c *spacexClient) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", "Lyra/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, &APIError{Kind: ErrTimeout, Message: "request timed out", Err: err}
		}
		return nil, &APIError{Kind: ErrNetwork, Message: "no response received", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Kind: ErrNetwork, Message: "read response body", Err: err}
	}

	switch {
	case resp.StatusCode >= 500:
		return nil, &APIError{Kind: ErrServer, StatusCode: resp.StatusCode, Message: "upstream server error"}
	case resp.StatusCode == http.StatusNotFound:
		return nil, &APIError{Kind: ErrNotFound, StatusCode: resp.StatusCode, Message: remoteMessage(body, "resource not found")}
	case resp.StatusCode >= 400:
		return nil, &APIError{Kind: ErrClient, StatusCode: resp.StatusCode, Message: remoteMessage(body, "request rejected")}
	}

	return body, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// remoteMessage pulls a human-readable message out of a 4xx body when the
// remote provided one.
func remoteMessage(body []byte, fallback string) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return fallback
}
