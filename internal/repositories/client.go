package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"weather-dashboard/internal/models"
	"weather-dashboard/pkg/observe"
)

// apiClient performs one GET per call and decodes a JSON body. Every failure
// is returned as *models.TransportError tagged with source.
type apiClient struct {
	source     string
	httpClient HTTPClient
	l          *observe.Logger
}

// secretParams are dropped from logged query strings.
var secretParams = []string{"appid"}

func (c *apiClient) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return c.transportError(0, fmt.Errorf("failed to parse endpoint %s: %w", endpoint, err))
	}

	q := u.Query()
	for k, v := range params {
		q[k] = v
	}
	u.RawQuery = q.Encode()

	c.l.Info(fmt.Sprintf("making %s API request", c.source), map[string]any{
		"endpoint": u.Host + u.Path,
		"params":   loggableParams(q),
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return c.transportError(0, fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.transportError(0, fmt.Errorf("failed to do request: %w", redactURLError(err)))
	}
	defer resp.Body.Close()

	c.l.Info(fmt.Sprintf("received %s API response", c.source), map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.transportError(0, fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return c.transportError(resp.StatusCode, errors.New(resp.Status))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return c.transportError(0, fmt.Errorf("failed to parse JSON response: %w", err))
	}

	return nil
}

func (c *apiClient) transportError(status int, err error) error {
	return &models.TransportError{Source: c.source, StatusCode: status, Err: err}
}

func loggableParams(q url.Values) string {
	safe := url.Values{}
	for k, v := range q {
		safe[k] = v
	}
	for _, k := range secretParams {
		if safe.Has(k) {
			safe.Set(k, "***")
		}
	}
	return safe.Encode()
}

// redactURLError strips the request URL, which carries the API key, from
// errors returned by http.Client.
func redactURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
