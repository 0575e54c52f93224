package adapter

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// newRestyClient builds a client with the normalized base URL, timeout, and
// optional bearer key shared by all three collaborators.
func newRestyClient(rawBaseURL, apiKey string, timeout time.Duration) (*resty.Client, error) {
	baseURL, err := normalizeBaseURL(rawBaseURL)
	if err != nil {
		return nil, err
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)
	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}

	return client, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// mapUpstreamError folds a non-2xx response into ErrUpstream, keeping the
// status and a body excerpt for the log line.
func mapUpstreamError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > 512 {
		body = body[:512]
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return fmt.Errorf("%w: http %d: %s", ErrUpstream, resp.StatusCode(), body)
}
