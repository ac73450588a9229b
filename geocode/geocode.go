// Package geocode implements the external geocoding collaborator: address
// in, coordinates out, error when the service has no match. The service is
// expected to answer GET <url>?address=... with a JSON body containing "lat"
// and "lng" numbers.
package geocode

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

// Client geocodes addresses against an HTTP service. There is no retry or
// timeout policy beyond the HTTP client's own timeout; a failed lookup is the
// caller's per-row problem.
type Client struct {
	URL        string
	HTTPClient *http.Client
}

// NewClient returns a Client for the service at rawurl.
func NewClient(rawurl string) *Client {
	return &Client{
		URL:        rawurl,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Geocode looks up the address and returns (longitude, latitude).
func (c *Client) Geocode(address string) (lng, lat float64, err error) {
	resp, err := c.HTTPClient.Get(c.URL + "?address=" + url.QueryEscape(address))
	if err != nil {
		return 0, 0, errors.Wrap(err, "querying geocoder")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, 0, errors.Errorf("geocoder returned status %d for %q", resp.StatusCode, address)
	}
	var body struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, 0, errors.Wrap(err, "decoding geocoder response")
	}
	if body.Lat == 0 && body.Lng == 0 {
		return 0, 0, errors.Errorf("no match for %q", address)
	}
	return body.Lng, body.Lat, nil
}
