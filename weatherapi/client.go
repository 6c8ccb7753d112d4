package weatherapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the production OpenWeatherMap endpoint
const DefaultBaseURL = "https://api.openweathermap.org"

// ErrCityNotFound is returned when geocoding yields zero matches
var ErrCityNotFound = errors.New("City not found")

// ErrPostcodeNotFound is returned when the zip lookup yields no match
var ErrPostcodeNotFound = errors.New("Postcode not found")

// Client wraps the OpenWeatherMap Geocoding and Air Pollution APIs
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// ClientOption is a functional option for Client
type ClientOption func(*Client)

// WithBaseURL overrides the API base URL (used by tests)
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient creates a new OpenWeatherMap client
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GeocodeResult is one match from the direct or reverse geocoding API
type GeocodeResult struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Country   string  `json:"country"`
	State     string  `json:"state,omitempty"`
}

// ZipResult is the response of the zip/postcode geocoding API
type ZipResult struct {
	Zip       string  `json:"zip"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Country   string  `json:"country"`
}

// PollutionRecord is one record from the air pollution API
type PollutionRecord struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Aqi int `json:"aqi"`
	} `json:"main"`
	Components PollutionComponents `json:"components"`
}

// PollutionComponents holds pollutant concentrations in μg/m³.
// Pointers distinguish absent fields from zero readings.
type PollutionComponents struct {
	Co   *float64 `json:"co"`
	No2  *float64 `json:"no2"`
	O3   *float64 `json:"o3"`
	So2  *float64 `json:"so2"`
	Pm25 *float64 `json:"pm2_5"`
	Pm10 *float64 `json:"pm10"`
}

type pollutionResponse struct {
	List []PollutionRecord `json:"list"`
}

// GeocodeCity resolves a city name to coordinates via the direct geocoding API
func (c *Client) GeocodeCity(ctx context.Context, city string) (*GeocodeResult, error) {
	params := url.Values{}
	params.Add("q", city)
	params.Add("limit", "1")
	params.Add("appid", c.apiKey)

	var results []GeocodeResult
	if err := c.get(ctx, "/geo/1.0/direct", params, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrCityNotFound
	}
	return &results[0], nil
}

// GeocodeZip resolves a postcode to coordinates via the zip geocoding API
func (c *Client) GeocodeZip(ctx context.Context, postcode string) (*ZipResult, error) {
	params := url.Values{}
	params.Add("zip", postcode)
	params.Add("appid", c.apiKey)

	var result ZipResult
	if err := c.get(ctx, "/geo/1.0/zip", params, &result); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, ErrPostcodeNotFound
		}
		return nil, err
	}
	return &result, nil
}

// ReverseGeocode resolves coordinates back to a place name
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (*GeocodeResult, error) {
	params := url.Values{}
	params.Add("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Add("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Add("limit", "1")
	params.Add("appid", c.apiKey)

	var results []GeocodeResult
	if err := c.get(ctx, "/geo/1.0/reverse", params, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrCityNotFound
	}
	return &results[0], nil
}

// CurrentAirPollution fetches the current air pollution reading for coordinates
func (c *Client) CurrentAirPollution(ctx context.Context, lat, lon float64) (*PollutionRecord, error) {
	params := url.Values{}
	params.Add("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Add("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Add("appid", c.apiKey)

	var response pollutionResponse
	if err := c.get(ctx, "/data/2.5/air_pollution", params, &response); err != nil {
		return nil, err
	}
	if len(response.List) == 0 {
		return nil, errors.New("missing data in response")
	}
	return &response.List[0], nil
}

// AirPollutionHistory fetches pollution records between start and end (unix seconds)
func (c *Client) AirPollutionHistory(ctx context.Context, lat, lon float64, start, end int64) ([]PollutionRecord, error) {
	params := url.Values{}
	params.Add("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Add("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Add("start", strconv.FormatInt(start, 10))
	params.Add("end", strconv.FormatInt(end, 10))
	params.Add("appid", c.apiKey)

	var response pollutionResponse
	if err := c.get(ctx, "/data/2.5/air_pollution/history", params, &response); err != nil {
		return nil, err
	}
	return response.List, nil
}

// APIError is a non-2xx response from the upstream API
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream HTTP %d: %s", e.StatusCode, e.Body)
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	fullURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return json.Unmarshal(body, out)
}
