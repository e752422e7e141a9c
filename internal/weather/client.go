package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const baseURL = "https://api.openweathermap.org/data/2.5"

// Conditions is the current weather snapshot consumed by the wellness tips.
type Conditions struct {
	Temperature int     `json:"temperature"`
	Condition   string  `json:"condition"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Icon        string  `json:"icon"`
	CityName    string  `json:"cityName"`
}

// Client fetches current weather from OpenWeather.
type Client struct {
	httpClient *http.Client
	apiKey     string
}

// NewClient creates an OpenWeather client. apiKey must be non-empty.
func NewClient(apiKey string) (*Client, error) {
	key := strings.TrimSpace(apiKey)
	if key == "" {
		return nil, fmt.Errorf("openweather api key is required")
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiKey:     key,
	}, nil
}

type currentWeatherResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Main string `json:"main"`
		Icon string `json:"icon"`
	} `json:"weather"`
}

// Current returns the metric-unit weather at the coordinates.
func (c *Client) Current(ctx context.Context, lat, lon float64) (Conditions, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/weather?"+params.Encode(), nil)
	if err != nil {
		return Conditions{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Conditions{}, fmt.Errorf("fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Conditions{}, fmt.Errorf("openweather api status %d", resp.StatusCode)
	}

	var body currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Conditions{}, err
	}
	if len(body.Weather) == 0 {
		return Conditions{}, fmt.Errorf("openweather response missing conditions")
	}

	return Conditions{
		Temperature: int(math.Round(body.Main.Temp)),
		Condition:   body.Weather[0].Main,
		Humidity:    body.Main.Humidity,
		WindSpeed:   body.Wind.Speed,
		Icon:        body.Weather[0].Icon,
		CityName:    body.Name,
	}, nil
}
