package memes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const baseURL = "https://api.giphy.com/v1/gifs"

// DefaultQuery is used when a caller supplies no search term.
const DefaultQuery = "happy"

// Gif is one catalog item from the GIF search API.
type Gif struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	OriginalURL  string `json:"originalUrl"`
	FixedHeight  string `json:"fixedHeightUrl"`
}

// Client searches Giphy for memes.
type Client struct {
	httpClient *http.Client
	apiKey     string
}

// NewClient creates a Giphy search client. apiKey must be non-empty.
func NewClient(apiKey string) (*Client, error) {
	key := strings.TrimSpace(apiKey)
	if key == "" {
		return nil, fmt.Errorf("giphy api key is required")
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiKey:     key,
	}, nil
}

type searchResponse struct {
	Data []struct {
		ID     string `json:"id"`
		Title  string `json:"title"`
		URL    string `json:"url"`
		Images struct {
			Original struct {
				URL string `json:"url"`
			} `json:"original"`
			FixedHeight struct {
				URL string `json:"url"`
			} `json:"fixed_height"`
		} `json:"images"`
	} `json:"data"`
}

// Search returns G-rated gifs for the query.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Gif, error) {
	if strings.TrimSpace(query) == "" {
		query = DefaultQuery
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("rating", "g")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("giphy search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("giphy api status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	results := make([]Gif, 0, len(body.Data))
	for _, item := range body.Data {
		results = append(results, Gif{
			ID:          item.ID,
			Title:       item.Title,
			URL:         item.URL,
			OriginalURL: item.Images.Original.URL,
			FixedHeight: item.Images.FixedHeight.URL,
		})
	}

	return results, nil
}
