// Package client provides an HTTP client for the visa portal REST API.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Alan-Biju/global-visa/internal/country"
	"github.com/Alan-Biju/global-visa/internal/dossier"
	"github.com/Alan-Biju/global-visa/internal/query"
)

// Client is an HTTP client for the visa portal API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// CountrySummary is one row from GET /api/countries.
type CountrySummary struct {
	Slug       string   `json:"slug"`
	Name       string   `json:"name"`
	Code       string   `json:"code"`
	Categories []string `json:"categories"`
}

// ListCountries returns all countries in the directory.
func (c *Client) ListCountries() ([]CountrySummary, error) {
	var list []CountrySummary
	if err := c.get("/api/countries", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetCountry returns the full record for one country.
func (c *Client) GetCountry(slug string) (*country.CountryData, error) {
	var data country.CountryData
	if err := c.get("/api/countries/"+url.PathEscape(slug), &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Resolve returns the dossier for an origin, destination, and visa type.
func (c *Client) Resolve(origin, destination, visaType string) (*dossier.View, error) {
	params := url.Values{}
	params.Set("origin", origin)
	params.Set("dest", destination)
	params.Set("type", visaType)

	var v dossier.View
	if err := c.get("/api/dossier?"+params.Encode(), &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// SaveCountry creates or overwrites one country record.
func (c *Client) SaveCountry(slug string, data country.CountryData) error {
	return c.post("/api/countries/"+url.PathEscape(slug), data, nil)
}

// DeleteCountry removes one country record.
func (c *Client) DeleteCountry(slug string) error {
	return c.doDelete("/api/countries/" + url.PathEscape(slug))
}

// QueryResponse is the server's acknowledgment of a contact query.
type QueryResponse struct {
	Reference string `json:"reference"`
	Mailto    string `json:"mailto,omitempty"`
	Sent      bool   `json:"sent"`
}

// SendQuery submits a contact query.
func (c *Client) SendQuery(req query.Request) (*QueryResponse, error) {
	var resp QueryResponse
	if err := c.post("/api/query", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// get performs a GET request and decodes the response.
func (c *Client) get(path string, result interface{}) error {
	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, result)
}

// post performs a POST request with a JSON body and decodes the response.
func (c *Client) post(path string, body interface{}, result interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, result)
}

// doDelete performs a DELETE request.
func (c *Client) doDelete(path string) error {
	req, err := http.NewRequest("DELETE", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, nil)
}

// do executes an HTTP request and handles errors.
func (c *Client) do(req *http.Request, result interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			fmt.Printf("warning: closing response body: %v\n", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return fmt.Errorf("%s", errResp.Error)
		}
		return fmt.Errorf("server error: %s", http.StatusText(resp.StatusCode))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
