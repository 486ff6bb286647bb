package orbit

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"
)

// FetchRequest identifies the item set to fetch.
type FetchRequest struct {
	ControlID    string
	SelectedType string
	SelectedID   string
}

// Fetcher retrieves the ordered item set for a request. Implementations may
// block; the control calls Fetch off the UI goroutine.
type Fetcher interface {
	Fetch(ctx context.Context, req FetchRequest) ([]ItemRecord, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, req FetchRequest) ([]ItemRecord, error)

// Fetch calls f(ctx, req).
func (f FetcherFunc) Fetch(ctx context.Context, req FetchRequest) ([]ItemRecord, error) {
	return f(ctx, req)
}

// HTTPFetcher issues GET requests with controlId, selectedType and selectedId
// query parameters and decodes a JSON array of item records.
type HTTPFetcher struct {
	URL    string
	Client *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher. A nil client uses http.DefaultClient.
func NewHTTPFetcher(rawURL string, client *http.Client) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{URL: rawURL, Client: client}
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context, req FetchRequest) ([]ItemRecord, error) {
	u, err := url.Parse(f.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch items: parse url: %w", err)
	}
	q := u.Query()
	q.Set("controlId", req.ControlID)
	q.Set("selectedType", req.SelectedType)
	q.Set("selectedId", req.SelectedID)
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("fetch items: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("fetch items: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("fetch items: %s", resp.Status)
	}

	var items []ItemRecord
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("fetch items: decode: %w", err)
	}
	return items, nil
}
