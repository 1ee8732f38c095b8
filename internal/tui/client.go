package tui

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/racewiki/server/api/rest/search"
	"codeberg.org/racewiki/server/api/rest/wiki"
	"codeberg.org/racewiki/server/internal/errors"
)

// timeout for API requests, searches may wait on captioning
const requestTimeout = 30 * time.Second

// reads the wiki over its REST API
type Client struct {
	endpoint   string
	locale     string
	httpClient *http.Client
}

// creates a client for the API at endpoint, asking for locale when set
func NewClient(endpoint, locale string) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		locale:   locale,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// runs a text search
func (c *Client) Search(ctx context.Context, query string) (*search.SearchResponse, error) {
	var result search.SearchResponse
	if err := c.get(ctx, "/api/v1/search", url.Values{"q": {query}}, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// fetches a single entry by slug
func (c *Client) Entry(ctx context.Context, slug string) (*wiki.PageResponse, error) {
	var page wiki.PageResponse
	if err := c.get(ctx, "/api/v1/wiki/"+url.PathEscape(slug), nil, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// returns a tea.Cmd that runs a search
func (c *Client) SearchCmd(query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		resp, err := c.Search(ctx, query)
		if err != nil {
			return SearchErrorMsg{query: query, err: err}
		}

		return SearchResultsMsg{query: query, response: *resp}
	}
}

// returns a tea.Cmd that fetches an entry
func (c *Client) EntryCmd(slug string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		page, err := c.Entry(ctx, slug)
		if err != nil {
			return PageErrorMsg{slug: slug, err: err}
		}

		return PageLoadedMsg{page: *page}
	}
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}

	if c.locale != "" {
		params.Set("lang", c.locale)
	}

	target := c.endpoint + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errors.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
			return stderrors.New(errResp.Message)
		}

		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}
