// Package contentful fetches entries from the Contentful Delivery API and
// hands back normalized articles. A batch either fully succeeds, possibly
// with zero items, or fully fails with a classified APIError.
package contentful

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gfmartins/postdeck/internal/article"
	"github.com/gfmartins/postdeck/internal/config"
)

const deliveryBaseURL = "https://cdn.contentful.com"

type Client struct {
	cfg     *config.Config
	http    *http.Client
	baseURL string
}

// NewClient builds a client from the loaded configuration. There is no global
// handle: callers hold the client explicitly, and a missing credential is a
// construction error, not a nil to check later.
func NewClient(cfg *config.Config) (*Client, error) {
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}
	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: 15 * time.Second},
		baseURL: deliveryBaseURL,
	}, nil
}

type sysEnvelope struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	LinkType  string `json:"linkType"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type rawRecord struct {
	Sys    sysEnvelope    `json:"sys"`
	Fields map[string]any `json:"fields"`
}

type entriesResponse struct {
	Items    []rawRecord `json:"items"`
	Includes struct {
		Asset []rawRecord `json:"Asset"`
		Entry []rawRecord `json:"Entry"`
	} `json:"includes"`
}

// FetchArticles retrieves one bounded batch, resolves linked records, maps
// every item through the normalizer and returns the result newest first
// (stable: ties keep response order). Zero items is an empty slice, not an
// error. No server-side filter beyond the optional content type is applied;
// search and category filtering happen client-side on normalized data.
func (c *Client) FetchArticles(ctx context.Context) ([]article.Article, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(c.cfg.Limit))
	q.Set("include", "2")
	if c.cfg.ContentType != "" {
		q.Set("content_type", c.cfg.ContentType)
		q.Set("order", "-fields.publishedDate")
	} else {
		// Ordering by a field requires a content type; fall back to the
		// envelope timestamp for untyped fetches.
		q.Set("order", "-sys.createdAt")
	}

	endpoint := fmt.Sprintf("%s/spaces/%s/environments/%s/entries?%s",
		c.baseURL, url.PathEscape(c.cfg.SpaceID), url.PathEscape(c.cfg.Environment), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &APIError{Kind: SourceUnavailable, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &APIError{Kind: SourceUnavailable, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, classifyStatus(resp)
	}

	var body entriesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &APIError{Kind: SourceUnavailable, Err: fmt.Errorf("decoding response: %w", err)}
	}

	refs := buildRefs(body.Includes.Asset, body.Includes.Entry)

	articles := make([]article.Article, 0, len(body.Items))
	for _, item := range body.Items {
		fields, _ := resolveLinks(item.Fields, refs).(map[string]any)
		articles = append(articles, article.Normalize(article.Entry{
			ID:        item.Sys.ID,
			CreatedAt: item.Sys.CreatedAt,
			UpdatedAt: item.Sys.UpdatedAt,
			Fields:    fields,
		}))
	}

	article.SortByPublished(articles)
	return articles, nil
}

func classifyStatus(resp *http.Response) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 8<<10))

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &APIError{Kind: Unauthorized, Status: resp.StatusCode}
	case resp.StatusCode == http.StatusBadRequest && strings.Contains(string(body), "unknownContentType"):
		return &APIError{Kind: SchemaMismatch, Status: resp.StatusCode}
	default:
		return &APIError{Kind: SourceUnavailable, Status: resp.StatusCode}
	}
}
