// Package feed implements the CourseSource port: the live aggregation
// feed over HTTP and the bundled per-semester data files.
package feed

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/zerr"

	"github.com/itzMRZ/usisportal/internal/core/domain"
)

const httpClientTimeout = 30 * time.Second

// Client implements ports.CourseSource.
type Client struct {
	feedURL    string
	dataDir    string
	httpClient *http.Client
}

// NewClient creates a course source reading the live feed at feedURL and
// static files under dataDir.
func NewClient(feedURL, dataDir string) *Client {
	return &Client{
		feedURL: feedURL,
		dataDir: dataDir,
		httpClient: &http.Client{
			Timeout: httpClientTimeout,
		},
	}
}

// FetchFeed retrieves the current semester's raw records from the feed.
func (c *Client) FetchFeed(ctx context.Context) ([]json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, http.NoBody)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFeedRequestFailed.Error())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFeedRequestFailed.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(domain.ErrFeedRequestFailed, "status_code", resp.StatusCode)
		return nil, zerr.With(statusErr, "url", c.feedURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFeedRequestFailed.Error())
	}

	return extractRecords(body)
}

// FetchStatic reads the raw records of a bundled semester data file.
func (c *Client) FetchStatic(_ context.Context, fileName string) ([]json.RawMessage, error) {
	path := filepath.Join(c.dataDir, filepath.Clean(fileName))
	data, err := os.ReadFile(path) //nolint:gosec // file names come from the validated catalog
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStaticFileUnavailable.Error())
	}

	return extractRecords(data)
}

// extractRecords accepts the known payload shapes: a bare array of
// course records, or an object carrying the array under "data" or
// "sections". Anything else is a format failure so the loader can fall
// back instead of normalizing garbage.
func extractRecords(payload []byte) ([]json.RawMessage, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(payload, &records); err == nil {
		return records, nil
	}

	var envelope struct {
		Data     []json.RawMessage `json:"data"`
		Sections []json.RawMessage `json:"sections"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, zerr.Wrap(err, domain.ErrPayloadFormat.Error())
	}

	switch {
	case envelope.Data != nil:
		return envelope.Data, nil
	case envelope.Sections != nil:
		return envelope.Sections, nil
	default:
		return nil, domain.ErrPayloadFormat
	}
}
