package snapshot

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

	"github.com/portfolio-site/pkg/tokens"
)

// DefaultURL is the published token-check document.
const DefaultURL = "https://gist.githubusercontent.com/jnworth/3f51567c4347144d481293aa1c215262/raw/tokens.json"

const DefaultTimeout = 20 * time.Second

var (
	// ErrTransport covers network failures and non-2xx responses.
	ErrTransport = errors.New("snapshot transport")
	// ErrParse covers bodies that are not a JSON array of records.
	ErrParse = errors.New("snapshot parse")
)

// Fetcher retrieves one snapshot of token checks.
type Fetcher interface {
	Fetch(ctx context.Context) ([]tokens.Record, error)
}

// HTTPFetcher issues a GET with a cache-busting t=<epoch-millis> parameter.
type HTTPFetcher struct {
	url    string
	client *http.Client
	now    func() time.Time
}

type Option func(*HTTPFetcher)

func WithHTTPClient(c *http.Client) Option {
	return func(f *HTTPFetcher) { f.client = c }
}

func WithTimeout(d time.Duration) Option {
	return func(f *HTTPFetcher) { f.client.Timeout = d }
}

// WithClock replaces the clock used for the cache-busting parameter.
func WithClock(now func() time.Time) Option {
	return func(f *HTTPFetcher) { f.now = now }
}

func NewHTTPFetcher(target string, opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		url:    target,
		client: &http.Client{Timeout: DefaultTimeout},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// RequestURL returns the target with t set to the given instant in epoch
// milliseconds, keeping any query the target already carries.
func RequestURL(target string, at time.Time) (string, error) {
	u, err := url.Parse(target)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("t", strconv.FormatInt(at.UnixMilli(), 10))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (f *HTTPFetcher) Fetch(ctx context.Context) ([]tokens.Record, error) {
	reqURL, err := RequestURL(f.url, f.now())
	if err != nil {
		return nil, fmt.Errorf("%w: bad url: %v", ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: status %d", ErrTransport, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}
	return Decode(body)
}

// Decode reads a snapshot body. Records with missing fields decode to zero
// values; only a body that is not a JSON array is rejected. A literal null
// decodes to an empty snapshot.
func Decode(body []byte) ([]tokens.Record, error) {
	var recs []tokens.Record
	if err := json.Unmarshal(body, &recs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if recs == nil {
		recs = []tokens.Record{}
	}
	return recs, nil
}
