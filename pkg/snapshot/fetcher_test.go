package snapshot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.UnixMilli(1714557600123)

func TestHTTPFetcher_Success(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		gotQuery = r.URL.Query().Get("t")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"timestamp":"2024-05-01T10:00:00Z","token":"0xaaa","pair":"0xppp","name":"Alpha","symbol":"ALP",
			 "passed":true,"liquidityETH":2.5,"buyTax":1,"sellTax":2,"ownerPercent":0,"lpBurnedPercent":100,
			 "failures":[],"checkTimeMs":180},
			{"timestamp":"2024-05-01T09:00:00Z","token":"0xbbb","name":"Beta","passed":false,"failures":["sell tax 99%"]}
		]`))
	}))
	defer server.Close()

	f := NewHTTPFetcher(server.URL+"/tokens.json", WithClock(func() time.Time { return fixedNow }))
	recs, err := f.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "1714557600123", gotQuery)
	require.Len(t, recs, 2)
	assert.Equal(t, "Alpha", recs[0].Name)
	assert.Equal(t, 2.5, recs[0].LiquidityETH)
	assert.Equal(t, "Beta", recs[1].Name, "order is preserved")
	assert.Equal(t, []string{"sell tax 99%"}, recs[1].Failures)
}

func TestHTTPFetcher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewHTTPFetcher(server.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.NotErrorIs(t, err, ErrParse)
}

func TestHTTPFetcher_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>rate limited</html>`))
	}))
	defer server.Close()

	_, err := NewHTTPFetcher(server.URL).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrParse)
}

func TestHTTPFetcher_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	target := server.URL
	server.Close()

	_, err := NewHTTPFetcher(target, WithTimeout(time.Second)).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrTransport)
}

func TestRequestURLKeepsExistingQuery(t *testing.T) {
	got, err := RequestURL("https://example.com/raw/tokens.json?v=2", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/raw/tokens.json?t=1714557600123&v=2", got)
}

func TestDecode(t *testing.T) {
	recs, err := Decode([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, recs)

	recs, err = Decode([]byte(`null`))
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)

	_, err = Decode([]byte(`{"tokens":[]}`))
	assert.ErrorIs(t, err, ErrParse)
}
