package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSendsBrowserHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	c := NewClient(Options{Source: "tennisrecruiting"})
	body, err := c.Fetch(context.Background(), srv.URL+"/player.asp?id=1", "https://www.tennisrecruiting.net/")
	require.NoError(t, err)
	assert.Equal(t, "<html>ok</html>", body)
	assert.Equal(t, DefaultUserAgent, got.Get("User-Agent"))
	assert.Contains(t, got.Get("Accept"), "text/html")
	assert.Equal(t, "en-US,en;q=0.9", got.Get("Accept-Language"))
	assert.Equal(t, "https://www.tennisrecruiting.net/", got.Get("Referer"))
}

func TestClientMapsFailuresToNotAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/forbidden":
			w.WriteHeader(http.StatusForbidden)
		case "/slow":
			time.Sleep(300 * time.Millisecond)
			_, _ = w.Write([]byte("late"))
		}
	}))
	defer srv.Close()

	c := NewClient(Options{Source: "itf", Timeout: 50 * time.Millisecond})

	_, err := c.Fetch(context.Background(), srv.URL+"/forbidden", "")
	require.ErrorIs(t, err, ErrNotAvailable)

	_, err = c.Fetch(context.Background(), srv.URL+"/slow", "")
	require.ErrorIs(t, err, ErrNotAvailable)

	_, err = c.Fetch(context.Background(), "http://127.0.0.1:1/closed", "")
	require.ErrorIs(t, err, ErrNotAvailable)
}

func TestURLs(t *testing.T) {
	var live URLs
	assert.Equal(t, "https://www.tennisrecruiting.net/player.asp?id=40123", live.PlayerPage("40123"))
	assert.Equal(t, "https://www.tennisrecruiting.net/list.asp?id=1285&page=3", live.RankingList(1285, 3))
	assert.Equal(t, "https://www.tennisrecruiting.net/player/activity.asp?id=40123", live.TennisRecruitingActivity("40123"))
	assert.Equal(t, ITFRankingsURL, live.ITFRankings())
	assert.Equal(t,
		"https://www.itftennis.com/en/players/jos-oneill/800123/usa/jt/s/activity",
		live.ITFActivity("José  O'Neill", "800123", ""))
	assert.Equal(t,
		"https://www.itftennis.com/en/players/luca-rossi/800200/ita/jt/s/activity",
		live.ITFActivity("Luca Rossi", "800200", "Italy"))

	local := URLs{TennisRecruiting: "http://127.0.0.1:9000/", ITF: "http://127.0.0.1:9001"}
	assert.Equal(t, "http://127.0.0.1:9000/player.asp?id=7", local.PlayerPage("7"))
	assert.Contains(t, local.ITFRankings(), "http://127.0.0.1:9001/tennis/api/PlayerRankApi/GetPlayerRankings?")
}

func TestPlayerSlug(t *testing.T) {
	assert.Equal(t, "alex-carter", PlayerSlug("  Alex   Carter "))
	assert.Equal(t, "jean-luc-dubois", PlayerSlug("Jean-Luc Dubois"))
	assert.Equal(t, "", PlayerSlug("!!!"))
}

type memCache struct {
	mu    sync.Mutex
	pages map[string]string
}

func (m *memCache) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	body, ok := m.pages[key]
	return body, ok, nil
}

func (m *memCache) Set(_ context.Context, key, body string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages[key] = body
	return nil
}

type countingFetcher struct {
	calls int
	body  string
	err   error
}

func (f *countingFetcher) Fetch(context.Context, string, string) (string, error) {
	f.calls++
	return f.body, f.err
}

func TestCachedServesRepeatFetches(t *testing.T) {
	next := &countingFetcher{body: "<table></table>"}
	cached := NewCached(next, &memCache{pages: map[string]string{}}, time.Minute)

	for i := 0; i < 3; i++ {
		body, err := cached.Fetch(context.Background(), "https://example.test/a", "")
		require.NoError(t, err)
		assert.Equal(t, "<table></table>", body)
	}
	assert.Equal(t, 1, next.calls)
}

func TestCachedDoesNotStoreFailures(t *testing.T) {
	next := &countingFetcher{err: ErrNotAvailable}
	cache := &memCache{pages: map[string]string{}}
	cached := NewCached(next, cache, time.Minute)

	_, err := cached.Fetch(context.Background(), "https://example.test/a", "")
	require.ErrorIs(t, err, ErrNotAvailable)
	assert.Empty(t, cache.pages)
}

func TestNewBrowserTimeout(t *testing.T) {
	assert.Equal(t, 15*time.Second, NewBrowser(BrowserOptions{Timeout: 15 * time.Second}).timeout)
	assert.Equal(t, 30*time.Second, NewBrowser(BrowserOptions{}).timeout)
	assert.Equal(t, DefaultUserAgent, NewBrowser(BrowserOptions{}).userAgent)
}
