package article

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rss = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
  <title>Example news</title>
  <link>https://example.com</link>
  <item><title>No link</title></item>
  <item><title>Newest</title><link>https://example.com/news/2</link></item>
  <item><title>Older</title><link>https://example.com/news/1</link></item>
</channel></rss>`

func TestResolveFeedURL(t *testing.T) {
	assert.Equal(t, "https://hnrss.org/newest", ResolveFeedURL("hn"))
	assert.Equal(t, "https://example.com/rss", ResolveFeedURL("https://example.com/rss"))
}

func TestLatestFromFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rss))
	}))
	defer srv.Close()

	link, err := LatestFromFeed(context.Background(), srv.Client(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/news/2", link)
}

func TestLatestFromFeedEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<?xml version="1.0"?><rss version="2.0"><channel><title>t</title></channel></rss>`))
	}))
	defer srv.Close()

	_, err := LatestFromFeed(context.Background(), nil, srv.URL)
	assert.ErrorIs(t, err, ErrEmptyFeed)
}

func TestLatestFromFeedHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := LatestFromFeed(context.Background(), nil, srv.URL)
	assert.Error(t, err)
}
