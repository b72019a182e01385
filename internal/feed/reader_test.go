package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/objectwire/objectwire/internal/core"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>World News</title>
    <link>https://news.example.com</link>
    <item>
      <title>First headline</title>
      <link>https://news.example.com/1</link>
      <description>Something happened today.</description>
      <pubDate>Mon, 06 Jan 2025 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Second headline</title>
      <link>https://news.example.com/2</link>
    </item>
  </channel>
</rss>`

func TestReader_ParsesText(t *testing.T) {
	f, err := NewReader().Read(context.Background(), sampleRSS)
	require.NoError(t, err)

	assert.Equal(t, "World News", f.Title)
	require.Len(t, f.Items, 2)

	// Feed order preserved.
	assert.Equal(t, "First headline", f.Items[0].Title)
	assert.Equal(t, "https://news.example.com/1", f.Items[0].Link)
	assert.Equal(t, "Something happened today.", f.Items[0].Summary)
	assert.NotEmpty(t, f.Items[0].Published)

	// Missing fields come back as empty strings, never absent.
	assert.Equal(t, "Second headline", f.Items[1].Title)
	assert.Equal(t, "", f.Items[1].Summary)
	assert.Equal(t, "", f.Items[1].Published)
}

func TestReader_ParsesURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	f, err := NewReader().Read(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "World News", f.Title)
	assert.Len(t, f.Items, 2)
}

func TestReader_RejectsNonFeed(t *testing.T) {
	_, err := NewReader().Read(context.Background(), "<html><body>not a feed</body></html>")
	assert.ErrorIs(t, err, core.ErrNotAFeed)
}

func TestReader_RejectsMalformedURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><head><title>Plain page</title></head><body>hi</body></html>"))
	}))
	defer srv.Close()

	_, err := NewReader().Read(context.Background(), srv.URL)
	assert.ErrorIs(t, err, core.ErrNotAFeed)
}

func TestReader_TruncatesSummary(t *testing.T) {
	long := strings.Repeat("x", 500)
	rss := strings.Replace(sampleRSS, "Something happened today.", long, 1)

	f, err := NewReader().Read(context.Background(), rss)
	require.NoError(t, err)
	assert.Len(t, []rune(f.Items[0].Summary), maxSummaryChars)
}
