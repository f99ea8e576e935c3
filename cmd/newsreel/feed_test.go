package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedRunsNewestItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(`<?xml version="1.0"?><rss version="2.0"><channel><title>t</title>
<item><title>Newest</title><link>https://example.com/news/2</link></item>
<item><title>Older</title><link>https://example.com/news/1</link></item>
</channel></rss>`))
	}))
	defer srv.Close()

	cfgPath, _ := writeConfig(t)
	b := &recordingBuilder{}
	cmd := NewRootCmd(b.build)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"feed", "--config", cfgPath, srv.URL})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Latest article: https://example.com/news/2")
	assert.Equal(t, 1, b.calls)
}

func TestFeedRequiresArgument(t *testing.T) {
	b := &recordingBuilder{}
	cmd := NewRootCmd(b.build)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"feed"})

	assert.Error(t, cmd.Execute())
	assert.Zero(t, b.calls)
}
