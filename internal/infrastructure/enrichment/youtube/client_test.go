package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pantrychef/pantrychef/internal/infrastructure/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.YouTube.BaseURL = server.URL
	cfg.YouTube.APIKey = "test-key"
	return NewClient(cfg, zap.NewNop())
}

func TestSearch(t *testing.T) {
	t.Run("maps results", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search", r.URL.Path)
			assert.Equal(t, "pad thai recipe tutorial", r.URL.Query().Get("q"))
			assert.Equal(t, "3", r.URL.Query().Get("maxResults"))
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))

			w.Write([]byte(`{"items":[
				{"id":{"videoId":"abc"},"snippet":{"title":"Pad Thai at Home","channelTitle":"ThaiFood","thumbnails":{"high":{"url":"https://img.example/high.jpg"}}}},
				{"id":{"videoId":"def"},"snippet":{"title":"Street Pad Thai","channelTitle":"StreetEats","thumbnails":{"default":{"url":"https://img.example/default.jpg"}}}}
			]}`))
		})

		results, err := client.Search(context.Background(), "pad thai recipe tutorial", 3)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "abc", results[0].VideoID)
		assert.Equal(t, "Pad Thai at Home", results[0].Title)
		assert.Equal(t, "https://img.example/high.jpg", results[0].ThumbnailURL)
		assert.Equal(t, "ThaiFood", results[0].ChannelName)
		// falls back to the default thumbnail
		assert.Equal(t, "https://img.example/default.jpg", results[1].ThumbnailURL)
	})

	t.Run("skips items without a video id", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"items":[{"id":{},"snippet":{"title":"A Playlist"}}]}`))
		})

		results, err := client.Search(context.Background(), "anything", 3)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("propagates API errors", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota", http.StatusForbidden)
		})

		_, err := client.Search(context.Background(), "anything", 3)
		assert.Error(t, err)
	})
}
