package imgur

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlbumHash(t *testing.T) {
	hash, err := albumHash("https://imgur.com/a/AbCdEf1")
	require.NoError(t, err)
	require.Equal(t, "AbCdEf1", hash)

	// Title prefix before the hash.
	hash, err = albumHash("https://imgur.com/a/my-vacation-AbCdEf1")
	require.NoError(t, err)
	require.Equal(t, "AbCdEf1", hash)

	_, err = albumHash("https://imgur.com/a/xyz")
	require.Error(t, err)
}

func TestExpandIgnoresNonAlbums(t *testing.T) {
	ex := NewExpander(&http.Client{}, "client-id")

	for _, u := range []string{
		"https://example.com/cat.png",
		"https://i.imgur.com/AbCdEf1.jpeg",
	} {
		urls, err := ex.Expand(context.Background(), u)
		require.NoError(t, err)
		require.Nil(t, urls)
	}
}

func TestExpandWithoutClientID(t *testing.T) {
	ex := NewExpander(&http.Client{}, "")

	urls, err := ex.Expand(context.Background(), "https://imgur.com/a/AbCdEf1")
	require.NoError(t, err)
	require.Nil(t, urls)
}

func TestExpandAlbum(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/album/AbCdEf1", r.URL.Path)
		require.Equal(t, "Client-ID client-id", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": {
				"images": [
					{"link": "https://i.imgur.com/one.jpeg"},
					{"link": "https://i.imgur.com/two.png"}
				]
			},
			"success": true,
			"status": 200
		}`))
	}))
	defer srv.Close()

	ex := NewExpander(srv.Client(), "client-id")
	ex.apiBase = srv.URL

	urls, err := ex.Expand(context.Background(), "https://imgur.com/a/AbCdEf1")
	require.NoError(t, err)
	require.Equal(t, []string{"https://i.imgur.com/one.jpeg", "https://i.imgur.com/two.png"}, urls)
}

func TestExpandEmptyAlbum(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"images": []}, "success": true, "status": 200}`))
	}))
	defer srv.Close()

	ex := NewExpander(srv.Client(), "client-id")
	ex.apiBase = srv.URL

	// Claimed but empty: non-nil so the album url is not passed through to
	// the image pipeline.
	urls, err := ex.Expand(context.Background(), "https://imgur.com/a/AbCdEf1")
	require.NoError(t, err)
	require.NotNil(t, urls)
	require.Empty(t, urls)
}

func TestExpandAlbumFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": null, "success": false, "status": 403}`))
	}))
	defer srv.Close()

	ex := NewExpander(srv.Client(), "client-id")
	ex.apiBase = srv.URL

	_, err := ex.Expand(context.Background(), "https://imgur.com/a/AbCdEf1")
	require.Error(t, err)
}
