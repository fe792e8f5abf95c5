// SPDX-FileCopyrightText: 2026 The fonty authors
// SPDX-License-Identifier: MIT

package fonts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const manifestJSON = `{
  "zipName": "Roboto.zip",
  "manifest": {
    "files": [
      {"filename": "LICENSE.txt", "contents": "Apache License"}
    ],
    "fileRefs": [
      {"filename": "static/Roboto-Regular.ttf", "url": "https://example.com/Roboto-Regular.ttf"}
    ]
  }
}`

func newTestClient(serverURL string) *Client {
	return NewClient(ClientOptions{
		DownloadListURL: serverURL + "/download/list",
		SpecimenURL:     serverURL + "/specimen",
	})
}

func TestFetchManifest(t *testing.T) {
	t.Parallel()

	var gotFamily string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFamily = r.URL.Query().Get("family")
		_, _ = w.Write([]byte(")]}'\n" + manifestJSON))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	manifest, err := client.FetchManifest(context.Background(), []string{"Roboto", "Open Sans"})
	require.NoError(t, err)

	require.Equal(t, "Roboto,Open Sans", gotFamily)
	require.Len(t, manifest.Files, 1)
	require.Equal(t, "LICENSE.txt", manifest.Files[0].Filename)
	require.Equal(t, "Apache License", manifest.Files[0].Contents)
	require.Len(t, manifest.FileRefs, 1)
	require.Equal(t, "static/Roboto-Regular.ttf", manifest.FileRefs[0].Filename)
}

func TestFetchManifestPrefixStripping(t *testing.T) {
	t.Parallel()

	// parsing a prefixed payload must give the same result as parsing the
	// bare payload
	bodies := map[string]string{
		"Prefixed": ")]}'\n" + manifestJSON,
		"Bare":     manifestJSON,
	}

	var results []*FontManifest
	for name, body := range bodies {
		body := body
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))

		client := newTestClient(server.URL)
		manifest, err := client.FetchManifest(context.Background(), []string{"Roboto"})
		server.Close()
		require.NoError(t, err, name)
		results = append(results, manifest)
	}

	require.Equal(t, results[0], results[1])
}

func TestFetchManifestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			"Garbage",
			func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(")]}'\nnot json at all"))
			},
			ErrInvalidManifest,
		},
		{
			"ServerError",
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			ErrNetwork,
		},
		{
			"NotFound",
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			ErrNetwork,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(tc.handler)
			defer server.Close()

			client := newTestClient(server.URL)
			_, err := client.FetchManifest(context.Background(), []string{"Roboto"})
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestFetchManifestRequestFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse all connections

	client := newTestClient(server.URL)
	_, err := client.FetchManifest(context.Background(), []string{"Roboto"})
	require.ErrorIs(t, err, ErrNetwork)
}

func TestIsValidFont(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/specimen/Roboto", "/specimen/Open+Sans":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	ctx := context.Background()

	require.True(t, client.IsValidFont(ctx, "Roboto"))
	require.True(t, client.IsValidFont(ctx, "Open Sans"), "spaces become '+'")
	require.False(t, client.IsValidFont(ctx, "No Such Font"))
}

func TestIsValidFontUnreachable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)
	require.False(t, client.IsValidFont(context.Background(), "Roboto"))
}
