// SPDX-FileCopyrightText: 2026 The fonty authors
// SPDX-License-Identifier: MIT

// Package fonts implements the manifest retrieval and file materialization
// pipeline against the Google Fonts catalog.
package fonts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pion/logging"
)

const (
	DefaultDownloadListURL = "https://fonts.google.com/download/list"
	DefaultSpecimenURL     = "https://fonts.google.com/specimen"
)

// hijackPrefix is prepended by the catalog to the manifest JSON as an
// anti-JSON-hijacking measure. It must be stripped before parsing.
const hijackPrefix = ")]}'\n"

// ClientOptions configures a catalog Client.
type ClientOptions struct {
	DownloadListURL string
	SpecimenURL     string
	HTTPClient      *http.Client
	LoggerFactory   logging.LoggerFactory
}

func (o ClientOptions) WithDefaults() ClientOptions {
	if o.DownloadListURL == "" {
		o.DownloadListURL = DefaultDownloadListURL
	}
	if o.SpecimenURL == "" {
		o.SpecimenURL = DefaultSpecimenURL
	}
	if o.HTTPClient == nil {
		o.HTTPClient = http.DefaultClient
	}
	if o.LoggerFactory == nil {
		o.LoggerFactory = logging.NewDefaultLoggerFactory()
	}

	return o
}

// Client talks to the remote font catalog: it validates family names,
// fetches manifests, and downloads referenced files.
type Client struct {
	downloadListURL string
	specimenURL     string
	httpClient      *http.Client
	log             logging.LeveledLogger
}

func NewClient(opts ClientOptions) *Client {
	opts = opts.WithDefaults()

	return &Client{
		downloadListURL: opts.DownloadListURL,
		specimenURL:     opts.SpecimenURL,
		httpClient:      opts.HTTPClient,
		log:             opts.LoggerFactory.NewLogger("fonts"),
	}
}

// IsValidFont reports whether fontName names a real catalog entry. It issues
// one GET to the specimen page (spaces become '+') and returns true iff the
// request succeeds at the transport level and the status is a success.
// Unreachable and invalid are deliberately not distinguished.
func (c *Client) IsValidFont(ctx context.Context, fontName string) bool {
	specimen := c.specimenURL + "/" + strings.ReplaceAll(fontName, " ", "+")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, specimen, nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debugf("specimen request for %q failed: %v", fontName, err)

		return false
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// FetchManifest retrieves the manifest for the given font families in a
// single request; the download-list query carries all names as one
// comma-joined list. The anti-hijacking prefix is stripped from the body
// before the JSON payload is parsed.
func (c *Client) FetchManifest(ctx context.Context, fontNames []string) (*FontManifest, error) {
	query := url.Values{}
	query.Set("family", strings.Join(fontNames, ","))
	listURL := c.downloadListURL + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build manifest request: %v", ErrNetwork, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch manifest: %v", ErrNetwork, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: fetch manifest %s: status %s", ErrNetwork, listURL, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read manifest body: %v", ErrNetwork, err)
	}

	body = bytes.TrimPrefix(body, []byte(hijackPrefix))

	var wrapper manifestWrapper
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil, fmt.Errorf("%w: parse manifest: %v", ErrInvalidManifest, err)
	}

	c.log.Debugf("manifest for %q: %d files, %d refs",
		strings.Join(fontNames, ","), len(wrapper.Manifest.Files), len(wrapper.Manifest.FileRefs))

	return &wrapper.Manifest, nil
}
