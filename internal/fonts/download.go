// SPDX-FileCopyrightText: 2026 The fonty authors
// SPDX-License-Identifier: MIT

package fonts

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// DownloadRefs fetches every referenced file of the manifest and writes it
// under baseDir, in manifest order, one at a time. sink is notified before
// and after each download. The first failure aborts the remaining refs.
func (c *Client) DownloadRefs(ctx context.Context, m *FontManifest, baseDir string, sink ProgressSink) error {
	if sink == nil {
		sink = NopSink()
	}

	total := len(m.FileRefs)
	for i, ref := range m.FileRefs {
		sink.Start(i, total, ref.Filename)

		data, err := c.fetchRef(ctx, ref.URL)
		if err != nil {
			return err
		}

		if err := writeEntry(baseDir, ref.Filename, data); err != nil {
			return err
		}

		sink.Done(i, total, ref.Filename)
	}

	return nil
}

func (c *Client) fetchRef(ctx context.Context, refURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, refURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request %s: %v", ErrNetwork, refURL, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %v", ErrNetwork, refURL, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: fetch %s: status %s", ErrNetwork, refURL, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrNetwork, refURL, err)
	}

	return data, nil
}
