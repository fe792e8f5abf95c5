// SPDX-FileCopyrightText: 2026 The fonty authors
// SPDX-License-Identifier: MIT

package fetch

import (
	"context"
	"strings"

	"github.com/fontydev/fonty/internal/fonts"
)

// Run executes one full fetch: every requested name is validated (invalid
// names are collected and reported together), the manifest is retrieved in a
// single request, inline files are written, then referenced files are
// downloaded. Any failure past validation aborts the run; there is no retry
// and no partial-success reporting.
func Run(ctx context.Context, opts Options) error {
	opts = opts.WithDefaults()
	if len(opts.Fonts) == 0 {
		return errNoFonts
	}
	if opts.BaseDir == "" {
		return errMissingBaseDirectory
	}

	names := SplitAndTrim(opts.Fonts)
	if len(names) == 0 {
		return errNoFontsAfterParsing
	}

	log := opts.LoggerFactory.NewLogger("fetch")

	client := fonts.NewClient(fonts.ClientOptions{
		DownloadListURL: opts.DownloadListURL,
		SpecimenURL:     opts.SpecimenURL,
		HTTPClient:      opts.HTTPClient,
		LoggerFactory:   opts.LoggerFactory,
	})

	var invalid []string
	for _, name := range names {
		if !client.IsValidFont(ctx, name) {
			invalid = append(invalid, name)
		}
	}
	if len(invalid) > 0 {
		return &InvalidFontsError{Names: invalid}
	}

	manifest, err := client.FetchManifest(ctx, names)
	if err != nil {
		return err
	}

	// A single requested family gets its own subdirectory named after it;
	// multi-family manifests already carry per-family paths.
	if len(names) == 1 {
		manifest = fonts.WithPrefix(manifest, fonts.DirPrefix(names[0]))
	}

	log.Infof("writing %d inline files to %s", len(manifest.Files), opts.BaseDir)
	if err := fonts.WriteFiles(manifest, opts.BaseDir); err != nil {
		return err
	}

	log.Infof("downloading %d referenced files", len(manifest.FileRefs))

	return client.DownloadRefs(ctx, manifest, opts.BaseDir, opts.Progress)
}

// SplitAndTrim expands comma-separated fields and drops empty ones, so both
// "Roboto,Lato" and separate arguments are accepted.
func SplitAndTrim(fields []string) []string {
	var out []string
	for _, field := range fields {
		for _, part := range strings.Split(field, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}

	return out
}
