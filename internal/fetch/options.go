package fetch

import (
	"net/http"

	"github.com/pion/logging"

	"github.com/fontydev/fonty/internal/fonts"
)

type Options struct {
	// Fonts are the requested family names, as typed by the user.
	Fonts []string

	// BaseDir is the root all files are written under.
	BaseDir string

	// Catalog endpoints; empty values fall back to Google Fonts.
	DownloadListURL string
	SpecimenURL     string

	// Progress receives per-download notifications. nil means silent.
	Progress fonts.ProgressSink

	HTTPClient    *http.Client
	LoggerFactory logging.LoggerFactory
}

func (o Options) WithDefaults() Options {
	if o.Progress == nil {
		o.Progress = fonts.NopSink()
	}
	if o.LoggerFactory == nil {
		o.LoggerFactory = logging.NewDefaultLoggerFactory()
	}

	return o
}
