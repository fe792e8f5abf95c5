// Package fetch orchestrates the font fetch pipeline: name validation,
// manifest retrieval, path derivation, and file materialization.
package fetch

import (
	"errors"
	"strings"

	"github.com/fontydev/fonty/internal/fonts"
)

var (
	errNoFonts              = errors.New("fetch: no fonts specified")
	errNoFontsAfterParsing  = errors.New("fetch: no fonts specified after parsing")
	errMissingBaseDirectory = errors.New("fetch: base directory is required")
)

// InvalidFontsError reports every requested family name that failed catalog
// validation, not just the first one.
type InvalidFontsError struct {
	Names []string
}

func (e *InvalidFontsError) Error() string {
	return "fetch: invalid fonts: '" + strings.Join(e.Names, "', '") + "'"
}

// Unwrap ties the error into the fonts failure taxonomy so callers can match
// it with errors.Is(err, fonts.ErrInvalidFontName).
func (e *InvalidFontsError) Unwrap() error {
	return fonts.ErrInvalidFontName
}
