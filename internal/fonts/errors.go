// SPDX-FileCopyrightText: 2026 The fonty authors
// SPDX-License-Identifier: MIT

package fonts

import "errors"

// Failure kinds surfaced by the fonts package. Every error returned by this
// package wraps exactly one of these, so callers can classify failures with
// errors.Is without parsing messages.
var (
	ErrInvalidManifest = errors.New("fonts: invalid manifest")
	ErrInvalidPath     = errors.New("fonts: invalid file path")
	ErrDirectoryCreate = errors.New("fonts: create directory failed")
	ErrFileWrite       = errors.New("fonts: write file failed")
	ErrNetwork         = errors.New("fonts: network failure")
	ErrInvalidFontName = errors.New("fonts: invalid font name")
)
