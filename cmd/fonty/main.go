// SPDX-FileCopyrightText: 2026 The fonty authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"os"

	"github.com/fontydev/fonty/internal/cli"
	"github.com/fontydev/fonty/internal/fonts"
)

// Exit codes by failure kind. Anything unclassified exits 1.
const (
	exitInvalidFontName = 2
	exitInvalidManifest = 3
	exitNetworkError    = 4
	exitFileIOError     = 5
)

func main() {
	if err := cli.Execute(os.Args[1:]); err != nil {
		cli.PrintError(err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, fonts.ErrInvalidFontName):
		return exitInvalidFontName
	case errors.Is(err, fonts.ErrInvalidManifest):
		return exitInvalidManifest
	case errors.Is(err, fonts.ErrNetwork):
		return exitNetworkError
	case errors.Is(err, fonts.ErrInvalidPath),
		errors.Is(err, fonts.ErrDirectoryCreate),
		errors.Is(err, fonts.ErrFileWrite):
		return exitFileIOError
	default:
		return 1
	}
}
