// SPDX-FileCopyrightText: 2026 The fonty authors
// SPDX-License-Identifier: MIT

package fonts

import "strings"

// WithPrefix returns a new manifest in which every filename in Files and
// FileRefs is rewritten to "prefix/filename". The input manifest is never
// mutated.
func WithPrefix(m *FontManifest, prefix string) *FontManifest {
	out := &FontManifest{
		Files:    make([]ManifestFile, 0, len(m.Files)),
		FileRefs: make([]ManifestFileRef, 0, len(m.FileRefs)),
	}

	for _, f := range m.Files {
		out.Files = append(out.Files, ManifestFile{
			Filename: prefix + "/" + f.Filename,
			Contents: f.Contents,
		})
	}
	for _, ref := range m.FileRefs {
		out.FileRefs = append(out.FileRefs, ManifestFileRef{
			Filename: prefix + "/" + ref.Filename,
			URL:      ref.URL,
		})
	}

	return out
}

// DirPrefix derives the single-font subdirectory name from a font family
// name: spaces become underscores.
func DirPrefix(fontName string) string {
	return strings.ReplaceAll(fontName, " ", "_")
}
