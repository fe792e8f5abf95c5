// SPDX-FileCopyrightText: 2026 The fonty authors
// SPDX-License-Identifier: MIT

package fonts

// ManifestFile is a file whose full contents are embedded in the manifest
// payload (license text, READMEs, and similar).
type ManifestFile struct {
	Filename string `json:"filename"`
	Contents string `json:"contents"`
}

// ManifestFileRef points at a file that has to be fetched from a separate
// URL before it can be written to disk.
type ManifestFileRef struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// FontManifest describes every file belonging to one or more requested font
// families. Filenames are relative paths; the catalog does not guarantee
// uniqueness across Files and FileRefs, so a later entry may overwrite an
// earlier one with the same name.
type FontManifest struct {
	Files    []ManifestFile    `json:"files"`
	FileRefs []ManifestFileRef `json:"fileRefs"`
}

// manifestWrapper is the outermost payload shape returned by the catalog.
// Only Manifest is consumed; ZipName is discarded.
type manifestWrapper struct {
	ZipName  string       `json:"zipName"`
	Manifest FontManifest `json:"manifest"`
}
