// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ImageEntry is one discovered source image. Index is the integer parsed
// from the filename stem and is the only ordering key; duplicate indices
// are allowed.
type ImageEntry struct {
	// Index is the page ordering key (e.g. 7 for "7.jpg").
	Index int `json:"index" yaml:"index"`

	// Name is the directory entry name as enumerated (e.g. "7.JPG").
	Name string `json:"name" yaml:"name"`

	// Path is Name joined with the source directory.
	Path string `json:"path" yaml:"path"`
}
