// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultResolution is the page resolution, in dots per inch, at which each
// image is placed. One image pixel maps to 72/DefaultResolution points.
const DefaultResolution = 100.0

// LogLevel names a diagnostic verbosity accepted by --log-level.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// CombineConfig holds settings for a single combine run.
type CombineConfig struct {
	// Folder is the source directory holding numerically named JPEGs.
	Folder string `json:"folder" yaml:"folder"`

	// Output is the destination PDF path. Empty means "<basename(Folder)>.pdf"
	// in the working directory.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Resolution is the page resolution in DPI (default 100).
	Resolution float64 `json:"resolution" yaml:"resolution"`

	// DryRun lists the page order without decoding or writing anything.
	DryRun bool `json:"dry_run" yaml:"dry_run"`

	// LogLevel controls diagnostic output on stderr (default warn).
	LogLevel LogLevel `json:"log_level" yaml:"log_level"`
}
