// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package discover

import (
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/jpg2pdf/pkg/types"
)

// Manifest is the YAML form of a planned run, printed by --dry-run.
type Manifest struct {
	Folder string             `yaml:"folder"`
	Output string             `yaml:"output"`
	Pages  []types.ImageEntry `yaml:"pages"`
}

// WriteManifest encodes the page order for folder as YAML to w.
func WriteManifest(w io.Writer, folder, output string, entries []types.ImageEntry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Manifest{Folder: folder, Output: output, Pages: entries}); err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	return enc.Close()
}
