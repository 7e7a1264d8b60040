// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package discover finds numerically named JPEG files in a directory and
// orders them into page sequence.
package discover

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/jpg2pdf/pkg/types"
)

var (
	// ErrNotADirectory is returned when the source path is missing or is
	// not a directory.
	ErrNotADirectory = errors.New("not a directory")

	// ErrNoImages is returned when no entry has a JPEG extension and an
	// integer stem.
	ErrNoImages = errors.New("no appropriately named JPGs found")
)

// extensions lists the accepted file extensions, lower-cased.
var extensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
}

// IsJPEG reports whether name carries a .jpg or .jpeg extension,
// compared case-insensitively.
func IsJPEG(name string) bool {
	return extensions[strings.ToLower(filepath.Ext(name))]
}

// ParseIndex parses stem as a base-10 integer. It never fails loudly:
// the second return value is false when stem is not an integer.
func ParseIndex(stem string) (int, bool) {
	n, err := strconv.Atoi(stem)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Entry classifies a single directory entry name. ok is false for names
// that are not JPEGs or whose stem does not parse.
func Entry(dir, name string) (entry types.ImageEntry, ok bool) {
	if !IsJPEG(name) {
		return types.ImageEntry{}, false
	}
	idx, ok := ParseIndex(strings.TrimSuffix(name, filepath.Ext(name)))
	if !ok {
		return types.ImageEntry{}, false
	}
	return types.ImageEntry{
		Index: idx,
		Name:  name,
		Path:  filepath.Join(dir, name),
	}, true
}

// Discover lists dir (non-recursively) and returns the matching entries
// sorted by index. Subdirectories are ignored even when their names match.
func Discover(dir string) ([]types.ImageEntry, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%q: %w", dir, ErrNotADirectory)
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var entries []types.ImageEntry
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		if e, ok := Entry(dir, de.Name()); ok {
			entries = append(entries, e)
		}
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoImages)
	}

	Sort(entries)
	return entries, nil
}

// Sort orders entries by ascending index. The sort is stable, so entries
// sharing an index keep their enumeration order.
func Sort(entries []types.ImageEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Index < entries[j].Index
	})
}
