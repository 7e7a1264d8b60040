//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Combine builds the binary and runs it on folder, writing <folder>.pdf in
// the current directory.
func Combine(folder string) error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "--log-level", "info", folder)
}

// Plan prints the page order jpg2pdf would use for folder.
func Plan(folder string) error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "--dry-run", folder)
}
