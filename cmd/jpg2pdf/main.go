// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the jpg2pdf CLI. It combines a folder
// of numerically named JPEGs (0.jpg, 1.jpg, ...) into one PDF, one page per
// image, in ascending numeric order.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/jpg2pdf/internal/assemble"
	"github.com/pdiddy/jpg2pdf/internal/config"
	"github.com/pdiddy/jpg2pdf/internal/discover"
	"github.com/pdiddy/jpg2pdf/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

// newRootCmd builds the jpg2pdf command writing to stdout and stderr. The
// folder argument is stored in *folder once arguments are validated.
func newRootCmd(folder *string, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jpg2pdf <folder>",
		Short: "Combine all JPGs in a folder (named 0.jpg, 1.jpg, ...) into one PDF",
		Long: `jpg2pdf reads every .jpg/.jpeg file in a folder whose name is an integer
(0.jpg, 1.jpg, 10.jpeg, ...), sorts them numerically and writes a single PDF
with one page per image at 100 DPI. Files with other names are ignored.

Settings may also come from jpg2pdf.yaml (in the current directory or the
user config directory) and from JPG2PDF_* environment variables.`,
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			*folder = args[0]
			return runCombine(cmd, args[0], stdout)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate(versionTemplate)

	cmd.Flags().StringP("output", "o", "", "output PDF filename (default: <folder>.pdf)")
	cmd.Flags().Bool("dry-run", false, "print the page order as YAML without writing a PDF")
	cmd.Flags().String("log-level", "", "diagnostic level: debug, info, warn, or error (default warn)")
	cmd.Flags().String("config", "", "config file (default: ./jpg2pdf.yaml or "+config.Dir()+"/jpg2pdf.yaml)")

	return cmd
}

func runCombine(cmd *cobra.Command, folder string, stdout io.Writer) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	v := config.New(cfgFile)
	if err := config.Bind(v, cmd.Flags()); err != nil {
		return err
	}
	used, err := config.Read(v)
	if err != nil {
		return err
	}
	cfg := config.Combine(v, folder, dryRun)

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()
	if used != "" {
		log.Infow("using config file", "path", used)
	}

	_, err = assemble.Run(cfg, "jpg2pdf "+version, stdout, log)
	return err
}

// report writes the user-facing message for err to w.
func report(w io.Writer, folder string, err error) {
	switch {
	case errors.Is(err, discover.ErrNotADirectory):
		fmt.Fprintf(w, "Error: '%s' is not a directory.\n", folder)
	case errors.Is(err, discover.ErrNoImages):
		fmt.Fprintln(w, "No appropriately named JPGs found (e.g. '0.jpg', '1.jpg', ...).")
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}

// execute runs the CLI with args and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	var folder string
	cmd := newRootCmd(&folder, stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		report(stderr, folder, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
