// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assemble decodes discovered images into RGB bitmaps and combines
// them into a single PDF document.
package assemble

import (
	"fmt"
	"image"
	_ "image/jpeg" // register the JPEG decoder
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"github.com/pdiddy/jpg2pdf/internal/discover"
	"github.com/pdiddy/jpg2pdf/internal/pdf"
	"github.com/pdiddy/jpg2pdf/pkg/types"
)

// fallbackOutput names the PDF when the folder has no usable base name
// (e.g. the filesystem root).
const fallbackOutput = "output.pdf"

// Result describes a completed combine run.
type Result struct {
	Pages  int
	Output string
	Bytes  int64
}

// DefaultOutput returns "<basename(folder)>.pdf", relative to the working
// directory.
func DefaultOutput(folder string) string {
	clean := filepath.Clean(folder)
	if abs, err := filepath.Abs(clean); err == nil {
		clean = abs
	}
	base := filepath.Base(clean)
	if base == "." || base == string(filepath.Separator) || base == "" {
		return fallbackOutput
	}
	return base + ".pdf"
}

// LoadBitmap opens path, decodes it and converts it to RGB. The file is
// closed before LoadBitmap returns, whether or not decoding succeeded.
func LoadBitmap(path string) (*pdf.Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return FromImage(img), nil
}

// FromImage copies src into a new RGB bitmap. Any alpha channel is dropped
// without compositing: a fully transparent pixel keeps its color values.
func FromImage(src image.Image) *pdf.Bitmap {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	nrgba, ok := src.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Copy(nrgba, image.Point{}, src, b, draw.Src, nil)
	}

	bm := pdf.NewBitmap(w, h)
	for y := 0; y < h; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
		out := bm.Pix[y*w*3 : (y+1)*w*3]
		for x := 0; x < w; x++ {
			out[x*3] = row[x*4]
			out[x*3+1] = row[x*4+1]
			out[x*3+2] = row[x*4+2]
		}
	}
	return bm
}

// Assemble loads every entry in order. It stops at the first image that
// cannot be decoded.
func Assemble(entries []types.ImageEntry, log *zap.SugaredLogger) ([]*pdf.Bitmap, error) {
	pages := make([]*pdf.Bitmap, 0, len(entries))
	for _, e := range entries {
		bm, err := LoadBitmap(e.Path)
		if err != nil {
			return nil, err
		}
		log.Debugw("decoded page", "page", len(pages)+1, "index", e.Index, "path", e.Path, "width", bm.Width, "height", bm.Height)
		pages = append(pages, bm)
	}
	return pages, nil
}

// Run discovers, decodes and writes the PDF for cfg. On success it prints
// the summary line to w. With cfg.DryRun it prints the page manifest to w
// instead and touches nothing.
func Run(cfg types.CombineConfig, producer string, w io.Writer, log *zap.SugaredLogger) (Result, error) {
	entries, err := discover.Discover(cfg.Folder)
	if err != nil {
		return Result{}, err
	}
	log.Infow("discovered images", "folder", cfg.Folder, "count", len(entries))

	output := cfg.Output
	if output == "" {
		output = DefaultOutput(cfg.Folder)
	}

	if cfg.DryRun {
		if err := discover.WriteManifest(w, cfg.Folder, output, entries); err != nil {
			return Result{}, err
		}
		return Result{Pages: len(entries), Output: output}, nil
	}

	pages, err := Assemble(entries, log)
	if err != nil {
		return Result{}, err
	}

	res := cfg.Resolution
	if res <= 0 {
		res = types.DefaultResolution
	}
	doc := &pdf.Document{Pages: pages, Resolution: res, Producer: producer}
	if err := pdf.WriteFile(output, doc, pdf.Config{}); err != nil {
		return Result{}, err
	}

	result := Result{Pages: len(pages), Output: output}
	if info, err := os.Stat(output); err == nil {
		result.Bytes = info.Size()
	}
	log.Infow("wrote pdf", "output", output, "pages", result.Pages, "size", humanize.Bytes(uint64(result.Bytes)))

	fmt.Fprintf(w, "Combined %d images into '%s'.\n", result.Pages, result.Output)
	return result, nil
}
