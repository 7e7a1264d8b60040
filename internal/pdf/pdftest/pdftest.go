// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftest reads back generated documents with rsc.io/pdf so tests
// can check page count, order and geometry independently of the writer.
package pdftest

import (
	"bytes"
	"fmt"
	"io"
	"os"

	rscpdf "rsc.io/pdf"
)

// Page describes one page of a parsed document.
type Page struct {
	// MediaWidth and MediaHeight are the page size in points.
	MediaWidth  float64
	MediaHeight float64

	// ImageWidth and ImageHeight are the pixel size of the /image XObject
	// placed on the page.
	ImageWidth  int
	ImageHeight int

	// ImageFilter is the image stream filter name, e.g. "DCTDecode".
	ImageFilter string

	// Content is the decoded page content stream.
	Content string
}

// ReadFile parses the PDF at path.
func ReadFile(path string) ([]Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Pages(data)
}

// Pages parses data and returns its pages in page-tree order.
func Pages(data []byte) (pages []Page, err error) {
	// rsc.io/pdf panics on some malformed input instead of returning errors.
	defer func() {
		if r := recover(); r != nil {
			pages, err = nil, fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	r, err := rscpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	n := r.NumPage()
	pages = make([]Page, 0, n)
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		mb := p.V.Key("MediaBox")
		if mb.Len() != 4 {
			return nil, fmt.Errorf("page %d: /MediaBox has %d entries", i, mb.Len())
		}
		img := p.Resources().Key("XObject").Key("image")
		if img.IsNull() {
			return nil, fmt.Errorf("page %d: no /image XObject", i)
		}

		rc := p.V.Key("Contents").Reader()
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("page %d: reading contents: %w", i, err)
		}

		pages = append(pages, Page{
			MediaWidth:  mb.Index(2).Float64() - mb.Index(0).Float64(),
			MediaHeight: mb.Index(3).Float64() - mb.Index(1).Float64(),
			ImageWidth:  int(img.Key("Width").Int64()),
			ImageHeight: int(img.Key("Height").Int64()),
			ImageFilter: img.Key("Filter").Name(),
			Content:     string(content),
		})
	}
	return pages, nil
}
