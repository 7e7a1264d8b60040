// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdf

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/jpg2pdf/internal/pdf/pdftest"
)

// solid returns a w x h bitmap filled with c.
func solid(w, h int, c color.RGBA) *Bitmap {
	b := NewBitmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.Set(x, y, c)
		}
	}
	return b
}

func TestWrite_PagesInOrder(t *testing.T) {
	doc := &Document{
		Pages: []*Bitmap{
			solid(100, 50, color.RGBA{R: 255, A: 255}),
			solid(40, 80, color.RGBA{G: 255, A: 255}),
			solid(250, 10, color.RGBA{B: 255, A: 255}),
		},
		Resolution: 100,
		Producer:   "jpg2pdf test",
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc, Config{}))

	pages, err := pdftest.Pages(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, pages, 3)

	want := []struct {
		w, h   float64
		pw, ph int
	}{
		{72, 36, 100, 50},
		{28.8, 57.6, 40, 80},
		{180, 7.2, 250, 10},
	}
	for i, p := range pages {
		assert.InDelta(t, want[i].w, p.MediaWidth, 0.001, "page %d width", i)
		assert.InDelta(t, want[i].h, p.MediaHeight, 0.001, "page %d height", i)
		assert.Equal(t, want[i].pw, p.ImageWidth, "page %d image width", i)
		assert.Equal(t, want[i].ph, p.ImageHeight, "page %d image height", i)
		assert.Equal(t, "DCTDecode", p.ImageFilter)
	}
	assert.Equal(t, "q 28.8 0 0 57.6 0 0 cm /image Do Q\n", pages[1].Content)
}

func TestWrite_HeaderAndTrailer(t *testing.T) {
	doc := &Document{
		Pages:    []*Bitmap{solid(8, 8, color.RGBA{A: 255})},
		Producer: "jpg2pdf (dev)",
		Created:  time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
	}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc, Config{ID: []byte{0xde, 0xad, 0xbe, 0xef}}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "%PDF-1.4\n"))
	assert.True(t, strings.HasSuffix(out, "\n%%EOF\n"), "trailer must end with the %%%%EOF marker, got %q", out[len(out)-20:])
	assert.Contains(t, out, "%jpg2pdf (dev)\n")
	assert.Contains(t, out, `/Producer (jpg2pdf \(dev\))`)
	assert.Contains(t, out, "/CreationDate (D:20260102150405Z)")
	assert.Contains(t, out, "/ID [ <DEADBEEF> <DEADBEEF> ]")
	assert.Contains(t, out, "/Filter /DCTDecode")
	assert.Contains(t, out, "/ColorSpace /DeviceRGB")
}

func TestWrite_DefaultResolution(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, &Document{Pages: []*Bitmap{solid(200, 100, color.RGBA{A: 255})}}, Config{}))

	pages, err := pdftest.Pages(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.InDelta(t, 144.0, pages[0].MediaWidth, 0.001)
	assert.InDelta(t, 72.0, pages[0].MediaHeight, 0.001)
}

func TestWrite_NoPages(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Write(&buf, &Document{}, Config{}), ErrNoPages)
	assert.ErrorIs(t, Write(&buf, nil, Config{}), ErrNoPages)
	assert.Zero(t, buf.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_PropagatesWriteError(t *testing.T) {
	doc := &Document{Pages: []*Bitmap{solid(4, 4, color.RGBA{A: 255})}}
	err := Write(failingWriter{}, doc, Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	doc := &Document{Pages: []*Bitmap{solid(4, 4, color.RGBA{A: 255}), solid(4, 4, color.RGBA{A: 255})}}
	require.NoError(t, WriteFile(path, doc, Config{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	pages, err := pdftest.Pages(data)
	require.NoError(t, err)
	assert.Len(t, pages, 2)
}

func TestWriteFile_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.pdf")
	doc := &Document{Pages: []*Bitmap{solid(4, 4, color.RGBA{A: 255})}}
	assert.Error(t, WriteFile(path, doc, Config{}))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "460.8", number(640*72/100.0))
	assert.Equal(t, "72", number(72))
	assert.Equal(t, "0.333", number(1.0/3))
}

func TestWrite_EndsWithEOFMarker(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, &Document{Pages: []*Bitmap{solid(2, 2, color.RGBA{A: 255})}}, Config{}))

	out := buf.Bytes()
	tail := out[bytes.LastIndex(out, []byte("startxref")):]
	assert.Regexp(t, `^startxref\n\d+\n%%EOF\n$`, string(tail))
}

func TestBitmap(t *testing.T) {
	b := NewBitmap(2, 1)
	b.Set(1, 0, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	b.Set(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 0})
	b.Set(9, 9, color.White)

	assert.Equal(t, []byte{200, 100, 50, 1, 2, 3}, b.Pix)
	assert.Equal(t, color.RGBA{R: 1, G: 2, B: 3, A: 255}, b.At(1, 0))
	assert.Equal(t, color.RGBA{}, b.At(5, 5))

	rgba := b.RGBA()
	assert.Equal(t, b.Bounds(), rgba.Bounds())
	assert.Equal(t, []byte{200, 100, 50, 255, 1, 2, 3, 255}, rgba.Pix)
}
