// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdf serializes a sequence of RGB bitmaps into a PDF document with
// one full-bleed image per page.
package pdf

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image/jpeg"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zlib"
)

// Version is the PDF header version written by Write.
const Version = "1.4"

// ErrNoPages is returned when a document holds no bitmaps.
var ErrNoPages = errors.New("document has no pages")

// Document is the ordered page sequence handed to Write.
type Document struct {
	// Pages holds one bitmap per page, in output order.
	Pages []*Bitmap

	// Resolution is the DPI used to size each page from its pixel
	// dimensions. Zero means 100.
	Resolution float64

	// Producer is recorded in the Info dictionary and header comment.
	Producer string

	// Created is recorded as /CreationDate. Zero means time.Now().
	Created time.Time
}

// Config controls encoding details that are not part of the document.
type Config struct {
	// Quality is the JPEG quality for embedded images. Zero means
	// jpeg.DefaultQuality.
	Quality int

	// ID, when set, is used for both halves of the trailer /ID instead of a
	// random UUID.
	ID []byte
}

// Object numbers. Each page uses three consecutive objects starting at
// firstPageObj: the page, its image XObject and its content stream.
const (
	catalogObj   = 1
	pagesObj     = 2
	infoObj      = 3
	firstPageObj = 4
	objsPerPage  = 3
)

func pageObj(i int) int    { return firstPageObj + i*objsPerPage }
func imageObj(i int) int   { return pageObj(i) + 1 }
func contentObj(i int) int { return pageObj(i) + 2 }

// WriteFile creates (or truncates) path and writes doc to it. A failure
// part way through may leave a partial file behind.
func WriteFile(path string, doc *Document, cfg Config) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	if err := Write(f, doc, cfg); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Write serializes doc to out.
func Write(out io.Writer, doc *Document, cfg Config) error {
	if doc == nil || len(doc.Pages) == 0 {
		return ErrNoPages
	}
	res := doc.Resolution
	if res <= 0 {
		res = 100
	}
	quality := cfg.Quality
	if quality <= 0 {
		quality = jpeg.DefaultQuality
	}
	created := doc.Created
	if created.IsZero() {
		created = time.Now()
	}

	w := newObjWriter(out)
	w.printf("%%PDF-%s\n%%\xE2\xE3\xCF\xD3\n", Version)
	if doc.Producer != "" {
		w.printf("%%%s\n", strings.ReplaceAll(doc.Producer, "\n", " "))
	}

	w.object(catalogObj, fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", pagesObj))

	kids := make([]string, len(doc.Pages))
	for i := range doc.Pages {
		kids[i] = fmt.Sprintf("%d 0 R", pageObj(i))
	}
	w.object(pagesObj, fmt.Sprintf("<< /Type /Pages /Count %d /Kids [ %s ] >>",
		len(doc.Pages), strings.Join(kids, " ")))

	info := "<< /CreationDate " + literal(dateString(created))
	if doc.Producer != "" {
		info += " /Producer " + literal(doc.Producer)
	}
	w.object(infoObj, info+" >>")

	var jpg bytes.Buffer
	for i, bm := range doc.Pages {
		pw := number(float64(bm.Width) * 72 / res)
		ph := number(float64(bm.Height) * 72 / res)

		w.object(pageObj(i), fmt.Sprintf(
			"<< /Type /Page /Parent %d 0 R /MediaBox [ 0 0 %s %s ] /Resources << /ProcSet [ /PDF /ImageC ] /XObject << /image %d 0 R >> >> /Contents %d 0 R >>",
			pagesObj, pw, ph, imageObj(i), contentObj(i)))

		jpg.Reset()
		if err := jpeg.Encode(&jpg, bm.RGBA(), &jpeg.Options{Quality: quality}); err != nil {
			return fmt.Errorf("encoding page %d: %w", i+1, err)
		}
		w.stream(imageObj(i), fmt.Sprintf(
			"/Type /XObject /Subtype /Image /Width %d /Height %d /ColorSpace /DeviceRGB /BitsPerComponent 8 /Filter /DCTDecode",
			bm.Width, bm.Height), jpg.Bytes())

		content, err := deflate([]byte(fmt.Sprintf("q %s 0 0 %s 0 0 cm /image Do Q\n", pw, ph)))
		if err != nil {
			return fmt.Errorf("compressing page %d contents: %w", i+1, err)
		}
		w.stream(contentObj(i), "/Filter /FlateDecode", content)
	}

	id := cfg.ID
	if len(id) == 0 {
		u := uuid.New()
		id = u[:]
	}
	w.trailer(catalogObj, infoObj, id)
	return w.flush()
}

// objWriter tracks byte offsets of indirect objects for the xref table.
// The first write error is sticky and reported by flush.
type objWriter struct {
	bw      *bufio.Writer
	n       int64
	offsets map[int]int64
	maxObj  int
	err     error
}

func newObjWriter(out io.Writer) *objWriter {
	return &objWriter{bw: bufio.NewWriter(out), offsets: make(map[int]int64)}
}

func (w *objWriter) write(p []byte) {
	if w.err != nil {
		return
	}
	n, err := w.bw.Write(p)
	w.n += int64(n)
	w.err = err
}

func (w *objWriter) printf(format string, args ...any) {
	w.write([]byte(fmt.Sprintf(format, args...)))
}

func (w *objWriter) begin(num int) {
	w.offsets[num] = w.n
	if num > w.maxObj {
		w.maxObj = num
	}
	w.printf("%d 0 obj\n", num)
}

func (w *objWriter) object(num int, body string) {
	w.begin(num)
	w.printf("%s\nendobj\n", body)
}

// stream writes a stream object. dict holds the dictionary entries
// without the enclosing << >> and without /Length.
func (w *objWriter) stream(num int, dict string, data []byte) {
	w.begin(num)
	w.printf("<< %s /Length %d >>\nstream\n", dict, len(data))
	w.write(data)
	w.printf("\nendstream\nendobj\n")
}

func (w *objWriter) trailer(root, info int, id []byte) {
	xref := w.n
	size := w.maxObj + 1
	w.printf("xref\n0 %d\n", size)
	w.printf("0000000000 65535 f \n")
	for i := 1; i < size; i++ {
		if off, ok := w.offsets[i]; ok {
			w.printf("%010d 00000 n \n", off)
		} else {
			w.printf("0000000000 65535 f \n")
		}
	}
	w.printf("trailer\n<< /Size %d /Root %d 0 R /Info %d 0 R /ID [ <%X> <%X> ] >>\n", size, root, info, id, id)
	w.printf("startxref\n%d\n%%%%EOF\n", xref)
}

func (w *objWriter) flush() error {
	if w.err != nil {
		return w.err
	}
	return w.bw.Flush()
}

func deflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// number formats v with at most three decimals and no trailing zeros.
func number(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}

// dateString formats t as a PDF date in UTC, e.g. D:20260102150405Z.
func dateString(t time.Time) string {
	return "D:" + t.UTC().Format("20060102150405") + "Z"
}

// literal encodes s as a PDF literal string.
func literal(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`, "\r", `\r`, "\n", `\n`)
	return "(" + r.Replace(s) + ")"
}
