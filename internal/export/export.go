// Package export writes an entropy profile to files: CSV and JSON for
// further processing, PNG and SVG for reports.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/san-kum/entui/internal/entropy"
)

// ErrUnknownFormat is returned for a format name that has no writer.
var ErrUnknownFormat = errors.New("export: unknown format")

type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
	PNG  Format = "png"
	SVG  Format = "svg"
)

// Formats lists the supported formats in display order.
var Formats = []Format{CSV, JSON, PNG, SVG}

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return "", fmt.Errorf("%w: no extension in %q", ErrUnknownFormat, path)
	}
	return ParseFormat(path[i+1:])
}

// Options tune the output. Zero values select defaults.
type Options struct {
	// Source names the analyzed file in JSON reports and chart titles.
	Source string
	// Threshold marks high-entropy regions.
	Threshold float64
	// Width and Height size PNG output in pixels.
	Width, Height int
	// Columns and Rows size the braille canvas behind SVG output.
	Columns, Rows int
	// Scale is the SVG size of one sub-pixel.
	Scale float64
}

func (o Options) withDefaults() Options {
	if o.Threshold <= 0 {
		o.Threshold = entropy.DefaultHighThreshold
	}
	if o.Width <= 0 {
		o.Width = 1200
	}
	if o.Height <= 0 {
		o.Height = 400
	}
	if o.Columns <= 0 {
		o.Columns = 120
	}
	if o.Rows <= 0 {
		o.Rows = 20
	}
	if o.Scale <= 0 {
		o.Scale = 4
	}
	return o
}

// Write encodes ds in format f to w.
func Write(w io.Writer, f Format, ds *entropy.Dataset, opts Options) error {
	opts = opts.withDefaults()
	switch f {
	case CSV:
		return WriteCSV(w, ds)
	case JSON:
		return WriteJSON(w, ds, opts)
	case PNG:
		return WritePNG(w, ds, opts)
	case SVG:
		return WriteSVG(w, ds, opts)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// ToFile writes ds to path, creating or truncating it.
func ToFile(path string, f Format, ds *entropy.Dataset, opts Options) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return Write(file, f, ds, opts)
}
