// Package output encodes rendered frames to image files.
package output

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Format names an output encoding.
type Format string

const (
	WebP Format = "webp"
	TGA  Format = "tga"
	PNG  Format = "png"
)

// Formats lists every supported encoding.
var Formats = []Format{WebP, TGA, PNG}

// ParseFormat accepts a format name in any case, with or without a leading dot.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "."))
	switch f {
	case WebP, TGA, PNG:
		return f, nil
	case "":
		return WebP, nil
	}
	return "", fmt.Errorf("output: unknown format %q (have %v)", s, Formats)
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Encode writes img to w in format f.
func Encode(w io.Writer, f Format, img image.Image) error {
	var err error
	switch f {
	case WebP:
		err = nativewebp.Encode(w, img, nil)
	case TGA:
		err = tga.Encode(w, img)
	case PNG:
		err = png.Encode(w, img)
	default:
		return fmt.Errorf("output: unknown format %q", f)
	}
	if err != nil {
		return fmt.Errorf("output: encode %s: %w", f, err)
	}
	return nil
}

// Save encodes img into path, creating parent directories as needed.
func Save(path string, f Format, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("output: mkdir %s: %w", filepath.Dir(path), err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %s: %w", path, err)
	}

	if err := Encode(file, f, img); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("output: close %s: %w", path, err)
	}
	return nil
}
