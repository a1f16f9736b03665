package debug

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HugoSmits86/nativewebp"
)

// ErrUnsupportedFormat is returned for image formats other than png and webp.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Encode writes img to w as "png" or "webp" (lossless).
func Encode(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "png":
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encoding PNG: %w", err)
		}
	case "webp":
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("encoding WebP: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return nil
}

// FormatFromPath returns the format implied by a file extension.
func FormatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return "png", nil
	case ".webp":
		return "webp", nil
	default:
		return "", fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
	}
}

// Snapshot writes img to path, picking the format from the extension.
func Snapshot(path string, img image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	if err := Encode(file, img, format); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Capture saves images under timestamped names in one directory.
type Capture struct {
	outputDir string
	prefix    string
	format    string
	now       func() time.Time
}

// NewCapture creates a capture writing prefix_<timestamp>.<format> files.
func NewCapture(outputDir, prefix, format string) *Capture {
	return &Capture{
		outputDir: outputDir,
		prefix:    prefix,
		format:    strings.ToLower(format),
		now:       time.Now,
	}
}

// Filename generates the next file name without saving.
func (c *Capture) Filename() string {
	timestamp := c.now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.%s", c.prefix, timestamp, c.format)
	if c.outputDir != "" {
		filename = filepath.Join(c.outputDir, filename)
	}
	return filename
}

// Save writes img and returns the file name used.
func (c *Capture) Save(img image.Image) (string, error) {
	filename := c.Filename()
	if err := Snapshot(filename, img); err != nil {
		return "", err
	}
	return filename, nil
}
