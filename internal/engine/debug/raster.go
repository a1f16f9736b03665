package debug

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/chewxy/math32"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/Faultbox/geomkit/pkg/math"
)

// Label is text anchored at a pixel position.
type Label struct {
	At    math.Vec2
	Text  string
	Color uint32
}

// RasterOptions controls how lines become pixels.
type RasterOptions struct {
	Width      int
	Height     int
	Background uint32
	LineWidth  float32
	// Supersample renders at this multiple of the output size and
	// downsamples with Catmull-Rom filtering. Values below 2 disable it.
	Supersample int
}

// DefaultRasterOptions returns a 1280x720 canvas with a dark gray background.
func DefaultRasterOptions() RasterOptions {
	return RasterOptions{
		Width:       1280,
		Height:      720,
		Background:  0x464646FF,
		LineWidth:   1,
		Supersample: 1,
	}
}

// RGBA unpacks a 0xRRGGBBAA color.
func RGBA(c uint32) color.NRGBA {
	return color.NRGBA{R: uint8(c >> 24), G: uint8(c >> 16), B: uint8(c >> 8), A: uint8(c)}
}

// Rasterize draws lines, then labels, onto a new canvas.
func Rasterize(lines []Line, labels []Label, opts RasterOptions) *image.RGBA {
	scale := opts.Supersample
	if scale < 2 {
		scale = 1
	}
	width, height := opts.Width*scale, opts.Height*scale

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(RGBA(opts.Background)), image.Point{}, draw.Src)

	lineWidth := opts.LineWidth
	if lineWidth <= 0 {
		lineWidth = 1
	}
	lineWidth *= float32(scale)

	z := vector.NewRasterizer(width, height)
	for _, l := range lines {
		a := l.A.Scale(float32(scale))
		b := l.B.Scale(float32(scale))
		a, b, ok := clip(a, b, float32(width), float32(height), lineWidth)
		if !ok {
			continue
		}
		z.Reset(width, height)
		strokeQuad(z, a, b, lineWidth)
		z.Draw(canvas, canvas.Bounds(), image.NewUniform(RGBA(l.Color)), image.Point{})
	}

	out := canvas
	if scale > 1 {
		out = image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
		xdraw.CatmullRom.Scale(out, out.Bounds(), canvas, canvas.Bounds(), xdraw.Src, nil)
	}

	for _, l := range labels {
		x, y := l.At.Pixel()
		d := &font.Drawer{
			Dst:  out,
			Src:  image.NewUniform(RGBA(l.Color)),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(x, y),
		}
		d.DrawString(l.Text)
	}

	return out
}

// strokeQuad adds a line of the given width as a filled quad.
// Degenerate lines become a width-sized square.
func strokeQuad(z *vector.Rasterizer, a, b math.Vec2, width float32) {
	half := width / 2
	d := b.Sub(a)
	length := d.Length()

	var nx, ny, tx, ty float32
	if length == 0 {
		nx, ny = 0, half
		tx, ty = half, 0
	} else {
		nx, ny = -d.Y/length*half, d.X/length*half
	}

	z.MoveTo(a.X-tx+nx, a.Y-ty+ny)
	z.LineTo(b.X+tx+nx, b.Y+ty+ny)
	z.LineTo(b.X+tx-nx, b.Y+ty-ny)
	z.LineTo(a.X-tx-nx, a.Y-ty-ny)
	z.ClosePath()
}

// clip trims a line to the canvas grown by margin on every side
// (Liang-Barsky). ok is false when nothing is left or an endpoint is not
// finite.
func clip(a, b math.Vec2, width, height, margin float32) (math.Vec2, math.Vec2, bool) {
	if !finite(a) || !finite(b) {
		return a, b, false
	}

	d := b.Sub(a)
	t0, t1 := float32(0), float32(1)
	edges := [4][2]float32{
		{-d.X, a.X + margin},
		{d.X, width + margin - a.X},
		{-d.Y, a.Y + margin},
		{d.Y, height + margin - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			t0 = max(t0, r)
		} else {
			t1 = min(t1, r)
		}
		if t0 > t1 {
			return a, b, false
		}
	}

	return a.Add(d.Scale(t0)), a.Add(d.Scale(t1)), true
}

func finite(v math.Vec2) bool {
	return !math32.IsInf(v.X, 0) && !math32.IsInf(v.Y, 0) && !math32.IsNaN(v.X) && !math32.IsNaN(v.Y)
}
