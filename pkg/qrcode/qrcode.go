// Package qrcode renders ID card payloads as PNG QR codes.
package qrcode

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	goqrcode "github.com/skip2/go-qrcode"
)

// Defaults match the printed ID card layout.
const (
	DefaultModuleSize = 8
	DefaultBorder     = 2
)

// Encoder renders text into a PNG QR code.
type Encoder interface {
	PNG(content string) ([]byte, error)
}

// Options controls module size (pixels per module) and quiet-zone width (modules).
// Error correction is always level M.
type Options struct {
	ModuleSize int
	Border     int
}

type encoder struct {
	opts Options
}

// New returns an Encoder. A non-positive module size or a negative border takes the default.
func New(opts Options) Encoder {
	if opts.ModuleSize <= 0 {
		opts.ModuleSize = DefaultModuleSize
	}
	if opts.Border < 0 {
		opts.Border = DefaultBorder
	}
	return &encoder{opts: opts}
}

// NewDefault returns the encoder used for ID cards: level M, 8 px modules, 2-module border.
func NewDefault() Encoder {
	return New(Options{ModuleSize: DefaultModuleSize, Border: DefaultBorder})
}

func (e *encoder) PNG(content string) ([]byte, error) {
	if content == "" {
		return nil, fmt.Errorf("qrcode: empty content")
	}

	q, err := goqrcode.New(content, goqrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("qrcode: encode: %w", err)
	}
	q.DisableBorder = true

	// A negative size makes each module exactly -size pixels wide.
	symbol := q.Image(-e.opts.ModuleSize)

	pad := e.opts.Border * e.opts.ModuleSize
	b := symbol.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, b.Dx()+2*pad, b.Dy()+2*pad))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(canvas, b.Add(image.Pt(pad, pad)).Sub(b.Min), symbol, b.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("qrcode: png: %w", err)
	}
	return buf.Bytes(), nil
}
