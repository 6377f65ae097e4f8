// Package raster holds the decoded pixel-buffer representation shared by the
// transform engine, the file store and the comparison engine. A Raster is a
// flat row-major byte buffer plus its dimensions and channel layout, so the
// same image always yields the same bytes regardless of which service decoded
// it.
package raster

import (
	"fmt"
	"github.com/disintegration/imaging"
	"image"
	"image/color"
)

// Mode names the channel layout of a raster. The values match the mode names
// carried inside modification instructions, so they survive serialization
// between services.
type Mode string

const (
	ModeGray Mode = "L"
	ModeRGB  Mode = "RGB"
	ModeRGBA Mode = "RGBA"
)

// Channels returns the number of bytes per pixel for the mode, or 0 for an
// unknown mode.
func (m Mode) Channels() int {
	switch m {
	case ModeGray:
		return 1
	case ModeRGB:
		return 3
	case ModeRGBA:
		return 4
	default:
		return 0
	}
}

// Raster is a decoded image: Pix holds Width*Height*channels bytes in
// row-major order, rows top to bottom, channels interleaved per pixel.
type Raster struct {
	Width  int
	Height int
	Mode   Mode
	Pix    []byte
}

func New(width, height int, mode Mode) *Raster {
	return &Raster{
		Width:  width,
		Height: height,
		Mode:   mode,
		Pix:    make([]byte, width*height*mode.Channels()),
	}
}

// FromImage converts a decoded image into a Raster. Grayscale images keep a
// single channel, images with an alpha channel keep four, everything else is
// flattened to three-channel RGB.
func FromImage(img image.Image) *Raster {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	switch src := img.(type) {
	case *image.Gray:
		r := New(w, h, ModeGray)
		for y := 0; y < h; y++ {
			offset := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(r.Pix[y*w:(y+1)*w], src.Pix[offset:offset+w])
		}
		return r
	case *image.NRGBA:
		r := New(w, h, ModeRGBA)
		rowLen := w * 4
		for y := 0; y < h; y++ {
			offset := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(r.Pix[y*rowLen:(y+1)*rowLen], src.Pix[offset:offset+rowLen])
		}
		return r
	default:
		r := New(w, h, ModeRGB)
		i := 0
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				r.Pix[i] = c.R
				r.Pix[i+1] = c.G
				r.Pix[i+2] = c.B
				i += 3
			}
		}
		return r
	}
}

// Clone returns a deep copy. Transforms never touch their input raster.
func (r *Raster) Clone() *Raster {
	pix := make([]byte, len(r.Pix))
	copy(pix, r.Pix)

	return &Raster{
		Width:  r.Width,
		Height: r.Height,
		Mode:   r.Mode,
		Pix:    pix,
	}
}

// PixOffset returns the index into Pix addressed by row, column and channel.
// Bounds are the caller's responsibility.
func (r *Raster) PixOffset(row, col, channel int) int {
	channels := r.Mode.Channels()
	return (row*r.Width+col)*channels + channel
}

// Image re-materializes the raster as a standard image for encoding.
// Three-channel rasters come back fully opaque.
func (r *Raster) Image() image.Image {
	rect := image.Rect(0, 0, r.Width, r.Height)

	switch r.Mode {
	case ModeGray:
		img := image.NewGray(rect)
		copy(img.Pix, r.Pix)
		return img
	case ModeRGBA:
		img := image.NewNRGBA(rect)
		copy(img.Pix, r.Pix)
		return img
	default:
		img := image.NewNRGBA(rect)
		for i, j := 0, 0; i+2 < len(r.Pix); i, j = i+3, j+4 {
			img.Pix[j] = r.Pix[i]
			img.Pix[j+1] = r.Pix[i+1]
			img.Pix[j+2] = r.Pix[i+2]
			img.Pix[j+3] = 0xff
		}
		return img
	}
}

// Load decodes the image at path into a Raster.
func Load(path string) (*Raster, error) {
	const op = "raster.Load"

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return FromImage(img), nil
}

// Save encodes the raster to path, picking the format from the file
// extension.
func Save(r *Raster, path string) error {
	const op = "raster.Save"

	if err := imaging.Save(r.Image(), path); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
