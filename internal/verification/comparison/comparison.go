// Package comparison decides whether two image files hold identical pixel
// data. Hashes are computed over the decoded raster bytes, not the encoded
// files, so differing compression of the same pixels still matches.
package comparison

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"github.com/dabolichin/ligence-task/internal/raster"
	"log/slog"
)

type Method string

const (
	MethodHashOnly  Method = "hash_only"
	MethodPixelOnly Method = "pixel_only"
	MethodBoth      Method = "both"
)

var (
	// ErrDimensionMismatch marks images whose width or height differ.
	ErrDimensionMismatch = errors.New("image dimensions do not match")

	// ErrModeMismatch marks images whose channel layouts differ.
	ErrModeMismatch = errors.New("image modes do not match")
)

// Result carries per-method outcomes. A method that did not run leaves its
// pointer nil, so "skipped" and "failed" stay distinguishable.
type Result struct {
	Method       Method
	HashMatch    *bool
	PixelMatch   *bool
	OriginalHash string
	ReversedHash string
}

// IsSuccessful reports whether every method that ran confirmed a match.
func (r *Result) IsSuccessful() bool {
	if r.HashMatch == nil && r.PixelMatch == nil {
		return false
	}
	if r.HashMatch != nil && !*r.HashMatch {
		return false
	}
	if r.PixelMatch != nil && !*r.PixelMatch {
		return false
	}

	return true
}

type Engine struct {
	log *slog.Logger
}

func NewEngine(log *slog.Logger) *Engine {
	return &Engine{log: log}
}

// Compare loads both images and checks them with the requested method.
// Mismatched dimensions or modes are hard errors rather than a false result:
// they mean the reversal produced a structurally different image.
func (e *Engine) Compare(originalPath, reversedPath string, method Method) (*Result, error) {
	const op = "comparison.Engine.Compare"

	original, err := raster.Load(originalPath)
	if err != nil {
		return nil, fmt.Errorf("%s: original: %w", op, err)
	}

	reversed, err := raster.Load(reversedPath)
	if err != nil {
		return nil, fmt.Errorf("%s: reversed: %w", op, err)
	}

	result := &Result{Method: method}

	if method == MethodHashOnly || method == MethodBoth {
		result.OriginalHash = pixelDigest(original)
		result.ReversedHash = pixelDigest(reversed)

		match := result.OriginalHash == result.ReversedHash
		result.HashMatch = &match
	}

	if method == MethodPixelOnly || method == MethodBoth {
		match, err := pixelsEqual(original, reversed)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result.PixelMatch = &match
	}

	e.log.Debug("comparison finished",
		slog.String("method", string(method)),
		slog.Bool("successful", result.IsSuccessful()),
	)

	return result, nil
}

// pixelDigest hashes the decoded pixel buffer.
func pixelDigest(r *raster.Raster) string {
	sum := sha256.Sum256(r.Pix)
	return hex.EncodeToString(sum[:])
}

func pixelsEqual(original, reversed *raster.Raster) (bool, error) {
	if original.Width != reversed.Width || original.Height != reversed.Height {
		return false, fmt.Errorf("%dx%d vs %dx%d: %w",
			original.Width, original.Height, reversed.Width, reversed.Height, ErrDimensionMismatch)
	}

	if original.Mode != reversed.Mode {
		return false, fmt.Errorf("%s vs %s: %w", original.Mode, reversed.Mode, ErrModeMismatch)
	}

	return bytes.Equal(original.Pix, reversed.Pix), nil
}
