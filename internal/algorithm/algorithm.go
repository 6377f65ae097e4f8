// Package algorithm implements reversible pixel transforms and the engine
// that dispatches on the algorithm tag recorded in modification instructions.
package algorithm

import (
	"encoding/json"
	"errors"
	"github.com/dabolichin/ligence-task/internal/raster"
)

var (
	// ErrNilRaster marks a transform invoked without a decoded image.
	ErrNilRaster = errors.New("raster is nil")

	// ErrMissingOperations marks instructions with no operation list at all.
	ErrMissingOperations = errors.New("instructions contain no operations")

	// ErrUnknownAlgorithm marks an algorithm tag no registered transform claims.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrInstructionParse marks instruction payloads that do not decode into
	// valid operations.
	ErrInstructionParse = errors.New("invalid instruction payload")

	// ErrInvalidOperation marks an operation that does not address the raster
	// it is applied to.
	ErrInvalidOperation = errors.New("operation does not address the raster")
)

// PixelOperation is a single reversible mutation of one byte of a raster.
// Channel is nil for single-channel images.
type PixelOperation struct {
	Row       int   `json:"row"`
	Col       int   `json:"col"`
	Channel   *int  `json:"channel"`
	Parameter uint8 `json:"parameter"`
}

// Instructions is the complete recipe for undoing one modification: the
// algorithm tag, the channel layout the operations assume and the ordered
// operation list.
type Instructions struct {
	AlgorithmType string           `json:"algorithm_type"`
	ImageMode     raster.Mode      `json:"image_mode"`
	Operations    []PixelOperation `json:"operations"`
}

// Result pairs a modified raster with the instructions that reverse it.
type Result struct {
	Modified     *raster.Raster
	Instructions *Instructions
}

// Algorithm is one reversible transform family. Implementations must
// guarantee that Reverse(Apply(src).Modified, Apply(src).Instructions)
// restores src byte for byte.
type Algorithm interface {
	// Name returns the tag recorded in instructions, e.g. "xor_transform".
	Name() string

	// Apply produces a modified copy of src plus the instructions that undo
	// it. src itself is never mutated. count is clamped to the addressable
	// byte count of src.
	Apply(src *raster.Raster, count int) (*Result, error)

	// Reverse replays instr against a copy of modified and returns the
	// restored raster.
	Reverse(modified *raster.Raster, instr *Instructions) (*raster.Raster, error)

	// DecodeOperations parses the serialized operation list of this family.
	DecodeOperations(data json.RawMessage) ([]PixelOperation, error)
}
