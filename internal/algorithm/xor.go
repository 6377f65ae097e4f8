package algorithm

import (
	"encoding/json"
	"fmt"
	"github.com/dabolichin/ligence-task/internal/raster"
	"math/rand"
)

const xorName = "xor_transform"

// XORTransform flips random pixel bytes with byte-level XOR. Replaying the
// same operations in the same order restores the original exactly, so the
// reverse step is just a second application.
type XORTransform struct {
	rng *rand.Rand
}

// NewXORTransform returns a transform drawing operations from the shared
// math/rand source.
func NewXORTransform() *XORTransform {
	return &XORTransform{}
}

// NewSeededXORTransform returns a transform with its own deterministic
// source. Two seeded transforms with the same seed produce identical
// instruction sets for the same raster and count.
func NewSeededXORTransform(seed int64) *XORTransform {
	return &XORTransform{rng: rand.New(rand.NewSource(seed))}
}

func (x *XORTransform) Name() string {
	return xorName
}

func (x *XORTransform) Apply(src *raster.Raster, count int) (*Result, error) {
	const op = "algorithm.XORTransform.Apply"

	if src == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilRaster)
	}

	channels := src.Mode.Channels()
	if channels == 0 {
		return nil, fmt.Errorf("%s: unsupported raster mode %q", op, src.Mode)
	}

	if count < 0 {
		count = 0
	}
	if max := src.Width * src.Height * channels; count > max {
		count = max
	}

	operations := x.generateOperations(src.Width, src.Height, channels, count)

	modified := src.Clone()
	if err := applyOperations(modified, operations); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Result{
		Modified: modified,
		Instructions: &Instructions{
			AlgorithmType: xorName,
			ImageMode:     src.Mode,
			Operations:    operations,
		},
	}, nil
}

func (x *XORTransform) Reverse(modified *raster.Raster, instr *Instructions) (*raster.Raster, error) {
	const op = "algorithm.XORTransform.Reverse"

	if modified == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilRaster)
	}
	if instr == nil || instr.Operations == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrMissingOperations)
	}

	restored := modified.Clone()
	if err := applyOperations(restored, instr.Operations); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return restored, nil
}

func (x *XORTransform) DecodeOperations(data json.RawMessage) ([]PixelOperation, error) {
	const op = "algorithm.XORTransform.DecodeOperations"

	var operations []PixelOperation
	if err := json.Unmarshal(data, &operations); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrInstructionParse, err)
	}

	for i, o := range operations {
		if o.Row < 0 || o.Col < 0 {
			return nil, fmt.Errorf("%s: operation %d has negative coordinates: %w", op, i, ErrInstructionParse)
		}
		if o.Parameter == 0 {
			return nil, fmt.Errorf("%s: operation %d parameter outside 1..255: %w", op, i, ErrInstructionParse)
		}
		if o.Channel != nil && *o.Channel < 0 {
			return nil, fmt.Errorf("%s: operation %d has negative channel: %w", op, i, ErrInstructionParse)
		}
	}

	return operations, nil
}

func (x *XORTransform) generateOperations(width, height, channels, count int) []PixelOperation {
	operations := make([]PixelOperation, 0, count)

	for i := 0; i < count; i++ {
		o := PixelOperation{
			Row:       x.intn(height),
			Col:       x.intn(width),
			Parameter: uint8(1 + x.intn(255)),
		}
		if channels > 1 {
			channel := x.intn(channels)
			o.Channel = &channel
		}
		operations = append(operations, o)
	}

	return operations
}

func (x *XORTransform) intn(n int) int {
	if x.rng != nil {
		return x.rng.Intn(n)
	}
	return rand.Intn(n)
}

func applyOperations(r *raster.Raster, operations []PixelOperation) error {
	channels := r.Mode.Channels()

	for i, o := range operations {
		channel := 0
		if o.Channel != nil {
			channel = *o.Channel
		} else if channels > 1 {
			return fmt.Errorf("operation %d is missing a channel for mode %q: %w", i, r.Mode, ErrInvalidOperation)
		}

		if o.Row < 0 || o.Row >= r.Height || o.Col < 0 || o.Col >= r.Width || channel < 0 || channel >= channels {
			return fmt.Errorf("operation %d (row=%d col=%d channel=%d) out of bounds for %dx%d %s raster: %w",
				i, o.Row, o.Col, channel, r.Width, r.Height, r.Mode, ErrInvalidOperation)
		}

		r.Pix[r.PixOffset(o.Row, o.Col, channel)] ^= o.Parameter
	}

	return nil
}
