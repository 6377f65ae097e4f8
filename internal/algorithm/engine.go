package algorithm

import (
	"encoding/json"
	"fmt"
	"github.com/dabolichin/ligence-task/internal/raster"
	"sort"
)

// Engine routes transform requests and instruction payloads to the algorithm
// registered under their tag. Unknown tags are rejected, never defaulted.
type Engine struct {
	algorithms map[string]Algorithm
}

func NewEngine(algorithms ...Algorithm) *Engine {
	registry := make(map[string]Algorithm, len(algorithms))
	for _, alg := range algorithms {
		registry[alg.Name()] = alg
	}

	return &Engine{algorithms: registry}
}

// Algorithm returns the transform registered under name.
func (e *Engine) Algorithm(name string) (Algorithm, error) {
	const op = "algorithm.Engine.Algorithm"

	alg, ok := e.algorithms[name]
	if !ok {
		return nil, fmt.Errorf("%s: %q: %w", op, name, ErrUnknownAlgorithm)
	}

	return alg, nil
}

// Available lists registered algorithm tags in stable order.
func (e *Engine) Available() []string {
	names := make([]string, 0, len(e.algorithms))
	for name := range e.algorithms {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Apply runs the named transform against src.
func (e *Engine) Apply(src *raster.Raster, algorithmName string, count int) (*Result, error) {
	const op = "algorithm.Engine.Apply"

	alg, err := e.Algorithm(algorithmName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return alg.Apply(src, count)
}

// Reverse replays instructions through the algorithm they were produced by.
func (e *Engine) Reverse(modified *raster.Raster, instr *Instructions) (*raster.Raster, error) {
	const op = "algorithm.Engine.Reverse"

	if instr == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrMissingOperations)
	}

	alg, err := e.Algorithm(instr.AlgorithmType)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return alg.Reverse(modified, instr)
}

// ParseInstructions decodes a serialized instruction payload. algorithmType
// is the tag recorded next to the payload; a conflicting tag inside the
// payload itself is rejected, as is a channel layout the operations do not
// fit.
func (e *Engine) ParseInstructions(algorithmType string, data json.RawMessage) (*Instructions, error) {
	const op = "algorithm.Engine.ParseInstructions"

	alg, err := e.Algorithm(algorithmType)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var envelope struct {
		AlgorithmType string          `json:"algorithm_type"`
		ImageMode     raster.Mode     `json:"image_mode"`
		Operations    json.RawMessage `json:"operations"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrInstructionParse, err)
	}

	if envelope.AlgorithmType != "" && envelope.AlgorithmType != algorithmType {
		return nil, fmt.Errorf("%s: payload tagged %q, expected %q: %w",
			op, envelope.AlgorithmType, algorithmType, ErrInstructionParse)
	}

	channels := envelope.ImageMode.Channels()
	if channels == 0 {
		return nil, fmt.Errorf("%s: unknown image mode %q: %w", op, envelope.ImageMode, ErrInstructionParse)
	}

	if envelope.Operations == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrMissingOperations)
	}

	operations, err := alg.DecodeOperations(envelope.Operations)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i, o := range operations {
		if channels > 1 && o.Channel == nil {
			return nil, fmt.Errorf("%s: operation %d is missing a channel for mode %q: %w",
				op, i, envelope.ImageMode, ErrInstructionParse)
		}
		if channels == 1 && o.Channel != nil && *o.Channel != 0 {
			return nil, fmt.Errorf("%s: operation %d addresses channel %d of a single-channel image: %w",
				op, i, *o.Channel, ErrInstructionParse)
		}
	}

	return &Instructions{
		AlgorithmType: algorithmType,
		ImageMode:     envelope.ImageMode,
		Operations:    operations,
	}, nil
}
