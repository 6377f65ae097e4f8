// Package verifier orchestrates one verification: fetch the instructions for
// a modification, reverse the variant, compare it against the stored
// original and persist the verdict. Every failure along the way becomes a
// completed record with all flags false; no path leaves a record pending and
// nothing is re-raised to the caller.
package verifier

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/dabolichin/ligence-task/internal/algorithm"
	"github.com/dabolichin/ligence-task/internal/lib/logger/sl"
	"github.com/dabolichin/ligence-task/internal/models"
	"github.com/dabolichin/ligence-task/internal/raster"
	"github.com/dabolichin/ligence-task/internal/verification/comparison"
	"github.com/dabolichin/ligence-task/internal/verification/retrieval"
	"github.com/dabolichin/ligence-task/internal/worker"
	"github.com/google/uuid"
	"log/slog"
	"os"
	"path/filepath"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ResultStore
type ResultStore interface {
	Exists(modificationID uuid.UUID) (bool, error)
	CreatePending(modificationID uuid.UUID) error
	SaveResult(modificationID uuid.UUID, outcome models.VerificationOutcome) error
	MarkFailed(modificationID uuid.UUID, message string)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=InstructionSource
type InstructionSource interface {
	Instructions(ctx context.Context, modificationID uuid.UUID) (*retrieval.InstructionData, error)
}

type Config struct {
	OriginalImagesDir string
	TempDir           string
}

type Verifier struct {
	log      *slog.Logger
	cfg      Config
	results  ResultStore
	source   InstructionSource
	engine   *algorithm.Engine
	comparer *comparison.Engine
	pool     *worker.Pool
}

func New(
	log *slog.Logger,
	cfg Config,
	results ResultStore,
	source InstructionSource,
	engine *algorithm.Engine,
	comparer *comparison.Engine,
	pool *worker.Pool,
) *Verifier {
	return &Verifier{
		log:      log,
		cfg:      cfg,
		results:  results,
		source:   source,
		engine:   engine,
		comparer: comparer,
		pool:     pool,
	}
}

// Dispatch queues a verification on the worker pool. worker.ErrQueueFull is
// returned untouched so callers can translate saturation into backpressure.
func (v *Verifier) Dispatch(imageID, modificationID uuid.UUID) error {
	const op = "verifier.Dispatch"

	err := v.pool.Submit(func(ctx context.Context) {
		v.Verify(ctx, imageID, modificationID)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Verify runs one verification end to end. Verifying a modification twice is
// a no-op: the first recorded result wins.
func (v *Verifier) Verify(ctx context.Context, imageID, modificationID uuid.UUID) {
	log := v.log.With(
		slog.String("image_id", imageID.String()),
		slog.String("modification_id", modificationID.String()),
	)

	log.Info("starting verification")

	exists, err := v.results.Exists(modificationID)
	if err != nil {
		log.Error("failed to check for existing verification", sl.Err(err))
		v.results.MarkFailed(modificationID, err.Error())

		return
	}
	if exists {
		log.Info("verification record already exists")

		return
	}

	if err = v.results.CreatePending(modificationID); err != nil {
		log.Error("failed to create verification record", sl.Err(err))
		v.results.MarkFailed(modificationID, err.Error())

		return
	}

	outcome := v.execute(ctx, imageID, modificationID, log)

	if err = v.results.SaveResult(modificationID, outcome); err != nil {
		log.Error("failed to save verification result", sl.Err(err))
		v.results.MarkFailed(modificationID, err.Error())

		return
	}

	log.Info("verification completed", slog.Bool("is_reversible", outcome.IsReversible))
}

// execute performs the reversal and comparison. It never fails upward: any
// error is logged and collapsed into the all-false outcome.
func (v *Verifier) execute(ctx context.Context, imageID, modificationID uuid.UUID, log *slog.Logger) models.VerificationOutcome {
	data, err := v.source.Instructions(ctx, modificationID)
	if err != nil {
		log.Error("failed to retrieve instructions", sl.Err(err))

		return models.FailedOutcome()
	}

	instructions, err := v.engine.ParseInstructions(data.AlgorithmType, data.Instructions)
	if err != nil {
		log.Error("failed to parse instructions", sl.Err(err))

		return models.FailedOutcome()
	}

	variant, err := raster.Load(data.StoragePath)
	if err != nil {
		log.Error("failed to load variant image", sl.Err(err))

		return models.FailedOutcome()
	}

	reversed, err := v.engine.Reverse(variant, instructions)
	if err != nil {
		log.Error("failed to reverse modifications", sl.Err(err))

		return models.FailedOutcome()
	}

	reversedPath, err := v.saveReversed(reversed)
	if err != nil {
		log.Error("failed to save reversed image", sl.Err(err))

		return models.FailedOutcome()
	}
	defer v.cleanupReversed(reversedPath, log)

	originalPath := v.originalImagePath(imageID, data, log)

	result, err := v.comparer.Compare(originalPath, reversedPath, comparison.MethodBoth)
	if err != nil {
		log.Error("comparison failed", sl.Err(err))

		return models.FailedOutcome()
	}

	hashMatch := result.HashMatch != nil && *result.HashMatch
	pixelMatch := result.PixelMatch != nil && *result.PixelMatch

	return models.VerificationOutcome{
		IsReversible:       pixelMatch,
		VerifiedWithHash:   hashMatch,
		VerifiedWithPixels: pixelMatch,
	}
}

// originalImagePath resolves where the original lives. An explicit
// original_image_path inside the instruction payload wins; otherwise the
// path is rebuilt from the upload naming scheme, with the extension taken
// from the original filename.
func (v *Verifier) originalImagePath(imageID uuid.UUID, data *retrieval.InstructionData, log *slog.Logger) string {
	var embedded struct {
		OriginalImagePath string `json:"original_image_path"`
	}
	if err := json.Unmarshal(data.Instructions, &embedded); err == nil && embedded.OriginalImagePath != "" {
		return embedded.OriginalImagePath
	}

	ext := filepath.Ext(data.OriginalFilename)
	if ext == "" {
		ext = ".jpg"
	}

	path := filepath.Join(v.cfg.OriginalImagesDir, fmt.Sprintf("%s_original%s", imageID, ext))

	log.Debug("using constructed original image path", slog.String("path", path))

	return path
}

func (v *Verifier) saveReversed(r *raster.Raster) (string, error) {
	const op = "verifier.saveReversed"

	f, err := os.CreateTemp(v.cfg.TempDir, "reversed_image_*.png")
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	path := f.Name()
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err = raster.Save(r, path); err != nil {
		_ = os.Remove(path)

		return "", fmt.Errorf("%s: %w", op, err)
	}

	return path, nil
}

func (v *Verifier) cleanupReversed(path string, log *slog.Logger) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Warn("failed to delete temporary file", slog.String("path", path), sl.Err(err))
	}
}
