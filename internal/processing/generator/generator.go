// Package generator turns one uploaded original into its full batch of
// reversible variants. A batch either completes for every variant or is
// rolled back entirely, files and rows both, so a failed image can simply be
// re-submitted.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/dabolichin/ligence-task/internal/algorithm"
	"github.com/dabolichin/ligence-task/internal/lib/logger/sl"
	"github.com/dabolichin/ligence-task/internal/models"
	"github.com/dabolichin/ligence-task/internal/processing/filestore"
	"github.com/dabolichin/ligence-task/internal/raster"
	"github.com/dabolichin/ligence-task/internal/worker"
	"github.com/google/uuid"
	"log/slog"
	"math/rand"
)

// announceFailureThreshold is how many recent announcement failures stop
// further announcements for the batch. Successes work the counter back down,
// so transient flakiness does not trip it; hitting the threshold silences
// the rest of the batch.
const announceFailureThreshold = 5

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FileStore
type FileStore interface {
	LoadRaster(path string) (*raster.Raster, error)
	SaveVariant(r *raster.Raster, imageID uuid.UUID, variantNumber int, ext string) (string, error)
	DeleteImageFiles(imageID uuid.UUID) int
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ModificationStore
type ModificationStore interface {
	GetImage(ctx context.Context, id uuid.UUID) (*models.Image, error)
	CreateModification(ctx context.Context, modification *models.Modification) (*models.Modification, error)
	DeleteImage(ctx context.Context, id uuid.UUID) error
	TouchImage(ctx context.Context, id uuid.UUID) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Announcer
type Announcer interface {
	Announce(ctx context.Context, imageID, modificationID uuid.UUID) error
}

// Config bounds a batch: how many variants, and the floor of the per-variant
// operation count draw. The ceiling adapts to the image size.
type Config struct {
	VariantsCount    int
	MinModifications int
}

type Generator struct {
	log       *slog.Logger
	cfg       Config
	files     FileStore
	store     ModificationStore
	engine    *algorithm.Engine
	announcer Announcer
	pool      *worker.Pool
}

func New(
	log *slog.Logger,
	cfg Config,
	files FileStore,
	store ModificationStore,
	engine *algorithm.Engine,
	announcer Announcer,
	pool *worker.Pool,
) *Generator {
	if cfg.VariantsCount < 1 {
		cfg.VariantsCount = 100
	}
	if cfg.MinModifications < 1 {
		cfg.MinModifications = 100
	}

	return &Generator{
		log:       log,
		cfg:       cfg,
		files:     files,
		store:     store,
		engine:    engine,
		announcer: announcer,
		pool:      pool,
	}
}

// ProcessMessage handles one upload notification from the queue and hands the
// batch to the worker pool.
func (g *Generator) ProcessMessage(ctx context.Context, message []byte) error {
	const op = "generator.ProcessMessage"

	var msg struct {
		ImageID     uuid.UUID `json:"image_id"`
		StoragePath string    `json:"storage_path"`
	}

	if err := json.Unmarshal(message, &msg); err != nil {
		g.log.Error("failed to unmarshal upload message", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log := g.log.With(
		slog.String("image_id", msg.ImageID.String()),
		slog.String("storage_path", msg.StoragePath),
	)

	err := g.pool.Submit(func(taskCtx context.Context) {
		if genErr := g.GenerateBatch(taskCtx, msg.ImageID); genErr != nil {
			log.Error("variant generation failed", sl.Err(genErr))
		}
	})
	if err != nil {
		log.Error("failed to queue variant generation", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("variant generation queued")

	return nil
}

// GenerateBatch produces every variant for the image: apply the transform,
// store the variant file, persist the modification row, announce it for
// verification. Any failure rolls back all files and rows of the image.
func (g *Generator) GenerateBatch(ctx context.Context, imageID uuid.UUID) error {
	const op = "generator.GenerateBatch"

	log := g.log.With(slog.String("op", op), slog.String("image_id", imageID.String()))

	image, err := g.store.GetImage(ctx, imageID)
	if err != nil {
		g.rollback(ctx, log, imageID)
		return fmt.Errorf("%s: %w", op, err)
	}

	original, err := g.files.LoadRaster(image.StoragePath)
	if err != nil {
		g.rollback(ctx, log, imageID)
		return fmt.Errorf("%s: %w", op, err)
	}

	minOps, maxOps := operationBounds(original.Width, original.Height, g.cfg.MinModifications)
	ext := variantExtension(image)

	log.Info("starting variant generation",
		slog.Int("variants", g.cfg.VariantsCount),
		slog.Int("min_operations", minOps),
		slog.Int("max_operations", maxOps),
	)

	announceFailures := 0

	for number := 1; number <= g.cfg.VariantsCount; number++ {
		count := minOps + rand.Intn(maxOps-minOps+1)

		result, err := g.engine.Apply(original, string(models.AlgorithmXORTransform), count)
		if err != nil {
			g.rollback(ctx, log, imageID)
			return fmt.Errorf("%s: variant %d: %w", op, number, err)
		}

		path, err := g.files.SaveVariant(result.Modified, imageID, number, ext)
		if err != nil {
			g.rollback(ctx, log, imageID)
			return fmt.Errorf("%s: variant %d: %w", op, number, err)
		}

		instructions, err := json.Marshal(result.Instructions)
		if err != nil {
			g.rollback(ctx, log, imageID)
			return fmt.Errorf("%s: variant %d: %w", op, number, err)
		}

		// drop the pixel buffer before the storage round trip; with large
		// images and a hundred variants per batch this is what keeps the
		// working set flat
		result = nil

		modification, err := g.store.CreateModification(ctx, &models.Modification{
			ID:            uuid.New(),
			ImageID:       imageID,
			VariantNumber: number,
			AlgorithmType: models.AlgorithmXORTransform,
			Instructions:  instructions,
			StoragePath:   path,
		})
		if err != nil {
			g.rollback(ctx, log, imageID)
			return fmt.Errorf("%s: variant %d: %w", op, number, err)
		}

		if announceFailures < announceFailureThreshold {
			if err = g.announcer.Announce(ctx, imageID, modification.ID); err != nil {
				announceFailures++
				log.Warn("verification announcement failed",
					slog.String("modification_id", modification.ID.String()),
					slog.Int("recent_failures", announceFailures),
					sl.Err(err),
				)
			} else if announceFailures > 0 {
				announceFailures--
			}
		}
	}

	if err = g.store.TouchImage(ctx, imageID); err != nil {
		log.Warn("failed to stamp batch completion", sl.Err(err))
	}

	log.Info("variant generation completed", slog.Int("variants", g.cfg.VariantsCount))

	return nil
}

// rollback removes everything the batch may have produced so the image can be
// regenerated from scratch. Row deletion cascades over modifications.
func (g *Generator) rollback(ctx context.Context, log *slog.Logger, imageID uuid.UUID) {
	removed := g.files.DeleteImageFiles(imageID)

	if err := g.store.DeleteImage(ctx, imageID); err != nil {
		log.Warn("rollback could not delete image rows", sl.Err(err))
	}

	log.Info("batch rolled back", slog.Int("files_removed", removed))
}

// operationBounds derives the per-variant operation count range from the
// pixel count. Tiny images get at least one operation; everything else draws
// between the configured floor and the pixel count.
func operationBounds(width, height, configuredMin int) (int, int) {
	total := width * height

	min := configuredMin
	if total < configuredMin {
		min = total / 2
		if min < 1 {
			min = 1
		}
	}

	max := total
	if max < min {
		max = min
	}

	return min, max
}

func variantExtension(image *models.Image) string {
	if image.Format.Valid && image.Format.String != "" {
		return filestore.ExtensionForFormat(image.Format.String)
	}

	return ".png"
}
