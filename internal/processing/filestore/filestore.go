// Package filestore owns the on-disk layout of originals and variants:
// originals/{image_id}_original{ext} and modified/{image_id}_variant_NNN{ext}.
// Uploaded bytes are stored exactly as received; only variants are re-encoded.
package filestore

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/dabolichin/ligence-task/internal/config"
	"github.com/dabolichin/ligence-task/internal/lib/logger/sl"
	"github.com/dabolichin/ligence-task/internal/raster"
	"github.com/google/uuid"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

var (
	// ErrInvalidImage marks upload payloads that no registered decoder
	// recognizes.
	ErrInvalidImage = errors.New("data is not a decodable image")

	// ErrUnsupportedFormat marks decodable formats outside the allowed set.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// allowed formats by their registered decoder names. gif and tiff stay
// registered so their uploads are rejected as unsupported, not as
// undecodable garbage.
var allowedFormats = map[string]bool{
	"jpeg": true,
	"png":  true,
	"bmp":  true,
}

// Metadata is what upload probing learned about an original.
type Metadata struct {
	Width    int
	Height   int
	Format   string
	FileSize int64
}

type Storage struct {
	log         *slog.Logger
	originalDir string
	modifiedDir string
}

func New(log *slog.Logger, storageCfg *config.Storage) (*Storage, error) {
	const op = "filestore.New"

	for _, dir := range []string{storageCfg.OriginalImagesDir, storageCfg.ModifiedImagesDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return &Storage{
		log:         log,
		originalDir: storageCfg.OriginalImagesDir,
		modifiedDir: storageCfg.ModifiedImagesDir,
	}, nil
}

// SaveOriginal probes the uploaded bytes and writes them unchanged under the
// image's canonical original name. The extension comes from the detected
// format, never from the client-supplied filename.
func (s *Storage) SaveOriginal(data []byte, filename string, imageID uuid.UUID) (string, *Metadata, error) {
	const op = "filestore.SaveOriginal"

	imgCfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", nil, fmt.Errorf("%s: %q: %w", op, filename, ErrInvalidImage)
	}

	if !allowedFormats[format] {
		return "", nil, fmt.Errorf("%s: %q detected as %s: %w", op, filename, format, ErrUnsupportedFormat)
	}

	formatName := strings.ToUpper(format)
	path := filepath.Join(s.originalDir, fmt.Sprintf("%s_original%s", imageID, ExtensionForFormat(formatName)))

	if err = os.WriteFile(path, data, 0o644); err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("original image saved",
		slog.String("image_id", imageID.String()),
		slog.String("path", path),
		slog.String("format", formatName),
	)

	return path, &Metadata{
		Width:    imgCfg.Width,
		Height:   imgCfg.Height,
		Format:   formatName,
		FileSize: int64(len(data)),
	}, nil
}

// SaveVariant encodes a modified raster under the image's variant naming
// scheme and returns the path.
func (s *Storage) SaveVariant(r *raster.Raster, imageID uuid.UUID, variantNumber int, ext string) (string, error) {
	const op = "filestore.SaveVariant"

	path := filepath.Join(s.modifiedDir, fmt.Sprintf("%s_variant_%03d%s", imageID, variantNumber, ext))

	if err := raster.Save(r, path); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return path, nil
}

// LoadRaster decodes the image at path.
func (s *Storage) LoadRaster(path string) (*raster.Raster, error) {
	return raster.Load(path)
}

// DeleteImageFiles removes the original and every variant belonging to the
// image, best effort, and reports how many files went away.
func (s *Storage) DeleteImageFiles(imageID uuid.UUID) int {
	const op = "filestore.DeleteImageFiles"

	patterns := []string{
		filepath.Join(s.originalDir, fmt.Sprintf("%s_original.*", imageID)),
		filepath.Join(s.modifiedDir, fmt.Sprintf("%s_variant_*", imageID)),
	}

	removed := 0

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			s.log.Warn("bad file pattern", slog.String("op", op), sl.Err(err))
			continue
		}

		for _, match := range matches {
			if err = os.Remove(match); err != nil {
				s.log.Warn("failed to remove file", slog.String("op", op), slog.String("path", match), sl.Err(err))
				continue
			}
			removed++
		}
	}

	if removed > 0 {
		s.log.Info("image files removed",
			slog.String("image_id", imageID.String()),
			slog.Int("count", removed),
		)
	}

	return removed
}

// ExtensionForFormat maps a detected format name to the stored file
// extension. JPEG normalizes to .jpg.
func ExtensionForFormat(format string) string {
	if strings.EqualFold(format, "jpeg") {
		return ".jpg"
	}

	return "." + strings.ToLower(format)
}
