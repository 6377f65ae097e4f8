package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"github.com/dabolichin/ligence-task/internal/config"
	"github.com/dabolichin/ligence-task/internal/models"
	"github.com/google/uuid"

	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	storage := &Storage{DB: db}
	if err = storage.bootstrap(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return storage, nil
}

func (s *Storage) bootstrap() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS images (
			id UUID PRIMARY KEY,
			original_filename VARCHAR(255) NOT NULL,
			file_size BIGINT NOT NULL,
			width INTEGER,
			height INTEGER,
			format VARCHAR(10),
			storage_path VARCHAR(500) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS modifications (
			id UUID PRIMARY KEY,
			image_id UUID NOT NULL REFERENCES images(id) ON DELETE CASCADE,
			variant_number INTEGER NOT NULL,
			algorithm_type VARCHAR(32) NOT NULL,
			instructions JSONB NOT NULL,
			storage_path VARCHAR(500) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (image_id, variant_number)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_modifications_image_id ON modifications (image_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.DB.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (s *Storage) SaveImage(ctx context.Context, image *models.Image) (*models.Image, error) {
	const op = "storage.postgres.SaveImage"

	query := `
        INSERT INTO images (id, original_filename, file_size, width, height, format, storage_path)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at, updated_at`

	saved := *image

	err := s.DB.QueryRowContext(ctx, query,
		image.ID,
		image.OriginalFilename,
		image.FileSize,
		image.Width,
		image.Height,
		image.Format,
		image.StoragePath,
	).Scan(
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &saved, nil
}

func (s *Storage) GetImage(ctx context.Context, id uuid.UUID) (*models.Image, error) {
	const op = "storage.postgres.GetImage"

	query := `
        SELECT id, original_filename, file_size, width, height, format, storage_path, created_at, updated_at
        FROM images
        WHERE id = $1`

	var image models.Image

	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&image.ID,
		&image.OriginalFilename,
		&image.FileSize,
		&image.Width,
		&image.Height,
		&image.Format,
		&image.StoragePath,
		&image.CreatedAt,
		&image.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: image with ID %s not found: %w", op, id, sql.ErrNoRows)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &image, nil
}

func (s *Storage) DeleteImage(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteImage"

	query := `DELETE FROM images WHERE id = $1`

	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%s: image with ID %s not found: %w", op, id, sql.ErrNoRows)
	}

	return nil
}

// TouchImage bumps updated_at, marking when the variant batch for the image
// finished.
func (s *Storage) TouchImage(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.TouchImage"

	query := `UPDATE images SET updated_at = NOW() WHERE id = $1`

	if _, err := s.DB.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) CreateModification(ctx context.Context, modification *models.Modification) (*models.Modification, error) {
	const op = "storage.postgres.CreateModification"

	query := `
        INSERT INTO modifications (id, image_id, variant_number, algorithm_type, instructions, storage_path)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at, updated_at`

	saved := *modification

	err := s.DB.QueryRowContext(ctx, query,
		modification.ID,
		modification.ImageID,
		modification.VariantNumber,
		modification.AlgorithmType,
		string(modification.Instructions),
		modification.StoragePath,
	).Scan(
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &saved, nil
}

func (s *Storage) GetModification(ctx context.Context, id uuid.UUID) (*models.Modification, error) {
	const op = "storage.postgres.GetModification"

	query := `
        SELECT id, image_id, variant_number, algorithm_type, instructions, storage_path, created_at, updated_at
        FROM modifications
        WHERE id = $1`

	var modification models.Modification
	var instructions []byte

	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&modification.ID,
		&modification.ImageID,
		&modification.VariantNumber,
		&modification.AlgorithmType,
		&instructions,
		&modification.StoragePath,
		&modification.CreatedAt,
		&modification.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: modification with ID %s not found: %w", op, id, sql.ErrNoRows)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	modification.Instructions = json.RawMessage(instructions)

	return &modification, nil
}

func (s *Storage) ListModifications(ctx context.Context, imageID uuid.UUID) ([]models.Modification, error) {
	const op = "storage.postgres.ListModifications"

	query := `
        SELECT id, image_id, variant_number, algorithm_type, instructions, storage_path, created_at, updated_at
        FROM modifications
        WHERE image_id = $1
        ORDER BY variant_number`

	rows, err := s.DB.QueryContext(ctx, query, imageID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var modifications []models.Modification

	for rows.Next() {
		var modification models.Modification
		var instructions []byte

		err = rows.Scan(
			&modification.ID,
			&modification.ImageID,
			&modification.VariantNumber,
			&modification.AlgorithmType,
			&instructions,
			&modification.StoragePath,
			&modification.CreatedAt,
			&modification.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		modification.Instructions = json.RawMessage(instructions)
		modifications = append(modifications, modification)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return modifications, nil
}

func (s *Storage) CountModifications(ctx context.Context, imageID uuid.UUID) (int, error) {
	const op = "storage.postgres.CountModifications"

	query := `SELECT COUNT(*) FROM modifications WHERE image_id = $1`

	var count int

	if err := s.DB.QueryRowContext(ctx, query, imageID).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
