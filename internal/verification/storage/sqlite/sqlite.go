package sqlite

import (
	"database/sql"
	"fmt"
	"github.com/dabolichin/ligence-task/internal/lib/logger/sl"
	"github.com/dabolichin/ligence-task/internal/models"
	"github.com/google/uuid"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Storage keeps verification results in a local SQLite file. Unlike the
// processing store it carries a logger: MarkFailed and SaveResult swallow
// storage errors so a broken database never turns one failed verification
// into a second failure.
type Storage struct {
	DB  *sql.DB
	log *slog.Logger
}

func InitDB(path string, log *slog.Logger) (*Storage, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open the database: %w", err)
	}

	// SQLite allows one writer at a time; a single connection avoids
	// SQLITE_BUSY errors under concurrent verifications.
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to open the database: %w", err)
	}

	storage := &Storage{DB: db, log: log}
	if err = storage.bootstrap(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return storage, nil
}

func (s *Storage) bootstrap() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS verification_results (
			id TEXT PRIMARY KEY,
			modification_id TEXT NOT NULL UNIQUE,
			status TEXT NOT NULL,
			is_reversible BOOLEAN,
			verified_with_hash BOOLEAN NOT NULL DEFAULT 0,
			verified_with_pixels BOOLEAN NOT NULL DEFAULT 0,
			error_message TEXT,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_verification_results_created_at ON verification_results (created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.DB.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// Exists reports whether a verification record for the modification already
// exists, in any status.
func (s *Storage) Exists(modificationID uuid.UUID) (bool, error) {
	const op = "storage.sqlite.Exists"

	query := `SELECT EXISTS(SELECT 1 FROM verification_results WHERE modification_id = ?)`

	var exists bool

	if err := s.DB.QueryRow(query, modificationID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

// CreatePending inserts the pending record that every verification starts
// from.
func (s *Storage) CreatePending(modificationID uuid.UUID) error {
	const op = "storage.sqlite.CreatePending"

	query := `
        INSERT INTO verification_results (id, modification_id, status, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?)`

	now := time.Now()

	_, err := s.DB.Exec(query, uuid.New(), modificationID, models.VerificationPending, now, now)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SaveResult completes the pending record with the verification outcome. A
// missing record is logged and ignored, the way a lost announcement is.
func (s *Storage) SaveResult(modificationID uuid.UUID, outcome models.VerificationOutcome) error {
	const op = "storage.sqlite.SaveResult"

	rows, err := s.updateOutcome(modificationID, outcome, sql.NullString{})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if rows == 0 {
		s.log.Warn("no verification record found",
			slog.String("modification_id", modificationID.String()),
		)
	}

	return nil
}

// MarkFailed completes the record with every flag false and keeps what went
// wrong. Errors are logged and swallowed; this runs on failure paths where
// nothing can be done about them anyway.
func (s *Storage) MarkFailed(modificationID uuid.UUID, message string) {
	const op = "storage.sqlite.MarkFailed"

	errMsg := sql.NullString{String: message, Valid: message != ""}

	rows, err := s.updateOutcome(modificationID, models.FailedOutcome(), errMsg)
	if err != nil {
		s.log.Error("failed to mark verification as failed",
			slog.String("modification_id", modificationID.String()),
			sl.Err(fmt.Errorf("%s: %w", op, err)),
		)
		return
	}

	if rows == 0 {
		s.log.Warn("no verification record to mark as failed",
			slog.String("modification_id", modificationID.String()),
		)
	}
}

func (s *Storage) updateOutcome(modificationID uuid.UUID, outcome models.VerificationOutcome, errMsg sql.NullString) (int64, error) {
	query := `
        UPDATE verification_results
        SET status = ?, is_reversible = ?, verified_with_hash = ?, verified_with_pixels = ?, error_message = ?, updated_at = ?
        WHERE modification_id = ?`

	result, err := s.DB.Exec(query,
		models.VerificationCompleted,
		outcome.IsReversible,
		outcome.VerifiedWithHash,
		outcome.VerifiedWithPixels,
		errMsg,
		time.Now(),
		modificationID,
	)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (s *Storage) GetByModificationID(modificationID uuid.UUID) (*models.VerificationResult, error) {
	const op = "storage.sqlite.GetByModificationID"

	query := `
        SELECT id, modification_id, status, is_reversible, verified_with_hash, verified_with_pixels, error_message, created_at, updated_at
        FROM verification_results
        WHERE modification_id = ?`

	var result models.VerificationResult

	err := s.DB.QueryRow(query, modificationID).Scan(
		&result.ID,
		&result.ModificationID,
		&result.Status,
		&result.IsReversible,
		&result.VerifiedWithHash,
		&result.VerifiedWithPixels,
		&result.ErrorMessage,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: verification for modification %s not found: %w", op, modificationID, sql.ErrNoRows)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &result, nil
}

// Statistics aggregates all verification results. Successful and failed
// count completed records only; pending records have no verdict yet.
func (s *Storage) Statistics() (models.VerificationStatistics, error) {
	const op = "storage.sqlite.Statistics"

	query := `
        SELECT
            COUNT(*),
            COUNT(CASE WHEN status = ? AND is_reversible = 1 THEN 1 END),
            COUNT(CASE WHEN status = ? AND is_reversible = 0 THEN 1 END),
            COUNT(CASE WHEN status = ? THEN 1 END)
        FROM verification_results`

	var stats models.VerificationStatistics

	err := s.DB.QueryRow(query,
		models.VerificationCompleted,
		models.VerificationCompleted,
		models.VerificationPending,
	).Scan(
		&stats.Total,
		&stats.Successful,
		&stats.Failed,
		&stats.Pending,
	)
	if err != nil {
		return models.VerificationStatistics{}, fmt.Errorf("%s: %w", op, err)
	}

	if stats.Total > 0 {
		rate := float64(stats.Successful) / float64(stats.Total) * 100.0
		stats.SuccessRate = math.Round(rate*100) / 100
	}

	return stats, nil
}

// History returns a page of results, newest first, together with the total
// number of records.
func (s *Storage) History(limit, offset int) ([]models.VerificationResult, int, error) {
	const op = "storage.sqlite.History"

	var total int

	if err := s.DB.QueryRow(`SELECT COUNT(*) FROM verification_results`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	query := `
        SELECT id, modification_id, status, is_reversible, verified_with_hash, verified_with_pixels, error_message, created_at, updated_at
        FROM verification_results
        ORDER BY created_at DESC
        LIMIT ? OFFSET ?`

	rows, err := s.DB.Query(query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var results []models.VerificationResult

	for rows.Next() {
		var result models.VerificationResult

		err = rows.Scan(
			&result.ID,
			&result.ModificationID,
			&result.Status,
			&result.IsReversible,
			&result.VerifiedWithHash,
			&result.VerifiedWithPixels,
			&result.ErrorMessage,
			&result.CreatedAt,
			&result.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}

		results = append(results, result)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return results, total, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
