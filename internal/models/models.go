package models

import (
	"database/sql"
	"encoding/json"
	"github.com/google/uuid"
	"time"
)

type AlgorithmType string

const (
	AlgorithmXORTransform AlgorithmType = "xor_transform"
)

// Image is an uploaded original. The row is written once at upload time;
// only UpdatedAt moves forward, when the variant batch for the image
// completes.
type Image struct {
	ID               uuid.UUID      `db:"id" json:"id"`
	OriginalFilename string         `db:"original_filename" json:"original_filename"`
	FileSize         int64          `db:"file_size" json:"file_size"`
	Width            sql.NullInt32  `db:"width" json:"width"`
	Height           sql.NullInt32  `db:"height" json:"height"`
	Format           sql.NullString `db:"format" json:"format"`
	StoragePath      string         `db:"storage_path" json:"storage_path"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at" json:"updated_at"`
}

// Modification is one stored variant of an image together with the
// serialized instructions that reverse it. VariantNumber runs 1..N and is
// unique per image.
type Modification struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	ImageID       uuid.UUID       `db:"image_id" json:"image_id"`
	VariantNumber int             `db:"variant_number" json:"variant_number"`
	AlgorithmType AlgorithmType   `db:"algorithm_type" json:"algorithm_type"`
	Instructions  json.RawMessage `db:"instructions" json:"instructions"`
	StoragePath   string          `db:"storage_path" json:"storage_path"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

type VerificationStatus string

const (
	VerificationPending   VerificationStatus = "pending"
	VerificationCompleted VerificationStatus = "completed"
)

// VerificationResult records the outcome of verifying one modification.
// A row starts out pending and always ends up completed; a verification
// that blew up on the way is completed with every flag false and the
// error recorded.
type VerificationResult struct {
	ID                 uuid.UUID          `db:"id" json:"id"`
	ModificationID     uuid.UUID          `db:"modification_id" json:"modification_id"`
	Status             VerificationStatus `db:"status" json:"status"`
	IsReversible       sql.NullBool       `db:"is_reversible" json:"is_reversible"`
	VerifiedWithHash   bool               `db:"verified_with_hash" json:"verified_with_hash"`
	VerifiedWithPixels bool               `db:"verified_with_pixels" json:"verified_with_pixels"`
	ErrorMessage       sql.NullString     `db:"error_message" json:"error_message"`
	CreatedAt          time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time          `db:"updated_at" json:"updated_at"`
}

// VerificationOutcome is what a verification run concluded, independent of
// how it gets persisted.
type VerificationOutcome struct {
	IsReversible       bool
	VerifiedWithHash   bool
	VerifiedWithPixels bool
}

// FailedOutcome is the terminal state recorded when any verification step
// fails: explicitly not reversible, confirmed by neither method.
func FailedOutcome() VerificationOutcome {
	return VerificationOutcome{}
}

// VerificationStatistics is an aggregate snapshot over all verification
// results. SuccessRate is successful over total, as a percentage rounded to
// two decimals.
type VerificationStatistics struct {
	Total       int     `json:"total_verifications"`
	Successful  int     `json:"successful_verifications"`
	Failed      int     `json:"failed_verifications"`
	Pending     int     `json:"pending_verifications"`
	SuccessRate float64 `json:"success_rate"`
}
