package sqlite_test

import (
	"bytes"
	"database/sql"
	"github.com/dabolichin/ligence-task/internal/models"
	"github.com/dabolichin/ligence-task/internal/verification/storage/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"log/slog"
	"path/filepath"
	"testing"
	"time"
)

func newStorage(t *testing.T) *sqlite.Storage {
	t.Helper()

	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))

	storage, err := sqlite.InitDB(filepath.Join(t.TempDir(), "verification.db"), log)
	require.NoError(t, err)

	t.Cleanup(func() { _ = storage.Close() })

	return storage
}

func TestCreatePendingAndGet(t *testing.T) {
	storage := newStorage(t)
	modificationID := uuid.New()

	exists, err := storage.Exists(modificationID)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, storage.CreatePending(modificationID))

	exists, err = storage.Exists(modificationID)
	require.NoError(t, err)
	assert.True(t, exists)

	result, err := storage.GetByModificationID(modificationID)
	require.NoError(t, err)

	assert.Equal(t, modificationID, result.ModificationID)
	assert.Equal(t, models.VerificationPending, result.Status)
	assert.False(t, result.IsReversible.Valid)
	assert.False(t, result.VerifiedWithHash)
	assert.False(t, result.VerifiedWithPixels)
	assert.WithinDuration(t, time.Now(), result.CreatedAt, time.Minute)
}

func TestCreatePending_DuplicateModification(t *testing.T) {
	storage := newStorage(t)
	modificationID := uuid.New()

	require.NoError(t, storage.CreatePending(modificationID))
	require.Error(t, storage.CreatePending(modificationID))
}

func TestSaveResult_CompletesRecord(t *testing.T) {
	storage := newStorage(t)
	modificationID := uuid.New()

	require.NoError(t, storage.CreatePending(modificationID))

	outcome := models.VerificationOutcome{
		IsReversible:       true,
		VerifiedWithHash:   true,
		VerifiedWithPixels: true,
	}
	require.NoError(t, storage.SaveResult(modificationID, outcome))

	result, err := storage.GetByModificationID(modificationID)
	require.NoError(t, err)

	assert.Equal(t, models.VerificationCompleted, result.Status)
	require.True(t, result.IsReversible.Valid)
	assert.True(t, result.IsReversible.Bool)
	assert.True(t, result.VerifiedWithHash)
	assert.True(t, result.VerifiedWithPixels)
	assert.False(t, result.ErrorMessage.Valid)
	assert.False(t, result.UpdatedAt.Before(result.CreatedAt))
}

func TestSaveResult_MissingRecord(t *testing.T) {
	storage := newStorage(t)

	err := storage.SaveResult(uuid.New(), models.VerificationOutcome{IsReversible: true})
	require.NoError(t, err)
}

func TestMarkFailed(t *testing.T) {
	storage := newStorage(t)
	modificationID := uuid.New()

	require.NoError(t, storage.CreatePending(modificationID))

	storage.MarkFailed(modificationID, "variant image missing")

	result, err := storage.GetByModificationID(modificationID)
	require.NoError(t, err)

	assert.Equal(t, models.VerificationCompleted, result.Status)
	require.True(t, result.IsReversible.Valid)
	assert.False(t, result.IsReversible.Bool)
	assert.False(t, result.VerifiedWithHash)
	assert.False(t, result.VerifiedWithPixels)
	require.True(t, result.ErrorMessage.Valid)
	assert.Equal(t, "variant image missing", result.ErrorMessage.String)
}

func TestMarkFailed_MissingRecord(t *testing.T) {
	storage := newStorage(t)

	storage.MarkFailed(uuid.New(), "nothing to mark")
}

func TestGetByModificationID_NotFound(t *testing.T) {
	storage := newStorage(t)

	_, err := storage.GetByModificationID(uuid.New())
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestStatistics(t *testing.T) {
	storage := newStorage(t)

	stats, err := storage.Statistics()
	require.NoError(t, err)
	assert.Equal(t, models.VerificationStatistics{}, stats)

	succeeded := models.VerificationOutcome{
		IsReversible:       true,
		VerifiedWithHash:   true,
		VerifiedWithPixels: true,
	}

	for i := 0; i < 2; i++ {
		id := uuid.New()
		require.NoError(t, storage.CreatePending(id))
		require.NoError(t, storage.SaveResult(id, succeeded))
	}

	failedID := uuid.New()
	require.NoError(t, storage.CreatePending(failedID))
	storage.MarkFailed(failedID, "reversal blew up")

	require.NoError(t, storage.CreatePending(uuid.New()))

	stats, err = storage.Statistics()
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Successful)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, 1, stats.Pending)
	assert.InDelta(t, 50.0, stats.SuccessRate, 0.001)
}

func TestHistory(t *testing.T) {
	storage := newStorage(t)

	ids := make([]uuid.UUID, 5)
	for i := range ids {
		ids[i] = uuid.New()
		require.NoError(t, storage.CreatePending(ids[i]))

		// created_at ordering needs distinct timestamps
		time.Sleep(2 * time.Millisecond)
	}

	page, total, err := storage.History(2, 0)
	require.NoError(t, err)

	assert.Equal(t, 5, total)
	require.Len(t, page, 2)
	assert.Equal(t, ids[4], page[0].ModificationID)
	assert.Equal(t, ids[3], page[1].ModificationID)

	page, total, err = storage.History(2, 4)
	require.NoError(t, err)

	assert.Equal(t, 5, total)
	require.Len(t, page, 1)
	assert.Equal(t, ids[0], page[0].ModificationID)
}

func TestHistory_Empty(t *testing.T) {
	storage := newStorage(t)

	page, total, err := storage.History(50, 0)
	require.NoError(t, err)

	assert.Zero(t, total)
	assert.Empty(t, page)
}
