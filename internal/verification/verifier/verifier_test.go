package verifier_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/dabolichin/ligence-task/internal/algorithm"
	"github.com/dabolichin/ligence-task/internal/models"
	"github.com/dabolichin/ligence-task/internal/raster"
	"github.com/dabolichin/ligence-task/internal/verification/comparison"
	"github.com/dabolichin/ligence-task/internal/verification/retrieval"
	"github.com/dabolichin/ligence-task/internal/verification/verifier"
	"github.com/dabolichin/ligence-task/internal/verification/verifier/mocks"
	"github.com/dabolichin/ligence-task/internal/worker"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))
}

func testConfig(t *testing.T) verifier.Config {
	t.Helper()

	return verifier.Config{
		OriginalImagesDir: t.TempDir(),
		TempDir:           t.TempDir(),
	}
}

func newVerifier(cfg verifier.Config, results *mocks.ResultStore, source *mocks.InstructionSource, pool *worker.Pool) *verifier.Verifier {
	log := discardLogger()

	return verifier.New(
		log,
		cfg,
		results,
		source,
		algorithm.NewEngine(algorithm.NewXORTransform()),
		comparison.NewEngine(log),
		pool,
	)
}

type scene struct {
	imageID        uuid.UUID
	modificationID uuid.UUID
	data           *retrieval.InstructionData
}

// buildScene writes a real original and a real XOR variant to disk and
// returns the instruction payload the processing service would serve for
// that variant.
func buildScene(t *testing.T, cfg verifier.Config) *scene {
	t.Helper()

	imageID := uuid.New()
	modificationID := uuid.New()

	original := raster.New(6, 4, raster.ModeRGB)
	for i := range original.Pix {
		original.Pix[i] = byte((i*13 + 5) % 256)
	}

	originalPath := filepath.Join(cfg.OriginalImagesDir, fmt.Sprintf("%s_original.png", imageID))
	require.NoError(t, raster.Save(original, originalPath))

	engine := algorithm.NewEngine(algorithm.NewXORTransform())
	result, err := engine.Apply(original, "xor_transform", 12)
	require.NoError(t, err)

	variantPath := filepath.Join(cfg.TempDir, fmt.Sprintf("%s_variant_001.png", imageID))
	require.NoError(t, raster.Save(result.Modified, variantPath))

	instructions, err := json.Marshal(result.Instructions)
	require.NoError(t, err)

	return &scene{
		imageID:        imageID,
		modificationID: modificationID,
		data: &retrieval.InstructionData{
			ModificationID:   modificationID,
			ImageID:          imageID,
			OriginalFilename: "photo.png",
			VariantNumber:    1,
			AlgorithmType:    "xor_transform",
			Instructions:     instructions,
			StoragePath:      variantPath,
		},
	}
}

func TestVerify_Success(t *testing.T) {
	cfg := testConfig(t)
	sc := buildScene(t, cfg)

	results := mocks.NewResultStore(t)
	source := mocks.NewInstructionSource(t)

	source.On("Instructions", mock.Anything, sc.modificationID).Return(sc.data, nil).Once()

	var saved models.VerificationOutcome
	results.On("Exists", sc.modificationID).Return(false, nil).Once()
	results.On("CreatePending", sc.modificationID).Return(nil).Once()
	results.On("SaveResult", sc.modificationID, mock.AnythingOfType("models.VerificationOutcome")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(models.VerificationOutcome)
		}).
		Return(nil).
		Once()

	v := newVerifier(cfg, results, source, nil)
	v.Verify(context.Background(), sc.imageID, sc.modificationID)

	assert.True(t, saved.IsReversible)
	assert.True(t, saved.VerifiedWithHash)
	assert.True(t, saved.VerifiedWithPixels)

	results.AssertNotCalled(t, "MarkFailed", mock.Anything, mock.Anything)

	// the reversed temp image must not outlive the verification
	entries, err := os.ReadDir(cfg.TempDir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.NotContains(t, entry.Name(), "reversed_image_")
	}
}

// Operations hitting the same byte twice must still verify as reversible
// with both methods agreeing.
func TestVerify_OverlappingOperations(t *testing.T) {
	cfg := testConfig(t)

	imageID := uuid.New()
	modificationID := uuid.New()

	original := raster.New(2, 2, raster.ModeRGB)
	copy(original.Pix, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})

	originalPath := filepath.Join(cfg.OriginalImagesDir, fmt.Sprintf("%s_original.png", imageID))
	require.NoError(t, raster.Save(original, originalPath))

	ch0, ch2 := 0, 2
	instr := &algorithm.Instructions{
		AlgorithmType: "xor_transform",
		ImageMode:     raster.ModeRGB,
		Operations: []algorithm.PixelOperation{
			{Row: 0, Col: 1, Channel: &ch0, Parameter: 77},
			{Row: 0, Col: 1, Channel: &ch0, Parameter: 200},
			{Row: 1, Col: 1, Channel: &ch2, Parameter: 33},
		},
	}

	engine := algorithm.NewEngine(algorithm.NewXORTransform())
	variant, err := engine.Reverse(original.Clone(), instr)
	require.NoError(t, err)
	require.NotEqual(t, original.Pix, variant.Pix)

	variantPath := filepath.Join(cfg.TempDir, fmt.Sprintf("%s_variant_001.png", imageID))
	require.NoError(t, raster.Save(variant, variantPath))

	instructions, err := json.Marshal(instr)
	require.NoError(t, err)

	results := mocks.NewResultStore(t)
	source := mocks.NewInstructionSource(t)

	source.On("Instructions", mock.Anything, modificationID).Return(&retrieval.InstructionData{
		ModificationID:   modificationID,
		ImageID:          imageID,
		OriginalFilename: "tiny.png",
		VariantNumber:    1,
		AlgorithmType:    "xor_transform",
		Instructions:     instructions,
		StoragePath:      variantPath,
	}, nil).Once()

	var saved models.VerificationOutcome
	results.On("Exists", modificationID).Return(false, nil).Once()
	results.On("CreatePending", modificationID).Return(nil).Once()
	results.On("SaveResult", modificationID, mock.AnythingOfType("models.VerificationOutcome")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(models.VerificationOutcome)
		}).
		Return(nil).
		Once()

	v := newVerifier(cfg, results, source, nil)
	v.Verify(context.Background(), imageID, modificationID)

	assert.True(t, saved.IsReversible)
	assert.True(t, saved.VerifiedWithHash)
	assert.True(t, saved.VerifiedWithPixels)
}

func TestVerify_AlreadyVerified(t *testing.T) {
	cfg := testConfig(t)

	results := mocks.NewResultStore(t)
	source := mocks.NewInstructionSource(t)

	modificationID := uuid.New()
	results.On("Exists", modificationID).Return(true, nil).Once()

	v := newVerifier(cfg, results, source, nil)
	v.Verify(context.Background(), uuid.New(), modificationID)

	results.AssertNotCalled(t, "CreatePending", mock.Anything)
	results.AssertNotCalled(t, "SaveResult", mock.Anything, mock.Anything)
	source.AssertNotCalled(t, "Instructions", mock.Anything, mock.Anything)
}

func TestVerify_RetrievalFailure(t *testing.T) {
	cfg := testConfig(t)

	results := mocks.NewResultStore(t)
	source := mocks.NewInstructionSource(t)

	modificationID := uuid.New()
	source.On("Instructions", mock.Anything, modificationID).
		Return(nil, retrieval.ErrRetrieval).
		Once()

	var saved models.VerificationOutcome
	results.On("Exists", modificationID).Return(false, nil).Once()
	results.On("CreatePending", modificationID).Return(nil).Once()
	results.On("SaveResult", modificationID, mock.AnythingOfType("models.VerificationOutcome")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(models.VerificationOutcome)
		}).
		Return(nil).
		Once()

	v := newVerifier(cfg, results, source, nil)
	v.Verify(context.Background(), uuid.New(), modificationID)

	assert.Equal(t, models.FailedOutcome(), saved)
	results.AssertNotCalled(t, "MarkFailed", mock.Anything, mock.Anything)
}

func TestVerify_CorruptInstructions(t *testing.T) {
	cfg := testConfig(t)
	sc := buildScene(t, cfg)

	sc.data.Instructions = json.RawMessage(`{"image_mode": "CMYK", "operations": []}`)

	results := mocks.NewResultStore(t)
	source := mocks.NewInstructionSource(t)

	source.On("Instructions", mock.Anything, sc.modificationID).Return(sc.data, nil).Once()

	var saved models.VerificationOutcome
	results.On("Exists", sc.modificationID).Return(false, nil).Once()
	results.On("CreatePending", sc.modificationID).Return(nil).Once()
	results.On("SaveResult", sc.modificationID, mock.AnythingOfType("models.VerificationOutcome")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(models.VerificationOutcome)
		}).
		Return(nil).
		Once()

	v := newVerifier(cfg, results, source, nil)
	v.Verify(context.Background(), sc.imageID, sc.modificationID)

	assert.Equal(t, models.FailedOutcome(), saved)
}

func TestVerify_MissingVariantFile(t *testing.T) {
	cfg := testConfig(t)
	sc := buildScene(t, cfg)

	sc.data.StoragePath = filepath.Join(cfg.TempDir, "gone.png")

	results := mocks.NewResultStore(t)
	source := mocks.NewInstructionSource(t)

	source.On("Instructions", mock.Anything, sc.modificationID).Return(sc.data, nil).Once()

	var saved models.VerificationOutcome
	results.On("Exists", sc.modificationID).Return(false, nil).Once()
	results.On("CreatePending", sc.modificationID).Return(nil).Once()
	results.On("SaveResult", sc.modificationID, mock.AnythingOfType("models.VerificationOutcome")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(models.VerificationOutcome)
		}).
		Return(nil).
		Once()

	v := newVerifier(cfg, results, source, nil)
	v.Verify(context.Background(), sc.imageID, sc.modificationID)

	assert.Equal(t, models.FailedOutcome(), saved)
}

func TestVerify_TamperedInstructionsNotReversible(t *testing.T) {
	cfg := testConfig(t)
	sc := buildScene(t, cfg)

	// replaying a wrong parameter must leave the reversed image different
	// from the original
	var instr algorithm.Instructions
	require.NoError(t, json.Unmarshal(sc.data.Instructions, &instr))
	require.NotEmpty(t, instr.Operations)

	if instr.Operations[0].Parameter == 1 {
		instr.Operations[0].Parameter = 2
	} else {
		instr.Operations[0].Parameter = 1
	}

	tampered, err := json.Marshal(instr)
	require.NoError(t, err)
	sc.data.Instructions = tampered

	results := mocks.NewResultStore(t)
	source := mocks.NewInstructionSource(t)

	source.On("Instructions", mock.Anything, sc.modificationID).Return(sc.data, nil).Once()

	var saved models.VerificationOutcome
	results.On("Exists", sc.modificationID).Return(false, nil).Once()
	results.On("CreatePending", sc.modificationID).Return(nil).Once()
	results.On("SaveResult", sc.modificationID, mock.AnythingOfType("models.VerificationOutcome")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(models.VerificationOutcome)
		}).
		Return(nil).
		Once()

	v := newVerifier(cfg, results, source, nil)
	v.Verify(context.Background(), sc.imageID, sc.modificationID)

	assert.False(t, saved.IsReversible)
	assert.False(t, saved.VerifiedWithHash)
	assert.False(t, saved.VerifiedWithPixels)
}

func TestVerify_ExistsCheckFails(t *testing.T) {
	cfg := testConfig(t)

	results := mocks.NewResultStore(t)
	source := mocks.NewInstructionSource(t)

	modificationID := uuid.New()
	results.On("Exists", modificationID).Return(false, errors.New("database closed")).Once()
	results.On("MarkFailed", modificationID, mock.AnythingOfType("string")).Once()

	v := newVerifier(cfg, results, source, nil)
	v.Verify(context.Background(), uuid.New(), modificationID)

	results.AssertNotCalled(t, "CreatePending", mock.Anything)
}

func TestVerify_CreatePendingFails(t *testing.T) {
	cfg := testConfig(t)

	results := mocks.NewResultStore(t)
	source := mocks.NewInstructionSource(t)

	modificationID := uuid.New()
	results.On("Exists", modificationID).Return(false, nil).Once()
	results.On("CreatePending", modificationID).Return(errors.New("disk full")).Once()
	results.On("MarkFailed", modificationID, mock.AnythingOfType("string")).Once()

	v := newVerifier(cfg, results, source, nil)
	v.Verify(context.Background(), uuid.New(), modificationID)

	results.AssertNotCalled(t, "SaveResult", mock.Anything, mock.Anything)
	source.AssertNotCalled(t, "Instructions", mock.Anything, mock.Anything)
}

func TestVerify_SaveResultFails(t *testing.T) {
	cfg := testConfig(t)
	sc := buildScene(t, cfg)

	results := mocks.NewResultStore(t)
	source := mocks.NewInstructionSource(t)

	source.On("Instructions", mock.Anything, sc.modificationID).Return(sc.data, nil).Once()

	results.On("Exists", sc.modificationID).Return(false, nil).Once()
	results.On("CreatePending", sc.modificationID).Return(nil).Once()
	results.On("SaveResult", sc.modificationID, mock.AnythingOfType("models.VerificationOutcome")).
		Return(errors.New("write failed")).
		Once()
	results.On("MarkFailed", sc.modificationID, mock.AnythingOfType("string")).Once()

	v := newVerifier(cfg, results, source, nil)
	v.Verify(context.Background(), sc.imageID, sc.modificationID)
}

func TestDispatch(t *testing.T) {
	cfg := testConfig(t)
	sc := buildScene(t, cfg)

	results := mocks.NewResultStore(t)
	source := mocks.NewInstructionSource(t)

	source.On("Instructions", mock.Anything, sc.modificationID).Return(sc.data, nil).Once()

	done := make(chan struct{})
	results.On("Exists", sc.modificationID).Return(false, nil).Once()
	results.On("CreatePending", sc.modificationID).Return(nil).Once()
	results.On("SaveResult", sc.modificationID, mock.AnythingOfType("models.VerificationOutcome")).
		Run(func(args mock.Arguments) {
			close(done)
		}).
		Return(nil).
		Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool := worker.NewPool(discardLogger(), 1, 4)
	pool.Start(ctx)
	t.Cleanup(pool.Stop)

	v := newVerifier(cfg, results, source, pool)
	require.NoError(t, v.Dispatch(sc.imageID, sc.modificationID))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("verification did not finish")
	}
}

func TestDispatch_QueueFull(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool := worker.NewPool(discardLogger(), 1, 1)
	pool.Start(ctx)

	started := make(chan struct{})
	release := make(chan struct{})
	defer close(release)
	t.Cleanup(pool.Stop)

	// one task running, one parked in the queue
	require.NoError(t, pool.Submit(func(context.Context) {
		close(started)
		<-release
	}))
	<-started
	require.NoError(t, pool.Submit(func(context.Context) {}))

	results := mocks.NewResultStore(t)
	source := mocks.NewInstructionSource(t)

	v := newVerifier(testConfig(t), results, source, pool)

	err := v.Dispatch(uuid.New(), uuid.New())
	require.ErrorIs(t, err, worker.ErrQueueFull)
}
