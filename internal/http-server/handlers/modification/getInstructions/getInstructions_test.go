package getInstructions_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/dabolichin/ligence-task/internal/http-server/handlers/modification/getInstructions"
	"github.com/dabolichin/ligence-task/internal/http-server/handlers/modification/getInstructions/mocks"
	"github.com/dabolichin/ligence-task/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetInstructions(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))

	modificationID, _ := uuid.NewRandom()
	imageID, _ := uuid.NewRandom()
	createdAt := time.Date(2025, 2, 10, 11, 0, 0, 0, time.UTC)

	instructions := `{"algorithm_type":"xor_transform","image_mode":"RGB","operations":[{"position":0,"parameter":42}]}`

	testModification := &models.Modification{
		ID:            modificationID,
		ImageID:       imageID,
		VariantNumber: 7,
		AlgorithmType: models.AlgorithmXORTransform,
		Instructions:  json.RawMessage(instructions),
		StoragePath:   fmt.Sprintf("storage/modified/%s_variant_007.png", imageID),
		CreatedAt:     createdAt,
	}

	testImage := &models.Image{
		ID:               imageID,
		OriginalFilename: "photo.png",
	}

	tests := []struct {
		name           string
		modificationID string
		setup          func(provider *mocks.InstructionProvider)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			modificationID: modificationID.String(),
			setup: func(provider *mocks.InstructionProvider) {
				provider.On("GetModification", mock.Anything, modificationID).Return(testModification, nil).Once()
				provider.On("GetImage", mock.Anything, imageID).Return(testImage, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody: fmt.Sprintf(
				`{"modification_id":"%s","image_id":"%s","original_filename":"photo.png","variant_number":7,"algorithm_type":"xor_transform","instructions":%s,"storage_path":"storage/modified/%s_variant_007.png","created_at":"2025-02-10T11:00:00Z"}`,
				modificationID, imageID, instructions, imageID,
			),
		},
		{
			name:           "Invalid UUID",
			modificationID: "invalid-uuid",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid modification ID"}`,
		},
		{
			name:           "Not Found",
			modificationID: modificationID.String(),
			setup: func(provider *mocks.InstructionProvider) {
				provider.On("GetModification", mock.Anything, modificationID).Return(nil, sql.ErrNoRows).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"modification not found"}`,
		},
		{
			name:           "Modification Storage Error",
			modificationID: modificationID.String(),
			setup: func(provider *mocks.InstructionProvider) {
				provider.On("GetModification", mock.Anything, modificationID).Return(nil, errors.New("db error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get modification"}`,
		},
		{
			name:           "Image Row Missing",
			modificationID: modificationID.String(),
			setup: func(provider *mocks.InstructionProvider) {
				provider.On("GetModification", mock.Anything, modificationID).Return(testModification, nil).Once()
				provider.On("GetImage", mock.Anything, imageID).Return(nil, sql.ErrNoRows).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get image"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providerMock := mocks.NewInstructionProvider(t)

			if tt.setup != nil {
				tt.setup(providerMock)
			}

			req := httptest.NewRequest(
				http.MethodGet,
				fmt.Sprintf("/internal/modifications/%s/instructions", tt.modificationID),
				nil,
			)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.modificationID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()

			handler := getInstructions.New(log, providerMock)
			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)

			var actualMap, expectedMap map[string]interface{}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &actualMap))
			require.NoError(t, json.Unmarshal([]byte(tt.expectedBody), &expectedMap))
			require.Equal(t, expectedMap, actualMap)
		})
	}
}
