package requestVerification_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/dabolichin/ligence-task/internal/http-server/handlers/verification/requestVerification"
	"github.com/dabolichin/ligence-task/internal/http-server/handlers/verification/requestVerification/mocks"
	"github.com/dabolichin/ligence-task/internal/worker"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestVerification(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))

	imageID, _ := uuid.NewRandom()
	modificationID, _ := uuid.NewRandom()

	validBody := fmt.Sprintf(`{"image_id":"%s","modification_id":"%s"}`, imageID, modificationID)

	tests := []struct {
		name           string
		requestBody    string
		setup          func(checker *mocks.ResultChecker, dispatcher *mocks.Dispatcher)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Accepted",
			requestBody: validBody,
			setup: func(checker *mocks.ResultChecker, dispatcher *mocks.Dispatcher) {
				checker.On("Exists", modificationID).Return(false, nil).Once()
				dispatcher.On("Dispatch", imageID, modificationID).Return(nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody: fmt.Sprintf(
				`{"status":"OK","modification_id":"%s","result":"accepted"}`,
				modificationID,
			),
		},
		{
			name:        "Already Exists",
			requestBody: validBody,
			setup: func(checker *mocks.ResultChecker, dispatcher *mocks.Dispatcher) {
				checker.On("Exists", modificationID).Return(true, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody: fmt.Sprintf(
				`{"status":"OK","modification_id":"%s","result":"already_exists"}`,
				modificationID,
			),
		},
		{
			name:           "Malformed Body",
			requestBody:    `{invalid`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing Modification ID",
			requestBody:    fmt.Sprintf(`{"image_id":"%s"}`, imageID),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field ModificationID is a required field"}`,
		},
		{
			name:        "Queue Full",
			requestBody: validBody,
			setup: func(checker *mocks.ResultChecker, dispatcher *mocks.Dispatcher) {
				checker.On("Exists", modificationID).Return(false, nil).Once()
				dispatcher.On("Dispatch", imageID, modificationID).
					Return(fmt.Errorf("verifier.Dispatch: %w", worker.ErrQueueFull)).Once()
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"status":"Error","error":"verification queue is full"}`,
		},
		{
			name:        "Exists Check Fails",
			requestBody: validBody,
			setup: func(checker *mocks.ResultChecker, dispatcher *mocks.Dispatcher) {
				checker.On("Exists", modificationID).Return(false, errors.New("db error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to check verification status"}`,
		},
		{
			name:        "Dispatch Fails",
			requestBody: validBody,
			setup: func(checker *mocks.ResultChecker, dispatcher *mocks.Dispatcher) {
				checker.On("Exists", modificationID).Return(false, nil).Once()
				dispatcher.On("Dispatch", imageID, modificationID).Return(errors.New("pool stopped")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to start verification"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkerMock := mocks.NewResultChecker(t)
			dispatcherMock := mocks.NewDispatcher(t)

			if tt.setup != nil {
				tt.setup(checkerMock, dispatcherMock)
			}

			req := httptest.NewRequest(
				http.MethodPost,
				"/internal/verify",
				bytes.NewReader([]byte(tt.requestBody)),
			)
			req.Header.Set("Content-Type", "application/json")

			rr := httptest.NewRecorder()

			handler := requestVerification.New(log, checkerMock, dispatcherMock)
			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)

			var actualMap, expectedMap map[string]interface{}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &actualMap))
			require.NoError(t, json.Unmarshal([]byte(tt.expectedBody), &expectedMap))
			require.Equal(t, expectedMap, actualMap)
		})
	}
}
