package verificationStats_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"github.com/dabolichin/ligence-task/internal/http-server/handlers/verification/verificationStats"
	"github.com/dabolichin/ligence-task/internal/http-server/handlers/verification/verificationStats/mocks"
	"github.com/dabolichin/ligence-task/internal/models"
	"github.com/stretchr/testify/require"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestVerificationStats(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))

	tests := []struct {
		name           string
		setup          func(provider *mocks.StatisticsProvider)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			setup: func(provider *mocks.StatisticsProvider) {
				provider.On("Statistics").Return(models.VerificationStatistics{
					Total:       8,
					Successful:  5,
					Failed:      2,
					Pending:     1,
					SuccessRate: 62.5,
				}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","statistics":{"total_verifications":8,"successful_verifications":5,"failed_verifications":2,"pending_verifications":1,"success_rate":62.5}}`,
		},
		{
			name: "Empty",
			setup: func(provider *mocks.StatisticsProvider) {
				provider.On("Statistics").Return(models.VerificationStatistics{}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","statistics":{"total_verifications":0,"successful_verifications":0,"failed_verifications":0,"pending_verifications":0,"success_rate":0}}`,
		},
		{
			name: "Storage Error",
			setup: func(provider *mocks.StatisticsProvider) {
				provider.On("Statistics").Return(models.VerificationStatistics{}, errors.New("db error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get statistics"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providerMock := mocks.NewStatisticsProvider(t)

			if tt.setup != nil {
				tt.setup(providerMock)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/verification/statistics", nil)
			rr := httptest.NewRecorder()

			handler := verificationStats.New(log, providerMock)
			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)

			var actualMap, expectedMap map[string]interface{}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &actualMap))
			require.NoError(t, json.Unmarshal([]byte(tt.expectedBody), &expectedMap))
			require.Equal(t, expectedMap, actualMap)
		})
	}
}
