package uploadImage_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/dabolichin/ligence-task/internal/http-server/handlers/image/uploadImage"
	saverMocks "github.com/dabolichin/ligence-task/internal/http-server/handlers/image/uploadImage/mocks"
	kafkaMocks "github.com/dabolichin/ligence-task/internal/kafka/producer/mocks"
	"github.com/dabolichin/ligence-task/internal/models"
	"github.com/dabolichin/ligence-task/internal/processing/filestore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUploadImage(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))

	testUUID, _ := uuid.NewRandom()

	mockImage := &models.Image{
		ID:               testUUID,
		OriginalFilename: "test.png",
		StoragePath:      "/data/originals/" + testUUID.String() + "_original.png",
	}

	metadata := &filestore.Metadata{Width: 2, Height: 2, Format: "PNG", FileSize: 17}

	tests := []struct {
		name           string
		fileField      string
		fileName       string
		fileContent    []byte
		maxFileSize    int64
		setup          func(saver *saverMocks.ImageSaver, files *saverMocks.OriginalStore, producer *kafkaMocks.ProducerIface)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			fileField:   "image",
			fileName:    "test.png",
			fileContent: []byte("test file content"),
			setup: func(saver *saverMocks.ImageSaver, files *saverMocks.OriginalStore, producer *kafkaMocks.ProducerIface) {
				files.On("SaveOriginal", mock.Anything, "test.png", mock.AnythingOfType("uuid.UUID")).
					Return(mockImage.StoragePath, metadata, nil).Once()
				saver.On("SaveImage", mock.Anything, mock.AnythingOfType("*models.Image")).
					Return(mockImage, nil).Once()
				producer.On("SendMessage", mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   fmt.Sprintf(`{"status":"OK","image_id":"%s"}`, testUUID),
		},
		{
			name:           "Missing File Field",
			fileField:      "attachment",
			fileName:       "test.png",
			fileContent:    []byte("test file content"),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to get file from request"}`,
		},
		{
			name:           "Empty File",
			fileField:      "image",
			fileName:       "empty.png",
			fileContent:    []byte(""),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"received empty file"}`,
		},
		{
			name:           "File Too Large",
			fileField:      "image",
			fileName:       "huge.png",
			fileContent:    []byte("test file content"),
			maxFileSize:    4,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"file is too large"}`,
		},
		{
			name:        "Not An Image",
			fileField:   "image",
			fileName:    "notes.txt",
			fileContent: []byte("just some text"),
			setup: func(saver *saverMocks.ImageSaver, files *saverMocks.OriginalStore, producer *kafkaMocks.ProducerIface) {
				files.On("SaveOriginal", mock.Anything, "notes.txt", mock.AnythingOfType("uuid.UUID")).
					Return("", nil, filestore.ErrInvalidImage).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"file is not a valid image"}`,
		},
		{
			name:        "Unsupported Format",
			fileField:   "image",
			fileName:    "anim.gif",
			fileContent: []byte("GIF89a..."),
			setup: func(saver *saverMocks.ImageSaver, files *saverMocks.OriginalStore, producer *kafkaMocks.ProducerIface) {
				files.On("SaveOriginal", mock.Anything, "anim.gif", mock.AnythingOfType("uuid.UUID")).
					Return("", nil, filestore.ErrUnsupportedFormat).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"unsupported image format"}`,
		},
		{
			name:        "Failed to Save Metadata",
			fileField:   "image",
			fileName:    "test.png",
			fileContent: []byte("test file content"),
			setup: func(saver *saverMocks.ImageSaver, files *saverMocks.OriginalStore, producer *kafkaMocks.ProducerIface) {
				files.On("SaveOriginal", mock.Anything, "test.png", mock.AnythingOfType("uuid.UUID")).
					Return(mockImage.StoragePath, metadata, nil).Once()
				saver.On("SaveImage", mock.Anything, mock.AnythingOfType("*models.Image")).
					Return(nil, errors.New("db error")).Once()
				files.On("DeleteImageFiles", mock.AnythingOfType("uuid.UUID")).Return(1).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to save image metadata"}`,
		},
		{
			name:        "Failed to Publish to Kafka",
			fileField:   "image",
			fileName:    "test.png",
			fileContent: []byte("test file content"),
			setup: func(saver *saverMocks.ImageSaver, files *saverMocks.OriginalStore, producer *kafkaMocks.ProducerIface) {
				files.On("SaveOriginal", mock.Anything, "test.png", mock.AnythingOfType("uuid.UUID")).
					Return(mockImage.StoragePath, metadata, nil).Once()
				saver.On("SaveImage", mock.Anything, mock.AnythingOfType("*models.Image")).
					Return(mockImage, nil).Once()
				producer.On("SendMessage", mock.Anything, mock.Anything).
					Return(errors.New("kafka error")).Once()
				saver.On("DeleteImage", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(nil).Once()
				files.On("DeleteImageFiles", mock.AnythingOfType("uuid.UUID")).Return(2).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to start image processing"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imageSaverMock := saverMocks.NewImageSaver(t)
			fileStoreMock := saverMocks.NewOriginalStore(t)
			kafkaProducerMock := kafkaMocks.NewProducerIface(t)

			if tt.setup != nil {
				tt.setup(imageSaverMock, fileStoreMock, kafkaProducerMock)
			}

			body := new(bytes.Buffer)
			writer := multipart.NewWriter(body)
			part, err := writer.CreateFormFile(tt.fileField, tt.fileName)
			require.NoError(t, err)
			part.Write(tt.fileContent)
			writer.Close()

			req := httptest.NewRequest(http.MethodPost, "/api/modify", body)
			req.Header.Set("Content-Type", writer.FormDataContentType())

			rr := httptest.NewRecorder()

			maxFileSize := tt.maxFileSize
			if maxFileSize == 0 {
				maxFileSize = 1 << 20
			}

			handler := uploadImage.New(log, maxFileSize, imageSaverMock, fileStoreMock, kafkaProducerMock)
			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)

			var actualMap, expectedMap map[string]interface{}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &actualMap))
			require.NoError(t, json.Unmarshal([]byte(tt.expectedBody), &expectedMap))
			require.Equal(t, expectedMap, actualMap)
		})
	}
}
