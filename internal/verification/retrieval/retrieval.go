// Package retrieval fetches modification instructions from the processing
// service. A missing modification is reported distinctly from the service
// being unreachable, so callers can tell "bad reference" from "bad network".
package retrieval

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"io"
	"log/slog"
	"net/http"
	"time"
)

var (
	// ErrModificationNotFound means the processing service does not know the
	// modification.
	ErrModificationNotFound = errors.New("modification not found")

	// ErrRetrieval covers transport failures and unexpected responses.
	ErrRetrieval = errors.New("instruction retrieval failed")
)

// InstructionData is the payload served by the processing service for one
// modification. Instructions stays raw here; parsing it is the transform
// engine's job.
type InstructionData struct {
	ModificationID   uuid.UUID       `json:"modification_id"`
	ImageID          uuid.UUID       `json:"image_id"`
	OriginalFilename string          `json:"original_filename"`
	VariantNumber    int             `json:"variant_number"`
	AlgorithmType    string          `json:"algorithm_type"`
	Instructions     json.RawMessage `json:"instructions"`
	StoragePath      string          `json:"storage_path"`
	CreatedAt        time.Time       `json:"created_at"`
}

type Client struct {
	log     *slog.Logger
	baseURL string
	client  *http.Client
}

func New(log *slog.Logger, baseURL string, timeout time.Duration) *Client {
	return &Client{
		log:     log,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Instructions fetches the instruction payload for one modification.
func (c *Client) Instructions(ctx context.Context, modificationID uuid.UUID) (*InstructionData, error) {
	const op = "retrieval.Instructions"

	url := fmt.Sprintf("%s/internal/modifications/%s/instructions", c.baseURL, modificationID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrRetrieval, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: modification %s: %w", op, modificationID, ErrModificationNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%s: unexpected status %d: %w", op, resp.StatusCode, ErrRetrieval)
	}

	var data InstructionData
	if err = json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrRetrieval, err)
	}

	c.log.Debug("instructions retrieved",
		slog.String("modification_id", modificationID.String()),
		slog.Int("variant_number", data.VariantNumber),
	)

	return &data, nil
}
