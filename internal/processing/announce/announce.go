// Package announce notifies the verification service that a modification is
// ready to be checked. The announcement is fire-and-forget from the batch's
// point of view: a failed call is counted by the caller's breaker, never
// retried here.
package announce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/google/uuid"
	"io"
	"log/slog"
	"net/http"
	"time"
)

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

// Announce posts the modification to the verification service and treats
// anything but 200 as failure.
func (c *Client) Announce(ctx context.Context, imageID, modificationID uuid.UUID) error {
	const op = "announce.Announce"

	payload, err := json.Marshal(struct {
		ImageID        uuid.UUID `json:"image_id"`
		ModificationID uuid.UUID `json:"modification_id"`
	}{
		ImageID:        imageID,
		ModificationID: modificationID,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	url := c.baseURL + "/internal/verify"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: verification service returned status %d", op, resp.StatusCode)
	}

	c.log.Debug("verification requested",
		slog.String("modification_id", modificationID.String()),
	)

	return nil
}
