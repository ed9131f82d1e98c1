package selector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/enviromat/enviromat/internal/model"
	"github.com/enviromat/enviromat/pgk/retryablehttp"
)

type candidatePayload struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	City  string `json:"city"`
	State string `json:"state"`
}

type selectRequest struct {
	Candidates []candidatePayload `json:"candidates"`
	Location   model.Location     `json:"location"`
	Address    model.Address      `json:"address"`
}

type selectResponse struct {
	PickerID *int64 `json:"pickerId"`
}

// Client calls the inference service over HTTP. Every call is bounded by
// the configured timeout; on expiry or any malformed reply the caller gets
// the "no selection" outcome rather than an error it must handle.
type Client struct {
	address string
	timeout time.Duration
	client  *retryablehttp.RetryableClient
}

func NewClient(address string, timeout time.Duration) *Client {
	return &Client{
		address: address,
		timeout: timeout,
		client:  retryablehttp.NewRetryableClient(retryablehttp.RetryConfig{}),
	}
}

func (c *Client) SelectNearest(ctx context.Context, candidates []model.Picker, location model.Location, address model.Address) (*model.Picker, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	payload := selectRequest{
		Candidates: make([]candidatePayload, 0, len(candidates)),
		Location:   location,
		Address:    address,
	}
	for _, p := range candidates {
		payload.Candidates = append(payload.Candidates, candidatePayload{
			ID:    p.ID,
			Name:  fmt.Sprintf("%s %s", p.FirstName, p.LastName),
			Phone: p.Phone,
			City:  p.City,
			State: p.State,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, c.address+"/api/nearest-picker", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	response, err := c.client.Do(callCtx, req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nearest-picker request failed: %s", http.StatusText(response.StatusCode))
	}

	var result selectResponse
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		// an unreadable verdict means no selection, not a failed create
		return nil, nil
	}

	if result.PickerID == nil {
		return nil, nil
	}

	// the verdict must name one of the candidates we sent
	for i := range candidates {
		if candidates[i].ID == *result.PickerID {
			return &candidates[i], nil
		}
	}

	return nil, nil
}
