// Package notify delivers pickup notifications through an external SMS
// gateway. Delivery is best-effort: the lifecycle never waits on it and a
// failure is only logged.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/enviromat/enviromat/pgk/retryablehttp"
)

// PickupNotification is the structured summary sent to an assigned picker.
type PickupNotification struct {
	PickupID     string  `json:"pickup_id"`
	CustomerName string  `json:"customer_name"`
	WasteType    string  `json:"waste_type"`
	Quantity     float64 `json:"quantity"`
	Address      string  `json:"address"`
}

type SMSSender interface {
	SendPickupSMS(ctx context.Context, to string, n PickupNotification) (string, error)
}

type smsMessage struct {
	From string `json:"from"`
	To   string `json:"to"`
	Body string `json:"body"`
}

type smsResponse struct {
	MessageID string `json:"message_id"`
}

// GatewayClient talks to the SMS provider's REST API.
type GatewayClient struct {
	address string
	from    string
	client  *retryablehttp.RetryableClient
}

func NewGatewayClient(address, from string) *GatewayClient {
	return &GatewayClient{
		address: address,
		from:    from,
		client:  retryablehttp.NewRetryableClient(retryablehttp.RetryConfig{}),
	}
}

func (g *GatewayClient) SendPickupSMS(ctx context.Context, to string, n PickupNotification) (string, error) {
	msg := smsMessage{
		From: g.from,
		To:   to,
		Body: formatPickupBody(n),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.address+"/api/messages", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	response, err := g.client.Do(ctx, req)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("sms gateway request failed: %s", http.StatusText(response.StatusCode))
	}

	var result smsResponse
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return "", err
	}

	return result.MessageID, nil
}

func formatPickupBody(n PickupNotification) string {
	return fmt.Sprintf(
		"New Waste Pickup Request!\nPickup ID: %s\nCustomer: %s\nWaste Type: %s\nQuantity: %g\nAddress: %s\n\nReply 1 = Accept\nReply 2 = Decline",
		n.PickupID, n.CustomerName, n.WasteType, n.Quantity, n.Address,
	)
}
