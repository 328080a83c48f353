// Package payment wraps the Razorpay orders API. Signature verification is
// done by the billing usecase, not here.
package payment

import (
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// Order is the subset of the gateway order we rely on.
type Order struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
	Status   string
	Notes    map[string]string
}

type Client struct {
	api *razorpay.Client
}

func NewClient(keyID, secret string) *Client {
	return &Client{api: razorpay.NewClient(keyID, secret)}
}

// CreateOrder creates a gateway order. Amount is in the smallest currency
// subunit (paise for INR). Notes travel with the order and come back on
// fetch, which is how userId/planName survive the payment round trip.
func (c *Client) CreateOrder(amount int64, currency, receipt string, notes map[string]string) (*Order, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
		"notes":    notes,
	}
	raw, err := c.api.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}
	return orderFromMap(raw), nil
}

func (c *Client) FetchOrder(orderID string) (*Order, error) {
	raw, err := c.api.Order.Fetch(orderID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order fetch: %w", err)
	}
	return orderFromMap(raw), nil
}

func orderFromMap(raw map[string]interface{}) *Order {
	o := &Order{Notes: map[string]string{}}
	if v, ok := raw["id"].(string); ok {
		o.ID = v
	}
	// Razorpay returns numbers as float64 through encoding/json.
	if v, ok := raw["amount"].(float64); ok {
		o.Amount = int64(v)
	}
	if v, ok := raw["currency"].(string); ok {
		o.Currency = v
	}
	if v, ok := raw["receipt"].(string); ok {
		o.Receipt = v
	}
	if v, ok := raw["status"].(string); ok {
		o.Status = v
	}
	if notes, ok := raw["notes"].(map[string]interface{}); ok {
		for k, val := range notes {
			if s, ok := val.(string); ok {
				o.Notes[k] = s
			}
		}
	}
	return o
}
