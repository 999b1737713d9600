// Package whatsapp is a thin client for the WhatsApp HTTP gateway used for
// outbound customer/staff messages. Delivery is best effort: the caller
// logs failures and moves on.
package whatsapp

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

type Client struct {
	http    *resty.Client
	baseURL string
}

type sendRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type sendResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// New builds a client with its own timeout so a slow gateway never blocks
// the caller beyond a bounded window.
func New(baseURL, token string) *Client {
	c := resty.New().
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")
	if token != "" {
		c.SetAuthToken(token)
	}
	return &Client{http: c, baseURL: baseURL}
}

func (c *Client) Send(phone, text string) error {
	if c.baseURL == "" {
		return errors.New("whatsapp gateway not configured")
	}
	if phone == "" {
		return errors.New("empty phone number")
	}

	var out sendResponse
	resp, err := c.http.R().
		SetBody(sendRequest{Phone: phone, Message: text}).
		SetResult(&out).
		Post(c.baseURL + "/send")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("gateway returned %s", resp.Status())
	}
	if !out.Success {
		return fmt.Errorf("gateway refused message: %s", out.Error)
	}
	return nil
}
