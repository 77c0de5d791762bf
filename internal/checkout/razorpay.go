package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/pkg/browser"

	appconfig "nynf/internal/config"
	"nynf/internal/logging"
)

// Environment variables overriding the embedded provider credentials
const (
	envKeyID     = "NYNF_CHECKOUT_KEY_ID"
	envKeySecret = "NYNF_CHECKOUT_KEY_SECRET"
)

// RazorpayClient implements the Provider interface against a Razorpay-style
// orders API. It opens the hosted checkout page in the user's browser and
// polls the order's payments until one resolves or the context expires.
type RazorpayClient struct {
	baseURL      string
	keyID        string
	keySecret    string
	pollInterval time.Duration
	httpClient   *http.Client
	logger       *logging.Logger
	openPage     func(url string) error
}

// NewRazorpayClient creates a provider client from the checkout config
func NewRazorpayClient(cfg appconfig.CheckoutConfig) *RazorpayClient {
	keyID := cfg.KeyID
	if v := os.Getenv(envKeyID); v != "" {
		keyID = v
	}

	pollInterval := time.Duration(cfg.PollIntervalSeconds) * time.Second
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	return &RazorpayClient{
		baseURL:      cfg.BaseURL,
		keyID:        keyID,
		keySecret:    os.Getenv(envKeySecret),
		pollInterval: pollInterval,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:   logging.NewDefaultLogger("razorpay"),
		openPage: browser.OpenURL,
	}
}

type orderRequestBody struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt,omitempty"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type orderResponseBody struct {
	ID string `json:"id"`
}

// CreateOrder registers the checkout session with the provider
func (c *RazorpayClient) CreateOrder(ctx context.Context, req OrderRequest) (string, error) {
	body, err := json.Marshal(orderRequestBody{
		Amount:   req.AmountMinorUnits,
		Currency: req.Currency,
		Receipt:  req.Description,
		Notes:    req.Notes,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal order request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build order request: %w", err)
	}
	httpReq.SetBasicAuth(c.keyID, c.keySecret)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("order request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("order request returned HTTP %d", resp.StatusCode)
	}

	var order orderResponseBody
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return "", fmt.Errorf("failed to decode order response: %w", err)
	}

	c.logger.Debug("created order %s", order.ID)
	return order.ID, nil
}

type paymentEntity struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	OrderID          string `json:"order_id"`
	ErrorDescription string `json:"error_description"`
}

type paymentCollection struct {
	Count int             `json:"count"`
	Items []paymentEntity `json:"items"`
}

// AwaitPayment opens the hosted checkout page and polls the order's
// payments until one is captured or failed, or ctx expires.
func (c *RazorpayClient) AwaitPayment(ctx context.Context, orderID string) (PaymentResult, error) {
	checkoutURL := fmt.Sprintf("%s/checkout/embedded?key_id=%s&order_id=%s",
		c.baseURL, url.QueryEscape(c.keyID), url.QueryEscape(orderID))
	if err := c.openPage(checkoutURL); err != nil {
		c.logger.Warn("failed to open checkout page, complete it manually: %s (%v)", checkoutURL, err)
	}

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return PaymentResult{}, ctx.Err()
		case <-ticker.C:
			result, resolved, err := c.pollOnce(ctx, orderID)
			if err != nil {
				// Transient poll failures are retried until the deadline
				c.logger.Debug("poll failed: %v", err)
				continue
			}
			if resolved {
				return result, nil
			}
		}
	}
}

func (c *RazorpayClient) pollOnce(ctx context.Context, orderID string) (PaymentResult, bool, error) {
	pollURL := fmt.Sprintf("%s/orders/%s/payments", c.baseURL, url.PathEscape(orderID))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, pollURL, nil)
	if err != nil {
		return PaymentResult{}, false, err
	}
	httpReq.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return PaymentResult{}, false, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return PaymentResult{}, false, fmt.Errorf("payments poll returned HTTP %d", resp.StatusCode)
	}

	var payments paymentCollection
	if err := json.NewDecoder(resp.Body).Decode(&payments); err != nil {
		return PaymentResult{}, false, err
	}

	for _, p := range payments.Items {
		switch p.Status {
		case "captured":
			return PaymentResult{
				Outcome:   OutcomeSuccess,
				PaymentID: p.ID,
				OrderID:   orderID,
			}, true, nil
		case "failed":
			return PaymentResult{
				Outcome:          OutcomeFailed,
				PaymentID:        p.ID,
				OrderID:          orderID,
				ErrorDescription: p.ErrorDescription,
			}, true, nil
		}
	}

	return PaymentResult{}, false, nil
}
