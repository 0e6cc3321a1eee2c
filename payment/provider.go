// Package payment drives checkout against external payment gateways. Both
// gateways follow one conceptual protocol — create a payment, send the
// customer to a redirect target, reconcile the callback, verify, commit — so
// they sit behind a single Provider interface and the orchestrator never
// knows which one it is talking to.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

type Provider interface {
	Name() string
	// CreatePayment registers the payment with the gateway and returns the
	// redirect or approval target the customer must visit.
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (*PaymentRedirect, error)
	// VerifyPayment confirms with the gateway that the payment referenced by
	// the callback actually went through.
	VerifyPayment(ctx context.Context, req VerifyPaymentRequest) error
}

type CreatePaymentRequest struct {
	Ref           string
	Amount        decimal.Decimal
	Currency      string
	RedirectURL   string
	CustomerEmail string
	CustomerName  string
	CustomerPhone string
}

// PaymentRedirect is the gateway's answer to a successful create call.
type PaymentRedirect struct {
	// URL is where the customer completes the payment.
	URL string
	// Body is the gateway's raw create response, passed through to callers
	// that want the full payload.
	Body map[string]interface{}
}

// VerifyPaymentRequest carries the callback identifiers. Which fields are set
// depends on the gateway: Flutterwave reports a transaction id, PayPal a
// payment id plus payer id. Ref is always present.
type VerifyPaymentRequest struct {
	Ref           string
	TransactionID string
	PaymentID     string
	PayerID       string
}

// ProviderError carries a gateway's non-success response so handlers can
// surface the gateway's own status and payload.
type ProviderError struct {
	Provider string
	Status   int
	Body     map[string]interface{}
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s API error (%d)", e.Provider, e.Status)
}

// Gateway calls are synchronous on the request path, so they get a bounded
// timeout instead of hanging a storefront request on a slow provider.
var defaultHTTPClient = &http.Client{Timeout: 15 * time.Second}

// doJSON sends the request and decodes the JSON response body into a map.
// A nil error with a non-2xx status is the caller's problem to classify.
func doJSON(client *http.Client, req *http.Request) (map[string]interface{}, int, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	body := map[string]interface{}{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			return nil, resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}
	return body, resp.StatusCode, nil
}

func jsonRequest(ctx context.Context, method, url string, payload interface{}) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewBuffer(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}
