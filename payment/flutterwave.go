package payment

import (
	"context"
	"net/http"
	"os"
	"time"
)

const (
	verifyAttempts = 3
	verifyBackoff  = 500 * time.Millisecond
)

// Flutterwave is the NGN gateway: create returns a hosted payment link, the
// callback reports a transaction id which is then verified with a read call.
type Flutterwave struct {
	SecretKey string
	BaseURL   string
	Client    *http.Client
}

func NewFlutterwave() *Flutterwave {
	return &Flutterwave{
		SecretKey: os.Getenv("FLUTTERWAVE_SECRET_KEY"),
		BaseURL:   "https://api.flutterwave.com",
		Client:    defaultHTTPClient,
	}
}

func (f *Flutterwave) Name() string { return "Flutterwave" }

func (f *Flutterwave) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*PaymentRedirect, error) {
	payload := map[string]interface{}{
		"tx_ref":       req.Ref,
		"amount":       req.Amount.StringFixed(2),
		"currency":     req.Currency,
		"redirect_url": req.RedirectURL,
		"customer": map[string]string{
			"email":       req.CustomerEmail,
			"name":        req.CustomerName,
			"phonenumber": req.CustomerPhone,
		},
		"customizations": map[string]string{
			"title": "ShopNow Payment",
		},
	}

	httpReq, err := jsonRequest(ctx, http.MethodPost, f.BaseURL+"/v3/payments", payload)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+f.SecretKey)

	body, status, err := doJSON(f.Client, httpReq)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return nil, &ProviderError{Provider: f.Name(), Status: status, Body: body}
	}

	redirect := &PaymentRedirect{Body: body}
	if data, ok := body["data"].(map[string]interface{}); ok {
		redirect.URL, _ = data["link"].(string)
	}
	return redirect, nil
}

// VerifyPayment confirms the transaction through the verify endpoint. The
// call is a pure read, so transport failures get a small retry budget;
// a definitive non-success answer from the gateway is returned immediately.
func (f *Flutterwave) VerifyPayment(ctx context.Context, req VerifyPaymentRequest) error {
	var lastErr error
	for attempt := 0; attempt < verifyAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(verifyBackoff):
			}
		}

		httpReq, err := jsonRequest(ctx, http.MethodGet, f.BaseURL+"/v3/transactions/"+req.TransactionID+"/verify", nil)
		if err != nil {
			return err
		}
		httpReq.Header.Set("Authorization", "Bearer "+f.SecretKey)

		body, status, err := doJSON(f.Client, httpReq)
		if err != nil {
			lastErr = err
			continue
		}
		if status != http.StatusOK {
			return &ProviderError{Provider: f.Name(), Status: status, Body: body}
		}
		if s, _ := body["status"].(string); s == "success" {
			return nil
		}
		return &ProviderError{Provider: f.Name(), Status: http.StatusBadRequest, Body: body}
	}
	return lastErr
}
