package payment

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// PayPal is the USD gateway: create returns an approval URL the customer
// visits, and the callback's paymentId/PayerID pair is executed to capture
// the funds.
type PayPal struct {
	ClientID string
	Secret   string
	BaseURL  string
	Client   *http.Client
}

func NewPayPal() *PayPal {
	base := "https://api-m.sandbox.paypal.com"
	if os.Getenv("PAYPAL_MODE") == "live" {
		base = "https://api-m.paypal.com"
	}
	return &PayPal{
		ClientID: os.Getenv("PAYPAL_CLIENT_ID"),
		Secret:   os.Getenv("PAYPAL_SECRET_KEY"),
		BaseURL:  base,
		Client:   defaultHTTPClient,
	}
}

func (p *PayPal) Name() string { return "PayPal" }

// accessToken exchanges the client credentials for a bearer token.
func (p *PayPal) accessToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.BaseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(p.ClientID, p.Secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	body, status, err := doJSON(p.Client, req)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", &ProviderError{Provider: p.Name(), Status: status, Body: body}
	}
	token, _ := body["access_token"].(string)
	return token, nil
}

func (p *PayPal) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*PaymentRedirect, error) {
	token, err := p.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"intent": "sale",
		"payer":  map[string]string{"payment_method": "paypal"},
		"redirect_urls": map[string]string{
			"return_url": req.RedirectURL,
			"cancel_url": req.RedirectURL,
		},
		"transactions": []map[string]interface{}{{
			"item_list": map[string]interface{}{
				"items": []map[string]interface{}{{
					"name":     "Cart Items",
					"sku":      "cart",
					"price":    req.Amount.StringFixed(2),
					"currency": req.Currency,
					"quantity": 1,
				}},
			},
			"amount": map[string]interface{}{
				"total":    req.Amount.StringFixed(2),
				"currency": req.Currency,
			},
			"description": "ShopNow Payment",
		}},
	}

	httpReq, err := jsonRequest(ctx, http.MethodPost, p.BaseURL+"/v1/payments/payment", payload)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)

	body, status, err := doJSON(p.Client, httpReq)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return nil, &ProviderError{Provider: p.Name(), Status: status, Body: body}
	}

	if links, ok := body["links"].([]interface{}); ok {
		for _, l := range links {
			link, ok := l.(map[string]interface{})
			if !ok {
				continue
			}
			if link["rel"] == "approval_url" {
				href, _ := link["href"].(string)
				return &PaymentRedirect{URL: href, Body: body}, nil
			}
		}
	}
	return nil, &ProviderError{Provider: p.Name(), Status: http.StatusBadRequest, Body: body}
}

// VerifyPayment executes the approved payment. Execution moves money, so it
// is attempted exactly once — never retried.
func (p *PayPal) VerifyPayment(ctx context.Context, req VerifyPaymentRequest) error {
	token, err := p.accessToken(ctx)
	if err != nil {
		return err
	}

	payload := map[string]string{"payer_id": req.PayerID}
	httpReq, err := jsonRequest(ctx, http.MethodPost,
		p.BaseURL+"/v1/payments/payment/"+req.PaymentID+"/execute", payload)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)

	body, status, err := doJSON(p.Client, httpReq)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return &ProviderError{Provider: p.Name(), Status: status, Body: body}
	}
	if state, _ := body["state"].(string); state != "approved" {
		return &ProviderError{Provider: p.Name(), Status: http.StatusBadRequest, Body: body}
	}
	return nil
}
