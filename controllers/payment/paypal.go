package paymentControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dammyprolific/shopWithDammy/payment"
	"github.com/dammyprolific/shopWithDammy/store"
)

// InitiatePayPalPayment starts a PayPal checkout for the caller's cart and
// returns the approval URL the customer must visit. The transaction
// reference rides along on the return URL so the callback can find it.
func InitiatePayPalPayment(co *payment.Checkout, provider payment.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var input initiateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart_code is required."})
			return
		}

		base := frontendBaseURL()
		result, err := co.Initiate(c.Request.Context(), provider, userID, input.CartCode, "USD",
			func(ref string) string { return base + "/paypal-payment-callback/?ref=" + ref })
		if err != nil {
			respondInitiateError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"approval_url": result.Redirect.URL})
	}
}

type paypalCallbackInput struct {
	PaymentID string `json:"paymentId"`
	PayerID   string `json:"PayerID"`
	Ref       string `json:"ref"`
}

// PayPalPaymentCallback executes the approved payment and commits the
// transaction. Identifiers may arrive in the JSON body or as query
// parameters, depending on how the storefront relays the redirect.
func PayPalPaymentCallback(co *payment.Checkout, provider payment.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input paypalCallbackInput
		_ = c.ShouldBindJSON(&input)
		if input.PaymentID == "" {
			input.PaymentID = c.Query("paymentId")
		}
		if input.PayerID == "" {
			input.PayerID = c.Query("PayerID")
		}
		if input.Ref == "" {
			input.Ref = c.Query("ref")
		}

		if input.Ref == "" || input.PaymentID == "" || input.PayerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid callback parameters"})
			return
		}

		_, err := co.Confirm(c.Request.Context(), provider, payment.VerifyPaymentRequest{
			Ref:       input.Ref,
			PaymentID: input.PaymentID,
			PayerID:   input.PayerID,
		})
		if err != nil {
			var provErr *payment.ProviderError
			switch {
			case errors.Is(err, store.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			case errors.As(err, &provErr):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Payment execution failed"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Payment successful"})
	}
}
