package paymentControllers

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dammyprolific/shopWithDammy/payment"
	"github.com/dammyprolific/shopWithDammy/store"
)

type initiateInput struct {
	CartCode string `json:"cart_code" binding:"required"`
}

func frontendBaseURL() string {
	return strings.TrimRight(os.Getenv("FRONTEND_BASE_URL"), "/")
}

// InitiatePayment starts a Flutterwave checkout for the caller's cart and
// passes the gateway's create response (payment link included) through to
// the storefront.
func InitiatePayment(co *payment.Checkout, provider payment.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var input initiateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart_code is required."})
			return
		}

		base := frontendBaseURL()
		result, err := co.Initiate(c.Request.Context(), provider, userID, input.CartCode, "NGN",
			func(string) string { return base + "/payment-status/" })
		if err != nil {
			respondInitiateError(c, err)
			return
		}

		c.JSON(http.StatusOK, result.Redirect.Body)
	}
}

// PaymentCallback reconciles Flutterwave's redirect parameters against the
// stored transaction. Registered for both GET and POST: the gateway
// redirects the customer with query parameters either way.
func PaymentCallback(co *payment.Checkout, provider payment.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		transactionID := c.Query("transaction_id")
		ref := c.Query("tx_ref")
		statusParam := c.Query("status")

		if transactionID == "" || ref == "" || statusParam == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"message":    "Missing query parameters",
				"subMessage": "Transaction verification failed due to missing data.",
			})
			return
		}

		if statusParam != "completed" && statusParam != "successful" {
			c.JSON(http.StatusBadRequest, gin.H{
				"message":    "Payment was not successful",
				"subMessage": "Try again or use another method.",
			})
			return
		}

		_, err := co.Confirm(c.Request.Context(), provider, payment.VerifyPaymentRequest{
			Ref:           ref,
			TransactionID: transactionID,
		})
		if err != nil {
			var provErr *payment.ProviderError
			switch {
			case errors.Is(err, store.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{
					"message":    "Transaction not found",
					"subMessage": "No payment attempt matches this reference.",
				})
			case errors.As(err, &provErr):
				c.JSON(http.StatusBadRequest, gin.H{
					"message":    "Payment verification failed",
					"subMessage": "Could not verify with Flutterwave.",
				})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{
					"message":    "Verification error",
					"subMessage": err.Error(),
				})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Payment verified successfully"})
	}
}

func respondInitiateError(c *gin.Context, err error) {
	var provErr *payment.ProviderError
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found."})
	case errors.As(err, &provErr):
		c.JSON(provErr.Status, gin.H{
			"error":   provErr.Provider + " API error",
			"details": provErr.Body,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
