package routes

import (
	"github.com/gin-gonic/gin"

	paymentControllers "github.com/dammyprolific/shopWithDammy/controllers/payment"
	"github.com/dammyprolific/shopWithDammy/middleware"
	"github.com/dammyprolific/shopWithDammy/payment"
)

// SetupPaymentRoutes registers checkout initiation (authenticated) and the
// provider callbacks (reached by gateway redirects, so unauthenticated).
func SetupPaymentRoutes(r *gin.Engine, checkout *payment.Checkout, flutterwave, paypal payment.Provider) {
	authed := r.Group("/", middleware.RequireAuth())
	{
		authed.POST("/initiate_payment/", paymentControllers.InitiatePayment(checkout, flutterwave))
		authed.POST("/initiate_paypal_payment/", paymentControllers.InitiatePayPalPayment(checkout, paypal))
	}

	r.GET("/payment_callback/", paymentControllers.PaymentCallback(checkout, flutterwave))
	r.POST("/payment_callback/", paymentControllers.PaymentCallback(checkout, flutterwave))
	r.POST("/paypal_payment_callback/", paymentControllers.PayPalPaymentCallback(checkout, paypal))
}
