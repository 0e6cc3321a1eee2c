package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dammyprolific/shopWithDammy/models"
	"github.com/dammyprolific/shopWithDammy/store"
)

// Tax is the flat amount added to every checkout total.
var Tax = decimal.RequireFromString("1000.00")

// Checkout is the provider-agnostic orchestrator: it owns the
// pending → completed transaction lifecycle and leaves gateway specifics to
// the Provider it is handed.
type Checkout struct {
	Carts        store.CartStore
	Transactions store.TransactionStore
	Users        store.UserStore
}

// InitiateResult is what the caller needs to send the customer off to pay.
type InitiateResult struct {
	Ref      string
	Redirect *PaymentRedirect
}

// Initiate resolves the unpaid cart, computes the total (line sums plus flat
// tax), registers the payment with the gateway and only then persists the
// pending transaction. A rejected create therefore leaves no orphaned
// pending row behind.
func (co *Checkout) Initiate(ctx context.Context, provider Provider, userID uint, cartCode, currency string, redirectFor func(ref string) string) (*InitiateResult, error) {
	cart, err := co.Carts.GetByCode(cartCode)
	if err != nil {
		return nil, err
	}

	user, err := co.Users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	total := cart.SumTotal().Add(Tax)
	ref := uuid.NewString()

	redirect, err := provider.CreatePayment(ctx, CreatePaymentRequest{
		Ref:           ref,
		Amount:        total,
		Currency:      currency,
		RedirectURL:   redirectFor(ref),
		CustomerEmail: user.Email,
		CustomerName:  user.Username,
		CustomerPhone: user.Phone,
	})
	if err != nil {
		return nil, err
	}

	trx := &models.Transaction{
		Ref:      ref,
		UserID:   userID,
		CartID:   cart.ID,
		Amount:   total,
		Currency: currency,
		Status:   models.TransactionPending,
	}
	if err := co.Transactions.Create(trx); err != nil {
		return nil, err
	}

	return &InitiateResult{Ref: ref, Redirect: redirect}, nil
}

// Confirm reconciles a gateway callback against the stored transaction:
// verify with the gateway, then commit the completed status and the cart's
// paid flag. Verification failure leaves everything untouched. A second
// identical callback finds the transaction already completed and is a no-op.
func (co *Checkout) Confirm(ctx context.Context, provider Provider, req VerifyPaymentRequest) (*models.Transaction, error) {
	trx, err := co.Transactions.GetByRef(req.Ref)
	if err != nil {
		return nil, err
	}

	if err := provider.VerifyPayment(ctx, req); err != nil {
		return nil, err
	}

	return co.Transactions.Complete(trx.Ref)
}
