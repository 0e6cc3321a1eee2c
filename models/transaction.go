package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction statuses. A transaction is a payment attempt record, not a
// database transaction: it is created pending and flipped to completed
// exactly once, on successful provider verification.
const (
	TransactionPending   = "pending"
	TransactionCompleted = "completed"
	TransactionFailed    = "failed"
)

type Transaction struct {
	ID         uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Ref        string          `gorm:"size:225;uniqueIndex;not null" json:"ref"`
	UserID     uint            `gorm:"index;not null" json:"user_id"`
	CartID     uint            `gorm:"index;not null" json:"cart_id"`
	Cart       Cart            `gorm:"foreignKey:CartID" json:"-"`
	Amount     decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	Currency   string          `gorm:"size:10;default:'NGN'" json:"currency"`
	Status     string          `gorm:"size:20;default:'pending'" json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	ModifiedAt time.Time       `gorm:"autoUpdateTime" json:"modified_at"`
}

// FormattedAmount renders the amount with comma grouping, e.g. 67,000,000.00.
func (t *Transaction) FormattedAmount() string {
	return formatAmount(t.Amount)
}
