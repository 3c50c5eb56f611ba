package models

import "time"

// PaymentStatus is the closed set of states a PaymentRequest moves through.
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "PENDING"
	PaymentProcessing PaymentStatus = "PROCESSING"
	PaymentCompleted  PaymentStatus = "COMPLETED"
	PaymentRejected   PaymentStatus = "REJECTED"
	PaymentCancelled  PaymentStatus = "CANCELLED"
)

// PaymentType distinguishes what the submitted payment buys.
type PaymentType string

const (
	PaymentTypeInvestment   PaymentType = "INVESTMENT"
	PaymentTypeSubscription PaymentType = "SUBSCRIPTION"
)

// paymentTransitions is the authoritative transition table. PROCESSING is an
// intermediate claim state used by the bulk coordinator; COMPLETED, REJECTED
// and CANCELLED are terminal.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending:    {PaymentProcessing, PaymentCompleted, PaymentRejected, PaymentCancelled},
	PaymentProcessing: {PaymentCompleted, PaymentRejected},
}

// CanTransition reports whether a payment may move from one status to another.
func CanTransition(from, to PaymentStatus) bool {
	for _, next := range paymentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a status admits no further transitions.
func (s PaymentStatus) IsTerminal() bool {
	return len(paymentTransitions[s]) == 0
}

// ValidPaymentStatus reports whether s is a member of the closed status set.
// Filter params arrive as free text, so list handlers check before querying.
func ValidPaymentStatus(s string) bool {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentProcessing, PaymentCompleted, PaymentRejected, PaymentCancelled:
		return true
	}
	return false
}

type PaymentRequest struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	UserID          uint          `gorm:"not null;index" json:"user_id"`
	PortfolioID     uint          `gorm:"not null;index" json:"portfolio_id"`
	AdminWalletID   uint          `gorm:"not null;index" json:"admin_wallet_id"`
	Amount          float64       `gorm:"type:decimal(15,2);not null" json:"amount"`
	SubscriptionFee float64       `gorm:"type:decimal(15,2);not null;default:0.00" json:"subscription_fee"`
	TotalAmount     float64       `gorm:"type:decimal(15,2);not null" json:"total_amount"`
	PaymentType     PaymentType   `gorm:"type:enum('INVESTMENT','SUBSCRIPTION');not null;default:'INVESTMENT'" json:"payment_type"`
	OrderID         string        `gorm:"type:varchar(191);not null;uniqueIndex" json:"order_id"`
	Status          PaymentStatus `gorm:"type:enum('PENDING','PROCESSING','COMPLETED','REJECTED','CANCELLED');not null;default:'PENDING';index" json:"status"`
	ScreenshotURL   string        `gorm:"type:text;not null" json:"screenshot_url"`
	TransactionHash *string       `gorm:"type:varchar(191)" json:"transaction_hash,omitempty"`
	AdminNotes      *string       `gorm:"type:text" json:"admin_notes,omitempty"`
	ProcessedBy     *int64        `gorm:"index" json:"processed_by,omitempty"`
	ProcessedAt     *time.Time    `json:"processed_at,omitempty"`
	RejectionReason *string       `gorm:"type:text" json:"rejection_reason,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	// Relations
	User        *User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Portfolio   *Portfolio   `gorm:"foreignKey:PortfolioID" json:"portfolio,omitempty"`
	AdminWallet *AdminWallet `gorm:"foreignKey:AdminWalletID" json:"admin_wallet,omitempty"`
}

func (PaymentRequest) TableName() string {
	return "payment_requests"
}
