package models

import "time"

// Portfolio is an investment plan a user can pay into. DailyROIPct and
// DurationDays drive the accrual cron; ReferralCommissionPct drives the
// one-level bonus paid when a payment for this plan is approved.
type Portfolio struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	Name                  string    `gorm:"size:100;not null" json:"name"`
	AssetType             string    `gorm:"type:enum('CRYPTO','GOLD');default:'CRYPTO'" json:"asset_type"`
	MinAmount             float64   `gorm:"type:decimal(15,2);not null" json:"min_amount"`
	MaxAmount             float64   `gorm:"type:decimal(15,2);not null" json:"max_amount"`
	DailyROIPct           float64   `gorm:"type:decimal(5,2);not null" json:"daily_roi_pct"`
	DurationDays          int       `gorm:"not null" json:"duration_days"`
	SubscriptionFee       float64   `gorm:"type:decimal(15,2);not null;default:0.00" json:"subscription_fee"`
	ReferralCommissionPct float64   `gorm:"type:decimal(5,2);not null;default:0.00" json:"referral_commission_pct"`
	Status                string    `gorm:"type:enum('Active','Inactive');default:'Active'" json:"status"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func (Portfolio) TableName() string {
	return "portfolios"
}
