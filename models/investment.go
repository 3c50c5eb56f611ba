package models

import "time"

type Investment struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	UserID           uint       `gorm:"not null;index" json:"user_id"`
	PortfolioID      uint       `gorm:"not null;index" json:"portfolio_id"`
	PaymentRequestID uint       `gorm:"not null;index" json:"payment_request_id"`
	Amount           float64    `gorm:"type:decimal(15,2);not null" json:"amount"`
	DailyProfit      float64    `gorm:"type:decimal(15,2);not null" json:"daily_profit"`
	Duration         int        `gorm:"not null" json:"duration"`
	TotalPaid        int        `gorm:"not null;default:0" json:"total_paid"`
	TotalReturned    float64    `gorm:"type:decimal(15,2);not null;default:0.00" json:"total_returned"`
	LastReturnAt     *time.Time `json:"last_return_at,omitempty"`
	NextReturnAt     *time.Time `json:"next_return_at,omitempty"`
	OrderID          string     `gorm:"type:varchar(191);not null;uniqueIndex" json:"order_id"`
	Status           string     `gorm:"type:enum('Running','Completed','Suspended');default:'Running'" json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	// Relations
	Portfolio *Portfolio `gorm:"foreignKey:PortfolioID" json:"portfolio,omitempty"`
}

func (Investment) TableName() string {
	return "investments"
}
