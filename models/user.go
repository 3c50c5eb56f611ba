package models

import "time"

type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	FirstName        string    `gorm:"size:100;not null" json:"first_name"`
	LastName         string    `gorm:"size:100;not null" json:"last_name"`
	Email            string    `gorm:"size:191;uniqueIndex;not null" json:"email"`
	PhoneNumber      *string   `gorm:"size:32" json:"phone_number,omitempty"`
	Password         string    `gorm:"size:255;not null" json:"-"`
	ReferralCode     string    `gorm:"size:20;uniqueIndex;not null" json:"referral_code"`
	ReferredBy       *uint     `gorm:"column:referred_by;index" json:"referred_by,omitempty"`
	Balance          float64   `gorm:"type:decimal(15,2);default:0" json:"balance"`
	TotalInvest      float64   `gorm:"column:total_invest;type:decimal(15,2);default:0" json:"total_invest"`
	TotalCommissions float64   `gorm:"column:total_commissions;type:decimal(15,2);default:0" json:"total_commissions"`
	Status           string    `gorm:"type:enum('Active','Inactive','Suspend');default:'Active'" json:"status"`
	InvestmentStatus string    `gorm:"type:enum('Active','Inactive');default:'Inactive'" json:"investment_status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"-"`
}

func (User) TableName() string {
	return "users"
}
