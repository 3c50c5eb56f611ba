package models

import "time"

// walletNetworks pairs each supported wallet type with the networks it may be
// configured on. Creates and updates must stay inside this table.
var walletNetworks = map[string][]string{
	"USDT": {"TRC20", "ERC20", "BEP20"},
	"USDC": {"ERC20", "BEP20"},
	"BTC":  {"Bitcoin"},
	"ETH":  {"ERC20"},
	"GOLD": {"Internal"},
}

// ValidWalletNetwork reports whether networkType is a legal network for walletType.
func ValidWalletNetwork(walletType, networkType string) bool {
	for _, n := range walletNetworks[walletType] {
		if n == networkType {
			return true
		}
	}
	return false
}

// WalletTypes returns the supported wallet types with their allowed networks,
// for the admin wallet form.
func WalletTypes() map[string][]string {
	out := make(map[string][]string, len(walletNetworks))
	for k, v := range walletNetworks {
		out[k] = append([]string(nil), v...)
	}
	return out
}

type AdminWallet struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	WalletType    string    `gorm:"type:varchar(16);not null" json:"wallet_type"`
	WalletAddress string    `gorm:"type:varchar(191);not null" json:"wallet_address"`
	NetworkType   string    `gorm:"type:varchar(32);not null" json:"network_type"`
	QRCodeURL     *string   `gorm:"type:text" json:"qr_code_url,omitempty"`
	IsActive      bool      `gorm:"not null;default:true;index" json:"is_active"`
	Description   *string   `gorm:"type:text" json:"description,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (AdminWallet) TableName() string {
	return "admin_wallets"
}
