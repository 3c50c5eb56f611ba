package users

import (
	"net/http"

	"github.com/Pydart-Intelli-Corp/investo-sub001/database"
	"github.com/Pydart-Intelli-Corp/investo-sub001/models"
	"github.com/Pydart-Intelli-Corp/investo-sub001/utils"
)

// GetDepositWallets lists the active wallets a user can deposit into,
// grouped alongside the asset/network compatibility map so the client can
// render the picker without hardcoding it.
// GET /api/users/wallets
func GetDepositWallets(w http.ResponseWriter, r *http.Request) {
	var wallets []models.AdminWallet
	if err := database.DB.Where("is_active = ?", true).
		Order("wallet_type, network_type").
		Find(&wallets).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to fetch wallets"})
		return
	}
	if wallets == nil {
		wallets = make([]models.AdminWallet, 0)
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"wallets":      wallets,
			"wallet_types": models.WalletTypes(),
		},
	})
}
