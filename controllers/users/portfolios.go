package users

import (
	"net/http"

	"github.com/Pydart-Intelli-Corp/investo-sub001/database"
	"github.com/Pydart-Intelli-Corp/investo-sub001/models"
	"github.com/Pydart-Intelli-Corp/investo-sub001/utils"
)

// GetPortfolios lists the plans currently open for investment. Optional
// asset_type filter (CRYPTO or GOLD).
// GET /api/users/portfolios
func GetPortfolios(w http.ResponseWriter, r *http.Request) {
	query := database.DB.Where("status = ?", "Active")
	if asset := r.URL.Query().Get("asset_type"); asset != "" {
		query = query.Where("asset_type = ?", asset)
	}

	var portfolios []models.Portfolio
	if err := query.Order("min_amount ASC").Find(&portfolios).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to fetch portfolios"})
		return
	}
	if portfolios == nil {
		portfolios = make([]models.Portfolio, 0)
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: portfolios})
}
