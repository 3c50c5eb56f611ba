package users

import (
	"math"
	"net/http"
	"strconv"

	"github.com/Pydart-Intelli-Corp/investo-sub001/database"
	"github.com/Pydart-Intelli-Corp/investo-sub001/models"
	"github.com/Pydart-Intelli-Corp/investo-sub001/utils"
)

// GetTransactions lists the caller's ledger entries, newest first. Optional
// transaction_type filter (investment, commission, daily_return).
// GET /api/users/transactions
func GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := database.DB.Model(&models.Transaction{}).Where("user_id = ?", userID)
	if t := r.URL.Query().Get("transaction_type"); t != "" {
		query = query.Where("transaction_type = ?", t)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to fetch transactions"})
		return
	}

	var transactions []models.Transaction
	if err := query.Offset((page - 1) * limit).Limit(limit).
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to fetch transactions"})
		return
	}
	if transactions == nil {
		transactions = make([]models.Transaction, 0)
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"transactions": transactions,
			"current_page": page,
			"total_pages":  int(math.Ceil(float64(total) / float64(limit))),
			"total":        total,
		},
	})
}

// GetInvestments lists the caller's investments with their plan details.
// GET /api/users/investments
func GetInvestments(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	query := database.DB.Preload("Portfolio").Where("user_id = ?", userID)
	if s := r.URL.Query().Get("status"); s != "" {
		query = query.Where("status = ?", s)
	}

	var investments []models.Investment
	if err := query.Order("created_at DESC").Find(&investments).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to fetch investments"})
		return
	}
	if investments == nil {
		investments = make([]models.Investment, 0)
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: investments})
}
