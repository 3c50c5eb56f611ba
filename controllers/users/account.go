package users

import (
	"net/http"

	"github.com/Pydart-Intelli-Corp/investo-sub001/database"
	"github.com/Pydart-Intelli-Corp/investo-sub001/models"
	"github.com/Pydart-Intelli-Corp/investo-sub001/utils"
)

// GetProfile returns the authenticated user's account record.
// GET /api/users/profile
func GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "User not found"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: user})
}

// GetDashboard returns the numbers the user home screen shows: balance,
// invested totals, running investments and pending submissions.
// GET /api/users/dashboard
func GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "User not found"})
		return
	}

	db := database.DB
	var runningInvestments int64
	db.Model(&models.Investment{}).Where("user_id = ? AND status = ?", userID, "Running").Count(&runningInvestments)

	var pendingPayments int64
	db.Model(&models.PaymentRequest{}).Where("user_id = ? AND status = ?", userID, models.PaymentPending).Count(&pendingPayments)

	var totalReturned float64
	db.Model(&models.Investment{}).Where("user_id = ?", userID).
		Select("COALESCE(SUM(total_returned),0)").Scan(&totalReturned)

	var directReferrals int64
	db.Model(&models.User{}).Where("referred_by = ?", userID).Count(&directReferrals)

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"balance":             user.Balance,
			"total_invest":        user.TotalInvest,
			"total_commissions":   user.TotalCommissions,
			"total_returned":      totalReturned,
			"running_investments": runningInvestments,
			"pending_payments":    pendingPayments,
			"direct_referrals":    directReferrals,
			"referral_code":       user.ReferralCode,
		},
	})
}
