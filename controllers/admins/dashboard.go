package admins

import (
	"net/http"

	"github.com/Pydart-Intelli-Corp/investo-sub001/database"
	"github.com/Pydart-Intelli-Corp/investo-sub001/models"
	"github.com/Pydart-Intelli-Corp/investo-sub001/utils"
)

type DashboardStats struct {
	TotalUsers         int64   `json:"total_users"`
	ActiveUsers        int64   `json:"active_users"`
	TotalInvested      float64 `json:"total_invested"`
	RunningInvestments int64   `json:"running_investments"`
	PendingPayments    int64   `json:"pending_payments"`
	PendingAmount      float64 `json:"pending_amount"`
	TotalCommissions   float64 `json:"total_commissions"`
	ActivePortfolios   int64   `json:"active_portfolios"`
}

type dailyPoint struct {
	Day    string  `json:"day"`
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}

// GetDashboard returns platform-wide counters plus the last 30 days of
// deposit activity for the chart.
// GET /api/admin/dashboard
func GetDashboard(w http.ResponseWriter, r *http.Request) {
	db := database.DB
	var stats DashboardStats

	db.Model(&models.User{}).Count(&stats.TotalUsers)
	db.Model(&models.User{}).Where("status = ?", "Active").Count(&stats.ActiveUsers)
	db.Model(&models.User{}).Select("COALESCE(SUM(total_invest),0)").Scan(&stats.TotalInvested)
	db.Model(&models.User{}).Select("COALESCE(SUM(total_commissions),0)").Scan(&stats.TotalCommissions)
	db.Model(&models.Investment{}).Where("status = ?", "Running").Count(&stats.RunningInvestments)
	db.Model(&models.PaymentRequest{}).Where("status = ?", models.PaymentPending).Count(&stats.PendingPayments)
	db.Model(&models.PaymentRequest{}).Where("status = ?", models.PaymentPending).
		Select("COALESCE(SUM(total_amount),0)").Scan(&stats.PendingAmount)
	db.Model(&models.Portfolio{}).Where("status = ?", "Active").Count(&stats.ActivePortfolios)

	var deposits []dailyPoint
	db.Model(&models.PaymentRequest{}).
		Select("DATE_FORMAT(created_at, '%Y-%m-%d') as day, COUNT(*) as count, COALESCE(SUM(total_amount),0) as amount").
		Where("created_at >= DATE_SUB(CURDATE(), INTERVAL 30 DAY)").
		Group("day").
		Order("day ASC").
		Scan(&deposits)
	if deposits == nil {
		deposits = make([]dailyPoint, 0)
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"stats":          stats,
			"daily_deposits": deposits,
		},
	})
}
