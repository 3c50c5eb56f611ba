package admins

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Pydart-Intelli-Corp/investo-sub001/database"
	"github.com/Pydart-Intelli-Corp/investo-sub001/models"
	"github.com/Pydart-Intelli-Corp/investo-sub001/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type PortfolioRequest struct {
	Name                  string  `json:"name"`
	AssetType             string  `json:"asset_type"`
	MinAmount             float64 `json:"min_amount"`
	MaxAmount             float64 `json:"max_amount"`
	DailyROIPct           float64 `json:"daily_roi_pct"`
	DurationDays          int     `json:"duration_days"`
	SubscriptionFee       float64 `json:"subscription_fee"`
	ReferralCommissionPct float64 `json:"referral_commission_pct"`
	Status                string  `json:"status"`
}

func (req *PortfolioRequest) validate() error {
	req.Name = strings.TrimSpace(req.Name)
	req.AssetType = strings.ToUpper(strings.TrimSpace(req.AssetType))

	if req.Name == "" {
		return errors.New("name is required")
	}
	if req.AssetType != "CRYPTO" && req.AssetType != "GOLD" {
		return errors.New("asset_type must be CRYPTO or GOLD")
	}
	if req.MinAmount <= 0 || req.MaxAmount < req.MinAmount {
		return errors.New("amount range is invalid")
	}
	if req.DailyROIPct <= 0 || req.DurationDays <= 0 {
		return errors.New("daily_roi_pct and duration_days must be positive")
	}
	if req.SubscriptionFee < 0 || req.ReferralCommissionPct < 0 {
		return errors.New("fees must not be negative")
	}
	if req.Status == "" {
		req.Status = "Active"
	}
	if req.Status != "Active" && req.Status != "Inactive" {
		return errors.New("status must be Active or Inactive")
	}
	return nil
}

// GetPortfolios lists every portfolio for the admin panel.
// GET /api/admin/portfolios
func GetPortfolios(w http.ResponseWriter, r *http.Request) {
	var portfolios []models.Portfolio
	if err := database.DB.Order("created_at DESC").Find(&portfolios).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to fetch portfolios"})
		return
	}
	if portfolios == nil {
		portfolios = make([]models.Portfolio, 0)
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: portfolios})
}

// CreatePortfolio adds an investment plan.
// POST /api/admin/portfolios
func CreatePortfolio(w http.ResponseWriter, r *http.Request) {
	var req PortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid JSON body"})
		return
	}
	if err := req.validate(); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: err.Error()})
		return
	}

	portfolio := models.Portfolio{
		Name:                  req.Name,
		AssetType:             req.AssetType,
		MinAmount:             req.MinAmount,
		MaxAmount:             req.MaxAmount,
		DailyROIPct:           req.DailyROIPct,
		DurationDays:          req.DurationDays,
		SubscriptionFee:       req.SubscriptionFee,
		ReferralCommissionPct: req.ReferralCommissionPct,
		Status:                req.Status,
	}
	if err := database.DB.Create(&portfolio).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to create portfolio"})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{Success: true, Message: "Portfolio created", Data: portfolio})
}

// UpdatePortfolio edits a plan. Running investments keep the terms they
// started with, the plan record only affects new submissions.
// PUT /api/admin/portfolios/{id}
func UpdatePortfolio(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid portfolio id"})
		return
	}

	var portfolio models.Portfolio
	if err := database.DB.First(&portfolio, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Portfolio not found"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to fetch portfolio"})
		return
	}

	var req PortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid JSON body"})
		return
	}
	if err := req.validate(); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: err.Error()})
		return
	}

	portfolio.Name = req.Name
	portfolio.AssetType = req.AssetType
	portfolio.MinAmount = req.MinAmount
	portfolio.MaxAmount = req.MaxAmount
	portfolio.DailyROIPct = req.DailyROIPct
	portfolio.DurationDays = req.DurationDays
	portfolio.SubscriptionFee = req.SubscriptionFee
	portfolio.ReferralCommissionPct = req.ReferralCommissionPct
	portfolio.Status = req.Status

	if err := database.DB.Save(&portfolio).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to update portfolio"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Portfolio updated", Data: portfolio})
}

// DeletePortfolio marks a plan Inactive. Rows are never removed because
// investments and payments reference them.
// DELETE /api/admin/portfolios/{id}
func DeletePortfolio(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid portfolio id"})
		return
	}

	res := database.DB.Model(&models.Portfolio{}).Where("id = ?", id).Update("status", "Inactive")
	if res.Error != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to deactivate portfolio"})
		return
	}
	if res.RowsAffected == 0 {
		utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Portfolio not found"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Portfolio deactivated"})
}
