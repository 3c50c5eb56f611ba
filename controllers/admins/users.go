package admins

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/Pydart-Intelli-Corp/investo-sub001/database"
	"github.com/Pydart-Intelli-Corp/investo-sub001/models"
	"github.com/Pydart-Intelli-Corp/investo-sub001/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// GetUsers lists users with optional search and status filter.
// GET /api/admin/users?search=&status=&page=&limit=
func GetUsers(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	search := strings.TrimSpace(r.URL.Query().Get("search"))
	status := r.URL.Query().Get("status")

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := database.DB.Model(&models.User{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("email LIKE ? OR first_name LIKE ? OR last_name LIKE ? OR referral_code LIKE ?", like, like, like, like)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to fetch users"})
		return
	}

	var users []models.User
	if err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&users).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to fetch users"})
		return
	}
	if users == nil {
		users = make([]models.User, 0)
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"users":        users,
			"current_page": page,
			"total_pages":  int(math.Ceil(float64(total) / float64(limit))),
			"total":        total,
		},
	})
}

// GetUserDetail returns one user with their investments and recent payments.
// GET /api/admin/users/{id}
func GetUserDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid user id"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "User not found"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to fetch user"})
		return
	}

	var investments []models.Investment
	database.DB.Preload("Portfolio").Where("user_id = ?", user.ID).Order("created_at DESC").Find(&investments)
	if investments == nil {
		investments = make([]models.Investment, 0)
	}

	var payments []models.PaymentRequest
	database.DB.Where("user_id = ?", user.ID).Order("created_at DESC").Limit(20).Find(&payments)
	if payments == nil {
		payments = make([]models.PaymentRequest, 0)
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"user":        user,
			"investments": investments,
			"payments":    payments,
		},
	})
}

type UpdateUserRequest struct {
	Status *string `json:"status,omitempty"`
}

// UpdateUser changes a user's account status (Active, Inactive, Suspend).
// PUT /api/admin/users/{id}
func UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid user id"})
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid JSON body"})
		return
	}
	if req.Status == nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Nothing to update"})
		return
	}
	switch *req.Status {
	case "Active", "Inactive", "Suspend":
	default:
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Status must be Active, Inactive or Suspend"})
		return
	}

	res := database.DB.Model(&models.User{}).Where("id = ?", id).Update("status", *req.Status)
	if res.Error != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to update user"})
		return
	}
	if res.RowsAffected == 0 {
		utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "User not found"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "User updated"})
}

type ReferralEntry struct {
	ID            uint    `json:"id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `json:"email"`
	Status        string  `json:"status"`
	TotalInvest   float64 `json:"total_invest"`
	JoinedAt      string  `json:"joined_at"`
	DepositsCount int64   `json:"deposits_count"`
}

// GetUserReferrals lists the direct referrals of one user with rollups. The
// tree is one level deep, referrals of referrals are not included.
// GET /api/admin/users/{id}/referrals
func GetUserReferrals(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid user id"})
		return
	}

	var user models.User
	if err := database.DB.Select("id, total_commissions").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "User not found"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to fetch user"})
		return
	}

	var referrals []models.User
	if err := database.DB.Where("referred_by = ?", user.ID).Order("created_at DESC").Find(&referrals).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to fetch referrals"})
		return
	}

	entries := make([]ReferralEntry, 0, len(referrals))
	var totalInvested float64
	for _, ref := range referrals {
		var deposits int64
		database.DB.Model(&models.PaymentRequest{}).
			Where("user_id = ? AND status = ?", ref.ID, models.PaymentCompleted).
			Count(&deposits)

		totalInvested += ref.TotalInvest
		entries = append(entries, ReferralEntry{
			ID:            ref.ID,
			FirstName:     ref.FirstName,
			LastName:      ref.LastName,
			Email:         ref.Email,
			Status:        ref.Status,
			TotalInvest:   ref.TotalInvest,
			JoinedAt:      ref.CreatedAt.Format("2006-01-02"),
			DepositsCount: deposits,
		})
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"referrals":         entries,
			"total_referrals":   len(entries),
			"total_invested":    utils.RoundFloat(totalInvested, 2),
			"total_commissions": user.TotalCommissions,
		},
	})
}
