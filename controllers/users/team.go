package users

import (
	"net/http"

	"github.com/Pydart-Intelli-Corp/investo-sub001/database"
	"github.com/Pydart-Intelli-Corp/investo-sub001/models"
	"github.com/Pydart-Intelli-Corp/investo-sub001/utils"
)

type TeamMember struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Status      string  `json:"status"`
	TotalInvest float64 `json:"total_invest"`
	JoinedAt    string  `json:"joined_at"`
}

// GetTeam lists the caller's direct referrals. Commission is one level deep,
// so the tree stops here.
// GET /api/users/team
func GetTeam(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var referrals []models.User
	if err := database.DB.Where("referred_by = ?", userID).
		Order("created_at DESC").
		Find(&referrals).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to fetch team"})
		return
	}

	members := make([]TeamMember, 0, len(referrals))
	var teamInvested float64
	for _, ref := range referrals {
		teamInvested += ref.TotalInvest
		members = append(members, TeamMember{
			FirstName:   ref.FirstName,
			LastName:    ref.LastName,
			Status:      ref.Status,
			TotalInvest: ref.TotalInvest,
			JoinedAt:    ref.CreatedAt.Format("2006-01-02"),
		})
	}

	var user models.User
	database.DB.Select("total_commissions, referral_code").First(&user, userID)

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"members":           members,
			"total_members":     len(members),
			"team_invested":     utils.RoundFloat(teamInvested, 2),
			"total_commissions": user.TotalCommissions,
			"referral_code":     user.ReferralCode,
		},
	})
}
