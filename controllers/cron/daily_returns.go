package cron

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Pydart-Intelli-Corp/investo-sub001/database"
	"github.com/Pydart-Intelli-Corp/investo-sub001/models"
	"github.com/Pydart-Intelli-Corp/investo-sub001/utils"

	"gorm.io/gorm"
)

// DailyReturns credits every due running investment with its daily profit.
// The external scheduler calls this once a day; the X-CRON-KEY header guards
// it. Each investment settles in its own transaction, so one bad row does not
// stall the rest of the batch.
// POST /api/cron/daily-returns
func DailyReturns(w http.ResponseWriter, r *http.Request) {
	secret := os.Getenv("CRON_SECRET_KEY")
	if secret == "" || r.Header.Get("X-CRON-KEY") != secret {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	now := time.Now()
	var due []models.Investment
	if err := database.DB.
		Where("status = ? AND next_return_at IS NOT NULL AND next_return_at <= ?", "Running", now).
		Find(&due).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to fetch due investments"})
		return
	}

	var credited, completed, failed int
	for i := range due {
		done, err := settleInvestment(&due[i], now)
		if err != nil {
			log.Printf("[cron] settle investment %d failed: %v", due[i].ID, err)
			failed++
			continue
		}
		credited++
		if done {
			completed++
		}
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Daily returns processed",
		Data: map[string]interface{}{
			"credited":  credited,
			"completed": completed,
			"failed":    failed,
		},
	})
}

// settleInvestment credits one daily return and reports whether the
// investment reached its full term. The guarded update on next_return_at
// keeps overlapping cron runs from paying the same day twice.
func settleInvestment(inv *models.Investment, now time.Time) (bool, error) {
	done := false
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		totalPaid := inv.TotalPaid + 1
		done = totalPaid >= inv.Duration

		updates := map[string]interface{}{
			"total_paid":     totalPaid,
			"total_returned": gorm.Expr("total_returned + ?", inv.DailyProfit),
			"last_return_at": now,
		}
		if done {
			updates["status"] = "Completed"
			updates["next_return_at"] = nil
		} else {
			updates["next_return_at"] = now.Add(24 * time.Hour)
		}

		res := tx.Model(&models.Investment{}).
			Where("id = ? AND status = ? AND next_return_at = ?", inv.ID, "Running", inv.NextReturnAt).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Model(&models.User{}).Where("id = ?", inv.UserID).
			Update("balance", gorm.Expr("balance + ?", inv.DailyProfit)).Error; err != nil {
			return err
		}

		msg := "Daily return"
		ledger := models.Transaction{
			UserID:          inv.UserID,
			Amount:          inv.DailyProfit,
			OrderID:         utils.GenerateOrderID(inv.UserID),
			TransactionFlow: "credit",
			TransactionType: "daily_return",
			Message:         &msg,
			Status:          "Success",
		}
		if err := tx.Create(&ledger).Error; err != nil {
			return err
		}

		if done {
			// drop the Active flag when this was the user's last running investment
			var stillRunning int64
			if err := tx.Model(&models.Investment{}).
				Where("user_id = ? AND status = ? AND id <> ?", inv.UserID, "Running", inv.ID).
				Count(&stillRunning).Error; err != nil {
				return err
			}
			if stillRunning == 0 {
				if err := tx.Model(&models.User{}).Where("id = ?", inv.UserID).
					Update("investment_status", "Inactive").Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	return done, err
}
