package admins

import (
	"encoding/json"
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Pydart-Intelli-Corp/investo-sub001/database"
	"github.com/Pydart-Intelli-Corp/investo-sub001/models"
	"github.com/Pydart-Intelli-Corp/investo-sub001/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// errConflict marks a guarded status update that matched zero rows: another
// operator finished the record first.
var errConflict = errors.New("payment was modified by another operator")

// GetPayments lists payment requests with status/type filters and pagination.
// GET /api/admin/payments?status=&payment_type=&page=&limit=
func GetPayments(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	status := r.URL.Query().Get("status")
	paymentType := r.URL.Query().Get("payment_type")

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := database.DB.Model(&models.PaymentRequest{})
	if status != "" {
		if !models.ValidPaymentStatus(status) {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid status filter"})
			return
		}
		query = query.Where("status = ?", status)
	}
	if paymentType != "" {
		query = query.Where("payment_type = ?", paymentType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to fetch payments"})
		return
	}

	var payments []models.PaymentRequest
	if err := query.
		Preload("User").
		Preload("Portfolio").
		Preload("AdminWallet").
		Offset(offset).
		Limit(limit).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to fetch payments"})
		return
	}
	if payments == nil {
		payments = make([]models.PaymentRequest, 0)
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"payments":     payments,
			"current_page": page,
			"total_pages":  totalPages,
			"total":        total,
		},
	})
}

type PaymentStats struct {
	Pending        int64   `json:"pending"`
	Processing     int64   `json:"processing"`
	Completed      int64   `json:"completed"`
	Rejected       int64   `json:"rejected"`
	Cancelled      int64   `json:"cancelled"`
	PendingAmount  float64 `json:"pending_amount"`
	ApprovedAmount float64 `json:"approved_amount"`
	TodaySubmitted int64   `json:"today_submitted"`
	TodayProcessed int64   `json:"today_processed"`
}

// GetPaymentStats returns aggregate counters for the approval dashboard.
// GET /api/admin/payments/stats
func GetPaymentStats(w http.ResponseWriter, r *http.Request) {
	db := database.DB
	var stats PaymentStats

	type statusCount struct {
		Status models.PaymentStatus
		Count  int64
	}
	var counts []statusCount
	db.Model(&models.PaymentRequest{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&counts)
	for _, c := range counts {
		switch c.Status {
		case models.PaymentPending:
			stats.Pending = c.Count
		case models.PaymentProcessing:
			stats.Processing = c.Count
		case models.PaymentCompleted:
			stats.Completed = c.Count
		case models.PaymentRejected:
			stats.Rejected = c.Count
		case models.PaymentCancelled:
			stats.Cancelled = c.Count
		}
	}

	db.Model(&models.PaymentRequest{}).
		Where("status = ?", models.PaymentPending).
		Select("COALESCE(SUM(total_amount),0)").Scan(&stats.PendingAmount)
	db.Model(&models.PaymentRequest{}).
		Where("status = ?", models.PaymentCompleted).
		Select("COALESCE(SUM(total_amount),0)").Scan(&stats.ApprovedAmount)

	today := time.Now().Format("2006-01-02")
	db.Model(&models.PaymentRequest{}).
		Where("DATE(created_at) = ?", today).
		Count(&stats.TodaySubmitted)
	db.Model(&models.PaymentRequest{}).
		Where("processed_at IS NOT NULL AND DATE(processed_at) = ?", today).
		Count(&stats.TodayProcessed)

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    stats,
	})
}

type ApproveRequest struct {
	AdminNotes *string `json:"admin_notes,omitempty"`
}

// ApprovePayment completes a pending payment and applies its investment and
// referral side effects in one transaction.
// POST /api/admin/payments/{id}/approve
func ApprovePayment(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utils.GetAdminID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid payment id"})
		return
	}

	var req ApproveRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	var payment models.PaymentRequest
	if err := database.DB.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Payment not found"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to fetch payment"})
		return
	}

	if payment.Status != models.PaymentPending {
		utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "Only PENDING payments can be approved"})
		return
	}

	tx := database.DB.Begin()
	if err := approvePaymentTx(tx, &payment, adminID, req.AdminNotes); err != nil {
		tx.Rollback()
		if errors.Is(err, errConflict) {
			utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "Payment was already processed by another operator"})
			return
		}
		log.Printf("[payments] approve %d failed: %v", payment.ID, err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to approve payment"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to save changes"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Payment approved",
		Data:    payment,
	})
}

type RejectRequest struct {
	Reason     string  `json:"reason"`
	AdminNotes *string `json:"admin_notes,omitempty"`
}

// RejectPayment rejects a pending payment. A non-empty reason is required
// before any state change happens.
// POST /api/admin/payments/{id}/reject
func RejectPayment(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utils.GetAdminID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid payment id"})
		return
	}

	var req RejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid JSON body"})
		return
	}
	req.Reason = strings.TrimSpace(req.Reason)
	if req.Reason == "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Rejection reason is required"})
		return
	}

	var payment models.PaymentRequest
	if err := database.DB.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Payment not found"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to fetch payment"})
		return
	}

	if payment.Status != models.PaymentPending {
		utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "Only PENDING payments can be rejected"})
		return
	}

	tx := database.DB.Begin()
	if err := rejectPaymentTx(tx, &payment, adminID, req.Reason, req.AdminNotes); err != nil {
		tx.Rollback()
		if errors.Is(err, errConflict) {
			utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "Payment was already processed by another operator"})
			return
		}
		log.Printf("[payments] reject %d failed: %v", payment.ID, err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to reject payment"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to save changes"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Payment rejected",
		Data:    payment,
	})
}

type BulkActionRequest struct {
	Action     string  `json:"action"`
	PaymentIDs []uint  `json:"payment_ids"`
	Reason     string  `json:"reason,omitempty"`
	AdminNotes *string `json:"admin_notes,omitempty"`
}

// validateBulkAction enforces the bulk contract before any record is touched.
func validateBulkAction(req *BulkActionRequest) error {
	req.Action = strings.ToLower(strings.TrimSpace(req.Action))
	if req.Action != "approve" && req.Action != "reject" {
		return errors.New("action must be approve or reject")
	}
	if len(req.PaymentIDs) == 0 {
		return errors.New("payment_ids must not be empty")
	}
	req.Reason = strings.TrimSpace(req.Reason)
	if req.Action == "reject" && req.Reason == "" {
		return errors.New("rejection reason is required for bulk reject")
	}
	return nil
}

// BulkAction applies approve or reject to a set of pending payments. Each id
// runs in its own transaction; failures are counted, never aborting the batch.
// POST /api/admin/payments/bulk-action
func BulkAction(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utils.GetAdminID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var req BulkActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid JSON body"})
		return
	}
	if err := validateBulkAction(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: err.Error()})
		return
	}

	var successCount, errorCount int
	for _, id := range req.PaymentIDs {
		if err := bulkProcessOne(id, req.Action, adminID, req.Reason, req.AdminNotes); err != nil {
			if !errors.Is(err, errConflict) {
				log.Printf("[payments] bulk %s %d failed: %v", req.Action, id, err)
			}
			errorCount++
			continue
		}
		successCount++
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Bulk action finished",
		Data: map[string]interface{}{
			"success_count": successCount,
			"error_count":   errorCount,
		},
	})
}

// bulkProcessOne claims a single pending payment via PENDING -> PROCESSING and
// finishes it inside the same transaction, so a failed item rolls back to
// PENDING and can be retried.
func bulkProcessOne(id uint, action string, adminID int64, reason string, notes *string) error {
	tx := database.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	claim := tx.Model(&models.PaymentRequest{}).
		Where("id = ? AND status = ?", id, models.PaymentPending).
		Update("status", models.PaymentProcessing)
	if claim.Error != nil {
		tx.Rollback()
		return claim.Error
	}
	if claim.RowsAffected == 0 {
		tx.Rollback()
		return errConflict
	}

	var payment models.PaymentRequest
	if err := tx.First(&payment, id).Error; err != nil {
		tx.Rollback()
		return err
	}

	var err error
	if action == "approve" {
		err = approvePaymentTx(tx, &payment, adminID, notes)
	} else {
		err = rejectPaymentTx(tx, &payment, adminID, reason, notes)
	}
	if err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// approvePaymentTx moves the payment to COMPLETED with a guarded update and
// applies the side effects: investment activation, invested totals, one-level
// referral commission and the ledger entry. payment is updated in place so
// handlers can return the post-transition record.
func approvePaymentTx(tx *gorm.DB, payment *models.PaymentRequest, adminID int64, notes *string) error {
	if !models.CanTransition(payment.Status, models.PaymentCompleted) {
		return errConflict
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":       models.PaymentCompleted,
		"processed_by": adminID,
		"processed_at": now,
	}
	if notes != nil && strings.TrimSpace(*notes) != "" {
		updates["admin_notes"] = strings.TrimSpace(*notes)
	}

	res := tx.Model(&models.PaymentRequest{}).
		Where("id = ? AND status = ?", payment.ID, payment.Status).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errConflict
	}

	var portfolio models.Portfolio
	if err := tx.First(&portfolio, payment.PortfolioID).Error; err != nil {
		return err
	}

	next := now.Add(24 * time.Hour)
	investment := models.Investment{
		UserID:           payment.UserID,
		PortfolioID:      payment.PortfolioID,
		PaymentRequestID: payment.ID,
		Amount:           payment.Amount,
		DailyProfit:      utils.RoundFloat(payment.Amount*portfolio.DailyROIPct/100, 2),
		Duration:         portfolio.DurationDays,
		NextReturnAt:     &next,
		OrderID:          payment.OrderID,
		Status:           "Running",
	}
	if err := tx.Create(&investment).Error; err != nil {
		return err
	}

	if err := tx.Model(&models.User{}).Where("id = ?", payment.UserID).Updates(map[string]interface{}{
		"total_invest":      gorm.Expr("total_invest + ?", payment.Amount),
		"investment_status": "Active",
	}).Error; err != nil {
		return err
	}

	if err := tx.Model(&models.Transaction{}).
		Where("order_id = ?", payment.OrderID).
		Update("status", "Success").Error; err != nil {
		return err
	}

	if err := payReferralCommission(tx, payment, &portfolio); err != nil {
		return err
	}

	payment.Status = models.PaymentCompleted
	payment.ProcessedBy = &adminID
	payment.ProcessedAt = &now
	if v, ok := updates["admin_notes"].(string); ok {
		payment.AdminNotes = &v
	}
	return nil
}

// payReferralCommission credits the direct referrer with the portfolio's
// commission percentage and records it in the ledger. Users without a
// referrer earn nobody anything.
func payReferralCommission(tx *gorm.DB, payment *models.PaymentRequest, portfolio *models.Portfolio) error {
	if portfolio.ReferralCommissionPct <= 0 {
		return nil
	}

	var user models.User
	if err := tx.Select("id, referred_by").Where("id = ?", payment.UserID).First(&user).Error; err != nil {
		return err
	}
	if user.ReferredBy == nil {
		return nil
	}

	commission := utils.RoundFloat(payment.Amount*portfolio.ReferralCommissionPct/100, 2)
	if commission <= 0 {
		return nil
	}

	if err := tx.Model(&models.User{}).Where("id = ?", *user.ReferredBy).Updates(map[string]interface{}{
		"balance":           gorm.Expr("balance + ?", commission),
		"total_commissions": gorm.Expr("total_commissions + ?", commission),
	}).Error; err != nil {
		return err
	}

	msg := "Referral commission"
	trx := models.Transaction{
		UserID:          *user.ReferredBy,
		Amount:          commission,
		OrderID:         utils.GenerateOrderID(*user.ReferredBy),
		TransactionFlow: "credit",
		TransactionType: "commission",
		Message:         &msg,
		Status:          "Success",
	}
	return tx.Create(&trx).Error
}

// rejectPaymentTx moves the payment to REJECTED with a guarded update and
// fails the ledger entry. No balances change; the money never arrived.
func rejectPaymentTx(tx *gorm.DB, payment *models.PaymentRequest, adminID int64, reason string, notes *string) error {
	if !models.CanTransition(payment.Status, models.PaymentRejected) {
		return errConflict
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":           models.PaymentRejected,
		"processed_by":     adminID,
		"processed_at":     now,
		"rejection_reason": reason,
	}
	if notes != nil && strings.TrimSpace(*notes) != "" {
		updates["admin_notes"] = strings.TrimSpace(*notes)
	}

	res := tx.Model(&models.PaymentRequest{}).
		Where("id = ? AND status = ?", payment.ID, payment.Status).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errConflict
	}

	if err := tx.Model(&models.Transaction{}).
		Where("order_id = ?", payment.OrderID).
		Update("status", "Failed").Error; err != nil {
		return err
	}

	payment.Status = models.PaymentRejected
	payment.ProcessedBy = &adminID
	payment.ProcessedAt = &now
	payment.RejectionReason = &reason
	if v, ok := updates["admin_notes"].(string); ok {
		payment.AdminNotes = &v
	}
	return nil
}
