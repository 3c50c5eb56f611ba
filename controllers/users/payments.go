package users

import (
	"errors"
	"log"
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

const maxScreenshotSize = 5 << 20 // 5 MB

var allowedScreenshotTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// SubmitPayment accepts a multipart deposit submission: the chosen portfolio
// and wallet, the amount, a transaction hash and the payment screenshot. The
// total (amount plus the portfolio's subscription fee) is computed once here
// and frozen on the record, later fee changes never touch pending requests.
// POST /api/users/payments
func SubmitPayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	if err := r.ParseMultipartForm(maxScreenshotSize + 1<<20); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid multipart form"})
		return
	}

	portfolioID, err := strconv.ParseUint(r.FormValue("portfolio_id"), 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "portfolio_id is required"})
		return
	}
	walletID, err := strconv.ParseUint(r.FormValue("admin_wallet_id"), 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "admin_wallet_id is required"})
		return
	}
	amount, err := strconv.ParseFloat(r.FormValue("amount"), 64)
	if err != nil || amount <= 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "amount must be a positive number"})
		return
	}

	var portfolio models.Portfolio
	if err := database.DB.Where("id = ? AND status = ?", portfolioID, "Active").First(&portfolio).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Portfolio not found or inactive"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}
	if amount < portfolio.MinAmount || amount > portfolio.MaxAmount {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: "Amount is outside the portfolio range",
			Data:    map[string]interface{}{"min_amount": portfolio.MinAmount, "max_amount": portfolio.MaxAmount},
		})
		return
	}

	var wallet models.AdminWallet
	if err := database.DB.Where("id = ? AND is_active = ?", walletID, true).First(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Deposit wallet not found or inactive"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	file, header, err := r.FormFile("screenshot")
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Payment screenshot is required"})
		return
	}
	defer file.Close()

	if header.Size > maxScreenshotSize {
		utils.WriteJSON(w, http.StatusRequestEntityTooLarge, utils.APIResponse{Success: false, Message: "Screenshot must be 5MB or smaller"})
		return
	}
	if ct := header.Header.Get("Content-Type"); !allowedScreenshotTypes[ct] {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Screenshot must be a JPEG, PNG or WebP image"})
		return
	}

	objectName := utils.ScreenshotObjectName(userID, header.Filename)
	if err := utils.UploadToS3(objectName, file); err != nil {
		log.Printf("[payments] screenshot upload failed for user %d: %v", userID, err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to store screenshot"})
		return
	}

	var txHash *string
	if h := strings.TrimSpace(r.FormValue("transaction_hash")); h != "" {
		txHash = &h
	}

	orderID := utils.GenerateOrderID(userID)
	totalAmount := utils.RoundFloat(amount+portfolio.SubscriptionFee, 2)

	payment := models.PaymentRequest{
		UserID:          userID,
		PortfolioID:     portfolio.ID,
		AdminWalletID:   wallet.ID,
		Amount:          amount,
		SubscriptionFee: portfolio.SubscriptionFee,
		TotalAmount:     totalAmount,
		PaymentType:     models.PaymentTypeInvestment,
		OrderID:         orderID,
		Status:          models.PaymentPending,
		ScreenshotURL:   objectName,
		TransactionHash: txHash,
	}

	msg := "Deposit for " + portfolio.Name
	ledger := models.Transaction{
		UserID:          userID,
		Amount:          totalAmount,
		Charge:          portfolio.SubscriptionFee,
		OrderID:         orderID,
		TransactionFlow: "debit",
		TransactionType: "investment",
		Message:         &msg,
		Status:          "Pending",
	}

	tx := database.DB.Begin()
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		log.Printf("[payments] create payment failed for user %d: %v", userID, err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to submit payment"})
		return
	}
	if err := tx.Create(&ledger).Error; err != nil {
		tx.Rollback()
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to submit payment"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to submit payment"})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Payment submitted and awaiting review",
		Data:    payment,
	})
}

// GetMyPayments lists the caller's own payment requests, newest first.
// GET /api/users/payments?status=&page=&limit=
func GetMyPayments(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	status := r.URL.Query().Get("status")

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := database.DB.Model(&models.PaymentRequest{}).Where("user_id = ?", userID)
	if status != "" {
		if !models.ValidPaymentStatus(status) {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid status filter"})
			return
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to fetch payments"})
		return
	}

	var payments []models.PaymentRequest
	if err := query.
		Preload("Portfolio").
		Preload("AdminWallet").
		Offset((page - 1) * limit).
		Limit(limit).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to fetch payments"})
		return
	}
	if payments == nil {
		payments = make([]models.PaymentRequest, 0)
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"payments":     payments,
			"current_page": page,
			"total_pages":  int(math.Ceil(float64(total) / float64(limit))),
			"total":        total,
		},
	})
}

// CancelPayment lets a user withdraw their own submission while it is still
// pending. This is the only path that produces CANCELLED.
// POST /api/users/payments/{id}/cancel
func CancelPayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid payment id"})
		return
	}

	var payment models.PaymentRequest
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Payment not found"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to fetch payment"})
		return
	}

	if payment.Status != models.PaymentPending {
		utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "Only pending payments can be cancelled"})
		return
	}

	tx := database.DB.Begin()
	res := tx.Model(&models.PaymentRequest{}).
		Where("id = ? AND status = ?", payment.ID, models.PaymentPending).
		Update("status", models.PaymentCancelled)
	if res.Error != nil {
		tx.Rollback()
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to cancel payment"})
		return
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "Payment was already processed"})
		return
	}
	if err := tx.Model(&models.Transaction{}).
		Where("order_id = ?", payment.OrderID).
		Update("status", "Failed").Error; err != nil {
		tx.Rollback()
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to cancel payment"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to cancel payment"})
		return
	}

	// the submission was withdrawn, so its proof image is purged; best-effort,
	// an orphaned object never blocks the cancel
	if payment.ScreenshotURL != "" {
		if err := utils.DeleteFromS3(payment.ScreenshotURL); err != nil {
			log.Printf("[payments] screenshot purge failed for payment %d: %v", payment.ID, err)
		}
	}

	payment.Status = models.PaymentCancelled
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Payment cancelled", Data: payment})
}

// GetScreenshotURL returns a short-lived signed URL for a payment's proof
// image. Users can only sign their own uploads.
// GET /api/users/payments/{id}/screenshot
func GetScreenshotURL(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid payment id"})
		return
	}

	var payment models.PaymentRequest
	if err := database.DB.Select("id, user_id, screenshot_url").
		Where("id = ? AND user_id = ?", id, userID).First(&payment).Error; err != nil {
		utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Payment not found"})
		return
	}

	url, err := utils.GenerateSignedURL(payment.ScreenshotURL, 900)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to sign URL"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    map[string]interface{}{"url": url, "expires_in": 900},
	})
}
