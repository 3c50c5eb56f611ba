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

type WalletRequest struct {
	WalletType    string  `json:"wallet_type"`
	WalletAddress string  `json:"wallet_address"`
	NetworkType   string  `json:"network_type"`
	QRCodeURL     *string `json:"qr_code_url,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
	Description   *string `json:"description,omitempty"`
}

func (req *WalletRequest) normalize() error {
	req.WalletType = strings.ToUpper(strings.TrimSpace(req.WalletType))
	req.WalletAddress = strings.TrimSpace(req.WalletAddress)
	req.NetworkType = strings.TrimSpace(req.NetworkType)

	if req.WalletType == "" || req.WalletAddress == "" || req.NetworkType == "" {
		return errors.New("wallet_type, wallet_address and network_type are required")
	}
	if !models.ValidWalletNetwork(req.WalletType, req.NetworkType) {
		return errors.New("network_type is not valid for this wallet_type")
	}
	return nil
}

// GetWallets lists all deposit wallets, active and inactive.
// GET /api/admin/wallets
func GetWallets(w http.ResponseWriter, r *http.Request) {
	var wallets []models.AdminWallet
	if err := database.DB.Order("wallet_type, network_type").Find(&wallets).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to fetch wallets"})
		return
	}
	if wallets == nil {
		wallets = make([]models.AdminWallet, 0)
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"wallets":      wallets,
			"wallet_types": models.WalletTypes(),
		},
	})
}

// CreateWallet adds a deposit wallet after checking the network matches the
// asset.
// POST /api/admin/wallets
func CreateWallet(w http.ResponseWriter, r *http.Request) {
	var req WalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid JSON body"})
		return
	}
	if err := req.normalize(); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: err.Error()})
		return
	}

	wallet := models.AdminWallet{
		WalletType:    req.WalletType,
		WalletAddress: req.WalletAddress,
		NetworkType:   req.NetworkType,
		QRCodeURL:     req.QRCodeURL,
		IsActive:      true,
		Description:   req.Description,
	}
	if req.IsActive != nil {
		wallet.IsActive = *req.IsActive
	}

	if err := database.DB.Create(&wallet).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to create wallet"})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{Success: true, Message: "Wallet created", Data: wallet})
}

// UpdateWallet edits a deposit wallet. The compatibility check runs against
// the merged record, so changing only the network still gets validated.
// PUT /api/admin/wallets/{id}
func UpdateWallet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid wallet id"})
		return
	}

	var wallet models.AdminWallet
	if err := database.DB.First(&wallet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Wallet not found"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to fetch wallet"})
		return
	}

	var req WalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid JSON body"})
		return
	}

	if req.WalletType == "" {
		req.WalletType = wallet.WalletType
	}
	if req.WalletAddress == "" {
		req.WalletAddress = wallet.WalletAddress
	}
	if req.NetworkType == "" {
		req.NetworkType = wallet.NetworkType
	}
	if err := req.normalize(); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: err.Error()})
		return
	}

	wallet.WalletType = req.WalletType
	wallet.WalletAddress = req.WalletAddress
	wallet.NetworkType = req.NetworkType
	if req.QRCodeURL != nil {
		wallet.QRCodeURL = req.QRCodeURL
	}
	if req.Description != nil {
		wallet.Description = req.Description
	}
	if req.IsActive != nil {
		wallet.IsActive = *req.IsActive
	}

	if err := database.DB.Save(&wallet).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to update wallet"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Wallet updated", Data: wallet})
}

// DeleteWallet deactivates a wallet instead of removing the row, since old
// payment requests keep pointing at it.
// DELETE /api/admin/wallets/{id}
func DeleteWallet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid wallet id"})
		return
	}

	res := database.DB.Model(&models.AdminWallet{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to deactivate wallet"})
		return
	}
	if res.RowsAffected == 0 {
		utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Wallet not found"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Wallet deactivated"})
}
