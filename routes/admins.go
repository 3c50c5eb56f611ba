package routes

import (
	"net/http"
	"time"

	"github.com/Pydart-Intelli-Corp/investo-sub001/controllers/admins"
	"github.com/Pydart-Intelli-Corp/investo-sub001/middleware"

	"github.com/gorilla/mux"
)

func SetAdminRoutes(api *mux.Router) {
	// Rate limiter for admin login: 5 attempts per IP per minute
	adminLoginLimiter := middleware.NewIPRateLimiter(5, time.Minute)

	// Public admin routes
	api.Handle("/admin/login", adminLoginLimiter.Middleware(http.HandlerFunc(admins.Login))).Methods(http.MethodPost)

	// Protected admin routes
	adminRouter := api.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middleware.AdminAuthMiddleware)

	// Dashboard
	adminRouter.Handle("/dashboard", http.HandlerFunc(admins.GetDashboard)).Methods(http.MethodGet)

	// Admin profile
	adminRouter.Handle("/profile", http.HandlerFunc(admins.GetProfile)).Methods(http.MethodGet)
	adminRouter.Handle("/change-password", http.HandlerFunc(admins.ChangePassword)).Methods(http.MethodPost)

	// Payment approval workflow
	adminRouter.Handle("/payments", http.HandlerFunc(admins.GetPayments)).Methods(http.MethodGet)
	adminRouter.Handle("/payments/stats", http.HandlerFunc(admins.GetPaymentStats)).Methods(http.MethodGet)
	adminRouter.Handle("/payments/bulk-action", http.HandlerFunc(admins.BulkAction)).Methods(http.MethodPost)
	adminRouter.Handle("/payments/{id:[0-9]+}/approve", http.HandlerFunc(admins.ApprovePayment)).Methods(http.MethodPost)
	adminRouter.Handle("/payments/{id:[0-9]+}/reject", http.HandlerFunc(admins.RejectPayment)).Methods(http.MethodPost)

	// User management
	adminRouter.Handle("/users", http.HandlerFunc(admins.GetUsers)).Methods(http.MethodGet)
	adminRouter.Handle("/users/{id:[0-9]+}", http.HandlerFunc(admins.GetUserDetail)).Methods(http.MethodGet)
	adminRouter.Handle("/users/{id:[0-9]+}", http.HandlerFunc(admins.UpdateUser)).Methods(http.MethodPut)
	adminRouter.Handle("/users/{id:[0-9]+}/referrals", http.HandlerFunc(admins.GetUserReferrals)).Methods(http.MethodGet)

	// Portfolio management
	adminRouter.Handle("/portfolios", http.HandlerFunc(admins.GetPortfolios)).Methods(http.MethodGet)
	adminRouter.Handle("/portfolios", http.HandlerFunc(admins.CreatePortfolio)).Methods(http.MethodPost)
	adminRouter.Handle("/portfolios/{id:[0-9]+}", http.HandlerFunc(admins.UpdatePortfolio)).Methods(http.MethodPut)
	adminRouter.Handle("/portfolios/{id:[0-9]+}", http.HandlerFunc(admins.DeletePortfolio)).Methods(http.MethodDelete)

	// Deposit wallet management
	adminRouter.Handle("/wallets", http.HandlerFunc(admins.GetWallets)).Methods(http.MethodGet)
	adminRouter.Handle("/wallets", http.HandlerFunc(admins.CreateWallet)).Methods(http.MethodPost)
	adminRouter.Handle("/wallets/{id:[0-9]+}", http.HandlerFunc(admins.UpdateWallet)).Methods(http.MethodPut)
	adminRouter.Handle("/wallets/{id:[0-9]+}", http.HandlerFunc(admins.DeleteWallet)).Methods(http.MethodDelete)
}
