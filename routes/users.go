package routes

import (
	"net/http"
	"time"

	"github.com/Pydart-Intelli-Corp/investo-sub001/controllers/auth"
	"github.com/Pydart-Intelli-Corp/investo-sub001/controllers/users"
	"github.com/Pydart-Intelli-Corp/investo-sub001/middleware"

	"github.com/gorilla/mux"
)

// UsersRoutes registers the public auth endpoints and the authenticated user
// surface on the given subrouter.
func UsersRoutes(api *mux.Router) {
	// Login/register limiter: 60 per IP per 5 minutes
	loginLimiter := middleware.NewIPRateLimiter(60, 5*time.Minute)
	// General user traffic: 120 per IP per minute
	userLimiter := middleware.NewIPRateLimiter(120, time.Minute)

	// Register & Login
	api.Handle("/auth/register", loginLimiter.Middleware(http.HandlerFunc(auth.RegisterHandler))).Methods(http.MethodPost)
	api.Handle("/auth/login", loginLimiter.Middleware(http.HandlerFunc(auth.LoginHandler))).Methods(http.MethodPost)
	api.Handle("/auth/refresh", loginLimiter.Middleware(http.HandlerFunc(auth.RefreshHandler))).Methods(http.MethodPost)
	api.Handle("/auth/logout", userLimiter.Middleware(http.HandlerFunc(auth.LogoutHandler))).Methods(http.MethodPost)

	// Account
	api.Handle("/users/profile", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.GetProfile)))).Methods(http.MethodGet)
	api.Handle("/users/dashboard", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.GetDashboard)))).Methods(http.MethodGet)

	// Catalog: open plans and deposit wallets
	api.Handle("/users/portfolios", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.GetPortfolios)))).Methods(http.MethodGet)
	api.Handle("/users/wallets", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.GetDepositWallets)))).Methods(http.MethodGet)

	// Payment submissions
	api.Handle("/users/payments", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.SubmitPayment)))).Methods(http.MethodPost)
	api.Handle("/users/payments", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.GetMyPayments)))).Methods(http.MethodGet)
	api.Handle("/users/payments/{id:[0-9]+}/cancel", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.CancelPayment)))).Methods(http.MethodPost)
	api.Handle("/users/payments/{id:[0-9]+}/screenshot", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.GetScreenshotURL)))).Methods(http.MethodGet)

	// Investments & ledger
	api.Handle("/users/investments", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.GetInvestments)))).Methods(http.MethodGet)
	api.Handle("/users/transactions", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.GetTransactions)))).Methods(http.MethodGet)

	// Referral team
	api.Handle("/users/team", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.GetTeam)))).Methods(http.MethodGet)
}
