package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/korpor/fundledger/docs"
	authhandlers "github.com/korpor/fundledger/internal/handlers/auth"
	investmenthandlers "github.com/korpor/fundledger/internal/handlers/investments"
	referralhandlers "github.com/korpor/fundledger/internal/handlers/referrals"
	wallethandlers "github.com/korpor/fundledger/internal/handlers/wallet"
	"github.com/korpor/fundledger/internal/service"
	"github.com/korpor/fundledger/pkg/auth"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
	VerifyAttestation(w http.ResponseWriter, r *http.Request)
}

type InvestmentHandler interface {
	Validate(w http.ResponseWriter, r *http.Request)
	Invest(w http.ResponseWriter, r *http.Request)
	GetInvestments(w http.ResponseWriter, r *http.Request)
	GetProjects(w http.ResponseWriter, r *http.Request)
	GetProject(w http.ResponseWriter, r *http.Request)
	PaymentWebhook(w http.ResponseWriter, r *http.Request)
}

type ReferralHandler interface {
	GetReferrals(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	WalletHandler     WalletHandler
	InvestmentHandler InvestmentHandler
	ReferralHandler   ReferralHandler

	authMiddleware *auth.Middleware
}

func New(s *service.Services, authMiddleware *auth.Middleware) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		WalletHandler:     wallethandlers.New(s.LedgerService),
		InvestmentHandler: investmenthandlers.New(s.InvestmentService),
		ReferralHandler:   referralhandlers.New(s.ReferralService),
		authMiddleware:    authMiddleware,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	// The payment gateway authenticates out of band, not with user tokens.
	r.Post("/api/payments/webhook", h.InvestmentHandler.PaymentWebhook)

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(h.authMiddleware.Authenticate)
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetWallet)
				r.Post("/deposit", h.WalletHandler.Deposit)
				r.Post("/withdraw", h.WalletHandler.Withdraw)
				r.Get("/reconcile", h.WalletHandler.Reconcile)
			})
			r.Get("/transactions", h.WalletHandler.GetTransactions)
			r.Get("/attestations/{hash}", h.WalletHandler.VerifyAttestation)
			r.Route("/investments", func(r chi.Router) {
				r.Post("/", h.InvestmentHandler.Invest)
				r.Get("/", h.InvestmentHandler.GetInvestments)
				r.Post("/validate", h.InvestmentHandler.Validate)
			})
			r.Get("/referrals", h.ReferralHandler.GetReferrals)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(h.authMiddleware.Authenticate)
		r.Get("/api/projects", h.InvestmentHandler.GetProjects)
		r.Get("/api/projects/{id}", h.InvestmentHandler.GetProject)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.authMiddleware.Authenticate, h.authMiddleware.RequireAdmin)
		r.Post("/api/admin/users/{id}/approve", h.AuthHandler.Approve)
	})

	return r
}
