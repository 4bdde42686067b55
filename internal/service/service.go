package service

import (
	"github.com/korpor/fundledger/internal/attestation"
	authhandlers "github.com/korpor/fundledger/internal/handlers/auth"
	investmenthandlers "github.com/korpor/fundledger/internal/handlers/investments"
	wallethandlers "github.com/korpor/fundledger/internal/handlers/wallet"
	"github.com/korpor/fundledger/internal/pg"
	"github.com/korpor/fundledger/internal/repo"
	"github.com/korpor/fundledger/internal/service/authservice"
	"github.com/korpor/fundledger/internal/service/investmentservice"
	"github.com/korpor/fundledger/internal/service/ledgerservice"
	"github.com/korpor/fundledger/internal/service/referralservice"
	pkgauth "github.com/korpor/fundledger/pkg/auth"
)

type Services struct {
	AuthService       authhandlers.Service
	LedgerService     wallethandlers.Service
	InvestmentService investmenthandlers.Service

	// ReferralService stays concrete: the referrals handler uses its read
	// slice, the cascade worker re-drives its triggers.
	ReferralService *referralservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, attestor attestation.Gateway, jwtService pkgauth.JWTServiceInterface) *Services {
	ledgerService := ledgerservice.New(repo.WalletRepo, repo.TransactionRepo, repo.UserRepo, attestor, txManager)
	referralService := referralservice.New(repo.ReferralRepo, ledgerService, txManager)
	investmentService := investmentservice.New(repo.ProjectRepo, repo.InvestmentRepo, repo.UserRepo, repo.WalletRepo, ledgerService, referralService, txManager)
	authService := authservice.New(repo.UserRepo, referralService, &pkgauth.HashService{}, jwtService)

	return &Services{
		AuthService:       authService,
		LedgerService:     ledgerService,
		InvestmentService: investmentService,
		ReferralService:   referralService,
	}
}
