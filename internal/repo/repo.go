package repo

import (
	"github.com/korpor/fundledger/internal/pg"
	investmentrepo "github.com/korpor/fundledger/internal/repo/investment-repo"
	projectrepo "github.com/korpor/fundledger/internal/repo/project-repo"
	referralrepo "github.com/korpor/fundledger/internal/repo/referral-repo"
	transactionrepo "github.com/korpor/fundledger/internal/repo/transaction-repo"
	userrepo "github.com/korpor/fundledger/internal/repo/user-repo"
	walletrepo "github.com/korpor/fundledger/internal/repo/wallet-repo"
)

type Repositories struct {
	UserRepo        *userrepo.Repository
	WalletRepo      *walletrepo.Repository
	TransactionRepo *transactionrepo.Repository
	ProjectRepo     *projectrepo.Repository
	InvestmentRepo  *investmentrepo.Repository
	ReferralRepo    *referralrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		WalletRepo:      walletrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		ProjectRepo:     projectrepo.New(conn),
		InvestmentRepo:  investmentrepo.New(conn),
		ReferralRepo:    referralrepo.New(conn),
	}
}
