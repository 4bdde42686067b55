package repo

import (
	"testing"

	investmentrepo "github.com/korpor/fundledger/internal/repo/investment-repo"
	projectrepo "github.com/korpor/fundledger/internal/repo/project-repo"
	referralrepo "github.com/korpor/fundledger/internal/repo/referral-repo"
	transactionrepo "github.com/korpor/fundledger/internal/repo/transaction-repo"
	userrepo "github.com/korpor/fundledger/internal/repo/user-repo"
	walletrepo "github.com/korpor/fundledger/internal/repo/wallet-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := New(mockDB)

	assert.NotNil(t, repos)
	assert.IsType(t, &userrepo.Repository{}, repos.UserRepo)
	assert.IsType(t, &walletrepo.Repository{}, repos.WalletRepo)
	assert.IsType(t, &transactionrepo.Repository{}, repos.TransactionRepo)
	assert.IsType(t, &projectrepo.Repository{}, repos.ProjectRepo)
	assert.IsType(t, &investmentrepo.Repository{}, repos.InvestmentRepo)
	assert.IsType(t, &referralrepo.Repository{}, repos.ReferralRepo)
}
