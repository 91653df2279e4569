package integration_tests

import (
	"context"
	"log"
	"sync"
	"testing"

	"github.com/contahub/contahub.go/common"
	"github.com/contahub/contahub.go/lib/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ConcurrencyTestSuite struct {
	suite.Suite
	service *service.BankService
	client  testClient
}

func (suite *ConcurrencyTestSuite) SetupSuite() {
	svc, err := BankTestServiceInit()
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	// widen the pool so the goroutines below contend on the account row
	// lock instead of queueing for a single connection
	svc.DB.SetMaxOpenConns(10)
	svc.DB.SetMaxIdleConns(10)
	suite.service = svc
}

func (suite *ConcurrencyTestSuite) SetupTest() {
	clients, err := createClients(suite.service, 1)
	if err != nil {
		log.Fatalf("Error creating test clients: %v", err)
	}
	suite.client = clients[0]
}

func (suite *ConcurrencyTestSuite) TearDownTest() {
	clearTable(suite.service, "transactions")
	clearTable(suite.service, "accounts")
	clearTable(suite.service, "clients")
}

// Ten simultaneous withdrawals race for a balance that only covers three of
// them. The row lock serializes the balance check and the append, so exactly
// the affordable subset lands and the account never goes negative.
func (suite *ConcurrencyTestSuite) TestConcurrentWithdrawalsNeverOverdraw() {
	ctx := context.Background()
	accountId := suite.client.account.ID
	_, err := suite.service.CreateTransaction(ctx, accountId, decimal.RequireFromString("100.00"), common.TransactionTypeCredit, false)
	assert.NoError(suite.T(), err)

	amount := decimal.RequireFromString("30.00")
	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.service.CreateTransaction(ctx, accountId, amount, common.TransactionTypeDebit, false)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(suite.T(), err, service.ErrInsufficientFunds)
		}
	}
	assert.Equal(suite.T(), 3, succeeded)

	balance, err := suite.service.AccountBalance(ctx, accountId)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), balance.IsNegative())
	assert.Equal(suite.T(), "10.00", balance.StringFixed(2))
}

// Opposing transfers between the same pair of accounts run concurrently.
// Locking both rows in ascending id order keeps the two directions from
// deadlocking, and with no fee between own accounts the total is conserved.
func (suite *ConcurrencyTestSuite) TestOpposingTransfersConserveFunds() {
	ctx := context.Background()
	first := suite.client.account
	second, err := suite.service.CreateAccount(ctx, suite.client.client.ID)
	assert.NoError(suite.T(), err)

	for _, accountId := range []int64{first.ID, second.ID} {
		_, err := suite.service.CreateTransaction(ctx, accountId, decimal.RequireFromString("500.00"), common.TransactionTypeCredit, false)
		assert.NoError(suite.T(), err)
	}

	amount := decimal.RequireFromString("100.00")
	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 5; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := suite.service.Transfer(ctx, first.ID, second.ID, amount)
			errs <- err
		}()
		go func() {
			defer wg.Done()
			_, err := suite.service.Transfer(ctx, second.ID, first.ID, amount)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			assert.ErrorIs(suite.T(), err, service.ErrInsufficientFunds)
		}
	}

	firstBalance, err := suite.service.AccountBalance(ctx, first.ID)
	assert.NoError(suite.T(), err)
	secondBalance, err := suite.service.AccountBalance(ctx, second.ID)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), firstBalance.IsNegative())
	assert.False(suite.T(), secondBalance.IsNegative())
	assert.Equal(suite.T(), "1000.00", firstBalance.Add(secondBalance).StringFixed(2))
}

func TestConcurrencyTestSuite(t *testing.T) {
	suite.Run(t, new(ConcurrencyTestSuite))
}
