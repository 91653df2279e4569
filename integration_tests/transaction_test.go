package integration_tests

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"testing"

	"github.com/contahub/contahub.go/controllers"
	"github.com/contahub/contahub.go/lib"
	"github.com/contahub/contahub.go/lib/responses"
	"github.com/contahub/contahub.go/lib/service"
	"github.com/contahub/contahub.go/lib/tokens"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type TransactionTestSuite struct {
	TestSuite
	service *service.BankService
	client  testClient
}

func (suite *TransactionTestSuite) SetupSuite() {
	svc, err := BankTestServiceInit()
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	suite.service = svc
	e := echo.New()
	e.HTTPErrorHandler = responses.HTTPErrorHandler
	e.Validator = &lib.CustomValidator{Validator: validator.New()}
	suite.echo = e
	secured := e.Group("", tokens.Middleware(suite.service.Config.JWTSecret))
	secured.POST("/transactions", controllers.NewTransactionController(suite.service).CreateTransaction)
	secured.GET("/accounts/:id/transactions", controllers.NewTransactionController(suite.service).GetTransactions)
	secured.GET("/accounts/:id/balance", controllers.NewBalanceController(suite.service).Balance)
}

func (suite *TransactionTestSuite) SetupTest() {
	clients, err := createClients(suite.service, 1)
	if err != nil {
		log.Fatalf("Error creating test clients: %v", err)
	}
	suite.client = clients[0]
}

func (suite *TransactionTestSuite) TearDownTest() {
	clearTable(suite.service, "transactions")
	clearTable(suite.service, "accounts")
	clearTable(suite.service, "clients")
}

func (suite *TransactionTestSuite) TestDepositWithdrawRoundTrip() {
	accountId := suite.client.account.ID

	deposit := suite.createTransactionReq(accountId, "1000.00", "CREDIT", suite.client.token)
	assert.Equal(suite.T(), "1000.00", deposit.Amount)
	assert.False(suite.T(), deposit.Transfer)

	balance := suite.getBalanceReq(accountId, suite.client.token)
	assert.Equal(suite.T(), "1000.00", balance.Balance)

	withdraw := suite.createTransactionReq(accountId, "1000.00", "DEBIT", suite.client.token)
	assert.Equal(suite.T(), "1000.00", withdraw.Amount)

	balance = suite.getBalanceReq(accountId, suite.client.token)
	assert.Equal(suite.T(), "0.00", balance.Balance)
}

func (suite *TransactionTestSuite) TestWithdrawMoreThanBalance() {
	accountId := suite.client.account.ID
	suite.createTransactionReq(accountId, "50.00", "CREDIT", suite.client.token)

	rec := suite.request(http.MethodPost, "/transactions", suite.client.token, &controllers.CreateTransactionRequestBody{
		AccountID: accountId,
		Amount:    decimal.RequireFromString("50.01"),
		Type:      "DEBIT",
	})
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	errorResponse := checkErrResponse(&suite.TestSuite, rec)
	assert.Equal(suite.T(), responses.NotEnoughBalanceError.Message, errorResponse.Message)

	// the failed debit left no row behind
	balance := suite.getBalanceReq(accountId, suite.client.token)
	assert.Equal(suite.T(), "50.00", balance.Balance)
	transactions := suite.getTransactionsReq(accountId)
	assert.Equal(suite.T(), 1, len(transactions))
}

func (suite *TransactionTestSuite) TestBalanceIsIdempotent() {
	accountId := suite.client.account.ID
	suite.createTransactionReq(accountId, "123.45", "CREDIT", suite.client.token)

	for i := 0; i < 3; i++ {
		balance := suite.getBalanceReq(accountId, suite.client.token)
		assert.Equal(suite.T(), "123.45", balance.Balance)
	}
}

func (suite *TransactionTestSuite) TestAmountOverMaximumRejected() {
	accountId := suite.client.account.ID

	rec := suite.request(http.MethodPost, "/transactions", suite.client.token, &controllers.CreateTransactionRequestBody{
		AccountID: accountId,
		Amount:    decimal.RequireFromString("100000.01"),
		Type:      "CREDIT",
	})
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	errorResponse := checkErrResponse(&suite.TestSuite, rec)
	assert.Equal(suite.T(), responses.AmountExceededError.Message, errorResponse.Message)
}

func (suite *TransactionTestSuite) TestUnknownAccountRejected() {
	rec := suite.request(http.MethodPost, "/transactions", suite.client.token, &controllers.CreateTransactionRequestBody{
		AccountID: 999999,
		Amount:    decimal.RequireFromString("10.00"),
		Type:      "CREDIT",
	})
	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
}

func (suite *TransactionTestSuite) TestStatementNewestFirst() {
	accountId := suite.client.account.ID
	suite.createTransactionReq(accountId, "100.00", "CREDIT", suite.client.token)
	suite.createTransactionReq(accountId, "25.00", "DEBIT", suite.client.token)

	transactions := suite.getTransactionsReq(accountId)
	assert.Equal(suite.T(), 2, len(transactions))
	assert.Equal(suite.T(), "DEBIT", transactions[0].Type)
	assert.Equal(suite.T(), "25.00", transactions[0].Amount)
	assert.Equal(suite.T(), "CREDIT", transactions[1].Type)
}

func (suite *TransactionTestSuite) getTransactionsReq(accountId int64) []controllers.TransactionResponseBody {
	rec := suite.request(http.MethodGet, fmt.Sprintf("/accounts/%d/transactions", accountId), suite.client.token, nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	transactions := []controllers.TransactionResponseBody{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&transactions))
	return transactions
}

func TestTransactionTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionTestSuite))
}
