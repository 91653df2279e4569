package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/contahub/contahub.go/db/models"
	"github.com/contahub/contahub.go/lib/responses"
	"github.com/contahub/contahub.go/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionController : Transaction controller struct
type TransactionController struct {
	svc *service.BankService
}

func NewTransactionController(svc *service.BankService) *TransactionController {
	return &TransactionController{svc: svc}
}

type CreateTransactionRequestBody struct {
	AccountID int64           `json:"account_id" validate:"required"`
	Amount    decimal.Decimal `json:"amount" validate:"required"`
	Type      string          `json:"type" validate:"required,oneof=CREDIT DEBIT"`
}

type TransactionResponseBody struct {
	ID        int64     `json:"id"`
	AccountID int64     `json:"account_id"`
	Amount    string    `json:"amount"`
	Type      string    `json:"type"`
	Transfer  bool      `json:"transfer"`
	CreatedAt time.Time `json:"created_at"`
}

func newTransactionResponseBody(transaction *models.Transaction) TransactionResponseBody {
	return TransactionResponseBody{
		ID:        transaction.ID,
		AccountID: transaction.AccountID,
		Amount:    transaction.Amount.StringFixed(2),
		Type:      transaction.Type,
		Transfer:  transaction.Transfer,
		CreatedAt: transaction.CreatedAt,
	}
}

// CreateTransaction godoc
// @Summary      Record a transaction
// @Description  Deposit (CREDIT) or withdraw (DEBIT) on a single account
// @Accept       json
// @Produce      json
// @Tags         Transaction
// @Param        CreateTransactionRequest  body      CreateTransactionRequestBody  True  "Movement to record"
// @Success      201                       {object}  TransactionResponseBody
// @Failure      400                       {object}  responses.ErrorResponse
// @Failure      404                       {object}  responses.ErrorResponse
// @Router       /transactions [post]
// @Security     OAuth2Password
func (controller *TransactionController) CreateTransaction(c echo.Context) error {
	clientId := c.Get("ClientID").(int64)
	reqBody := CreateTransactionRequestBody{}
	if err := c.Bind(&reqBody); err != nil {
		c.Logger().Errorf("Failed to load transaction request body client_id:%v error: %v", clientId, err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&reqBody); err != nil {
		c.Logger().Errorf("Invalid transaction request body client_id:%v error: %v", clientId, err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	transaction, err := controller.svc.CreateTransaction(c.Request().Context(), reqBody.AccountID, reqBody.Amount, reqBody.Type, false)
	if err != nil {
		return transactionErrorResponse(c, clientId, err)
	}

	return c.JSON(http.StatusCreated, newTransactionResponseBody(transaction))
}

// GetTransactions godoc
// @Summary      Account statement
// @Description  List an account's transactions, newest first
// @Produce      json
// @Tags         Transaction
// @Param        id  path  int  True  "Account ID"
// @Success      200  {array}   TransactionResponseBody
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /accounts/{id}/transactions [get]
// @Security     OAuth2Password
func (controller *TransactionController) GetTransactions(c echo.Context) error {
	accountId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	transactions, err := controller.svc.TransactionsForAccount(c.Request().Context(), accountId)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return c.JSON(http.StatusNotFound, responses.AccountNotFoundError)
		}
		c.Logger().Errorf("Failed to fetch transactions account_id:%v error: %v", accountId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}

	response := make([]TransactionResponseBody, len(transactions))
	for i := range transactions {
		response[i] = newTransactionResponseBody(&transactions[i])
	}
	return c.JSON(http.StatusOK, &response)
}

func transactionErrorResponse(c echo.Context, clientId int64, err error) error {
	switch {
	case errors.Is(err, service.ErrAccountNotFound):
		return c.JSON(http.StatusNotFound, responses.AccountNotFoundError)
	case errors.Is(err, service.ErrInsufficientFunds):
		return c.JSON(http.StatusBadRequest, responses.NotEnoughBalanceError)
	case errors.Is(err, service.ErrAmountExceedsLimit):
		return c.JSON(http.StatusBadRequest, responses.AmountExceededError)
	case errors.Is(err, service.ErrInvalidAmount), errors.Is(err, service.ErrInvalidType):
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	case errors.Is(err, service.ErrSameAccount):
		return c.JSON(http.StatusBadRequest, responses.SameAccountError)
	}
	c.Logger().Errorf("Transaction failed client_id:%v error: %v", clientId, err)
	return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
}
