package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/contahub/contahub.go/lib/responses"
	"github.com/contahub/contahub.go/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// AccountController : Account controller struct
type AccountController struct {
	svc *service.BankService
}

func NewAccountController(svc *service.BankService) *AccountController {
	return &AccountController{svc: svc}
}

type AccountResponseBody struct {
	ID          int64  `json:"id"`
	Number      string `json:"number"`
	ClientID    int64  `json:"client_id"`
	CreditLimit string `json:"credit_limit"`
	Balance     string `json:"balance,omitempty"`
}

type UpdateCreditLimitRequestBody struct {
	CreditLimit decimal.Decimal `json:"credit_limit" validate:"required"`
}

// CreateAccount godoc
// @Summary      Open an account
// @Description  Open a new account for the authenticated client
// @Accept       json
// @Produce      json
// @Tags         Account
// @Success      201  {object}  AccountResponseBody
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /accounts [post]
// @Security     OAuth2Password
func (controller *AccountController) CreateAccount(c echo.Context) error {
	clientId := c.Get("ClientID").(int64)

	account, err := controller.svc.CreateAccount(c.Request().Context(), clientId)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			return c.JSON(http.StatusNotFound, responses.ClientNotFoundError)
		}
		c.Logger().Errorf("Failed to create account client_id:%v error: %v", clientId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}

	return c.JSON(http.StatusCreated, &AccountResponseBody{
		ID:          account.ID,
		Number:      account.Number,
		ClientID:    account.ClientID,
		CreditLimit: account.CreditLimit.StringFixed(2),
	})
}

// GetAccounts godoc
// @Summary      List accounts
// @Description  All accounts of the authenticated client with derived balances
// @Produce      json
// @Tags         Account
// @Success      200  {array}   AccountResponseBody
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /accounts [get]
// @Security     OAuth2Password
func (controller *AccountController) GetAccounts(c echo.Context) error {
	clientId := c.Get("ClientID").(int64)

	accounts, err := controller.svc.AccountsForClient(c.Request().Context(), clientId)
	if err != nil {
		c.Logger().Errorf("Failed to list accounts client_id:%v error: %v", clientId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}

	response := make([]AccountResponseBody, len(accounts))
	for i, account := range accounts {
		response[i] = AccountResponseBody{
			ID:          account.ID,
			Number:      account.Number,
			ClientID:    account.ClientID,
			CreditLimit: account.CreditLimit.StringFixed(2),
			Balance:     account.Balance.StringFixed(2),
		}
	}
	return c.JSON(http.StatusOK, &response)
}

// UpdateCreditLimit godoc
// @Summary      Raise credit limit
// @Description  Update an account's credit limit, lower values are rejected
// @Accept       json
// @Produce      json
// @Tags         Account
// @Param        id  path  int  True  "Account ID"
// @Success      200  {object}  AccountResponseBody
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /accounts/{id}/credit [put]
// @Security     OAuth2Password
func (controller *AccountController) UpdateCreditLimit(c echo.Context) error {
	accountId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	reqBody := UpdateCreditLimitRequestBody{}
	if err := c.Bind(&reqBody); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if reqBody.CreditLimit.IsNegative() {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	account, err := controller.svc.UpdateCreditLimit(c.Request().Context(), accountId, reqBody.CreditLimit)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccountNotFound):
			return c.JSON(http.StatusNotFound, responses.AccountNotFoundError)
		case errors.Is(err, service.ErrCreditLimitLowered):
			return c.JSON(http.StatusBadRequest, responses.CreditLimitLoweredError)
		}
		c.Logger().Errorf("Failed to update credit limit account_id:%v error: %v", accountId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}

	return c.JSON(http.StatusOK, &AccountResponseBody{
		ID:          account.ID,
		Number:      account.Number,
		ClientID:    account.ClientID,
		CreditLimit: account.CreditLimit.StringFixed(2),
	})
}
