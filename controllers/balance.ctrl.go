package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/contahub/contahub.go/common"
	"github.com/contahub/contahub.go/lib/responses"
	"github.com/contahub/contahub.go/lib/service"
	"github.com/labstack/echo/v4"
)

// BalanceController : BalanceController struct
type BalanceController struct {
	svc *service.BankService
}

func NewBalanceController(svc *service.BankService) *BalanceController {
	return &BalanceController{svc: svc}
}

type BalanceResponseBody struct {
	AccountID int64  `json:"account_id"`
	Balance   string `json:"balance"`
	Currency  string `json:"currency"`
}

// Balance godoc
// @Summary      Retrieve balance
// @Description  Account balance derived from the transaction ledger
// @Produce      json
// @Tags         Account
// @Param        id  path  int  True  "Account ID"
// @Success      200  {object}  BalanceResponseBody
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /accounts/{id}/balance [get]
// @Security     OAuth2Password
func (controller *BalanceController) Balance(c echo.Context) error {
	accountId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	balance, err := controller.svc.AccountBalance(c.Request().Context(), accountId)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return c.JSON(http.StatusNotFound, responses.AccountNotFoundError)
		}
		c.Logger().Errorf("Error fetching balance for account_id:%v error: %v", accountId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}

	return c.JSON(http.StatusOK, &BalanceResponseBody{
		AccountID: accountId,
		Balance:   balance.StringFixed(2),
		Currency:  common.CurrencyCode,
	})
}
