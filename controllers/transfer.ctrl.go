package controllers

import (
	"net/http"

	"github.com/contahub/contahub.go/lib/responses"
	"github.com/contahub/contahub.go/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransferController : Transfer controller struct
type TransferController struct {
	svc *service.BankService
}

func NewTransferController(svc *service.BankService) *TransferController {
	return &TransferController{svc: svc}
}

type TransferRequestBody struct {
	AccountID       int64           `json:"account_id" validate:"required"`
	TargetAccountID int64           `json:"target_account_id" validate:"required"`
	Amount          decimal.Decimal `json:"amount" validate:"required"`
}

type TransferResponseBody struct {
	DebitLeg  TransactionResponseBody `json:"debit_leg"`
	CreditLeg TransactionResponseBody `json:"credit_leg"`
}

// Transfer godoc
// @Summary      Transfer between accounts
// @Description  Debit the source account and credit the target account. When the accounts belong to different clients a 10% fee is retained from the credited amount.
// @Accept       json
// @Produce      json
// @Tags         Transaction
// @Param        TransferRequest  body      TransferRequestBody  True  "Transfer to execute"
// @Success      200              {object}  TransferResponseBody
// @Failure      400              {object}  responses.ErrorResponse
// @Failure      404              {object}  responses.ErrorResponse
// @Router       /transfers [post]
// @Security     OAuth2Password
func (controller *TransferController) Transfer(c echo.Context) error {
	clientId := c.Get("ClientID").(int64)
	reqBody := TransferRequestBody{}
	if err := c.Bind(&reqBody); err != nil {
		c.Logger().Errorf("Failed to load transfer request body client_id:%v error: %v", clientId, err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&reqBody); err != nil {
		c.Logger().Errorf("Invalid transfer request body client_id:%v error: %v", clientId, err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	result, err := controller.svc.Transfer(c.Request().Context(), reqBody.AccountID, reqBody.TargetAccountID, reqBody.Amount)
	if err != nil {
		return transactionErrorResponse(c, clientId, err)
	}

	return c.JSON(http.StatusOK, &TransferResponseBody{
		DebitLeg:  newTransactionResponseBody(result.DebitLeg),
		CreditLeg: newTransactionResponseBody(result.CreditLeg),
	})
}
