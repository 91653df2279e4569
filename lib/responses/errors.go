package responses

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error          bool   `json:"error"`
	Code           int    `json:"code"`
	Message        string `json:"message"`
	HttpStatusCode int    `json:"-"`
}

var GeneralServerError = ErrorResponse{
	Error:          true,
	Code:           6,
	Message:        "Something went wrong. Please try again later",
	HttpStatusCode: 500,
}

var BadArgumentsError = ErrorResponse{
	Error:          true,
	Code:           8,
	Message:        "Bad arguments",
	HttpStatusCode: 400,
}

var BadAuthError = ErrorResponse{
	Error:          true,
	Code:           1,
	Message:        "bad auth",
	HttpStatusCode: 401,
}

var ClientNotFoundError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "client not found",
	HttpStatusCode: 404,
}

var AccountNotFoundError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "account not found",
	HttpStatusCode: 404,
}

var NotEnoughBalanceError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "not enough balance to complete the transaction",
	HttpStatusCode: 400,
}

var SameAccountError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "source and target account are the same",
	HttpStatusCode: 400,
}

var AmountExceededError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "max transaction amount exceeded. please contact support for further assistance.",
	HttpStatusCode: 400,
}

var CPFTakenError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "a client with this cpf already exists",
	HttpStatusCode: 400,
}

var CreditLimitLoweredError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "the credit limit can not be decreased",
	HttpStatusCode: 400,
}

func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	c.Logger().Error(err)
	if hub := sentryecho.GetHubFromContext(c); hub != nil && isErrAllowedForSentry(err) {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetExtra("ClientID", c.Get("ClientID"))
			hub.CaptureException(err)
		})
	}
	if he, ok := err.(*echo.HTTPError); ok {
		c.JSON(he.Code, he.Message)
	} else {
		c.JSON(http.StatusInternalServerError, GeneralServerError)
	}
}

// auth failures are expected noise, do not report them to sentry
func isErrAllowedForSentry(err error) bool {
	he, ok := err.(*echo.HTTPError)
	if !ok {
		return true
	}
	m, ok := he.Message.(echo.Map)
	if !ok {
		return true
	}
	code, ok := m["code"].(int)
	if !ok {
		return true
	}
	return code != BadAuthError.Code
}
