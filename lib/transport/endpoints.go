package transport

import (
	"github.com/contahub/contahub.go/controllers"
	"github.com/contahub/contahub.go/lib/service"
	"github.com/labstack/echo/v4"
)

func RegisterEndpoints(svc *service.BankService, e *echo.Echo, secured *echo.Group, securedWithStrictRateLimit *echo.Group, strictRateLimitMiddleware echo.MiddlewareFunc, logMw echo.MiddlewareFunc) {
	if svc.Config.AllowClientCreation {
		e.POST("/clients", controllers.NewClientController(svc).CreateClient, strictRateLimitMiddleware, logMw)
	}
	e.POST("/auth", controllers.NewAuthController(svc).Auth, strictRateLimitMiddleware, logMw)
	e.GET("/info", controllers.NewInfoController(svc).Info, CreateCacheClient().Middleware())

	accountCtrl := controllers.NewAccountController(svc)
	transactionCtrl := controllers.NewTransactionController(svc)

	secured.POST("/accounts", accountCtrl.CreateAccount)
	secured.GET("/accounts", accountCtrl.GetAccounts)
	secured.PUT("/accounts/:id/credit", accountCtrl.UpdateCreditLimit)
	secured.GET("/accounts/:id/balance", controllers.NewBalanceController(svc).Balance)
	secured.GET("/accounts/:id/transactions", transactionCtrl.GetTransactions)
	secured.POST("/transactions", transactionCtrl.CreateTransaction)
	securedWithStrictRateLimit.POST("/transfers", controllers.NewTransferController(svc).Transfer)
}
