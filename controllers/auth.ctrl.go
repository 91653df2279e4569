package controllers

import (
	"net/http"

	"github.com/contahub/contahub.go/lib/responses"
	"github.com/contahub/contahub.go/lib/service"
	"github.com/labstack/echo/v4"
)

// AuthController : Authentication controller struct
type AuthController struct {
	svc *service.BankService
}

func NewAuthController(svc *service.BankService) *AuthController {
	return &AuthController{svc: svc}
}

type AuthRequestBody struct {
	CPF          string `json:"cpf"`
	Password     string `json:"password"`
	RefreshToken string `json:"refresh_token"`
}

type AuthResponseBody struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Auth godoc
// @Summary      Authenticate
// @Description  Exchange CPF and password (or a refresh token) for a token pair
// @Accept       json
// @Produce      json
// @Tags         Auth
// @Param        AuthRequest  body      AuthRequestBody  True  "Credentials"
// @Success      200          {object}  AuthResponseBody
// @Failure      400          {object}  responses.ErrorResponse
// @Failure      401          {object}  responses.ErrorResponse
// @Router       /auth [post]
func (controller *AuthController) Auth(c echo.Context) error {
	reqBody := AuthRequestBody{}
	if err := c.Bind(&reqBody); err != nil {
		c.Logger().Errorf("Failed to load auth request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	accessToken, refreshToken, err := controller.svc.GenerateToken(c.Request().Context(), reqBody.CPF, reqBody.Password, reqBody.RefreshToken)
	if err != nil {
		c.Logger().Errorf("Authentication failed cpf:%v error: %v", reqBody.CPF, err)
		return c.JSON(http.StatusUnauthorized, responses.BadAuthError)
	}

	return c.JSON(http.StatusOK, &AuthResponseBody{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}
