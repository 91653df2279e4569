package controllers

import (
	"net/http"

	"github.com/contahub/contahub.go/common"
	"github.com/contahub/contahub.go/lib/service"
	"github.com/labstack/echo/v4"
)

// InfoController : Service info controller struct
type InfoController struct {
	svc *service.BankService
}

func NewInfoController(svc *service.BankService) *InfoController {
	return &InfoController{svc: svc}
}

type InfoResponseBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Url         string `json:"url"`
	Currency    string `json:"currency"`
}

// Info godoc
// @Summary      Service info
// @Description  Branding and currency information
// @Produce      json
// @Tags         Info
// @Success      200  {object}  InfoResponseBody
// @Router       /info [get]
func (controller *InfoController) Info(c echo.Context) error {
	branding := controller.svc.Config.Branding
	return c.JSON(http.StatusOK, &InfoResponseBody{
		Title:       branding.Title,
		Description: branding.Desc,
		Url:         branding.Url,
		Currency:    common.CurrencyCode,
	})
}
