package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/contahub/contahub.go/lib/responses"
	"github.com/contahub/contahub.go/lib/service"
	"github.com/labstack/echo/v4"
)

// ClientController : Create client controller struct
type ClientController struct {
	svc *service.BankService
}

func NewClientController(svc *service.BankService) *ClientController {
	return &ClientController{svc: svc}
}

type CreateClientRequestBody struct {
	CPF      string `json:"cpf" validate:"required,len=11,numeric"`
	Name     string `json:"name" validate:"required,min=2"`
	Phone    string `json:"phone" validate:"omitempty,len=11,numeric"`
	Password string `json:"password" validate:"required,min=6"`
}

type CreateClientResponseBody struct {
	ID        int64     `json:"id"`
	CPF       string    `json:"cpf"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateClient godoc
// @Summary      Register a client
// @Description  Create a new client identified by CPF
// @Accept       json
// @Produce      json
// @Tags         Client
// @Param        CreateClientRequest  body      CreateClientRequestBody  True  "Client to create"
// @Success      201                  {object}  CreateClientResponseBody
// @Failure      400                  {object}  responses.ErrorResponse
// @Failure      500                  {object}  responses.ErrorResponse
// @Router       /clients [post]
func (controller *ClientController) CreateClient(c echo.Context) error {
	reqBody := CreateClientRequestBody{}
	if err := c.Bind(&reqBody); err != nil {
		c.Logger().Errorf("Failed to load create client request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&reqBody); err != nil {
		c.Logger().Errorf("Invalid create client request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	client, err := controller.svc.CreateClient(c.Request().Context(), reqBody.CPF, reqBody.Name, reqBody.Phone, reqBody.Password)
	if err != nil {
		if errors.Is(err, service.ErrCPFTaken) {
			return c.JSON(http.StatusBadRequest, responses.CPFTakenError)
		}
		c.Logger().Errorf("Failed to create client: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}

	return c.JSON(http.StatusCreated, &CreateClientResponseBody{
		ID:        client.ID,
		CPF:       client.CPF,
		Name:      client.Name,
		Phone:     client.Phone,
		CreatedAt: client.CreatedAt,
	})
}
