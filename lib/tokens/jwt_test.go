package tokens

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/contahub/contahub.go/db/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

var secret = []byte("SECRET")

func TestAccessTokenPassesMiddleware(t *testing.T) {
	token, err := GenerateAccessToken(secret, 3600, &models.Client{ID: 42})
	assert.NoError(t, err)

	rec := callWithToken(t, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRefreshTokenRejectedByMiddleware(t *testing.T) {
	token, err := GenerateRefreshToken(secret, 3600, &models.Client{ID: 42})
	assert.NoError(t, err)

	rec := callWithToken(t, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExpiredTokenRejectedByMiddleware(t *testing.T) {
	token, err := GenerateAccessToken(secret, -10, &models.Client{ID: 42})
	assert.NoError(t, err)

	rec := callWithToken(t, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken(secret, 3600, &models.Client{ID: 42})
	assert.NoError(t, err)

	clientId, err := ParseRefreshToken(secret, token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), clientId)

	accessToken, err := GenerateAccessToken(secret, 3600, &models.Client{ID: 42})
	assert.NoError(t, err)
	_, err = ParseRefreshToken(secret, accessToken)
	assert.Error(t, err)
}

func callWithToken(t *testing.T, token string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Middleware(secret)(func(c echo.Context) error {
		assert.Equal(t, int64(42), c.Get("ClientID").(int64))
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)
	assert.NoError(t, err)
	return rec
}
