package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, fn func(c echo.Context) error) (*httptest.ResponseRecorder, Envelope) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("request_id", "req-123")

	require.NoError(t, fn(c))

	var envelope Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return rec, envelope
}

func TestSuccessEnvelope(t *testing.T) {
	rec, envelope := render(t, func(c echo.Context) error {
		return Success(c, http.StatusCreated, map[string]string{"hello": "world"})
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, envelope.Error)
	assert.NotNil(t, envelope.Data)
	assert.Equal(t, "req-123", envelope.Meta.RequestID)
}

func TestErrorEnvelope_KeepsDetailsOn400(t *testing.T) {
	rec, envelope := render(t, func(c echo.Context) error {
		return Error(c, http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed", "name too short")
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VALIDATION_FAILED", envelope.Error.Code)
	assert.Equal(t, "name too short", envelope.Error.Details)
}

func TestErrorEnvelope_SuppressesDetails(t *testing.T) {
	for _, statusCode := range []int{
		http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusInternalServerError,
	} {
		_, envelope := render(t, func(c echo.Context) error {
			return Error(c, statusCode, "SOME_CODE", "Something failed", "sensitive internals")
		})

		require.NotNil(t, envelope.Error)
		assert.Empty(t, envelope.Error.Details, "status %d should suppress details", statusCode)
	}
}
