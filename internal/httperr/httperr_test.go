package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	UseJSONFieldNames()
}

func respond(err error) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	Respond(c, err)
	return rec
}

func TestRespond_StatusPerKind(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{InvalidInput("invalid_input", "x"), http.StatusBadRequest},
		{Unauthenticated("missing_token", "x"), http.StatusUnauthorized},
		{Forbidden("forbidden", "x"), http.StatusForbidden},
		{NotFound("not_found", "x"), http.StatusNotFound},
		{Conflict("duplicate", "x"), http.StatusConflict},
		{InvalidReference("bad_ref", "x"), http.StatusBadRequest},
		{InvalidTransition("invalid_state", "x"), http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := respond(tc.err)
		assert.Equal(t, tc.status, rec.Code, tc.err.Error())
	}
}

func TestRespond_InternalHidesCause(t *testing.T) {
	rec := respond(fmt.Errorf("dial tcp: %w", errors.New("connection refused")))

	var body HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal_error", body.Code)
	assert.NotContains(t, body.Message, "connection refused")
}

func TestIsBusinessAndKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("confirm: %w", InvalidTransition("invalid_state", "no"))

	assert.True(t, IsBusiness(err, "invalid_state"))
	assert.False(t, IsBusiness(err, "other"))
	assert.Equal(t, KindInvalidTransition, KindOf(err))
	assert.True(t, Is(err, KindInvalidTransition))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
}

type bindTarget struct {
	Nombres  string `json:"nombres" binding:"required"`
	Telefono string `json:"telefono" binding:"required"`
}

func TestFromBinding_ListsJSONFields(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Request.Body = http.NoBody

	var req bindTarget
	err := c.ShouldBindJSON(&req)
	require.Error(t, err)
	be := FromBinding(err)
	assert.Equal(t, KindInvalidInput, KindOf(be))

	err = binding.Validator.ValidateStruct(&bindTarget{})
	require.Error(t, err)

	var got BusinessError
	require.True(t, errors.As(FromBinding(err), &got))
	assert.ElementsMatch(t, []string{"nombres", "telefono"}, got.Fields)
}
