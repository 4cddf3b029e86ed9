package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"restaurant-directory/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleServiceError_StatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: name is required", models.ErrValidation), http.StatusBadRequest},
		{models.ErrInvalidCredentials, http.StatusUnauthorized},
		{models.ErrInvalidToken, http.StatusUnauthorized},
		{fmt.Errorf("%w: nope", models.ErrForbidden), http.StatusForbidden},
		{fmt.Errorf("%w: restaurant 9", models.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: email taken", models.ErrConflict), http.StatusConflict},
		{fmt.Errorf("%w: saving user: disk full", models.ErrInternal), http.StatusInternalServerError},
		{errors.New("driver exploded"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			handleServiceError(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tc.status == http.StatusInternalServerError {
				assert.Equal(t, "An unexpected internal error occurred", body["error"])
			} else {
				assert.Equal(t, tc.err.Error(), body["error"])
			}
		})
	}
}

func TestBindJSON_ReportsFields(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"not-an-email","password":"123"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req RegisterRequest
	assert.False(t, bindJSON(c, &req))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "validation failed", body.Error)
	assert.Equal(t, map[string]string{
		"name":     "required",
		"lastName": "required",
		"email":    "email",
		"password": "min=6",
	}, body.Fields)
}

func TestBindJSON_ArrayBody(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`[{"name":"Flan","price":3},{"price":-1}]`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req []MenuItemRequest
	assert.False(t, bindJSON(c, &req))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "required", body.Fields["name"])
	assert.Equal(t, "gte=0", body.Fields["price"])
}

func TestBindJSON_MalformedBody(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req LoginRequest
	assert.False(t, bindJSON(c, &req))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "malformed request body")
}

func TestParamID(t *testing.T) {
	for raw, ok := range map[string]bool{"12": true, "0": false, "-3": false, "abc": false} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: raw}}

		id, got := paramID(c, "id")
		assert.Equal(t, ok, got, raw)
		if ok {
			assert.Equal(t, uint(12), id)
		} else {
			assert.Equal(t, http.StatusBadRequest, w.Code, raw)
		}
	}
}
