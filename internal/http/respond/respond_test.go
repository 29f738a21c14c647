package respond_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/estate/internal/apperr"
	"github.com/MrJamesThe3rd/estate/internal/http/respond"
)

type body struct {
	Name string `json:"name" validate:"required"`
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    apperr.Code
	}{
		{name: "Valid", payload: `{"name":"x"}`, want: apperr.CodeSuccess},
		{name: "Empty", payload: ``, want: apperr.CodeValidation},
		{name: "Malformed", payload: `{"name":`, want: apperr.CodeValidation},
		{name: "UnknownField", payload: `{"name":"x","extra":1}`, want: apperr.CodeValidation},
		{name: "FailsRules", payload: `{"name":""}`, want: apperr.CodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.payload))

			var dst body
			assert.Equal(t, tt.want, apperr.CodeOf(respond.Decode(req, &dst)))
		})
	}
}

func TestRecover(t *testing.T) {
	h := respond.Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var env apperr.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, apperr.CodeInternal, env.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.JSON(rec, http.StatusCreated, map[string]int{"n": 1})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":1,"msg":"Success","data":{"n":1}}`, rec.Body.String())
}
