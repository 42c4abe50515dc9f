package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
)

var testToday = domain.NewDate(2024, 6, 15)

func fixedToday() domain.Date { return testToday }

// newRequest builds an echo context for a JSON request
func newRequest(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withID(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder, status int) ProblemDetails {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	return decodeBody[ProblemDetails](t, rec)
}
