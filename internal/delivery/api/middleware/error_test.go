package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "charity/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
		wantLogged bool
	}{
		{
			name:       "client app error",
			err:        errors.Wrap(domainerrors.ErrChildNotFound, "child 1"),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"detail":"Child not found"}`,
		},
		{
			name: "validation error lists fields",
			err: domainerrors.NewValidationError(
				domainerrors.FieldError{Field: "email", Message: "email is required"},
			),
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"detail":[{"field":"email","message":"email is required"}]}`,
		},
		{
			name:       "server app error",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("no reachable servers"), "count"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"detail":"Database operation failed"}`,
			wantLogged: true,
		},
		{
			name:       "echo http error",
			err:        echo.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   `{"detail":"Method Not Allowed"}`,
		},
		{
			name:       "request entity too large",
			err:        echo.ErrStatusRequestEntityTooLarge,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantBody:   `{"detail":"Request Entity Too Large"}`,
		},
		{
			name:       "unknown error is hidden",
			err:        errors.New("dial tcp 10.0.0.1:27017"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"detail":"Internal server error, please try again later"}`,
			wantLogged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&buf, nil)))

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/children", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			if tt.wantLogged {
				assert.Contains(t, buf.String(), "Unhandled error")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestHandleHTTPError_CommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.String(http.StatusOK, "done")

	m.HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, "done", rec.Body.String())
}
