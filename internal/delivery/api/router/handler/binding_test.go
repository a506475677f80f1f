package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "charity/internal/domain/errors"
	"charity/internal/domain/schema"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindAndValidate_WrongJSONType(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		field   string
		message string
	}{
		{
			name:    "amount as string",
			body:    `{"firstName":"A","lastName":"B","email":"a@b.com","monthlyAmount":"x","paymentMethod":"paypal","currency":"USD"}`,
			field:   "monthlyAmount",
			message: "monthlyAmount must be a number",
		},
		{
			name:    "email as number",
			body:    `{"firstName":"A","lastName":"B","email":5,"monthlyAmount":5,"paymentMethod":"paypal","currency":"USD"}`,
			field:   "email",
			message: "email must be a string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(http.MethodPost, "/sponsorships", tt.body)

			err := bindAndValidate(c, &schema.SponsorshipRequest{})

			var vErr *domainerrors.ValidationError
			require.True(t, errors.As(err, &vErr), "got %v", err)
			require.Len(t, vErr.Fields, 1)
			assert.Equal(t, tt.field, vErr.Fields[0].Field)
			assert.Equal(t, tt.message, vErr.Fields[0].Message)
		})
	}
}

func TestBindAndValidate_MalformedBody(t *testing.T) {
	c, _ := newContext(http.MethodPost, "/sponsorships", `{"firstName":`)

	err := bindAndValidate(c, &schema.SponsorshipRequest{})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPCode())
	assert.Equal(t, "Invalid request body", appErr.Message())
}

func TestBindAndValidate_MissingContentTypeReadsJSON(t *testing.T) {
	e := echo.New()
	e.Validator = schema.NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/newsletter/subscribe", strings.NewReader(`{"email":"reader@example.com"}`))
	c := e.NewContext(req, httptest.NewRecorder())

	var body schema.SubscriberRequest
	require.NoError(t, bindAndValidate(c, &body))
	assert.Equal(t, "reader@example.com", body.Email)
}
