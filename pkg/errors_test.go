package pkg

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_ToHTTPError(t *testing.T) {
	cause := errors.New("dynamodb: throttled")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	body := appErr.ToHTTPError()
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	assert.Equal(t, "dynamodb: throttled", body.Details)
	assert.ErrorIs(t, appErr, cause)

	simple := NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	assert.Empty(t, simple.ToHTTPError().Details)
	assert.Equal(t, "Quote not found", simple.Error())
}

func TestFromValidationError(t *testing.T) {
	type payload struct {
		Nome  string `validate:"required"`
		Email string `validate:"omitempty,email"`
	}

	err := validator.New().Struct(payload{Email: "not-an-email"})
	require.Error(t, err)

	appErr := FromValidationError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.Equal(t, []string{"This field is required"}, appErr.Fields["nome"])
	assert.Equal(t, []string{"Value must be a valid email address"}, appErr.Fields["email"])

	plain := FromValidationError(errors.New("unexpected EOF"))
	assert.Nil(t, plain.Fields)
}
