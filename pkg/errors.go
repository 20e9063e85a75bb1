package pkg

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// AppError is the error shape returned by the HTTP adapters.
//
// Code is a stable machine-readable identifier, Message is safe to show to the
// operator and Err (optional) keeps the underlying cause, whose text is exposed
// as "details" so remote failures surface the raw provider message.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
	Fields     map[string][]string
}

// HTTPError is the JSON body of an error response.
type HTTPError struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details string              `json:"details,omitempty"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: status}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	out := HTTPError{Code: e.Code, Message: e.Message, Fields: e.Fields}
	if e.Err != nil {
		out.Details = e.Err.Error()
	}
	return out
}

// FromValidationError converts binding failures into a 400 with one list of
// problems per field. Non-validation errors (malformed JSON) get no field map.
func FromValidationError(err error) *AppError {
	appErr := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return appErr
	}

	appErr.Fields = map[string][]string{}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			appErr.Fields[field] = append(appErr.Fields[field], "This field is required")
		case "min":
			appErr.Fields[field] = append(appErr.Fields[field], "Value is too small, min: "+fe.Param())
		case "max":
			appErr.Fields[field] = append(appErr.Fields[field], "Value is too large, max: "+fe.Param())
		case "email":
			appErr.Fields[field] = append(appErr.Fields[field], "Value must be a valid email address")
		case "oneof":
			appErr.Fields[field] = append(appErr.Fields[field], "Value must be one of: "+fe.Param())
		case "yyyymm":
			appErr.Fields[field] = append(appErr.Fields[field], "Value must be a month in the YYYY-MM format")
		default:
			appErr.Fields[field] = append(appErr.Fields[field], "Invalid value provided")
		}
	}
	return appErr
}
