package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

// StructuredError carries per-field validation problems. It is the only
// error shape that ever echoes anything derived from the payload.
type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

func (s *StructuredError) Empty() bool {
	return len(s.Errors) == 0
}

var (
	MalformedBodyError  = NewSimple(400, "Malformed request body")
	InternalServerError = NewSimple(500, "Internal server error")

	NotFoundError     = NewSimple(404, "Resource not found")
	UnauthorizedError = NewSimple(401, "Missing or invalid credentials")

	// AccessDeniedError gates owner-only mutations. It is deliberately a
	// fixed message: the response must not vary with the payload, unlike
	// validation errors.
	AccessDeniedError = NewSimple(403, "Access denied")

	InvalidAuthTokenError = NewSimple(401, "Invalid or expired auth token")

	/*
	 * Used for authentications
	 */
	IDPInvalidPasswordError     = NewSimple(400, "Provided password does not meet requirements")
	IDPExistingEmailError       = NewSimple(400, "Email already exists")
	IDPUserNotFoundError        = NewSimple(404, "User not found")
	IDPUserNotConfirmedError    = NewSimple(400, "User is not confirmed yet")
	IDPCredentialsMismatchError = NewSimple(400, "Credentials mismatch")
	IDPConfirmCodeMismatchError = NewSimple(400, "Confirmation code mismatch")
	IDPConfirmCodeExpiredError  = NewSimple(400, "Confirmation code has expired")
	IDPInvalidParameterError    = NewSimple(400, "Invalid parameters provided, the user is likely already verified")

	MissingAvatarFileError = NewSimple(400, "Missing avatar file")
)

// AddValidation folds validator errors into the structured set, prefixing
// every field key. The prefix lets one error set span a parent payload and
// its indexed child slots ("phones[0].number").
func (s *StructuredError) AddValidation(prefix string, err error) {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return
	}

	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		if prefix != "" {
			field = prefix + "." + field
		}
		s.Add(field, messageFor(fe))
	}
}

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}

	se := NewStructured(http.StatusBadRequest)
	se.AddValidation("", err)
	return se
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return "Value is too short, min: " + fe.Param()
	case "max":
		return "Value is too long, max: " + fe.Param()
	case "len":
		return "Value must be exactly " + fe.Param() + " characters long"
	case "number":
		return "Value must contain digits only"
	case "email":
		return "Value must be a valid email address"
	case "datetime":
		return "Value must be a date in format " + fe.Param()
	case "oneof":
		return "Value must be one of: " + fe.Param()
	case "capitalized":
		return "Value must start with an uppercase letter"
	case "gte":
		return "Value must be at least " + fe.Param()
	default:
		return "Invalid value provided"
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}

func NewMissingParamError(name string) *APIError {
	return NewSimple(http.StatusBadRequest, "Missing required parameter '%s'", name)
}

func NewInvalidFileExtError(ext string) *APIError {
	return NewSimple(http.StatusBadRequest, "File extension '%s' is not allowed", ext)
}
