package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidSecret is returned when a master phone logs in with the wrong secret code.
	ErrInvalidSecret = errors.New("invalid secret code")
	// ErrUserNotFound is returned when no account exists for a phone number.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidPassword is returned when the password does not match.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrPendingApproval is returned when an unapproved account tries to log in.
	ErrPendingApproval = errors.New("account pending admin approval")
	// ErrPhoneReserved is returned when a registration uses a master-authorized phone.
	ErrPhoneReserved = errors.New("phone number reserved for master access")
	// ErrPhoneTaken is returned when a registration reuses an existing phone.
	ErrPhoneTaken = errors.New("user with this phone number already exists")
	// ErrInvalidOTP is returned when the verification code does not match.
	ErrInvalidOTP = errors.New("invalid verification code")
	// ErrPermissionDenied is returned when the identity lacks edit rights for the target scope.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrCapacityExceeded is returned when a roster scope already holds the maximum members.
	ErrCapacityExceeded = errors.New("team is at full capacity")
	// ErrInvalidDistrict is returned when a district name is not in the fixed list.
	ErrInvalidDistrict = errors.New("unknown district")
	// ErrNotFound is returned when a member or user record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidRefreshToken is returned when a refresh token is invalid, expired or revoked.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidSecret):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_SECRET")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrInvalidPassword):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_PASSWORD")
	case errors.Is(err, ErrPendingApproval):
		return NewHTTPError(http.StatusForbidden, err.Error(), "PENDING_APPROVAL")
	case errors.Is(err, ErrPhoneReserved):
		return NewHTTPError(http.StatusConflict, err.Error(), "PHONE_RESERVED")
	case errors.Is(err, ErrPhoneTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "PHONE_TAKEN")
	case errors.Is(err, ErrInvalidOTP):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_OTP")
	case errors.Is(err, ErrPermissionDenied):
		return NewHTTPError(http.StatusForbidden, err.Error(), "PERMISSION_DENIED")
	case errors.Is(err, ErrCapacityExceeded):
		return NewHTTPError(http.StatusConflict, err.Error(), "CAPACITY_EXCEEDED")
	case errors.Is(err, ErrInvalidDistrict):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_DISTRICT")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrInvalidRefreshToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_REFRESH_TOKEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
