package domain

import "errors"

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageInternalServerError  = "internal server error"
	MessageAdminAccessRequired  = "admin access required"
	MessageUnauthorized         = "user not authenticated"

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrTokenExpired   = errors.New("token expired")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrAdminRequired  = errors.New("admin access required")
	ErrImageRequired  = errors.New("image is required")
	ErrInvalidImage   = errors.New("invalid image format")
)

// AuthContext is resolved once per request by the auth middleware and handed to handlers.
type AuthContext struct {
	UserID  string
	IsAdmin bool
}
