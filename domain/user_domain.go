package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessSignup         = "account created successfully"
	MessageSuccessLogin          = "welcome back %s"
	MessageSuccessVerifyEmail    = "email verified successfully"
	MessageSuccessLogout         = "logged out successfully"
	MessageSuccessForgotPassword = "password reset link sent to your email"
	MessageSuccessResetPassword  = "password reset successfully"
	MessageSuccessUpdateProfile  = "profile updated successfully"

	MessageFailedSignup         = "failed to create account"
	MessageFailedLogin          = "incorrect email or password"
	MessageFailedVerifyEmail    = "invalid or expired verification token"
	MessageFailedForgotPassword = "failed to send password reset link"
	MessageFailedResetPassword  = "invalid or expired reset token"
	MessageFailedGetUser        = "failed to get user"
	MessageFailedUpdateProfile  = "failed to update profile"

	ErrEmailAlreadyExists     = errors.New("user already exist with this email")
	ErrInvalidCredentials     = errors.New("incorrect email or password")
	ErrUserNotFound           = errors.New("user not found")
	ErrUserDoesNotExist       = errors.New("user doesn't exist")
	ErrNotAdminAccount        = errors.New("unauthorized")
	ErrInvalidVerification    = errors.New("invalid or expired verification token")
	ErrInvalidResetToken      = errors.New("invalid or expired reset token")
	ErrFailedSendEmail        = errors.New("failed to send email")
	ErrFailedHashPassword     = errors.New("failed to hash password")
	ErrFailedGenerateToken    = errors.New("failed to generate token")
	ErrEmailUsedByAnotherUser = errors.New("email already used by another account")
)

const (
	VerificationTokenTTL  = 24 * time.Hour
	ResetPasswordTokenTTL = time.Hour
	SessionTTL            = 24 * time.Hour
)

type (
	SignupRequest struct {
		Fullname string `json:"fullname" form:"fullname" validate:"required,max=100"`
		Email    string `json:"email" form:"email" validate:"required,email"`
		Password string `json:"password" form:"password" validate:"required,min=6"`
		Contact  string `json:"contact" form:"contact" validate:"omitempty,max=20"`
	}

	LoginRequest struct {
		Email    string `json:"email" form:"email" validate:"required,email"`
		Password string `json:"password" form:"password" validate:"required"`
	}

	VerifyEmailRequest struct {
		VerificationCode string `json:"verificationCode" form:"verificationCode" validate:"required"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" form:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token       string `json:"-" validate:"required"`
		NewPassword string `json:"newPassword" form:"newPassword" validate:"required,min=6"`
	}

	UpdateProfileRequest struct {
		Fullname       string                `json:"fullname" form:"fullname" validate:"omitempty,max=100"`
		Email          string                `json:"email" form:"email" validate:"omitempty,email"`
		Address        string                `json:"address" form:"address"`
		City           string                `json:"city" form:"city"`
		Country        string                `json:"country" form:"country"`
		ProfilePicture *multipart.FileHeader `json:"-" form:"-"`
	}
)
