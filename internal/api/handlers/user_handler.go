package handlers

import (
	"FoodHub/domain"
	"FoodHub/internal/api/presenters"
	"FoodHub/internal/utils"
	"FoodHub/pkg/user"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		Signup(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		AdminLogin(c *fiber.Ctx) error
		VerifyEmail(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
		ForgotPassword(c *fiber.Ctx) error
		ResetPassword(c *fiber.Ctx) error
		CheckAuth(c *fiber.Ctx) error
		UpdateProfile(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
	}
}

func setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(domain.SessionTTL),
		HTTPOnly: true,
		Secure:   utils.GetConfig("IsProd") == "true",
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func (h *userHandler) Signup(c *fiber.Ctx) error {
	req := new(domain.SignupRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSignup, err)
	}

	u, token, err := h.userService.Signup(c.Context(), *req)
	if err != nil {
		if statusFor(err) == fiber.StatusBadRequest {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		return fail(c, domain.MessageFailedSignup, err)
	}

	setSessionCookie(c, token)
	return presenters.SuccessResponse(c, fiber.Map{"user": u}, fiber.StatusCreated, domain.MessageSuccessSignup)
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	return h.login(c, false)
}

func (h *userHandler) AdminLogin(c *fiber.Ctx) error {
	return h.login(c, true)
}

func (h *userHandler) login(c *fiber.Ctx, adminOnly bool) error {
	req := new(domain.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	login := h.userService.Login
	if adminOnly {
		login = h.userService.AdminLogin
	}
	u, token, err := login(c.Context(), *req)
	if err != nil {
		return fail(c, err.Error(), err)
	}

	setSessionCookie(c, token)
	return presenters.SuccessResponse(c, fiber.Map{"user": u}, fiber.StatusOK, fmt.Sprintf(domain.MessageSuccessLogin, u.Fullname))
}

func (h *userHandler) VerifyEmail(c *fiber.Ctx) error {
	req := new(domain.VerifyEmailRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedVerifyEmail, err)
	}

	u, err := h.userService.VerifyEmail(c.Context(), *req)
	if err != nil {
		return fail(c, domain.MessageFailedVerifyEmail, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"user": u}, fiber.StatusOK, domain.MessageSuccessVerifyEmail)
}

func (h *userHandler) Logout(c *fiber.Ctx) error {
	c.ClearCookie("token")
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogout)
}

func (h *userHandler) ForgotPassword(c *fiber.Ctx) error {
	req := new(domain.ForgotPasswordRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedForgotPassword, err)
	}

	if err := h.userService.ForgotPassword(c.Context(), *req); err != nil {
		return fail(c, domain.MessageFailedForgotPassword, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessForgotPassword)
}

func (h *userHandler) ResetPassword(c *fiber.Ctx) error {
	req := new(domain.ResetPasswordRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Token = c.Params("token")
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedResetPassword, err)
	}

	if err := h.userService.ResetPassword(c.Context(), *req); err != nil {
		return fail(c, domain.MessageFailedResetPassword, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessResetPassword)
}

func (h *userHandler) CheckAuth(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	u, err := h.userService.CheckAuth(c.Context(), userID)
	if err != nil {
		return fail(c, domain.MessageFailedGetUser, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"user": u}, fiber.StatusOK, "")
}

func (h *userHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdateProfileRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if file, err := c.FormFile("profilePicture"); err == nil {
		req.ProfilePicture = file
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProfile, err)
	}

	u, err := h.userService.UpdateProfile(c.Context(), userID, *req)
	if err != nil {
		return fail(c, domain.MessageFailedUpdateProfile, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"user": u}, fiber.StatusOK, domain.MessageSuccessUpdateProfile)
}
