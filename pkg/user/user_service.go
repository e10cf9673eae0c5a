package user

import (
	"FoodHub/domain"
	"FoodHub/entities"
	"FoodHub/internal/utils"
	"FoodHub/internal/utils/mailing"
	"FoodHub/internal/utils/storage"
	"FoodHub/pkg/jwt"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type (
	UserService interface {
		Signup(ctx context.Context, req domain.SignupRequest) (*entities.User, string, error)
		Login(ctx context.Context, req domain.LoginRequest) (*entities.User, string, error)
		AdminLogin(ctx context.Context, req domain.LoginRequest) (*entities.User, string, error)
		VerifyEmail(ctx context.Context, req domain.VerifyEmailRequest) (*entities.User, error)
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
		CheckAuth(ctx context.Context, userID string) (*entities.User, error)
		UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (*entities.User, error)
		SeedAdmin(ctx context.Context, name, email, password string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		s3             storage.AwsS3
		mailer         mailing.Mailer
		now            func() time.Time
	}
)

func NewUserService(
	userRepository UserRepository,
	jwtService jwt.JWTService,
	s3 storage.AwsS3,
	mailer mailing.Mailer,
) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		s3:             s3,
		mailer:         mailer,
		now:            time.Now,
	}
}

func (s *userService) Signup(ctx context.Context, req domain.SignupRequest) (*entities.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, err := s.userRepository.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, "", domain.ErrEmailAlreadyExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", domain.ErrFailedHashPassword
	}

	code, err := generateVerificationCode()
	if err != nil {
		return nil, "", err
	}
	expiresAt := s.now().Add(domain.VerificationTokenTTL)

	user := &entities.User{
		Fullname:                   req.Fullname,
		Email:                      email,
		Password:                   string(hashed),
		Contact:                    req.Contact,
		VerificationToken:          &code,
		VerificationTokenExpiresAt: &expiresAt,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.jwtService.GenerateTokenUser(user.ID.String())
	if err != nil {
		return nil, "", err
	}

	if err := s.mailer.SendVerificationEmail(user.Email, code); err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrFailedSendEmail, err)
	}

	return user, token, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*entities.User, string, error) {
	return s.login(ctx, req, false)
}

func (s *userService) AdminLogin(ctx context.Context, req domain.LoginRequest) (*entities.User, string, error) {
	return s.login(ctx, req, true)
}

// login checks the admin flag before the password, so a non-admin probing
// the admin endpoint gets 401 regardless of the password it sent.
func (s *userService) login(ctx context.Context, req domain.LoginRequest, adminOnly bool) (*entities.User, string, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if adminOnly && !user.Admin {
		return nil, "", domain.ErrNotAdminAccount
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateTokenUser(user.ID.String())
	if err != nil {
		return nil, "", err
	}

	user.LastLogin = s.now()
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) VerifyEmail(ctx context.Context, req domain.VerifyEmailRequest) (*entities.User, error) {
	user, err := s.userRepository.GetUserByVerificationToken(ctx, req.VerificationCode, s.now())
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidVerification
		}
		return nil, err
	}

	user.IsVerified = true
	user.VerificationToken = nil
	user.VerificationTokenExpiresAt = nil
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	if err := s.mailer.SendWelcomeEmail(user.Email, user.Fullname); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFailedSendEmail, err)
	}
	return user, nil
}

func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserDoesNotExist
		}
		return err
	}

	raw := make([]byte, 40)
	if _, err := rand.Read(raw); err != nil {
		return err
	}
	token := hex.EncodeToString(raw)
	expiresAt := s.now().Add(domain.ResetPasswordTokenTTL)

	user.ResetPasswordToken = &token
	user.ResetPasswordTokenExpiresAt = &expiresAt
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", strings.TrimRight(utils.GetConfig("FRONTEND_URL"), "/"), token)
	if err := s.mailer.SendPasswordResetEmail(user.Email, resetURL); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrFailedSendEmail, err)
	}
	return nil
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	user, err := s.userRepository.GetUserByResetToken(ctx, req.Token, s.now())
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidResetToken
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return domain.ErrFailedHashPassword
	}
	user.Password = string(hashed)
	user.ResetPasswordToken = nil
	user.ResetPasswordTokenExpiresAt = nil
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return err
	}

	if err := s.mailer.SendResetSuccessEmail(user.Email); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrFailedSendEmail, err)
	}
	return nil
}

func (s *userService) CheckAuth(ctx context.Context, userID string) (*entities.User, error) {
	return s.userRepository.GetUserByID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (*entities.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email != user.Email {
			other, err := s.userRepository.GetUserByEmail(ctx, email)
			if err == nil && other.ID != user.ID {
				return nil, domain.ErrEmailUsedByAnotherUser
			}
			if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
				return nil, err
			}
			user.Email = email
		}
	}
	if req.Fullname != "" {
		user.Fullname = req.Fullname
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.City != "" {
		user.City = req.City
	}
	if req.Country != "" {
		user.Country = req.Country
	}

	if req.ProfilePicture != nil {
		objectKey, err := s.s3.UploadFile(uuid.NewString(), req.ProfilePicture, "profile-pictures", storage.AllowImage...)
		if err != nil {
			return nil, err
		}
		if old := s.s3.GetObjectKeyFromLink(user.ProfilePicture); old != "" {
			if err := s.s3.DeleteFile(old); err != nil {
				log.Warnf("failed to delete old profile picture %s: %v", old, err)
			}
		}
		user.ProfilePicture = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SeedAdmin creates the bootstrap admin account if no user owns the email
// yet, or promotes the existing one. Signup never grants admin.
func (s *userService) SeedAdmin(ctx context.Context, name, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.userRepository.GetUserByEmail(ctx, email)
	if err == nil {
		if existing.Admin {
			return nil
		}
		existing.Admin = true
		log.Infof("promoting %s to admin", email)
		return s.userRepository.UpdateUser(ctx, existing)
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.ErrFailedHashPassword
	}
	log.Infof("seeding admin account %s", email)
	return s.userRepository.CreateUser(ctx, &entities.User{
		Fullname:   name,
		Email:      email,
		Password:   string(hashed),
		Admin:      true,
		IsVerified: true,
	})
}

func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
