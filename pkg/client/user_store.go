package client

import (
	"FoodHub/domain"
	"FoodHub/entities"
	"context"
	"errors"
	"net/http"
)

type UserState struct {
	User            *entities.User `json:"user"`
	IsAuthenticated bool           `json:"isAuthenticated"`
}

type userResponse struct {
	User *entities.User `json:"user"`
}

// ProfileUpdate holds the profile fields to change. Empty fields are left
// as they are on the server.
type ProfileUpdate struct {
	Fullname       string
	Email          string
	Address        string
	City           string
	Country        string
	ProfilePicture *File
}

type UserStore struct {
	store[UserState]
	client *Client
}

func NewUserStore(client *Client, persist Persister, notifier Notifier) *UserStore {
	s := &UserStore{client: client}
	s.setup("user", persist, notifier)
	return s
}

// Sync restores the saved session, then asks the server who is logged in.
// A 401 or 404 signs the mirror out instead of failing.
func (s *UserStore) Sync(ctx context.Context) error {
	if err := s.restore(); err != nil {
		return err
	}
	return s.CheckAuth(ctx)
}

func (s *UserStore) CheckAuth(ctx context.Context) error {
	var out userResponse
	if _, err := s.client.doJSON(ctx, http.MethodGet, "/api/v1/user/check-auth", nil, &out); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusNotFound) {
			return s.signOut()
		}
		return err
	}
	return s.signIn(out.User)
}

func (s *UserStore) Signup(ctx context.Context, req domain.SignupRequest) (*entities.User, error) {
	return s.authenticate(ctx, "/api/v1/user/signup", req)
}

func (s *UserStore) Login(ctx context.Context, email, password string) (*entities.User, error) {
	return s.authenticate(ctx, "/api/v1/user/login", domain.LoginRequest{Email: email, Password: password})
}

func (s *UserStore) AdminLogin(ctx context.Context, email, password string) (*entities.User, error) {
	return s.authenticate(ctx, "/api/v1/user/admin/login", domain.LoginRequest{Email: email, Password: password})
}

func (s *UserStore) authenticate(ctx context.Context, path string, req any) (*entities.User, error) {
	var out userResponse
	msg, err := s.client.doJSON(ctx, http.MethodPost, path, req, &out)
	if err != nil {
		return nil, s.fail(err)
	}
	if err := s.signIn(out.User); err != nil {
		return nil, err
	}
	s.ok(msg)
	return out.User, nil
}

func (s *UserStore) VerifyEmail(ctx context.Context, code string) error {
	var out userResponse
	msg, err := s.client.doJSON(ctx, http.MethodPost, "/api/v1/user/verify-email", domain.VerifyEmailRequest{VerificationCode: code}, &out)
	if err != nil {
		return s.fail(err)
	}
	s.ok(msg)
	// The code can be redeemed without a session, so only the signed-in
	// user's own record is replaced.
	return s.update(func(st *UserState) {
		if st.User != nil && out.User != nil && st.User.ID == out.User.ID {
			st.User = out.User
		}
	})
}

func (s *UserStore) Logout(ctx context.Context) error {
	msg, err := s.client.doJSON(ctx, http.MethodPost, "/api/v1/user/logout", nil, nil)
	if err != nil {
		return s.fail(err)
	}
	s.ok(msg)
	return s.signOut()
}

func (s *UserStore) ForgotPassword(ctx context.Context, email string) error {
	msg, err := s.client.doJSON(ctx, http.MethodPost, "/api/v1/user/forgot-password", domain.ForgotPasswordRequest{Email: email}, nil)
	if err != nil {
		return s.fail(err)
	}
	s.ok(msg)
	return nil
}

func (s *UserStore) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"newPassword": newPassword}
	msg, err := s.client.doJSON(ctx, http.MethodPost, "/api/v1/user/reset-password/"+token, body, nil)
	if err != nil {
		return s.fail(err)
	}
	s.ok(msg)
	return nil
}

func (s *UserStore) UpdateProfile(ctx context.Context, update ProfileUpdate) (*entities.User, error) {
	fields := map[string][]string{}
	for key, value := range map[string]string{
		"fullname": update.Fullname,
		"email":    update.Email,
		"address":  update.Address,
		"city":     update.City,
		"country":  update.Country,
	} {
		if value != "" {
			fields[key] = []string{value}
		}
	}

	var out userResponse
	msg, err := s.client.doMultipartFile(ctx, http.MethodPut, "/api/v1/user/profile/update", fields, "profilePicture", update.ProfilePicture, &out)
	if err != nil {
		return nil, s.fail(err)
	}
	if err := s.signIn(out.User); err != nil {
		return nil, err
	}
	s.ok(msg)
	return out.User, nil
}

func (s *UserStore) signIn(u *entities.User) error {
	return s.update(func(st *UserState) {
		st.User = u
		st.IsAuthenticated = u != nil
	})
}

func (s *UserStore) signOut() error {
	return s.update(func(st *UserState) {
		*st = UserState{}
	})
}
