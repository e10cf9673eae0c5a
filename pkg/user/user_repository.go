package user

import (
	"FoodHub/domain"
	"FoodHub/entities"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUserByVerificationToken(ctx context.Context, token string, now time.Time) (*entities.User, error)
		GetUserByResetToken(ctx context.Context, token string, now time.Time) (*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *userRepository) GetUserByVerificationToken(ctx context.Context, token string, now time.Time) (*entities.User, error) {
	return r.first(ctx, "verification_token = ? AND verification_token_expires_at > ?", token, now)
}

func (r *userRepository) GetUserByResetToken(ctx context.Context, token string, now time.Time) (*entities.User, error) {
	return r.first(ctx, "reset_password_token = ? AND reset_password_token_expires_at > ?", token, now)
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) first(ctx context.Context, query string, args ...any) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where(query, args...).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
