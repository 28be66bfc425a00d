package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mealplanner/internal/auth"
	"mealplanner/internal/cache"
	apperrors "mealplanner/internal/errors"
	"mealplanner/internal/model"
	"mealplanner/internal/repository"
)

const (
	bcryptCost    = 10
	usersCacheKey = "users:all"
	usersCacheTTL = time.Minute
)

// UserCache is the cache-aside store for the user listing. *cache.Client satisfies it.
type UserCache interface {
	GetJSON(ctx context.Context, key string, dst interface{}) bool
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// AuthService handles registration, login, identity lookup and logout.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	GetAllUsers(ctx context.Context) ([]model.User, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
	Logout(ctx context.Context, token string)
}

type authService struct {
	userRepo       repository.UserRepository
	codec          *auth.TokenCodec
	tokenStore     auth.TokenStoreInterface
	cache          UserCache
	revokeOnLogout bool
	// dummyHash is compared against when the email is unknown, so both
	// login failures cost one bcrypt comparison.
	dummyHash []byte
}

// NewAuthService creates a new authentication service.
// tokenStore is only consulted when revokeOnLogout is set and may be nil otherwise.
func NewAuthService(
	userRepo repository.UserRepository,
	codec *auth.TokenCodec,
	tokenStore auth.TokenStoreInterface,
	userCache UserCache,
	revokeOnLogout bool,
) AuthService {
	if userCache == nil {
		// A nil client never hits and ignores writes.
		userCache = (*cache.Client)(nil)
	}
	dummy, _ := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcryptCost)
	return &authService{
		userRepo:       userRepo,
		codec:          codec,
		tokenStore:     tokenStore,
		cache:          userCache,
		revokeOnLogout: revokeOnLogout && tokenStore != nil,
		dummyHash:      dummy,
	}
}

// Register creates a new user with a hashed password.
func (s *authService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = normalizeEmail(email)
	switch {
	case username == "":
		return nil, fmt.Errorf("%w: username is required", apperrors.ErrInvalidInput)
	case email == "":
		return nil, fmt.Errorf("%w: email is required", apperrors.ErrInvalidInput)
	case password == "":
		return nil, fmt.Errorf("%w: password is required", apperrors.ErrInvalidInput)
	}

	if err := s.checkAvailable(ctx, username, email); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost a race against a concurrent registration; the unique index decided.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			_, findErr := s.userRepo.FindByEmail(ctx, email)
			switch {
			case findErr == nil:
				return nil, apperrors.ErrDuplicateEmail
			case errors.Is(findErr, gorm.ErrRecordNotFound):
				return nil, apperrors.ErrDuplicateUsername
			default:
				return nil, fmt.Errorf("check email after duplicate key: %w", findErr)
			}
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	_ = s.cache.Delete(ctx, usersCacheKey)
	return user, nil
}

func (s *authService) checkAvailable(ctx context.Context, username, email string) error {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return apperrors.ErrDuplicateEmail
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check email: %w", err)
	}

	existing, err = s.userRepo.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return apperrors.ErrDuplicateUsername
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check username: %w", err)
	}
	return nil
}

// Login verifies credentials and issues a session token.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue session token: %w", err)
	}

	return token, user, nil
}

// GetAllUsers lists every user. Password hashes never serialise.
// The listing is cached briefly and evicted on every registration.
func (s *authService) GetAllUsers(ctx context.Context) ([]model.User, error) {
	var cached []model.User
	if s.cache.GetJSON(ctx, usersCacheKey, &cached) {
		return cached, nil
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	_ = s.cache.SetJSON(ctx, usersCacheKey, users, usersCacheTTL)
	return users, nil
}

// GetCurrentUser resolves the user behind an authenticated request.
// It always reads the store so a deleted user is never served.
func (s *authService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// Logout never fails. With revocation enabled a still-valid token is deny-listed
// until its own expiry; otherwise the caller only clears the cookie.
func (s *authService) Logout(ctx context.Context, token string) {
	if !s.revokeOnLogout || token == "" {
		return
	}
	claims, err := s.codec.Parse(token)
	if err != nil {
		return
	}
	_ = s.tokenStore.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
