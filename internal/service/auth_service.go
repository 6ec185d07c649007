package service

import (
	"database/sql"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"damone-orders/internal/domain"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidToken       = errors.New("invalid token")
)

type AuthService struct {
	users    UserRepository
	profiles ProfileRepository
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(users UserRepository, profiles ProfileRepository, secret []byte) *AuthService {
	return &AuthService{
		users:    users,
		profiles: profiles,
		secret:   secret,
		tokenTTL: 24 * time.Hour,
	}
}

func (s *AuthService) SignUp(email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	if _, err := s.users.GetUserByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.users.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, *domain.User, error) {
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) issueToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"userID":  user.ID,
		"email":   user.Email,
		"isAdmin": user.IsAdmin,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ValidateToken checks the signature and expiry and returns the embedded
// identity.
func (s *AuthService) ValidateToken(tokenString string) (userID string, isAdmin bool, err error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", false, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false, ErrInvalidToken
	}

	userID, _ = claims["userID"].(string)
	isAdmin, _ = claims["isAdmin"].(bool)
	if userID == "" {
		return "", false, ErrInvalidToken
	}
	return userID, isAdmin, nil
}

func (s *AuthService) Me(userID string) (*domain.User, error) {
	return s.users.GetUser(userID)
}

func (s *AuthService) Address(userID string) (string, error) {
	return s.profiles.GetAddress(userID)
}

func (s *AuthService) SaveAddress(userID, address string) error {
	if address == "" {
		return ErrMissingFields
	}
	return s.profiles.UpsertAddress(userID, address)
}
