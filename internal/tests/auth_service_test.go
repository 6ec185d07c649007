package tests

import (
	"database/sql"
	"testing"

	"damone-orders/internal/domain"
	"damone-orders/internal/mocks"
	"damone-orders/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(users *mocks.UserRepository, profiles *mocks.ProfileRepository) *service.AuthService {
	return service.NewAuthService(users, profiles, []byte("test-secret"))
}

func TestAuthService_SignUp(t *testing.T) {
	mockUsers := new(mocks.UserRepository)
	mockUsers.On("GetUserByEmail", "amani@example.com").Return(nil, sql.ErrNoRows).Once()
	mockUsers.On("CreateUser", mock.MatchedBy(func(user *domain.User) bool {
		if user.ID == "" || user.Email != "amani@example.com" {
			return false
		}
		// The stored hash must verify against the original password.
		return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")) == nil
	})).Return(nil).Once()

	svc := newAuthService(mockUsers, nil)
	user, err := svc.SignUp("amani@example.com", "hunter22")

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "hunter22", user.PasswordHash)
	mockUsers.AssertExpectations(t)
}

func TestAuthService_SignUpValidation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		existing *domain.User
		wantErr  error
	}{
		{name: "missing email", email: "", password: "pw", wantErr: service.ErrMissingFields},
		{name: "missing password", email: "a@b.c", password: "", wantErr: service.ErrMissingFields},
		{
			name:     "duplicate email",
			email:    "taken@example.com",
			password: "pw",
			existing: &domain.User{ID: "user-1", Email: "taken@example.com"},
			wantErr:  service.ErrEmailTaken,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockUsers := new(mocks.UserRepository)
			if testCase.existing != nil {
				mockUsers.On("GetUserByEmail", testCase.email).Return(testCase.existing, nil).Once()
			}

			svc := newAuthService(mockUsers, nil)
			_, err := svc.SignUp(testCase.email, testCase.password)

			assert.ErrorIs(t, err, testCase.wantErr)
			mockUsers.AssertNotCalled(t, "CreateUser", mock.Anything)
		})
	}
}

func TestAuthService_LoginAndValidate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &domain.User{ID: "user-1", Email: "amani@example.com", PasswordHash: string(hash), IsAdmin: true}

	mockUsers := new(mocks.UserRepository)
	mockUsers.On("GetUserByEmail", "amani@example.com").Return(stored, nil)

	svc := newAuthService(mockUsers, nil)

	token, user, err := svc.Login("amani@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)

	userID, isAdmin, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.True(t, isAdmin)
}

func TestAuthService_LoginFailures(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	stored := &domain.User{ID: "user-1", Email: "amani@example.com", PasswordHash: string(hash)}

	mockUsers := new(mocks.UserRepository)
	mockUsers.On("GetUserByEmail", "amani@example.com").Return(stored, nil)
	mockUsers.On("GetUserByEmail", "ghost@example.com").Return(nil, sql.ErrNoRows)

	svc := newAuthService(mockUsers, nil)

	_, _, err := svc.Login("amani@example.com", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, _, err = svc.Login("ghost@example.com", "hunter22")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthService_ValidateTokenRejectsForgeries(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	stored := &domain.User{ID: "user-1", Email: "a@b.c", PasswordHash: string(hash)}

	mockUsers := new(mocks.UserRepository)
	mockUsers.On("GetUserByEmail", "a@b.c").Return(stored, nil)

	issuer := newAuthService(mockUsers, nil)
	token, _, err := issuer.Login("a@b.c", "pw")
	require.NoError(t, err)

	// A verifier with a different secret must reject the token.
	verifier := service.NewAuthService(mockUsers, nil, []byte("other-secret"))
	_, _, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	_, _, err = issuer.ValidateToken("not.a.jwt")
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	_, _, err = issuer.ValidateToken(token + "tampered")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestAuthService_SaveAddress(t *testing.T) {
	mockProfiles := new(mocks.ProfileRepository)
	mockProfiles.On("UpsertAddress", "user-1", "12 Mango Street").Return(nil).Once()

	svc := newAuthService(nil, mockProfiles)

	assert.ErrorIs(t, svc.SaveAddress("user-1", ""), service.ErrMissingFields)
	assert.NoError(t, svc.SaveAddress("user-1", "12 Mango Street"))
	mockProfiles.AssertExpectations(t)
}
