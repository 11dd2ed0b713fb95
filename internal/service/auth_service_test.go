package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"obtconnect/internal/auth"
	"obtconnect/internal/config"
	"obtconnect/internal/errors"
	"obtconnect/internal/model"
)

func testConfig() *config.Config {
	return &config.Config{
		MasterPhones:    []string{"7010303021", "8489143405"},
		MasterSecret:    "OBT Master",
		StateHeadPhone:  "8010101010",
		StateHeadSecret: "statehead",
	}
}

func newTestAuthService(users *MockUserRepository, members *MockMemberRepository, tokens *MockTokenStore, codes *MockCodeProvider) AuthService {
	return NewAuthService(users, members, auth.NewJWTService("test-secret"), tokens, codes, testConfig())
}

func expectNoMasterEntry(members *MockMemberRepository, phone string) {
	members.On("FindByPhone", mock.Anything, model.RosterMaster, phone).Return(nil, gorm.ErrRecordNotFound)
}

func expectTokenStore(tokens *MockTokenStore) {
	tokens.On("StoreRefreshToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
}

func TestAuthService_Login_MasterTier(t *testing.T) {
	tests := []struct {
		name          string
		phone         string
		secret        string
		rosterEntry   *model.Member
		expectedName  string
		expectedError error
	}{
		{
			name:         "static master phone with shared secret",
			phone:        "7010303021",
			secret:       "OBT Master",
			expectedName: "Master Admin",
		},
		{
			name:         "static master phone with phone as secret",
			phone:        "8489143405",
			secret:       "8489143405",
			expectedName: "Master Admin",
		},
		{
			name:         "dynamic master roster phone uses roster name",
			phone:        "9999911111",
			secret:       "OBT Master",
			rosterEntry:  &model.Member{ID: "mm1", Name: "Kumar", Phone: "9999911111", Roster: model.RosterMaster},
			expectedName: "Kumar",
		},
		{
			name:          "master phone with wrong secret",
			phone:         "7010303021",
			secret:        "wrong",
			expectedError: errors.ErrInvalidSecret,
		},
		{
			name:          "dynamic master phone with wrong secret never falls through",
			phone:         "9999911111",
			secret:        "wrong",
			rosterEntry:   &model.Member{ID: "mm1", Name: "Kumar", Phone: "9999911111", Roster: model.RosterMaster},
			expectedError: errors.ErrInvalidSecret,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			members := new(MockMemberRepository)
			tokens := new(MockTokenStore)
			codes := new(MockCodeProvider)

			if tt.rosterEntry != nil {
				members.On("FindByPhone", mock.Anything, model.RosterMaster, tt.phone).Return(tt.rosterEntry, nil)
			} else {
				expectNoMasterEntry(members, tt.phone)
			}
			if tt.expectedError == nil {
				expectTokenStore(tokens)
			}

			svc := newTestAuthService(users, members, tokens, codes)
			access, refresh, identity, err := svc.Login(context.Background(), tt.phone, tt.secret)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, access)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, access)
			assert.NotEmpty(t, refresh)
			assert.Equal(t, model.RoleMaster, identity.Role)
			assert.Equal(t, tt.expectedName, identity.Name)
			assert.Equal(t, "All", identity.District)
			// The user table is never consulted for master numbers.
			users.AssertNotCalled(t, "FindByPhone", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthService_Login_StateHead(t *testing.T) {
	users := new(MockUserRepository)
	members := new(MockMemberRepository)
	tokens := new(MockTokenStore)
	codes := new(MockCodeProvider)

	expectNoMasterEntry(members, "8010101010")
	expectTokenStore(tokens)

	svc := newTestAuthService(users, members, tokens, codes)
	_, _, identity, err := svc.Login(context.Background(), "8010101010", "statehead")

	assert.NoError(t, err)
	assert.Equal(t, model.RoleStateHead, identity.Role)
	assert.Equal(t, "State OBT Head", identity.Name)
}

func TestAuthService_Login_RegisteredUsers(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), 10)

	tests := []struct {
		name          string
		phone         string
		secret        string
		user          *model.User
		findErr       error
		expectedError error
	}{
		{
			name:   "approved user with correct password",
			phone:  "9876543210",
			secret: "secret123",
			user: &model.User{
				ID: "u1", Name: "Arun", Phone: "9876543210", District: "Chennai",
				Role: model.RoleMember, Category: model.CategoryCollegeBoys,
				PasswordHash: string(hashed), IsApproved: true,
			},
		},
		{
			name:          "unknown phone",
			phone:         "9000000000",
			secret:        "whatever",
			findErr:       gorm.ErrRecordNotFound,
			expectedError: errors.ErrUserNotFound,
		},
		{
			name:   "wrong password",
			phone:  "9876543210",
			secret: "nope",
			user: &model.User{
				ID: "u1", Phone: "9876543210", PasswordHash: string(hashed), IsApproved: true,
			},
			expectedError: errors.ErrInvalidPassword,
		},
		{
			name:   "unapproved account",
			phone:  "9876543210",
			secret: "secret123",
			user: &model.User{
				ID: "u1", Phone: "9876543210", PasswordHash: string(hashed), IsApproved: false,
			},
			expectedError: errors.ErrPendingApproval,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			members := new(MockMemberRepository)
			tokens := new(MockTokenStore)
			codes := new(MockCodeProvider)

			expectNoMasterEntry(members, tt.phone)
			if tt.findErr != nil {
				users.On("FindByPhone", mock.Anything, tt.phone).Return(nil, tt.findErr)
			} else {
				users.On("FindByPhone", mock.Anything, tt.phone).Return(tt.user, nil)
			}
			if tt.expectedError == nil {
				expectTokenStore(tokens)
			}

			svc := newTestAuthService(users, members, tokens, codes)
			_, _, identity, err := svc.Login(context.Background(), tt.phone, tt.secret)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.user.ID, identity.ID)
			assert.Equal(t, tt.user.Name, identity.Name)
			assert.Equal(t, tt.user.District, identity.District)
			assert.Equal(t, tt.user.Category, identity.Category)
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	input := RegisterInput{
		Name:     "Priya",
		Phone:    "9876543210",
		District: "Chennai",
		Category: model.CategoryCollegeGirls,
		Password: "pass1234",
		Code:     "1234",
	}

	tests := []struct {
		name          string
		in            RegisterInput
		setup         func(*MockUserRepository, *MockMemberRepository, *MockCodeProvider)
		expectedError error
	}{
		{
			name: "successful registration creates unapproved member account",
			in:   input,
			setup: func(users *MockUserRepository, members *MockMemberRepository, codes *MockCodeProvider) {
				expectNoMasterEntry(members, "9876543210")
				users.On("FindByPhone", mock.Anything, "9876543210").Return(nil, gorm.ErrRecordNotFound)
				codes.On("Verify", mock.Anything, "9876543210", "1234").Return(true)
				users.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name: "master phone is reserved",
			in: func() RegisterInput {
				in := input
				in.Phone = "7010303021"
				return in
			}(),
			setup: func(users *MockUserRepository, members *MockMemberRepository, codes *MockCodeProvider) {
				expectNoMasterEntry(members, "7010303021")
			},
			expectedError: errors.ErrPhoneReserved,
		},
		{
			name: "master roster phone is reserved",
			in:   input,
			setup: func(users *MockUserRepository, members *MockMemberRepository, codes *MockCodeProvider) {
				members.On("FindByPhone", mock.Anything, model.RosterMaster, "9876543210").
					Return(&model.Member{ID: "mm1", Phone: "9876543210", Roster: model.RosterMaster}, nil)
			},
			expectedError: errors.ErrPhoneReserved,
		},
		{
			name: "existing phone is taken",
			in:   input,
			setup: func(users *MockUserRepository, members *MockMemberRepository, codes *MockCodeProvider) {
				expectNoMasterEntry(members, "9876543210")
				users.On("FindByPhone", mock.Anything, "9876543210").Return(&model.User{ID: "u1", Phone: "9876543210"}, nil)
			},
			expectedError: errors.ErrPhoneTaken,
		},
		{
			name: "wrong verification code",
			in: func() RegisterInput {
				in := input
				in.Code = "9999"
				return in
			}(),
			setup: func(users *MockUserRepository, members *MockMemberRepository, codes *MockCodeProvider) {
				expectNoMasterEntry(members, "9876543210")
				users.On("FindByPhone", mock.Anything, "9876543210").Return(nil, gorm.ErrRecordNotFound)
				codes.On("Verify", mock.Anything, "9876543210", "9999").Return(false)
			},
			expectedError: errors.ErrInvalidOTP,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			members := new(MockMemberRepository)
			tokens := new(MockTokenStore)
			codes := new(MockCodeProvider)
			tt.setup(users, members, codes)

			svc := newTestAuthService(users, members, tokens, codes)
			user, err := svc.Register(context.Background(), tt.in)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, model.RoleMember, user.Role)
				assert.False(t, user.IsApproved)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.in.Password, user.PasswordHash)
			}
			users.AssertExpectations(t)
			members.AssertExpectations(t)
			codes.AssertExpectations(t)
		})
	}
}

func TestAuthService_RequestCode(t *testing.T) {
	users := new(MockUserRepository)
	members := new(MockMemberRepository)
	tokens := new(MockTokenStore)
	codes := new(MockCodeProvider)

	expectNoMasterEntry(members, "9876543210")
	users.On("FindByPhone", mock.Anything, "9876543210").Return(nil, gorm.ErrRecordNotFound)
	codes.On("Issue", mock.Anything, "9876543210").Return("1234", nil)

	svc := newTestAuthService(users, members, tokens, codes)
	code, err := svc.RequestCode(context.Background(), "98 765 43210")

	assert.NoError(t, err)
	assert.Equal(t, "1234", code)
	codes.AssertExpectations(t)
}
