package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"obtconnect/internal/auth"
	"obtconnect/internal/config"
	"obtconnect/internal/errors"
	"obtconnect/internal/model"
	"obtconnect/internal/repository"
	"obtconnect/internal/scope"
)

const bcryptCost = 10

// RegisterInput carries a signup request through the verification step.
type RegisterInput struct {
	Name     string
	Phone    string
	District string
	Category model.Category
	Password string
	Code     string
}

// AuthService resolves credentials to identities and runs the registration
// pipeline. Resolution order is fixed: master allow-list (static or Master
// roster), then the State Head account, then the registered-user table.
type AuthService interface {
	Login(ctx context.Context, phone, secret string) (accessToken, refreshToken string, identity scope.Identity, err error)
	RequestCode(ctx context.Context, phone string) (string, error)
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	Refresh(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	users      repository.UserRepository
	members    repository.MemberRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	codes      auth.CodeProvider
	cfg        *config.Config
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	users repository.UserRepository,
	members repository.MemberRepository,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	codes auth.CodeProvider,
	cfg *config.Config,
) AuthService {
	return &authService{
		users:      users,
		members:    members,
		jwtService: jwtService,
		tokenStore: tokenStore,
		codes:      codes,
		cfg:        cfg,
	}
}

func cleanPhone(phone string) string {
	return strings.TrimSpace(strings.ReplaceAll(phone, " ", ""))
}

func (s *authService) isStaticMaster(phone string) bool {
	for _, p := range s.cfg.MasterPhones {
		if p == phone {
			return true
		}
	}
	return false
}

// masterRosterEntry looks up the dynamic Master team roster. Lookup errors
// other than not-found are surfaced so a broken store does not silently
// demote a master login to the user-table path.
func (s *authService) masterRosterEntry(ctx context.Context, phone string) (*model.Member, error) {
	entry, err := s.members.FindByPhone(ctx, model.RosterMaster, phone)
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("master roster lookup: %w", err)
	}
	return entry, nil
}

// Login resolves credentials; the first tier a phone matches wins and there
// is no fallthrough to later checks.
func (s *authService) Login(ctx context.Context, phone, secret string) (string, string, scope.Identity, error) {
	phone = cleanPhone(phone)

	entry, err := s.masterRosterEntry(ctx, phone)
	if err != nil {
		return "", "", scope.Identity{}, err
	}

	if s.isStaticMaster(phone) || entry != nil {
		if secret != s.cfg.MasterSecret && secret != phone {
			return "", "", scope.Identity{}, errors.ErrInvalidSecret
		}
		name := "Master Admin"
		if entry != nil {
			name = entry.Name
		}
		identity := scope.Identity{
			ID:       "master-" + phone,
			Name:     name,
			Phone:    phone,
			District: "All",
			Role:     model.RoleMaster,
			Category: model.CategoryCollegeBoys, // default view, does not gate access
		}
		return s.issueTokens(ctx, identity)
	}

	if phone == s.cfg.StateHeadPhone && secret == s.cfg.StateHeadSecret {
		identity := scope.Identity{
			ID:       "state-head",
			Name:     "State OBT Head",
			Phone:    phone,
			District: "State Level",
			Role:     model.RoleStateHead,
			Category: model.CategoryCollegeBoys,
		}
		return s.issueTokens(ctx, identity)
	}

	user, err := s.users.FindByPhone(ctx, phone)
	if err == gorm.ErrRecordNotFound {
		return "", "", scope.Identity{}, errors.ErrUserNotFound
	}
	if err != nil {
		return "", "", scope.Identity{}, fmt.Errorf("find user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(secret)) != nil {
		return "", "", scope.Identity{}, errors.ErrInvalidPassword
	}
	if !user.IsApproved {
		return "", "", scope.Identity{}, errors.ErrPendingApproval
	}

	return s.issueTokens(ctx, scope.FromUser(user))
}

func (s *authService) issueTokens(ctx context.Context, identity scope.Identity) (string, string, scope.Identity, error) {
	accessToken, err := s.jwtService.GenerateAccessToken(identity)
	if err != nil {
		return "", "", scope.Identity{}, fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(identity)
	if err != nil {
		return "", "", scope.Identity{}, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, identity, auth.RefreshTokenExpiry); err != nil {
		return "", "", scope.Identity{}, fmt.Errorf("store refresh token: %w", err)
	}

	return accessToken, refreshToken, identity, nil
}

// RequestCode validates that the phone can register at all, then issues a
// verification code for it.
func (s *authService) RequestCode(ctx context.Context, phone string) (string, error) {
	phone = cleanPhone(phone)

	entry, err := s.masterRosterEntry(ctx, phone)
	if err != nil {
		return "", err
	}
	if s.isStaticMaster(phone) || entry != nil {
		return "", errors.ErrPhoneReserved
	}

	if _, err := s.users.FindByPhone(ctx, phone); err == nil {
		return "", errors.ErrPhoneTaken
	} else if err != gorm.ErrRecordNotFound {
		return "", fmt.Errorf("find user: %w", err)
	}

	code, err := s.codes.Issue(ctx, phone)
	if err != nil {
		return "", fmt.Errorf("issue verification code: %w", err)
	}
	return code, nil
}

// Register creates an unapproved account after the verification code passes.
// The account only becomes a roster member once an admin approves it.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	phone := cleanPhone(in.Phone)

	entry, err := s.masterRosterEntry(ctx, phone)
	if err != nil {
		return nil, err
	}
	if s.isStaticMaster(phone) || entry != nil {
		return nil, errors.ErrPhoneReserved
	}

	if _, err := s.users.FindByPhone(ctx, phone); err == nil {
		return nil, errors.ErrPhoneTaken
	} else if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !model.IsDistrict(in.District) {
		return nil, errors.ErrInvalidDistrict
	}
	if !model.IsCategory(in.Category) {
		return nil, fmt.Errorf("unknown category %q", in.Category)
	}

	if !s.codes.Verify(ctx, phone, in.Code) {
		return nil, errors.ErrInvalidOTP
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Phone:        phone,
		District:     in.District,
		Role:         model.RoleMember,
		Category:     in.Category,
		PasswordHash: string(hashed),
		IsApproved:   false,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Refresh validates a refresh token and returns a new access token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return "", errors.ErrInvalidRefreshToken
	}

	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return "", errors.ErrInvalidRefreshToken
	}

	stored, err := s.tokenStore.GetRefreshToken(ctx, tokenID)
	if err != nil {
		return "", errors.ErrInvalidRefreshToken
	}
	if stored.ID != claims.Identity.ID || stored.Phone != claims.Identity.Phone {
		return "", errors.ErrInvalidRefreshToken
	}

	accessToken, err := s.jwtService.GenerateAccessToken(stored)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout invalidates a refresh token.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return errors.ErrInvalidRefreshToken
	}
	return s.tokenStore.DeleteRefreshToken(ctx, tokenID)
}
