package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/common"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/roles"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/auth"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/config"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/models"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/repositories/repomanager"
)

// ErrInvalidCredentials is returned by Login for an unknown email as well as
// for a wrong password.
var ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", common.ErrorUnauthorized)

// UserService provides authentication-related operations:
// - Register: create admin_client accounts
// - Login: verify credentials and mint a bearer token
// - Authenticate, Verify: validate a token and reload its user
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	bcryptCost                  int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		bcryptCost:                  cfg.BcryptCost,
	}
}

// Register creates an admin_client account and returns a token for it.
// Field errors use the signup payload's field names.
func (s *UserService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	ve := common.NewValidationError()
	checkRequired(ve, "nom_entreprise", req.CompanyName)
	checkRequired(ve, "nom_client", req.LastName)
	checkRequired(ve, "prenom_client", req.FirstName)
	checkEmail(ve, "email", email)
	checkPassword(ve, "password", req.Password)
	if !dto.ValidSiret(req.Siret) {
		ve.Add("siret", "must be 14 digits")
	}
	if req.Role != "" && req.Role != roles.AdminClient.String() {
		ve.Add("role", "only admin_client accounts can sign up")
	}
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         roles.AdminClient,
		CompanyName:  strings.TrimSpace(req.CompanyName),
		Siret:        req.Siret,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Phone:        req.Phone,
		Address:      req.Address,
	}
	u, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return s.authResponse(u)
}

// Login verifies email and password and, on success, returns a bearer token
// together with the user's profile.
func (s *UserService) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	ok, err := auth.CheckPassword(user.PasswordHash, password)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(user)
}

// Authenticate validates a bearer token and reloads its user. The identity
// reflects the stored account, so a deleted account is rejected even while
// its token has not expired.
func (s *UserService) Authenticate(ctx context.Context, token string) (auth.Identity, error) {
	user, err := s.tokenUser(ctx, token)
	if err != nil {
		return auth.Identity{}, err
	}
	return auth.Identity{UserID: user.ID, Role: user.Role, Siret: user.TenantSiret()}, nil
}

// Verify validates the token and returns its user's profile.
func (s *UserService) Verify(ctx context.Context, token string) (*dto.UserProfile, error) {
	user, err := s.tokenUser(ctx, token)
	if err != nil {
		return nil, err
	}
	return user.Profile(), nil
}

func (s *UserService) tokenUser(ctx context.Context, token string) (*models.User, error) {
	id, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUnauthorized, err)
	}
	if !validID(id.UserID) {
		return nil, common.ErrorUnauthorized
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

func (s *UserService) authResponse(u *models.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(auth.Identity{UserID: u.ID, Role: u.Role, Siret: u.TenantSiret()},
		s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &dto.AuthResponse{Token: token, User: u.Profile()}, nil
}
