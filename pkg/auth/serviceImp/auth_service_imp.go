package serviceImp

import (
	"context"
	"strings"

	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/bcrypt"

	"olive/entities"
	"olive/pkg/apperr"
	"olive/pkg/auth/service"
	"olive/pkg/auth/token"
	userRepo "olive/pkg/user/repository"
)

var logger = log.New("auth")

type authSvc struct {
	users  userRepo.UserRepository
	tokens *token.Issuer
	cost   int
}

func NewAuthService(u userRepo.UserRepository, t *token.Issuer) service.AuthService {
	return &authSvc{users: u, tokens: t, cost: bcrypt.DefaultCost}
}

func (s *authSvc) Register(ctx context.Context, in service.RegisterInput) (*service.Session, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperr.Validation("a valid email is required")
	}
	if len(in.Password) < 8 {
		return nil, apperr.Validation("password must be at least 8 characters")
	}
	if !in.Role.Valid() {
		return nil, apperr.Validationf("unknown role %q", in.Role)
	}
	// administrators are provisioned, never self-registered
	if in.Role == entities.RoleAdministrator {
		return nil, apperr.Unauthorized("administrator accounts cannot be self-registered")
	}
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, apperr.Validation("email already registered")
	} else if !apperr.Is(err, apperr.CodeNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, err
	}
	u := &entities.User{
		Email:        email,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Role:         in.Role,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	logger.Infof("registered %s as %s", u.ID, u.Role)
	return s.session(u)
}

func (s *authSvc) Login(ctx context.Context, in service.LoginInput) (*service.Session, error) {
	u, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if apperr.Is(err, apperr.CodeNotFound) {
		return nil, apperr.Unauthorized("invalid email or password")
	}
	if err != nil {
		return nil, err
	}
	if u.PasswordHash == "" || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		return nil, apperr.Unauthorized("invalid email or password")
	}
	return s.session(u)
}

func (s *authSvc) session(u *entities.User) (*service.Session, error) {
	raw, exp, err := s.tokens.Issue(u)
	if err != nil {
		return nil, err
	}
	return &service.Session{Token: raw, ExpiresAt: exp, User: u}, nil
}
