package usecase

import (
	"context"
	"strings"

	"talent-search/internal/domain/recruiter"
	"talent-search/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Email    string
	FullName string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (recruiter.Recruiter, error)
	Login(ctx context.Context, in LoginInput) (recruiter.Recruiter, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}

type Auth struct {
	recruiters recruiter.Repository
	tokens     jwt.Service
}

func NewAuthUsecase(recruiters recruiter.Repository, tokens jwt.Service) *Auth {
	return &Auth{recruiters: recruiters, tokens: tokens}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (recruiter.Recruiter, error) {
	email := normalizeEmail(in.Email)
	if email == "" || len(in.Password) < 8 {
		return recruiter.Recruiter{}, ErrInvalidInput
	}

	exists, err := u.recruiters.ExistsByEmail(ctx, email)
	if err != nil {
		return recruiter.Recruiter{}, ErrInternal
	}
	if exists {
		return recruiter.Recruiter{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return recruiter.Recruiter{}, ErrInternal
	}

	r := recruiter.Recruiter{
		ID:           uuid.New(),
		Email:        email,
		FullName:     strings.TrimSpace(in.FullName),
		PasswordHash: string(hash),
	}
	if err := u.recruiters.Create(ctx, r); err != nil {
		return recruiter.Recruiter{}, ErrInternal
	}

	r.PasswordHash = ""
	return r, nil
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (recruiter.Recruiter, TokenPair, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return recruiter.Recruiter{}, TokenPair{}, ErrInvalidCredentials
	}

	r, err := u.recruiters.GetByEmail(ctx, email)
	if err != nil {
		return recruiter.Recruiter{}, TokenPair{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(r.PasswordHash), []byte(in.Password)) != nil {
		return recruiter.Recruiter{}, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := u.issueTokens(r)
	if err != nil {
		return recruiter.Recruiter{}, TokenPair{}, ErrInternal
	}

	r.PasswordHash = ""
	return r, pair, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := u.tokens.ValidateToken(refreshToken)
	if err != nil {
		return TokenPair{}, ErrUnauthorized
	}
	if !u.tokens.IsRefreshToken(claims) {
		return TokenPair{}, ErrUnauthorized
	}

	r, err := u.recruiters.GetByID(ctx, claims.RecruiterID)
	if err != nil {
		return TokenPair{}, ErrUnauthorized
	}
	return u.issueTokens(r)
}

func (u *Auth) issueTokens(r recruiter.Recruiter) (TokenPair, error) {
	access, err := u.tokens.GenerateAccessToken(r.ID, r.Email)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := u.tokens.GenerateRefreshToken(r.ID)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func normalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return ""
	}
	return email
}
