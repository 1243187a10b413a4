package service

import (
	"context"

	"github.com/sangkips/salespoint-api/internal/domain/entity"
	"github.com/sangkips/salespoint-api/internal/domain/repository"
	"github.com/sangkips/salespoint-api/pkg/apperror"
	"github.com/sangkips/salespoint-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles cashier authentication
type AuthService struct {
	cashierRepo repository.CashierRepository
	jwtManager  *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(cashierRepo repository.CashierRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		cashierRepo: cashierRepo,
		jwtManager:  jwtManager,
	}
}

// TokenPair holds an access token and its refresh token
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Login authenticates a cashier by email and password
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.Cashier, *TokenPair, error) {
	cashier, err := s.cashierRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if cashier == nil || !cashier.Active {
		return nil, nil, apperror.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cashier.PasswordHash), []byte(password)); err != nil {
		return nil, nil, apperror.ErrInvalidCredentials
	}

	pair, err := s.issueTokens(cashier)
	if err != nil {
		return nil, nil, err
	}
	return cashier, pair, nil
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	cashierID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	cashier, err := s.cashierRepo.GetByID(ctx, cashierID)
	if err != nil {
		return nil, err
	}
	if cashier == nil || !cashier.Active {
		return nil, apperror.ErrUnauthorized
	}

	return s.issueTokens(cashier)
}

func (s *AuthService) issueTokens(cashier *entity.Cashier) (*TokenPair, error) {
	access, err := s.jwtManager.GenerateAccessToken(cashier.ID, cashier.ShopID, cashier.Email)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(cashier.ID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
