package services

import (
	"context"
	"errors"
	"net/http"

	"reservation-system/internal/dto"
	"reservation-system/internal/integrations/gsd"
	apperrors "reservation-system/pkg/errors"
	"reservation-system/pkg/service"

	"go.uber.org/zap"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponseDTO, error)
}

// AuthService is a passthrough: credentials are checked by the backend,
// the gateway only mints its own token pair for the session.
type AuthService struct {
	api    gsd.AuthAPI
	jwtSvc service.JWTService
	logger *zap.Logger
}

func NewAuthService(api gsd.AuthAPI, jwtSvc service.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{api: api, jwtSvc: jwtSvc, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error) {
	user, err := s.api.Login(ctx, payload.Username, payload.Password)
	if err != nil {
		var backendErr *gsd.BackendError
		if errors.As(err, &backendErr) {
			s.logger.Warn("login rejected by backend", zap.String("username", payload.Username))
			return nil, apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrInvalidCredentials.Error(), err, nil)
		}
		return nil, apperrors.NewHttpError(http.StatusBadGateway, "could not reach the reservation backend", err, nil)
	}

	access, refresh, err := s.jwtSvc.GenerateTokens(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponseDTO{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.jwtSvc.GetAccessTokenTTL().Seconds()),
		UserID:       user.ID,
		FullName:     user.FullName,
	}, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponseDTO, error) {
	claims, err := s.jwtSvc.ValidateToken(refreshToken)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusUnauthorized, err.Error(), err, nil)
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrTokenIsNotRefresh.Error(), nil, nil)
	}

	access, refresh, err := s.jwtSvc.GenerateTokens(claims.UserID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponseDTO{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.jwtSvc.GetAccessTokenTTL().Seconds()),
		UserID:       claims.UserID,
	}, nil
}
