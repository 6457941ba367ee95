package commands

import (
	"context"
	"log/slog"

	"tablebook/internal/domain/staff"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/pkg/jwt"
	"tablebook/internal/pkg/password"
	"tablebook/internal/usecase/queries"
	"tablebook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrStaffNotFound        = errs.New("staff not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrStaffInactive        = errs.New("staff inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type LoginResult struct {
	StaffID   uuid.UUID
	Role      string
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.StaffReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.StaffReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	view, err := a.validateStaff(ctx, email, plainPassword)
	if err != nil {
		return nil, err
	}

	role, err := staff.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	accessToken, err := a.jwtService.GenerateAccessToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Staff().UpdateLastLogin(ctx, tx.DB(), view.ID); updateErr != nil {
			// Not worth failing a successful login over
			slog.Warn("failed to update last login", "staff_id", view.ID, "error", updateErr.Error())
		}
		return nil
	})
	if err != nil {
		slog.Warn("transaction failed during login", "staff_id", view.ID, "error", err.Error())
	}

	return &LoginResult{
		StaffID: view.ID,
		Role:    view.Role,
		TokenPair: &TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := staff.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// Staff must still exist and be active at refresh time
	view, err := a.readStore.FindByID(ctx, claims.StaffID)
	if err != nil || view == nil {
		return nil, ErrStaffNotFound
	}
	if !view.IsActive {
		return nil, ErrStaffInactive
	}

	accessToken, err := a.jwtService.GenerateAccessToken(claims.StaffID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	newRefreshToken, err := a.jwtService.GenerateRefreshToken(claims.StaffID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

func (a *authCommandsImpl) validateStaff(ctx context.Context, email, plainPassword string) (*queries.StaffView, error) {
	view, hashedPassword, err := a.readStore.FindByEmail(ctx, email)
	if err != nil {
		// Same error as a password mismatch to prevent account enumeration
		return nil, ErrInvalidCredentials
	}
	if view == nil {
		return nil, ErrStaffNotFound
	}
	if !view.IsActive {
		return nil, ErrStaffInactive
	}

	if err := password.Verify(hashedPassword, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	return view, nil
}
