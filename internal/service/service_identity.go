package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkurbatov/lifehub/internal/config"
	"github.com/dkurbatov/lifehub/internal/logger"
	"github.com/dkurbatov/lifehub/internal/store"
	"github.com/dkurbatov/lifehub/internal/utils"
	"github.com/dkurbatov/lifehub/models"
)

type identityService struct {
	users store.UserRepository
	cfg   config.App

	logger *logger.Logger
}

func NewIdentityService(users store.UserRepository, cfg config.App, logger *logger.Logger) IdentityService {
	return &identityService{users: users, cfg: cfg, logger: logger}
}

func (i *identityService) Resolve(ctx context.Context, openID string) (models.User, error) {
	if openID == "" {
		return models.User{}, validationError("openId is required")
	}

	user, err := i.users.GetUserByOpenID(ctx, openID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.User{}, fmt.Errorf("resolve identity: %w", err)
	}

	// First sight of this handle: the identity provider already vouched for
	// it, so a record is created on the fly.
	user, err = i.users.UpsertUser(ctx, models.UpsertUser{OpenID: openID})
	if err != nil {
		return models.User{}, fmt.Errorf("create identity: %w", err)
	}
	i.logger.Info().Str("openId", openID).Msg("created user for new identity handle")

	return user, nil
}

func (i *identityService) Me(ctx context.Context) (models.User, error) {
	return callerFromContext(ctx)
}

func (i *identityService) IssueToken(ctx context.Context) (models.TokenResult, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.TokenResult{}, err
	}

	token, err := utils.GenerateSessionToken(i.cfg.TokenIssuer, caller.OpenID, i.cfg.TokenDuration, i.cfg.TokenSignKey)
	if err != nil {
		return models.TokenResult{}, fmt.Errorf("issue session token: %w", err)
	}

	return models.TokenResult{Token: token.SignedString}, nil
}

func (i *identityService) Logout(ctx context.Context) (models.SuccessResult, error) {
	if _, err := callerFromContext(ctx); err != nil {
		return models.SuccessResult{}, err
	}

	return models.SuccessResult{Success: true}, nil
}
