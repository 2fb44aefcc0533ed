package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/satriapw/tolldash/internal/domain"
	"github.com/satriapw/tolldash/internal/pkg/constants"
	"github.com/satriapw/tolldash/internal/pkg/logger"
	"github.com/satriapw/tolldash/internal/pkg/store"
	"github.com/satriapw/tolldash/internal/pkg/utils"
)

type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

func (svc *Service) Signup(ctx context.Context, request *domain.SignupRequest) (*domain.LoginResponse, error) {
	if _, err := svc.store.GetUserByEmail(ctx, request.Email); !errors.Is(err, constants.ErrDBNotFound) {
		if err == nil {
			return nil, constants.ErrEmailAlreadyTaken
		}
		return nil, err
	}

	user := &domain.User{
		ID:       uuid.New(),
		Email:    request.Email,
		Username: request.Username,
	}
	if err := user.UserPassword.Init(request.Password); err != nil {
		return nil, err
	}

	if err := svc.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	authToken, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{UserID: user.ID})
	if err != nil {
		return nil, err
	}

	return &domain.LoginResponse{Username: user.Username, Email: user.Email, AuthToken: authToken}, nil
}

func (svc *Service) Login(ctx context.Context, request *domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := svc.store.GetUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := user.UserPassword.Validate(request.Password); err != nil {
		return nil, constants.ErrInvalidCredentials
	}

	logger.Debugf(ctx, "login: userID: [%v]", user.ID)

	authToken, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{UserID: user.ID})
	if err != nil {
		return nil, err
	}

	return &domain.LoginResponse{Username: user.Username, Email: user.Email, AuthToken: authToken}, nil
}
