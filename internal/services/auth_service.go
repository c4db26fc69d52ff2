package services

import (
	"context"
	"log"

	"stayrooted/internal/models/db_models"
	"stayrooted/internal/models/request_models"
	"stayrooted/internal/models/response_models"
	"stayrooted/internal/repositories"
	"stayrooted/pkg/utils"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.LoginResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
}

type AuthService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthServiceInterface {
	return &AuthService{
		userRepo: userRepo,
	}
}

func (a *AuthService) Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.LoginResponse, error) {
	existing, err := a.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		log.Printf("Error looking up username: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrUsernameTaken
	}

	existing, err = a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		log.Printf("Error looking up email: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Username:     request.Username,
		PasswordHash: hashedPassword,
		Email:        request.Email,
		FullName:     request.FullName,
		IsActive:     true,
	}

	if err := a.userRepo.Insert(ctx, user); err != nil {
		log.Printf("Error creating user: %v", err)
		return nil, utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(user.ID, user.Username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.LoginResponse{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
	}, nil
}

func (a *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	user, err := a.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		log.Printf("Error looking up user: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, utils.ErrAccountInactive
	}

	token, err := utils.CreateToken(user.ID, user.Username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.LoginResponse{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
	}, nil
}
