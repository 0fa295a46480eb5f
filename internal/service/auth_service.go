package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/repository"
	"github.com/RoyceAzure/lab/shopcenter/internal/token"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
)

type IAuthService interface {
	Register(ctx context.Context, name string, email string, password string, role string) (*model.User, error)
	Login(ctx context.Context, email string, password string) (string, *token.Payload, *model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
}

type AuthService struct {
	userRepo      repository.UserRepository
	tokenMaker    token.Maker
	tokenDuration time.Duration
}

func NewAuthService(userRepo repository.UserRepository, tokenMaker token.Maker, tokenDuration time.Duration) IAuthService {
	return &AuthService{
		userRepo:      userRepo,
		tokenMaker:    tokenMaker,
		tokenDuration: tokenDuration,
	}
}

// Register 建立新用戶，email 不可重複
func (s *AuthService) Register(ctx context.Context, name string, email string, password string, role string) (*model.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrInvalidArgument)
	}
	if role == "" {
		role = string(model.RoleCustomer)
	}
	if !model.IsValidUserRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidArgument, role)
	}

	// 檢查email是否已存在
	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashed, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		Role:         model.UserRole(role),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login 驗證密碼並簽發 access token
// 帳號不存在與密碼錯誤回傳相同錯誤，不洩漏帳號是否存在
func (s *AuthService) Login(ctx context.Context, email string, password string) (string, *token.Payload, *model.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, nil, ErrInvalidCredentials
		}
		return "", nil, nil, err
	}

	if err := util.CheckPassword(password, user.PasswordHash); err != nil {
		return "", nil, nil, ErrInvalidCredentials
	}

	accessToken, payload, err := s.tokenMaker.CreateToken(user.UserID, user.Email, user.Role, s.tokenDuration)
	if err != nil {
		return "", nil, nil, err
	}
	return accessToken, payload, user, nil
}

func (s *AuthService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return nil, err
	}
	return user, nil
}
