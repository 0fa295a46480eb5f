package db

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
)

type UserRepo struct {
	db *DbDao
}

func NewUserRepo(db *DbDao) *UserRepo {
	return &UserRepo{db: db}
}

// Create - 創建用戶
func (s *UserRepo) Create(ctx context.Context, user *model.User) error {
	return s.db.conn(ctx).Create(user).Error
}

// Read - 根據ID查詢用戶
func (s *UserRepo) GetByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := s.db.conn(ctx).First(&user, id).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &user, nil
}

// Read - 根據email查詢用戶
func (s *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.db.conn(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &user, nil
}
