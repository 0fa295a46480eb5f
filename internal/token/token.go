package token

import (
	"errors"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("token is invalid")
	ErrExpiredToken = errors.New("token has expired")
)

// Payload token 內容，驗證後放進 request context 供 handler 使用
type Payload struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uint           `json:"user_id"`
	Email     string         `json:"email"`
	Role      model.UserRole `json:"role"`
	IssuedAt  time.Time      `json:"issued_at"`
	ExpiredAt time.Time      `json:"expired_at"`
}

func NewPayload(userID uint, email string, role model.UserRole, duration time.Duration) (*Payload, error) {
	tokenID, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Payload{
		ID:        tokenID,
		UserID:    userID,
		Email:     email,
		Role:      role,
		IssuedAt:  now,
		ExpiredAt: now.Add(duration),
	}, nil
}

// Maker token 製作與驗證介面
type Maker interface {
	CreateToken(userID uint, email string, role model.UserRole, duration time.Duration) (string, *Payload, error)
	VerifyToken(token string) (*Payload, error)
}
