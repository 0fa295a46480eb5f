package service

import (
	"context"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/repository/memory"
	"github.com/RoyceAzure/lab/shopcenter/internal/token"
	"github.com/stretchr/testify/require"
)

const (
	testTokenKey      = "0123456789abcdef0123456789abcdef"
	testTokenDuration = 24 * time.Hour
)

func newAuthService(t *testing.T) IAuthService {
	t.Helper()
	store := memory.NewStore()
	maker, err := token.NewJWTMaker(testTokenKey)
	require.NoError(t, err)
	return NewAuthService(memory.NewUsers(store), maker, testTokenDuration)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	authService := newAuthService(t)

	user, err := authService.Register(ctx, "Alice", "alice@example.com", "secret123", "")
	require.NoError(t, err)
	require.NotZero(t, user.UserID)
	require.Equal(t, model.RoleCustomer, user.Role)
	// 密碼不可存明文
	require.NotEqual(t, "secret123", user.PasswordHash)

	// email 重複
	_, err = authService.Register(ctx, "Alice2", "alice@example.com", "secret456", "")
	require.ErrorIs(t, err, ErrEmailExists)

	// 未知角色
	_, err = authService.Register(ctx, "Bob", "bob@example.com", "secret123", "superuser")
	require.ErrorIs(t, err, ErrInvalidArgument)

	// 管理員角色
	manager, err := authService.Register(ctx, "Boss", "boss@example.com", "secret123", "manager")
	require.NoError(t, err)
	require.Equal(t, model.RoleManager, manager.Role)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	authService := newAuthService(t)

	_, err := authService.Register(ctx, "Alice", "alice@example.com", "secret123", "")
	require.NoError(t, err)

	accessToken, payload, user, err := authService.Login(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.Equal(t, user.UserID, payload.UserID)
	require.Equal(t, "alice@example.com", payload.Email)
	require.Equal(t, model.RoleCustomer, payload.Role)
	// token 效期由注入的設定決定
	require.WithinDuration(t, payload.IssuedAt.Add(testTokenDuration), payload.ExpiredAt, time.Second)

	// 密碼錯誤
	_, _, _, err = authService.Login(ctx, "alice@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// 帳號不存在，錯誤訊息與密碼錯誤相同
	_, _, _, err = authService.Login(ctx, "nobody@example.com", "secret123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
