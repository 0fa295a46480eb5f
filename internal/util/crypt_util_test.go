package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hashed)

	require.NoError(t, CheckPassword("secret123", hashed))
	require.Error(t, CheckPassword("wrong", hashed))
}

func TestHashPasswordLong(t *testing.T) {
	// bcrypt 上限72 bytes，超過的要截斷而不是報錯
	long := strings.Repeat("a", 100)
	hashed, err := HashPassword(long)
	require.NoError(t, err)
	require.NoError(t, CheckPassword(long, hashed))
	// 前72 bytes相同即視為相同密碼
	require.NoError(t, CheckPassword(strings.Repeat("a", 72), hashed))
}
