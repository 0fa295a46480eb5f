package util

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt 只取前72 bytes，超過的部分直接截斷
const bcryptMaxPasswordLen = 72

func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) > bcryptMaxPasswordLen {
		b = b[:bcryptMaxPasswordLen]
	}
	return b
}

// HashPassword 產生 bcrypt 雜湊
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncatePassword(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword 驗證密碼與雜湊是否相符
func CheckPassword(password string, hashedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), truncatePassword(password))
}
