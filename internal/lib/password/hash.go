// Package password хеширует пароли пользователей через bcrypt.
//
// bcrypt учитывает только первые 72 байта, а пароль может быть длиной
// до 100 символов, поэтому длинные пароли сначала сворачиваются в SHA-256.
package password

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptMaxBytes предел длины входа bcrypt.
const bcryptMaxBytes = 72

func prepare(password string) []byte {
	if len(password) <= bcryptMaxBytes {
		return []byte(password)
	}
	sum := sha256.Sum256([]byte(password))
	return []byte(hex.EncodeToString(sum[:]))
}

// GetHash возвращает bcrypt-хеш пароля для хранения в users.password_hash.
func GetHash(password string) (string, error) {
	const op = "password.GetHash"
	hashedPassword, err := bcrypt.GenerateFromPassword(prepare(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashedPassword), nil
}
