package models

import (
	"encoding/json"
	"time"
)

// Role роль пользователя, admin или user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid сообщает, входит ли роль в список допустимых.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User представляет зарегистрированного пользователя.
// Неактивный пользователь скрыт от чтения и обновления, но может быть удалён
// или снова активирован.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserCreateRequest тело запроса на создание пользователя.
type UserCreateRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// UserUpdateRequest тело запроса на полное обновление пользователя.
// PasswordSet отмечает наличие ключа password с любым значением, включая null:
// такой запрос отклоняется.
type UserUpdateRequest struct {
	Username    string `json:"username_V"`
	Email       string `json:"email_V"`
	Role        Role   `json:"role_V"`
	PasswordSet bool   `json:"-"`
}

// UnmarshalJSON декодирует тело и запоминает, был ли в нём ключ password.
func (r *UserUpdateRequest) UnmarshalJSON(data []byte) error {
	type plain UserUpdateRequest

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	var req plain
	if err := json.Unmarshal(data, &req); err != nil {
		return err
	}
	_, req.PasswordSet = keys["password"]

	*r = UserUpdateRequest(req)
	return nil
}

// UserUpdate проверенные данные для обновления пользователя.
type UserUpdate struct {
	Username        string
	Email           string
	Role            Role
	PasswordPresent bool
}

// Update конвертирует запрос в UserUpdate.
func (r UserUpdateRequest) Update() UserUpdate {
	return UserUpdate{
		Username:        r.Username,
		Email:           r.Email,
		Role:            r.Role,
		PasswordPresent: r.PasswordSet,
	}
}
