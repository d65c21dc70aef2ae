package model

import "time"

// UserEntity represents the sys_user table entity
type UserEntity struct {
	ID             uint64     `db:"user_id" json:"user_id"`
	Phone          string     `db:"phone" json:"phone"`
	Email          *string    `db:"email" json:"email,omitempty"`
	PasswordHash   string     `db:"password_hash" json:"-"`
	ReceiveAddress *string    `db:"receive_address" json:"receive_address,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    uint64
	Email string
	Phone string
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Phone          string `json:"phone" validate:"required,len=11"`
	Email          string `json:"email" validate:"omitempty,email"`
	Password       string `json:"password" validate:"required,min=6"`
	ReceiveAddress string `json:"receive_address"`
}

// LoginRequest for user login (accepts email or 11-digit phone)
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type LoginResponse struct {
	UserID uint64  `json:"user_id"`
	Phone  string  `json:"phone"`
	Email  *string `json:"email,omitempty"`
	Token  string  `json:"token"`
}

type RegisterResponse struct {
	UserID uint64  `json:"user_id"`
	Phone  string  `json:"phone"`
	Email  *string `json:"email,omitempty"`
}
