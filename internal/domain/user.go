package domain

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Username  string    `db:"username"`
	UserPassword
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type UserPassword struct {
	Hash string `db:"password_hash"`
}

// Init hashes the plaintext password with bcrypt.
func (p *UserPassword) Init(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.Hash = string(hash)
	return nil
}

// Validate compares the plaintext password against the stored hash.
func (p *UserPassword) Validate(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(p.Hash), []byte(password))
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginResponse struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	AuthToken string `json:"authToken"`
}

type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
