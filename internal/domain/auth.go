package domain

import "time"

type Trainer struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type TokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
