package domain

import "time"

// Claims is the decoded payload of a session token.
type Claims struct {
	UserID    string
	RoleID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Auth is the result of a successful login. It is never persisted.
type Auth struct {
	UserID string `json:"user_id"`
	RoleID string `json:"role_id"`
	Name   string `json:"name"`
	Token  string `json:"token"`
}
