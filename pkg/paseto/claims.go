package pasetotoken

import (
	"time"

	"github.com/google/uuid"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims is the app-facing token payload.
type Claims struct {
	Type TokenType

	UserID    uuid.UUID
	Email     string
	Superuser bool
	SessionID uuid.UUID

	Issuer   string
	Audience string

	IssuedAt  time.Time
	ExpiresAt time.Time
	TokenID   string // jti
	Subject   string
}
